// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/fitroom/fitroom/assets"
	"github.com/fitroom/fitroom/fit"
	"github.com/fitroom/fitroom/scene"
)

// OutfitKind selects how an outfit's geometry is produced.
type OutfitKind int32

const (
	// Asset outfits load their geometry from a URL.
	Asset OutfitKind = iota

	// Overlay outfits are a tight procedural shell derived from the
	// body geometry, rendered in the outfit's material.
	Overlay

	// Coat outfits are a loose procedural shell derived from the body
	// geometry.
	Coat

	// Billboard outfits are a flat textured quad held in front of the
	// body, for 2D garment photos.
	Billboard
)

func (ok OutfitKind) String() string {
	switch ok {
	case Overlay:
		return "overlay"
	case Coat:
		return "coat"
	case Billboard:
		return "billboard"
	}
	return "asset"
}

// KindFromString parses an [OutfitKind] name as used in catalogs.
func KindFromString(s string) (OutfitKind, error) {
	switch s {
	case "asset", "":
		return Asset, nil
	case "overlay":
		return Overlay, nil
	case "coat":
		return Coat, nil
	case "billboard":
		return Billboard, nil
	}
	return Asset, fmt.Errorf("viewer: unknown outfit kind %q", s)
}

// Procedural reports whether this kind derives its geometry from the
// body rather than loading it, so it must be rebuilt on body swaps.
func (ok OutfitKind) Procedural() bool {
	return ok == Overlay || ok == Coat
}

// inflate is the shell scale factor for procedural kinds.
func (ok OutfitKind) inflate() float32 {
	switch ok {
	case Overlay:
		return 1.02
	case Coat:
		return 1.1
	}
	return 1
}

// Outfit describes one selectable outfit.
type Outfit struct {

	// Name is the display name.
	Name string

	// Kind selects how the geometry is produced.
	Kind OutfitKind

	// URL is the asset or garment-photo source, for Asset and
	// Billboard kinds.
	URL string

	// Tint colors the outfit's materials. A zero (transparent) tint
	// leaves asset materials untouched; procedural kinds always need
	// one and fall back to gray.
	Tint color.RGBA

	// ChromaKey removes the photo backdrop on billboard outfits,
	// keying on the corner-sampled background color.
	ChromaKey bool
}

// SelectOutfit makes the given outfit current, replacing any attached
// or in-flight outfit. Asset and billboard geometry load in the
// background; procedural kinds are derived from the attached body
// immediately. When the attachment completes, the outfit is auto-fitted
// to the body (asset and billboard kinds) and user offsets reset.
func (ss *Session) SelectOutfit(o Outfit) {
	sel := o
	ss.Selection = &sel
	ss.Outfit.gen++
	gen := ss.Outfit.gen
	ss.Outfit.URL = o.URL
	ss.Outfit.Phase = Loading
	ss.Outfit.Err = nil

	switch o.Kind {
	case Overlay, Coat:
		if ss.Body.Node == nil {
			ss.finishLoadError(&ss.Outfit, gen, "", fit.ErrNotReady)
			return
		}
		gp := CloneWithMaterial(ss.Body.Node, o.Name, o.Tint, o.Kind.inflate())
		ss.attachOutfit(gen, o, gp)
	case Billboard:
		ss.dispatch(func() {
			tx, err := ss.Images.LoadTexture(context.Background(), o.Name, o.URL)
			if err == nil && o.ChromaKey {
				var keyed image.Image
				keyed, err = assets.RemoveBackground(tx.Image, nil, 0.15)
				if err == nil {
					tx.Image = keyed
				}
			}
			ss.post(func() {
				if err != nil {
					ss.finishLoadError(&ss.Outfit, gen, o.URL, err)
					return
				}
				ss.attachOutfit(gen, o, billboardGroup(o.Name, tx))
			})
		})
	default:
		ss.dispatch(func() {
			gp, err := ss.Loader.Load(context.Background(), o.URL)
			ss.post(func() {
				if err != nil {
					ss.finishLoadError(&ss.Outfit, gen, o.URL, err)
					return
				}
				if o.Tint.A > 0 {
					tintGroup(gp, o.Tint)
				}
				ss.attachOutfit(gen, o, gp)
			})
		})
	}
}

// billboardGroup builds a flat textured quad, unit height with the
// texture's aspect ratio.
func billboardGroup(name string, tx *scene.Texture) *scene.Group {
	gp := scene.NewGroup()
	gp.SetName(name)
	aspect := float32(1)
	if tx.Image != nil {
		b := tx.Image.Bounds()
		if b.Dy() > 0 {
			aspect = float32(b.Dx()) / float32(b.Dy())
		}
	}
	sld := scene.NewSolid(gp)
	sld.SetName(name)
	sld.SetMesh(scene.NewQuad(name, aspect, 1))
	sld.SetTexture(tx)
	return gp
}

// tintGroup sets the color of every solid's material in the group.
func tintGroup(gp *scene.Group, tint color.RGBA) {
	eachSolid(gp, func(sld *scene.Solid) {
		sld.Material.Color = tint
	})
}
