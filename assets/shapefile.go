// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/fitroom/fitroom/scene"
)

// ShapeDecoder decodes .shape files, fitroom's native TOML format
// composing primitive solids, used for demo and test content. Garment
// and avatar asset formats (glb etc.) are decoded by externally
// registered decoders.
type ShapeDecoder struct {
	fname string
	file  shapeFile
}

type shapeFile struct {
	Parts []shapePart `toml:"part"`
}

type shapePart struct {
	Name   string     `toml:"name"`
	Shape  string     `toml:"shape"` // box, sphere, quad
	Size   [3]float32 `toml:"size"`
	Radius float32    `toml:"radius"`
	Pos    [3]float32 `toml:"pos"`
	Color  string     `toml:"color"` // #rrggbb or #rrggbbaa
}

func init() {
	RegisterDecoder(".shape", &ShapeDecoder{})
}

func (dec *ShapeDecoder) New() Decoder {
	return &ShapeDecoder{}
}

func (dec *ShapeDecoder) Desc() string {
	return "fitroom .shape primitive composition (TOML)"
}

func (dec *ShapeDecoder) SetFile(fname string) []string {
	dec.fname = fname
	return []string{fname}
}

func (dec *ShapeDecoder) Decode(rs []io.Reader) error {
	if len(rs) == 0 {
		return fmt.Errorf("shape decoder: no readers passed")
	}
	data, err := io.ReadAll(rs[0])
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, &dec.file); err != nil {
		return fmt.Errorf("shape decoder: %s: %w", dec.fname, err)
	}
	if len(dec.file.Parts) == 0 {
		return fmt.Errorf("shape decoder: %s: no parts", dec.fname)
	}
	return nil
}

func (dec *ShapeDecoder) AsGroup(gp *scene.Group) error {
	for i, pt := range dec.file.Parts {
		name := pt.Name
		if name == "" {
			name = "part-" + strconv.Itoa(i)
		}
		var ms scene.Mesh
		switch pt.Shape {
		case "box", "":
			ms = scene.NewBox(name, pt.Size[0], pt.Size[1], pt.Size[2])
		case "sphere":
			ms = scene.NewSphere(name, pt.Radius, 16)
		case "quad":
			ms = scene.NewQuad(name, pt.Size[0], pt.Size[1])
		default:
			return fmt.Errorf("shape decoder: %s: unknown shape %q", dec.fname, pt.Shape)
		}
		sld := scene.NewSolid(gp)
		sld.SetName(name)
		sld.SetMesh(ms)
		sld.Pose.Pos.Set(pt.Pos[0], pt.Pos[1], pt.Pos[2])
		if pt.Color != "" {
			clr, err := HexColor(pt.Color)
			if err != nil {
				return fmt.Errorf("shape decoder: %s: %w", dec.fname, err)
			}
			sld.SetColor(clr)
		}
	}
	return nil
}

// HexColor parses #rgb, #rrggbb, and #rrggbbaa colors.
func HexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	var r, g, b, a uint64
	a = 0xff
	var err error
	switch len(h) {
	case 3:
		r, _ = strconv.ParseUint(strings.Repeat(h[0:1], 2), 16, 8)
		g, _ = strconv.ParseUint(strings.Repeat(h[1:2], 2), 16, 8)
		b, err = strconv.ParseUint(strings.Repeat(h[2:3], 2), 16, 8)
	case 6, 8:
		r, _ = strconv.ParseUint(h[0:2], 16, 8)
		g, _ = strconv.ParseUint(h[2:4], 16, 8)
		b, err = strconv.ParseUint(h[4:6], 16, 8)
		if err == nil && len(h) == 8 {
			a, err = strconv.ParseUint(h[6:8], 16, 8)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

var _ Decoder = (*ShapeDecoder)(nil)
