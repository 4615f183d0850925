// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog loads the try-on catalog: the bodies and outfits the
// viewer offers, described in a TOML file that can be hot-reloaded
// while the viewer runs.
package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/fitroom/fitroom/assets"
	"github.com/fitroom/fitroom/viewer"
)

// Body is one avatar body entry.
type Body struct {

	// Name is the display name.
	Name string `toml:"name"`

	// URL is the body asset.
	URL string `toml:"url"`

	// Default marks the body loaded at startup.
	Default bool `toml:"default"`
}

// Item is one outfit entry.
type Item struct {

	// Name is the display name.
	Name string `toml:"name"`

	// Kind is the outfit kind: asset (default), overlay, coat,
	// billboard.
	Kind string `toml:"kind"`

	// URL is the outfit asset or garment photo, for asset and
	// billboard kinds.
	URL string `toml:"url"`

	// Category groups items in the UI (e.g. "tops", "dresses").
	Category string `toml:"category"`

	// Tint is an optional #rrggbb material color.
	Tint string `toml:"tint"`

	// Chroma removes the photo backdrop on billboard items.
	Chroma bool `toml:"chroma"`
}

// Catalog is the full parsed catalog.
type Catalog struct {

	// Bodies are the selectable avatar bodies.
	Bodies []Body `toml:"body"`

	// Items are the selectable outfits.
	Items []Item `toml:"item"`
}

// Open reads and parses the catalog file, validating every item.
func Open(fname string) (*Catalog, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	ct := &Catalog{}
	if err := toml.Unmarshal(data, ct); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", fname, err)
	}
	for i := range ct.Items {
		if _, err := ct.Items[i].AsOutfit(); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", fname, err)
		}
	}
	return ct, nil
}

// DefaultBody returns the body marked default, or the first body if
// none is marked. The second return is false for an empty catalog.
func (ct *Catalog) DefaultBody() (Body, bool) {
	for _, bd := range ct.Bodies {
		if bd.Default {
			return bd, true
		}
	}
	if len(ct.Bodies) > 0 {
		return ct.Bodies[0], true
	}
	return Body{}, false
}

// Item returns the named item, or nil if not present.
func (ct *Catalog) Item(name string) *Item {
	for i := range ct.Items {
		if ct.Items[i].Name == name {
			return &ct.Items[i]
		}
	}
	return nil
}

// Category returns the items in the given category, in catalog order.
func (ct *Catalog) Category(name string) []Item {
	var its []Item
	for _, it := range ct.Items {
		if it.Category == name {
			its = append(its, it)
		}
	}
	return its
}

// AsOutfit converts the catalog item to a viewer outfit selection.
func (it *Item) AsOutfit() (viewer.Outfit, error) {
	kind, err := viewer.KindFromString(it.Kind)
	if err != nil {
		return viewer.Outfit{}, err
	}
	o := viewer.Outfit{Name: it.Name, Kind: kind, URL: it.URL, ChromaKey: it.Chroma}
	if it.Tint != "" {
		tint, err := assets.HexColor(it.Tint)
		if err != nil {
			return viewer.Outfit{}, fmt.Errorf("item %q: %w", it.Name, err)
		}
		o.Tint = tint
	}
	return o, nil
}
