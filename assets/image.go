// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// image formats used for textures, billboards and environment maps
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"

	"github.com/fitroom/fitroom/scene"
)

// ImageLoader loads images and named textures from URLs. [URLLoader]
// is the standard implementation.
type ImageLoader interface {
	LoadImage(ctx context.Context, url string) (image.Image, error)
	LoadTexture(ctx context.Context, name, url string) (*scene.Texture, error)
}

// LoadImage fetches and decodes an image from the given URL
// (png, jpeg, or tga).
func (ld *URLLoader) LoadImage(ctx context.Context, curl string) (image.Image, error) {
	data, fname, err := ld.fetch(ctx, curl)
	if err != nil {
		return nil, fmt.Errorf("assets: load image %q: %w", curl, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode image %q (%s): %w", curl, fname, err)
	}
	return img, nil
}

// LoadTexture fetches an image and wraps it as a named scene texture.
func (ld *URLLoader) LoadTexture(ctx context.Context, name, curl string) (*scene.Texture, error) {
	img, err := ld.LoadImage(ctx, curl)
	if err != nil {
		return nil, err
	}
	return &scene.Texture{Name: name, Image: img}, nil
}
