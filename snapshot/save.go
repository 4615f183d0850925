// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Save writes the image to the named file, as WebP or PNG depending on
// the file extension (default WebP).
func Save(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(fname), ".png") {
		return png.Encode(f, img)
	}
	return nativewebp.Encode(f, img, nil)
}
