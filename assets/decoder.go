// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads avatar and outfit content into the scene graph:
// a pluggable decoder registry for 3D asset formats, URL and upload
// based loading, image textures, and chroma-key background removal.
package assets

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"cogentcore.org/core/base/errors"

	"github.com/fitroom/fitroom/scene"
)

// Decoder parses 3D object file(s) and imports them into a Group.
// This interface is implemented by format-specific decoders, which are
// registered with [RegisterDecoder]; the core pipeline never parses
// asset formats itself.
type Decoder interface {

	// New returns a new instance of the decoder, used for each decode.
	New() Decoder

	// Desc returns the description of this decoder.
	Desc() string

	// SetFile sets the file name being used for decoding. Returns a
	// list of files that should be loaded along with the main one, if
	// any (e.g., a material library next to a geometry file).
	SetFile(fname string) []string

	// Decode reads the given data streams, in the order returned by
	// [Decoder.SetFile], and decodes them.
	Decode(rs []io.Reader) error

	// AsGroup builds the decoded content under the given group.
	AsGroup(gp *scene.Group) error
}

// ErrNoDecoder indicates that no decoder is registered for an asset's
// file extension.
var ErrNoDecoder = errors.New("assets: no decoder registered for extension")

var (
	decoders   = map[string]Decoder{}
	decodersMu sync.RWMutex
)

// RegisterDecoder registers a decoder for the given primary file
// extension (including the dot, e.g. ".glb").
func RegisterDecoder(ext string, dec Decoder) {
	decodersMu.Lock()
	defer decodersMu.Unlock()
	decoders[strings.ToLower(ext)] = dec
}

// DecoderByExt returns the decoder registered for the given extension.
func DecoderByExt(ext string) (Decoder, error) {
	decodersMu.RLock()
	defer decodersMu.RUnlock()
	dec, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDecoder, ext)
	}
	return dec, nil
}

// missingDecoderPhrases are matched, lowercased, against error text from
// third-party loaders to recognize a missing-decoder condition that is
// not reported via [ErrNoDecoder].
var missingDecoderPhrases = []string{
	"no decoder",
	"decoder not",
	"missing decoder",
	"draco",
	"ktx2",
}

// IsMissingDecoder reports whether the given load error indicates an
// unavailable asset decoder, either via [ErrNoDecoder] or, for opaque
// errors from external loaders, by inspecting the message text.
func IsMissingDecoder(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoDecoder) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, p := range missingDecoderPhrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
