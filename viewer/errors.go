// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"fmt"

	"cogentcore.org/core/base/errors"

	"github.com/fitroom/fitroom/assets"
	"github.com/fitroom/fitroom/fit"
)

// ErrorKind classifies load failures so the UI can pick an
// appropriate user-facing message.
type ErrorKind int32

const (
	// AssetLoad is a generic fetch or decode failure.
	AssetLoad ErrorKind = iota

	// MissingDecoder means the asset uses a format or format extension
	// with no registered decoder (e.g., Draco or KTX2 compressed
	// content), so retrying the same asset cannot succeed.
	MissingDecoder

	// ImageProcessing is a failure in client-side image processing,
	// such as background removal.
	ImageProcessing

	// NotReady means an operation needed both the body and an outfit
	// attached, and one was missing.
	NotReady
)

func (ek ErrorKind) String() string {
	switch ek {
	case AssetLoad:
		return "AssetLoad"
	case MissingDecoder:
		return "MissingDecoder"
	case ImageProcessing:
		return "ImageProcessing"
	case NotReady:
		return "NotReady"
	}
	return "AssetLoad"
}

// LoadError wraps an underlying failure with its classification and the
// URL of the asset involved, if any.
type LoadError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (le *LoadError) Error() string {
	if le.URL == "" {
		return fmt.Sprintf("viewer: %s: %v", le.Kind, le.Err)
	}
	return fmt.Sprintf("viewer: %s: %s: %v", le.Kind, le.URL, le.Err)
}

func (le *LoadError) Unwrap() error {
	return le.Err
}

// Classify wraps err in a [LoadError] with the kind inferred from the
// underlying error. A nil err returns nil.
func Classify(url string, err error) *LoadError {
	if err == nil {
		return nil
	}
	kind := AssetLoad
	switch {
	case assets.IsMissingDecoder(err):
		kind = MissingDecoder
	case errors.Is(err, assets.ErrImageProcessing):
		kind = ImageProcessing
	case errors.Is(err, fit.ErrNotReady):
		kind = NotReady
	}
	return &LoadError{Kind: kind, URL: url, Err: err}
}
