// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderRegistry(t *testing.T) {
	dec, err := DecoderByExt(".shape")
	require.NoError(t, err)
	assert.NotNil(t, dec)

	// lookup is case-insensitive
	dec, err = DecoderByExt(".SHAPE")
	require.NoError(t, err)
	assert.NotNil(t, dec)

	_, err = DecoderByExt(".nope")
	assert.ErrorIs(t, err, ErrNoDecoder)
}

func TestIsMissingDecoder(t *testing.T) {
	_, err := DecoderByExt(".glb")
	if err != nil {
		assert.True(t, IsMissingDecoder(err))
	}

	assert.True(t, IsMissingDecoder(fmt.Errorf("wrap: %w", ErrNoDecoder)))
	assert.True(t, IsMissingDecoder(fmt.Errorf("mesh uses Draco compression")))
	assert.True(t, IsMissingDecoder(fmt.Errorf("texture: KTX2 not supported")))
	assert.False(t, IsMissingDecoder(fmt.Errorf("fetch status 404")))
	assert.False(t, IsMissingDecoder(nil))
}
