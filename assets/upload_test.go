// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadStorePutAndSupersede(t *testing.T) {
	us, err := NewUploadStore()
	require.NoError(t, err)
	defer us.Close()

	url1, err := us.Put("body", "avatar.shape", []byte("[[part]]"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url1, "file://"))
	assert.True(t, strings.HasSuffix(url1, ".shape"))

	path1 := strings.TrimPrefix(url1, "file://")
	_, err = os.Stat(path1)
	require.NoError(t, err)

	// a second upload under the same key releases the first
	url2, err := us.Put("body", "avatar2.shape", []byte("[[part]]"))
	require.NoError(t, err)
	assert.NotEqual(t, url1, url2)
	_, err = os.Stat(path1)
	assert.True(t, os.IsNotExist(err))
}

func TestUploadStoreKeysIndependent(t *testing.T) {
	us, err := NewUploadStore()
	require.NoError(t, err)
	defer us.Close()

	url1, err := us.Put("body", "a.shape", []byte("x"))
	require.NoError(t, err)
	_, err = us.Put("outfit", "b.shape", []byte("y"))
	require.NoError(t, err)

	_, err = os.Stat(strings.TrimPrefix(url1, "file://"))
	assert.NoError(t, err)
}

func TestUploadStoreRelease(t *testing.T) {
	us, err := NewUploadStore()
	require.NoError(t, err)
	defer us.Close()

	url, err := us.Put("body", "a.shape", []byte("x"))
	require.NoError(t, err)
	us.Release("body")
	_, err = os.Stat(strings.TrimPrefix(url, "file://"))
	assert.True(t, os.IsNotExist(err))

	us.Release("body") // releasing again is a no-op
}

func TestUploadStoreSniffsExtension(t *testing.T) {
	us, err := NewUploadStore()
	require.NoError(t, err)
	defer us.Close()

	// minimal png magic; filetype should name the extension
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	url, err := us.Put("photo", "upload", png)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))
}
