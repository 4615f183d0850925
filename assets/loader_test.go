// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlainPath(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "tee.shape")
	require.NoError(t, os.WriteFile(fname, []byte(testShape), 0o644))

	gp, err := NewURLLoader().Load(context.Background(), fname)
	require.NoError(t, err)
	assert.Equal(t, "tee", gp.Name)
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets/tee.shape" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(testShape))
	}))
	defer srv.Close()

	ld := NewURLLoader()
	gp, err := ld.Load(context.Background(), srv.URL+"/assets/tee.shape")
	require.NoError(t, err)
	assert.Equal(t, "tee", gp.Name)

	_, err = ld.Load(context.Background(), srv.URL+"/assets/missing.shape")
	assert.Error(t, err)
}

func TestLoadMissingDecoder(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "model.zmodel")
	require.NoError(t, os.WriteFile(fname, []byte("binary"), 0o644))

	_, err := NewURLLoader().Load(context.Background(), fname)
	require.Error(t, err)
	assert.True(t, IsMissingDecoder(err))
}

func TestSniffExt(t *testing.T) {
	assert.Equal(t, ".glb", sniffExt([]byte("glTF\x02\x00\x00\x00")))
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	assert.Equal(t, ".png", sniffExt(png))
	assert.Equal(t, "", sniffExt([]byte("plain text")))
}

func TestSiblingURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a/m.mtl",
		siblingURL("https://cdn.example.com/a/m.obj", "m.mtl"))
	assert.Equal(t, filepath.Join("/data", "m.mtl"),
		siblingURL("/data/m.obj", "m.mtl"))
}
