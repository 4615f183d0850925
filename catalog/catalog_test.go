// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitroom/fitroom/viewer"
)

const testCatalog = `
[[body]]
name = "Mannequin"
url = "assets/mannequin.shape"

[[body]]
name = "Athletic"
url = "assets/athletic.shape"
default = true

[[item]]
name = "Red Dress"
kind = "asset"
url = "assets/dress.shape"
category = "dresses"
tint = "#aa2020"

[[item]]
name = "Raincoat"
kind = "coat"
category = "outerwear"
tint = "#204080"

[[item]]
name = "Band Tee"
kind = "billboard"
url = "assets/tee.png"
category = "tops"
chroma = true
`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(fname, []byte(body), 0o644))
	return fname
}

func TestOpen(t *testing.T) {
	ct, err := Open(writeCatalog(t, testCatalog))
	require.NoError(t, err)
	assert.Equal(t, 2, len(ct.Bodies))
	assert.Equal(t, 3, len(ct.Items))

	bd, ok := ct.DefaultBody()
	require.True(t, ok)
	assert.Equal(t, "Athletic", bd.Name)
}

func TestDefaultBodyFallsBackToFirst(t *testing.T) {
	ct, err := Open(writeCatalog(t, `
[[body]]
name = "Only"
url = "only.shape"
`))
	require.NoError(t, err)
	bd, ok := ct.DefaultBody()
	require.True(t, ok)
	assert.Equal(t, "Only", bd.Name)

	empty := &Catalog{}
	_, ok = empty.DefaultBody()
	assert.False(t, ok)
}

func TestItemLookup(t *testing.T) {
	ct, err := Open(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	it := ct.Item("Raincoat")
	require.NotNil(t, it)
	assert.Equal(t, "outerwear", it.Category)
	assert.Nil(t, ct.Item("Nope"))

	tops := ct.Category("tops")
	require.Equal(t, 1, len(tops))
	assert.Equal(t, "Band Tee", tops[0].Name)
}

func TestAsOutfit(t *testing.T) {
	ct, err := Open(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	o, err := ct.Item("Red Dress").AsOutfit()
	require.NoError(t, err)
	assert.Equal(t, viewer.Asset, o.Kind)
	assert.Equal(t, uint8(0xaa), o.Tint.R)

	o, err = ct.Item("Raincoat").AsOutfit()
	require.NoError(t, err)
	assert.Equal(t, viewer.Coat, o.Kind)
	assert.True(t, o.Kind.Procedural())

	o, err = ct.Item("Band Tee").AsOutfit()
	require.NoError(t, err)
	assert.Equal(t, viewer.Billboard, o.Kind)
	assert.True(t, o.ChromaKey)
}

func TestOpenRejectsBadItems(t *testing.T) {
	_, err := Open(writeCatalog(t, `
[[item]]
name = "Bad"
kind = "hologram"
`))
	assert.Error(t, err)

	_, err = Open(writeCatalog(t, `
[[item]]
name = "Bad Tint"
tint = "reddish"
`))
	assert.Error(t, err)
}

func TestWatchReload(t *testing.T) {
	fname := writeCatalog(t, testCatalog)
	reloads := make(chan *Catalog, 1)
	wa, err := Watch(fname, func(ct *Catalog) {
		select {
		case reloads <- ct:
		default:
		}
	})
	require.NoError(t, err)
	defer wa.Close()

	require.NoError(t, os.WriteFile(fname, []byte(testCatalog+`
[[item]]
name = "New Hat"
kind = "asset"
url = "assets/hat.shape"
category = "hats"
`), 0o644))

	select {
	case ct := <-reloads:
		assert.NotNil(t, ct.Item("New Hat"))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within timeout")
	}
}
