// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/h2non/filetype"
)

// UploadStore turns user-picked file contents into temporary local URLs
// that feed the normal load path, mirroring the lifecycle of browser
// object URLs: putting a new upload under the same key releases the
// previous one, so repeated uploads never grow without bound.
type UploadStore struct {
	mu      sync.Mutex
	dir     string
	seq     int
	current map[string]string // key -> backing file path
}

// NewUploadStore creates a store backed by a fresh temporary directory.
func NewUploadStore() (*UploadStore, error) {
	dir, err := os.MkdirTemp("", "fitroom-uploads-")
	if err != nil {
		return nil, err
	}
	return &UploadStore{dir: dir, current: map[string]string{}}, nil
}

// Put stores the uploaded bytes under the given key and returns a
// file:// URL for them, releasing any previous upload for that key.
// If the provided name has no extension, one is sniffed from content
// so decoder selection still works.
func (us *UploadStore) Put(key, name string, data []byte) (string, error) {
	us.mu.Lock()
	defer us.mu.Unlock()

	ext := filepath.Ext(name)
	if ext == "" {
		if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
			ext = "." + kind.Extension
		}
	}
	us.seq++
	fname := filepath.Join(us.dir, "u"+strconv.Itoa(us.seq)+ext)
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		return "", err
	}
	if prev, ok := us.current[key]; ok {
		os.Remove(prev)
	}
	us.current[key] = fname
	return "file://" + fname, nil
}

// Release removes the upload stored under the given key, if any.
func (us *UploadStore) Release(key string) {
	us.mu.Lock()
	defer us.mu.Unlock()
	if prev, ok := us.current[key]; ok {
		os.Remove(prev)
		delete(us.current, key)
	}
}

// Close releases all uploads and removes the backing directory.
func (us *UploadStore) Close() error {
	us.mu.Lock()
	defer us.mu.Unlock()
	us.current = map[string]string{}
	return os.RemoveAll(us.dir)
}
