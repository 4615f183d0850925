// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"

	"github.com/fitroom/fitroom/scene"
)

// Loader loads a 3D asset from a URL into a new scene group.
// Implementations must be safe for use from a separate goroutine;
// the viewer issues loads asynchronously.
type Loader interface {
	Load(ctx context.Context, url string) (*scene.Group, error)
}

// URLLoader is the standard [Loader]: it fetches http(s), file:// and
// plain-path URLs and dispatches the bytes to a registered [Decoder]
// by file extension, falling back to content sniffing when the URL has
// no usable extension.
type URLLoader struct {

	// Client is the HTTP client for remote fetches.
	// A default client with [URLLoader.Timeout] is used if nil.
	Client *http.Client

	// Timeout for remote fetches with the default client.
	Timeout time.Duration
}

// NewURLLoader returns a [URLLoader] with a 30 second fetch timeout.
func NewURLLoader() *URLLoader {
	return &URLLoader{Timeout: 30 * time.Second}
}

func (ld *URLLoader) client() *http.Client {
	if ld.Client != nil {
		return ld.Client
	}
	return &http.Client{Timeout: ld.Timeout}
}

// Load fetches the asset at the given URL, selects a decoder, and
// builds the decoded content into a new group named after the file.
func (ld *URLLoader) Load(ctx context.Context, curl string) (*scene.Group, error) {
	data, fname, err := ld.fetch(ctx, curl)
	if err != nil {
		return nil, fmt.Errorf("assets: load %q: %w", curl, err)
	}
	ext := filepath.Ext(fname)
	if ext == "" {
		ext = sniffExt(data)
	}
	dt, err := DecoderByExt(ext)
	if err != nil {
		return nil, err
	}
	dec := dt.New()
	files := dec.SetFile(fname)

	rs := make([]io.Reader, len(files))
	rs[0] = bytes.NewReader(data)
	for i, f := range files[1:] {
		// companion files resolve relative to the main URL; best effort
		fdata, _, ferr := ld.fetch(ctx, siblingURL(curl, f))
		if ferr != nil {
			rs[i+1] = bytes.NewReader(nil)
			continue
		}
		rs[i+1] = bytes.NewReader(fdata)
	}
	if err := dec.Decode(rs); err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", curl, err)
	}
	gp := scene.NewGroup()
	gp.SetName(strings.TrimSuffix(filepath.Base(fname), ext))
	if err := dec.AsGroup(gp); err != nil {
		return nil, fmt.Errorf("assets: build %q: %w", curl, err)
	}
	return gp, nil
}

// fetch returns the raw bytes and a file name for the given URL, which
// may be http(s), file://, or a plain filesystem path.
func (ld *URLLoader) fetch(ctx context.Context, curl string) ([]byte, string, error) {
	u, err := url.Parse(curl)
	if err != nil || u.Scheme == "" || u.Scheme == "file" {
		fname := curl
		if u != nil && u.Scheme == "file" {
			fname = u.Path
		}
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(fname), nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, curl, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := ld.client().Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, path.Base(u.Path), nil
}

// siblingURL resolves a companion file name next to the main asset URL.
func siblingURL(curl, fname string) string {
	u, err := url.Parse(curl)
	if err != nil || u.Scheme == "" || u.Scheme == "file" {
		return filepath.Join(filepath.Dir(strings.TrimPrefix(curl, "file://")), fname)
	}
	u.Path = path.Join(path.Dir(u.Path), fname)
	return u.String()
}

// sniffExt guesses a file extension from content when the URL carries
// none (e.g., uploads and exported-avatar URLs).
func sniffExt(data []byte) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown && kind.Extension != "" {
		return "." + kind.Extension
	}
	// glTF binary containers are not in the sniffing database
	if len(data) >= 4 && string(data[:4]) == "glTF" {
		return ".glb"
	}
	return ""
}
