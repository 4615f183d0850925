// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fitroom runs a headless try-on: it loads a body and an
// outfit, auto-fits the outfit, applies optional offsets, and renders
// a snapshot image. With -selfie it also listens for exported avatars
// from a selfie pipeline and re-renders on each one.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"

	"github.com/fitroom/fitroom/catalog"
	"github.com/fitroom/fitroom/fit"
	"github.com/fitroom/fitroom/selfie"
	"github.com/fitroom/fitroom/snapshot"
	"github.com/fitroom/fitroom/viewer"
)

func main() {
	// CLI flags
	catalogFile := flag.String("catalog", "", "Path to catalog TOML file")
	bodyURL := flag.String("body", "", "Body asset URL (overrides catalog default)")
	outfitName := flag.String("outfit", "", "Outfit name from the catalog")
	outfitURL := flag.String("outfit-url", "", "Outfit asset URL (instead of -outfit)")
	posX := flag.Float64("pos-x", 0, "Position offset x")
	posY := flag.Float64("pos-y", 0, "Position offset y")
	posZ := flag.Float64("pos-z", 0, "Position offset z")
	scale := flag.Float64("scale", 1, "Uniform scale offset")
	rotY := flag.Float64("rot-y", 0, "Rotation offset around y, degrees")
	size := flag.Int("size", 1024, "Snapshot size in pixels")
	out := flag.String("out", "fitroom.webp", "Output image file (.webp or .png)")
	selfieURL := flag.String("selfie", "", "Selfie pipeline WebSocket URL (ws://...)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *verbose {
		logx.UserLevel = slog.LevelDebug
	}

	var ct *catalog.Catalog
	if *catalogFile != "" {
		var err error
		ct, err = catalog.Open(*catalogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := viewer.Config{Synchronous: true, DefaultBodyURL: *bodyURL}
	if cfg.DefaultBodyURL == "" && ct != nil {
		if bd, ok := ct.DefaultBody(); ok {
			cfg.DefaultBodyURL = bd.URL
		}
	}

	ss := viewer.NewSession(cfg)
	defer ss.Close()
	failed := false
	ss.OnError = func(le *viewer.LoadError) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", le)
		failed = true
	}

	o, err := resolveOutfit(ct, *outfitName, *outfitURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if o != nil {
		ss.SelectOutfit(*o)
		var cmds []fit.Command
		if *posX != 0 || *posY != 0 || *posZ != 0 {
			cmds = append(cmds, fit.NudgePos{X: float32(*posX), Y: float32(*posY), Z: float32(*posZ)})
		}
		if *scale != 1 {
			cmds = append(cmds, fit.SetScale(float32(*scale)))
		}
		if *rotY != 0 {
			cmds = append(cmds, fit.SetRotY(float32(*rotY)))
		}
		if len(cmds) > 0 {
			if err := ss.Apply(cmds...); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}
	ss.Update()
	if failed {
		os.Exit(1)
	}

	render := func(fname string) {
		img := snapshot.NewRenderer(*size).Render(ss.Scene)
		if err := snapshot.Save(fname, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote", fname)
	}
	render(*out)

	if *selfieURL == "" {
		return
	}

	// re-render on each exported avatar
	cl, err := selfie.Connect(*selfieURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to selfie pipeline: %v\n", err)
		os.Exit(1)
	}
	avatars := make(chan string)
	cl.OnExported = func(url string) {
		avatars <- url
	}
	done := make(chan struct{})
	cl.OnClose(func() {
		close(done)
	})
	cl.Listen()
	n := 0
	for {
		select {
		case url := <-avatars:
			n++
			ss.LoadBody(url)
			ss.Update()
			render(fmt.Sprintf("avatar-%d-%s", n, *out))
		case <-done:
			return
		}
	}
}

// resolveOutfit picks the outfit from the catalog by name, or wraps a
// bare URL as an asset outfit. Nil means no outfit requested.
func resolveOutfit(ct *catalog.Catalog, name, url string) (*viewer.Outfit, error) {
	switch {
	case name != "":
		if ct == nil {
			return nil, fmt.Errorf("-outfit requires -catalog")
		}
		it := ct.Item(name)
		if it == nil {
			return nil, fmt.Errorf("outfit %q not in catalog", name)
		}
		o, err := it.AsOutfit()
		if err != nil {
			return nil, err
		}
		return &o, nil
	case url != "":
		return &viewer.Outfit{Name: "outfit", Kind: viewer.Asset, URL: url}, nil
	}
	return nil, nil
}
