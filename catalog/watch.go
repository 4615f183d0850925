// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"path/filepath"

	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a catalog file when it changes on disk.
type Watcher struct {
	fw    *fsnotify.Watcher
	fname string
}

// Watch reloads the catalog file whenever it is written, calling
// onReload with each successfully parsed version. Parse failures are
// logged and the previous catalog stays current. The watch runs until
// [Watcher.Close].
func Watch(fname string, onReload func(ct *Catalog)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory: editors often replace the file wholesale,
	// which drops a watch set on the file itself
	if err := fw.Add(filepath.Dir(fname)); err != nil {
		fw.Close()
		return nil, err
	}
	wa := &Watcher{fw: fw, fname: fname}
	go wa.run(onReload)
	return wa, nil
}

func (wa *Watcher) run(onReload func(ct *Catalog)) {
	for {
		select {
		case ev, ok := <-wa.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(wa.fname) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			ct, err := Open(wa.fname)
			if err != nil {
				logx.PrintlnWarn("catalog: reload failed: ", err)
				continue
			}
			onReload(ct)
		case err, ok := <-wa.fw.Errors:
			if !ok {
				return
			}
			logx.PrintlnWarn("catalog: watch error: ", err)
		}
	}
}

// Close stops watching.
func (wa *Watcher) Close() error {
	return wa.fw.Close()
}
