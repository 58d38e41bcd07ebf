// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadertoy

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports shader files that change on disk, so that they can
// be reloaded. OpenGL calls must stay on the main thread, so changes
// are collected in the background and picked up with [Watcher.Poll].
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup

	mu      sync.Mutex
	changed map[string]string // name -> path
}

// NewWatcher returns a watcher for the directories of the given shader
// paths. Empty paths, of built-in shaders, are skipped.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shadertoy: creating watcher: %w", err)
	}
	w := &Watcher{
		watcher: fw,
		done:    make(chan struct{}),
		changed: map[string]string{},
	}
	var dirs []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if slices.Contains(dirs, dir) {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shadertoy: watching %s: %w", dir, err)
		}
		dirs = append(dirs, dir)
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(ev.Name) != ".frag" {
				continue
			}
			slog.Debug("shader changed", "path", ev.Name, "op", ev.Op)
			w.mu.Lock()
			w.changed[filepath.Base(ev.Name)] = ev.Name
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("shadertoy: watching shaders", "err", err)
		}
	}
}

// Poll returns the paths of the shader files that changed since the
// last call, sorted. It never blocks on file system events.
func (w *Watcher) Poll() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.changed) == 0 {
		return nil
	}
	paths := make([]string, 0, len(w.changed))
	for _, p := range w.changed {
		paths = append(paths, p)
	}
	clear(w.changed)
	slices.Sort(paths)
	return paths
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
