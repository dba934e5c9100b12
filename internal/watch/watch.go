// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch re-runs a callback whenever a file changes.
//
// It is used to lint .git/COMMIT_EDITMSG while an editor has it open. The
// parent directory is watched instead of the file itself because many
// editors save by writing a new file and renaming it over the old one.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is read.
const DefaultDebounce = 100 * time.Millisecond

// Func receives the content of the watched file. A returned error stops the
// watcher.
type Func func(content string) error

// Watcher watches a single file.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// New returns a Watcher for path. A zero debounce means DefaultDebounce and a
// nil logger discards.
func New(path string, debounce time.Duration, log *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Watcher{path: path, debounce: debounce, log: log}
}

// Run calls fn with the current content of the file, then again after every
// settled change, until ctx is cancelled. A file that does not exist yet is
// picked up once it is created.
func (w *Watcher) Run(ctx context.Context, fn Func) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}
	w.log.Debug("watching", "path", w.path)

	if err := w.emit(fn); err != nil {
		return err
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.emit(fn); err != nil {
				return err
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "path", w.path, "error", err)
		}
	}
}

// emit reads the file and hands it to fn. Read failures are logged, as the
// file may be between a remove and a create.
func (w *Watcher) emit(fn Func) error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			w.log.Warn("read watched file", "path", w.path, "error", err)
		}
		return nil
	}
	return fn(string(data))
}
