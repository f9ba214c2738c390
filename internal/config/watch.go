// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// WatchDebounce coalesces the burst of events an editor or an atomic rename
// produces into one reload.
const WatchDebounce = 150 * time.Millisecond

// Watch reloads the config file at path whenever it changes and passes the
// result to onChange. A file that fails to load is reported as an error and
// the previous config stays in effect at the caller.
//
// The parent directory is watched rather than the file so that atomic
// rename-over writes are seen. Watch returns once watching has started; the
// watcher stops when ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	go watchLoop(ctx, watcher, absPath, onChange)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, onChange func(*Config, error)) {
	defer watcher.Close()

	timer := time.NewTimer(WatchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(WatchDebounce)

		case <-timer.C:
			cfg, err := LoadFromPath(path)
			if err != nil {
				log.Printf("CONFIG_RELOAD_ERROR | path=%s error=%v", path, err)
			} else {
				log.Printf("CONFIG_RELOADED | path=%s theme=%s language=%s", path, cfg.UI.Theme, cfg.UI.Language)
			}
			onChange(cfg, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("CONFIG_WATCH_ERROR | error=%v", err)
		}
	}
}
