package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce window for bursts of filesystem events on the config file.
const reloadDebounce = 500 * time.Millisecond

// Watcher keeps the running config in sync with the file on disk.
//
// The file's parent directory is watched rather than the file itself: editors
// and config-management tools commonly replace the file atomically (write a
// temp file, rename it over the original), which never emits a Write event on
// the watched inode. Watching the directory catches the rename as well as
// in-place writes.
type Watcher struct {
	path       string
	schemaPath string
	onReload   func(*Config, error)
	current    *Config
	mu         sync.RWMutex
	reloads    atomic.Uint32
}

// NewWatcher loads the config once and starts watching it for changes.
// onReload runs on the watcher goroutine after every reload attempt,
// receiving the new config or the error that kept the old one in place.
func NewWatcher(path string, schemaPath string, onReload func(*Config, error)) (*Watcher, error) {
	cfg, err := LoadAndValidate(path, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}

	watcher := &Watcher{
		path:       path,
		schemaPath: schemaPath,
		onReload:   onReload,
		current:    cfg,
	}

	go watcher.watch()

	return watcher, nil
}

// watch routes filesystem events for the config file into debounced reloads.
func (cw *Watcher) watch() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create file watcher", "error", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(cw.path)); err != nil {
		slog.Error("Failed to watch config directory", "path", cw.path, "error", err)
		return
	}

	configName := filepath.Base(cw.path)

	var timer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != configName {
				continue
			}

			// Write covers in-place edits; Create and Rename cover a file
			// renamed over the original.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer != nil {
				timer.Stop()
			}

			timer = time.AfterFunc(reloadDebounce, cw.reload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			slog.Error("Watcher error", "error", err)
		}
	}
}

// reload re-runs the full load pipeline (schema validation, defaults, env
// overrides). On failure the previous config stays current.
func (cw *Watcher) reload() {
	count := cw.reloads.Add(1)
	slog.Info("Reloading config file", "path", cw.path, "count", count)

	cfg, err := LoadAndValidate(cw.path, cw.schemaPath)
	if err != nil {
		slog.Error("Failed to reload config", "error", err)
		cw.onReload(nil, err)
		return
	}

	cw.mu.Lock()
	cw.current = cfg
	cw.mu.Unlock()

	slog.Info("Config reloaded successfully", "count", count)
	cw.onReload(cfg, nil)
}

// Snapshot returns the current config snapshot (thread-safe).
func (cw *Watcher) Snapshot() *Config {
	cw.mu.RLock()
	defer cw.mu.RUnlock()

	return cw.current
}

// ReloadCount returns the number of reload attempts so far.
func (cw *Watcher) ReloadCount() uint32 {
	return cw.reloads.Load()
}
