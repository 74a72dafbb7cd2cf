package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/models"
)

const settingsDebounce = 100 * time.Millisecond

// SettingsWatcher watches ~/.a2a/settings.yaml and emits the reloaded
// settings whenever the file changes on disk.
type SettingsWatcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan *models.Settings
	done      chan struct{}
	closeOnce sync.Once

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// WatchSettings starts watching the global settings file.
func WatchSettings() (*SettingsWatcher, error) {
	if err := EnsureGlobalDir(); err != nil {
		return nil, err
	}

	dir, err := GlobalDir()
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	w := &SettingsWatcher{
		fsWatcher: fsWatcher,
		changes:   make(chan *models.Settings, 8),
		done:      make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Changes returns the channel carrying reloaded settings.
func (w *SettingsWatcher) Changes() <-chan *models.Settings {
	return w.changes
}

// Stop stops the watcher and releases the underlying fsnotify resources.
func (w *SettingsWatcher) Stop() {
	w.closeOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()
	})
}

func (w *SettingsWatcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Settings watcher error: %v", err)
		}
	}
}

func (w *SettingsWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != SettingsFileName {
		return
	}
	// Rename covers atomic writes (write tmp → rename to target).
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(settingsDebounce, w.reload)
}

func (w *SettingsWatcher) reload() {
	settings, err := LoadSettings()
	if err != nil {
		log.Printf("Failed to reload settings: %v", err)
		return
	}

	select {
	case <-w.done:
	case w.changes <- settings:
	default:
		// Drop when the consumer is behind; the next change wins anyway.
	}
}
