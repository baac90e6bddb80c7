package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PackChange reports a reload of the watched schedule pack. Err is non-nil
// when the changed file no longer parses; the previous registrations stay
// in effect in that case.
type PackChange struct {
	Pack *Pack
	Err  error
}

// PackWatcher monitors a schedules.toml file and emits a parsed pack on
// every (debounced) change, so registrations can be replayed live.
type PackWatcher struct {
	Path    string
	Changes <-chan PackChange

	changes chan PackChange
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewPackWatcher creates a watcher for the pack file at path. The watch is
// placed on the parent directory so editors that replace the file on save
// (rename-over) are still observed.
func NewPackWatcher(path string) (*PackWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan PackChange, 4)
	return &PackWatcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. Changes are delivered on the Changes channel
// until Stop is called.
func (w *PackWatcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *PackWatcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *PackWatcher) loop() {
	defer close(w.done)

	// Debounce rapid write bursts from editors.
	const debounce = 100 * time.Millisecond
	var pendingSince time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.Path)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pendingSince = time.Now()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case now := <-ticker.C:
			if pendingSince.IsZero() || now.Sub(pendingSince) < debounce {
				continue
			}
			pendingSince = time.Time{}
			pack, err := LoadPack(w.Path)
			select {
			case w.changes <- PackChange{Pack: pack, Err: err}:
			default:
				// Drop when the consumer is behind; the next change
				// carries a full reload anyway.
			}
		}
	}
}
