package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the table library so the browser can rescan.
type Watcher struct {
	fw *fsnotify.Watcher
}

func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %q: %w", dir, err)
	}
	return &Watcher{fw: fw}, nil
}

// WaitChange blocks until a library-relevant file changes, then drains
// follow-up events for a short window so one save triggers one rescan.
func (w *Watcher) WaitChange() error {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if !relevant(ev.Name) {
				continue
			}
			w.drain(300 * time.Millisecond)
			return nil
		case err, ok := <-w.fw.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			return err
		}
	}
}

func (w *Watcher) drain(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	for {
		select {
		case <-w.fw.Events:
		case <-w.fw.Errors:
		case <-t.C:
			return
		}
	}
}

func (w *Watcher) Close() error {
	return w.fw.Close()
}

func relevant(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".vpx", ".directb2s", ".toml":
		return true
	}
	return false
}
