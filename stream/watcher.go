package stream

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/matt-g-everett/keyline/timeline"
)

// Watcher reloads the timeline file into a Shared timeline when it changes.
type Watcher struct {
	path     string
	shared   *timeline.Shared
	onReload func(old *timeline.Timeline)
}

// NewWatcher creates a Watcher. onReload, if set, receives the timeline that
// was replaced.
func NewWatcher(path string, shared *timeline.Shared, onReload func(old *timeline.Timeline)) *Watcher {
	w := new(Watcher)
	w.path = filepath.Clean(path)
	w.shared = shared
	w.onReload = onReload
	return w
}

// Reload loads the file and swaps it in. On failure the current timeline is
// kept.
func (w *Watcher) Reload() error {
	tl, err := timeline.LoadFile(w.path)
	if err != nil {
		return err
	}

	old := w.shared.Replace(tl)
	log.Printf("Reloaded %s: %d tracks", w.path, tl.Len())
	if w.onReload != nil {
		w.onReload(old)
	}
	return nil
}

// Run watches the file's directory, so editors that replace the file are
// seen too, until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if err := w.Reload(); err != nil {
				log.Printf("Reload of %s failed: %v", w.path, err)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watching %s: %v", w.path, err)
		}
	}
}
