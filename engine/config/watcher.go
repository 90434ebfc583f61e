package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the settings file whenever it changes on disk, so edits
// made while the editor is running take effect without a restart.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	done chan struct{}
}

// Watch starts watching path and calls onChange with the freshly loaded
// settings on every write. onChange runs on the watcher goroutine; callers
// marshal to the UI thread themselves.
func Watch(path string, onChange func(Settings)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file on save, which
	// drops a watch placed on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, path: path, done: make(chan struct{})}
	go w.run(onChange)
	return w, nil
}

func (w *Watcher) run(onChange func(Settings)) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			s, err := Load(w.path)
			if err != nil {
				log.Printf("settings reload: %v", err)
				continue
			}
			onChange(s)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("settings watch: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() {
	close(w.done)
	w.fsw.Close()
}
