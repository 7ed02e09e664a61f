package rig

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a rig config file when it changes on disk. Reloaded
// configs arrive on Configs already validated; load or validation failures
// arrive on Errors and leave the running rig untouched. A Config stays
// immutable: callers swap in a freshly constructed rig.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Configs chan Config
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchConfig watches path's directory (editors typically replace the file
// rather than write it in place) and filters events down to the file itself.
func WatchConfig(path string) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Configs: make(chan Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
	})
	return err
}

func (cw *ConfigWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			cfg, err := LoadConfig(cw.path)
			if err != nil {
				select {
				case cw.Errors <- err:
				default:
				}
				continue
			}
			select {
			case cw.Configs <- cfg:
			default:
				// Drop stale reloads; only the newest matters.
				select {
				case <-cw.Configs:
				default:
				}
				cw.Configs <- cfg
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case cw.Errors <- err:
			default:
			}
		case <-cw.closeCh:
			return
		}
	}
}
