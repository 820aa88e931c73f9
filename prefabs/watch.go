package prefabs

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports edits to prefab yaml files and scripts on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

// Reloader re-parses the game config whenever it changes on disk. The game
// polls it once per tick; a new config takes effect on the next restart
// because chain spacing is fixed for a session.
type Reloader struct {
	watcher *Watcher
	path    string
	logger  *slog.Logger
}

func NewReloader(path string, logger *slog.Logger) (*Reloader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := NewWatcher(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return &Reloader{watcher: w, path: filepath.Clean(path), logger: logger}, nil
}

// Poll drains pending file events without blocking. It returns the newly
// parsed config when the watched file changed and parsed cleanly.
func (r *Reloader) Poll() (*GameConfig, bool) {
	var changed bool
	for {
		select {
		case name, ok := <-r.watcher.Events:
			if !ok {
				return r.reload(changed)
			}
			if filepath.Clean(name) == r.path {
				changed = true
			}
		case err, ok := <-r.watcher.Errors:
			if ok && err != nil {
				r.logger.Warn("prefabs: watch error", "err", err)
			}
		default:
			return r.reload(changed)
		}
	}
}

func (r *Reloader) reload(changed bool) (*GameConfig, bool) {
	if !changed {
		return nil, false
	}
	cfg, err := LoadGameConfigFile(r.path)
	if err != nil {
		r.logger.Warn("prefabs: config reload rejected", "path", r.path, "err", err)
		return nil, false
	}
	r.logger.Info("prefabs: config reloaded", "path", r.path)
	return cfg, true
}

func (r *Reloader) Close() error {
	return r.watcher.Close()
}
