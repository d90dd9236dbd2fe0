package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sjoeboo/popconfirm/internal/logging"
)

// debounceInterval batches rapid writes (editors often write twice).
const debounceInterval = 100 * time.Millisecond

// Reload is delivered when the watched bundle file changes. Exactly one of
// Bundle and Err is set.
type Reload struct {
	Bundle *Bundle
	Err    error
}

// Watcher monitors a locale bundle file and reloads it on change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	reloadCh chan Reload
	closeCh  chan struct{}

	closeOnce sync.Once

	lastModified time.Time
	modMu        sync.Mutex
}

// NewWatcher creates a watcher for the given bundle file.
func NewWatcher(path string) (*Watcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("locale bundle does not exist: %s", path)
	}

	resolved := resolvePath(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch parent directory (handles atomic renames)
	dir := filepath.Dir(resolved)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	var lastMod time.Time
	if info, err := os.Stat(resolved); err == nil {
		lastMod = info.ModTime()
	}

	return &Watcher{
		watcher:      w,
		path:         resolved,
		lastModified: lastMod,
		reloadCh:     make(chan Reload, 1),
		closeCh:      make(chan struct{}),
	}, nil
}

// Path returns the resolved path being watched.
func (lw *Watcher) Path() string {
	return lw.path
}

// Start begins watching for file changes (non-blocking).
func (lw *Watcher) Start() {
	go lw.watchLoop()
}

func (lw *Watcher) watchLoop() {
	log := logging.ForComponent(logging.CompLocale)
	debounce := time.NewTimer(0)
	debounce.Stop()

	for {
		select {
		case <-lw.closeCh:
			return

		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if resolvePath(event.Name) != lw.path {
				continue
			}
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				continue
			}
			debounce.Reset(debounceInterval)

		case <-debounce.C:
			lw.checkAndReload()

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("locale_watch_error", "path", lw.path, "error", err)
		}
	}
}

func (lw *Watcher) checkAndReload() {
	log := logging.ForComponent(logging.CompLocale)

	info, err := os.Stat(lw.path)
	if err != nil {
		// Temporarily gone during an atomic rename
		return
	}

	lw.modMu.Lock()
	if !info.ModTime().After(lw.lastModified) {
		lw.modMu.Unlock()
		return
	}
	lw.lastModified = info.ModTime()
	lw.modMu.Unlock()

	b, err := LoadFile(lw.path)
	ev := Reload{Bundle: b, Err: err}
	if err != nil {
		log.Warn("locale_reload_failed", "path", lw.path, "error", err)
	} else {
		log.Debug("locale_reloaded", "path", lw.path, "locale", b.Locale)
	}

	// Drop the stale pending reload, keep the newest
	select {
	case <-lw.reloadCh:
	default:
	}
	select {
	case lw.reloadCh <- ev:
	default:
	}
}

// Reloads returns the channel that delivers reloaded bundles.
func (lw *Watcher) Reloads() <-chan Reload {
	return lw.reloadCh
}

// Close stops the watcher and releases resources.
func (lw *Watcher) Close() error {
	lw.closeOnce.Do(func() {
		close(lw.closeCh)
	})
	return lw.watcher.Close()
}

// resolvePath makes p absolute and follows symlinks (/tmp -> /private/tmp on
// macOS) so event paths compare equal to the watched path.
func resolvePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
