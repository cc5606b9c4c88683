package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// SkinsChanged is emitted by WatchSkins after a burst of changes under the
// skins directory. Files lists the skin files touched, sorted.
type SkinsChanged struct {
	Files []string
}

// WatchSkins streams change notifications for .html files under dir until
// ctx is cancelled. Callers should drain the returned channel; the channel
// is closed once ctx is done or the watcher fails.
func WatchSkins(ctx context.Context, dir string, log *zap.Logger) (<-chan SkinsChanged, error) {
	if dir == "" {
		return nil, errors.New("config: skins path unknown")
	}
	if log == nil {
		log = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Warn("skins watcher close", zap.Error(err))
			}
		})
	}

	dirs, err := collectDirs(dir)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("config: enumerate directories: %w", err)
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("config: watch %s: %w", d, err)
		}
	}

	events := make(chan SkinsChanged, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, d := range dirs {
			watched[d] = struct{}{}
		}

		send := func(ev SkinsChanged) {
			select {
			case events <- ev:
			default:
				// The next burst carries the change again.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("skins watcher", zap.Error(err))
				throttle.Enqueue("", send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						d := filepath.Clean(evt.Name)
						if _, found := watched[d]; !found {
							if err := watcher.Add(d); err != nil {
								log.Warn("skins watch", zap.String("dir", d), zap.Error(err))
							} else {
								watched[d] = struct{}{}
							}
						}
						continue
					}
				}
				if !strings.HasSuffix(evt.Name, ".html") {
					continue
				}
				throttle.Enqueue(evt.Name, send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// changeThrottle coalesces rapid notifications so skins reload once per
// burst of writes.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{delay: delay, pending: make(map[string]struct{})}
}

func (t *changeThrottle) Enqueue(file string, send func(SkinsChanged)) {
	t.mu.Lock()
	if file != "" {
		t.pending[file] = struct{}{}
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func(SkinsChanged)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	files := make([]string, 0, len(pending))
	for f := range pending {
		files = append(files, f)
	}
	sort.Strings(files)
	send(SkinsChanged{Files: files})
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
