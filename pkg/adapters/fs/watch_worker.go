package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/capstone/pkg/core"
)

// Watch reports changes to the given notebook files until ctx is done.
// Directories holding the files are watched, so a notebook that is deleted and
// recreated (as editors do on save) keeps being tracked.
func (r *Repository) Watch(ctx context.Context, files []string) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	tracked := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		tracked[filepath.ToSlash(file)] = true
		dirs[filepath.Dir(r.fullPath(file))] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			r.config.Logger.Warn("cannot watch directory", "dir", dir, "error", err)
		}
	}
	if len(watcher.WatchList()) == 0 {
		_ = watcher.Close()
		return nil, fmt.Errorf("no watchable directories under %s", r.Path)
	}

	events := make(chan core.Event)
	w := &watchWorker{
		repo:      r,
		watcher:   watcher,
		tracked:   tracked,
		events:    events,
		debouncer: newDebouncer(r.config.Debounce),
	}

	r.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.reportError(fmt.Errorf("watcher stopped: %w", err))
	}))
	return events, nil
}

type watchWorker struct {
	repo      *Repository
	watcher   *fsnotify.Watcher
	tracked   map[string]bool
	events    chan core.Event
	debouncer *debouncer
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.repo.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.repo.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.repo.config.Logger.Error("watcher panic", "error", err)
			}
		}
		w.debouncer.stopAndWait(5 * time.Second)
		close(w.events)
	}()
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.process(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.config.Logger.Error("fsnotify error", "error", wErr)
			w.repo.reportError(wErr)
		}
	}
}

// process maps a filesystem event on a tracked notebook to a core.Event and debounces it.
func (w *watchWorker) process(ctx context.Context, event fsnotify.Event) {
	w.repo.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	rel, err := w.repo.relPath(event.Name)
	if err != nil || !w.tracked[rel] {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	w.repo.recordEvent()
	w.debouncer.add(core.Event{
		Type:      eType,
		File:      rel,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

func (r *Repository) reportError(err error) {
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
		return
	}
	r.config.Logger.Error("watcher error", "error", err)
}
