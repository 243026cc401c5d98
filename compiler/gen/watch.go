package gen

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// CompileFunc recompiles the schema sources into a fresh graph. The
// watcher calls it after every relevant filesystem event.
type CompileFunc func() (*Graph, error)

// Watcher regenerates artifacts whenever any of the watched schema
// files changes. Edits that do not change the compiled shape (comment
// or formatting changes) are detected through the graph snapshot and
// skipped.
type Watcher struct {
	fs       *fsnotify.Watcher
	compile  CompileFunc
	last     *Snapshot
	debounce time.Duration
}

// NewWatcher creates a watcher over the given schema files.
func NewWatcher(compile CompileFunc, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := fw.Add(p); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return &Watcher{fs: fw, compile: compile, debounce: 100 * time.Millisecond}, nil
}

// Run generates once, then blocks regenerating on file changes until
// the context is canceled or the event stream closes.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.regenerate(ctx); err != nil {
		return err
	}

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Editors fire bursts of events per save; collapse them.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return err
		case <-pending:
			pending = nil
			if err := w.regenerate(ctx); err != nil {
				return err
			}
		}
	}
}

// regenerate recompiles and, when the compiled shape changed, rewrites
// the artifact files.
func (w *Watcher) regenerate(ctx context.Context) error {
	graph, err := w.compile()
	if err != nil {
		return err
	}
	snap := TakeSnapshot(graph)
	if snap.Equal(w.last) {
		return nil
	}
	if err := NewGenerator(graph).Generate(ctx); err != nil {
		return err
	}
	w.last = snap
	return nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error { return w.fs.Close() }
