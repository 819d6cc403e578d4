// Package reload re-applies a defaults bundle when its files change.
package reload

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/loader"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// ErrRunning is returned by Run when the reloader is already running.
var ErrRunning = errors.New("reloader already running")

// Result reports the outcome of one reload.
type Result struct {
	// Files are the changed paths that triggered the reload.
	Files []string
	// Err is nil when every layer was installed.
	Err error
}

// Reloader watches a bundle manifest and the documents it names.
//
// Directories are watched rather than files so that editors replacing a
// file by rename are noticed. Only events on tracked files trigger a
// reload; the set is recomputed from the manifest after each reload.
type Reloader struct {
	mu       sync.Mutex
	manifest string
	loader   *loader.Loader
	target   *defaults.Context
	logger   zerolog.Logger
	debounce time.Duration
	handlers []func(Result)

	tracked map[string]bool
	dirs    map[string]bool
	running bool
}

// Option configures a Reloader.
type Option func(*Reloader)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) Option {
	return func(r *Reloader) {
		if d >= 0 {
			r.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Reloader) { r.logger = l }
}

// New creates a reloader applying the bundle at manifest to target.
// Reloads run on the goroutine calling Run; target must not be read
// concurrently without further synchronization.
func New(manifest string, l *loader.Loader, target *defaults.Context, opts ...Option) *Reloader {
	if abs, err := filepath.Abs(manifest); err == nil {
		manifest = abs
	}
	r := &Reloader{
		manifest: manifest,
		loader:   l,
		target:   target,
		logger:   zerolog.Nop(),
		debounce: DefaultDebounce,
		tracked:  make(map[string]bool),
		dirs:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnReload registers a handler called after every reload attempt.
func (r *Reloader) OnReload(fn func(Result)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, fn)
}

// Reload loads the manifest and applies it once.
func (r *Reloader) Reload(ctx context.Context) error {
	b, err := r.loader.LoadBundle(r.manifest)
	if err != nil {
		return err
	}
	r.track(b)
	return r.loader.Apply(ctx, r.target, b)
}

// Run applies the bundle, then reloads it on every change until ctx is
// done. The initial load error is returned; later errors go to the
// handlers and leave the previous layers in place.
func (r *Reloader) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrRunning
	}
	r.running = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	if err := r.Reload(ctx); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	r.mu.Lock()
	r.dirs = make(map[string]bool)
	r.mu.Unlock()
	if err := r.watchDirs(w); err != nil {
		return err
	}

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		changed = make(map[string]bool)
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !r.relevant(ev) {
				continue
			}
			changed[filepath.Clean(ev.Name)] = true
			if timer == nil {
				timer = time.NewTimer(r.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(r.debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn().Err(err).Msg("watch error")

		case <-fire:
			fire = nil
			files := sortedPaths(changed)
			changed = make(map[string]bool)

			err := r.Reload(ctx)
			if err != nil {
				r.logger.Warn().Err(err).Strs("files", files).Msg("reload failed, keeping previous defaults")
			} else {
				r.logger.Info().Strs("files", files).Msg("defaults reloaded")
			}
			if werr := r.watchDirs(w); werr != nil {
				r.logger.Warn().Err(werr).Msg("watch new directories")
			}
			r.emit(Result{Files: files, Err: err})
		}
	}
}

// Tracked returns the files whose changes trigger a reload.
func (r *Reloader) Tracked() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedPaths(r.tracked)
}

func (r *Reloader) track(b *loader.Bundle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tracked = map[string]bool{filepath.Clean(r.manifest): true}
	for _, f := range b.Files() {
		r.tracked[filepath.Clean(f)] = true
	}
}

func (r *Reloader) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracked[filepath.Clean(ev.Name)]
}

func (r *Reloader) watchDirs(w *fsnotify.Watcher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for f := range r.tracked {
		dir := filepath.Dir(f)
		if r.dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		r.dirs[dir] = true
	}
	return nil
}

func (r *Reloader) emit(res Result) {
	r.mu.Lock()
	handlers := make([]func(Result), len(r.handlers))
	copy(handlers, r.handlers)
	r.mu.Unlock()
	for _, h := range handlers {
		h(res)
	}
}

func sortedPaths(set map[string]bool) []string {
	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
