package loader

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/native"
)

// BundleVersion is the manifest version understood by this package.
const BundleVersion = 1

// Bundle is a manifest naming the documents that feed each defaults layer.
// Documents of one layer are merged in order; later ones win.
//
//	version: 1
//	global: [base.toml, brand.yaml]
//	charts:
//	  line: [line.json]
//	scales:
//	  linear: [linear.toml]
//	plugins:
//	  zoom: [zoom.yaml]
//	env: true
type Bundle struct {
	Version         int                 `yaml:"version" validate:"required,eq=1"`
	Global          []string            `yaml:"global" validate:"dive,required"`
	Charts          map[string][]string `yaml:"charts" validate:"dive,keys,required,endkeys,dive,required"`
	Scales          map[string][]string `yaml:"scales" validate:"dive,keys,required,endkeys,dive,required"`
	Plugins         map[string][]string `yaml:"plugins" validate:"dive,keys,required,endkeys,dive,required"`
	Env             bool                `yaml:"env"`
	EnvPrefix       string              `yaml:"envPrefix" validate:"omitempty,uppercase,endswith=_"`
	MaxIncludeDepth int                 `yaml:"maxIncludeDepth" validate:"omitempty,min=1,max=32"`

	// Dir resolves relative document paths. LoadBundle sets it to the
	// directory of the manifest.
	Dir string `yaml:"-"`
}

// Files returns every document path of the bundle, resolved against Dir.
func (b *Bundle) Files() []string {
	var files []string
	files = append(files, b.resolve(b.Global)...)
	for _, m := range []map[string][]string{b.Charts, b.Scales, b.Plugins} {
		for _, id := range sortedKeys(m) {
			files = append(files, b.resolve(m[id])...)
		}
	}
	return files
}

func (b *Bundle) resolve(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) || b.Dir == "" {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(b.Dir, p)
	}
	return out
}

// LayerObserver is told about every layer Apply installs or rejects.
type LayerObserver interface {
	LayerLoaded(layer string, err error)
}

// Loader loads bundles and the documents they name.
type Loader struct {
	files    *FileLoader
	fs       FileSystem
	logger   zerolog.Logger
	observer LayerObserver
	validate *validator.Validate
	environ  func() []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS sets the file system documents are read from.
func WithFS(fsys FileSystem) Option {
	return func(l *Loader) { l.fs = fsys }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithObserver sets the observer of layer loads.
func WithObserver(o LayerObserver) Option {
	return func(l *Loader) { l.observer = o }
}

// WithEnviron replaces os.Environ as the source of environment variables.
func WithEnviron(environ func() []string) Option {
	return func(l *Loader) { l.environ = environ }
}

// New creates a loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		fs:       DefaultFS(),
		logger:   zerolog.Nop(),
		validate: validator.New(),
		environ:  os.Environ,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.files = NewFileLoader(l.fs, l.logger)
	return l
}

// Files returns the document loader.
func (l *Loader) Files() *FileLoader { return l.files }

// LoadBundle reads and validates the manifest at path.
func (l *Loader) LoadBundle(path string) (*Bundle, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle %s: %w", path, err)
	}
	b, err := l.ParseBundle(path, data)
	if err != nil {
		return nil, err
	}
	b.Dir = filepath.Dir(path)
	return b, nil
}

// ParseBundle decodes and validates a manifest. Unknown fields are errors.
func (l *Loader) ParseBundle(source string, data []byte) (*Bundle, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var b Bundle
	if err := dec.Decode(&b); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if err := l.validate.Struct(&b); err != nil {
		return nil, fmt.Errorf("bundle %s validation failed: %w", source, err)
	}
	return &b, nil
}

type pendingLayer struct {
	source defaults.Source
	id     string
	data   *native.Object
}

func (p pendingLayer) name() string { return defaults.LayerName(p.source, p.id) }

// Apply loads every document of b and installs the layers into target.
// All documents are read and validated before any layer is replaced, so a
// failing bundle leaves target unchanged.
func (l *Loader) Apply(ctx context.Context, target *defaults.Context, b *Bundle) error {
	pending, err := l.prepare(ctx, target, b)
	if err != nil {
		return err
	}
	for _, p := range pending {
		err := target.LoadLayer(p.source, p.id, p.data)
		l.loaded(p.name(), err)
		if err != nil {
			return err
		}
	}
	l.logger.Info().Int("layers", len(pending)).Msg("defaults bundle applied")
	return nil
}

func (l *Loader) prepare(ctx context.Context, target *defaults.Context, b *Bundle) ([]pendingLayer, error) {
	var pending []pendingLayer

	global, err := l.merge(ctx, b, b.Global)
	if err != nil {
		return nil, err
	}
	if b.Env {
		prefix := b.EnvPrefix
		if prefix == "" {
			prefix = DefaultEnvPrefix
		}
		env := NewEnvLoader(prefix, target.Registry())
		env.environ = l.environ
		if vars := env.Load(); vars != nil {
			l.logger.Debug().Strs("paths", pathsOf(vars)).Msg("environment overrides")
			global = defaults.DeepMerge(global, vars)
		}
	}
	if global != nil {
		pending = append(pending, pendingLayer{source: defaults.SourceGlobal, data: global})
	}

	groups := []struct {
		source defaults.Source
		files  map[string][]string
	}{
		{defaults.SourceScale, b.Scales},
		{defaults.SourcePlugin, b.Plugins},
		{defaults.SourceChart, b.Charts},
	}
	for _, g := range groups {
		for _, id := range sortedKeys(g.files) {
			data, err := l.merge(ctx, b, g.files[id])
			if err != nil {
				return nil, err
			}
			pending = append(pending, pendingLayer{source: g.source, id: id, data: data})
		}
	}

	for _, p := range pending {
		errs := target.ValidateLayer(p.source, p.id, p.data)
		if err := errs.Err(); err != nil {
			err = fmt.Errorf("load layer %s: %w", p.name(), err)
			l.loaded(p.name(), err)
			return nil, err
		}
	}
	return pending, nil
}

// merge loads paths in order, later documents overriding earlier ones. It
// returns nil when paths is empty.
func (l *Loader) merge(ctx context.Context, b *Bundle, paths []string) (*native.Object, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	depth := b.MaxIncludeDepth
	if depth == 0 {
		depth = DefaultMaxIncludeDepth
	}
	merged := native.New()
	for _, path := range b.resolve(paths) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := l.files.LoadWithIncludes(path, depth)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, fmt.Errorf("defaults file %s: %w", path, os.ErrNotExist)
		}
		l.logger.Debug().Str("file", path).Int("keys", doc.Len()).Msg("defaults file loaded")
		defaults.DeepMerge(merged, doc)
	}
	return merged, nil
}

func (l *Loader) loaded(layer string, err error) {
	if l.observer != nil {
		l.observer.LayerLoaded(layer, err)
	}
	if err != nil {
		l.logger.Warn().Err(err).Str("layer", layer).Msg("defaults layer rejected")
	}
}

func pathsOf(obj *native.Object) []string {
	flat := obj.Flatten()
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
