package defaults

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/notify"
	"github.com/dshills/chartcfg/internal/registry"
)

var (
	// ErrReadOnly indicates modification was attempted on a read-only layer.
	ErrReadOnly = errors.New("defaults layer is read-only")

	// ErrLayerNotFound indicates the specified layer doesn't exist.
	ErrLayerNotFound = errors.New("defaults layer not found")
)

// Name of the layers holding built-in constants and global overrides.
const (
	BuiltinLayer = "builtin"
	GlobalLayer  = "global"
)

var (
	keyScale   = key.Name("scale")
	keyPlugins = key.Name("plugins")
)

// Context holds every default tier shared by the charts built from it.
//
// The builtin layer is seeded from the property registry and is read-only.
// The global layer starts empty and overrides builtin values for every
// chart. Chart, scale and plugin layers are created on first use.
type Context struct {
	registry *registry.Registry
	layers   map[string]*Layer
	notifier *notify.Notifier
	observer Observer
	logger   zerolog.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithRegistry sets the property registry used for seeding and validation.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Context) { c.registry = r }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithObserver sets the resolution observer handed to every chain.
func WithObserver(o Observer) Option {
	return func(c *Context) { c.observer = o }
}

// WithNotifier sets the notifier receiving layer reloads.
func WithNotifier(n *notify.Notifier) Option {
	return func(c *Context) { c.notifier = n }
}

// NewContext creates a context. Without WithRegistry the built-in property
// registry is used.
func NewContext(opts ...Option) *Context {
	c := &Context{
		layers: make(map[string]*Layer),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = registry.NewWithDefaults()
	}
	if c.notifier == nil {
		c.notifier = notify.New()
	}

	builtin := NewLayerWithData(BuiltinLayer, SourceBuiltin, c.registry.Seed())
	builtin.ReadOnly = true
	c.layers[BuiltinLayer] = builtin
	c.layers[GlobalLayer] = NewLayer(GlobalLayer, SourceGlobal)
	return c
}

// Registry returns the property registry.
func (c *Context) Registry() *registry.Registry { return c.registry }

// Logger returns the logger.
func (c *Context) Logger() zerolog.Logger { return c.logger }

// Notifier returns the notifier receiving layer changes.
func (c *Context) Notifier() *notify.Notifier { return c.notifier }

// Builtin returns the read-only layer of built-in constants.
func (c *Context) Builtin() *Layer { return c.layers[BuiltinLayer] }

// Global returns the layer of global overrides.
func (c *Context) Global() *Layer { return c.layers[GlobalLayer] }

// Chart returns the override layer of a chart type.
func (c *Context) Chart(chartType string) *Layer {
	return c.layer(SourceChart, chartType)
}

// Scale returns the default layer of an axis type.
func (c *Context) Scale(axisType string) *Layer {
	return c.layer(SourceScale, axisType)
}

// Plugin returns the default layer of a plugin.
func (c *Context) Plugin(id string) *Layer {
	return c.layer(SourcePlugin, id)
}

// LayerName returns the name of the layer of a tier.
func LayerName(source Source, id string) string {
	switch source {
	case SourceBuiltin:
		return BuiltinLayer
	case SourceGlobal:
		return GlobalLayer
	}
	return source.String() + ":" + id
}

func (c *Context) layer(source Source, id string) *Layer {
	name := LayerName(source, id)
	if l, ok := c.layers[name]; ok {
		return l
	}
	l := NewLayer(name, source)
	c.layers[name] = l
	return l
}

// GetLayer returns a layer by name.
func (c *Context) GetLayer(name string) (*Layer, error) {
	if l, ok := c.layers[name]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrLayerNotFound, name)
}

// Layers returns all layers, highest priority first.
func (c *Context) Layers() []*Layer {
	result := make([]*Layer, 0, len(c.layers))
	for _, l := range c.layers {
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Priority != result[j].Priority {
			return result[i].Priority > result[j].Priority
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// ChartChain returns the chain of an options object of the given chart
// type: chart overrides, then global, then builtin.
func (c *Context) ChartChain(chartType string) *Chain {
	var chart Provider
	if chartType != "" {
		chart = c.Chart(chartType)
	}
	return c.chain(chart, c.Global(), c.Builtin())
}

// ScaleChain returns the chain of an axis of the given type: axis-type
// defaults, then the common scale defaults of global and builtin.
func (c *Context) ScaleChain(axisType string) *Chain {
	var scale Provider
	if axisType != "" {
		scale = c.Scale(axisType)
	}
	return c.chain(
		scale,
		subProvider{parent: c.Global(), key: keyScale},
		subProvider{parent: c.Builtin(), key: keyScale},
	)
}

// PluginChain returns the chain of the options of a plugin: the chart
// overrides for it, then the plugin's own defaults, then global and
// builtin.
func (c *Context) PluginChain(chartType, id string) *Chain {
	pluginKey := key.Name(id)
	var chart Provider
	if chartType != "" {
		chart = narrow(c.Chart(chartType), keyPlugins, pluginKey)
	}
	return c.chain(
		chart,
		c.Plugin(id),
		narrow(c.Global(), keyPlugins, pluginKey),
		narrow(c.Builtin(), keyPlugins, pluginKey),
	)
}

func (c *Context) chain(providers ...Provider) *Chain {
	ch := NewChain(providers...).WithLogger(c.logger)
	if c.observer != nil {
		ch = ch.WithObserver(c.observer)
	}
	return ch
}

// LoadLayer validates obj and installs it as the data of a layer,
// replacing what the layer held. Deprecation warnings are logged;
// validation errors reject the whole document.
func (c *Context) LoadLayer(source Source, id string, obj *native.Object) error {
	if source == SourceBuiltin {
		return fmt.Errorf("%w: %s", ErrReadOnly, BuiltinLayer)
	}
	if source == SourceInstance {
		return fmt.Errorf("load layer: instance defaults are not shared")
	}
	if obj == nil {
		obj = native.New()
	}

	errs := c.ValidateLayer(source, id, obj)
	for _, w := range errs.Warnings() {
		c.logger.Warn().Str("layer", LayerName(source, id)).Str("path", w.Path).Msg(w.Message)
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("load layer %s: %w", LayerName(source, id), err)
	}

	l := c.layer(source, id)
	if l.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnly, l.Name)
	}
	l.Data = obj
	c.logger.Debug().Str("layer", l.Name).Int("keys", obj.Len()).Msg("layer loaded")
	c.notifier.NotifyReload(l.Name)
	return nil
}

// ValidateLayer checks obj against the registry as LoadLayer would,
// without installing it.
func (c *Context) ValidateLayer(source Source, id string, obj *native.Object) registry.ValidationErrors {
	prefix, scope := validationScope(source, id)
	return c.registry.ValidateObject(obj, prefix, scope)
}

// Set stores a value at a dotted path of a layer after validating it.
func (c *Context) Set(layerName, path string, v native.Value) error {
	l, err := c.GetLayer(layerName)
	if err != nil {
		return err
	}
	if l.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnly, layerName)
	}
	prefix, _ := validationScope(l.Source, strings.TrimPrefix(l.Name, l.Source.String()+":"))
	full := path
	if prefix != "" {
		full = prefix + "." + path
	}
	if err := c.registry.Validate(full, v); err != nil {
		return fmt.Errorf("%w: %s: %v", key.ErrIllegalArgument, full, err)
	}

	old, _ := l.Data.Lookup(path)
	l.Data.SetPath(path, v)
	c.notifier.NotifySet(path, old.Interface(), v.Interface(), l.Name)
	return nil
}

// Delete removes the value at a dotted path of a layer.
func (c *Context) Delete(layerName, path string) error {
	l, err := c.GetLayer(layerName)
	if err != nil {
		return err
	}
	if l.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnly, layerName)
	}
	old, _ := l.Data.Lookup(path)
	if l.Data.RemovePath(path) {
		c.notifier.NotifyDelete(path, old.Interface(), l.Name)
	}
	return nil
}

// Reset clears every layer except builtin. Layers stay registered so
// existing chains observe the cleared data.
func (c *Context) Reset() {
	for _, l := range c.layers {
		if l.ReadOnly {
			continue
		}
		l.Data = native.New()
	}
	c.notifier.NotifyReload(GlobalLayer)
}

func validationScope(source Source, id string) (string, registry.SettingScope) {
	switch source {
	case SourceScale:
		return "scale", registry.ScopeScale
	case SourcePlugin:
		return "plugins." + id, registry.ScopePlugin
	case SourceChart:
		return "", registry.ScopeChart
	default:
		return "", registry.ScopeGlobal
	}
}

// narrow returns a provider over the object nested under keys.
func narrow(p Provider, keys ...key.Key) Provider {
	for _, k := range keys {
		p = subProvider{parent: p, key: k}
	}
	return p
}
