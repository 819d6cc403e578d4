// Package defaults resolves configuration properties through layered
// defaults.
//
// A read of an unset property falls back through an ordered chain of
// providers: the entity's own object, then instance defaults, chart-type
// defaults and finally the global defaults, ending at a constant supplied by
// the caller. The first provider holding a defined value wins. Objects are
// never merged across tiers: a sub-object default replaces the whole
// sub-object, matching the engine's own lookup.
//
// There is no process-wide singleton. A Context carries the global, chart,
// scale and plugin layers and is passed explicitly to every entity.
package defaults

import (
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Provider is a read-only source of default values.
type Provider interface {
	// Origin identifies the provider in diagnostics.
	Origin() string

	// Lookup returns the value stored under k, if any. Implementations may
	// return semantically undefined values; the chain skips them.
	Lookup(k key.Key) (native.Value, bool)
}

// Layer is a named provider backed by an object.
type Layer struct {
	// Name identifies the layer (e.g., "global", "chart:line").
	Name string

	// Source indicates which tier the layer belongs to.
	Source Source

	// Priority orders layers within a chain (higher is consulted first).
	Priority int

	// Data holds the default values.
	Data *native.Object

	// ReadOnly prevents modifications through the Context.
	ReadOnly bool
}

// NewLayer creates an empty layer.
func NewLayer(name string, source Source) *Layer {
	return &Layer{
		Name:     name,
		Source:   source,
		Priority: DefaultPriority(source),
		Data:     native.New(),
	}
}

// NewLayerWithData creates a layer around existing data.
func NewLayerWithData(name string, source Source, data *native.Object) *Layer {
	if data == nil {
		data = native.New()
	}
	return &Layer{
		Name:     name,
		Source:   source,
		Priority: DefaultPriority(source),
		Data:     data,
	}
}

// Origin implements Provider.
func (l *Layer) Origin() string { return l.Name }

// Lookup implements Provider.
func (l *Layer) Lookup(k key.Key) (native.Value, bool) {
	if l == nil {
		return native.Value{}, false
	}
	return l.Data.Get(k)
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		Name:     l.Name,
		Source:   l.Source,
		Priority: l.Priority,
		Data:     l.Data.Clone(),
		ReadOnly: l.ReadOnly,
	}
}

// Sub returns a provider over the nested object stored under k.
func (l *Layer) Sub(k key.Key) Provider {
	return objectProvider{name: l.Name + "." + k.Value(), obj: l.Data.GetObject(k)}
}

// Source indicates which tier a layer belongs to.
type Source uint8

const (
	// SourceBuiltin is the constant table of the property registry.
	SourceBuiltin Source = iota
	// SourceGlobal holds global defaults shared by every chart.
	SourceGlobal
	// SourceScale holds defaults for an axis type.
	SourceScale
	// SourcePlugin holds defaults for a plugin.
	SourcePlugin
	// SourceChart holds overrides for a chart type.
	SourceChart
	// SourceInstance holds defaults supplied for a single entity.
	SourceInstance
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceGlobal:
		return "global"
	case SourceScale:
		return "scale"
	case SourcePlugin:
		return "plugin"
	case SourceChart:
		return "chart"
	case SourceInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// Standard priority levels. Higher values are consulted first.
const (
	PriorityBuiltin  = 0
	PriorityGlobal   = 100
	PriorityScale    = 200
	PriorityPlugin   = 250
	PriorityChart    = 300
	PriorityInstance = 1000
)

// DefaultPriority returns the default priority for a given source.
func DefaultPriority(source Source) int {
	switch source {
	case SourceGlobal:
		return PriorityGlobal
	case SourceScale:
		return PriorityScale
	case SourcePlugin:
		return PriorityPlugin
	case SourceChart:
		return PriorityChart
	case SourceInstance:
		return PriorityInstance
	default:
		return PriorityBuiltin
	}
}

// objectProvider adapts a bare object to Provider.
type objectProvider struct {
	name string
	obj  *native.Object
}

// ObjectProvider wraps an object as a named provider.
func ObjectProvider(name string, obj *native.Object) Provider {
	return objectProvider{name: name, obj: obj}
}

func (p objectProvider) Origin() string { return p.name }

func (p objectProvider) Lookup(k key.Key) (native.Value, bool) {
	return p.obj.Get(k)
}
