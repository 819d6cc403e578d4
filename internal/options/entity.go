// Package options provides typed access to chart options.
//
// Every entity wraps a node of the options tree and the defaults chain of
// that node. Setters write into the node and materialize its ancestors;
// getters resolve through the chain and fall back to the engine constant.
package options

import (
	"math"

	"github.com/dshills/chartcfg/internal/callback"
	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Entity is a configuration object backed by a node and a defaults chain.
type Entity struct {
	node      *native.Node
	chain     *defaults.Chain
	callbacks *callback.Store
}

// NewEntity creates an entity. A nil node creates a detached root.
func NewEntity(node *native.Node, chain *defaults.Chain) *Entity {
	if node == nil {
		node = native.NewNode(nil)
	}
	return &Entity{node: node, chain: chain, callbacks: callback.NewStore()}
}

// Child returns the entity stored under k. Its chain narrows every
// provider to k.
func (e *Entity) Child(k key.Key) *Entity {
	return NewEntity(native.NewChildNode(e.node, k, nil), e.chain.Sub(k))
}

// Node returns the backing node.
func (e *Entity) Node() *native.Node { return e.node }

// Object returns the backing object.
func (e *Entity) Object() *native.Object { return e.node.Object() }

// Chain returns the defaults chain.
func (e *Entity) Chain() *defaults.Chain { return e.chain }

// Callbacks returns the callback proxies of the entity.
func (e *Entity) Callbacks() *callback.Store { return e.callbacks }

// Has reports whether k is set on the entity itself.
func (e *Entity) Has(k key.Key) bool { return e.node.Has(k) }

// Remove deletes keys from the entity. Reads fall through to the chain.
func (e *Entity) Remove(keys ...key.Key) { e.node.Remove(keys...) }

// Which returns the origin supplying k.
func (e *Entity) Which(k key.Key) string { return e.chain.Which(e.Object(), k) }

// Value returns the resolved raw value of k, or undefined.
func (e *Entity) Value(k key.Key) native.Value {
	return e.chain.Resolve(e.Object(), k, native.Undefined())
}

// Set stores v under k and materializes the entity.
func (e *Entity) Set(k key.Key, v native.Value) {
	e.node.SetAndAddToParent(k, v)
}

// GetBool resolves a boolean.
func (e *Entity) GetBool(k key.Key, def bool) bool {
	return e.chain.Bool(e.Object(), k, def)
}

// SetBool stores a boolean.
func (e *Entity) SetBool(k key.Key, b bool) { e.Set(k, native.Bool(b)) }

// GetNumber resolves a number.
func (e *Entity) GetNumber(k key.Key, def float64) float64 {
	return e.chain.Number(e.Object(), k, def)
}

// SetNumber stores a number. NaN removes the key.
func (e *Entity) SetNumber(k key.Key, n float64) {
	if math.IsNaN(n) {
		e.Remove(k)
		return
	}
	e.Set(k, native.Number(n))
}

// GetInt resolves an integer.
func (e *Entity) GetInt(k key.Key, def int) int {
	return e.chain.Int(e.Object(), k, def)
}

// SetInt stores an integer.
func (e *Entity) SetInt(k key.Key, i int) { e.Set(k, native.Int(i)) }

// GetString resolves a string.
func (e *Entity) GetString(k key.Key, def string) string {
	return e.chain.String(e.Object(), k, def)
}

// SetString stores a string. The empty string removes the key.
func (e *Entity) SetString(k key.Key, s string) {
	if s == "" {
		e.Remove(k)
		return
	}
	e.Set(k, native.String(s))
}

// SetEnum stores the token of v. A nil v removes the key.
func (e *Entity) SetEnum(k key.Key, v key.Key) {
	if !key.IsValid(v) {
		e.Remove(k)
		return
	}
	e.Set(k, native.String(v.Value()))
}

// GetColor resolves a color. Tiers holding an unparsable color are
// skipped.
func (e *Entity) GetColor(k key.Key, def color.Color) color.Color {
	var result color.Color
	_, ok := e.chain.Match(e.Object(), k, func(v native.Value) bool {
		s, isString := v.AsString()
		if !isString {
			return false
		}
		c, err := color.Parse(s)
		if err == nil {
			result = c
		}
		return err == nil
	})
	if !ok {
		return def
	}
	return result
}

// GetColorString resolves the stored form of a color property. Unlike
// GetColor it keeps gradients and patterns set as handles out.
func (e *Entity) GetColorString(k key.Key, def string) string {
	return e.chain.String(e.Object(), k, def)
}

// SetColor stores the string form of c.
func (e *Entity) SetColor(k key.Key, c color.Color) {
	e.Set(k, native.String(c.String()))
}

// SetColorString validates and stores a CSS color.
func (e *Entity) SetColorString(k key.Key, s string) error {
	if _, err := color.Parse(s); err != nil {
		return &key.ArgumentError{Name: k.Value(), Value: s, Reason: "is not a color"}
	}
	e.Set(k, native.String(s))
	return nil
}

// GetFunction resolves a callback property.
func (e *Entity) GetFunction(k key.Key) native.Function {
	return e.chain.Function(e.Object(), k)
}

// GetEnum resolves an enumerated property of e.
func GetEnum[T key.Key](e *Entity, k key.Key, values []T, def T) T {
	return defaults.ResolveEnum(e.chain, e.Object(), k, values, def)
}

// nodeProvider exposes the current object of a node as a provider. It is
// used where an entity inherits from a sibling of the same tree, such as
// a title font inheriting from the options font.
type nodeProvider struct {
	node   *native.Node
	origin string
}

func (p nodeProvider) Origin() string { return p.origin }

func (p nodeProvider) Lookup(k key.Key) (native.Value, bool) {
	return p.node.Object().Get(k)
}

// Inherit returns the chain of an entity reading from e: the local object
// of e, reported as origin, then the chain of e.
func (e *Entity) Inherit(origin string) *defaults.Chain {
	return e.chain.Prepend(nodeProvider{node: e.node, origin: origin})
}

// inherit appends the chain inherited from parent to own.
func inherit(own *defaults.Chain, parent *Entity, origin string) *defaults.Chain {
	return own.Append(parent.Inherit(origin).Providers()...)
}
