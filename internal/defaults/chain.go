package defaults

import (
	"github.com/rs/zerolog"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Origins reported by Chain.Which besides provider names.
const (
	OriginLocal    = "local"
	OriginConstant = "constant"
)

// Observer receives resolution events. It is used for metrics.
type Observer interface {
	// Resolved is called once per typed read with the origin that
	// supplied the value.
	Resolved(property, origin string)

	// Mismatch is called when a tier holds a value of the wrong kind or an
	// unknown enum token and is skipped.
	Mismatch(property, origin string, got native.Kind)
}

// Chain is an ordered list of default providers consulted after an
// entity's own object.
//
// A nil *Chain has no providers: reads consult the local object and then
// the constant.
type Chain struct {
	providers []Provider
	observer  Observer
	logger    zerolog.Logger
}

// NewChain creates a chain. Nil providers are skipped.
func NewChain(providers ...Provider) *Chain {
	c := &Chain{logger: zerolog.Nop()}
	for _, p := range providers {
		if p != nil {
			c.providers = append(c.providers, p)
		}
	}
	return c
}

// WithObserver returns a copy of c reporting to o.
func (c *Chain) WithObserver(o Observer) *Chain {
	cc := c.clone()
	cc.observer = o
	return cc
}

// WithLogger returns a copy of c logging to l.
func (c *Chain) WithLogger(l zerolog.Logger) *Chain {
	cc := c.clone()
	cc.logger = l
	return cc
}

// Providers returns the providers in lookup order.
func (c *Chain) Providers() []Provider {
	if c == nil {
		return nil
	}
	out := make([]Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

// Prepend returns a chain consulting front before the providers of c.
// It is used to put instance defaults ahead of type defaults.
func (c *Chain) Prepend(front ...Provider) *Chain {
	cc := c.clone()
	var ps []Provider
	for _, p := range front {
		if p != nil {
			ps = append(ps, p)
		}
	}
	cc.providers = append(ps, cc.providers...)
	return cc
}

// Append returns a chain consulting back after the providers of c.
func (c *Chain) Append(back ...Provider) *Chain {
	cc := c.clone()
	for _, p := range back {
		if p != nil {
			cc.providers = append(cc.providers, p)
		}
	}
	return cc
}

// Sub returns the chain of a child entity stored under k: every provider
// is narrowed to its nested object under k. The nested object is looked up
// on each read, so reloaded layers are observed.
func (c *Chain) Sub(k key.Key) *Chain {
	cc := c.clone()
	cc.providers = make([]Provider, 0, len(c.Providers()))
	for _, p := range c.Providers() {
		cc.providers = append(cc.providers, subProvider{parent: p, key: k})
	}
	return cc
}

func (c *Chain) clone() *Chain {
	if c == nil {
		return NewChain()
	}
	cc := &Chain{observer: c.observer, logger: c.logger}
	cc.providers = append(cc.providers, c.providers...)
	return cc
}

// Lookup returns the first defined value for k and its origin.
func (c *Chain) Lookup(local *native.Object, k key.Key) (native.Value, string, bool) {
	return c.find(local, k, func(v native.Value) bool { return true })
}

// Resolve returns the first defined value for k, or constant.
func (c *Chain) Resolve(local *native.Object, k key.Key, constant native.Value) native.Value {
	if v, origin, ok := c.Lookup(local, k); ok {
		c.resolved(k, origin)
		return v
	}
	c.resolved(k, OriginConstant)
	return constant
}

// Which returns the origin that supplies k: OriginLocal, a provider name
// or OriginConstant.
func (c *Chain) Which(local *native.Object, k key.Key) string {
	if _, origin, ok := c.Lookup(local, k); ok {
		return origin
	}
	return OriginConstant
}

// LookupPath resolves a dotted path. Every key but the last narrows the
// local object and the providers.
func (c *Chain) LookupPath(local *native.Object, path string) (native.Value, string, bool) {
	keys := key.Split(path)
	if len(keys) == 0 {
		return native.Value{}, "", false
	}
	ch := c
	for _, k := range keys[:len(keys)-1] {
		local = local.GetObject(k)
		ch = ch.Sub(k)
	}
	return ch.Lookup(local, keys[len(keys)-1])
}

// Has reports whether any tier defines k.
func (c *Chain) Has(local *native.Object, k key.Key) bool {
	_, _, ok := c.Lookup(local, k)
	return ok
}

// Bool resolves a boolean property.
func (c *Chain) Bool(local *native.Object, k key.Key, def bool) bool {
	v, origin, ok := c.find(local, k, c.accept(k, native.KindBool))
	if !ok {
		c.resolved(k, OriginConstant)
		return def
	}
	c.resolved(k, origin)
	b, _ := v.AsBool()
	return b
}

// Number resolves a numeric property.
func (c *Chain) Number(local *native.Object, k key.Key, def float64) float64 {
	v, origin, ok := c.find(local, k, c.accept(k, native.KindNumber))
	if !ok {
		c.resolved(k, OriginConstant)
		return def
	}
	c.resolved(k, origin)
	n, _ := v.AsNumber()
	return n
}

// Int resolves a numeric property truncated to int.
func (c *Chain) Int(local *native.Object, k key.Key, def int) int {
	v, origin, ok := c.find(local, k, c.accept(k, native.KindNumber))
	if !ok {
		c.resolved(k, OriginConstant)
		return def
	}
	c.resolved(k, origin)
	i, _ := v.AsInt()
	return i
}

// String resolves a string property.
func (c *Chain) String(local *native.Object, k key.Key, def string) string {
	v, origin, ok := c.find(local, k, c.accept(k, native.KindString))
	if !ok {
		c.resolved(k, OriginConstant)
		return def
	}
	c.resolved(k, origin)
	s, _ := v.AsString()
	return s
}

// Object resolves a nested object property. The whole object of the first
// tier defining it is returned; tiers are never merged.
func (c *Chain) Object(local *native.Object, k key.Key) *native.Object {
	v, origin, ok := c.find(local, k, c.accept(k, native.KindObject))
	if !ok {
		return nil
	}
	c.resolved(k, origin)
	o, _ := v.AsObject()
	return o
}

// Function resolves a callback property.
func (c *Chain) Function(local *native.Object, k key.Key) native.Function {
	v, origin, ok := c.find(local, k, c.accept(k, native.KindFunction))
	if !ok {
		return nil
	}
	c.resolved(k, origin)
	fn, _ := v.AsFunction()
	return fn
}

// Match resolves k to the first defined value accepted by accept. It is
// used by polymorphic properties whose legal kinds vary.
func (c *Chain) Match(local *native.Object, k key.Key, accept func(native.Value) bool) (native.Value, bool) {
	v, origin, ok := c.find(local, k, accept)
	if !ok {
		c.resolved(k, OriginConstant)
		return native.Value{}, false
	}
	c.resolved(k, origin)
	return v, true
}

// Kind returns the kind of the first defined value for k.
func (c *Chain) Kind(local *native.Object, k key.Key) native.Kind {
	v, _, _ := c.Lookup(local, k)
	return v.Kind()
}

// ResolveEnum resolves a property holding one of values. Tiers holding an
// unknown token are skipped.
func ResolveEnum[T key.Key](c *Chain, local *native.Object, k key.Key, values []T, def T) T {
	var result T
	_, origin, ok := c.find(local, k, func(v native.Value) bool {
		s, isString := v.AsString()
		if !isString {
			return false
		}
		parsed, found := key.Lookup(values, s)
		if found {
			result = parsed
		}
		return found
	})
	if !ok {
		c.resolved(k, OriginConstant)
		return def
	}
	c.resolved(k, origin)
	return result
}

// find walks local and then each provider, returning the first defined
// value accepted by match.
func (c *Chain) find(local *native.Object, k key.Key, match func(native.Value) bool) (native.Value, string, bool) {
	if v, ok := local.Get(k); ok && usable(v) {
		if match(v) {
			return v, OriginLocal, true
		}
		c.mismatch(k, OriginLocal, v.Kind())
	}
	for _, p := range c.Providers() {
		v, ok := p.Lookup(k)
		if !ok || !usable(v) {
			continue
		}
		if match(v) {
			return v, p.Origin(), true
		}
		c.mismatch(k, p.Origin(), v.Kind())
	}
	return native.Value{}, "", false
}

// usable reports whether v may satisfy a read. Null, NaN and the empty
// string mark a value as unset.
func usable(v native.Value) bool {
	if !v.IsDefined() {
		return false
	}
	s, ok := v.AsString()
	return !ok || s != ""
}

func (c *Chain) accept(k key.Key, kind native.Kind) func(native.Value) bool {
	return func(v native.Value) bool { return v.Kind() == kind }
}

func (c *Chain) resolved(k key.Key, origin string) {
	if c != nil && c.observer != nil {
		c.observer.Resolved(k.Value(), origin)
	}
}

func (c *Chain) mismatch(k key.Key, origin string, got native.Kind) {
	if c == nil {
		return
	}
	c.logger.Debug().
		Str("property", k.Value()).
		Str("origin", origin).
		Str("kind", got.String()).
		Msg("skipping default of unexpected kind")
	if c.observer != nil {
		c.observer.Mismatch(k.Value(), origin, got)
	}
}

// subProvider narrows a provider to the object nested under key.
type subProvider struct {
	parent Provider
	key    key.Key
}

func (p subProvider) Origin() string { return p.parent.Origin() }

func (p subProvider) Lookup(k key.Key) (native.Value, bool) {
	v, ok := p.parent.Lookup(p.key)
	if !ok {
		return native.Value{}, false
	}
	obj, isObject := v.AsObject()
	if !isObject {
		return native.Value{}, false
	}
	return obj.Get(k)
}
