// Package callback stores host callbacks on configuration nodes.
//
// The engine only sees native functions. Each callback is wrapped in a
// Proxy that keeps the typed host callback next to the native function so
// that getters can hand the original callback back.
package callback

import (
	"github.com/google/uuid"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Proxy is the native function registered for a host callback.
type Proxy struct {
	id       uuid.UUID
	fn       native.Function
	callback any
}

// NewProxy wraps fn. The proxy id is unique per proxy.
func NewProxy(fn native.Function, callback any) *Proxy {
	return &Proxy{id: uuid.New(), fn: fn, callback: callback}
}

// ID returns the proxy identifier.
func (p *Proxy) ID() string { return p.id.String() }

// Function returns the native function stored on the node.
func (p *Proxy) Function() native.Function { return p.Call }

// Callback returns the host callback the proxy was created for.
func (p *Proxy) Callback() any { return p.callback }

// Call invokes the wrapped function. A proxy without function returns
// undefined.
func (p *Proxy) Call(ctx *native.Object, args ...native.Value) native.Value {
	if p == nil || p.fn == nil {
		return native.Undefined()
	}
	return p.fn(ctx, args...)
}

// Store keeps the proxies of one configuration entity by property.
type Store struct {
	proxies map[string]*Proxy
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{proxies: make(map[string]*Proxy)}
}

// Get returns the proxy stored for k.
func (s *Store) Get(k key.Key) (*Proxy, bool) {
	if s == nil || !key.IsValid(k) {
		return nil, false
	}
	p, ok := s.proxies[k.Value()]
	return p, ok
}

// Len returns the number of proxies.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.proxies)
}

func (s *Store) put(k key.Key, p *Proxy) {
	if p == nil {
		delete(s.proxies, k.Value())
		return
	}
	s.proxies[k.Value()] = p
}

// Handler manages one callback property of type T.
//
// Wrap adapts a host callback to a native function and returns nil for a
// nil callback.
type Handler[T any] struct {
	Key  key.Key
	Wrap func(T) native.Function
}

// NewHandler creates a handler for the property k.
func NewHandler[T any](k key.Key, wrap func(T) native.Function) Handler[T] {
	return Handler[T]{Key: k, Wrap: wrap}
}

// Set stores cb on node and materializes its ancestors. A nil callback
// removes the property.
func (h Handler[T]) Set(n *native.Node, s *Store, cb T) {
	fn := h.Wrap(cb)
	if fn == nil {
		h.Remove(n, s)
		return
	}
	h.install(n, s, NewProxy(fn, cb))
}

// SetFunction stores a native function, such as a compiled script, on
// node. A nil function removes the property.
func (h Handler[T]) SetFunction(n *native.Node, s *Store, fn native.Function) {
	if fn == nil {
		h.Remove(n, s)
		return
	}
	h.install(n, s, NewProxy(fn, nil))
}

func (h Handler[T]) install(n *native.Node, s *Store, p *Proxy) {
	s.put(h.Key, p)
	n.SetAndAddToParent(h.Key, native.FunctionValue(p.Function()))
}

// Get returns the host callback stored for the property.
func (h Handler[T]) Get(s *Store) (T, bool) {
	var zero T
	p, ok := s.Get(h.Key)
	if !ok {
		return zero, false
	}
	cb, ok := p.callback.(T)
	return cb, ok
}

// Has reports whether the node holds a function for the property.
func (h Handler[T]) Has(n *native.Node) bool {
	return n.Object().IsType(h.Key, native.KindFunction)
}

// Remove deletes the property and its proxy.
func (h Handler[T]) Remove(n *native.Node, s *Store) {
	s.put(h.Key, nil)
	n.Remove(h.Key)
}
