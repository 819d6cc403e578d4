package native

import (
	"sort"
	"strings"

	"github.com/dshills/chartcfg/internal/key"
)

// Object is a mutable mapping from property token to Value.
//
// A nil *Object behaves as an empty, read-only object. Object is not safe
// for concurrent mutation; the graph is owned by a single host event loop.
type Object struct {
	props map[string]Value
}

// New creates an empty object.
func New() *Object {
	return &Object{props: make(map[string]Value)}
}

// Has reports whether k is present and neither null nor undefined.
func (o *Object) Has(k key.Key) bool {
	if o == nil || !key.IsValid(k) {
		return false
	}
	v, ok := o.props[k.Value()]
	return ok && !v.IsNull()
}

// HasAll reports whether every key is present.
func (o *Object) HasAll(keys ...key.Key) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// Get returns the raw value stored under k.
func (o *Object) Get(k key.Key) (Value, bool) {
	if o == nil || !key.IsValid(k) {
		return Value{}, false
	}
	v, ok := o.props[k.Value()]
	return v, ok
}

// Value returns the value stored under k, or undefined.
func (o *Object) Value(k key.Key) Value {
	v, _ := o.Get(k)
	return v
}

// Type returns the kind of the value stored under k.
func (o *Object) Type(k key.Key) Kind {
	v, _ := o.Get(k)
	return v.kind
}

// IsType reports whether the value stored under k has one of kinds.
func (o *Object) IsType(k key.Key, kinds ...Kind) bool {
	t := o.Type(k)
	for _, kind := range kinds {
		if kind == t {
			return true
		}
	}
	return false
}

// Set stores v under k. Setting an undefined value removes the key.
// Invalid keys are ignored.
func (o *Object) Set(k key.Key, v Value) {
	if o == nil || !key.IsValid(k) {
		return
	}
	if v.IsUndefined() {
		delete(o.props, k.Value())
		return
	}
	if o.props == nil {
		o.props = make(map[string]Value)
	}
	o.props[k.Value()] = v
}

// SetBool stores a boolean.
func (o *Object) SetBool(k key.Key, b bool) { o.Set(k, Bool(b)) }

// SetNumber stores a number.
func (o *Object) SetNumber(k key.Key, n float64) { o.Set(k, Number(n)) }

// SetInt stores an integer.
func (o *Object) SetInt(k key.Key, i int) { o.Set(k, Int(i)) }

// SetString stores a string.
func (o *Object) SetString(k key.Key, s string) { o.Set(k, String(s)) }

// SetObject stores a nested object by reference. A nil object removes k.
func (o *Object) SetObject(k key.Key, child *Object) {
	if child == nil {
		o.Remove(k)
		return
	}
	o.Set(k, ObjectValue(child))
}

// SetEnum stores the token of an enumerated value. A nil or empty key
// removes k.
func (o *Object) SetEnum(k key.Key, value key.Key) {
	if !key.IsValid(value) {
		o.Remove(k)
		return
	}
	o.Set(k, String(value.Value()))
}

// SetFunction stores a callback. A nil callback removes k.
func (o *Object) SetFunction(k key.Key, fn Function) {
	if fn == nil {
		o.Remove(k)
		return
	}
	o.Set(k, FunctionValue(fn))
}

// GetBool returns the boolean under k or def.
func (o *Object) GetBool(k key.Key, def bool) bool {
	if b, ok := o.Value(k).AsBool(); ok {
		return b
	}
	return def
}

// GetNumber returns the number under k or def.
func (o *Object) GetNumber(k key.Key, def float64) float64 {
	if n, ok := o.Value(k).AsNumber(); ok {
		return n
	}
	return def
}

// GetInt returns the number under k truncated to int, or def.
func (o *Object) GetInt(k key.Key, def int) int {
	if i, ok := o.Value(k).AsInt(); ok {
		return i
	}
	return def
}

// GetString returns the string under k or def.
func (o *Object) GetString(k key.Key, def string) string {
	if s, ok := o.Value(k).AsString(); ok {
		return s
	}
	return def
}

// GetObject returns the nested object under k, or nil.
func (o *Object) GetObject(k key.Key) *Object {
	obj, _ := o.Value(k).AsObject()
	return obj
}

// GetArray returns the array under k, or nil.
func (o *Object) GetArray(k key.Key) []Value {
	arr, _ := o.Value(k).AsArray()
	return arr
}

// GetStrings returns the string elements of the array under k. Non-string
// elements are skipped.
func (o *Object) GetStrings(k key.Key) []string {
	arr := o.GetArray(k)
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}

// GetFunction returns the callback under k, or nil.
func (o *Object) GetFunction(k key.Key) Function {
	fn, _ := o.Value(k).AsFunction()
	return fn
}

// GetEnum parses the token under k as one of values, or returns def.
func GetEnum[T key.Key](o *Object, k key.Key, values []T, def T) T {
	s, ok := o.Value(k).AsString()
	if !ok {
		return def
	}
	if v, found := key.Lookup(values, s); found {
		return v
	}
	return def
}

// Remove deletes keys. Subsequent Has calls return false.
func (o *Object) Remove(keys ...key.Key) {
	if o == nil {
		return
	}
	for _, k := range keys {
		if key.IsValid(k) {
			delete(o.props, k.Value())
		}
	}
}

// Keys returns the stored property tokens in sorted order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, len(o.props))
	for k := range o.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored properties.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.props)
}

// Empty reports whether the object has no properties.
func (o *Object) Empty() bool {
	return o.Len() == 0
}

// Clone returns a deep copy. Functions and handles are shared.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := &Object{props: make(map[string]Value, len(o.props))}
	for k, v := range o.props {
		c.props[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v Value) Value {
	switch v.kind {
	case KindObject:
		return ObjectValue(v.obj.Clone())
	case KindArray:
		arr := make([]Value, len(v.arr))
		for i, item := range v.arr {
			arr[i] = cloneValue(item)
		}
		return Value{kind: KindArray, arr: arr}
	default:
		return v
	}
}

// Lookup follows a dotted path through nested objects.
func (o *Object) Lookup(path string) (Value, bool) {
	if o == nil || path == "" {
		return Value{}, false
	}
	parts := strings.Split(path, ".")
	current := o
	for i, part := range parts {
		v, ok := current.props[part]
		if !ok {
			return Value{}, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.AsObject()
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return Value{}, false
}

// SetPath stores v at a dotted path, creating intermediate objects.
func (o *Object) SetPath(path string, v Value) {
	if o == nil || path == "" {
		return
	}
	parts := strings.Split(path, ".")
	current := o
	for _, part := range parts[:len(parts)-1] {
		next := current.GetObject(key.Name(part))
		if next == nil {
			next = New()
			current.SetObject(key.Name(part), next)
		}
		current = next
	}
	current.Set(key.Name(parts[len(parts)-1]), v)
}

// RemovePath deletes the value at a dotted path. It reports whether a value
// was removed.
func (o *Object) RemovePath(path string) bool {
	if o == nil || path == "" {
		return false
	}
	parts := strings.Split(path, ".")
	current := o
	for _, part := range parts[:len(parts)-1] {
		current = current.GetObject(key.Name(part))
		if current == nil {
			return false
		}
	}
	last := parts[len(parts)-1]
	if _, ok := current.props[last]; !ok {
		return false
	}
	delete(current.props, last)
	return true
}

// Flatten returns every leaf value keyed by its dotted path.
func (o *Object) Flatten() map[string]Value {
	result := make(map[string]Value)
	o.flatten("", result)
	return result
}

func (o *Object) flatten(prefix string, result map[string]Value) {
	if o == nil {
		return
	}
	for k, v := range o.props {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if child, ok := v.AsObject(); ok {
			child.flatten(path, result)
			continue
		}
		result[path] = v
	}
}

// FromMap converts a plain Go map into an object.
func FromMap(m map[string]any) *Object {
	o := New()
	for k, v := range m {
		o.props[k] = ValueOf(v)
	}
	return o
}

// ToMap converts the object into plain Go values. Functions and handles
// are kept as is.
func (o *Object) ToMap() map[string]any {
	if o == nil {
		return nil
	}
	m := make(map[string]any, len(o.props))
	for k, v := range o.props {
		if v.IsUndefined() {
			continue
		}
		m[k] = v.Interface()
	}
	return m
}
