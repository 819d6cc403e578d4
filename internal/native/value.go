// Package native models the dynamic object graph shared with the charting
// engine.
//
// A Value is a tagged union over the kinds a JavaScript-like configuration
// object can hold. An Object maps property tokens to Values and is the single
// source of truth for a configuration entity: typed accessors write into it
// and the engine reads it directly when a chart is created.
//
// Reads are tolerant. A stored value whose kind does not match the requested
// coercion yields the caller supplied default rather than an error, so
// partially configured or externally mutated graphs remain readable.
package native

import (
	"math"
	"strconv"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindUndefined is the zero Value: the property does not exist.
	KindUndefined Kind = iota
	// KindNull is an explicit null.
	KindNull
	// KindBool is a boolean.
	KindBool
	// KindNumber is a float64 number. Integers and dates are numbers.
	KindNumber
	// KindString is a string.
	KindString
	// KindArray is an ordered list of values.
	KindArray
	// KindObject is a nested object, held by reference.
	KindObject
	// KindFunction is a callback invoked synchronously by the engine.
	KindFunction
	// KindHandle is an opaque host reference (canvas, gradient, pattern).
	KindHandle
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Function is a callback stored in the graph. The engine invokes it with a
// context object and optional positional arguments.
type Function func(context *Object, args ...Value) Value

// Value is an immutable dynamically typed value.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Object
	fn   Function
	h    any
}

// Undefined returns the zero value.
func Undefined() Value { return Value{} }

// Null returns an explicit null.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Int wraps an int as a number.
func Int(i int) Value { return Value{kind: KindNumber, n: float64(i)} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Time wraps a time as epoch milliseconds, the representation the engine
// accepts for time scales.
func Time(t time.Time) Value { return Number(float64(t.UnixMilli())) }

// ArrayOf wraps a list of values. The slice is copied.
func ArrayOf(values ...Value) Value {
	arr := make([]Value, len(values))
	copy(arr, values)
	return Value{kind: KindArray, arr: arr}
}

// Strings wraps a list of strings as an array.
func Strings(values ...string) Value {
	arr := make([]Value, len(values))
	for i, s := range values {
		arr[i] = String(s)
	}
	return Value{kind: KindArray, arr: arr}
}

// Numbers wraps a list of numbers as an array.
func Numbers(values ...float64) Value {
	arr := make([]Value, len(values))
	for i, n := range values {
		arr[i] = Number(n)
	}
	return Value{kind: KindArray, arr: arr}
}

// ObjectValue wraps a nested object. The object is held by reference.
func ObjectValue(o *Object) Value {
	if o == nil {
		return Null()
	}
	return Value{kind: KindObject, obj: o}
}

// FunctionValue wraps a callback.
func FunctionValue(fn Function) Value {
	if fn == nil {
		return Null()
	}
	return Value{kind: KindFunction, fn: fn}
}

// HandleValue wraps an opaque host reference.
func HandleValue(h any) Value {
	if h == nil {
		return Null()
	}
	return Value{kind: KindHandle, h: h}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the zero value.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether v is null or undefined.
func (v Value) IsNull() bool { return v.kind == KindUndefined || v.kind == KindNull }

// IsDefined reports whether v carries a usable value. Null, undefined and
// NaN are not defined.
func (v Value) IsDefined() bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindNumber:
		return !math.IsNaN(v.n)
	default:
		return true
	}
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// AsInt returns the number held by v truncated to an int.
func (v Value) AsInt() (int, bool) {
	if v.kind != KindNumber || math.IsNaN(v.n) || math.IsInf(v.n, 0) {
		return 0, false
	}
	return int(v.n), true
}

// AsTime interprets a number as epoch milliseconds.
func (v Value) AsTime() (time.Time, bool) {
	if v.kind != KindNumber || math.IsNaN(v.n) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(v.n)), true
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsArray returns the values held by v. The returned slice must not be
// modified.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the object held by v.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// AsFunction returns the callback held by v.
func (v Value) AsFunction() (Function, bool) {
	if v.kind != KindFunction {
		return nil, false
	}
	return v.fn, true
}

// AsHandle returns the host reference held by v.
func (v Value) AsHandle() (any, bool) {
	if v.kind != KindHandle {
		return nil, false
	}
	return v.h, true
}

// Interface converts v to a plain Go value: nil, bool, float64, string,
// []any, map[string]any, Function or the handle itself.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		return v.obj.ToMap()
	case KindFunction:
		return v.fn
	case KindHandle:
		return v.h
	default:
		return nil
	}
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindString:
		return v.s
	case KindObject:
		return "[object Object]"
	case KindArray:
		return "[array]"
	case KindFunction:
		return "[function]"
	case KindHandle:
		return "[handle]"
	default:
		return v.kind.String()
	}
}

// Equal reports whether a and b are the same value. Objects, functions and
// handles compare by identity; arrays compare element-wise.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return a.obj == b.obj
	case KindHandle:
		return a.h == b.h
	default:
		return false
	}
}

// ValueOf converts a plain Go value into a Value. Unknown types become
// handles.
func ValueOf(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case bool:
		return Bool(v)
	case int:
		return Int(v)
	case int8:
		return Number(float64(v))
	case int16:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint:
		return Number(float64(v))
	case uint8:
		return Number(float64(v))
	case uint16:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case float32:
		return Number(float64(v))
	case float64:
		return Number(v)
	case string:
		return String(v)
	case time.Time:
		return Time(v)
	case []string:
		return Strings(v...)
	case []float64:
		return Numbers(v...)
	case []int:
		arr := make([]Value, len(v))
		for i, n := range v {
			arr[i] = Int(n)
		}
		return Value{kind: KindArray, arr: arr}
	case []any:
		arr := make([]Value, len(v))
		for i, item := range v {
			arr[i] = ValueOf(item)
		}
		return Value{kind: KindArray, arr: arr}
	case []map[string]any:
		arr := make([]Value, len(v))
		for i, item := range v {
			arr[i] = ObjectValue(FromMap(item))
		}
		return Value{kind: KindArray, arr: arr}
	case map[string]any:
		return ObjectValue(FromMap(v))
	case *Object:
		return ObjectValue(v)
	case Function:
		return FunctionValue(v)
	case func(*Object, ...Value) Value:
		return FunctionValue(v)
	default:
		return HandleValue(v)
	}
}
