package native

import (
	"errors"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidJSON is returned when a document cannot be parsed.
var ErrInvalidJSON = errors.New("invalid JSON document")

// MarshalJSON implements json.Marshaler. Functions and handles have no JSON
// form and are omitted, as are NaN and infinite numbers.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSafe(o))
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	out, _ := jsonValue(v)
	return json.Marshal(out)
}

// ToJSON renders the object as indented JSON.
func (o *Object) ToJSON() (string, error) {
	b, err := json.MarshalIndent(jsonSafe(o), "", "   ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func jsonSafe(o *Object) map[string]any {
	if o == nil {
		return nil
	}
	m := make(map[string]any, len(o.props))
	for k, v := range o.props {
		if out, ok := jsonValue(v); ok {
			m[k] = out
		}
	}
	return m
}

func jsonValue(v Value) (any, bool) {
	switch v.kind {
	case KindNull:
		return nil, true
	case KindBool:
		return v.b, true
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return nil, false
		}
		return v.n, true
	case KindString:
		return v.s, true
	case KindArray:
		arr := make([]any, 0, len(v.arr))
		for _, item := range v.arr {
			if out, ok := jsonValue(item); ok {
				arr = append(arr, out)
			}
		}
		return arr, true
	case KindObject:
		return jsonSafe(v.obj), true
	default:
		return nil, false
	}
}

// Parse reads a JSON object document.
func Parse(data []byte) (*Object, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, fmt.Errorf("%w: top level value is %s, not an object", ErrInvalidJSON, result.Type)
	}
	return fromResult(result), nil
}

// ParseString reads a JSON object document from a string.
func ParseString(s string) (*Object, error) {
	return Parse([]byte(s))
}

// ParseValue reads any JSON value.
func ParseValue(s string) (Value, error) {
	if !gjson.Valid(s) {
		return Value{}, ErrInvalidJSON
	}
	return resultValue(gjson.Parse(s)), nil
}

func fromResult(r gjson.Result) *Object {
	o := New()
	r.ForEach(func(k, v gjson.Result) bool {
		o.props[k.String()] = resultValue(v)
		return true
	})
	return o
}

func resultValue(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Number(r.Num)
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			items := r.Array()
			arr := make([]Value, len(items))
			for i, item := range items {
				arr[i] = resultValue(item)
			}
			return Value{kind: KindArray, arr: arr}
		}
		return ObjectValue(fromResult(r))
	default:
		return Value{}
	}
}
