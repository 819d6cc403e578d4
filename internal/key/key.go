// Package key defines property keys for chart configuration nodes.
//
// Every configuration entity enumerates the properties it owns as a set of
// Name constants whose value is the exact token expected by the charting
// engine (for example "backgroundColor" or "rangeMin"). Enumerated option
// values (positions, modes, easing functions) implement Key as well so they
// can be stored and parsed with the same helpers.
package key

import (
	"strings"
)

// Key is anything with a serialized property name.
type Key interface {
	// Value returns the token written into the native object.
	Value() string
}

// Name is a property key backed by its serialized token.
type Name string

// Value implements Key.
func (n Name) Value() string {
	return string(n)
}

// String returns the serialized token.
func (n Name) String() string {
	return string(n)
}

// Create returns a key for a token discovered at runtime.
func Create(value string) Key {
	return Name(value)
}

// IsValid reports whether k is non-nil and has a non-empty token.
func IsValid(k Key) bool {
	if k == nil {
		return false
	}
	return k.Value() != ""
}

// CheckIfValid returns an illegal argument error if k is not valid.
func CheckIfValid(k Key) error {
	if !IsValid(k) {
		return &ArgumentError{Name: "key", Value: k, Reason: "is nil or empty"}
	}
	return nil
}

// Equals reports whether two keys serialize to the same token.
func Equals(a, b Key) bool {
	if !IsValid(a) || !IsValid(b) {
		return false
	}
	return a.Value() == b.Value()
}

// Lookup returns the element of values whose token equals s.
func Lookup[T Key](values []T, s string) (T, bool) {
	for _, v := range values {
		if v.Value() == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// LookupFold is like Lookup but compares tokens case-insensitively.
func LookupFold[T Key](values []T, s string) (T, bool) {
	for _, v := range values {
		if strings.EqualFold(v.Value(), s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether s is the token of one of values.
func Has[T Key](values []T, s string) bool {
	_, ok := Lookup(values, s)
	return ok
}

// Path joins the tokens of keys with dots, skipping invalid keys.
func Path(keys ...Key) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if IsValid(k) {
			parts = append(parts, k.Value())
		}
	}
	return strings.Join(parts, ".")
}

// Split converts a dotted path into keys.
func Split(path string) []Key {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	keys := make([]Key, 0, len(parts))
	for _, p := range parts {
		keys = append(keys, Name(p))
	}
	return keys
}
