// Package registry provides the property registry for chart configuration.
//
// The registry maintains definitions of all known property paths with their
// types, built-in defaults, validation rules, and metadata. It seeds the
// global defaults layer and validates loaded defaults documents.
package registry

import (
	"fmt"
	"math"
	"regexp"

	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/native"
)

// Setting defines a configuration property with its metadata.
type Setting struct {
	// Path is the dot-separated path from the options root
	// (e.g., "font.size", "plugins.zoom.pan.threshold").
	Path string

	// Type is the property's data type.
	Type SettingType

	// Default is the built-in constant. Nil means the engine computes the
	// value at runtime.
	Default any

	// Description is human-readable documentation.
	Description string

	// Scope defines which default tiers may set the property.
	Scope SettingScope

	// Enum lists allowed tokens for enum types.
	Enum []string

	// Minimum for numeric types (nil means no minimum).
	Minimum *float64

	// Maximum for numeric types (nil means no maximum).
	Maximum *float64

	// Pattern for string validation (regex).
	Pattern string

	// Deprecated marks legacy paths kept for older documents.
	Deprecated bool
	ReplacedBy string

	// Tags for filtering/grouping settings.
	Tags []string

	// compiledPattern is the compiled regex pattern (lazily initialized).
	compiledPattern *regexp.Regexp
}

// Validate checks if a value is valid for this setting.
func (s *Setting) Validate(value native.Value) error {
	if !value.IsDefined() {
		return nil
	}

	if err := s.validateType(value); err != nil {
		return err
	}

	if len(s.Enum) > 0 {
		str, _ := value.AsString()
		if !containsValue(s.Enum, str) {
			return fmt.Errorf("value must be one of: %v", s.Enum)
		}
	}

	if n, ok := value.AsNumber(); ok {
		if err := s.validateRange(n); err != nil {
			return err
		}
	}

	if s.Pattern != "" {
		if str, ok := value.AsString(); ok {
			if err := s.validatePattern(str); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateType checks if the value matches the expected type.
func (s *Setting) validateType(value native.Value) error {
	kind := value.Kind()
	switch s.Type {
	case TypeString, TypeEnum:
		if kind != native.KindString {
			return fmt.Errorf("expected %s, got %s", s.Type, kind)
		}
	case TypeInt:
		n, ok := value.AsNumber()
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("expected integer, got %s", value)
		}
	case TypeFloat:
		if kind != native.KindNumber {
			return fmt.Errorf("expected number, got %s", kind)
		}
	case TypeBool:
		if kind != native.KindBool {
			return fmt.Errorf("expected boolean, got %s", kind)
		}
	case TypeArray:
		if kind != native.KindArray {
			return fmt.Errorf("expected array, got %s", kind)
		}
	case TypeObject:
		if kind != native.KindObject {
			return fmt.Errorf("expected object, got %s", kind)
		}
	case TypeColor:
		str, ok := value.AsString()
		if !ok {
			return fmt.Errorf("expected color, got %s", kind)
		}
		if _, err := color.Parse(str); err != nil {
			return err
		}
	case TypeNumberOrString:
		if kind != native.KindNumber && kind != native.KindString {
			return fmt.Errorf("expected number or string, got %s", kind)
		}
	case TypeNumberOrBool:
		if kind != native.KindNumber && kind != native.KindBool {
			return fmt.Errorf("expected number or boolean, got %s", kind)
		}
	case TypeAny:
	}
	return nil
}

// validateRange checks if a numeric value is within the allowed range.
func (s *Setting) validateRange(f float64) error {
	if s.Minimum != nil && f < *s.Minimum {
		return fmt.Errorf("value %v is less than minimum %v", f, *s.Minimum)
	}
	if s.Maximum != nil && f > *s.Maximum {
		return fmt.Errorf("value %v is greater than maximum %v", f, *s.Maximum)
	}
	return nil
}

// validatePattern checks if a string value matches the required pattern.
func (s *Setting) validatePattern(str string) error {
	if s.compiledPattern == nil {
		var err error
		s.compiledPattern, err = regexp.Compile(s.Pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
	}

	if !s.compiledPattern.MatchString(str) {
		return fmt.Errorf("value does not match pattern %s", s.Pattern)
	}
	return nil
}

// SettingType represents the data type of a setting.
type SettingType uint8

const (
	// TypeString represents a string value.
	TypeString SettingType = iota
	// TypeInt represents an integral number.
	TypeInt
	// TypeFloat represents a number.
	TypeFloat
	// TypeBool represents a boolean value.
	TypeBool
	// TypeArray represents an array value.
	TypeArray
	// TypeObject represents a nested object.
	TypeObject
	// TypeEnum represents a token from a fixed set.
	TypeEnum
	// TypeColor represents a CSS color string.
	TypeColor
	// TypeNumberOrString accepts either form (e.g., font line height).
	TypeNumberOrString
	// TypeNumberOrBool accepts either form (e.g., dataset fill index).
	TypeNumberOrBool
	// TypeAny accepts any value.
	TypeAny
)

// String returns the string representation of the type.
func (t SettingType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeFloat:
		return "number"
	case TypeBool:
		return "boolean"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeEnum:
		return "enum"
	case TypeColor:
		return "color"
	case TypeNumberOrString:
		return "number|string"
	case TypeNumberOrBool:
		return "number|boolean"
	case TypeAny:
		return "any"
	default:
		return "unknown"
	}
}

// SettingScope defines which default tiers can hold a property.
type SettingScope uint8

const (
	// ScopeGlobal allows the property in the global defaults.
	ScopeGlobal SettingScope = 1 << iota
	// ScopeChart allows the property in chart-type overrides.
	ScopeChart
	// ScopeScale allows the property in axis-type defaults.
	ScopeScale
	// ScopePlugin allows the property in plugin defaults.
	ScopePlugin

	// ScopeAll allows the property at any level.
	ScopeAll = ScopeGlobal | ScopeChart | ScopeScale | ScopePlugin
)

// String returns a string representation of the scope.
func (s SettingScope) String() string {
	if s == ScopeAll {
		return "all"
	}

	var scopes []string
	if s&ScopeGlobal != 0 {
		scopes = append(scopes, "global")
	}
	if s&ScopeChart != 0 {
		scopes = append(scopes, "chart")
	}
	if s&ScopeScale != 0 {
		scopes = append(scopes, "scale")
	}
	if s&ScopePlugin != 0 {
		scopes = append(scopes, "plugin")
	}

	if len(scopes) == 0 {
		return "none"
	}
	return fmt.Sprintf("%v", scopes)
}

// HasScope checks if the setting supports the given scope.
func (s SettingScope) HasScope(scope SettingScope) bool {
	return s&scope != 0
}

func containsValue(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// MinValue creates a pointer to a float64 for use as Minimum.
func MinValue(v float64) *float64 {
	return &v
}

// MaxValue creates a pointer to a float64 for use as Maximum.
func MaxValue(v float64) *float64 {
	return &v
}
