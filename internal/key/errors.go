package key

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// ErrIllegalArgument is matched by every setter-time validation failure.
var ErrIllegalArgument = errors.New("illegal argument")

// ArgumentError describes an argument rejected by a setter.
type ArgumentError struct {
	// Name identifies the offending argument.
	Name string
	// Value is the rejected value.
	Value any
	// Reason describes the violated constraint.
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("illegal argument: %s %v %s", e.Name, e.Value, e.Reason)
}

// Is implements error matching for ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrIllegalArgument
}

// PositiveOrZero returns value if it is >= 0.
func PositiveOrZero[T int | float64](name string, value T) (T, error) {
	if float64(value) < 0 || math.IsNaN(float64(value)) {
		return value, &ArgumentError{Name: name, Value: value, Reason: "is less than 0"}
	}
	return value, nil
}

// Positive returns value if it is > 0.
func Positive[T int | float64](name string, value T) (T, error) {
	if float64(value) <= 0 || math.IsNaN(float64(value)) {
		return value, &ArgumentError{Name: name, Value: value, Reason: "is less than or equal to 0"}
	}
	return value, nil
}

// Between returns value if min <= value <= max.
func Between[T int | float64](name string, value, min, max T) (T, error) {
	if value < min || value > max || math.IsNaN(float64(value)) {
		return value, &ArgumentError{
			Name:   name,
			Value:  value,
			Reason: fmt.Sprintf("is not between %v and %v", min, max),
		}
	}
	return value, nil
}

// Matches returns value if it matches re.
func Matches(name, value string, re *regexp.Regexp) (string, error) {
	if !re.MatchString(value) {
		return value, &ArgumentError{
			Name:   name,
			Value:  value,
			Reason: fmt.Sprintf("does not match %s", re.String()),
		}
	}
	return value, nil
}
