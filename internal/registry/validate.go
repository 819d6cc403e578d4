package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/chartcfg/internal/native"
)

// ValidationError describes a property of a document that failed
// validation.
type ValidationError struct {
	// Path is the full property path.
	Path string
	// Value is the offending value.
	Value native.Value
	// Message describes the problem.
	Message string
	// Deprecated marks warnings about legacy paths. They do not make the
	// document invalid.
	Deprecated bool
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is the result of validating a document.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Errors returns the entries that are not deprecation warnings.
func (v ValidationErrors) Errors() ValidationErrors {
	var out ValidationErrors
	for _, e := range v {
		if !e.Deprecated {
			out = append(out, e)
		}
	}
	return out
}

// Warnings returns the deprecation warnings.
func (v ValidationErrors) Warnings() ValidationErrors {
	var out ValidationErrors
	for _, e := range v {
		if e.Deprecated {
			out = append(out, e)
		}
	}
	return out
}

// Err returns v as an error when it holds at least one real error.
func (v ValidationErrors) Err() error {
	if errs := v.Errors(); len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateObject validates every leaf of obj. Paths are resolved below
// prefix (e.g., "scale" for axis-type defaults, "plugins.zoom" for the zoom
// plugin). Registered properties outside scope are reported. Unknown paths
// are accepted.
func (r *Registry) ValidateObject(obj *native.Object, prefix string, scope SettingScope) ValidationErrors {
	flat := obj.Flatten()
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var errs ValidationErrors
	for _, p := range paths {
		full := p
		if prefix != "" {
			full = prefix + "." + p
		}
		s := r.Get(full)
		if s == nil {
			continue
		}
		v := flat[p]
		if s.Deprecated {
			msg := "deprecated"
			if s.ReplacedBy != "" {
				msg = fmt.Sprintf("deprecated, use %s", s.ReplacedBy)
			}
			errs = append(errs, ValidationError{Path: full, Value: v, Message: msg, Deprecated: true})
		}
		if scope != 0 && !s.Scope.HasScope(scope) {
			errs = append(errs, ValidationError{
				Path:    full,
				Value:   v,
				Message: fmt.Sprintf("not allowed in %s defaults", scope),
			})
			continue
		}
		if err := s.Validate(v); err != nil {
			errs = append(errs, ValidationError{Path: full, Value: v, Message: err.Error()})
		}
	}
	return errs
}

// Unknown returns the leaf paths of obj that are not registered.
func (r *Registry) Unknown(obj *native.Object, prefix string) []string {
	var out []string
	for p := range obj.Flatten() {
		full := p
		if prefix != "" {
			full = prefix + "." + p
		}
		if !r.Has(full) {
			out = append(out, full)
		}
	}
	sort.Strings(out)
	return out
}

// Migrate rewrites deprecated paths of obj to their replacements. Values
// already present at the replacement path are kept. It returns the paths
// that were moved.
func (r *Registry) Migrate(obj *native.Object) []string {
	var moved []string
	for _, s := range r.Deprecated() {
		v, ok := obj.Lookup(s.Path)
		if !ok {
			continue
		}
		obj.RemovePath(s.Path)
		if s.ReplacedBy == "" {
			continue
		}
		if _, exists := obj.Lookup(s.ReplacedBy); !exists {
			obj.SetPath(s.ReplacedBy, v)
		}
		moved = append(moved, s.Path)
	}
	return moved
}
