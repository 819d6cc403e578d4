package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/chartcfg/internal/native"
)

var (
	// ErrSettingAlreadyRegistered is returned when attempting to register a duplicate setting.
	ErrSettingAlreadyRegistered = errors.New("setting already registered")

	// ErrSettingNotFound indicates the setting path is not registered.
	ErrSettingNotFound = errors.New("setting not found")
)

// Registry maintains all known property definitions.
type Registry struct {
	mu       sync.RWMutex
	settings map[string]*Setting
	sections map[string][]*Setting // Settings grouped by top-level key
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		settings: make(map[string]*Setting),
		sections: make(map[string][]*Setting),
	}
}

// NewWithDefaults creates a registry holding the engine's built-in
// properties.
func NewWithDefaults() *Registry {
	r := New()
	r.RegisterDefaults()
	return r
}

// Register adds a setting definition to the registry.
// Returns an error if a setting with the same path already exists.
func (r *Registry) Register(setting Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if setting.Path == "" {
		return fmt.Errorf("register: empty path")
	}
	if _, exists := r.settings[setting.Path]; exists {
		return fmt.Errorf("%w: %s", ErrSettingAlreadyRegistered, setting.Path)
	}

	s := &setting
	r.settings[setting.Path] = s

	section := extractSection(setting.Path)
	r.sections[section] = append(r.sections[section], s)

	return nil
}

// MustRegister registers a setting and panics on error.
func (r *Registry) MustRegister(setting Setting) {
	if err := r.Register(setting); err != nil {
		panic(err)
	}
}

// Get returns the setting definition for the given path, or nil.
func (r *Registry) Get(path string) *Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings[path]
}

// Lookup is like Get but returns ErrSettingNotFound for unknown paths.
func (r *Registry) Lookup(path string) (*Setting, error) {
	if s := r.Get(path); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, path)
}

// Has checks if a setting is registered.
func (r *Registry) Has(path string) bool {
	return r.Get(path) != nil
}

// All returns all registered settings sorted by path.
func (r *Registry) All() []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Setting, 0, len(r.settings))
	for _, s := range r.settings {
		result = append(result, s)
	}
	sortByPath(result)
	return result
}

// Section returns all settings under a top-level key (e.g., "plugins").
func (r *Registry) Section(name string) []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings := r.sections[name]
	result := make([]*Setting, len(settings))
	copy(result, settings)
	sortByPath(result)
	return result
}

// Sections returns all section names.
func (r *Registry) Sections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.sections))
	for section := range r.sections {
		result = append(result, section)
	}
	sort.Strings(result)
	return result
}

// Search finds settings whose path, description or tags contain query.
func (r *Registry) Search(query string) []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	var result []*Setting
	for _, s := range r.settings {
		if matchesSetting(s, query) {
			result = append(result, s)
		}
	}
	sortByPath(result)
	return result
}

// Deprecated returns all deprecated settings.
func (r *Registry) Deprecated() []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Setting
	for _, s := range r.settings {
		if s.Deprecated {
			result = append(result, s)
		}
	}
	sortByPath(result)
	return result
}

// Default returns the built-in constant for a path, or nil.
func (r *Registry) Default(path string) any {
	if s := r.Get(path); s != nil {
		return s.Default
	}
	return nil
}

// Defaults returns every non-nil built-in constant keyed by path.
// Deprecated settings are skipped.
func (r *Registry) Defaults() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]any, len(r.settings))
	for path, s := range r.settings {
		if s.Default != nil && !s.Deprecated {
			result[path] = s.Default
		}
	}
	return result
}

// Seed builds the global defaults object from the built-in constants.
func (r *Registry) Seed() *native.Object {
	obj := native.New()
	for path, def := range r.Defaults() {
		obj.SetPath(path, native.ValueOf(def))
	}
	return obj
}

// Validate checks a value against the setting registered at path.
// Unknown paths are accepted: plugins may define their own properties.
func (r *Registry) Validate(path string, value native.Value) error {
	s := r.Get(path)
	if s == nil {
		return nil
	}
	return s.Validate(value)
}

func extractSection(path string) string {
	parts := strings.SplitN(path, ".", 2)
	return parts[0]
}

func matchesSetting(s *Setting, query string) bool {
	if strings.Contains(strings.ToLower(s.Path), query) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Description), query) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortByPath(settings []*Setting) {
	sort.Slice(settings, func(i, j int) bool {
		return settings[i].Path < settings[j].Path
	})
}
