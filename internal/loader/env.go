package loader

import (
	"os"
	"strconv"
	"strings"

	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/registry"
)

// DefaultEnvPrefix is the prefix of environment variables read by
// NewEnvLoader.
const DefaultEnvPrefix = "CHARTCFG_"

// EnvLoader loads global defaults from environment variables.
//
// Besides the explicit mapping, any prefixed variable is converted to a
// path: a double underscore separates nested keys and single underscores
// separate the words of a camelCase key, so CHARTCFG_LAYOUT__PADDING
// becomes layout.padding and CHARTCFG_MAINTAIN_ASPECT_RATIO becomes
// maintainAspectRatio.
type EnvLoader struct {
	prefix   string
	mapping  map[string]string
	registry *registry.Registry
	environ  func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix. The
// registry, if not nil, decides how values are typed.
func NewEnvLoader(prefix string, reg *registry.Registry) *EnvLoader {
	return &EnvLoader{
		prefix:   prefix,
		mapping:  defaultEnvMapping(prefix),
		registry: reg,
		environ:  os.Environ,
	}
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "FONT_FAMILY":        "font.family",
		prefix + "FONT_SIZE":          "font.size",
		prefix + "FONT_COLOR":         "color",
		prefix + "LOCALE":             "locale",
		prefix + "ANIMATION_DURATION": "animation.duration",
		prefix + "ANIMATION_EASING":   "animation.easing",
	}
}

// AddMapping maps a variable to a path.
func (l *EnvLoader) AddMapping(envVar, path string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = path
}

// RemoveMapping removes the mapping of a variable.
func (l *EnvLoader) RemoveMapping(envVar string) {
	delete(l.mapping, envVar)
}

// Load returns an object holding every prefixed variable, or nil when
// none is set. Empty values are skipped.
func (l *EnvLoader) Load() *native.Object {
	var obj *native.Object
	for _, entry := range l.environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) || value == "" {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		if obj == nil {
			obj = native.New()
		}
		obj.SetPath(path, l.parseValue(path, value))
	}
	return obj
}

// envToPath converts CHARTCFG_PLUGINS__LEGEND__DISPLAY to
// plugins.legend.display.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	segments := strings.Split(name, "__")
	path := make([]string, 0, len(segments))
	for _, seg := range segments {
		words := strings.Split(strings.ToLower(seg), "_")
		var b strings.Builder
		for _, w := range words {
			if w == "" {
				continue
			}
			if b.Len() == 0 {
				b.WriteString(w)
				continue
			}
			b.WriteString(strings.ToUpper(w[:1]) + w[1:])
		}
		if b.Len() == 0 {
			return ""
		}
		path = append(path, b.String())
	}
	return strings.Join(path, ".")
}

// parseValue types s by the registered type of path. Unregistered paths
// are guessed: booleans, numbers, JSON arrays and objects, then strings.
func (l *EnvLoader) parseValue(path, s string) native.Value {
	var setting *registry.Setting
	if l.registry != nil {
		setting = l.registry.Get(path)
	}
	if setting == nil {
		return guessValue(s)
	}

	switch setting.Type {
	case registry.TypeBool:
		if b, ok := parseBool(s); ok {
			return native.Bool(b)
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return native.Bool(b)
		}
	case registry.TypeInt, registry.TypeFloat:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return native.Number(f)
		}
	case registry.TypeArray, registry.TypeObject:
		if v, err := native.ParseValue(s); err == nil {
			return v
		}
	case registry.TypeString, registry.TypeEnum, registry.TypeColor:
		return native.String(s)
	default:
		return guessValue(s)
	}
	// Left as a string so validation reports the bad value.
	return native.String(s)
}

func guessValue(s string) native.Value {
	if b, ok := parseBool(s); ok {
		return native.Bool(b)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return native.Number(f)
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		if v, err := native.ParseValue(s); err == nil {
			return v
		}
	}
	return native.String(s)
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	}
	return false, false
}
