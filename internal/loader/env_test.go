package loader

import (
	"testing"

	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/registry"
)

func newEnvLoader(vars ...string) *EnvLoader {
	l := NewEnvLoader(DefaultEnvPrefix, registry.NewWithDefaults())
	l.environ = func() []string { return vars }
	return l
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := newEnvLoader()
	tests := []struct {
		env  string
		want string
	}{
		{"CHARTCFG_COLOR", "color"},
		{"CHARTCFG_MAINTAIN_ASPECT_RATIO", "maintainAspectRatio"},
		{"CHARTCFG_LAYOUT__PADDING", "layout.padding"},
		{"CHARTCFG_PLUGINS__LEGEND__DISPLAY", "plugins.legend.display"},
		{"CHARTCFG_PLUGINS__ZOOM__ZOOM__WHEEL__SPEED", "plugins.zoom.zoom.wheel.speed"},
		{"CHARTCFG_SCALE__TICKS__MAX_TICKS_LIMIT", "scale.ticks.maxTicksLimit"},
		{"CHARTCFG_FONT____SIZE", ""},
	}
	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestEnvLoader_Load(t *testing.T) {
	l := newEnvLoader(
		"CHARTCFG_FONT_SIZE=14",
		"CHARTCFG_RESPONSIVE=0",
		"CHARTCFG_LOCALE=1234",
		"CHARTCFG_CUSTOM__SERIES=[4,8]",
		"CHARTCFG_PLUGINS__LEGEND__DISPLAY=no",
		"CHARTCFG_CUSTOM__THRESHOLD=0.5",
		"CHARTCFG_CUSTOM__LABEL=hello",
		"CHARTCFG_EMPTY=",
		"OTHER_COLOR=#fff",
	)
	obj := l.Load()
	if obj == nil {
		t.Fatal("Load() = nil")
	}

	tests := []struct {
		path string
		want native.Value
	}{
		{"font.size", native.Int(14)},
		{"responsive", native.Bool(false)},
		{"locale", native.String("1234")},
		{"plugins.legend.display", native.Bool(false)},
		{"custom.threshold", native.Number(0.5)},
		{"custom.label", native.String("hello")},
	}
	for _, tt := range tests {
		if got, _ := obj.Lookup(tt.path); !native.Equal(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.path, got, tt.want)
		}
	}

	series, _ := obj.Lookup("custom.series")
	if items, ok := series.AsArray(); !ok || len(items) != 2 {
		t.Errorf("custom.series = %v", series)
	}
	if _, ok := obj.Lookup("empty"); ok {
		t.Error("empty variable was loaded")
	}
	if _, ok := obj.Lookup("color"); ok {
		t.Error("variable without the prefix was loaded")
	}
}

func TestEnvLoader_Mapping(t *testing.T) {
	l := newEnvLoader("CHARTCFG_BRAND=#ff0000", "CHARTCFG_FONT_FAMILY=Inter")
	l.AddMapping("CHARTCFG_BRAND", "color")
	obj := l.Load()

	if got, _ := obj.Lookup("color"); !native.Equal(got, native.String("#ff0000")) {
		t.Errorf("color = %v", got)
	}
	if got, _ := obj.Lookup("font.family"); !native.Equal(got, native.String("Inter")) {
		t.Errorf("font.family = %v", got)
	}

	l.RemoveMapping("CHARTCFG_BRAND")
	obj = l.Load()
	if got, _ := obj.Lookup("brand"); !native.Equal(got, native.String("#ff0000")) {
		t.Errorf("brand = %v after RemoveMapping", got)
	}
}

func TestEnvLoader_NothingSet(t *testing.T) {
	if obj := newEnvLoader("PATH=/bin").Load(); obj != nil {
		t.Errorf("Load() = %v, want nil", obj)
	}
}

func TestEnvLoader_InvalidTypedValue(t *testing.T) {
	obj := newEnvLoader("CHARTCFG_RESPONSIVE=sometimes").Load()
	if got, _ := obj.Lookup("responsive"); !native.Equal(got, native.String("sometimes")) {
		t.Errorf("responsive = %v, want the raw string", got)
	}
}
