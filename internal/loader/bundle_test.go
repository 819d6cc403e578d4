package loader

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/native"
)

type recordingObserver struct {
	loaded map[string]int
	failed map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{loaded: map[string]int{}, failed: map[string]int{}}
}

func (r *recordingObserver) LayerLoaded(layer string, err error) {
	if err != nil {
		r.failed[layer]++
		return
	}
	r.loaded[layer]++
}

const manifest = `
version: 1
global: [base.toml]
charts:
  line: [charts/line.yaml]
scales:
  linear: [linear.json]
plugins:
  zoom: [zoom.yaml]
env: true
`

func bundleFS() *MemFS {
	memfs := NewMemFS()
	memfs.AddFile("/cfg/bundle.yaml", manifest)
	memfs.AddFile("/cfg/base.toml", `
color = "#111111"
[font]
size = 14
`)
	memfs.AddFile("/cfg/charts/line.yaml", `
font:
  size: 20
`)
	memfs.AddFile("/cfg/linear.json", `{"ticks": {"padding": 7}}`)
	memfs.AddFile("/cfg/zoom.yaml", `
zoom:
  wheel:
    speed: 0.5
`)
	return memfs
}

func TestParseBundle(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"minimal", "version: 1\n", false},
		{"full", manifest, false},
		{"missing version", "global: [a.toml]\n", true},
		{"future version", "version: 2\n", true},
		{"unknown field", "version: 1\nlayers: []\n", true},
		{"empty path", "version: 1\nglobal: ['']\n", true},
		{"empty chart type", "version: 1\ncharts:\n  '': [a.toml]\n", true},
		{"lowercase env prefix", "version: 1\nenvPrefix: chart_\n", true},
		{"env prefix without underscore", "version: 1\nenvPrefix: CHART\n", true},
		{"include depth", "version: 1\nmaxIncludeDepth: 64\n", true},
		{"not yaml", "version: [1\n", true},
	}

	l := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.ParseBundle("bundle.yaml", []byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseBundle() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBundle_Files(t *testing.T) {
	l := New(WithFS(bundleFS()))
	b, err := l.LoadBundle("/cfg/bundle.yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/cfg/base.toml", "/cfg/charts/line.yaml", "/cfg/linear.json", "/cfg/zoom.yaml"}
	got := b.Files()
	if len(got) != len(want) {
		t.Fatalf("Files() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Files()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestApply(t *testing.T) {
	obs := newRecordingObserver()
	l := New(
		WithFS(bundleFS()),
		WithObserver(obs),
		WithEnviron(func() []string { return []string{"CHARTCFG_COLOR=#222222"} }),
	)
	b, err := l.LoadBundle("/cfg/bundle.yaml")
	if err != nil {
		t.Fatal(err)
	}

	ctx := defaults.NewContext()
	if err := l.Apply(context.Background(), ctx, b); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	tests := []struct {
		name       string
		chain      *defaults.Chain
		path       string
		want       native.Value
		wantOrigin string
	}{
		{"env overrides file", ctx.ChartChain("bar"), "color", native.String("#222222"), defaults.GlobalLayer},
		{"global font", ctx.ChartChain("bar"), "font.size", native.Int(14), defaults.GlobalLayer},
		{"chart font", ctx.ChartChain("line"), "font.size", native.Int(20), "chart:line"},
		{"scale ticks", ctx.ScaleChain("linear"), "ticks.padding", native.Int(7), "scale:linear"},
		{"plugin wheel", ctx.PluginChain("line", "zoom"), "zoom.wheel.speed", native.Number(0.5), "plugin:zoom"},
	}
	for _, tt := range tests {
		got, origin, ok := tt.chain.LookupPath(nil, tt.path)
		if !ok || !native.Equal(got, tt.want) || origin != tt.wantOrigin {
			t.Errorf("%s: %s = %v from %q, want %v from %q", tt.name, tt.path, got, origin, tt.want, tt.wantOrigin)
		}
	}

	for _, layer := range []string{"global", "chart:line", "scale:linear", "plugin:zoom"} {
		if obs.loaded[layer] != 1 {
			t.Errorf("observer saw %d loads of %s, want 1", obs.loaded[layer], layer)
		}
	}
}

func TestApply_InvalidLeavesContextUnchanged(t *testing.T) {
	memfs := bundleFS()
	memfs.AddFile("/cfg/charts/line.yaml", "responsive: sometimes\n")
	obs := newRecordingObserver()
	l := New(WithFS(memfs), WithObserver(obs), WithEnviron(func() []string { return nil }))
	b, err := l.LoadBundle("/cfg/bundle.yaml")
	if err != nil {
		t.Fatal(err)
	}

	ctx := defaults.NewContext()
	if err := l.Apply(context.Background(), ctx, b); err == nil {
		t.Fatal("Apply() should reject an invalid chart layer")
	}
	if got, origin, _ := ctx.ChartChain("bar").LookupPath(nil, "font.size"); origin != defaults.BuiltinLayer {
		t.Errorf("font.size = %v from %q after a failed Apply, want builtin", got, origin)
	}
	if obs.failed["chart:line"] != 1 {
		t.Errorf("observer failures = %v", obs.failed)
	}
}

func TestApply_Errors(t *testing.T) {
	memfs := bundleFS()
	l := New(WithFS(memfs))

	b, err := l.ParseBundle("inline", []byte("version: 1\nglobal: [/cfg/nope.toml]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Apply(context.Background(), defaults.NewContext(), b); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Apply() with a missing file error = %v", err)
	}

	b, err = l.LoadBundle("/cfg/bundle.yaml")
	if err != nil {
		t.Fatal(err)
	}
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Apply(canceled, defaults.NewContext(), b); !errors.Is(err, context.Canceled) {
		t.Errorf("Apply() with a canceled context error = %v", err)
	}

	if _, err := l.LoadBundle("/cfg/missing.yaml"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadBundle(missing) error = %v", err)
	}
}
