package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

func TestTierOf(t *testing.T) {
	tests := []struct {
		origin string
		want   string
	}{
		{"global", "global"},
		{"chart:line", "chart"},
		{"plugin:zoom", "plugin"},
		{"options.elements.line", "options"},
		{"local", "local"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tierOf(tt.origin); got != tt.want {
			t.Errorf("tierOf(%q) = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestObserver_CountsResolutions(t *testing.T) {
	o := NewObserver("")
	ctx := defaults.NewContext(defaults.WithObserver(o))
	if err := ctx.Set(defaults.GlobalLayer, "color", native.String("#111")); err != nil {
		t.Fatal(err)
	}
	// Written directly: Set would reject a string for a boolean property.
	ctx.Chart("line").Data.SetString(key.Name("responsive"), "yes")

	chain := ctx.ChartChain("line")
	chain.String(nil, key.Name("color"), "")
	chain.String(nil, key.Name("color"), "")
	chain.Bool(nil, key.Name("responsive"), false)
	chain.Number(nil, key.Name("unknownProperty"), 1)

	if got := testutil.ToFloat64(o.resolved.WithLabelValues("global")); got != 2 {
		t.Errorf("global resolutions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(o.resolved.WithLabelValues("builtin")); got != 1 {
		t.Errorf("builtin resolutions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(o.resolved.WithLabelValues(defaults.OriginConstant)); got != 1 {
		t.Errorf("constant resolutions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(o.mismatches.WithLabelValues("chart", "string")); got != 1 {
		t.Errorf("chart mismatches = %v, want 1", got)
	}
}

func TestObserver_LayerLoaded(t *testing.T) {
	o := NewObserver("test")
	o.LayerLoaded("global", nil)
	o.LayerLoaded("global", errors.New("bad"))
	o.LayerLoaded("global", nil)

	if got := testutil.ToFloat64(o.reloads.WithLabelValues("global", "ok")); got != 2 {
		t.Errorf("ok loads = %v, want 2", got)
	}
	if got := testutil.ToFloat64(o.reloads.WithLabelValues("global", "error")); got != 1 {
		t.Errorf("failed loads = %v, want 1", got)
	}
}

func TestObserver_Nil(t *testing.T) {
	var o *Observer
	o.Resolved("color", "global")
	o.Mismatch("color", "global", native.KindNumber)
	o.LayerLoaded("global", nil)
}

func TestObserver_Handler(t *testing.T) {
	o := NewObserver("")
	o.Resolved("font.size", "global")

	rec := httptest.NewRecorder()
	o.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(rec.Body.String(), "chartcfg_resolutions_total") {
		t.Errorf("metrics output missing counter:\n%s", rec.Body.String())
	}
}
