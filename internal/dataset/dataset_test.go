package dataset

import (
	"errors"
	"math"
	"testing"

	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/fill"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/options"
)

func newLine(ctx *defaults.Context) (*options.Options, *LineDataset) {
	if ctx == nil {
		ctx = defaults.NewContext()
	}
	o := options.NewOptions(ctx, "line")
	return o, NewLineDataset(o)
}

func TestLineDataset_Defaults(t *testing.T) {
	_, ds := newLine(nil)

	if got := ds.Type(); got != "line" {
		t.Errorf("Type() = %q, want line", got)
	}
	if ds.ID() == "" {
		t.Error("ID() is empty")
	}
	if ds.IsHidden() {
		t.Error("IsHidden() = true, want false")
	}
	if got := ds.BorderWidth(); got != 3 {
		t.Errorf("BorderWidth() = %v, want 3", got)
	}
	if got := ds.Tension(); got != 0 {
		t.Errorf("Tension() = %v, want 0", got)
	}
	if got := ds.BorderCapStyle(); got != options.CapButt {
		t.Errorf("BorderCapStyle() = %v, want butt", got)
	}
	if got := ds.Fill(); got != fill.False {
		t.Errorf("Fill() = %v, want false", got)
	}
	if got := ds.PointRadius(); got != 3 {
		t.Errorf("PointRadius() = %v, want 3", got)
	}
	if len(ds.BorderDash()) != 0 {
		t.Errorf("BorderDash() = %v, want empty", ds.BorderDash())
	}
}

func TestLineDataset_FillChain(t *testing.T) {
	ctx := defaults.NewContext()
	o, ds := newLine(ctx)

	if got := ds.Fill(); got != fill.False {
		t.Errorf("builtin fill = %v, want false", got)
	}

	if err := ctx.Set(defaults.GlobalLayer, "elements.line.fill", native.String("end")); err != nil {
		t.Fatal(err)
	}
	if got := ds.Fill(); got != fill.End {
		t.Errorf("global fill = %v, want end", got)
	}

	o.Elements().Line().SetFillBool(true)
	if got := ds.Fill(); got != fill.Origin {
		t.Errorf("options fill = %v, want origin", got)
	}
	if got := ds.Which(fill.PropertyFill); got != "options.elements.line" {
		t.Errorf("Which(fill) = %q, want options.elements.line", got)
	}

	if err := ds.SetFillString("-1"); err != nil {
		t.Fatal(err)
	}
	if got, _ := ds.Fill().Offset(); got != "-1" {
		t.Errorf("dataset fill offset = %q, want -1", got)
	}

	ds.RemoveFill()
	if got := ds.Fill(); got != fill.Origin {
		t.Errorf("fill after RemoveFill = %v, want origin from the options", got)
	}
}

func TestLineDataset_FillAsymmetry(t *testing.T) {
	tests := []struct {
		set  bool
		want fill.Fill
	}{
		{false, fill.False},
		{true, fill.Origin},
	}

	for _, tt := range tests {
		_, ds := newLine(nil)
		ds.SetFillBool(tt.set)
		got := ds.Fill()
		if got != tt.want {
			t.Errorf("SetFillBool(%v) then Fill() = %v, want %v", tt.set, got, tt.want)
		}
		if got.Mode() != fill.ModePredefined {
			t.Errorf("SetFillBool(%v) reads back with mode %v, want predefined", tt.set, got.Mode())
		}
		if v, _ := ds.Object().Get(fill.PropertyFill); !native.Equal(v, native.Bool(tt.set)) {
			t.Errorf("stored fill = %v, want the boolean", v)
		}
	}
}

func TestLineDataset_FillValidation(t *testing.T) {
	_, ds := newLine(nil)

	if err := ds.SetFillIndex(0); !errors.Is(err, key.ErrIllegalArgument) {
		t.Errorf("SetFillIndex(0) error = %v", err)
	}
	if ds.Has(fill.PropertyFill) {
		t.Error("rejected fill was stored")
	}
	if err := ds.SetFillIndex(1); err != nil {
		t.Fatal(err)
	}
	if got, ok := ds.Fill().Index(); !ok || got != 1 {
		t.Errorf("Fill().Index() = %d, %v", got, ok)
	}
	if err := ds.SetFillString("bogus"); !errors.Is(err, key.ErrIllegalArgument) {
		t.Errorf("SetFillString(bogus) error = %v", err)
	}
	if got, _ := ds.Fill().Index(); got != 1 {
		t.Errorf("rejected fill replaced the previous value: %v", ds.Fill())
	}
}

func TestLineDataset_FillColors(t *testing.T) {
	_, ds := newLine(nil)
	above := color.RGBA(0, 128, 0, 0.4)
	below := color.RGBA(255, 0, 0, 0.4)

	ds.SetFillColors(fill.Origin, &above, &below)

	if got := ds.Fill(); got != fill.Origin {
		t.Errorf("Fill() = %v, want origin", got)
	}
	if got := ds.FillMode(); got != fill.ModePredefined {
		t.Errorf("FillMode() = %v, want predefined", got)
	}
	a, b, ok := ds.FillColors()
	if !ok || a == nil || b == nil || *a != above || *b != below {
		t.Errorf("FillColors() = %v, %v, %v", a, b, ok)
	}
	if v, _ := ds.Object().Lookup("fill.target"); !native.Equal(v, native.String("origin")) {
		t.Errorf("fill.target = %v", v)
	}

	ds.SetFillBool(false)
	if _, _, ok := ds.FillColors(); ok {
		t.Error("FillColors() should be cleared by a plain fill")
	}
}

func TestLineDataset_FillColorsOneSide(t *testing.T) {
	_, ds := newLine(nil)
	transparent := color.Color{}

	ds.SetFillColors(fill.Origin, nil, &transparent)

	if _, ok := ds.Object().Lookup("fill.above"); ok {
		t.Error("fill.above written for a nil color")
	}
	if v, _ := ds.Object().Lookup("fill.below"); !native.Equal(v, native.String(transparent.String())) {
		t.Errorf("fill.below = %v, want %s", v, transparent.String())
	}
	a, b, ok := ds.FillColors()
	if !ok || a != nil || b == nil || *b != transparent {
		t.Errorf("FillColors() = %v, %v, %v", a, b, ok)
	}

	ds.SetFillColors(fill.False, nil, nil)
	if v, _ := ds.Object().Lookup("fill.target"); !native.Equal(v, native.Bool(false)) {
		t.Errorf("fill.target = %v, want false", v)
	}
	if got := ds.FillMode(); got != fill.ModePredefinedBoolean {
		t.Errorf("FillMode() = %v, want predefinedBoolean", got)
	}
}

func TestLineDataset_Properties(t *testing.T) {
	_, ds := newLine(nil)

	ds.SetLabel("Revenue")
	ds.SetData(1, math.NaN(), 3)
	ds.SetHidden(true)
	ds.SetOrder(2)
	ds.SetBorderColor(color.RGB(0, 0, 255))
	ds.SetBorderCapStyle(options.CapRound)
	if err := ds.SetBorderDash(5, 3); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetBorderDash(5, -1); !errors.Is(err, key.ErrIllegalArgument) {
		t.Errorf("SetBorderDash(5, -1) error = %v", err)
	}

	if got := ds.Label(); got != "Revenue" {
		t.Errorf("Label() = %q", got)
	}
	data := ds.Data()
	if len(data) != 3 || data[0] != 1 || !math.IsNaN(data[1]) || data[2] != 3 {
		t.Errorf("Data() = %v", data)
	}
	if items := ds.Object().GetArray(keyData); len(items) != 3 || !items[1].IsNull() {
		t.Errorf("stored data = %v, want a null gap", items)
	}
	if !ds.IsHidden() || ds.Order() != 2 {
		t.Errorf("hidden = %v, order = %d", ds.IsHidden(), ds.Order())
	}
	if got := ds.BorderColor().Hex(); got != "#0000ff" {
		t.Errorf("BorderColor() = %v", got)
	}
	if got := ds.BorderCapStyle(); got != options.CapRound {
		t.Errorf("BorderCapStyle() = %v", got)
	}
	if got := ds.BorderDash(); len(got) != 2 || got[0] != 5 {
		t.Errorf("BorderDash() = %v", got)
	}

	ds.SetData()
	if ds.Has(keyData) {
		t.Error("SetData() should remove the data")
	}
}

func TestLineDataset_InheritsLineOptions(t *testing.T) {
	o, ds := newLine(nil)
	line := o.Elements().Line()

	if err := line.SetTension(0.4); err != nil {
		t.Fatal(err)
	}
	line.SetBorderColor(color.RGB(255, 0, 0))

	if got := ds.Tension(); got != 0.4 {
		t.Errorf("Tension() = %v, want 0.4 from the options", got)
	}
	if got := ds.BorderColor().Hex(); got != "#ff0000" {
		t.Errorf("BorderColor() = %v, want #ff0000 from the options", got)
	}
	if err := ds.SetTension(0.1); err != nil {
		t.Fatal(err)
	}
	if got := ds.Tension(); got != 0.1 {
		t.Errorf("Tension() = %v, want 0.1", got)
	}
	if got := line.Tension(); got != 0.4 {
		t.Errorf("line Tension() = %v, want 0.4", got)
	}
}

func TestData(t *testing.T) {
	o := options.NewOptions(defaults.NewContext(), "line")
	d := NewData()
	d.SetLabels("Jan", "Feb")

	first, second := NewLineDataset(o), NewLineDataset(o)
	first.SetLabel("a")
	second.SetLabel("b")
	d.Add(first, second)

	if got := d.Labels(); len(got) != 2 || got[1] != "Feb" {
		t.Errorf("Labels() = %v", got)
	}
	arr := d.Object().GetArray(keyDatasets)
	if len(arr) != 2 {
		t.Fatalf("datasets = %v", arr)
	}
	obj, _ := arr[1].AsObject()
	if got := obj.GetString(keyLabel, ""); got != "b" {
		t.Errorf("datasets[1].label = %q", got)
	}

	if !d.Remove(first.ID()) {
		t.Fatal("Remove() = false")
	}
	if d.Remove(first.ID()) {
		t.Error("second Remove() = true")
	}
	if got := d.Datasets(); len(got) != 1 || got[0] != second {
		t.Errorf("Datasets() = %v", got)
	}
}
