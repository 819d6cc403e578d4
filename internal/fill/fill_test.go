package fill

import (
	"errors"
	"testing"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

func TestAbsolute(t *testing.T) {
	tests := []struct {
		index   int
		wantErr bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{7, false},
	}

	for _, tt := range tests {
		f, err := Absolute(tt.index)
		if (err != nil) != tt.wantErr {
			t.Errorf("Absolute(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, key.ErrIllegalArgument) {
				t.Errorf("Absolute(%d) error = %v, want ErrIllegalArgument", tt.index, err)
			}
			continue
		}
		if i, ok := f.Index(); !ok || i != tt.index {
			t.Errorf("Absolute(%d).Index() = %d, %v", tt.index, i, ok)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Fill
		wantErr bool
	}{
		{"origin", Origin, false},
		{"ORIGIN", Origin, false},
		{"Start", Start, false},
		{"false", False, false},
		{"true", Origin, false},
		{"TRUE", Origin, false},
		{"True", Origin, false},
		{"shape", Shape, false},
		{"-1", Fill{mode: ModeRelative, relative: "-1"}, false},
		{"+12", Fill{mode: ModeRelative, relative: "+12"}, false},
		{"1", Fill{}, true},
		{"+", Fill{}, true},
		{"bogus", Fill{}, true},
		{"", Fill{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRelativeIndex(t *testing.T) {
	f, err := RelativeIndex(2)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := f.Offset(); s != "+2" {
		t.Errorf("RelativeIndex(2) = %q, want +2", s)
	}
	if n, _ := f.OffsetValue(); n != 2 {
		t.Errorf("OffsetValue = %d, want 2", n)
	}
	if _, err := RelativeIndex(0); !errors.Is(err, key.ErrIllegalArgument) {
		t.Errorf("RelativeIndex(0) error = %v", err)
	}
}

func TestFromNative(t *testing.T) {
	baseline := native.New()
	baseline.SetNumber(key.Name("value"), 25)

	tests := []struct {
		name string
		in   native.Value
		want Fill
		ok   bool
	}{
		{"false", native.Bool(false), False, true},
		{"true", native.Bool(true), Origin, true},
		{"index", native.Int(2), Fill{mode: ModeAbsolute, index: 2}, true},
		{"zero index", native.Int(0), Fill{}, false},
		{"fraction", native.Number(1.5), Fill{}, false},
		{"keyword", native.String("end"), End, true},
		{"relative", native.String("-2"), Fill{mode: ModeRelative, relative: "-2"}, true},
		{"baseline", native.ObjectValue(baseline), Fill{mode: ModeBaseline, baseline: 25}, true},
		{"empty object", native.ObjectValue(native.New()), Fill{}, false},
		{"null", native.Null(), Fill{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromNative(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("FromNative(%v) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// Booleans are coerced the way the engine coerces them: false means no
// fill and true means fill to the origin.
func TestHandler_BooleanReadsBackAsKeyword(t *testing.T) {
	h := NewHandler(PropertyFill)
	n := native.NewNode(nil)

	h.SetBool(n, false)
	if got := h.Get(n, nil, Origin); got != False {
		t.Errorf("after SetBool(false) Get = %v, want %v", got, False)
	}
	if m := h.Mode(n); m != ModePredefinedBoolean {
		t.Errorf("Mode = %v, want %v", m, ModePredefinedBoolean)
	}
	if v := n.Object().Value(PropertyFill); !native.Equal(v, native.Bool(false)) {
		t.Errorf("stored value = %v, want false", v)
	}

	h.SetBool(n, true)
	got := h.Get(n, nil, False)
	if got != Origin {
		t.Errorf("after SetBool(true) Get = %v, want %v", got, Origin)
	}
	if got.Mode() != ModePredefined {
		t.Errorf("Get mode = %v, want a keyword not a boolean", got.Mode())
	}
	if v := n.Object().Value(PropertyFill); !native.Equal(v, native.Bool(true)) {
		t.Errorf("stored value = %v, want true", v)
	}
}

func TestHandler_FalseKeywordStoredAsBoolean(t *testing.T) {
	h := NewHandler(PropertyFill)
	tests := []struct {
		name string
		set  func(n *native.Node) error
	}{
		{"Set(False)", func(n *native.Node) error { h.Set(n, False); return nil }},
		{"SetString(false)", func(n *native.Node) error { return h.SetString(n, "false") }},
		{"SetString(FALSE)", func(n *native.Node) error { return h.SetString(n, "FALSE") }},
		{"SetColors(False)", func(n *native.Node) error { h.SetColors(n, False, "red", ""); return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := native.NewNode(nil)
			if err := tt.set(n); err != nil {
				t.Fatal(err)
			}
			v := n.Object().Value(PropertyFill)
			if obj, ok := v.AsObject(); ok {
				v = obj.Value(PropertyTarget)
			}
			if v.Kind() != native.KindBool || !native.Equal(v, native.Bool(false)) {
				t.Errorf("stored value = %v (%v), want boolean false", v, v.Kind())
			}
			if m := h.Mode(n); m != ModePredefinedBoolean {
				t.Errorf("Mode = %v, want %v", m, ModePredefinedBoolean)
			}
			if got := h.Get(n, nil, Origin); got != False {
				t.Errorf("Get = %v, want %v", got, False)
			}
		})
	}
}

func TestHandler_SetIndex(t *testing.T) {
	h := NewHandler(PropertyFill)
	n := native.NewNode(nil)

	if err := h.SetIndex(n, 0); !errors.Is(err, key.ErrIllegalArgument) {
		t.Fatalf("SetIndex(0) error = %v, want ErrIllegalArgument", err)
	}
	if n.Has(PropertyFill) {
		t.Error("rejected index should not be stored")
	}

	if err := h.SetIndex(n, 1); err != nil {
		t.Fatal(err)
	}
	got := h.Get(n, nil, False)
	if i, ok := got.Index(); !ok || i != 1 {
		t.Errorf("Get = %v, want absolute 1", got)
	}
}

func TestHandler_SetString(t *testing.T) {
	h := NewHandler(PropertyFill)
	n := native.NewNode(nil)

	if err := h.SetString(n, "-1"); err != nil {
		t.Fatal(err)
	}
	got := h.Get(n, nil, False)
	if s, ok := got.Offset(); !ok || s != "-1" {
		t.Errorf("Get = %v, want relative -1", got)
	}

	if err := h.SetString(n, "bogus"); !errors.Is(err, key.ErrIllegalArgument) {
		t.Fatalf("SetString(bogus) error = %v", err)
	}
	if got := h.Get(n, nil, False); got != (Fill{mode: ModeRelative, relative: "-1"}) {
		t.Errorf("rejected value changed the fill to %v", got)
	}

	if err := h.SetString(n, "Stack"); err != nil {
		t.Fatal(err)
	}
	if got := h.Get(n, nil, False); got != Stack {
		t.Errorf("Get = %v, want stack", got)
	}
}

func TestHandler_ChainFallback(t *testing.T) {
	h := NewHandler(PropertyFill)
	n := native.NewNode(nil)

	typeDefaults := native.New()
	typeDefaults.SetString(PropertyFill, "start")
	global := native.New()
	global.SetBool(PropertyFill, true)
	chain := defaults.NewChain(
		defaults.ObjectProvider("type", typeDefaults),
		defaults.ObjectProvider("global", global),
	)

	if got := h.Get(n, chain, False); got != Start {
		t.Errorf("Get = %v, want start from type defaults", got)
	}

	h.Set(n, End)
	if got := h.Get(n, chain, False); got != End {
		t.Errorf("Get = %v, want local end", got)
	}

	h.Remove(n)
	if n.Object().Has(key.Name("_fillMode")) {
		t.Error("Remove should delete the mode")
	}
	if got := h.Get(n, chain, False); got != Start {
		t.Errorf("after Remove Get = %v, want start", got)
	}

	typeDefaults.SetString(PropertyFill, "nonsense")
	if got := h.Get(n, chain, False); got != Origin {
		t.Errorf("invalid tier should fall through, got %v", got)
	}

	if got := h.Get(n, nil, Bool(false)); got != False {
		t.Errorf("constant = %v, want %v", got, False)
	}
}

func TestHandler_Baseline(t *testing.T) {
	h := NewHandler(PropertyTarget)
	n := native.NewNode(nil)

	f, err := Baseline(12.5)
	if err != nil {
		t.Fatal(err)
	}
	h.Set(n, f)
	if v, ok := n.Object().Lookup("target.value"); !ok || !native.Equal(v, native.Number(12.5)) {
		t.Errorf("target.value = %v", v)
	}
	if got := h.Get(n, nil, False); got != f {
		t.Errorf("Get = %v, want %v", got, f)
	}

	h.Set(n, Fill{})
	if n.Has(PropertyTarget) {
		t.Error("unset fill should remove the property")
	}
}

func TestHandler_MaterializesParent(t *testing.T) {
	root := native.NewNode(nil)
	line := native.NewChildNode(root, key.Name("line"), nil)
	h := NewHandler(PropertyFill)

	h.Set(line, Origin)
	if v, ok := root.Object().Lookup("line.fill"); !ok || !native.Equal(v, native.String("origin")) {
		t.Errorf("line.fill = %v, %v", v, ok)
	}
}
