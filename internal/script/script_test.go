package script

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

func TestCompile(t *testing.T) {
	s := NewState()
	defer s.Close()

	tests := []struct {
		name string
		src  string
		args []native.Value
		want native.Value
	}{
		{"chunk", "return function(ctx, v) return v * 2 end", []native.Value{native.Int(21)}, native.Int(42)},
		{"bare function", "function(ctx, a, b) return a .. b end", []native.Value{native.String("x"), native.String("y")}, native.String("xy")},
		{"no result", "function() end", nil, native.Undefined()},
		{"boolean", "function(ctx, v) return v > 1 end", []native.Value{native.Int(3)}, native.Bool(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := s.Compile(tt.name, tt.src)
			if err != nil {
				t.Fatalf("Compile error: %v", err)
			}
			if got := fn(nil, tt.args...); !native.Equal(got, tt.want) {
				t.Errorf("call = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, src := range []string{"function(", "return 42", ""} {
		if _, err := s.Compile("bad", src); !errors.Is(err, ErrCompile) {
			t.Errorf("Compile(%q) error = %v, want ErrCompile", src, err)
		}
	}
}

func TestCall_Context(t *testing.T) {
	s := NewState()
	defer s.Close()

	fn, err := s.Compile("color", `
		return function(ctx)
		  if ctx.datasetIndex == 0 then return "red" end
		  return ctx.options.color
		end`)
	if err != nil {
		t.Fatal(err)
	}

	ctx := native.New()
	ctx.SetInt(key.Name("datasetIndex"), 0)
	if got := fn(ctx); !native.Equal(got, native.String("red")) {
		t.Errorf("index 0 = %v, want red", got)
	}

	ctx.SetInt(key.Name("datasetIndex"), 1)
	ctx.SetPath("options.color", native.String("#666"))
	if got := fn(ctx); !native.Equal(got, native.String("#666")) {
		t.Errorf("index 1 = %v, want #666", got)
	}
}

func TestCall_Tables(t *testing.T) {
	s := NewState()
	defer s.Close()

	fn, err := s.Compile("tables", `function() return { padding = { top = 4 }, dash = { 5, 3 } } end`)
	if err != nil {
		t.Fatal(err)
	}

	got := fn(nil)
	obj, ok := got.AsObject()
	if !ok {
		t.Fatalf("result kind = %v, want object", got.Kind())
	}
	if v, _ := obj.Lookup("padding.top"); !native.Equal(v, native.Int(4)) {
		t.Errorf("padding.top = %v, want 4", v)
	}
	if dash := obj.GetArray(key.Name("dash")); len(dash) != 2 || !native.Equal(dash[1], native.Int(3)) {
		t.Errorf("dash = %v, want [5 3]", dash)
	}
}

func TestCall_RuntimeErrorIsUndefined(t *testing.T) {
	s := NewState()
	defer s.Close()

	fn, err := s.Compile("boom", `function() error("boom") end`)
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(nil); !got.IsUndefined() {
		t.Errorf("failing callback = %v, want undefined", got)
	}

	// The state stays usable after a failure.
	ok, err := s.Compile("ok", `function() return 1 end`)
	if err != nil {
		t.Fatal(err)
	}
	if got := ok(nil); !native.Equal(got, native.Int(1)) {
		t.Errorf("after failure = %v, want 1", got)
	}
}

func TestCall_Timeout(t *testing.T) {
	s := NewState(WithTimeout(20 * time.Millisecond))
	defer s.Close()

	fn, err := s.Compile("loop", `function() while true do end end`)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	if got := fn(nil); !got.IsUndefined() {
		t.Errorf("timed out callback = %v, want undefined", got)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("callback ran for %v", elapsed)
	}
}

func TestSandbox(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"require", "dofile", "loadfile", "load", "print"} {
		fn, err := s.Compile(name, "function() return "+name+" == nil end")
		if err != nil {
			t.Fatal(err)
		}
		if got := fn(nil); !native.Equal(got, native.Bool(true)) {
			t.Errorf("%s should be removed", name)
		}
	}

	fn, err := s.Compile("libs", `function() return string.upper("a") .. math.floor(2.5) .. #table.concat({"x"}) end`)
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(nil); !native.Equal(got, native.String("A21")) {
		t.Errorf("safe libraries = %v, want A21", got)
	}
}

func TestRegister_Reentrant(t *testing.T) {
	s := NewState()
	defer s.Close()

	double, err := s.Compile("double", `function(ctx, v) return v * 2 end`)
	if err != nil {
		t.Fatal(err)
	}
	s.Register("double", func(_ *native.Object, args ...native.Value) native.Value {
		if len(args) == 0 {
			return native.Undefined()
		}
		return double(nil, args[0])
	})

	fn, err := s.Compile("outer", `function(ctx, v) return double(v) + 1 end`)
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(nil, native.Int(4)); !native.Equal(got, native.Int(9)) {
		t.Errorf("reentrant call = %v, want 9", got)
	}
}

func TestFunctionRoundTrip(t *testing.T) {
	s := NewState()
	defer s.Close()

	fn, err := s.Compile("factory", `function() return function(ctx, v) return v + 1 end end`)
	if err != nil {
		t.Fatal(err)
	}
	inner, ok := fn(nil).AsFunction()
	if !ok {
		t.Fatal("factory should return a function")
	}
	if got := inner(nil, native.Int(1)); !native.Equal(got, native.Int(2)) {
		t.Errorf("inner = %v, want 2", got)
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	fn, err := s.Compile("f", `function() return 1 end`)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()
	s.Close()

	if got := fn(nil); !got.IsUndefined() {
		t.Errorf("closed call = %v, want undefined", got)
	}
	if _, err := s.Compile("g", `function() end`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Compile on closed state error = %v, want ErrStateClosed", err)
	}
}
