package color

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#666", RGB(0x66, 0x66, 0x66)},
		{"#FF0000", RGB(255, 0, 0)},
		{"rgba(0,0,0,0.1)", RGBA(0, 0, 0, 0.1)},
		{"rgb(10, 20, 30)", RGB(10, 20, 30)},
		{" Red ", RGB(255, 0, 0)},
		{"transparent", Transparent},
		{"hsl(0, 100%, 50%)", RGB(255, 0, 0)},
		{"hsla(120, 100%, 25%, 0.5)", RGBA(0, 128, 0, 0.5)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgb(256,0,0)", "rgba(1,2)", "chartreuse-ish"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestColor_String(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{RGB(0x66, 0x66, 0x66), "#666666"},
		{RGBA(0, 0, 0, 0.1), "rgba(0,0,0,0.1)"},
		{Transparent, "rgba(0,0,0,0)"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestColor_WithAlpha(t *testing.T) {
	c := Black.WithAlpha(2)
	if c.A != 1 {
		t.Errorf("alpha = %v, want clamped to 1", c.A)
	}
	c = Black.WithAlpha(-1)
	if c.A != 0 {
		t.Errorf("alpha = %v, want clamped to 0", c.A)
	}
}

func TestColor_Blend(t *testing.T) {
	if got := Black.Blend(White, 0); got != Black {
		t.Errorf("Blend(0) = %+v, want black", got)
	}
	if got := Black.Blend(White, 1); got != White {
		t.Errorf("Blend(1) = %+v, want white", got)
	}
	half := Black.Blend(Transparent, 0.5)
	if half.A != 0.5 {
		t.Errorf("blended alpha = %v, want 0.5", half.A)
	}
}
