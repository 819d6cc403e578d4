// Package color parses and formats the CSS color strings understood by the
// charting engine.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a string is not a recognized color.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGBA color. Alpha ranges from 0 (transparent) to 1.
type Color struct {
	R, G, B uint8
	A       float64
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{255, 255, 255, 1}
)

var named = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         {255, 0, 0, 1},
	"green":       {0, 128, 0, 1},
	"blue":        {0, 0, 255, 1},
	"yellow":      {255, 255, 0, 1},
	"orange":      {255, 165, 0, 1},
	"purple":      {128, 0, 128, 1},
	"gray":        {128, 128, 128, 1},
	"grey":        {128, 128, 128, 1},
}

var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*([0-9]*\.?[0-9]+)\s*,\s*([0-9]*\.?[0-9]+)%\s*,\s*([0-9]*\.?[0-9]+)%\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
)

// RGBA creates a color. Alpha is clamped to [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Parse parses "#rgb", "#rrggbb", "rgb(...)", "rgba(...)", "hsl(...)",
// "hsla(...)" or a color name.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := named[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return Color{}, fmt.Errorf("%w: channel out of range in %q", ErrInvalidColor, s)
			}
			channels[i] = uint8(n)
		}
		alpha, err := parseAlpha(m[4])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return RGBA(channels[0], channels[1], channels[2], alpha), nil
	}

	if m := hslPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		light, _ := strconv.ParseFloat(m[3], 64)
		alpha, err := parseAlpha(m[4])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c := colorful.Hsl(math.Mod(h, 360), clamp01(sat/100), clamp01(light/100)).Clamped()
		r, g, b := c.RGB255()
		return RGBA(r, g, b, alpha), nil
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValid reports whether s parses as a color.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// WithAlpha returns c with a new alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Opaque reports whether alpha is 1.
func (c Color) Opaque() bool { return c.A >= 1 }

// Hex returns "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// RGBAString returns "rgba(r,g,b,a)".
func (c Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// String returns the hex form for opaque colors and the rgba form
// otherwise.
func (c Color) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return c.RGBAString()
}

// Blend mixes c toward other by t in [0, 1]. Alpha is interpolated
// linearly.
func (c Color) Blend(other Color, t float64) Color {
	t = clamp01(t)
	mixed := c.colorful().BlendRgb(other.colorful(), t).Clamped()
	r, g, b := mixed.RGB255()
	return RGBA(r, g, b, c.A+(other.A-c.A)*t)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func parseAlpha(s string) (float64, error) {
	if s == "" {
		return 1, nil
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(a), nil
}

func clamp01(f float64) float64 {
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > 1:
		return 1
	}
	return f
}
