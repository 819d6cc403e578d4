package options

import (
	"strconv"

	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Font properties.
const (
	keyFamily      key.Name = "family"
	keySize        key.Name = "size"
	keyStyle       key.Name = "style"
	keyWeight      key.Name = "weight"
	keyLineHeight  key.Name = "lineHeight"
	keyLineWidth   key.Name = "lineWidth"
	keyStrokeStyle key.Name = "strokeStyle"
	keyColor       key.Name = "color"
	keyFont        key.Name = "font"
)

// Font is the font of a chart element.
type Font struct {
	*Entity
}

// newFont returns the font stored under k of parent. When inheritFrom is
// not nil, properties missing from the font and its own defaults are read
// from it.
func newFont(parent *Entity, k key.Key, inheritFrom *Font) *Font {
	e := parent.Child(k)
	if inheritFrom != nil {
		e.chain = inherit(e.chain, inheritFrom.Entity, "font")
	}
	return &Font{Entity: e}
}

// Family returns the font family.
func (f *Font) Family() string { return f.GetString(keyFamily, DefaultFontFamily) }

// SetFamily sets the font family.
func (f *Font) SetFamily(family string) { f.SetString(keyFamily, family) }

// Size returns the font size in pixels.
func (f *Font) Size() int { return f.GetInt(keySize, DefaultFontSize) }

// SetSize sets the font size. Sizes below 1 are rejected.
func (f *Font) SetSize(size int) error {
	if _, err := key.Positive("font size", size); err != nil {
		return err
	}
	f.SetInt(keySize, size)
	return nil
}

// Style returns the font style.
func (f *Font) Style() FontStyle {
	return GetEnum(f.Entity, keyStyle, FontStyles, DefaultFontStyle)
}

// SetStyle sets the font style.
func (f *Font) SetStyle(style FontStyle) { f.SetEnum(keyStyle, style) }

// Weight returns the font weight as stored: a keyword or a number.
func (f *Font) Weight() string {
	v, ok := f.chain.Match(f.Object(), keyWeight, func(v native.Value) bool {
		switch v.Kind() {
		case native.KindNumber:
			return true
		case native.KindString:
			s, _ := v.AsString()
			return key.Has(Weights, s)
		}
		return false
	})
	if !ok {
		return DefaultFontWeight.Value()
	}
	if n, isNumber := v.AsNumber(); isNumber {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s, _ := v.AsString()
	return s
}

// SetWeight sets a weight keyword.
func (f *Font) SetWeight(w Weight) { f.SetEnum(keyWeight, w) }

// SetWeightNumber sets a numeric weight between 1 and 1000.
func (f *Font) SetWeightNumber(w int) error {
	if _, err := key.Between("font weight", w, 1, 1000); err != nil {
		return err
	}
	f.SetInt(keyWeight, w)
	return nil
}

// LineHeight returns the numeric line height. A line height set as a
// string such as "20px" yields the default.
func (f *Font) LineHeight() float64 {
	return f.GetNumber(keyLineHeight, DefaultFontLineHeight)
}

// LineHeightString returns the line height as stored.
func (f *Font) LineHeightString() string {
	v := f.chain.Resolve(f.Object(), keyLineHeight, native.Number(DefaultFontLineHeight))
	if n, ok := v.AsNumber(); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s, _ := v.AsString()
	return s
}

// SetLineHeight sets a line height multiplier.
func (f *Font) SetLineHeight(lh float64) error {
	if _, err := key.Positive("line height", lh); err != nil {
		return err
	}
	f.SetNumber(keyLineHeight, lh)
	return nil
}

// SetLineHeightString sets a CSS line height such as "20px" or "150%".
func (f *Font) SetLineHeightString(lh string) { f.SetString(keyLineHeight, lh) }

// Color returns the font color.
func (f *Font) Color() color.Color { return f.GetColor(keyColor, DefaultColor) }

// SetColor sets the font color.
func (f *Font) SetColor(c color.Color) { f.Entity.SetColor(keyColor, c) }

// LineWidth returns the stroke width of the text.
func (f *Font) LineWidth() int { return f.GetInt(keyLineWidth, DefaultFontLineWidth) }

// SetLineWidth sets the stroke width of the text.
func (f *Font) SetLineWidth(w int) error {
	if _, err := key.PositiveOrZero("line width", w); err != nil {
		return err
	}
	f.SetInt(keyLineWidth, w)
	return nil
}

// StrokeStyle returns the stroke color of the text.
func (f *Font) StrokeStyle() color.Color { return f.GetColor(keyStrokeStyle, color.Transparent) }

// SetStrokeStyle sets the stroke color of the text.
func (f *Font) SetStrokeStyle(c color.Color) { f.Entity.SetColor(keyStrokeStyle, c) }
