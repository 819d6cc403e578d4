package options

import (
	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/fill"
	"github.com/dshills/chartcfg/internal/key"
)

const (
	keyLine            key.Name = "line"
	keyTension         key.Name = "tension"
	keyBorderCapStyle  key.Name = "borderCapStyle"
	keyCapBezierPoints key.Name = "capBezierPoints"
)

var fillHandler = fill.NewHandler(fill.PropertyFill)

// Elements holds the default options of chart elements, stored under
// "elements".
type Elements struct {
	*Entity
	line *Line
}

// Line returns the defaults of line elements.
func (e *Elements) Line() *Line {
	if e.line == nil {
		e.line = &Line{Entity: e.Child(keyLine)}
	}
	return e.line
}

// Line holds the defaults of line elements. Line datasets read their
// unset properties from it.
type Line struct {
	*Entity
}

// Tension returns the bezier curve tension, 0 for straight lines.
func (l *Line) Tension() float64 { return l.GetNumber(keyTension, DefaultLineTension) }

// SetTension sets the bezier curve tension.
func (l *Line) SetTension(t float64) error {
	if _, err := key.PositiveOrZero("tension", t); err != nil {
		return err
	}
	l.SetNumber(keyTension, t)
	return nil
}

// BorderWidth returns the line width.
func (l *Line) BorderWidth() float64 { return l.GetNumber(keyBorderWidth, DefaultLineBorderWidth) }

// SetBorderWidth sets the line width.
func (l *Line) SetBorderWidth(w float64) error {
	if _, err := key.PositiveOrZero("border width", w); err != nil {
		return err
	}
	l.SetNumber(keyBorderWidth, w)
	return nil
}

// BorderCapStyle returns the line cap.
func (l *Line) BorderCapStyle() CapStyle {
	return GetEnum(l.Entity, keyBorderCapStyle, CapStyles, DefaultLineBorderCapStyle)
}

// SetBorderCapStyle sets the line cap.
func (l *Line) SetBorderCapStyle(c CapStyle) { l.SetEnum(keyBorderCapStyle, c) }

// IsCapBezierPoints reports whether control points stay inside the chart.
func (l *Line) IsCapBezierPoints() bool {
	return l.GetBool(keyCapBezierPoints, DefaultLineCapBezierPoints)
}

// SetCapBezierPoints sets whether control points stay inside the chart.
func (l *Line) SetCapBezierPoints(b bool) { l.SetBool(keyCapBezierPoints, b) }

// BackgroundColor returns the fill color.
func (l *Line) BackgroundColor() color.Color {
	return l.GetColor(keyBackgroundColor, DefaultBackgroundColor)
}

// SetBackgroundColor sets the fill color.
func (l *Line) SetBackgroundColor(c color.Color) { l.SetColor(keyBackgroundColor, c) }

// BorderColor returns the line color.
func (l *Line) BorderColor() color.Color { return l.GetColor(keyBorderColor, DefaultBorderColor) }

// SetBorderColor sets the line color.
func (l *Line) SetBorderColor(c color.Color) { l.SetColor(keyBorderColor, c) }

// Fill returns the fill of line elements.
func (l *Line) Fill() fill.Fill { return fillHandler.Get(l.node, l.chain, fill.False) }

// SetFill sets the fill of line elements.
func (l *Line) SetFill(f fill.Fill) { fillHandler.Set(l.node, f) }

// SetFillBool sets a boolean fill. False reads back as fill.False and
// true as fill.Origin.
func (l *Line) SetFillBool(b bool) { fillHandler.SetBool(l.node, b) }

// SetFillIndex sets an absolute fill. Indexes below 1 are rejected.
func (l *Line) SetFillIndex(i int) error { return fillHandler.SetIndex(l.node, i) }

// SetFillString sets a keyword or relative fill.
func (l *Line) SetFillString(s string) error { return fillHandler.SetString(l.node, s) }

// FillMode returns the recorded fill mode.
func (l *Line) FillMode() fill.Mode { return fillHandler.Mode(l.node) }
