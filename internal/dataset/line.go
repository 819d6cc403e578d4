package dataset

import (
	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/fill"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/options"
)

const (
	keyTension        key.Name = "tension"
	keyBorderDash     key.Name = "borderDash"
	keyBorderCapStyle key.Name = "borderCapStyle"
	keyPointRadius    key.Name = "pointRadius"
	keyShowLine       key.Name = "showLine"
	keySpanGaps       key.Name = "spanGaps"
)

// Engine constants of line datasets.
const (
	DefaultPointRadius = 3.0
	DefaultShowLine    = true
	DefaultSpanGaps    = false
)

var fillHandler = fill.NewHandler(fill.PropertyFill)

// LineDataset is a dataset of a line chart.
type LineDataset struct {
	*Dataset
}

// NewLineDataset creates a line dataset for the chart configured by o.
// Unset properties resolve through the line element options of o.
func NewLineDataset(o *options.Options) *LineDataset {
	chain := o.Elements().Line().Inherit("options.elements.line")
	return &LineDataset{Dataset: newDataset("line", chain)}
}

// BorderWidth returns the line width.
func (d *LineDataset) BorderWidth() float64 {
	return d.GetNumber(keyBorderWidth, options.DefaultLineBorderWidth)
}

// SetBorderWidth sets the line width.
func (d *LineDataset) SetBorderWidth(w float64) error {
	if _, err := key.PositiveOrZero("border width", w); err != nil {
		return err
	}
	d.SetNumber(keyBorderWidth, w)
	return nil
}

// Tension returns the bezier curve tension.
func (d *LineDataset) Tension() float64 { return d.GetNumber(keyTension, options.DefaultLineTension) }

// SetTension sets the bezier curve tension.
func (d *LineDataset) SetTension(t float64) error {
	if _, err := key.PositiveOrZero("tension", t); err != nil {
		return err
	}
	d.SetNumber(keyTension, t)
	return nil
}

// BorderDash returns the dash pattern of the line, empty for a solid line.
func (d *LineDataset) BorderDash() []int {
	v, _ := d.Value(keyBorderDash).AsArray()
	dash := make([]int, 0, len(v))
	for _, item := range v {
		if n, ok := item.AsInt(); ok {
			dash = append(dash, n)
		}
	}
	return dash
}

// SetBorderDash sets the dash pattern of the line. Segment lengths must not
// be negative.
func (d *LineDataset) SetBorderDash(dash ...int) error {
	if len(dash) == 0 {
		d.Remove(keyBorderDash)
		return nil
	}
	items := make([]native.Value, len(dash))
	for i, n := range dash {
		if _, err := key.PositiveOrZero("border dash", n); err != nil {
			return err
		}
		items[i] = native.Int(n)
	}
	d.Set(keyBorderDash, native.ArrayOf(items...))
	return nil
}

// BorderCapStyle returns the line cap.
func (d *LineDataset) BorderCapStyle() options.CapStyle {
	return options.GetEnum(d.Entity, keyBorderCapStyle, options.CapStyles, options.DefaultLineBorderCapStyle)
}

// SetBorderCapStyle sets the line cap.
func (d *LineDataset) SetBorderCapStyle(c options.CapStyle) { d.SetEnum(keyBorderCapStyle, c) }

// PointRadius returns the radius of the points.
func (d *LineDataset) PointRadius() float64 { return d.GetNumber(keyPointRadius, DefaultPointRadius) }

// SetPointRadius sets the radius of the points.
func (d *LineDataset) SetPointRadius(r float64) error {
	if _, err := key.PositiveOrZero("point radius", r); err != nil {
		return err
	}
	d.SetNumber(keyPointRadius, r)
	return nil
}

// IsShowLine reports whether the line is drawn.
func (d *LineDataset) IsShowLine() bool { return d.GetBool(keyShowLine, DefaultShowLine) }

// SetShowLine sets whether the line is drawn.
func (d *LineDataset) SetShowLine(b bool) { d.SetBool(keyShowLine, b) }

// IsSpanGaps reports whether lines are drawn across missing values.
func (d *LineDataset) IsSpanGaps() bool { return d.GetBool(keySpanGaps, DefaultSpanGaps) }

// SetSpanGaps sets whether lines are drawn across missing values.
func (d *LineDataset) SetSpanGaps(b bool) { d.SetBool(keySpanGaps, b) }

// Fill returns the fill of the dataset.
func (d *LineDataset) Fill() fill.Fill { return fillHandler.Get(d.Node(), d.Chain(), fill.False) }

// SetFill sets the fill. The zero Fill removes it.
func (d *LineDataset) SetFill(f fill.Fill) { fillHandler.Set(d.Node(), f) }

// SetFillBool sets a boolean fill. False reads back as fill.False and true
// as fill.Origin.
func (d *LineDataset) SetFillBool(b bool) { fillHandler.SetBool(d.Node(), b) }

// SetFillIndex fills to the dataset at index, which must be >= 1.
func (d *LineDataset) SetFillIndex(index int) error { return fillHandler.SetIndex(d.Node(), index) }

// SetFillString sets a keyword or relative fill such as "-1".
func (d *LineDataset) SetFillString(s string) error { return fillHandler.SetString(d.Node(), s) }

// SetFillColors fills to target with distinct colors above and below it.
// A nil color leaves that side to the dataset background color.
func (d *LineDataset) SetFillColors(target fill.Fill, above, below *color.Color) {
	fillHandler.SetColors(d.Node(), target, colorString(above), colorString(below))
}

// FillColors returns the colors set with SetFillColors. A side set
// without a color is nil.
func (d *LineDataset) FillColors() (above, below *color.Color, ok bool) {
	a, b, ok := fillHandler.Colors(d.Node())
	if !ok {
		return nil, nil, false
	}
	return parseColor(a), parseColor(b), true
}

func colorString(c *color.Color) string {
	if c == nil {
		return ""
	}
	return c.String()
}

func parseColor(s string) *color.Color {
	c, err := color.Parse(s)
	if s == "" || err != nil {
		return nil
	}
	return &c
}

// FillMode returns the recorded fill mode.
func (d *LineDataset) FillMode() fill.Mode { return fillHandler.Mode(d.Node()) }

// RemoveFill deletes the fill; reads fall back to the line options.
func (d *LineDataset) RemoveFill() { fillHandler.Remove(d.Node()) }
