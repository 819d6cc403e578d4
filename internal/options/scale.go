package options

import (
	"math"
	"time"

	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

const (
	keyID              key.Name = "id"
	keyAxis            key.Name = "axis"
	keyStacked         key.Name = "stacked"
	keyOffset          key.Name = "offset"
	keyBeginAtZero     key.Name = "beginAtZero"
	keyMin             key.Name = "min"
	keyMax             key.Name = "max"
	keyTicks           key.Name = "ticks"
	keyGrid            key.Name = "grid"
	keyStepSize        key.Name = "stepSize"
	keyMaxTicksLimit   key.Name = "maxTicksLimit"
	keyDrawOnChartArea key.Name = "drawOnChartArea"
	keyTickLength      key.Name = "tickLength"
)

// Scale is the configuration of one axis.
//
// Reads resolve through the chart type overrides of the axis, the defaults
// of its axis type and the common scale defaults.
type Scale struct {
	*Entity
	id       string
	axisType AxisType
	ticks    *Ticks
	grid     *Grid
}

func newScale(node *native.Node, chain *defaults.Chain, id string, axisType AxisType, root *Font) *Scale {
	e := NewEntity(node, chain)
	ticks := e.Child(keyTicks)
	return &Scale{
		Entity:   e,
		id:       id,
		axisType: axisType,
		ticks:    &Ticks{Entity: ticks, font: newFont(ticks, keyFont, root)},
		grid:     &Grid{Entity: e.Child(keyGrid)},
	}
}

// ID returns the axis id.
func (s *Scale) ID() string { return s.id }

// Type returns the axis type.
func (s *Scale) Type() AxisType { return s.axisType }

// IsDisplay reports whether the axis is shown.
func (s *Scale) IsDisplay() bool { return s.GetBool(keyDisplay, DefaultScaleDisplay) }

// SetDisplay sets whether the axis is shown.
func (s *Scale) SetDisplay(b bool) { s.SetBool(keyDisplay, b) }

// Position returns the side of the chart holding the axis.
func (s *Scale) Position() Position {
	def := PositionLeft
	if s.Axis() == IndexAxisX {
		def = PositionBottom
	}
	return GetEnum(s.Entity, keyPosition, Positions, def)
}

// SetPosition sets the side of the chart holding the axis.
func (s *Scale) SetPosition(p Position) { s.SetEnum(keyPosition, p) }

// Axis returns the direction of the axis, inferred from its id when not
// set.
func (s *Scale) Axis() IndexAxis {
	def := IndexAxisY
	if len(s.id) > 0 && s.id[0] == 'x' {
		def = IndexAxisX
	}
	return GetEnum(s.Entity, keyAxis, IndexAxes, def)
}

// SetAxis sets the direction of the axis.
func (s *Scale) SetAxis(a IndexAxis) { s.SetEnum(keyAxis, a) }

// IsStacked reports whether datasets are stacked on the axis.
func (s *Scale) IsStacked() bool { return s.GetBool(keyStacked, DefaultScaleStacked) }

// SetStacked sets whether datasets are stacked on the axis.
func (s *Scale) SetStacked(b bool) { s.SetBool(keyStacked, b) }

// IsReverse reports whether the axis is reversed.
func (s *Scale) IsReverse() bool { return s.GetBool(keyReverse, DefaultScaleReverse) }

// SetReverse sets whether the axis is reversed.
func (s *Scale) SetReverse(b bool) { s.SetBool(keyReverse, b) }

// IsOffset reports whether extra space is added at both edges.
func (s *Scale) IsOffset() bool { return s.GetBool(keyOffset, DefaultScaleOffset) }

// SetOffset sets whether extra space is added at both edges.
func (s *Scale) SetOffset(b bool) { s.SetBool(keyOffset, b) }

// IsBeginAtZero reports whether the axis includes zero.
func (s *Scale) IsBeginAtZero() bool { return s.GetBool(keyBeginAtZero, DefaultScaleBeginAtZero) }

// SetBeginAtZero sets whether the axis includes zero.
func (s *Scale) SetBeginAtZero(b bool) { s.SetBool(keyBeginAtZero, b) }

// Min returns the lower bound: a number, epoch milliseconds or a
// category label depending on the axis type.
func (s *Scale) Min() native.Value { return s.Value(keyMin) }

// MinNumber returns the numeric lower bound, NaN when unset.
func (s *Scale) MinNumber() float64 { return s.GetNumber(keyMin, math.NaN()) }

// MinDate returns the lower bound of a time axis.
func (s *Scale) MinDate() (time.Time, bool) { return s.Min().AsTime() }

// MinLabel returns the lower bound of a category axis.
func (s *Scale) MinLabel() string { return s.GetString(keyMin, "") }

// SetMin sets a numeric lower bound.
func (s *Scale) SetMin(n float64) { s.SetNumber(keyMin, n) }

// SetMinDate sets the lower bound of a time axis.
func (s *Scale) SetMinDate(t time.Time) { s.Set(keyMin, native.Time(t)) }

// SetMinLabel sets the lower bound of a category axis.
func (s *Scale) SetMinLabel(label string) { s.SetString(keyMin, label) }

// Max returns the upper bound.
func (s *Scale) Max() native.Value { return s.Value(keyMax) }

// MaxNumber returns the numeric upper bound, NaN when unset.
func (s *Scale) MaxNumber() float64 { return s.GetNumber(keyMax, math.NaN()) }

// MaxDate returns the upper bound of a time axis.
func (s *Scale) MaxDate() (time.Time, bool) { return s.Max().AsTime() }

// MaxLabel returns the upper bound of a category axis.
func (s *Scale) MaxLabel() string { return s.GetString(keyMax, "") }

// SetMax sets a numeric upper bound.
func (s *Scale) SetMax(n float64) { s.SetNumber(keyMax, n) }

// SetMaxDate sets the upper bound of a time axis.
func (s *Scale) SetMaxDate(t time.Time) { s.Set(keyMax, native.Time(t)) }

// SetMaxLabel sets the upper bound of a category axis.
func (s *Scale) SetMaxLabel(label string) { s.SetString(keyMax, label) }

// Ticks returns the tick options.
func (s *Scale) Ticks() *Ticks { return s.ticks }

// Grid returns the grid line options.
func (s *Scale) Grid() *Grid { return s.grid }

// Ticks are the tick options of an axis.
type Ticks struct {
	*Entity
	font *Font
}

// IsDisplay reports whether tick labels are shown.
func (t *Ticks) IsDisplay() bool { return t.GetBool(keyDisplay, DefaultTicksDisplay) }

// SetDisplay sets whether tick labels are shown.
func (t *Ticks) SetDisplay(b bool) { t.SetBool(keyDisplay, b) }

// Color returns the label color.
func (t *Ticks) Color() color.Color { return t.GetColor(keyColor, DefaultColor) }

// SetColor sets the label color.
func (t *Ticks) SetColor(c color.Color) { t.Entity.SetColor(keyColor, c) }

// Font returns the label font.
func (t *Ticks) Font() *Font { return t.font }

// Padding returns the space between labels and the axis.
func (t *Ticks) Padding() int { return t.GetInt(keyPadding, DefaultTicksPadding) }

// SetPadding sets the space between labels and the axis.
func (t *Ticks) SetPadding(p int) error {
	if _, err := key.PositiveOrZero("padding", p); err != nil {
		return err
	}
	t.SetInt(keyPadding, p)
	return nil
}

// StepSize returns the fixed step between ticks, NaN when computed.
func (t *Ticks) StepSize() float64 { return t.GetNumber(keyStepSize, math.NaN()) }

// SetStepSize sets a fixed step between ticks.
func (t *Ticks) SetStepSize(step float64) error {
	if _, err := key.Positive("step size", step); err != nil {
		return err
	}
	t.SetNumber(keyStepSize, step)
	return nil
}

// MaxTicksLimit returns the maximum number of ticks.
func (t *Ticks) MaxTicksLimit() int { return t.GetInt(keyMaxTicksLimit, DefaultTicksMaxTicksLimit) }

// SetMaxTicksLimit sets the maximum number of ticks.
func (t *Ticks) SetMaxTicksLimit(n int) error {
	if _, err := key.Positive("max ticks limit", n); err != nil {
		return err
	}
	t.SetInt(keyMaxTicksLimit, n)
	return nil
}

// Grid are the grid line options of an axis.
type Grid struct {
	*Entity
}

// IsDisplay reports whether grid lines are drawn.
func (g *Grid) IsDisplay() bool { return g.GetBool(keyDisplay, DefaultGridDisplay) }

// SetDisplay sets whether grid lines are drawn.
func (g *Grid) SetDisplay(b bool) { g.SetBool(keyDisplay, b) }

// Color returns the grid line color.
func (g *Grid) Color() color.Color { return g.GetColor(keyColor, DefaultGridColor) }

// SetColor sets the grid line color.
func (g *Grid) SetColor(c color.Color) { g.Entity.SetColor(keyColor, c) }

// LineWidth returns the grid line width.
func (g *Grid) LineWidth() float64 { return g.GetNumber(keyLineWidth, DefaultGridLineWidth) }

// SetLineWidth sets the grid line width.
func (g *Grid) SetLineWidth(w float64) error {
	if _, err := key.PositiveOrZero("line width", w); err != nil {
		return err
	}
	g.SetNumber(keyLineWidth, w)
	return nil
}

// IsDrawOnChartArea reports whether lines are drawn inside the chart area.
func (g *Grid) IsDrawOnChartArea() bool {
	return g.GetBool(keyDrawOnChartArea, DefaultGridDrawOnChartArea)
}

// SetDrawOnChartArea sets whether lines are drawn inside the chart area.
func (g *Grid) SetDrawOnChartArea(b bool) { g.SetBool(keyDrawOnChartArea, b) }

// TickLength returns the length of the tick marks.
func (g *Grid) TickLength() float64 { return g.GetNumber(keyTickLength, DefaultGridTickLength) }

// SetTickLength sets the length of the tick marks.
func (g *Grid) SetTickLength(l float64) error {
	if _, err := key.PositiveOrZero("tick length", l); err != nil {
		return err
	}
	g.SetNumber(keyTickLength, l)
	return nil
}
