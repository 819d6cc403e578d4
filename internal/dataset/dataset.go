// Package dataset provides typed access to chart datasets.
//
// A dataset reads its unset properties from the element defaults of the
// chart options, so a line dataset without a fill uses
// options.elements.line.fill, then the chart type, global and builtin
// defaults.
package dataset

import (
	"math"

	"github.com/google/uuid"

	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/options"
)

const (
	keyID              key.Name = "_id"
	keyType            key.Name = "type"
	keyLabel           key.Name = "label"
	keyData            key.Name = "data"
	keyHidden          key.Name = "hidden"
	keyOrder           key.Name = "order"
	keyBackgroundColor key.Name = "backgroundColor"
	keyBorderColor     key.Name = "borderColor"
	keyBorderWidth     key.Name = "borderWidth"
)

// Engine constants shared by every dataset.
const (
	DefaultHidden = false
	DefaultOrder  = 0
)

// Dataset holds the properties every dataset type has.
type Dataset struct {
	*options.Entity
	id        uuid.UUID
	chartType string
}

func newDataset(chartType string, chain *defaults.Chain) *Dataset {
	id := uuid.New()
	e := options.NewEntity(nil, chain)
	e.Object().SetString(keyType, chartType)
	e.Object().SetString(keyID, id.String())
	return &Dataset{Entity: e, id: id, chartType: chartType}
}

// ID returns the unique id of the dataset.
func (d *Dataset) ID() string { return d.id.String() }

// Type returns the chart type of the dataset.
func (d *Dataset) Type() string { return d.chartType }

// Label returns the label shown in the legend and tooltips.
func (d *Dataset) Label() string { return d.GetString(keyLabel, "") }

// SetLabel sets the label.
func (d *Dataset) SetLabel(label string) { d.SetString(keyLabel, label) }

// Data returns the values of the dataset. Missing or non-numeric entries
// read as NaN.
func (d *Dataset) Data() []float64 {
	items := d.Object().GetArray(keyData)
	values := make([]float64, len(items))
	for i, v := range items {
		n, ok := v.AsNumber()
		if !ok {
			n = math.NaN()
		}
		values[i] = n
	}
	return values
}

// SetData sets the values of the dataset. NaN entries are stored as null
// and leave a gap.
func (d *Dataset) SetData(values ...float64) {
	if len(values) == 0 {
		d.Remove(keyData)
		return
	}
	items := make([]native.Value, len(values))
	for i, n := range values {
		if math.IsNaN(n) {
			items[i] = native.Null()
			continue
		}
		items[i] = native.Number(n)
	}
	d.Set(keyData, native.ArrayOf(items...))
}

// IsHidden reports whether the dataset starts hidden.
func (d *Dataset) IsHidden() bool { return d.GetBool(keyHidden, DefaultHidden) }

// SetHidden sets whether the dataset starts hidden.
func (d *Dataset) SetHidden(b bool) { d.SetBool(keyHidden, b) }

// Order returns the drawing order; higher values are drawn first.
func (d *Dataset) Order() int { return d.GetInt(keyOrder, DefaultOrder) }

// SetOrder sets the drawing order.
func (d *Dataset) SetOrder(order int) { d.SetInt(keyOrder, order) }

// BackgroundColor returns the fill color.
func (d *Dataset) BackgroundColor() color.Color {
	return d.GetColor(keyBackgroundColor, options.DefaultBackgroundColor)
}

// SetBackgroundColor sets the fill color.
func (d *Dataset) SetBackgroundColor(c color.Color) { d.SetColor(keyBackgroundColor, c) }

// BorderColor returns the line color.
func (d *Dataset) BorderColor() color.Color {
	return d.GetColor(keyBorderColor, options.DefaultBorderColor)
}

// SetBorderColor sets the line color.
func (d *Dataset) SetBorderColor(c color.Color) { d.SetColor(keyBorderColor, c) }
