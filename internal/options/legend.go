package options

import (
	"github.com/dshills/chartcfg/internal/key"
)

// Legend is the chart legend, stored under plugins.legend.
type Legend struct {
	*Entity
	labels *LegendLabels
}

func newLegend(e *Entity, root *Font) *Legend {
	labels := e.Child(keyLabels)
	return &Legend{
		Entity: e,
		labels: &LegendLabels{Entity: labels, font: newFont(labels, keyFont, root)},
	}
}

// IsDisplay reports whether the legend is shown.
func (l *Legend) IsDisplay() bool { return l.GetBool(keyDisplay, DefaultLegendDisplay) }

// SetDisplay sets whether the legend is shown.
func (l *Legend) SetDisplay(b bool) { l.SetBool(keyDisplay, b) }

// Position returns the side of the chart holding the legend.
func (l *Legend) Position() Position {
	return GetEnum(l.Entity, keyPosition, Positions, DefaultLegendPosition)
}

// SetPosition sets the side of the chart holding the legend.
func (l *Legend) SetPosition(p Position) { l.SetEnum(keyPosition, p) }

// Align returns the alignment of the legend.
func (l *Legend) Align() Align { return GetEnum(l.Entity, keyAlign, Aligns, DefaultLegendAlign) }

// SetAlign sets the alignment of the legend.
func (l *Legend) SetAlign(a Align) { l.SetEnum(keyAlign, a) }

// IsReverse reports whether datasets are listed in reverse order.
func (l *Legend) IsReverse() bool { return l.GetBool(keyReverse, DefaultLegendReverse) }

// SetReverse sets whether datasets are listed in reverse order.
func (l *Legend) SetReverse(b bool) { l.SetBool(keyReverse, b) }

// Labels returns the legend label options.
func (l *Legend) Labels() *LegendLabels { return l.labels }

// LegendLabels are the options of the legend items.
type LegendLabels struct {
	*Entity
	font *Font
}

// BoxWidth returns the width of the colored box.
func (l *LegendLabels) BoxWidth() int { return l.GetInt(keyBoxWidth, DefaultLegendBoxWidth) }

// SetBoxWidth sets the width of the colored box.
func (l *LegendLabels) SetBoxWidth(w int) error {
	if _, err := key.PositiveOrZero("box width", w); err != nil {
		return err
	}
	l.SetInt(keyBoxWidth, w)
	return nil
}

// Padding returns the padding between items.
func (l *LegendLabels) Padding() int { return l.GetInt(keyPadding, DefaultLegendLabelsPadding) }

// SetPadding sets the padding between items.
func (l *LegendLabels) SetPadding(p int) error {
	if _, err := key.PositiveOrZero("padding", p); err != nil {
		return err
	}
	l.SetInt(keyPadding, p)
	return nil
}

// Font returns the label font. Unset properties come from the options
// font.
func (l *LegendLabels) Font() *Font { return l.font }
