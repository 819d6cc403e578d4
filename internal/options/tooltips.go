package options

import (
	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

const (
	keyEnabled       key.Name = "enabled"
	keyDisplayColors key.Name = "displayColors"
	keyCallbacks     key.Name = "callbacks"
	keyTitleFont     key.Name = "titleFont"
	keyBodyFont      key.Name = "bodyFont"
)

// Tooltips are the tooltip options, stored under plugins.tooltip.
type Tooltips struct {
	*Entity
	titleFont *Font
	bodyFont  *Font
	callbacks *Entity
}

func newTooltips(e *Entity, root *Font) *Tooltips {
	return &Tooltips{
		Entity:    e,
		titleFont: newFont(e, keyTitleFont, root),
		bodyFont:  newFont(e, keyBodyFont, root),
		callbacks: e.Child(keyCallbacks),
	}
}

// IsEnabled reports whether tooltips are shown.
func (t *Tooltips) IsEnabled() bool { return t.GetBool(keyEnabled, DefaultTooltipEnabled) }

// SetEnabled sets whether tooltips are shown.
func (t *Tooltips) SetEnabled(b bool) { t.SetBool(keyEnabled, b) }

// Mode returns the elements shown in the tooltip.
func (t *Tooltips) Mode() InteractionMode {
	return GetEnum(t.Entity, keyMode, InteractionModes, DefaultTooltipMode)
}

// SetMode sets the elements shown in the tooltip.
func (t *Tooltips) SetMode(m InteractionMode) { t.SetEnum(keyMode, m) }

// IsIntersect reports whether the tooltip requires the pointer to
// intersect an element.
func (t *Tooltips) IsIntersect() bool { return t.GetBool(keyIntersect, DefaultTooltipIntersect) }

// SetIntersect sets whether the pointer must intersect an element.
func (t *Tooltips) SetIntersect(b bool) { t.SetBool(keyIntersect, b) }

// Position returns the tooltip positioner.
func (t *Tooltips) Position() TooltipPosition {
	return GetEnum(t.Entity, keyPosition, TooltipPositions, DefaultTooltipPosition)
}

// SetPosition sets the tooltip positioner.
func (t *Tooltips) SetPosition(p TooltipPosition) { t.SetEnum(keyPosition, p) }

// BackgroundColor returns the tooltip background.
func (t *Tooltips) BackgroundColor() color.Color {
	return t.GetColor(keyBackgroundColor, DefaultTooltipBackgroundColor)
}

// SetBackgroundColor sets the tooltip background.
func (t *Tooltips) SetBackgroundColor(c color.Color) { t.SetColor(keyBackgroundColor, c) }

// Padding returns the padding inside the tooltip.
func (t *Tooltips) Padding() int { return t.GetInt(keyPadding, DefaultTooltipPadding) }

// SetPadding sets the padding inside the tooltip.
func (t *Tooltips) SetPadding(p int) error {
	if _, err := key.PositiveOrZero("padding", p); err != nil {
		return err
	}
	t.SetInt(keyPadding, p)
	return nil
}

// IsDisplayColors reports whether color boxes are drawn.
func (t *Tooltips) IsDisplayColors() bool {
	return t.GetBool(keyDisplayColors, DefaultTooltipDisplayColors)
}

// SetDisplayColors sets whether color boxes are drawn.
func (t *Tooltips) SetDisplayColors(b bool) { t.SetBool(keyDisplayColors, b) }

// TitleFont returns the font of the title lines.
func (t *Tooltips) TitleFont() *Font { return t.titleFont }

// BodyFont returns the font of the body lines.
func (t *Tooltips) BodyFont() *Font { return t.bodyFont }

// TitleCallback returns the title callback set from Go.
func (t *Tooltips) TitleCallback() TooltipItemsCallback {
	cb, _ := tooltipTitleHandler.Get(t.callbacks.callbacks)
	return cb
}

// SetTitleCallback sets the callback computing the title lines. Nil
// removes it.
func (t *Tooltips) SetTitleCallback(cb TooltipItemsCallback) {
	tooltipTitleHandler.Set(t.callbacks.node, t.callbacks.callbacks, cb)
}

// LabelCallback returns the label callback set from Go.
func (t *Tooltips) LabelCallback() TooltipItemCallback {
	cb, _ := tooltipLabelHandler.Get(t.callbacks.callbacks)
	return cb
}

// SetLabelCallback sets the callback computing the label of an item.
func (t *Tooltips) SetLabelCallback(cb TooltipItemCallback) {
	tooltipLabelHandler.Set(t.callbacks.node, t.callbacks.callbacks, cb)
}

// SetLabelFunction sets the label callback to a native function such as a
// compiled script.
func (t *Tooltips) SetLabelFunction(fn native.Function) {
	tooltipLabelHandler.SetFunction(t.callbacks.node, t.callbacks.callbacks, fn)
}

// FooterCallback returns the footer callback set from Go.
func (t *Tooltips) FooterCallback() TooltipItemsCallback {
	cb, _ := tooltipFooterHandler.Get(t.callbacks.callbacks)
	return cb
}

// SetFooterCallback sets the callback computing the footer lines.
func (t *Tooltips) SetFooterCallback(cb TooltipItemsCallback) {
	tooltipFooterHandler.Set(t.callbacks.node, t.callbacks.callbacks, cb)
}

// Callback returns the resolved native function of a tooltip callback,
// including functions set by default layers.
func (t *Tooltips) Callback(name string) native.Function {
	return t.callbacks.GetFunction(key.Name(name))
}
