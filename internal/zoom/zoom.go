// Package zoom provides typed access to the options of the zoom plugin,
// stored under "plugins.zoom".
//
// Zoom and pan share mode handling, range bounds and lifecycle callbacks.
// Per-scale limits clamp both interactions.
package zoom

import (
	"github.com/dshills/chartcfg/internal/callback"
	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/options"
)

// ID is the plugin id.
const ID = "zoom"

const (
	keyZoom          key.Name = "zoom"
	keyPan           key.Name = "pan"
	keyLimits        key.Name = "limits"
	keyWheel         key.Name = "wheel"
	keyDrag          key.Name = "drag"
	keyPinch         key.Name = "pinch"
	keyEnabled       key.Name = "enabled"
	keySpeed         key.Name = "speed"
	keyModifierKey   key.Name = "modifierKey"
	keyThreshold     key.Name = "threshold"
	keyBorderWidth   key.Name = "borderWidth"
	keyBorderColor   key.Name = "borderColor"
	keyBackground    key.Name = "backgroundColor"
	keyMode          key.Name = "mode"
	keyScaleMode     key.Name = "scaleMode"
	keyOverScaleMode key.Name = "overScaleMode"
	keyRangeMin      key.Name = "rangeMin"
	keyRangeMax      key.Name = "rangeMax"
)

// Engine constants of the plugin.
const (
	DefaultEnabled       = false
	DefaultMode          = ModeXY
	DefaultWheelSpeed    = 0.1
	DefaultDragThreshold = 0.0
	DefaultBorderWidth   = 0
	DefaultPanThreshold  = 10.0
)

// Engine color constants of the drag rectangle.
var (
	DefaultDragBackgroundColor = color.MustParse("rgba(225,225,225,0.3)")
	DefaultDragBorderColor     = color.MustParse("rgba(225,225,225,1)")
)

// Options are the zoom plugin options of a chart.
type Options struct {
	*options.Entity
	zoom   *Zoom
	pan    *Pan
	limits *Limits
}

// New returns the zoom plugin options of o.
func New(o *options.Options) *Options {
	e := o.Plugins().Entity(ID)
	z := &Options{Entity: e}
	z.zoom = &Zoom{element: newElement(e.Child(keyZoom), zoomEvents)}
	z.pan = &Pan{element: newElement(e.Child(keyPan), panEvents)}
	z.limits = &Limits{Entity: e.Child(keyLimits)}
	return z
}

// Zoom returns the zoom options.
func (o *Options) Zoom() *Zoom { return o.zoom }

// Pan returns the pan options.
func (o *Options) Pan() *Pan { return o.pan }

// Limits returns the per-scale limits.
func (o *Options) Limits() *Limits { return o.limits }

// element holds what zoom and pan have in common.
type element struct {
	*options.Entity
	events   events
	rangeMin *Range
	rangeMax *Range
}

func newElement(e *options.Entity, ev events) element {
	return element{
		Entity:   e,
		events:   ev,
		rangeMin: &Range{Entity: e.Child(keyRangeMin)},
		rangeMax: &Range{Entity: e.Child(keyRangeMax)},
	}
}

// Mode returns the axes the interaction applies to. When a mode callback
// is set, the default mode is returned.
func (e element) Mode() Mode { return e.mode(modeHandler, keyMode) }

// SetMode sets the axes the interaction applies to and drops any mode
// callback.
func (e element) SetMode(m Mode) { e.setMode(modeHandler, keyMode, m) }

// ModeCallback returns the callback computing the mode.
func (e element) ModeCallback() ModeCallback {
	cb, _ := modeHandler.Get(e.Callbacks())
	return cb
}

// SetModeCallback sets a callback computing the mode. Nil removes it.
func (e element) SetModeCallback(cb ModeCallback) { modeHandler.Set(e.Node(), e.Callbacks(), cb) }

// SetModeFunction sets the mode to a native function such as a script.
func (e element) SetModeFunction(fn native.Function) {
	modeHandler.SetFunction(e.Node(), e.Callbacks(), fn)
}

// ScaleMode returns the axes scaled when the pointer is over a scale.
func (e element) ScaleMode() Mode { return e.mode(scaleModeHandler, keyScaleMode) }

// SetScaleMode sets the axes scaled when the pointer is over a scale.
func (e element) SetScaleMode(m Mode) { e.setMode(scaleModeHandler, keyScaleMode, m) }

// SetScaleModeCallback sets a callback computing the scale mode.
func (e element) SetScaleModeCallback(cb ModeCallback) {
	scaleModeHandler.Set(e.Node(), e.Callbacks(), cb)
}

// OverScaleMode returns the axes affected when the pointer is over a
// scale, limited to that scale.
func (e element) OverScaleMode() Mode { return e.mode(overScaleModeHandler, keyOverScaleMode) }

// SetOverScaleMode sets the over-scale mode.
func (e element) SetOverScaleMode(m Mode) { e.setMode(overScaleModeHandler, keyOverScaleMode, m) }

// SetOverScaleModeCallback sets a callback computing the over-scale mode.
func (e element) SetOverScaleModeCallback(cb ModeCallback) {
	overScaleModeHandler.Set(e.Node(), e.Callbacks(), cb)
}

func (e element) mode(h callback.Handler[ModeCallback], k key.Name) Mode {
	if h.Has(e.Node()) {
		return DefaultMode
	}
	return options.GetEnum(e.Entity, k, Modes, DefaultMode)
}

func (e element) setMode(h callback.Handler[ModeCallback], k key.Name, m Mode) {
	h.Remove(e.Node(), e.Callbacks())
	e.SetEnum(k, m)
}

// RangeMin returns the lower bounds of the interaction.
func (e element) RangeMin() *Range { return e.rangeMin }

// RangeMax returns the upper bounds of the interaction.
func (e element) RangeMax() *Range { return e.rangeMax }

// Allow runs the start callback resolved for the interaction. Without a
// callback, or when it does not return a boolean, the interaction is
// allowed.
func (e element) Allow(chart *native.Object) bool {
	fn := e.GetFunction(e.events.start.Key)
	if fn == nil {
		return true
	}
	if b, ok := fn(nil, native.ObjectValue(chart)).AsBool(); ok {
		return b
	}
	return true
}

// StartCallback returns the callback run before the interaction.
func (e element) StartCallback() StartCallback {
	cb, _ := e.events.start.Get(e.Callbacks())
	return cb
}

// SetStartCallback sets the callback run before the interaction.
func (e element) SetStartCallback(cb StartCallback) {
	e.events.start.Set(e.Node(), e.Callbacks(), cb)
}

// ProgressCallback returns the callback run while interacting.
func (e element) ProgressCallback() EventCallback {
	cb, _ := e.events.progress.Get(e.Callbacks())
	return cb
}

// SetProgressCallback sets the callback run while interacting.
func (e element) SetProgressCallback(cb EventCallback) {
	e.events.progress.Set(e.Node(), e.Callbacks(), cb)
}

// SetProgressFunction sets the progress callback to a native function.
func (e element) SetProgressFunction(fn native.Function) {
	e.events.progress.SetFunction(e.Node(), e.Callbacks(), fn)
}

// CompleteCallback returns the callback run once the interaction ends.
func (e element) CompleteCallback() EventCallback {
	cb, _ := e.events.complete.Get(e.Callbacks())
	return cb
}

// SetCompleteCallback sets the callback run once the interaction ends.
func (e element) SetCompleteCallback(cb EventCallback) {
	e.events.complete.Set(e.Node(), e.Callbacks(), cb)
}

// RejectedCallback returns the callback run when the start callback
// cancels the interaction.
func (e element) RejectedCallback() EventCallback {
	cb, _ := e.events.rejected.Get(e.Callbacks())
	return cb
}

// SetRejectedCallback sets the callback run when the interaction is
// cancelled.
func (e element) SetRejectedCallback(cb EventCallback) {
	e.events.rejected.Set(e.Node(), e.Callbacks(), cb)
}

// Zoom holds the zoom interaction options.
type Zoom struct {
	element
	wheel *Wheel
	drag  *Drag
	pinch *Pinch
}

// Wheel returns the mouse wheel options.
func (z *Zoom) Wheel() *Wheel {
	if z.wheel == nil {
		z.wheel = &Wheel{Entity: z.Child(keyWheel)}
	}
	return z.wheel
}

// Drag returns the drag-to-zoom options.
func (z *Zoom) Drag() *Drag {
	if z.drag == nil {
		z.drag = &Drag{Entity: z.Child(keyDrag)}
	}
	return z.drag
}

// Pinch returns the touch pinch options.
func (z *Zoom) Pinch() *Pinch {
	if z.pinch == nil {
		z.pinch = &Pinch{Entity: z.Child(keyPinch)}
	}
	return z.pinch
}

// Wheel holds the mouse wheel zoom options.
type Wheel struct {
	*options.Entity
}

// IsEnabled reports whether wheel zooming is enabled.
func (w *Wheel) IsEnabled() bool { return w.GetBool(keyEnabled, DefaultEnabled) }

// SetEnabled sets whether wheel zooming is enabled.
func (w *Wheel) SetEnabled(b bool) { w.SetBool(keyEnabled, b) }

// Speed returns the zoom factor per wheel step.
func (w *Wheel) Speed() float64 { return w.GetNumber(keySpeed, DefaultWheelSpeed) }

// SetSpeed sets the zoom factor per wheel step, between 0 and 1.
func (w *Wheel) SetSpeed(speed float64) error {
	if _, err := key.Between("speed", speed, 0, 1); err != nil {
		return err
	}
	w.SetNumber(keySpeed, speed)
	return nil
}

// ModifierKey returns the key to hold while scrolling.
func (w *Wheel) ModifierKey() ModifierKey { return modifierKey(w.Entity) }

// SetModifierKey sets the key to hold while scrolling. ModifierNone
// removes it.
func (w *Wheel) SetModifierKey(k ModifierKey) { w.SetEnum(keyModifierKey, k) }

// Drag holds the drag-to-zoom options.
type Drag struct {
	*options.Entity
}

// IsEnabled reports whether drag zooming is enabled.
func (d *Drag) IsEnabled() bool { return d.GetBool(keyEnabled, DefaultEnabled) }

// SetEnabled sets whether drag zooming is enabled.
func (d *Drag) SetEnabled(b bool) { d.SetBool(keyEnabled, b) }

// BackgroundColor returns the fill of the drag rectangle.
func (d *Drag) BackgroundColor() color.Color {
	return d.GetColor(keyBackground, DefaultDragBackgroundColor)
}

// SetBackgroundColor sets the fill of the drag rectangle.
func (d *Drag) SetBackgroundColor(c color.Color) { d.SetColor(keyBackground, c) }

// BorderColor returns the stroke of the drag rectangle.
func (d *Drag) BorderColor() color.Color { return d.GetColor(keyBorderColor, DefaultDragBorderColor) }

// SetBorderColor sets the stroke of the drag rectangle.
func (d *Drag) SetBorderColor(c color.Color) { d.SetColor(keyBorderColor, c) }

// BorderWidth returns the stroke width of the drag rectangle.
func (d *Drag) BorderWidth() int { return d.GetInt(keyBorderWidth, DefaultBorderWidth) }

// SetBorderWidth sets the stroke width of the drag rectangle.
func (d *Drag) SetBorderWidth(w int) error {
	if _, err := key.PositiveOrZero("border width", w); err != nil {
		return err
	}
	d.SetInt(keyBorderWidth, w)
	return nil
}

// Threshold returns the minimal drag distance in pixels.
func (d *Drag) Threshold() float64 { return d.GetNumber(keyThreshold, DefaultDragThreshold) }

// SetThreshold sets the minimal drag distance in pixels.
func (d *Drag) SetThreshold(t float64) error {
	if _, err := key.PositiveOrZero("threshold", t); err != nil {
		return err
	}
	d.SetNumber(keyThreshold, t)
	return nil
}

// ModifierKey returns the key to hold while dragging.
func (d *Drag) ModifierKey() ModifierKey { return modifierKey(d.Entity) }

// SetModifierKey sets the key to hold while dragging.
func (d *Drag) SetModifierKey(k ModifierKey) { d.SetEnum(keyModifierKey, k) }

// Pinch holds the touch pinch options.
type Pinch struct {
	*options.Entity
}

// IsEnabled reports whether pinch zooming is enabled.
func (p *Pinch) IsEnabled() bool { return p.GetBool(keyEnabled, DefaultEnabled) }

// SetEnabled sets whether pinch zooming is enabled.
func (p *Pinch) SetEnabled(b bool) { p.SetBool(keyEnabled, b) }

// Pan holds the pan interaction options.
type Pan struct {
	element
}

// IsEnabled reports whether panning is enabled.
func (p *Pan) IsEnabled() bool { return p.GetBool(keyEnabled, DefaultEnabled) }

// SetEnabled sets whether panning is enabled.
func (p *Pan) SetEnabled(b bool) { p.SetBool(keyEnabled, b) }

// Threshold returns the minimal pan distance in pixels.
func (p *Pan) Threshold() float64 { return p.GetNumber(keyThreshold, DefaultPanThreshold) }

// SetThreshold sets the minimal pan distance in pixels.
func (p *Pan) SetThreshold(t float64) error {
	if _, err := key.PositiveOrZero("threshold", t); err != nil {
		return err
	}
	p.SetNumber(keyThreshold, t)
	return nil
}

// ModifierKey returns the key to hold while panning.
func (p *Pan) ModifierKey() ModifierKey { return modifierKey(p.Entity) }

// SetModifierKey sets the key to hold while panning.
func (p *Pan) SetModifierKey(k ModifierKey) { p.SetEnum(keyModifierKey, k) }

func modifierKey(e *options.Entity) ModifierKey {
	return options.GetEnum(e, keyModifierKey, ModifierKeys, ModifierNone)
}
