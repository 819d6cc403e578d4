package options

import (
	"math"
	"sort"

	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

const (
	keyDuration   key.Name = "duration"
	keyEasing     key.Name = "easing"
	keyDelay      key.Name = "delay"
	keyLoop       key.Name = "loop"
	keyType       key.Name = "type"
	keyProperties key.Name = "properties"
	keyFrom       key.Name = "from"
	keyTo         key.Name = "to"
)

// timing holds the properties shared by the animation options and the
// animation collections.
type timing struct {
	*Entity
}

// Duration returns the duration in milliseconds.
func (t timing) Duration() int { return t.GetInt(keyDuration, DefaultAnimationDuration) }

// SetDuration sets the duration in milliseconds.
func (t timing) SetDuration(ms int) error {
	if _, err := key.PositiveOrZero("duration", ms); err != nil {
		return err
	}
	t.SetInt(keyDuration, ms)
	return nil
}

// Easing returns the easing function.
func (t timing) Easing() Easing { return GetEnum(t.Entity, keyEasing, Easings, DefaultAnimationEasing) }

// SetEasing sets the easing function.
func (t timing) SetEasing(e Easing) { t.SetEnum(keyEasing, e) }

// Delay returns the delay before starting, in milliseconds.
func (t timing) Delay() int { return t.GetInt(keyDelay, DefaultAnimationDelay) }

// SetDelay sets the delay before starting.
func (t timing) SetDelay(ms int) error {
	if _, err := key.PositiveOrZero("delay", ms); err != nil {
		return err
	}
	t.SetInt(keyDelay, ms)
	return nil
}

// IsLoop reports whether the animation loops endlessly.
func (t timing) IsLoop() bool { return t.GetBool(keyLoop, DefaultAnimationLoop) }

// SetLoop sets whether the animation loops endlessly.
func (t timing) SetLoop(b bool) { t.SetBool(keyLoop, b) }

// Animation is the animation configuration of the chart.
type Animation struct {
	timing
}

// NewAnimation wraps an entity as animation options.
func NewAnimation(e *Entity) *Animation { return &Animation{timing{e}} }

// ProgressCallback returns the callback run on each animation step.
func (a *Animation) ProgressCallback() AnimationCallback {
	cb, _ := onProgressHandler.Get(a.callbacks)
	return cb
}

// SetProgressCallback sets the callback run on each animation step.
func (a *Animation) SetProgressCallback(cb AnimationCallback) {
	onProgressHandler.Set(a.node, a.callbacks, cb)
}

// SetProgressFunction sets the step callback to a native function.
func (a *Animation) SetProgressFunction(fn native.Function) {
	onProgressHandler.SetFunction(a.node, a.callbacks, fn)
}

// CompleteCallback returns the callback run at the end of the animation.
func (a *Animation) CompleteCallback() AnimationCallback {
	cb, _ := onCompleteHandler.Get(a.callbacks)
	return cb
}

// SetCompleteCallback sets the callback run at the end of the animation.
func (a *Animation) SetCompleteCallback(cb AnimationCallback) {
	onCompleteHandler.Set(a.node, a.callbacks, cb)
}

// SetCompleteFunction sets the completion callback to a native function.
func (a *Animation) SetCompleteFunction(fn native.Function) {
	onCompleteHandler.SetFunction(a.node, a.callbacks, fn)
}

// Animations maps a name to an animation collection, stored under
// "animations".
type Animations struct {
	*Entity
	animation   *Animation
	collections map[string]*AnimationCollection
}

// Get returns the collection called name. Its timing falls back to the
// animation options.
func (a *Animations) Get(name string) *AnimationCollection {
	if c, ok := a.collections[name]; ok {
		return c
	}
	e := a.Child(key.Name(name))
	e.chain = inherit(e.chain, a.animation.Entity, "animation")
	c := &AnimationCollection{timing{e}}
	if a.collections == nil {
		a.collections = make(map[string]*AnimationCollection)
	}
	a.collections[name] = c
	return c
}

// Names returns the names of the collections set on the chart.
func (a *Animations) Names() []string {
	names := a.Object().Keys()
	sort.Strings(names)
	return names
}

// Remove deletes the collection called name.
func (a *Animations) Remove(name string) {
	a.Entity.Remove(key.Name(name))
	delete(a.collections, name)
}

// AnimationCollection animates a set of element properties with one
// interpolator.
type AnimationCollection struct {
	timing
}

// Type returns the interpolator.
func (c *AnimationCollection) Type() AnimationType {
	return GetEnum(c.Entity, keyType, AnimationTypes, AnimationNumber)
}

// SetType sets the interpolator.
func (c *AnimationCollection) SetType(t AnimationType) { c.SetEnum(keyType, t) }

// Properties returns the animated properties.
func (c *AnimationCollection) Properties() []string {
	return stringsOf(c.Value(keyProperties))
}

// SetProperties sets the animated properties.
func (c *AnimationCollection) SetProperties(props ...string) {
	if len(props) == 0 {
		c.Remove(keyProperties)
		return
	}
	c.Set(keyProperties, native.Strings(props...))
}

// FromKind returns the kind of the start value.
func (c *AnimationCollection) FromKind() native.Kind { return c.chain.Kind(c.Object(), keyFrom) }

// FromNumber returns the numeric start value, NaN when it is not a number.
func (c *AnimationCollection) FromNumber() float64 { return c.GetNumber(keyFrom, math.NaN()) }

// FromBool returns the boolean start value.
func (c *AnimationCollection) FromBool() bool { return c.GetBool(keyFrom, false) }

// FromColor returns the color start value.
func (c *AnimationCollection) FromColor() color.Color { return c.GetColor(keyFrom, color.Transparent) }

// SetFrom sets a numeric start value.
func (c *AnimationCollection) SetFrom(n float64) { c.SetNumber(keyFrom, n) }

// SetFromBool sets a boolean start value.
func (c *AnimationCollection) SetFromBool(b bool) { c.SetBool(keyFrom, b) }

// SetFromColor sets a color start value.
func (c *AnimationCollection) SetFromColor(col color.Color) { c.SetColor(keyFrom, col) }

// SetFromFunction sets a callback computing the start value.
func (c *AnimationCollection) SetFromFunction(fn native.Function) {
	c.setFunction(keyFrom, fn)
}

// ToKind returns the kind of the end value.
func (c *AnimationCollection) ToKind() native.Kind { return c.chain.Kind(c.Object(), keyTo) }

// ToNumber returns the numeric end value, NaN when it is not a number.
func (c *AnimationCollection) ToNumber() float64 { return c.GetNumber(keyTo, math.NaN()) }

// ToBool returns the boolean end value.
func (c *AnimationCollection) ToBool() bool { return c.GetBool(keyTo, false) }

// ToColor returns the color end value.
func (c *AnimationCollection) ToColor() color.Color { return c.GetColor(keyTo, color.Transparent) }

// SetTo sets a numeric end value.
func (c *AnimationCollection) SetTo(n float64) { c.SetNumber(keyTo, n) }

// SetToBool sets a boolean end value.
func (c *AnimationCollection) SetToBool(b bool) { c.SetBool(keyTo, b) }

// SetToColor sets a color end value.
func (c *AnimationCollection) SetToColor(col color.Color) { c.SetColor(keyTo, col) }

// SetToFunction sets a callback computing the end value.
func (c *AnimationCollection) SetToFunction(fn native.Function) {
	c.setFunction(keyTo, fn)
}

func (c *AnimationCollection) setFunction(k key.Name, fn native.Function) {
	if fn == nil {
		c.Remove(k)
		return
	}
	c.Set(k, native.FunctionValue(fn))
}
