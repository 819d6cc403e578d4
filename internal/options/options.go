package options

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Options properties.
const (
	keyResponsive          key.Name = "responsive"
	keyMaintainAspectRatio key.Name = "maintainAspectRatio"
	keyAspectRatio         key.Name = "aspectRatio"
	keyDevicePixelRatio    key.Name = "devicePixelRatio"
	keyLocale              key.Name = "locale"
	keyIndexAxis           key.Name = "indexAxis"
	keyBackgroundColor     key.Name = "backgroundColor"
	keyBorderColor         key.Name = "borderColor"
	keyBorderWidth         key.Name = "borderWidth"
	keyLayout              key.Name = "layout"
	keyPadding             key.Name = "padding"
	keyInteraction         key.Name = "interaction"
	keyMode                key.Name = "mode"
	keyIntersect           key.Name = "intersect"
	keyPlugins             key.Name = "plugins"
	keyAnimation           key.Name = "animation"
	keyAnimations          key.Name = "animations"
	keyElements            key.Name = "elements"
	keyScales              key.Name = "scales"
)

var localePattern = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})*$`)

// Options is the options object of one chart.
//
// Reads resolve through the local object, instance defaults, the chart
// type layer, the global layer and the builtin layer, then the engine
// constant. Sub-entities are created on first access and share the tree.
type Options struct {
	*Entity

	ctx       *defaults.Context
	chartType string
	id        uuid.UUID
	instance  *native.Object

	font       *Font
	title      *Title
	legend     *Legend
	tooltips   *Tooltips
	animation  *Animation
	animations *Animations
	elements   *Elements
	scales     *Scales
	plugins    *Plugins
}

// Option configures Options at construction.
type Option func(*config)

type config struct {
	object   *native.Object
	instance *native.Object
}

// WithObject wraps an existing options object instead of a new one.
func WithObject(obj *native.Object) Option {
	return func(c *config) { c.object = obj }
}

// WithInstanceDefaults consults obj before the chart type defaults.
func WithInstanceDefaults(obj *native.Object) Option {
	return func(c *config) { c.instance = obj }
}

// NewOptions creates the options of a chart of chartType.
func NewOptions(ctx *defaults.Context, chartType string, opts ...Option) *Options {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if ctx == nil {
		ctx = defaults.NewContext()
	}
	chain := ctx.ChartChain(chartType)
	if cfg.instance != nil {
		chain = chain.Prepend(defaults.ObjectProvider("instance", cfg.instance))
	}

	id := uuid.New()
	node := native.NewNode(cfg.object)
	node.SetNotifier(ctx.Notifier())
	node.SetSource("options:" + id.String())

	return &Options{
		Entity:    NewEntity(node, chain),
		ctx:       ctx,
		chartType: chartType,
		id:        id,
		instance:  cfg.instance,
	}
}

// ID returns the unique id of the options.
func (o *Options) ID() string { return o.id.String() }

// ChartType returns the chart type the options resolve defaults for.
func (o *Options) ChartType() string { return o.chartType }

// Context returns the defaults context.
func (o *Options) Context() *defaults.Context { return o.ctx }

// ToJSON serializes the options tree handed to the engine.
func (o *Options) ToJSON() (string, error) { return o.Object().ToJSON() }

// IsResponsive reports whether the chart resizes with its container.
func (o *Options) IsResponsive() bool { return o.GetBool(keyResponsive, DefaultResponsive) }

// SetResponsive sets whether the chart resizes with its container.
func (o *Options) SetResponsive(b bool) { o.SetBool(keyResponsive, b) }

// IsMaintainAspectRatio reports whether resizing keeps the aspect ratio.
func (o *Options) IsMaintainAspectRatio() bool {
	return o.GetBool(keyMaintainAspectRatio, DefaultMaintainAspectRatio)
}

// SetMaintainAspectRatio sets whether resizing keeps the aspect ratio.
func (o *Options) SetMaintainAspectRatio(b bool) { o.SetBool(keyMaintainAspectRatio, b) }

// AspectRatio returns the canvas aspect ratio.
func (o *Options) AspectRatio() float64 { return o.GetNumber(keyAspectRatio, DefaultAspectRatio) }

// SetAspectRatio sets the canvas aspect ratio, which must be positive.
func (o *Options) SetAspectRatio(r float64) error {
	if _, err := key.Positive("aspect ratio", r); err != nil {
		return err
	}
	o.SetNumber(keyAspectRatio, r)
	return nil
}

// DevicePixelRatio returns the pixel ratio override, 0 when the window's
// ratio is used.
func (o *Options) DevicePixelRatio() float64 { return o.GetNumber(keyDevicePixelRatio, 0) }

// SetDevicePixelRatio overrides the window's pixel ratio.
func (o *Options) SetDevicePixelRatio(r float64) error {
	if _, err := key.Positive("device pixel ratio", r); err != nil {
		return err
	}
	o.SetNumber(keyDevicePixelRatio, r)
	return nil
}

// Locale returns the locale used to format numbers.
func (o *Options) Locale() string { return o.GetString(keyLocale, DefaultLocale) }

// SetLocale sets a BCP 47 locale.
func (o *Options) SetLocale(locale string) error {
	if _, err := key.Matches("locale", locale, localePattern); err != nil {
		return err
	}
	o.SetString(keyLocale, locale)
	return nil
}

// IndexAxis returns the base axis.
func (o *Options) IndexAxis() IndexAxis {
	return GetEnum(o.Entity, keyIndexAxis, IndexAxes, DefaultIndexAxis)
}

// SetIndexAxis sets the base axis.
func (o *Options) SetIndexAxis(a IndexAxis) { o.SetEnum(keyIndexAxis, a) }

// Color returns the default text color.
func (o *Options) Color() color.Color { return o.GetColor(keyColor, DefaultColor) }

// SetColor sets the default text color.
func (o *Options) SetColor(c color.Color) { o.Entity.SetColor(keyColor, c) }

// BackgroundColor returns the default element background.
func (o *Options) BackgroundColor() color.Color {
	return o.GetColor(keyBackgroundColor, DefaultBackgroundColor)
}

// SetBackgroundColor sets the default element background.
func (o *Options) SetBackgroundColor(c color.Color) { o.Entity.SetColor(keyBackgroundColor, c) }

// BorderColor returns the default element border color.
func (o *Options) BorderColor() color.Color { return o.GetColor(keyBorderColor, DefaultBorderColor) }

// SetBorderColor sets the default element border color.
func (o *Options) SetBorderColor(c color.Color) { o.Entity.SetColor(keyBorderColor, c) }

// BorderWidth returns the default element border width.
func (o *Options) BorderWidth() int { return o.GetInt(keyBorderWidth, DefaultBorderWidth) }

// SetBorderWidth sets the default element border width.
func (o *Options) SetBorderWidth(w int) error {
	if _, err := key.PositiveOrZero("border width", w); err != nil {
		return err
	}
	o.SetInt(keyBorderWidth, w)
	return nil
}

// Padding returns the layout padding.
func (o *Options) Padding() int {
	return o.Child(keyLayout).GetInt(keyPadding, DefaultLayoutPadding)
}

// SetPadding sets the layout padding. Negative values are rejected.
func (o *Options) SetPadding(p int) error {
	if _, err := key.PositiveOrZero("padding", p); err != nil {
		return err
	}
	o.Child(keyLayout).SetInt(keyPadding, p)
	return nil
}

// InteractionMode returns the mode of hover interactions.
func (o *Options) InteractionMode() InteractionMode {
	return GetEnum(o.Child(keyInteraction), keyMode, InteractionModes, DefaultInteractionMode)
}

// SetInteractionMode sets the mode of hover interactions.
func (o *Options) SetInteractionMode(m InteractionMode) {
	o.Child(keyInteraction).SetEnum(keyMode, m)
}

// IsInteractionIntersect reports whether interactions require the pointer
// to intersect an element.
func (o *Options) IsInteractionIntersect() bool {
	return o.Child(keyInteraction).GetBool(keyIntersect, DefaultInteractionIntersect)
}

// SetInteractionIntersect sets whether interactions require intersection.
func (o *Options) SetInteractionIntersect(b bool) {
	o.Child(keyInteraction).SetBool(keyIntersect, b)
}

// Font returns the default font.
func (o *Options) Font() *Font {
	if o.font == nil {
		o.font = newFont(o.Entity, keyFont, nil)
	}
	return o.font
}

// Title returns the title options.
func (o *Options) Title() *Title {
	if o.title == nil {
		o.title = newTitle(o.pluginEntity("title"), o.Font())
	}
	return o.title
}

// Legend returns the legend options.
func (o *Options) Legend() *Legend {
	if o.legend == nil {
		o.legend = newLegend(o.pluginEntity("legend"), o.Font())
	}
	return o.legend
}

// Tooltips returns the tooltip options.
func (o *Options) Tooltips() *Tooltips {
	if o.tooltips == nil {
		o.tooltips = newTooltips(o.pluginEntity("tooltip"), o.Font())
	}
	return o.tooltips
}

// Animation returns the animation options.
func (o *Options) Animation() *Animation {
	if o.animation == nil {
		o.animation = NewAnimation(o.Child(keyAnimation))
	}
	return o.animation
}

// Animations returns the per-property animation collections.
func (o *Options) Animations() *Animations {
	if o.animations == nil {
		o.animations = &Animations{Entity: o.Child(keyAnimations), animation: o.Animation()}
	}
	return o.animations
}

// Elements returns the element options.
func (o *Options) Elements() *Elements {
	if o.elements == nil {
		o.elements = &Elements{Entity: o.Child(keyElements)}
	}
	return o.elements
}

// Scales returns the axes. They are parsed from the options object on
// first access.
func (o *Options) Scales() *Scales {
	if o.scales == nil {
		o.scales = newScales(o)
	}
	return o.scales
}

// Plugins returns the per-plugin options.
func (o *Options) Plugins() *Plugins {
	if o.plugins == nil {
		o.plugins = &Plugins{options: o, node: native.NewChildNode(o.Node(), keyPlugins, nil)}
	}
	return o.plugins
}

// pluginEntity returns the entity of a plugin built into the engine.
func (o *Options) pluginEntity(id string) *Entity {
	return o.Plugins().Entity(id)
}
