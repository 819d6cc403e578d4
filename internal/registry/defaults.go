package registry

// Token sets shared by several properties.
var (
	Positions        = []string{"top", "left", "bottom", "right", "chartArea"}
	Alignments       = []string{"start", "center", "end"}
	FontStyles       = []string{"normal", "italic", "oblique", "initial", "inherit"}
	InteractionModes = []string{"point", "nearest", "index", "dataset", "x", "y"}
	TooltipPositions = []string{"average", "nearest"}
	IndexAxes        = []string{"x", "y"}
	ModifierKeys     = []string{"ctrl", "alt", "shift", "meta"}
	InteractionAxes  = []string{"x", "y", "xy"}
	CapStyles        = []string{"butt", "round", "square"}
	Easings          = []string{
		"linear",
		"easeInQuad", "easeOutQuad", "easeInOutQuad",
		"easeInCubic", "easeOutCubic", "easeInOutCubic",
		"easeInQuart", "easeOutQuart", "easeInOutQuart",
		"easeInQuint", "easeOutQuint", "easeInOutQuint",
		"easeInSine", "easeOutSine", "easeInOutSine",
		"easeInExpo", "easeOutExpo", "easeInOutExpo",
		"easeInCirc", "easeOutCirc", "easeInOutCirc",
		"easeInElastic", "easeOutElastic", "easeInOutElastic",
		"easeInBack", "easeOutBack", "easeInOutBack",
		"easeInBounce", "easeOutBounce", "easeInOutBounce",
	}
)

// DefaultFontFamily is the engine's font stack.
const DefaultFontFamily = "'Helvetica Neue', 'Helvetica', 'Arial', sans-serif"

// RegisterDefaults registers the engine's built-in properties.
func (r *Registry) RegisterDefaults() {
	r.registerChart()
	r.registerFont()
	r.registerPlugins()
	r.registerAnimation()
	r.registerElements()
	r.registerScale()
	r.registerZoom()
	r.registerLegacy()
}

func (r *Registry) registerChart() {
	r.MustRegister(Setting{
		Path:        "responsive",
		Type:        TypeBool,
		Default:     true,
		Description: "Resize the chart canvas when its container does",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"chart"},
	})

	r.MustRegister(Setting{
		Path:        "maintainAspectRatio",
		Type:        TypeBool,
		Default:     true,
		Description: "Keep the original canvas aspect ratio when resizing",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"chart"},
	})

	r.MustRegister(Setting{
		Path:        "aspectRatio",
		Type:        TypeFloat,
		Default:     2,
		Description: "Canvas aspect ratio (width / height)",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(0),
		Tags:        []string{"chart"},
	})

	r.MustRegister(Setting{
		Path:        "devicePixelRatio",
		Type:        TypeFloat,
		Description: "Override of the window's device pixel ratio",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(0),
		Tags:        []string{"chart"},
	})

	r.MustRegister(Setting{
		Path:        "locale",
		Type:        TypeString,
		Default:     "en-US",
		Description: "Locale used to format numbers",
		Scope:       ScopeGlobal | ScopeChart,
		Pattern:     `^[A-Za-z]{2,3}(-[A-Za-z0-9]{2,8})*$`,
		Tags:        []string{"chart"},
	})

	r.MustRegister(Setting{
		Path:        "indexAxis",
		Type:        TypeEnum,
		Default:     "x",
		Description: "Base axis of the chart",
		Scope:       ScopeGlobal | ScopeChart,
		Enum:        IndexAxes,
		Tags:        []string{"chart"},
	})

	r.MustRegister(Setting{
		Path:        "color",
		Type:        TypeColor,
		Default:     "#666",
		Description: "Default text color",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"chart", "color"},
	})

	r.MustRegister(Setting{
		Path:        "backgroundColor",
		Type:        TypeColor,
		Default:     "rgba(0,0,0,0.1)",
		Description: "Default background color of chart elements",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"chart", "color"},
	})

	r.MustRegister(Setting{
		Path:        "borderColor",
		Type:        TypeColor,
		Default:     "rgba(0,0,0,0.1)",
		Description: "Default border color of chart elements",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"chart", "color"},
	})

	r.MustRegister(Setting{
		Path:        "borderWidth",
		Type:        TypeInt,
		Description: "Default border width of chart elements",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(0),
		Tags:        []string{"chart"},
	})

	r.MustRegister(Setting{
		Path:        "layout.padding",
		Type:        TypeInt,
		Default:     0,
		Description: "Padding around the chart area in pixels",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(0),
		Tags:        []string{"chart", "layout"},
	})

	r.MustRegister(Setting{
		Path:        "interaction.mode",
		Type:        TypeEnum,
		Default:     "nearest",
		Description: "Which elements appear in interactions",
		Scope:       ScopeGlobal | ScopeChart,
		Enum:        InteractionModes,
		Tags:        []string{"chart", "interaction"},
	})

	r.MustRegister(Setting{
		Path:        "interaction.intersect",
		Type:        TypeBool,
		Default:     true,
		Description: "Only match elements the pointer intersects",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"chart", "interaction"},
	})
}

func (r *Registry) registerFont() {
	r.MustRegister(Setting{
		Path:        "font.family",
		Type:        TypeString,
		Default:     DefaultFontFamily,
		Description: "Default font family for all text",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"font"},
	})

	r.MustRegister(Setting{
		Path:        "font.size",
		Type:        TypeInt,
		Default:     12,
		Description: "Default font size in pixels",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(1),
		Tags:        []string{"font"},
	})

	r.MustRegister(Setting{
		Path:        "font.style",
		Type:        TypeEnum,
		Default:     "normal",
		Description: "Default font style",
		Scope:       ScopeGlobal | ScopeChart,
		Enum:        FontStyles,
		Tags:        []string{"font"},
	})

	r.MustRegister(Setting{
		Path:        "font.weight",
		Type:        TypeNumberOrString,
		Description: "Default font weight",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"font"},
	})

	r.MustRegister(Setting{
		Path:        "font.lineHeight",
		Type:        TypeNumberOrString,
		Default:     1.2,
		Description: "Height of a line of text, as a multiple of the size or a CSS length",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"font"},
	})
}

func (r *Registry) registerPlugins() {
	r.MustRegister(Setting{
		Path:        "plugins.title.display",
		Type:        TypeBool,
		Default:     false,
		Description: "Show the chart title",
		Scope:       ScopeAll,
		Tags:        []string{"title"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.title.position",
		Type:        TypeEnum,
		Default:     "top",
		Description: "Position of the title",
		Scope:       ScopeAll,
		Enum:        Positions,
		Tags:        []string{"title"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.title.align",
		Type:        TypeEnum,
		Default:     "center",
		Description: "Alignment of the title",
		Scope:       ScopeAll,
		Enum:        Alignments,
		Tags:        []string{"title"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.title.fullSize",
		Type:        TypeBool,
		Default:     true,
		Description: "Take the full width of the canvas",
		Scope:       ScopeAll,
		Tags:        []string{"title"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.title.padding",
		Type:        TypeInt,
		Default:     10,
		Description: "Padding above and below the title",
		Scope:       ScopeAll,
		Minimum:     MinValue(0),
		Tags:        []string{"title"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.legend.display",
		Type:        TypeBool,
		Default:     true,
		Description: "Show the legend",
		Scope:       ScopeAll,
		Tags:        []string{"legend"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.legend.position",
		Type:        TypeEnum,
		Default:     "top",
		Description: "Position of the legend",
		Scope:       ScopeAll,
		Enum:        Positions,
		Tags:        []string{"legend"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.legend.align",
		Type:        TypeEnum,
		Default:     "center",
		Description: "Alignment of the legend",
		Scope:       ScopeAll,
		Enum:        Alignments,
		Tags:        []string{"legend"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.legend.reverse",
		Type:        TypeBool,
		Default:     false,
		Description: "Show datasets in reverse order",
		Scope:       ScopeAll,
		Tags:        []string{"legend"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.legend.labels.boxWidth",
		Type:        TypeInt,
		Default:     40,
		Description: "Width of the colored box",
		Scope:       ScopeAll,
		Minimum:     MinValue(0),
		Tags:        []string{"legend"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.legend.labels.padding",
		Type:        TypeInt,
		Default:     10,
		Description: "Padding between legend rows",
		Scope:       ScopeAll,
		Minimum:     MinValue(0),
		Tags:        []string{"legend"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.tooltip.enabled",
		Type:        TypeBool,
		Default:     true,
		Description: "Show tooltips on hover",
		Scope:       ScopeAll,
		Tags:        []string{"tooltip"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.tooltip.mode",
		Type:        TypeEnum,
		Default:     "nearest",
		Description: "Which elements appear in the tooltip",
		Scope:       ScopeAll,
		Enum:        InteractionModes,
		Tags:        []string{"tooltip"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.tooltip.intersect",
		Type:        TypeBool,
		Default:     true,
		Description: "Only show the tooltip when the pointer intersects an element",
		Scope:       ScopeAll,
		Tags:        []string{"tooltip"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.tooltip.position",
		Type:        TypeEnum,
		Default:     "average",
		Description: "Tooltip positioner",
		Scope:       ScopeAll,
		Enum:        TooltipPositions,
		Tags:        []string{"tooltip"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.tooltip.backgroundColor",
		Type:        TypeColor,
		Default:     "rgba(0,0,0,0.8)",
		Description: "Tooltip background",
		Scope:       ScopeAll,
		Tags:        []string{"tooltip", "color"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.tooltip.padding",
		Type:        TypeInt,
		Default:     6,
		Description: "Padding inside the tooltip",
		Scope:       ScopeAll,
		Minimum:     MinValue(0),
		Tags:        []string{"tooltip"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.tooltip.displayColors",
		Type:        TypeBool,
		Default:     true,
		Description: "Show color boxes in the tooltip",
		Scope:       ScopeAll,
		Tags:        []string{"tooltip"},
	})
}

func (r *Registry) registerAnimation() {
	r.MustRegister(Setting{
		Path:        "animation.duration",
		Type:        TypeInt,
		Default:     1000,
		Description: "Animation duration in milliseconds",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(0),
		Tags:        []string{"animation"},
	})

	r.MustRegister(Setting{
		Path:        "animation.easing",
		Type:        TypeEnum,
		Default:     "easeOutQuart",
		Description: "Easing function",
		Scope:       ScopeGlobal | ScopeChart,
		Enum:        Easings,
		Tags:        []string{"animation"},
	})

	r.MustRegister(Setting{
		Path:        "animation.delay",
		Type:        TypeInt,
		Default:     0,
		Description: "Delay before starting the animation in milliseconds",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(0),
		Tags:        []string{"animation"},
	})

	r.MustRegister(Setting{
		Path:        "animation.loop",
		Type:        TypeBool,
		Default:     false,
		Description: "Loop the animation endlessly",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"animation"},
	})
}

func (r *Registry) registerElements() {
	r.MustRegister(Setting{
		Path:        "elements.line.tension",
		Type:        TypeFloat,
		Default:     0,
		Description: "Bezier curve tension (0 draws straight lines)",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(0),
		Tags:        []string{"elements", "line"},
	})

	r.MustRegister(Setting{
		Path:        "elements.line.borderWidth",
		Type:        TypeInt,
		Default:     3,
		Description: "Line stroke width",
		Scope:       ScopeGlobal | ScopeChart,
		Minimum:     MinValue(0),
		Tags:        []string{"elements", "line"},
	})

	r.MustRegister(Setting{
		Path:        "elements.line.borderCapStyle",
		Type:        TypeEnum,
		Default:     "butt",
		Description: "Line cap style",
		Scope:       ScopeGlobal | ScopeChart,
		Enum:        CapStyles,
		Tags:        []string{"elements", "line"},
	})

	r.MustRegister(Setting{
		Path:        "elements.line.capBezierPoints",
		Type:        TypeBool,
		Default:     true,
		Description: "Keep Bezier control points inside the chart area",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"elements", "line"},
	})

	r.MustRegister(Setting{
		Path:        "elements.line.fill",
		Type:        TypeAny,
		Default:     false,
		Description: "How to fill the area under the line",
		Scope:       ScopeGlobal | ScopeChart,
		Tags:        []string{"elements", "line", "fill"},
	})
}

func (r *Registry) registerScale() {
	r.MustRegister(Setting{
		Path:        "scale.display",
		Type:        TypeBool,
		Default:     true,
		Description: "Show the axis",
		Scope:       ScopeGlobal | ScopeScale,
		Tags:        []string{"scale"},
	})

	r.MustRegister(Setting{
		Path:        "scale.offset",
		Type:        TypeBool,
		Default:     false,
		Description: "Add extra space at both edges of the axis",
		Scope:       ScopeGlobal | ScopeScale,
		Tags:        []string{"scale"},
	})

	r.MustRegister(Setting{
		Path:        "scale.reverse",
		Type:        TypeBool,
		Default:     false,
		Description: "Reverse the scale",
		Scope:       ScopeGlobal | ScopeScale,
		Tags:        []string{"scale"},
	})

	r.MustRegister(Setting{
		Path:        "scale.beginAtZero",
		Type:        TypeBool,
		Default:     false,
		Description: "Include zero in the scale range",
		Scope:       ScopeGlobal | ScopeScale,
		Tags:        []string{"scale"},
	})

	r.MustRegister(Setting{
		Path:        "scale.grid.display",
		Type:        TypeBool,
		Default:     true,
		Description: "Draw grid lines",
		Scope:       ScopeGlobal | ScopeScale,
		Tags:        []string{"scale", "grid"},
	})

	r.MustRegister(Setting{
		Path:        "scale.grid.color",
		Type:        TypeColor,
		Default:     "rgba(0,0,0,0.1)",
		Description: "Grid line color",
		Scope:       ScopeGlobal | ScopeScale,
		Tags:        []string{"scale", "grid", "color"},
	})

	r.MustRegister(Setting{
		Path:        "scale.grid.lineWidth",
		Type:        TypeInt,
		Default:     1,
		Description: "Grid line width",
		Scope:       ScopeGlobal | ScopeScale,
		Minimum:     MinValue(0),
		Tags:        []string{"scale", "grid"},
	})

	r.MustRegister(Setting{
		Path:        "scale.grid.drawOnChartArea",
		Type:        TypeBool,
		Default:     true,
		Description: "Draw grid lines inside the chart area",
		Scope:       ScopeGlobal | ScopeScale,
		Tags:        []string{"scale", "grid"},
	})

	r.MustRegister(Setting{
		Path:        "scale.grid.tickLength",
		Type:        TypeInt,
		Default:     8,
		Description: "Length of the tick marks outside the chart area",
		Scope:       ScopeGlobal | ScopeScale,
		Minimum:     MinValue(0),
		Tags:        []string{"scale", "grid"},
	})

	r.MustRegister(Setting{
		Path:        "scale.ticks.display",
		Type:        TypeBool,
		Default:     true,
		Description: "Show tick labels",
		Scope:       ScopeGlobal | ScopeScale,
		Tags:        []string{"scale", "ticks"},
	})

	r.MustRegister(Setting{
		Path:        "scale.ticks.padding",
		Type:        TypeInt,
		Default:     3,
		Description: "Padding between tick labels and the axis",
		Scope:       ScopeGlobal | ScopeScale,
		Minimum:     MinValue(0),
		Tags:        []string{"scale", "ticks"},
	})

	r.MustRegister(Setting{
		Path:        "scale.ticks.maxTicksLimit",
		Type:        TypeInt,
		Default:     11,
		Description: "Maximum number of ticks",
		Scope:       ScopeGlobal | ScopeScale,
		Minimum:     MinValue(1),
		Tags:        []string{"scale", "ticks"},
	})

	r.MustRegister(Setting{
		Path:        "scale.ticks.stepSize",
		Type:        TypeFloat,
		Description: "Fixed step between ticks",
		Scope:       ScopeGlobal | ScopeScale,
		Minimum:     MinValue(0),
		Tags:        []string{"scale", "ticks"},
	})
}

func (r *Registry) registerZoom() {
	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.wheel.enabled",
		Type:        TypeBool,
		Default:     false,
		Description: "Zoom with the mouse wheel",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Tags:        []string{"zoom"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.wheel.speed",
		Type:        TypeFloat,
		Default:     0.1,
		Description: "Zoom factor per wheel step",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Minimum:     MinValue(0),
		Maximum:     MaxValue(1),
		Tags:        []string{"zoom"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.wheel.modifierKey",
		Type:        TypeEnum,
		Description: "Key that must be held to zoom with the wheel",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Enum:        ModifierKeys,
		Tags:        []string{"zoom"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.drag.enabled",
		Type:        TypeBool,
		Default:     false,
		Description: "Zoom by dragging a rectangle",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Tags:        []string{"zoom"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.drag.backgroundColor",
		Type:        TypeColor,
		Default:     "rgba(225,225,225,0.3)",
		Description: "Fill of the drag rectangle",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Tags:        []string{"zoom", "color"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.drag.borderColor",
		Type:        TypeColor,
		Default:     "rgba(225,225,225,1)",
		Description: "Stroke of the drag rectangle",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Tags:        []string{"zoom", "color"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.drag.borderWidth",
		Type:        TypeInt,
		Default:     0,
		Description: "Stroke width of the drag rectangle",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Minimum:     MinValue(0),
		Tags:        []string{"zoom"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.drag.threshold",
		Type:        TypeFloat,
		Default:     0,
		Description: "Minimal drag distance before zooming",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Minimum:     MinValue(0),
		Tags:        []string{"zoom"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.pinch.enabled",
		Type:        TypeBool,
		Default:     false,
		Description: "Zoom with pinch gestures",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Tags:        []string{"zoom"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.zoom.mode",
		Type:        TypeEnum,
		Default:     "xy",
		Description: "Directions allowed to zoom",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Enum:        InteractionAxes,
		Tags:        []string{"zoom"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.pan.enabled",
		Type:        TypeBool,
		Default:     false,
		Description: "Enable panning",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Tags:        []string{"zoom", "pan"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.pan.mode",
		Type:        TypeEnum,
		Default:     "xy",
		Description: "Directions allowed to pan",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Enum:        InteractionAxes,
		Tags:        []string{"zoom", "pan"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.pan.threshold",
		Type:        TypeFloat,
		Default:     10,
		Description: "Minimal pan distance before panning starts",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Minimum:     MinValue(0),
		Tags:        []string{"zoom", "pan"},
	})

	r.MustRegister(Setting{
		Path:        "plugins.zoom.pan.modifierKey",
		Type:        TypeEnum,
		Description: "Key that must be held to pan",
		Scope:       ScopeGlobal | ScopeChart | ScopePlugin,
		Enum:        ModifierKeys,
		Tags:        []string{"zoom", "pan"},
	})
}

// registerLegacy registers the flat names used before options were
// namespaced.
func (r *Registry) registerLegacy() {
	legacy := []struct{ path, replacedBy string }{
		{"defaultFontSize", "font.size"},
		{"defaultFontColor", "color"},
		{"defaultFontFamily", "font.family"},
		{"defaultFontStyle", "font.style"},
		{"title.display", "plugins.title.display"},
		{"legend.display", "plugins.legend.display"},
		{"legend.position", "plugins.legend.position"},
		{"tooltips.enabled", "plugins.tooltip.enabled"},
		{"tooltips.mode", "plugins.tooltip.mode"},
		{"tooltips.backgroundColor", "plugins.tooltip.backgroundColor"},
	}
	for _, l := range legacy {
		r.MustRegister(Setting{
			Path:        l.path,
			Type:        TypeAny,
			Description: "Legacy name of " + l.replacedBy,
			Scope:       ScopeGlobal | ScopeChart,
			Deprecated:  true,
			ReplacedBy:  l.replacedBy,
			Tags:        []string{"legacy"},
		})
	}
}
