package options

// Position is the placement of a title, legend or axis.
type Position string

func (p Position) Value() string  { return string(p) }
func (p Position) String() string { return string(p) }

const (
	PositionTop       Position = "top"
	PositionLeft      Position = "left"
	PositionBottom    Position = "bottom"
	PositionRight     Position = "right"
	PositionChartArea Position = "chartArea"
)

// Positions lists every position.
var Positions = []Position{PositionTop, PositionLeft, PositionBottom, PositionRight, PositionChartArea}

// Align is the alignment of a title or legend along its side.
type Align string

func (a Align) Value() string  { return string(a) }
func (a Align) String() string { return string(a) }

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Aligns lists every alignment.
var Aligns = []Align{AlignStart, AlignCenter, AlignEnd}

// FontStyle is the CSS font style.
type FontStyle string

func (s FontStyle) Value() string  { return string(s) }
func (s FontStyle) String() string { return string(s) }

const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
	FontStyleInitial FontStyle = "initial"
	FontStyleInherit FontStyle = "inherit"
)

// FontStyles lists every font style.
var FontStyles = []FontStyle{FontStyleNormal, FontStyleItalic, FontStyleOblique, FontStyleInitial, FontStyleInherit}

// Weight is the CSS font weight keyword.
type Weight string

func (w Weight) Value() string  { return string(w) }
func (w Weight) String() string { return string(w) }

const (
	WeightNormal  Weight = "normal"
	WeightBold    Weight = "bold"
	WeightLighter Weight = "lighter"
	WeightBolder  Weight = "bolder"
)

// Weights lists every weight keyword.
var Weights = []Weight{WeightNormal, WeightBold, WeightLighter, WeightBolder}

// InteractionMode selects the elements an interaction applies to.
type InteractionMode string

func (m InteractionMode) Value() string  { return string(m) }
func (m InteractionMode) String() string { return string(m) }

const (
	InteractionPoint   InteractionMode = "point"
	InteractionNearest InteractionMode = "nearest"
	InteractionIndex   InteractionMode = "index"
	InteractionDataset InteractionMode = "dataset"
	InteractionX       InteractionMode = "x"
	InteractionY       InteractionMode = "y"
)

// InteractionModes lists every interaction mode.
var InteractionModes = []InteractionMode{InteractionPoint, InteractionNearest, InteractionIndex, InteractionDataset, InteractionX, InteractionY}

// TooltipPosition is the positioner of the tooltip.
type TooltipPosition string

func (p TooltipPosition) Value() string  { return string(p) }
func (p TooltipPosition) String() string { return string(p) }

const (
	TooltipAverage TooltipPosition = "average"
	TooltipNearest TooltipPosition = "nearest"
)

// TooltipPositions lists every tooltip positioner.
var TooltipPositions = []TooltipPosition{TooltipAverage, TooltipNearest}

// IndexAxis is the base axis of the chart.
type IndexAxis string

func (a IndexAxis) Value() string  { return string(a) }
func (a IndexAxis) String() string { return string(a) }

const (
	IndexAxisX IndexAxis = "x"
	IndexAxisY IndexAxis = "y"
)

// IndexAxes lists both index axes.
var IndexAxes = []IndexAxis{IndexAxisX, IndexAxisY}

// CapStyle is the canvas line cap.
type CapStyle string

func (c CapStyle) Value() string  { return string(c) }
func (c CapStyle) String() string { return string(c) }

const (
	CapButt   CapStyle = "butt"
	CapRound  CapStyle = "round"
	CapSquare CapStyle = "square"
)

// CapStyles lists every cap style.
var CapStyles = []CapStyle{CapButt, CapRound, CapSquare}

// Easing is an animation easing function.
type Easing string

func (e Easing) Value() string  { return string(e) }
func (e Easing) String() string { return string(e) }

const (
	EaseLinear       Easing = "linear"
	EaseInQuad       Easing = "easeInQuad"
	EaseOutQuad      Easing = "easeOutQuad"
	EaseInOutQuad    Easing = "easeInOutQuad"
	EaseInCubic      Easing = "easeInCubic"
	EaseOutCubic     Easing = "easeOutCubic"
	EaseInOutCubic   Easing = "easeInOutCubic"
	EaseInQuart      Easing = "easeInQuart"
	EaseOutQuart     Easing = "easeOutQuart"
	EaseInOutQuart   Easing = "easeInOutQuart"
	EaseInQuint      Easing = "easeInQuint"
	EaseOutQuint     Easing = "easeOutQuint"
	EaseInOutQuint   Easing = "easeInOutQuint"
	EaseInSine       Easing = "easeInSine"
	EaseOutSine      Easing = "easeOutSine"
	EaseInOutSine    Easing = "easeInOutSine"
	EaseInExpo       Easing = "easeInExpo"
	EaseOutExpo      Easing = "easeOutExpo"
	EaseInOutExpo    Easing = "easeInOutExpo"
	EaseInCirc       Easing = "easeInCirc"
	EaseOutCirc      Easing = "easeOutCirc"
	EaseInOutCirc    Easing = "easeInOutCirc"
	EaseInElastic    Easing = "easeInElastic"
	EaseOutElastic   Easing = "easeOutElastic"
	EaseInOutElastic Easing = "easeInOutElastic"
	EaseInBack       Easing = "easeInBack"
	EaseOutBack      Easing = "easeOutBack"
	EaseInOutBack    Easing = "easeInOutBack"
	EaseInBounce     Easing = "easeInBounce"
	EaseOutBounce    Easing = "easeOutBounce"
	EaseInOutBounce  Easing = "easeInOutBounce"
)

// Easings lists every easing function.
var Easings = []Easing{
	EaseLinear,
	EaseInQuad, EaseOutQuad, EaseInOutQuad,
	EaseInCubic, EaseOutCubic, EaseInOutCubic,
	EaseInQuart, EaseOutQuart, EaseInOutQuart,
	EaseInQuint, EaseOutQuint, EaseInOutQuint,
	EaseInSine, EaseOutSine, EaseInOutSine,
	EaseInExpo, EaseOutExpo, EaseInOutExpo,
	EaseInCirc, EaseOutCirc, EaseInOutCirc,
	EaseInElastic, EaseOutElastic, EaseInOutElastic,
	EaseInBack, EaseOutBack, EaseInOutBack,
	EaseInBounce, EaseOutBounce, EaseInOutBounce,
}

// AxisType is the type of a scale.
type AxisType string

func (t AxisType) Value() string  { return string(t) }
func (t AxisType) String() string { return string(t) }

const (
	AxisLinear      AxisType = "linear"
	AxisLogarithmic AxisType = "logarithmic"
	AxisCategory    AxisType = "category"
	AxisTime        AxisType = "time"
	AxisTimeSeries  AxisType = "timeseries"
	AxisRadial      AxisType = "radialLinear"
)

// AxisTypes lists every axis type.
var AxisTypes = []AxisType{AxisLinear, AxisLogarithmic, AxisCategory, AxisTime, AxisTimeSeries, AxisRadial}

// AnimationType is the interpolator of an animation collection.
type AnimationType string

func (t AnimationType) Value() string  { return string(t) }
func (t AnimationType) String() string { return string(t) }

const (
	AnimationNumber  AnimationType = "number"
	AnimationColor   AnimationType = "color"
	AnimationBoolean AnimationType = "boolean"
)

// AnimationTypes lists every animation type.
var AnimationTypes = []AnimationType{AnimationNumber, AnimationColor, AnimationBoolean}
