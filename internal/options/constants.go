package options

import (
	"github.com/dshills/chartcfg/internal/color"
	"github.com/dshills/chartcfg/internal/registry"
)

// Engine constants used when no default tier defines a property.
const (
	DefaultResponsive          = true
	DefaultMaintainAspectRatio = true
	DefaultAspectRatio         = 2.0
	DefaultLocale              = "en-US"
	DefaultIndexAxis           = IndexAxisX
	DefaultLayoutPadding       = 0
	DefaultBorderWidth         = 0

	DefaultFontFamily     = registry.DefaultFontFamily
	DefaultFontSize       = 12
	DefaultFontStyle      = FontStyleNormal
	DefaultFontWeight     = WeightNormal
	DefaultFontLineHeight = 1.2
	DefaultFontLineWidth  = 0

	DefaultInteractionMode      = InteractionNearest
	DefaultInteractionIntersect = true

	DefaultTitleDisplay  = false
	DefaultTitlePosition = PositionTop
	DefaultTitleAlign    = AlignCenter
	DefaultTitleFullSize = true
	DefaultTitlePadding  = 10

	DefaultLegendDisplay       = true
	DefaultLegendPosition      = PositionTop
	DefaultLegendAlign         = AlignCenter
	DefaultLegendReverse       = false
	DefaultLegendBoxWidth      = 40
	DefaultLegendLabelsPadding = 10

	DefaultTooltipEnabled       = true
	DefaultTooltipMode          = InteractionNearest
	DefaultTooltipIntersect     = true
	DefaultTooltipPosition      = TooltipAverage
	DefaultTooltipPadding       = 6
	DefaultTooltipDisplayColors = true

	DefaultAnimationDuration = 1000
	DefaultAnimationEasing   = EaseOutQuart
	DefaultAnimationDelay    = 0
	DefaultAnimationLoop     = false

	DefaultLineTension         = 0.0
	DefaultLineBorderWidth     = 3.0
	DefaultLineBorderCapStyle  = CapButt
	DefaultLineCapBezierPoints = true

	DefaultScaleDisplay     = true
	DefaultScaleOffset      = false
	DefaultScaleReverse     = false
	DefaultScaleBeginAtZero = false
	DefaultScaleStacked     = false

	DefaultGridDisplay         = true
	DefaultGridLineWidth       = 1.0
	DefaultGridDrawOnChartArea = true
	DefaultGridTickLength      = 8.0

	DefaultTicksDisplay       = true
	DefaultTicksPadding       = 3
	DefaultTicksMaxTicksLimit = 11
)

// Engine color constants.
var (
	DefaultColor                  = color.MustParse("#666")
	DefaultBackgroundColor        = color.MustParse("rgba(0,0,0,0.1)")
	DefaultBorderColor            = color.MustParse("rgba(0,0,0,0.1)")
	DefaultTooltipBackgroundColor = color.MustParse("rgba(0,0,0,0.8)")
	DefaultGridColor              = color.MustParse("rgba(0,0,0,0.1)")
)
