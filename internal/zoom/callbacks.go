package zoom

import (
	"github.com/dshills/chartcfg/internal/callback"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// ModeCallback computes the mode of an interaction for a chart.
type ModeCallback func(chart *native.Object) Mode

// StartCallback is called before an interaction starts. Returning false
// cancels it.
type StartCallback func(chart *native.Object) bool

// EventCallback is called while or after an interaction happens.
type EventCallback func(chart *native.Object)

// chartOf extracts the chart from the context argument the engine passes
// to plugin callbacks.
func chartOf(args []native.Value) *native.Object {
	if len(args) == 0 {
		return nil
	}
	ctx, ok := args[0].AsObject()
	if !ok {
		return nil
	}
	if chart := ctx.GetObject(key.Name("chart")); chart != nil {
		return chart
	}
	return ctx
}

func wrapMode(def Mode) func(ModeCallback) native.Function {
	return func(cb ModeCallback) native.Function {
		if cb == nil {
			return nil
		}
		return func(_ *native.Object, args ...native.Value) native.Value {
			m := cb(chartOf(args))
			if !key.Has(Modes, m.Value()) {
				m = def
			}
			return native.String(m.Value())
		}
	}
}

func wrapStart(cb StartCallback) native.Function {
	if cb == nil {
		return nil
	}
	return func(_ *native.Object, args ...native.Value) native.Value {
		return native.Bool(cb(chartOf(args)))
	}
}

func wrapEvent(cb EventCallback) native.Function {
	if cb == nil {
		return nil
	}
	return func(_ *native.Object, args ...native.Value) native.Value {
		cb(chartOf(args))
		return native.Undefined()
	}
}

// events holds the handlers of the four lifecycle callbacks of zoom or
// pan.
type events struct {
	progress callback.Handler[EventCallback]
	start    callback.Handler[StartCallback]
	complete callback.Handler[EventCallback]
	rejected callback.Handler[EventCallback]
}

func newEvents(prefix string) events {
	return events{
		progress: callback.NewHandler(key.Name(prefix), wrapEvent),
		start:    callback.NewHandler(key.Name(prefix+"Start"), wrapStart),
		complete: callback.NewHandler(key.Name(prefix+"Complete"), wrapEvent),
		rejected: callback.NewHandler(key.Name(prefix+"Rejected"), wrapEvent),
	}
}

var (
	zoomEvents = newEvents("onZoom")
	panEvents  = newEvents("onPan")

	modeHandler          = callback.NewHandler(keyMode, wrapMode(DefaultMode))
	scaleModeHandler     = callback.NewHandler(keyScaleMode, wrapMode(DefaultMode))
	overScaleModeHandler = callback.NewHandler(keyOverScaleMode, wrapMode(DefaultMode))
)
