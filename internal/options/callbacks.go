package options

import (
	"github.com/dshills/chartcfg/internal/callback"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// AnimationCallback receives the animation state object of the engine.
type AnimationCallback func(animation *native.Object)

// TooltipItemsCallback computes the title or footer lines of a tooltip.
type TooltipItemsCallback func(items []*native.Object) []string

// TooltipItemCallback computes the label of one tooltip item.
type TooltipItemCallback func(item *native.Object) string

func wrapAnimation(cb AnimationCallback) native.Function {
	if cb == nil {
		return nil
	}
	return func(_ *native.Object, args ...native.Value) native.Value {
		cb(argObject(args, 0))
		return native.Undefined()
	}
}

func wrapTooltipItems(cb TooltipItemsCallback) native.Function {
	if cb == nil {
		return nil
	}
	return func(_ *native.Object, args ...native.Value) native.Value {
		var items []*native.Object
		if len(args) > 0 {
			arr, _ := args[0].AsArray()
			for _, v := range arr {
				if obj, ok := v.AsObject(); ok {
					items = append(items, obj)
				}
			}
		}
		return native.Strings(cb(items)...)
	}
}

func wrapTooltipItem(cb TooltipItemCallback) native.Function {
	if cb == nil {
		return nil
	}
	return func(_ *native.Object, args ...native.Value) native.Value {
		return native.String(cb(argObject(args, 0)))
	}
}

func argObject(args []native.Value, i int) *native.Object {
	if i >= len(args) {
		return nil
	}
	obj, _ := args[i].AsObject()
	return obj
}

var (
	onProgressHandler = callback.NewHandler(key.Name("onProgress"), wrapAnimation)
	onCompleteHandler = callback.NewHandler(key.Name("onComplete"), wrapAnimation)

	tooltipTitleHandler  = callback.NewHandler(key.Name("title"), wrapTooltipItems)
	tooltipLabelHandler  = callback.NewHandler(key.Name("label"), wrapTooltipItem)
	tooltipFooterHandler = callback.NewHandler(key.Name("footer"), wrapTooltipItems)
)
