package fill

import (
	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Property names the handler can manage.
const (
	PropertyFill   key.Name = "fill"
	PropertyTarget key.Name = "target"
)

const (
	keyAbove key.Name = "above"
	keyBelow key.Name = "below"
)

// Handler reads and writes a fill property of a node. Next to the raw
// value it records the mode under a private key, so a stored false is told
// apart from a missing property.
type Handler struct {
	property key.Name
	modeKey  key.Name
}

// NewHandler creates a handler for property.
func NewHandler(property key.Name) Handler {
	return Handler{property: property, modeKey: "_" + property + "Mode"}
}

// Property returns the managed property.
func (h Handler) Property() key.Name { return h.property }

// Set stores f. Setting an unset fill removes the property. The false
// keyword is stored as a boolean. The node is
// materialized in its parents. The mode is written silently so listeners
// observe a single change.
func (h Handler) Set(n *native.Node, f Fill) {
	if !f.IsSet() {
		h.Remove(n)
		return
	}
	f = f.stored()
	n.Object().SetString(h.modeKey, f.mode.Value())
	n.SetAndAddToParent(h.property, f.Native())
}

// SetBool stores a boolean fill.
func (h Handler) SetBool(n *native.Node, b bool) {
	h.Set(n, Bool(b))
}

// SetIndex stores an absolute fill. Indexes below 1 are rejected and
// leave the node untouched.
func (h Handler) SetIndex(n *native.Node, index int) error {
	f, err := Absolute(index)
	if err != nil {
		return err
	}
	h.Set(n, f)
	return nil
}

// SetString stores a keyword or a relative fill.
func (h Handler) SetString(n *native.Node, s string) error {
	f, err := Parse(s)
	if err != nil {
		return err
	}
	h.Set(n, f)
	return nil
}

// SetColors stores f with the colors of the area above and below the line.
// The property then holds an object with the target and the colors, and
// the recorded mode is the mode of the target. Empty colors are omitted.
func (h Handler) SetColors(n *native.Node, f Fill, above, below string) {
	if !f.IsSet() {
		h.Remove(n)
		return
	}
	f = f.stored()
	obj := native.New()
	obj.Set(PropertyTarget, f.Native())
	if above != "" {
		obj.SetString(keyAbove, above)
	}
	if below != "" {
		obj.SetString(keyBelow, below)
	}
	n.Object().SetString(h.modeKey, f.mode.Value())
	n.SetAndAddToParent(h.property, native.ObjectValue(obj))
}

// Colors returns the colors stored with the fill of n.
func (h Handler) Colors(n *native.Node) (above, below string, ok bool) {
	obj := n.Object().GetObject(h.property)
	if obj == nil || !obj.Has(PropertyTarget) {
		return "", "", false
	}
	return obj.GetString(keyAbove, ""), obj.GetString(keyBelow, ""), true
}

// Remove deletes the property and its mode.
func (h Handler) Remove(n *native.Node) {
	n.Object().Remove(h.modeKey)
	n.Remove(h.property)
}

// Mode returns the mode recorded on n, ModeUnset when n holds no fill.
func (h Handler) Mode(n *native.Node) Mode {
	if !n.Has(h.property) {
		return ModeUnset
	}
	s := n.Object().GetString(h.modeKey, "")
	if m, ok := key.Lookup(Modes, s); ok {
		return m
	}
	return ModeUnset
}

// Get returns the fill of n, falling back to chain and then def. Stored
// booleans read back as False or Origin.
func (h Handler) Get(n *native.Node, chain *defaults.Chain, def Fill) Fill {
	if f, ok := h.local(n); ok {
		return f
	}
	var result Fill
	_, ok := chain.Match(nil, h.property, func(v native.Value) bool {
		f, decoded := FromNative(v)
		if decoded {
			result = f
		}
		return decoded
	})
	if !ok {
		return def.Normalize()
	}
	return result
}

// local decodes the value of n using the recorded mode. Values without a
// matching mode, for example written by the engine, are inferred.
func (h Handler) local(n *native.Node) (Fill, bool) {
	v, ok := n.Object().Get(h.property)
	if !ok || !v.IsDefined() {
		return Fill{}, false
	}

	switch h.Mode(n) {
	case ModePredefinedBoolean:
		if b, isBool := v.AsBool(); isBool {
			return Bool(b).Normalize(), true
		}
	case ModeAbsolute:
		if i, isInt := v.AsInt(); isInt {
			if f, err := Absolute(i); err == nil {
				return f, true
			}
		}
	case ModeRelative:
		if s, isString := v.AsString(); isString {
			if f, err := Relative(s); err == nil {
				return f, true
			}
		}
	}
	return FromNative(v)
}
