package options

import (
	"sort"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Legacy axis lists.
const (
	keyXAxes key.Name = "xAxes"
	keyYAxes key.Name = "yAxes"
)

// Scales is the collection of axes of a chart, stored under "scales".
//
// Two models are supported: the keyed model where each axis is stored
// under its id, and the legacy model with the xAxes and yAxes lists. The
// collection is parsed from the options object on first access.
type Scales struct {
	options *Options
	node    *native.Node

	keyed map[string]*Scale
	xAxes []*Scale
	yAxes []*Scale
}

func newScales(o *Options) *Scales {
	s := &Scales{
		options: o,
		node:    native.NewChildNode(o.Node(), keyScales, nil),
		keyed:   make(map[string]*Scale),
	}
	s.parse()
	return s
}

func (s *Scales) parse() {
	obj := s.node.Object()
	for _, name := range obj.Keys() {
		k := key.Name(name)
		switch k {
		case keyXAxes:
			s.xAxes = s.parseList(obj.GetArray(k), IndexAxisX)
		case keyYAxes:
			s.yAxes = s.parseList(obj.GetArray(k), IndexAxisY)
		default:
			if child := obj.GetObject(k); child != nil {
				s.keyed[name] = s.keyedScale(name, s.typeOf(child, name))
			}
		}
	}
}

func (s *Scales) parseList(items []native.Value, axis IndexAxis) []*Scale {
	var result []*Scale
	for _, item := range items {
		obj, ok := item.AsObject()
		if !ok {
			continue
		}
		id := obj.GetString(keyID, "")
		result = append(result, s.legacyScale(obj, id, s.typeOf(obj, axis.Value())))
	}
	return result
}

// typeOf returns the type stored on obj, or the engine default for an axis
// with that id.
func (s *Scales) typeOf(obj *native.Object, id string) AxisType {
	if t, ok := key.Lookup(AxisTypes, obj.GetString(keyType, "")); ok {
		return t
	}
	switch {
	case id == "r":
		return AxisRadial
	case len(id) > 0 && id[0] == 'x' && s.options.IndexAxis() == IndexAxisX:
		return AxisCategory
	case len(id) > 0 && id[0] == 'y' && s.options.IndexAxis() == IndexAxisY:
		return AxisCategory
	default:
		return AxisLinear
	}
}

func (s *Scales) keyedScale(id string, axisType AxisType) *Scale {
	ctx := s.options.ctx
	chart := defaults.NewChain()
	if s.options.instance != nil {
		chart = chart.Append(defaults.ObjectProvider("instance", s.options.instance))
	}
	if s.options.chartType != "" {
		chart = chart.Append(ctx.Chart(s.options.chartType))
	}
	chain := ctx.ScaleChain(axisType.Value()).
		Prepend(chart.Sub(keyScales).Sub(key.Name(id)).Providers()...)
	node := native.NewChildNode(s.node, key.Name(id), nil)
	return newScale(node, chain, id, axisType, s.options.Font())
}

func (s *Scales) legacyScale(obj *native.Object, id string, axisType AxisType) *Scale {
	chain := s.options.ctx.ScaleChain(axisType.Value())
	return newScale(native.NewNode(obj), chain, id, axisType, s.options.Font())
}

// Get returns the axis stored under id.
func (s *Scales) Get(id string) (*Scale, bool) {
	sc, ok := s.keyed[id]
	return sc, ok
}

// Add returns the axis stored under id, creating it with axisType. The
// type of an existing axis is replaced.
func (s *Scales) Add(id string, axisType AxisType) *Scale {
	if sc, ok := s.keyed[id]; ok && sc.axisType == axisType {
		return sc
	}
	sc := s.keyedScale(id, axisType)
	sc.SetEnum(keyType, axisType)
	s.keyed[id] = sc
	return sc
}

// IDs returns the ids of the keyed axes, sorted.
func (s *Scales) IDs() []string {
	ids := make([]string, 0, len(s.keyed))
	for id := range s.keyed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Remove deletes the keyed axis id.
func (s *Scales) Remove(id string) {
	delete(s.keyed, id)
	s.node.Remove(key.Name(id))
}

// XAxes returns the legacy x axes.
func (s *Scales) XAxes() []*Scale { return s.xAxes }

// YAxes returns the legacy y axes.
func (s *Scales) YAxes() []*Scale { return s.yAxes }

// AddXAxis appends a legacy x axis.
func (s *Scales) AddXAxis(id string, axisType AxisType) *Scale {
	sc := s.appendLegacy(keyXAxes, id, axisType)
	s.xAxes = append(s.xAxes, sc)
	return sc
}

// AddYAxis appends a legacy y axis.
func (s *Scales) AddYAxis(id string, axisType AxisType) *Scale {
	sc := s.appendLegacy(keyYAxes, id, axisType)
	s.yAxes = append(s.yAxes, sc)
	return sc
}

func (s *Scales) appendLegacy(list key.Name, id string, axisType AxisType) *Scale {
	obj := native.New()
	obj.SetString(keyType, axisType.Value())
	if id != "" {
		obj.SetString(keyID, id)
	}
	current := s.node.Object().GetArray(list)
	items := make([]native.Value, 0, len(current)+1)
	items = append(append(items, current...), native.ObjectValue(obj))
	s.node.SetAndAddToParent(list, native.ArrayOf(items...))
	return s.legacyScale(obj, id, axisType)
}
