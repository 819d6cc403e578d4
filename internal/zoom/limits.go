package zoom

import (
	"math"
	"sort"
	"time"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/options"
)

const (
	keyX        key.Name = "x"
	keyY        key.Name = "y"
	keyMin      key.Name = "min"
	keyMax      key.Name = "max"
	keyMinRange key.Name = "minRange"
)

// Original is the bound value meaning "the bound the scale had before any
// zoom or pan".
const Original = "original"

// Range is a pair of bounds, one per axis, stored as "rangeMin" or
// "rangeMax" of zoom or pan. Each side resolves through the defaults
// chain on its own.
//
// Values are scale native: numbers for linear axes, epoch milliseconds for
// time axes and labels for category axes.
type Range struct {
	*options.Entity
}

// X returns the bound of the x axis, undefined when unset.
func (r *Range) X() native.Value { return r.Value(keyX) }

// XNumber returns the numeric bound of the x axis, NaN when unset.
func (r *Range) XNumber() float64 { return r.GetNumber(keyX, math.NaN()) }

// XDate returns the bound of a time x axis.
func (r *Range) XDate() (time.Time, bool) { return r.X().AsTime() }

// XLabel returns the bound of a category x axis.
func (r *Range) XLabel() string { return r.GetString(keyX, "") }

// SetX sets a numeric bound of the x axis. NaN removes it.
func (r *Range) SetX(n float64) { r.SetNumber(keyX, n) }

// SetXDate sets the bound of a time x axis.
func (r *Range) SetXDate(t time.Time) { r.Set(keyX, native.Time(t)) }

// SetXLabel sets the bound of a category x axis.
func (r *Range) SetXLabel(label string) { r.SetString(keyX, label) }

// Y returns the bound of the y axis, undefined when unset.
func (r *Range) Y() native.Value { return r.Value(keyY) }

// YNumber returns the numeric bound of the y axis, NaN when unset.
func (r *Range) YNumber() float64 { return r.GetNumber(keyY, math.NaN()) }

// YDate returns the bound of a time y axis.
func (r *Range) YDate() (time.Time, bool) { return r.Y().AsTime() }

// YLabel returns the bound of a category y axis.
func (r *Range) YLabel() string { return r.GetString(keyY, "") }

// SetY sets a numeric bound of the y axis. NaN removes it.
func (r *Range) SetY(n float64) { r.SetNumber(keyY, n) }

// SetYDate sets the bound of a time y axis.
func (r *Range) SetYDate(t time.Time) { r.Set(keyY, native.Time(t)) }

// SetYLabel sets the bound of a category y axis.
func (r *Range) SetYLabel(label string) { r.SetString(keyY, label) }

// Limits maps a scale id to the limits of that scale, stored under
// "limits".
type Limits struct {
	*options.Entity
	scales map[string]*ScaleLimit
}

// Get returns the limits of scale id.
func (l *Limits) Get(id string) *ScaleLimit {
	if sl, ok := l.scales[id]; ok {
		return sl
	}
	sl := &ScaleLimit{Entity: l.Child(key.Name(id))}
	if l.scales == nil {
		l.scales = make(map[string]*ScaleLimit)
	}
	l.scales[id] = sl
	return sl
}

// IDs returns the ids of the limited scales, sorted.
func (l *Limits) IDs() []string {
	ids := l.Object().Keys()
	sort.Strings(ids)
	return ids
}

// Remove deletes the limits of scale id.
func (l *Limits) Remove(id string) {
	l.Entity.Remove(key.Name(id))
	delete(l.scales, id)
}

// ScaleLimit clamps zoom and pan on one scale.
//
// Either bound may be the Original sentinel. While a bound is original,
// its numeric, date and label forms read as unset.
type ScaleLimit struct {
	*options.Entity
}

// Min returns the lower limit as stored, including the sentinel.
func (s *ScaleLimit) Min() native.Value { return s.Value(keyMin) }

// IsOriginalMin reports whether the lower limit is the original bound.
func (s *ScaleLimit) IsOriginalMin() bool { return s.isOriginal(keyMin) }

// SetOriginalMin sets the lower limit to the original bound. False
// removes the sentinel and the limit resolves through the chain again.
func (s *ScaleLimit) SetOriginalMin(b bool) { s.setOriginal(keyMin, b) }

// MinNumber returns the numeric lower limit, NaN when unset or original.
func (s *ScaleLimit) MinNumber() float64 { return s.number(keyMin) }

// MinDate returns the lower limit of a time scale.
func (s *ScaleLimit) MinDate() (time.Time, bool) { return s.date(keyMin) }

// MinLabel returns the lower limit of a category scale.
func (s *ScaleLimit) MinLabel() string { return s.label(keyMin) }

// SetMin sets a numeric lower limit.
func (s *ScaleLimit) SetMin(n float64) { s.SetNumber(keyMin, n) }

// SetMinDate sets the lower limit of a time scale.
func (s *ScaleLimit) SetMinDate(t time.Time) { s.Set(keyMin, native.Time(t)) }

// SetMinLabel sets the lower limit of a category scale.
func (s *ScaleLimit) SetMinLabel(label string) error { return s.setLabel(keyMin, label) }

// Max returns the upper limit as stored, including the sentinel.
func (s *ScaleLimit) Max() native.Value { return s.Value(keyMax) }

// IsOriginalMax reports whether the upper limit is the original bound.
func (s *ScaleLimit) IsOriginalMax() bool { return s.isOriginal(keyMax) }

// SetOriginalMax sets the upper limit to the original bound.
func (s *ScaleLimit) SetOriginalMax(b bool) { s.setOriginal(keyMax, b) }

// MaxNumber returns the numeric upper limit, NaN when unset or original.
func (s *ScaleLimit) MaxNumber() float64 { return s.number(keyMax) }

// MaxDate returns the upper limit of a time scale.
func (s *ScaleLimit) MaxDate() (time.Time, bool) { return s.date(keyMax) }

// MaxLabel returns the upper limit of a category scale.
func (s *ScaleLimit) MaxLabel() string { return s.label(keyMax) }

// SetMax sets a numeric upper limit.
func (s *ScaleLimit) SetMax(n float64) { s.SetNumber(keyMax, n) }

// SetMaxDate sets the upper limit of a time scale.
func (s *ScaleLimit) SetMaxDate(t time.Time) { s.Set(keyMax, native.Time(t)) }

// SetMaxLabel sets the upper limit of a category scale.
func (s *ScaleLimit) SetMaxLabel(label string) error { return s.setLabel(keyMax, label) }

// MinRange returns the smallest span the scale may be zoomed to, NaN when
// unset.
func (s *ScaleLimit) MinRange() float64 { return s.GetNumber(keyMinRange, math.NaN()) }

// SetMinRange sets the smallest span the scale may be zoomed to.
func (s *ScaleLimit) SetMinRange(r float64) error {
	if _, err := key.Positive("min range", r); err != nil {
		return err
	}
	s.SetNumber(keyMinRange, r)
	return nil
}

func (s *ScaleLimit) isOriginal(k key.Name) bool {
	str, ok := s.Value(k).AsString()
	return ok && str == Original
}

func (s *ScaleLimit) setOriginal(k key.Name, b bool) {
	if b {
		s.SetString(k, Original)
		return
	}
	if str, ok := s.Object().Value(k).AsString(); ok && str == Original {
		s.Remove(k)
	}
}

func (s *ScaleLimit) number(k key.Name) float64 {
	if s.isOriginal(k) {
		return math.NaN()
	}
	return s.GetNumber(k, math.NaN())
}

func (s *ScaleLimit) date(k key.Name) (time.Time, bool) {
	if s.isOriginal(k) {
		return time.Time{}, false
	}
	return s.Value(k).AsTime()
}

func (s *ScaleLimit) label(k key.Name) string {
	if s.isOriginal(k) {
		return ""
	}
	return s.GetString(k, "")
}

// setLabel rejects the sentinel as a label: it would read back as the
// original bound.
func (s *ScaleLimit) setLabel(k key.Name, label string) error {
	if label == Original {
		return &key.ArgumentError{Name: k.Value(), Value: label, Reason: "is reserved for the original bound"}
	}
	s.SetString(k, label)
	return nil
}
