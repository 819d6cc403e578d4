// Package fill encodes the area fill setting of line and radar datasets.
//
// The engine accepts a boolean, a keyword, an absolute dataset index, a
// relative dataset index ("+1", "-2") or a baseline object for the same
// property. A Fill is the tagged representation of one of those forms.
package fill

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Mode identifies which form a Fill holds.
type Mode uint8

const (
	// ModeUnset means no fill is configured.
	ModeUnset Mode = iota
	// ModePredefined is a keyword such as "origin".
	ModePredefined
	// ModePredefinedBoolean is a stored boolean, read back as a keyword.
	ModePredefinedBoolean
	// ModeAbsolute is a dataset index starting at 1.
	ModeAbsolute
	// ModeRelative is a signed offset to another dataset.
	ModeRelative
	// ModeBaseline fills to a value on the value axis.
	ModeBaseline
)

var modeNames = []string{"unset", "predefined", "predefinedBoolean", "absolute", "relative", "baseline"}

// Value implements key.Key.
func (m Mode) Value() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return ""
}

// String returns the mode token.
func (m Mode) String() string { return m.Value() }

// Modes lists every mode.
var Modes = []Mode{ModeUnset, ModePredefined, ModePredefinedBoolean, ModeAbsolute, ModeRelative, ModeBaseline}

// Keyword is a predefined fill token.
type Keyword string

// Value implements key.Key.
func (k Keyword) Value() string { return string(k) }

// String returns the token.
func (k Keyword) String() string { return string(k) }

// Predefined fill keywords.
const (
	KeywordFalse  Keyword = "false"
	KeywordOrigin Keyword = "origin"
	KeywordStart  Keyword = "start"
	KeywordEnd    Keyword = "end"
	KeywordStack  Keyword = "stack"
	KeywordShape  Keyword = "shape"
)

// Keywords lists every predefined token.
var Keywords = []Keyword{KeywordFalse, KeywordOrigin, KeywordStart, KeywordEnd, KeywordStack, KeywordShape}

var relativePattern = regexp.MustCompile(`^[+-]\d+$`)

var keyBaselineValue = key.Name("value")

// Fill is a fill descriptor. Exactly one form is active, given by Mode.
// The zero Fill is unset. Fills are comparable.
type Fill struct {
	mode     Mode
	keyword  Keyword
	index    int
	relative string
	baseline float64
}

// Predefined fills.
var (
	False  = Fill{mode: ModePredefined, keyword: KeywordFalse}
	Origin = Fill{mode: ModePredefined, keyword: KeywordOrigin}
	Start  = Fill{mode: ModePredefined, keyword: KeywordStart}
	End    = Fill{mode: ModePredefined, keyword: KeywordEnd}
	Stack  = Fill{mode: ModePredefined, keyword: KeywordStack}
	Shape  = Fill{mode: ModePredefined, keyword: KeywordShape}
)

// Predefined returns the fill of a keyword.
func Predefined(k Keyword) (Fill, error) {
	if !key.Has(Keywords, k.Value()) {
		return Fill{}, &key.ArgumentError{Name: "fill", Value: k, Reason: "is not a predefined fill"}
	}
	return Fill{mode: ModePredefined, keyword: k}, nil
}

// Bool returns the fill of a boolean. It keeps the boolean form so it is
// stored as such; reading it back yields False or Origin.
func Bool(b bool) Fill {
	kw := KeywordFalse
	if b {
		kw = KeywordOrigin
	}
	return Fill{mode: ModePredefinedBoolean, keyword: kw}
}

// Absolute returns the fill to the dataset at index, which must be >= 1.
func Absolute(index int) (Fill, error) {
	if _, err := key.Positive("fill index", index); err != nil {
		return Fill{}, err
	}
	return Fill{mode: ModeAbsolute, index: index}, nil
}

// Relative returns the fill to the dataset at a signed offset such as
// "-1" or "+2".
func Relative(offset string) (Fill, error) {
	if _, err := key.Matches("fill offset", offset, relativePattern); err != nil {
		return Fill{}, err
	}
	return Fill{mode: ModeRelative, relative: offset}, nil
}

// RelativeIndex returns the fill to the dataset offset from the current
// one. Zero is rejected.
func RelativeIndex(offset int) (Fill, error) {
	if offset == 0 {
		return Fill{}, &key.ArgumentError{Name: "fill offset", Value: offset, Reason: "is 0"}
	}
	return Relative(fmt.Sprintf("%+d", offset))
}

// Baseline returns the fill to a value of the value axis.
func Baseline(value float64) (Fill, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Fill{}, &key.ArgumentError{Name: "fill baseline", Value: value, Reason: "is not a finite number"}
	}
	return Fill{mode: ModeBaseline, baseline: value}, nil
}

// Parse returns the fill of a keyword, matched case-insensitively, or of a
// relative offset.
func Parse(s string) (Fill, error) {
	if strings.EqualFold(s, "true") {
		return Origin, nil
	}
	if kw, ok := key.LookupFold(Keywords, s); ok {
		return Fill{mode: ModePredefined, keyword: kw}, nil
	}
	if relativePattern.MatchString(s) {
		return Fill{mode: ModeRelative, relative: s}, nil
	}
	return Fill{}, &key.ArgumentError{Name: "fill", Value: s, Reason: "is not a keyword or relative index"}
}

// Mode returns the active form.
func (f Fill) Mode() Mode { return f.mode }

// IsSet reports whether f holds a form.
func (f Fill) IsSet() bool { return f.mode != ModeUnset }

// Keyword returns the keyword of a predefined or boolean fill.
func (f Fill) Keyword() (Keyword, bool) {
	switch f.mode {
	case ModePredefined, ModePredefinedBoolean:
		return f.keyword, true
	}
	return "", false
}

// Index returns the dataset index of an absolute fill.
func (f Fill) Index() (int, bool) {
	return f.index, f.mode == ModeAbsolute
}

// Offset returns the signed offset of a relative fill.
func (f Fill) Offset() (string, bool) {
	return f.relative, f.mode == ModeRelative
}

// OffsetValue returns the offset of a relative fill as an integer.
func (f Fill) OffsetValue() (int, bool) {
	if f.mode != ModeRelative {
		return 0, false
	}
	n, err := strconv.Atoi(f.relative)
	return n, err == nil
}

// BaselineValue returns the axis value of a baseline fill.
func (f Fill) BaselineValue() (float64, bool) {
	return f.baseline, f.mode == ModeBaseline
}

// Normalize returns the predefined keyword form of a boolean fill. Other
// fills are returned unchanged.
func (f Fill) Normalize() Fill {
	if f.mode == ModePredefinedBoolean {
		return Fill{mode: ModePredefined, keyword: f.keyword}
	}
	return f
}

// stored returns the form written into the configuration. The engine
// knows no "false" keyword, so it is stored as the boolean.
func (f Fill) stored() Fill {
	if f.mode == ModePredefined && f.keyword == KeywordFalse {
		return Bool(false)
	}
	return f
}

// Native returns the value written into the configuration.
func (f Fill) Native() native.Value {
	f = f.stored()
	switch f.mode {
	case ModePredefined:
		return native.String(f.keyword.Value())
	case ModePredefinedBoolean:
		return native.Bool(f.keyword == KeywordOrigin)
	case ModeAbsolute:
		return native.Int(f.index)
	case ModeRelative:
		return native.String(f.relative)
	case ModeBaseline:
		obj := native.New()
		obj.SetNumber(keyBaselineValue, f.baseline)
		return native.ObjectValue(obj)
	default:
		return native.Undefined()
	}
}

// String returns a readable form of f.
func (f Fill) String() string {
	switch f.mode {
	case ModePredefined, ModePredefinedBoolean:
		return f.keyword.Value()
	case ModeAbsolute:
		return strconv.Itoa(f.index)
	case ModeRelative:
		return f.relative
	case ModeBaseline:
		return "value:" + strconv.FormatFloat(f.baseline, 'g', -1, 64)
	default:
		return ModeUnset.Value()
	}
}

// FromNative infers a fill from a stored value. Booleans read back as the
// False or Origin keyword. An object holding a target, as written with
// fill colors, yields the fill of the target.
func FromNative(v native.Value) (Fill, bool) {
	switch v.Kind() {
	case native.KindBool:
		b, _ := v.AsBool()
		return Bool(b).Normalize(), true
	case native.KindNumber:
		n, _ := v.AsNumber()
		if n != math.Trunc(n) {
			return Fill{}, false
		}
		f, err := Absolute(int(n))
		return f, err == nil
	case native.KindString:
		s, _ := v.AsString()
		f, err := Parse(strings.TrimSpace(s))
		return f.Normalize(), err == nil
	case native.KindObject:
		obj, _ := v.AsObject()
		if target, ok := obj.Get(PropertyTarget); ok {
			return FromNative(target)
		}
		if !obj.IsType(keyBaselineValue, native.KindNumber) {
			return Fill{}, false
		}
		f, err := Baseline(obj.GetNumber(keyBaselineValue, 0))
		return f, err == nil
	}
	return Fill{}, false
}
