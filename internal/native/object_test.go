package native

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/notify"
)

const (
	propColor  key.Name = "color"
	propSize   key.Name = "size"
	propFont   key.Name = "font"
	propLabels key.Name = "labels"
)

type style string

func (s style) Value() string { return string(s) }

var styles = []style{"normal", "italic", "oblique"}

func TestObject_HasGetRemove(t *testing.T) {
	o := New()

	if o.Has(propColor) {
		t.Error("empty object should not have color")
	}

	o.SetString(propColor, "#666")
	if !o.Has(propColor) {
		t.Error("color should be present after set")
	}
	if got := o.GetString(propColor, "x"); got != "#666" {
		t.Errorf("GetString = %q, want '#666'", got)
	}

	o.Remove(propColor)
	if o.Has(propColor) {
		t.Error("color should be absent after remove")
	}
	if _, ok := o.Get(propColor); ok {
		t.Error("Get should not find a removed key")
	}
	if got := o.GetString(propColor, "x"); got != "x" {
		t.Errorf("GetString after remove = %q, want default", got)
	}
}

func TestObject_NullIsNotPresent(t *testing.T) {
	o := New()
	o.Set(propColor, Null())

	if o.Has(propColor) {
		t.Error("null value should not count as present")
	}
	if o.Type(propColor) != KindNull {
		t.Errorf("Type = %v, want null", o.Type(propColor))
	}
}

func TestObject_SetUndefinedRemoves(t *testing.T) {
	o := New()
	o.SetInt(propSize, 12)
	o.Set(propSize, Undefined())
	if o.Len() != 0 {
		t.Errorf("Len = %d, want 0", o.Len())
	}
}

func TestObject_TypeMismatchReturnsDefault(t *testing.T) {
	o := New()
	o.SetString(propSize, "large")

	if got := o.GetInt(propSize, 12); got != 12 {
		t.Errorf("GetInt on string = %d, want default 12", got)
	}
	if got := o.GetBool(propSize, true); got != true {
		t.Errorf("GetBool on string = %v, want default true", got)
	}
	if got := o.GetNumber(propSize, 1.5); got != 1.5 {
		t.Errorf("GetNumber on string = %v, want default", got)
	}
	if o.GetObject(propSize) != nil {
		t.Error("GetObject on string should be nil")
	}
}

func TestObject_GetIntTruncates(t *testing.T) {
	o := New()
	o.SetNumber(propSize, 12.9)
	if got := o.GetInt(propSize, 0); got != 12 {
		t.Errorf("GetInt = %d, want 12", got)
	}
}

func TestGetEnum(t *testing.T) {
	o := New()
	o.SetEnum(propFont, style("italic"))
	if got := GetEnum(o, propFont, styles, style("normal")); got != "italic" {
		t.Errorf("GetEnum = %q, want italic", got)
	}

	o.SetString(propFont, "bogus")
	if got := GetEnum(o, propFont, styles, style("normal")); got != "normal" {
		t.Errorf("GetEnum on bogus = %q, want default normal", got)
	}

	o.SetEnum(propFont, nil)
	if o.Has(propFont) {
		t.Error("SetEnum(nil) should remove the key")
	}
}

func TestObject_NestedByReference(t *testing.T) {
	parent := New()
	child := New()
	parent.SetObject(propFont, child)

	child.SetInt(propSize, 14)
	got := parent.GetObject(propFont)
	if got != child {
		t.Fatal("nested object should be stored by reference")
	}
	if got.GetInt(propSize, 0) != 14 {
		t.Error("mutation of child should be visible through parent")
	}
}

func TestObject_Clone(t *testing.T) {
	o := New()
	font := New()
	font.SetInt(propSize, 12)
	o.SetObject(propFont, font)
	o.Set(propLabels, Strings("a", "b"))

	c := o.Clone()
	font.SetInt(propSize, 20)

	if c.GetObject(propFont).GetInt(propSize, 0) != 12 {
		t.Error("clone should not share nested objects")
	}
	if got := c.GetStrings(propLabels); len(got) != 2 || got[1] != "b" {
		t.Errorf("cloned labels = %v", got)
	}
}

func TestObject_Paths(t *testing.T) {
	o := New()
	o.SetPath("pan.rangeMin.x", Number(5))

	v, ok := o.Lookup("pan.rangeMin.x")
	if !ok {
		t.Fatal("Lookup should find pan.rangeMin.x")
	}
	if n, _ := v.AsNumber(); n != 5 {
		t.Errorf("pan.rangeMin.x = %v, want 5", n)
	}

	if _, ok := o.Lookup("pan.rangeMax.x"); ok {
		t.Error("Lookup should not find missing path")
	}
	if _, ok := o.Lookup("pan.rangeMin.x.deeper"); ok {
		t.Error("Lookup through a number should fail")
	}

	flat := o.Flatten()
	if _, ok := flat["pan.rangeMin.x"]; !ok {
		t.Errorf("Flatten = %v", flat)
	}

	if !o.RemovePath("pan.rangeMin.x") {
		t.Error("RemovePath should report removal")
	}
	if o.RemovePath("pan.rangeMin.x") {
		t.Error("second RemovePath should report nothing removed")
	}
}

func TestNilObject(t *testing.T) {
	var o *Object
	if o.Has(propColor) {
		t.Error("nil object has nothing")
	}
	if got := o.GetString(propColor, "d"); got != "d" {
		t.Errorf("GetString on nil = %q", got)
	}
	if !o.Empty() {
		t.Error("nil object should be empty")
	}
	o.Set(propColor, String("x"))
	o.Remove(propColor)
}

func TestValue_IsDefined(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"undefined", Undefined(), false},
		{"null", Null(), false},
		{"nan", Number(math.NaN()), false},
		{"zero", Number(0), true},
		{"false", Bool(false), true},
		{"empty string", String(""), true},
	}

	for _, tt := range tests {
		if got := tt.v.IsDefined(); got != tt.want {
			t.Errorf("%s.IsDefined() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValueOf(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	tests := []struct {
		in   any
		kind Kind
	}{
		{nil, KindNull},
		{true, KindBool},
		{int64(3), KindNumber},
		{"x", KindString},
		{now, KindNumber},
		{[]any{1, "a"}, KindArray},
		{map[string]any{"a": 1}, KindObject},
		{struct{}{}, KindHandle},
	}

	for _, tt := range tests {
		if got := ValueOf(tt.in).Kind(); got != tt.kind {
			t.Errorf("ValueOf(%T).Kind() = %v, want %v", tt.in, got, tt.kind)
		}
	}

	tm, ok := ValueOf(now).AsTime()
	if !ok || !tm.Equal(now) {
		t.Errorf("AsTime = %v, want %v", tm, now)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Strings("a", "b"), Strings("a", "b")) {
		t.Error("equal arrays should compare equal")
	}
	if Equal(Number(1), String("1")) {
		t.Error("different kinds should not compare equal")
	}
	o := New()
	if !Equal(ObjectValue(o), ObjectValue(o)) {
		t.Error("same object should compare equal")
	}
	if Equal(ObjectValue(o), ObjectValue(New())) {
		t.Error("objects compare by identity")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := `{"responsive":true,"font":{"size":14,"family":"Arial"},"labels":["a","b"],"min":null}`
	o, err := ParseString(doc)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if !o.GetBool(key.Name("responsive"), false) {
		t.Error("responsive should be true")
	}
	if o.GetObject(propFont).GetInt(propSize, 0) != 14 {
		t.Error("font.size should be 14")
	}
	if o.Has(key.Name("min")) {
		t.Error("null min should not be present")
	}

	o.SetFunction(key.Name("onClick"), func(*Object, ...Value) Value { return Undefined() })
	o.SetNumber(key.Name("bad"), math.NaN())

	out, err := o.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if strings.Contains(out, "onClick") {
		t.Error("functions should not be serialized")
	}
	if strings.Contains(out, "bad") {
		t.Error("NaN should not be serialized")
	}
	if !strings.Contains(out, `"family": "Arial"`) {
		t.Errorf("ToJSON = %s", out)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := ParseString("{"); err == nil {
		t.Error("invalid JSON should fail")
	}
	if _, err := ParseString("[1,2]"); err == nil {
		t.Error("top level array should fail")
	}
	v, err := ParseValue("42")
	if err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}
	if n, _ := v.AsNumber(); n != 42 {
		t.Errorf("ParseValue = %v, want 42", v)
	}
}

func TestNode_SetAndAddToParent(t *testing.T) {
	root := NewNode(nil)
	plugins := NewChildNode(root, key.Name("plugins"), nil)
	zoom := NewChildNode(plugins, key.Name("zoom"), nil)
	pan := NewChildNode(zoom, key.Name("pan"), nil)

	if pan.Attached() {
		t.Fatal("new child should start detached")
	}
	if !root.Object().Empty() {
		t.Fatal("root should be empty before any write")
	}

	pan.SetAndAddToParent(key.Name("enabled"), Bool(true))

	if !pan.Attached() {
		t.Error("child should be attached after write")
	}
	v, ok := root.Object().Lookup("plugins.zoom.pan.enabled")
	if !ok {
		t.Fatal("value should be reachable from root")
	}
	if b, _ := v.AsBool(); !b {
		t.Error("plugins.zoom.pan.enabled should be true")
	}
	if got := pan.Path(key.Name("enabled")); got != "plugins.zoom.pan.enabled" {
		t.Errorf("Path = %q", got)
	}
}

func TestNode_ReusesExistingChild(t *testing.T) {
	rootObj, _ := ParseString(`{"font":{"size":20}}`)
	root := NewNode(rootObj)
	font := NewChildNode(root, propFont, nil)

	if !font.Attached() {
		t.Error("existing child object should be attached")
	}
	if font.Object().GetInt(propSize, 0) != 20 {
		t.Error("child should read existing values")
	}
}

func TestNode_Notifications(t *testing.T) {
	root := NewNode(nil)
	nt := notify.New()
	root.SetNotifier(nt)

	var changes []notify.Change
	nt.SubscribePath("font", func(c notify.Change) { changes = append(changes, c) })

	font := NewChildNode(root, propFont, nil)
	font.SetAndAddToParent(propSize, Int(14))
	font.Remove(propSize)
	font.Remove(propSize)

	if len(changes) != 2 {
		t.Fatalf("changes = %d, want 2", len(changes))
	}
	if changes[0].Path != "font.size" || changes[0].NewValue != 14.0 {
		t.Errorf("set change = %+v", changes[0])
	}
	if changes[1].Type != notify.ChangeDelete || changes[1].OldValue != 14.0 {
		t.Errorf("delete change = %+v", changes[1])
	}
}

func TestNode_UpdateListener(t *testing.T) {
	root := NewNode(nil)
	child := NewChildNode(root, propFont, nil)

	calls := 0
	child.SetUpdateListener(func(*Node) { calls++ })
	child.SetAndAddToParent(propSize, Int(1))
	child.SetAndAddToParent(propColor, String("red"))

	if calls != 2 {
		t.Errorf("listener calls = %d, want 2", calls)
	}
}
