package options

import (
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

const (
	keyDisplay  key.Name = "display"
	keyPosition key.Name = "position"
	keyAlign    key.Name = "align"
	keyFullSize key.Name = "fullSize"
	keyText     key.Name = "text"
	keyReverse  key.Name = "reverse"
	keyLabels   key.Name = "labels"
	keyBoxWidth key.Name = "boxWidth"
)

// Title is the chart title, stored under plugins.title.
type Title struct {
	*Entity
	font *Font
}

func newTitle(e *Entity, root *Font) *Title {
	return &Title{Entity: e, font: newFont(e, keyFont, root)}
}

// IsDisplay reports whether the title is shown.
func (t *Title) IsDisplay() bool { return t.GetBool(keyDisplay, DefaultTitleDisplay) }

// SetDisplay sets whether the title is shown.
func (t *Title) SetDisplay(b bool) { t.SetBool(keyDisplay, b) }

// Position returns the side of the chart holding the title.
func (t *Title) Position() Position {
	return GetEnum(t.Entity, keyPosition, Positions, DefaultTitlePosition)
}

// SetPosition sets the side of the chart holding the title.
func (t *Title) SetPosition(p Position) { t.SetEnum(keyPosition, p) }

// Align returns the alignment of the title.
func (t *Title) Align() Align { return GetEnum(t.Entity, keyAlign, Aligns, DefaultTitleAlign) }

// SetAlign sets the alignment of the title.
func (t *Title) SetAlign(a Align) { t.SetEnum(keyAlign, a) }

// IsFullSize reports whether the title takes the full width of the canvas.
func (t *Title) IsFullSize() bool { return t.GetBool(keyFullSize, DefaultTitleFullSize) }

// SetFullSize sets whether the title takes the full width of the canvas.
func (t *Title) SetFullSize(b bool) { t.SetBool(keyFullSize, b) }

// Padding returns the padding around the title.
func (t *Title) Padding() int { return t.GetInt(keyPadding, DefaultTitlePadding) }

// SetPadding sets the padding around the title.
func (t *Title) SetPadding(p int) error {
	if _, err := key.PositiveOrZero("padding", p); err != nil {
		return err
	}
	t.SetInt(keyPadding, p)
	return nil
}

// Text returns the title lines. A single string is one line.
func (t *Title) Text() []string {
	return stringsOf(t.Value(keyText))
}

// stringsOf returns the strings of a string or array value.
func stringsOf(v native.Value) []string {
	if s, ok := v.AsString(); ok {
		return []string{s}
	}
	arr, _ := v.AsArray()
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.AsString(); ok {
			result = append(result, s)
		}
	}
	return result
}

// SetText sets the title lines.
func (t *Title) SetText(lines ...string) {
	switch len(lines) {
	case 0:
		t.Remove(keyText)
	case 1:
		t.SetString(keyText, lines[0])
	default:
		t.Set(keyText, native.Strings(lines...))
	}
}

// Font returns the title font. Unset properties come from the options
// font.
func (t *Title) Font() *Font { return t.font }
