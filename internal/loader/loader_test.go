package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

func nopLogger() zerolog.Logger { return zerolog.Nop() }

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"base.toml", FormatTOML, false},
		{"line.YAML", FormatYAML, false},
		{"line.yml", FormatYAML, false},
		{"/etc/chart/zoom.json", FormatJSON, false},
		{"defaults.ini", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("DetectFormat(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("DetectFormat(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParse_FormatsAgree(t *testing.T) {
	docs := map[Format]string{
		FormatTOML: `
color = "#333"
responsive = false

[font]
size = 14
family = "Inter"

[layout]
padding = [4, 8]
`,
		FormatYAML: `
color: "#333"
responsive: false
font:
  size: 14
  family: Inter
layout:
  padding: [4, 8]
`,
		FormatJSON: `{
  "color": "#333",
  "responsive": false,
  "font": {"size": 14, "family": "Inter"},
  "layout": {"padding": [4, 8]}
}`,
	}

	for format, doc := range docs {
		obj, err := Parse(format, "doc."+string(format), []byte(doc))
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", format, err)
		}
		if got := obj.GetString(key.Name("color"), ""); got != "#333" {
			t.Errorf("%s: color = %q", format, got)
		}
		if got := obj.GetBool(key.Name("responsive"), true); got {
			t.Errorf("%s: responsive = true", format)
		}
		if v, _ := obj.Lookup("font.size"); !native.Equal(v, native.Int(14)) {
			t.Errorf("%s: font.size = %v", format, v)
		}
		if v, _ := obj.Lookup("font.family"); !native.Equal(v, native.String("Inter")) {
			t.Errorf("%s: font.family = %v", format, v)
		}
		padding, _ := obj.Lookup("layout.padding")
		if items, ok := padding.AsArray(); !ok || len(items) != 2 {
			t.Errorf("%s: layout.padding = %v", format, padding)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		format   Format
		doc      string
		wantLine bool
	}{
		{FormatTOML, "[font\nsize = 1", true},
		{FormatYAML, "font: [1, 2", false},
		{FormatJSON, `{"font": `, false},
		{FormatJSON, `[1, 2]`, false},
	}
	for _, tt := range tests {
		_, err := Parse(tt.format, "bad", []byte(tt.doc))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%s, %q) error = %v, want *ParseError", tt.format, tt.doc, err)
			continue
		}
		if pe.Path != "bad" {
			t.Errorf("ParseError.Path = %q", pe.Path)
		}
		if tt.wantLine && pe.Line == 0 {
			t.Errorf("Parse(%s) error has no line: %v", tt.format, pe)
		}
	}

	if _, err := Parse("ini", "x", nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Parse(ini) error = %v", err)
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in a.toml at line 3, column 7: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestFileLoader_Missing(t *testing.T) {
	l := NewFileLoader(NewMemFS(), nopLogger())
	obj, err := l.LoadFrom("/missing.toml")
	if err != nil || obj != nil {
		t.Errorf("LoadFrom(missing) = %v, %v, want nil, nil", obj, err)
	}
}

func TestFileLoader_Includes(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/cfg/base.toml", `
color = "#111"
[font]
size = 10
family = "Inter"
`)
	memfs.AddFile("/cfg/shared/brand.yaml", `
font:
  size: 11
  style: italic
`)
	memfs.AddFile("/cfg/main.json", `{
  "@include": ["base.toml", "shared/brand.yaml"],
  "font": {"size": 13}
}`)

	l := NewFileLoader(memfs, nopLogger())
	obj, err := l.LoadWithIncludes("/cfg/main.json", DefaultMaxIncludeDepth)
	if err != nil {
		t.Fatal(err)
	}

	if obj.Has(key.Name(IncludeKey)) {
		t.Error("@include kept in the result")
	}
	tests := []struct {
		path string
		want native.Value
	}{
		{"color", native.String("#111")},
		{"font.size", native.Int(13)},
		{"font.family", native.String("Inter")},
		{"font.style", native.String("italic")},
	}
	for _, tt := range tests {
		if got, _ := obj.Lookup(tt.path); !native.Equal(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFileLoader_IncludeErrors(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `"@include" = "b.toml"`)
	memfs.AddFile("/b.toml", `"@include" = "a.toml"`)
	memfs.AddFile("/bad.toml", `"@include" = 3`)

	l := NewFileLoader(memfs, nopLogger())
	if _, err := l.LoadWithIncludes("/a.toml", DefaultMaxIncludeDepth); err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Errorf("cyclic include error = %v", err)
	}
	if _, err := l.LoadWithIncludes("/a.toml", 1); err == nil || !strings.Contains(err.Error(), "depth") {
		t.Errorf("deep include error = %v", err)
	}
	if _, err := l.LoadWithIncludes("/bad.toml", DefaultMaxIncludeDepth); err == nil {
		t.Error("numeric @include should fail")
	}
}
