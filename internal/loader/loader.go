// Package loader reads defaults documents for chartcfg.
//
// Documents may be written in TOML, YAML or JSON and may pull in other
// documents with an "@include" key. Environment variables with the
// CHARTCFG_ prefix override global defaults. A bundle manifest names the
// documents feeding each defaults layer; Apply installs them into a
// defaults.Context.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/chartcfg/internal/native"
)

// ErrUnsupportedFormat is returned for files whose extension names no
// known format.
var ErrUnsupportedFormat = errors.New("unsupported defaults format")

// Format is the syntax of a defaults document.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DetectFormat returns the format named by the extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Parse decodes a document. Source names the document in errors.
func Parse(format Format, source string, data []byte) (*native.Object, error) {
	switch format {
	case FormatJSON:
		obj, err := native.Parse(data)
		if err != nil {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
		return obj, nil
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			pe := &ParseError{Path: source, Message: err.Error(), Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return nil, pe
		}
		return native.FromMap(m), nil
	case FormatYAML:
		var m map[string]any
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
		return native.FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ParseError represents an error while parsing a defaults document.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileSystem is the file access used by loaders. Tests substitute an
// in-memory implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}
