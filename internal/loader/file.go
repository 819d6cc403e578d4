package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// IncludeKey names the documents a document builds upon. Its value is a
// path or a list of paths, relative to the including document.
const IncludeKey = "@include"

// DefaultMaxIncludeDepth limits nested includes.
const DefaultMaxIncludeDepth = 8

// FileLoader loads defaults documents from a file system.
type FileLoader struct {
	fs     FileSystem
	logger zerolog.Logger
}

// NewFileLoader creates a loader reading from fsys. A nil fsys reads from
// the OS.
func NewFileLoader(fsys FileSystem, logger zerolog.Logger) *FileLoader {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &FileLoader{fs: fsys, logger: logger}
}

// LoadFrom reads the document at path. It returns nil, nil if the file
// doesn't exist.
func (l *FileLoader) LoadFrom(path string) (*native.Object, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	return Parse(format, path, data)
}

// LoadWithIncludes reads the document at path and merges the documents it
// includes beneath it: values of the including document win.
func (l *FileLoader) LoadWithIncludes(path string, maxDepth int) (*native.Object, error) {
	return l.loadWithIncludes(path, maxDepth, map[string]bool{})
}

func (l *FileLoader) loadWithIncludes(path string, maxDepth int, visiting map[string]bool) (*native.Object, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("include depth exceeded for %s", path)
	}
	clean := filepath.Clean(path)
	if visiting[clean] {
		return nil, fmt.Errorf("include cycle through %s", path)
	}
	visiting[clean] = true
	defer delete(visiting, clean)

	doc, err := l.LoadFrom(path)
	if err != nil || doc == nil {
		return doc, err
	}

	includes, err := includeList(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(includes) == 0 {
		return doc, nil
	}
	doc.Remove(key.Name(IncludeKey))

	baseDir := filepath.Dir(path)
	merged := native.New()
	for _, inc := range includes {
		incPath := inc
		if !filepath.IsAbs(inc) {
			incPath = filepath.Join(baseDir, inc)
		}
		incDoc, err := l.loadWithIncludes(incPath, maxDepth-1, visiting)
		if err != nil {
			return nil, fmt.Errorf("loading include %s: %w", incPath, err)
		}
		if incDoc == nil {
			l.logger.Warn().Str("file", path).Str("include", incPath).Msg("included file not found")
			continue
		}
		defaults.DeepMerge(merged, incDoc)
	}
	return defaults.DeepMerge(merged, doc), nil
}

func includeList(doc *native.Object) ([]string, error) {
	v, ok := doc.Get(key.Name(IncludeKey))
	if !ok {
		return nil, nil
	}
	if s, isString := v.AsString(); isString {
		return []string{s}, nil
	}
	items, isArray := v.AsArray()
	if !isArray {
		return nil, fmt.Errorf("%s must be string or array of strings, got %s", IncludeKey, v.Kind())
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		s, isString := item.AsString()
		if !isString {
			return nil, fmt.Errorf("%s must be string or array of strings", IncludeKey)
		}
		list = append(list, s)
	}
	return list, nil
}
