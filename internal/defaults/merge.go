package defaults

import (
	"sort"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// DeepMerge recursively merges src into dst and returns dst.
// Values in src override values in dst. Objects are merged recursively;
// other values are replaced.
//
// It is used when assembling a layer from included files. Resolution
// through a Chain never merges.
func DeepMerge(dst, src *native.Object) *native.Object {
	if dst == nil {
		dst = native.New()
	}
	if src == nil {
		return dst
	}

	for _, name := range src.Keys() {
		k := key.Name(name)
		srcVal := src.Value(k)
		srcObj, srcIsObj := srcVal.AsObject()
		dstObj := dst.GetObject(k)
		if srcIsObj && dstObj != nil {
			DeepMerge(dstObj, srcObj)
			continue
		}
		if srcIsObj {
			dst.SetObject(k, srcObj.Clone())
			continue
		}
		dst.Set(k, srcVal)
	}
	return dst
}

// Diff returns the leaf paths that differ between two objects.
func Diff(old, new *native.Object) (added, modified, removed []string) {
	oldFlat := old.Flatten()
	newFlat := new.Flatten()

	for path, newVal := range newFlat {
		if oldVal, exists := oldFlat[path]; exists {
			if !native.Equal(oldVal, newVal) {
				modified = append(modified, path)
			}
		} else {
			added = append(added, path)
		}
	}

	for path := range oldFlat {
		if _, exists := newFlat[path]; !exists {
			removed = append(removed, path)
		}
	}

	sort.Strings(added)
	sort.Strings(modified)
	sort.Strings(removed)
	return added, modified, removed
}
