// Package tree provides PathTree, a view over a nested document that reads
// and writes values by delimited path strings such as "servers.0.port".
package tree

import (
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/format"
	"github.com/thirteen37/arraypath/internal/merge"
	"github.com/thirteen37/arraypath/internal/path"
)

// PathTree owns a nested document and addresses it by path.
//
// Mappings are *orderedmap.OrderedMap and sequences are []any. An integer
// path segment matches the mapping key with the same decimal form and the
// sequence element at that index. A stored nil is indistinguishable from a
// missing key.
//
// Values going in and out are deep-copied, so callers never share structure
// with the owned root. Writes build a complete new root before swapping it in.
// A PathTree is not safe for concurrent use; callers sharing one must
// serialize access.
type PathTree struct {
	root      any
	separator string
}

// New creates a PathTree seeded with a copy of data.
// A mapping or a sequence becomes the root; anything else (including nil)
// yields an empty tree. An empty separator means path.DefaultSeparator.
func New(data any, separator string) *PathTree {
	root := merge.DeepCopy(data)
	if !merge.IsContainer(root) {
		root = orderedmap.New()
	}
	return &PathTree{root: root, separator: separator}
}

// SetSeparator changes the separator used for future paths.
// Data already stored is not re-keyed.
func (t *PathTree) SetSeparator(separator string) *PathTree {
	t.separator = separator
	return t
}

// Separator returns the current separator.
func (t *PathTree) Separator() string {
	if t.separator == "" {
		return path.DefaultSeparator
	}
	return t.separator
}

// Parse splits p with the tree's separator.
func (t *PathTree) Parse(p string) path.Path {
	return path.Parse(p, t.Separator())
}

// Get returns a copy of the value at p, or def when nothing is stored there.
func (t *PathTree) Get(p string, def any) any {
	v, _ := t.Lookup(p, def)
	return v
}

// Lookup is Get that also reports whether a value was found.
func (t *PathTree) Lookup(p string, def any) (any, bool) {
	return t.LookupPath(t.Parse(p), def)
}

// Has reports whether a non-nil value is stored at p.
func (t *PathTree) Has(p string) bool {
	_, ok := t.Lookup(p, nil)
	return ok
}

// Set writes a copy of value at p, creating intermediate mappings as needed.
// An empty path replaces the whole document.
func (t *PathTree) Set(p string, value any) *PathTree {
	return t.SetPath(t.Parse(p), value)
}

// Delete removes the entry at p. Missing paths are ignored.
func (t *PathTree) Delete(p string) *PathTree {
	return t.DeletePath(t.Parse(p))
}

// Reset empties the document.
func (t *PathTree) Reset() *PathTree {
	t.root = orderedmap.New()
	return t
}

// LookupPath returns a copy of the value at keys and whether it exists.
// An empty tree answers def for every path, the empty one included.
func (t *PathTree) LookupPath(keys path.Path, def any) (any, bool) {
	if merge.IsEmpty(t.root) {
		return def, false
	}
	if len(keys) == 0 {
		return merge.DeepCopy(t.root), true
	}

	v, ok := resolve(keys, t.root)
	if !ok || merge.IsNil(v) {
		return def, false
	}
	return merge.DeepCopy(v), true
}

// GetPath is Get for a pre-parsed path.
func (t *PathTree) GetPath(keys path.Path, def any) any {
	v, _ := t.LookupPath(keys, def)
	return v
}

// HasPath is Has for a pre-parsed path.
func (t *PathTree) HasPath(keys path.Path) bool {
	_, ok := t.LookupPath(keys, nil)
	return ok
}

// SetPath is Set for a pre-parsed path.
//
// A mapping value written onto an existing mapping is merged into it key by
// key; scalars and sequences replace whatever was there.
func (t *PathTree) SetPath(keys path.Path, value any) *PathTree {
	value = merge.DeepCopy(value)
	if len(keys) == 0 {
		t.root = value
		return t
	}
	t.root = merge.Replace(merge.DeepCopy(t.root), buildTree(keys, value))
	return t
}

// DeletePath is Delete for a pre-parsed path.
func (t *PathTree) DeletePath(keys path.Path) *PathTree {
	if len(keys) == 0 {
		return t
	}
	t.root = remove(keys, merge.DeepCopy(t.root))
	return t
}

// Merge folds a mapping into the document, the way Set merges at a path.
// Values that are not mappings are ignored.
func (t *PathTree) Merge(value any) *PathTree {
	patch := merge.DeepCopy(value)
	if format.ToOrderedMapPtr(patch) == nil {
		return t
	}
	t.root = merge.Replace(merge.DeepCopy(t.root), patch)
	return t
}

// Value returns a deep copy of the whole document.
func (t *PathTree) Value() any {
	return merge.DeepCopy(t.root)
}

// Mapping returns a deep copy of the document as a mapping.
// A sequence root is keyed by index; a scalar root yields an empty mapping.
func (t *PathTree) Mapping() *orderedmap.OrderedMap {
	switch root := merge.DeepCopy(t.root).(type) {
	case *orderedmap.OrderedMap:
		return root
	case []any:
		return merge.SequenceToMapping(root)
	}
	return orderedmap.New()
}
