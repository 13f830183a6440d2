package tree

import (
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/merge"
	"github.com/thirteen37/arraypath/internal/path"
)

// resolve walks node by keys. It reports false as soon as a key is missing
// or a scalar blocks further descent; it never fails.
func resolve(keys path.Path, node any) (any, bool) {
	if len(keys) == 0 {
		return node, true
	}

	child, ok := lookup(node, keys[0])
	if !ok {
		return nil, false
	}
	if len(keys) == 1 {
		return child, true
	}
	return resolve(keys[1:], child)
}

// lookup returns the direct child of node at k.
// Mappings are keyed by the canonical key string; sequences answer keys in
// canonical index form within bounds.
func lookup(node any, k path.Key) (any, bool) {
	switch n := node.(type) {
	case *orderedmap.OrderedMap:
		return n.Get(k.String())
	case []any:
		idx, ok := merge.SequenceIndex(k.String())
		if !ok || idx >= len(n) {
			return nil, false
		}
		return n[idx], true
	}
	return nil, false
}
