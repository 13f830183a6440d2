package tree

import (
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/merge"
	"github.com/thirteen37/arraypath/internal/path"
)

// buildTree wraps value in one single-key mapping per key, innermost first.
// Example: [a, 0, b], "x" -> {a: {"0": {b: "x"}}}
func buildTree(keys path.Path, value any) any {
	node := value
	for i := len(keys) - 1; i >= 0; i-- {
		m := orderedmap.New()
		m.Set(keys[i].String(), node)
		node = m
	}
	return node
}

// remove deletes the entry at keys from node and returns the pruned node.
// A missing key or a scalar in the way leaves node as it was.
func remove(keys path.Path, node any) any {
	if len(keys) == 0 {
		return node
	}
	k, rest := keys[0], keys[1:]

	switch n := node.(type) {
	case *orderedmap.OrderedMap:
		child, ok := n.Get(k.String())
		if !ok {
			return n
		}
		if len(rest) == 0 {
			n.Delete(k.String())
		} else if merge.IsContainer(child) {
			n.Set(k.String(), remove(rest, child))
		}
		return n

	case []any:
		idx, ok := merge.SequenceIndex(k.String())
		if !ok || idx >= len(n) {
			return n
		}
		if len(rest) > 0 {
			if merge.IsContainer(n[idx]) {
				n[idx] = remove(rest, n[idx])
			}
			return n
		}
		// Removing the last element truncates. Otherwise survivors keep
		// their index as a mapping key.
		if idx == len(n)-1 {
			return n[:idx]
		}
		m := merge.SequenceToMapping(n)
		m.Delete(k.String())
		return m
	}
	return node
}
