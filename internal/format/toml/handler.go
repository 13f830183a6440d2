// Package toml provides a TOML format handler for arraypath.
package toml

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/format"
)

// Handler implements format.Handler for TOML files.
type Handler struct{}

// New creates a new TOML handler.
func New() *Handler {
	return &Handler{}
}

// Name returns "toml".
func (h *Handler) Name() string {
	return "toml"
}

// Parse reads TOML bytes and returns an *orderedmap.OrderedMap.
// Key order from the original TOML document is preserved.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for TOML format")
	}

	// Decode into a generic map to get values
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	// Convert to ordered map using metadata for key order
	return convertWithMeta(raw, meta, nil), nil
}

// convertWithMeta recursively converts map[string]any to *orderedmap.OrderedMap
// using TOML metadata to preserve key order.
func convertWithMeta(v any, meta toml.MetaData, prefix []string) any {
	switch val := v.(type) {
	case map[string]any:
		result := orderedmap.New()
		for _, k := range keysInOrder(meta, prefix, val) {
			childPrefix := append(slices.Clone(prefix), k)
			result.Set(k, convertWithMeta(val[k], meta, childPrefix))
		}
		return result
	case []map[string]any:
		// Array of tables share the table's key prefix in metadata
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertWithMeta(item, meta, prefix)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertWithMeta(item, meta, prefix)
		}
		return result
	default:
		return val
	}
}

// keysInOrder returns map keys in document order using TOML metadata.
func keysInOrder(meta toml.MetaData, prefix []string, m map[string]any) []string {
	var ordered []string
	for _, key := range meta.Keys() {
		if len(key) != len(prefix)+1 || !slices.Equal([]string(key[:len(prefix)]), prefix) {
			continue
		}
		k := key[len(prefix)]
		if _, ok := m[k]; ok && !slices.Contains(ordered, k) {
			ordered = append(ordered, k)
		}
	}

	// Keys without metadata (inline tables inside arrays) follow in sorted order
	var rest []string
	for k := range m {
		if !slices.Contains(ordered, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(ordered, rest...)
}

// Serialize writes the tree to TOML bytes.
// The encoder sorts keys, so document order is not kept on output.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	regular, ok := dropNils(format.ToPlain(tree)).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to serialize TOML: document is %T, not a table", tree)
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if opts.Indent != "" {
		encoder.Indent = opts.Indent
	}
	if err := encoder.Encode(regular); err != nil {
		return nil, fmt.Errorf("failed to serialize TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// dropNils removes nil entries, which TOML has no way to represent.
func dropNils(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if child == nil {
				delete(val, k)
				continue
			}
			val[k] = dropNils(child)
		}
		return val
	case []any:
		result := val[:0]
		for _, child := range val {
			if child != nil {
				result = append(result, dropNils(child))
			}
		}
		return result
	default:
		return val
	}
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
