// Package yaml provides a YAML format handler for arraypath.
package yaml

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/format"
)

// Handler implements format.Handler for YAML files.
type Handler struct{}

// New creates a new YAML handler.
func New() *Handler {
	return &Handler{}
}

// Name returns "yaml".
func (h *Handler) Name() string {
	return "yaml"
}

// Parse reads YAML bytes and returns the decoded document.
// Mappings decode to *orderedmap.OrderedMap in document order; non-string
// keys are stored in their %v form.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for YAML format")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return orderedmap.New(), nil
	}

	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return fromYAML(raw), nil
}

// fromYAML converts MapSlice values into ordered maps.
func fromYAML(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		result := orderedmap.New()
		for _, item := range val {
			result.Set(fmt.Sprint(item.Key), fromYAML(item.Value))
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = fromYAML(item)
		}
		return result
	default:
		return val
	}
}

// toYAML converts ordered maps into MapSlice values so the encoder keeps key order.
func toYAML(v any) any {
	if om := format.ToOrderedMapPtr(v); om != nil {
		result := make(yaml.MapSlice, 0, len(om.Keys()))
		for _, k := range om.Keys() {
			child, _ := om.Get(k)
			result = append(result, yaml.MapItem{Key: k, Value: toYAML(child)})
		}
		return result
	}
	if list, ok := v.([]any); ok {
		result := make([]any, len(list))
		for i, item := range list {
			result[i] = toYAML(item)
		}
		return result
	}
	return v
}

// Serialize writes the tree to YAML bytes.
// opts.Indent sets the indentation width (its length in characters).
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	indent := len(opts.Indent)
	if indent == 0 {
		indent = 2
	}

	data, err := yaml.MarshalWithOptions(toYAML(tree), yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize YAML: %w", err)
	}
	return data, nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
