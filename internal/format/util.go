package format

import "github.com/iancoleman/orderedmap"

// ToOrderedMapPtr converts both value and pointer types of OrderedMap to a pointer.
// Returns nil if the value is not an OrderedMap.
func ToOrderedMapPtr(v any) *orderedmap.OrderedMap {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return val
	case orderedmap.OrderedMap:
		return &val
	default:
		return nil
	}
}

// ToPlain recursively converts ordered maps to map[string]any.
// Key order is lost; encoders that sort keys (TOML) or tests comparing
// structure use this form.
func ToPlain(v any) any {
	if om := ToOrderedMapPtr(v); om != nil {
		result := make(map[string]any, len(om.Keys()))
		for _, k := range om.Keys() {
			child, _ := om.Get(k)
			result[k] = ToPlain(child)
		}
		return result
	}
	if list, ok := v.([]any); ok {
		result := make([]any, len(list))
		for i, child := range list {
			result[i] = ToPlain(child)
		}
		return result
	}
	return v
}
