// Package ini provides an INI format handler for arraypath.
package ini

import (
	"bytes"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/format"
	"gopkg.in/ini.v1"
)

// Handler implements format.Handler for INI files.
type Handler struct{}

// New creates a new INI handler.
func New() *Handler {
	return &Handler{}
}

// Name returns "ini".
func (h *Handler) Name() string {
	return "ini"
}

// Parse reads INI bytes and returns an *orderedmap.OrderedMap.
// Structure: {"global": "value", "section": {"key": "value"}}
// Keys before any section header sit at the top level next to the sections.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for INI format")
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI: %w", err)
	}

	result := orderedmap.New()

	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			for _, key := range section.Keys() {
				result.Set(key.Name(), key.Value())
			}
			continue
		}

		sectionMap := orderedmap.New()
		for _, key := range section.Keys() {
			sectionMap.Set(key.Name(), key.Value())
		}
		result.Set(section.Name(), sectionMap)
	}

	return result, nil
}

// Serialize writes the tree to formatted INI bytes.
// Top-level mappings become sections, top-level scalars global keys.
// Anything nested deeper is written in its %v form.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	om := format.ToOrderedMapPtr(tree)
	if om == nil {
		return nil, fmt.Errorf("tree is not an ordered map")
	}

	cfg := ini.Empty()

	for _, name := range om.Keys() {
		val, _ := om.Get(name)
		sectionMap := format.ToOrderedMapPtr(val)
		if sectionMap == nil {
			if val == nil {
				continue
			}
			if _, err := cfg.Section(ini.DefaultSection).NewKey(name, toString(val)); err != nil {
				return nil, fmt.Errorf("failed to create key %q: %w", name, err)
			}
			continue
		}

		section, err := cfg.NewSection(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create section %q: %w", name, err)
		}
		for _, keyName := range sectionMap.Keys() {
			keyVal, _ := sectionMap.Get(keyName)
			if keyVal == nil {
				continue
			}
			if _, err := section.NewKey(keyName, toString(keyVal)); err != nil {
				return nil, fmt.Errorf("failed to create key %q: %w", keyName, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize INI: %w", err)
	}

	return buf.Bytes(), nil
}

// toString converts any value to its string representation.
// INI files only support string values.
func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", format.ToPlain(v))
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
