// Package json provides a JSON format handler for arraypath.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/format"
)

// Handler implements format.Handler for JSON/JSONC files.
type Handler struct{}

// New creates a new JSON handler.
func New() *Handler {
	return &Handler{}
}

// Name returns "json".
func (h *Handler) Name() string {
	return "json"
}

// commentRegex matches single-line // comments.
var commentRegex = regexp.MustCompile(`(?m)^\s*//.*$|//[^"]*$`)

// StripComments removes single-line // comments from JSON.
// This allows parsing JSONC (JSON with comments) files.
func StripComments(data []byte) []byte {
	return commentRegex.ReplaceAll(data, nil)
}

// Parse reads JSON bytes and returns the decoded document.
// Objects decode to *orderedmap.OrderedMap so key order is preserved.
// Empty input decodes to an empty mapping.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		data = StripComments(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return orderedmap.New(), nil
	}

	result, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return result, nil
}

// decode decodes any JSON value, keeping object key order at every level.
func decode(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("unexpected end of JSON input")
	}

	switch trimmed[0] {
	case '{':
		om := orderedmap.New()
		if err := json.Unmarshal(trimmed, om); err != nil {
			return nil, err
		}
		return om, nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, err
		}
		result := make([]any, len(raw))
		for i, elem := range raw {
			v, err := decode(elem)
			if err != nil {
				return nil, err
			}
			result[i] = v
		}
		return result, nil
	default:
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// ParseValue interprets s as a JSON value, falling back to the raw string.
// A bare integer literal decodes to int64 so it stays an integer in formats
// that distinguish the two.
// Example: `8080` -> int64(8080), `{"a":1}` -> mapping, `hello` -> "hello".
func ParseValue(s string) any {
	v, err := decode([]byte(s))
	if err != nil {
		return s
	}
	if _, ok := v.(float64); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return n
		}
	}
	return v
}

// Serialize writes the tree to formatted JSON bytes.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}

	data, err := json.MarshalIndent(tree, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize JSON: %w", err)
	}
	// Add trailing newline
	return append(data, '\n'), nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
