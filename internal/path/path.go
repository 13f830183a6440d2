// Package path parses delimited path strings into keys for navigating nested trees.
package path

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSeparator is used when no separator (or an empty one) is configured.
const DefaultSeparator = "."

// Key is a single classified path segment: an integer index when the segment
// is all decimal digits, a string name otherwise.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// NewKey classifies a raw segment.
// Example: "007" -> index 7, "a1" -> name "a1".
func NewKey(segment string) Key {
	if isDigits(segment) {
		if n, err := strconv.Atoi(segment); err == nil {
			return Key{index: n, isIndex: true}
		}
	}
	return Key{name: segment}
}

// NameKey returns a string key without classifying it, so "007" stays "007".
func NameKey(name string) Key {
	return Key{name: name}
}

// IndexKey returns an integer key.
func IndexKey(i int) Key {
	return Key{index: i, isIndex: true}
}

// IsIndex reports whether the key is an integer key.
func (k Key) IsIndex() bool {
	return k.isIndex
}

// Index returns the integer value of an index key, or -1 for a string key.
func (k Key) Index() int {
	if !k.isIndex {
		return -1
	}
	return k.index
}

// String returns the canonical form used as a mapping key.
// Index keys render without leading zeros, so "00" and "0" share a key.
func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// Path is an ordered sequence of keys. An empty Path addresses the whole tree.
type Path []Key

// Parse splits s on separator and classifies each non-empty segment.
// Leading, trailing and repeated separators collapse. There is no escaping:
// a segment can never contain the separator.
func Parse(s, separator string) Path {
	if separator == "" {
		separator = DefaultSeparator
	}
	var keys Path
	for _, segment := range strings.Split(s, separator) {
		if segment == "" {
			continue
		}
		keys = append(keys, NewKey(segment))
	}
	return keys
}

// ParseArrayPath parses a JSON array into a Path.
// Example input: `["servers", "eu.west", 0]`
// Strings become name keys verbatim and only JSON numbers become index keys,
// so a literal key such as "007" stays addressable.
func ParseArrayPath(s string) (Path, error) {
	var raw []any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("invalid path array: %w", err)
	}

	keys := make(Path, 0, len(raw))
	for i, elem := range raw {
		switch v := elem.(type) {
		case string:
			if v == "" {
				continue
			}
			keys = append(keys, NameKey(v))
		case float64:
			if v < 0 || v != math.Trunc(v) || v >= math.MaxInt {
				return nil, fmt.Errorf("invalid path array: element %d: %v is not a valid index", i, v)
			}
			keys = append(keys, IndexKey(int(v)))
		default:
			return nil, fmt.Errorf("invalid path array: element %d has type %T", i, elem)
		}
	}
	return keys, nil
}

// Segments returns the canonical string of each key.
func (p Path) Segments() []string {
	segments := make([]string, len(p))
	for i, k := range p {
		segments[i] = k.String()
	}
	return segments
}

// Join renders the path with the given separator.
func (p Path) Join(separator string) string {
	if separator == "" {
		separator = DefaultSeparator
	}
	return strings.Join(p.Segments(), separator)
}

// String renders the path with DefaultSeparator.
func (p Path) String() string {
	return p.Join(DefaultSeparator)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
