// Package format provides interfaces and implementations for reading and writing
// configuration documents as nested trees.
package format

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	StripComments bool // Strip comments (for JSON/JSONC)
}

// SerializeOptions configures serialization behavior.
type SerializeOptions struct {
	Indent string // Indentation string (e.g., "  " or "\t")
}

// Handler defines the interface for configuration file format handlers.
//
// Parse returns a tree built from *orderedmap.OrderedMap and []any so key
// order survives a round trip. Serialize accepts the same shapes.
type Handler interface {
	// Name returns the format name used in scripts and flags.
	Name() string

	// Parse reads raw bytes and returns a generic tree structure.
	Parse(data []byte, opts ParseOptions) (any, error)

	// Serialize writes the tree back to bytes.
	Serialize(tree any, opts SerializeOptions) ([]byte, error)
}
