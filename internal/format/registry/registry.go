// Package registry maps format names and file extensions to handlers.
package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thirteen37/arraypath/internal/format"
	"github.com/thirteen37/arraypath/internal/format/ini"
	"github.com/thirteen37/arraypath/internal/format/json"
	"github.com/thirteen37/arraypath/internal/format/toml"
	"github.com/thirteen37/arraypath/internal/format/yaml"
)

// Auto selects the handler from the file extension.
const Auto = "auto"

// Names lists the supported format names.
func Names() []string {
	return []string{"json", "yaml", "toml", "ini"}
}

// ForName returns the handler for a format name.
func ForName(name string) (format.Handler, error) {
	switch strings.ToLower(name) {
	case "json", "jsonc":
		return json.New(), nil
	case "yaml", "yml":
		return yaml.New(), nil
	case "toml":
		return toml.New(), nil
	case "ini":
		return ini.New(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
}

// Detect picks a handler by file extension, defaulting to JSON.
func Detect(filename string) format.Handler {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yaml.New()
	case ".toml":
		return toml.New()
	case ".ini", ".cfg", ".conf":
		return ini.New()
	default:
		return json.New()
	}
}

// Resolve returns the handler for name, or detects it from filename when
// name is empty or Auto.
func Resolve(name, filename string) (format.Handler, error) {
	if name == "" || name == Auto {
		return Detect(filename), nil
	}
	return ForName(name)
}
