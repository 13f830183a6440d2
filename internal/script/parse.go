// Package script provides parsing and execution of arraypath edit scripts.
//
// A script is a version directive, optional header directives and a list of
// operations, one per line:
//
//	#!/usr/bin/env arraypath
//	version 1
//	format json
//	set server.port 8080
//	separator /
//	delete server/legacy
package script

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/thirteen37/arraypath/internal/format/json"
)

// CurrentVersion is the latest supported script format version.
const CurrentVersion = 1

// OpKind identifies an edit operation.
type OpKind int

const (
	// OpSet writes a value at a path.
	OpSet OpKind = iota
	// OpDelete removes a path.
	OpDelete
	// OpReset empties the document.
	OpReset
	// OpSeparator changes the separator for the operations that follow.
	OpSeparator
	// OpMerge folds a mapping into the document root.
	OpMerge
)

// String returns the directive name of the operation.
func (k OpKind) String() string {
	switch k {
	case OpSet:
		return "set"
	case OpDelete:
		return "delete"
	case OpReset:
		return "reset"
	case OpSeparator:
		return "separator"
	case OpMerge:
		return "merge"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is a single edit operation.
type Op struct {
	Kind OpKind
	Line int
	// Path is the raw path for set/delete, or the new separator.
	Path  string
	Value any
}

// Script represents a parsed edit script.
type Script struct {
	Version       int
	Format        string
	StripComments bool
	Ops           []Op
}

// Parse parses an edit script from its content.
func Parse(content string) (*Script, error) {
	script := &Script{
		Format: "auto", // default to auto-detection
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0
	versionSeen := false

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip shebang
		if lineNum == 1 && strings.HasPrefix(line, "#!") {
			continue
		}

		// Skip blank lines and comments
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		directive, value := splitWord(trimmed)

		if directive != "version" && !versionSeen {
			return nil, fmt.Errorf("line %d: version directive must come first", lineNum)
		}

		switch directive {
		case "version":
			if versionSeen {
				return nil, fmt.Errorf("line %d: duplicate version directive", lineNum)
			}
			var v int
			if _, err := fmt.Sscanf(value, "%d", &v); err != nil {
				return nil, fmt.Errorf("line %d: invalid version %q", lineNum, value)
			}
			if v > CurrentVersion {
				return nil, fmt.Errorf("line %d: unsupported version %d (max supported: %d), please upgrade arraypath", lineNum, v, CurrentVersion)
			}
			if v < 1 {
				return nil, fmt.Errorf("line %d: invalid version %d", lineNum, v)
			}
			script.Version = v
			versionSeen = true

		case "format":
			if value == "" {
				return nil, fmt.Errorf("line %d: format requires a name", lineNum)
			}
			script.Format = value

		case "strip-comments":
			switch value {
			case "true":
				script.StripComments = true
			case "false":
				script.StripComments = false
			default:
				return nil, fmt.Errorf("line %d: strip-comments must be true or false", lineNum)
			}

		case "set":
			p, raw := splitWord(value)
			if p == "" || raw == "" {
				return nil, fmt.Errorf("line %d: set requires a path and a value", lineNum)
			}
			script.Ops = append(script.Ops, Op{Kind: OpSet, Line: lineNum, Path: p, Value: json.ParseValue(raw)})

		case "delete":
			if value == "" || strings.ContainsAny(value, " \t") {
				return nil, fmt.Errorf("line %d: delete requires exactly one path", lineNum)
			}
			script.Ops = append(script.Ops, Op{Kind: OpDelete, Line: lineNum, Path: value})

		case "reset":
			if value != "" {
				return nil, fmt.Errorf("line %d: reset takes no arguments", lineNum)
			}
			script.Ops = append(script.Ops, Op{Kind: OpReset, Line: lineNum})

		case "separator":
			if value == "" || strings.ContainsAny(value, " \t") {
				return nil, fmt.Errorf("line %d: separator requires a single non-blank token", lineNum)
			}
			script.Ops = append(script.Ops, Op{Kind: OpSeparator, Line: lineNum, Path: value})

		case "merge":
			if value == "" {
				return nil, fmt.Errorf("line %d: merge requires a value", lineNum)
			}
			script.Ops = append(script.Ops, Op{Kind: OpMerge, Line: lineNum, Value: json.ParseValue(value)})

		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", lineNum, directive)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}

	if !versionSeen {
		return nil, fmt.Errorf("missing required version directive")
	}

	return script, nil
}

// splitWord splits s at the first run of blanks.
func splitWord(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
