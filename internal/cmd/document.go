package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thirteen37/arraypath/internal/ctxlog"
	"github.com/thirteen37/arraypath/internal/format"
	"github.com/thirteen37/arraypath/internal/format/registry"
	"github.com/thirteen37/arraypath/internal/merge"
	"github.com/thirteen37/arraypath/internal/path"
	"github.com/thirteen37/arraypath/internal/tree"
)

// stdinName is the FILE argument that reads from stdin.
const stdinName = "-"

// document is a loaded input file together with its tree.
type document struct {
	name    string
	handler format.Handler
	raw     []byte
	tree    *tree.PathTree
	// loaded is the tree as parsed, used to detect edits that change nothing.
	loaded any
}

// writeFlags are shared by the commands that modify a document.
type writeFlags struct {
	inPlace bool
	diff    bool
}

func (w *writeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&w.inPlace, "in-place", "i", false, "Rewrite FILE instead of printing the result")
	cmd.Flags().BoolVar(&w.diff, "diff", false, "Print a diff of the change instead of the result")
	cmd.MarkFlagsMutuallyExclusive("in-place", "diff")
}

// readInput returns the contents of name, or of stdin when name is "-".
func (a *app) readInput(name string) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// loadDocument reads and parses name with the configured format.
func (a *app) loadDocument(ctx context.Context, name string) (*document, error) {
	return a.loadDocumentAs(ctx, name, a.cfg.Format, a.cfg.StripComments)
}

func (a *app) loadDocumentAs(ctx context.Context, name, formatName string, stripComments bool) (*document, error) {
	data, err := a.readInput(name)
	if err != nil {
		return nil, err
	}

	handler, err := registry.Resolve(formatName, name)
	if err != nil {
		return nil, err
	}

	parsed, err := handler.Parse(data, format.ParseOptions{StripComments: stripComments})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := checkRoot(parsed); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	ctxlog.FromContext(ctx).Debug("loaded document", "file", name, "format", handler.Name(), "bytes", len(data))
	t := tree.New(parsed, a.cfg.Separator)
	return &document{
		name:    name,
		handler: handler,
		raw:     data,
		tree:    t,
		loaded:  t.Value(),
	}, nil
}

// checkRoot rejects documents that a PathTree cannot hold, such as a bare
// JSON scalar, instead of silently replacing them with an empty mapping.
func checkRoot(parsed any) error {
	if parsed == nil || merge.IsContainer(parsed) {
		return nil
	}
	return fmt.Errorf("document root is a %s, not a mapping or sequence", typeName(parsed))
}

// parsePath splits a PATH argument with the tree's separator, or as a JSON
// array when --json-path is set.
func (a *app) parsePath(t *tree.PathTree, raw string) (path.Path, error) {
	if !a.jsonPath {
		return t.Parse(raw), nil
	}
	p, err := path.ParseArrayPath(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", raw, err)
	}
	return p, nil
}

// writeDocument serializes the document's tree to stdout, back to its file,
// or as a diff against the original input.
func (a *app) writeDocument(ctx context.Context, doc *document, w writeFlags) error {
	out, err := doc.handler.Serialize(doc.tree.Value(), format.SerializeOptions{Indent: a.cfg.Indent})
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	switch {
	case w.diff:
		return renderDiff(a.stdout, string(doc.raw), string(out), a.colorize(a.stdout))
	case w.inPlace:
		if doc.name == stdinName {
			return fmt.Errorf("--in-place cannot be used with stdin")
		}
		if doc.unchanged(out, a.cfg.Indent) {
			ctxlog.FromContext(ctx).Debug("document unchanged, not writing", "file", doc.name)
			return nil
		}
		perm := os.FileMode(0o644)
		if info, err := os.Stat(doc.name); err == nil {
			perm = info.Mode().Perm()
		}
		if err := os.WriteFile(doc.name, out, perm); err != nil {
			return fmt.Errorf("failed to write %s: %w", doc.name, err)
		}
		ctxlog.FromContext(ctx).Debug("wrote document", "file", doc.name, "bytes", len(out))
		return nil
	default:
		_, err = a.stdout.Write(out)
		return err
	}
}

// unchanged reports whether out serializes the same tree that was loaded.
func (d *document) unchanged(out []byte, indent string) bool {
	before, err := d.handler.Serialize(d.loaded, format.SerializeOptions{Indent: indent})
	return err == nil && bytes.Equal(before, out)
}
