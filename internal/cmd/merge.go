package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirteen37/arraypath/internal/ctxlog"
	"github.com/thirteen37/arraypath/internal/format"
)

func (a *app) mergeCmd() *cobra.Command {
	var (
		w             writeFlags
		overlayFormat string
	)

	cmd := &cobra.Command{
		Use:   "merge <file> <overlay>",
		Short: "Merge an overlay document into a file",
		Long: `Merge the top-level mapping of OVERLAY into FILE.

Mappings are merged key by key; scalars and sequences from OVERLAY replace
the values in FILE. The two documents may use different formats.

Example:
  arraypath merge -i settings.json overrides.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if args[0] == stdinName && args[1] == stdinName {
				return fmt.Errorf("file and overlay cannot both be read from stdin")
			}

			doc, err := a.loadDocument(ctx, args[0])
			if err != nil {
				return err
			}

			name := a.cfg.Format
			if overlayFormat != "" {
				name = overlayFormat
			}
			overlay, err := a.loadDocumentAs(ctx, args[1], name, a.cfg.StripComments)
			if err != nil {
				return fmt.Errorf("failed to load overlay: %w", err)
			}

			patch := overlay.tree.Mapping()
			doc.tree.Merge(patch)
			ctxlog.FromContext(ctx).Debug("merged overlay", "file", args[1], "keys", len(patch.Keys()))

			return a.writeDocument(ctx, doc, w)
		},
	}
	w.register(cmd)
	cmd.Flags().StringVar(&overlayFormat, "overlay-format", "", "Format of OVERLAY (default: same as --format)")
	return cmd
}

// typeName names the shape of a value for log output.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "sequence"
	case string:
		return "string"
	}
	if format.ToOrderedMapPtr(v) != nil {
		return "mapping"
	}
	return fmt.Sprintf("%T", v)
}
