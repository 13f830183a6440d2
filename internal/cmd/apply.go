package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thirteen37/arraypath/internal/ctxlog"
	"github.com/thirteen37/arraypath/internal/format/registry"
	"github.com/thirteen37/arraypath/internal/script"
)

func (a *app) applyCmd() *cobra.Command {
	var w writeFlags

	cmd := &cobra.Command{
		Use:   "apply <script> <file>",
		Short: "Run an edit script against a file",
		Long: `Run the operations of an edit script against a file.

A script starts with a version directive and lists one operation per line:

  version 1
  format json
  set server.port 8080
  delete server.legacy
  separator /
  set paths/a.b true

The script's format directive is used unless --format is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}
			scr, err := script.Parse(string(content))
			if err != nil {
				return fmt.Errorf("failed to parse script %s: %w", args[0], err)
			}

			name := a.cfg.Format
			if scr.Format != registry.Auto && !cmd.Flags().Changed("format") {
				name = scr.Format
			}
			doc, err := a.loadDocumentAs(ctx, args[1], name, a.cfg.StripComments || scr.StripComments)
			if err != nil {
				return err
			}

			scr.Apply(ctx, doc.tree)
			ctxlog.FromContext(ctx).Debug("applied script", "script", args[0], "ops", len(scr.Ops))

			return a.writeDocument(ctx, doc, w)
		},
	}
	w.register(cmd)
	return cmd
}
