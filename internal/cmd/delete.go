package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thirteen37/arraypath/internal/ctxlog"
)

func (a *app) deleteCmd() *cobra.Command {
	var w writeFlags

	cmd := &cobra.Command{
		Use:     "delete <file> <path>",
		Aliases: []string{"rm"},
		Short:   "Remove the value at a path",
		Long: `Remove the value at a path. Missing paths are ignored.

Removing the last element of a sequence shortens it; removing any other
element turns the sequence into a mapping keyed by the remaining indices.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := a.loadDocument(ctx, args[0])
			if err != nil {
				return err
			}
			keys, err := a.parsePath(doc.tree, args[1])
			if err != nil {
				return err
			}

			existed := doc.tree.HasPath(keys)
			doc.tree.DeletePath(keys)
			ctxlog.FromContext(ctx).Debug("deleted path", "path", keys.String(), "existed", existed)

			return a.writeDocument(ctx, doc, w)
		},
	}
	w.register(cmd)
	return cmd
}
