package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thirteen37/arraypath/internal/ctxlog"
	jsonformat "github.com/thirteen37/arraypath/internal/format/json"
)

func (a *app) setCmd() *cobra.Command {
	var (
		w     writeFlags
		asStr bool
	)

	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Write a value at a path",
		Long: `Write a value at a path, creating intermediate mappings as needed.

VALUE is parsed as JSON and falls back to a plain string when it is not valid
JSON. A mapping written onto an existing mapping is merged into it.

Example:
  arraypath set -i settings.json server.port 8080
  arraypath set settings.json server.tags '["a", "b"]'
  arraypath set --string settings.json server.port 8080`,
		Args: cobra.ExactArgs(3),
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

			var value any = args[2]
			if !asStr {
				value = jsonformat.ParseValue(args[2])
			}
			doc.tree.SetPath(keys, value)
			ctxlog.FromContext(ctx).Debug("set value", "path", keys.String(), "type", typeName(value))

			return a.writeDocument(ctx, doc, w)
		},
	}
	w.register(cmd)
	cmd.Flags().BoolVar(&asStr, "string", false, "Store VALUE as a string without JSON parsing")
	return cmd
}
