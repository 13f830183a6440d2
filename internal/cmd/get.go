package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	jsonformat "github.com/thirteen37/arraypath/internal/format/json"
)

func (a *app) getCmd() *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path",
		Long: `Print the value stored at a path.

Strings are printed as-is; other values are printed as JSON. When nothing is
stored at the path, the --default value is printed instead, or the command
exits with status 1 and no output.

Example:
  arraypath get settings.json servers.0.host
  arraypath get --json-path settings.json '["a.b", "c"]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			keys, err := a.parsePath(doc.tree, args[1])
			if err != nil {
				return err
			}

			v, ok := doc.tree.LookupPath(keys, nil)
			if !ok {
				if !cmd.Flags().Changed("default") {
					return errNotFound
				}
				v = jsonformat.ParseValue(def)
			}
			return printValue(a.stdout, v, a.cfg.Indent)
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "Value to print when the path is missing (JSON or raw string)")
	return cmd
}

// printValue writes strings raw and everything else as indented JSON.
func printValue(w io.Writer, v any, indent string) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
