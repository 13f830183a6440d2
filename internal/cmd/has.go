package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) hasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has <file> <path>",
		Short: "Report whether a path holds a value",
		Long: `Print "true" and exit 0 when a non-null value is stored at the path,
otherwise print "false" and exit 1.`,
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

			found := doc.tree.HasPath(keys)
			fmt.Fprintln(a.stdout, found)
			if !found {
				return errNotFound
			}
			return nil
		},
	}
}
