// arraypath reads and edits nested configuration files by delimited path.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thirteen37/arraypath/internal/cmd"
	"github.com/thirteen37/arraypath/internal/ctxlog"
	"github.com/thirteen37/arraypath/internal/format"
	"github.com/thirteen37/arraypath/internal/format/registry"
	"github.com/thirteen37/arraypath/internal/merge"
	"github.com/thirteen37/arraypath/internal/script"
	"github.com/thirteen37/arraypath/internal/tree"
)

func main() {
	// Interpreter mode: argv[0] = interpreter, argv[1] = script path
	if len(os.Args) == 2 && isScript(os.Args[1]) {
		ctx := ctxlog.WithLogger(context.Background(), ctxlog.New(os.Stderr, os.Getenv("ARRAYPATH_DEBUG") != ""))
		if err := runAsInterpreter(ctx, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "arraypath: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cmd.Execute()
}

// isScript reports whether arg names an existing regular file.
func isScript(arg string) bool {
	info, err := os.Stat(arg)
	return err == nil && info.Mode().IsRegular()
}

// runAsInterpreter applies the script at scriptPath to the document on stdin
// and writes the result to stdout.
func runAsInterpreter(ctx context.Context, scriptPath string) error {
	// Read script content
	scriptContent, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	// Parse script
	scr, err := script.Parse(string(scriptContent))
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	// Read current document from stdin
	currentData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	// stdin has no file name, so auto falls back to JSON
	handler, err := registry.Resolve(scr.Format, "")
	if err != nil {
		return err
	}

	current, err := handler.Parse(currentData, format.ParseOptions{StripComments: scr.StripComments})
	if err != nil {
		return fmt.Errorf("failed to parse current document: %w", err)
	}
	if current != nil && !merge.IsContainer(current) {
		return fmt.Errorf("current document root is a %T, not a mapping or sequence", current)
	}
	ctxlog.FromContext(ctx).Debug("loaded document", "format", handler.Name(), "bytes", len(currentData))

	result := scr.Apply(ctx, tree.New(current, ""))

	// Serialize and output
	output, err := handler.Serialize(result.Value(), format.SerializeOptions{})
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	_, err = os.Stdout.Write(output)
	return err
}
