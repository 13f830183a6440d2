// Package cmd provides the CLI commands for arraypath.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thirteen37/arraypath/internal/config"
	"github.com/thirteen37/arraypath/internal/ctxlog"
)

// errNotFound makes the process exit with status 1 without printing anything.
var errNotFound = errors.New("not found")

// app holds the state of one CLI invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg *config.Config

	configFile    string
	separator     string
	format        string
	jsonPath      bool
	stripComments bool
	verbose       bool
	color         string
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arraypath",
		Short: "Read and edit nested configuration files by path",
		Long: `arraypath reads and edits JSON, YAML, TOML and INI documents using
delimited paths such as "servers.0.port".

Integer segments address both mapping keys and sequence positions. Writing
past the end of a sequence appends; writing a mapping merges it into an
existing one.

It can also run edit scripts, either with "arraypath apply" or as a shebang
interpreter:

  #!/usr/bin/env arraypath
  version 1
  set server.port 8080`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Path to config file (default "+config.DefaultFile+")")
	flags.StringVarP(&a.separator, "separator", "s", "", "Path separator (default \".\")")
	flags.StringVarP(&a.format, "format", "f", "", "Document format: auto, json, yaml, toml, ini")
	flags.BoolVar(&a.jsonPath, "json-path", false, "Treat PATH as a JSON array of keys")
	flags.BoolVar(&a.stripComments, "strip-comments", false, "Strip // comments from JSON input")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")
	flags.StringVar(&a.color, "color", "", "Colorize output: auto, always, never")

	rootCmd.AddCommand(
		a.getCmd(),
		a.hasCmd(),
		a.setCmd(),
		a.deleteCmd(),
		a.mergeCmd(),
		a.applyCmd(),
	)
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	return rootCmd
}

// setup loads the config file, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.configFile != "" {
		a.cfg, err = config.Load(a.configFile)
	} else {
		a.cfg, err = config.LoadOrDefault(config.DefaultFile)
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		a.cfg.Separator = a.separator
	}
	if flags.Changed("format") {
		a.cfg.Format = a.format
	}
	if flags.Changed("strip-comments") {
		a.cfg.StripComments = a.stripComments
	}
	if flags.Changed("color") {
		a.cfg.Color = a.color
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger := ctxlog.New(a.stderr, a.verbose)
	if a.configFile != "" {
		logger.Debug("loaded config", "file", a.configFile)
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return nil
}

// colorize reports whether output to w should carry color codes.
func (a *app) colorize(w io.Writer) bool {
	mode := config.ColorAuto
	if a.cfg != nil && a.cfg.Color != "" {
		mode = a.cfg.Color
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printError writes err to stderr behind an "arraypath:" prefix.
func (a *app) printError(err error) {
	prefix := color.New(color.FgRed, color.Bold)
	if a.colorize(a.stderr) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	fmt.Fprintf(a.stderr, "%s %v\n", prefix.Sprint("arraypath:"), err)
}

// run executes the command line in args and returns the exit status.
func (a *app) run(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errNotFound) {
			a.printError(err)
		}
		return 1
	}
	return 0
}

// Execute runs the root command.
func Execute() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if code := a.run(context.Background(), os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}
