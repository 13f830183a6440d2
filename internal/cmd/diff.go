package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderDiff writes a line diff of before and after to w.
// Unchanged output produces nothing.
func renderDiff(w io.Writer, before, after string, colorize bool) error {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	if colorize {
		added.EnableColor()
		removed.EnableColor()
	} else {
		added.DisableColor()
		removed.DisableColor()
	}

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			var err error
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				_, err = fmt.Fprintln(w, added.Sprint("+"+line))
			case diffmatchpatch.DiffDelete:
				_, err = fmt.Fprintln(w, removed.Sprint("-"+line))
			default:
				_, err = fmt.Fprintln(w, " "+line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// splitLines splits text into lines, dropping the final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
