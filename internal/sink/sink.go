// Package sink implements the CLI's single-line "query error" diagnostic
// (spec.md §6), colorized via github.com/fatih/color and disabled when
// stdout is not a terminal (github.com/mattn/go-isatty) or when NO_COLOR is
// set, per the convention that library documents.
package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// QueryError prints one colorized diagnostic line to w for a query parse
// error (spec.md §6: "a one-line diagnostic").
func QueryError(w io.Writer, err error) {
	label := "query error"
	if colorEnabled(w) {
		label = color.New(color.FgRed, color.Bold).Sprint(label)
	}
	fmt.Fprintf(w, "%s: %v\n", label, err)
}

func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
