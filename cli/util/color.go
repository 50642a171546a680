package util

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mgutz/ansi"
)

var (
	bold        = ansi.ColorFunc("default+b")
	errorMarker = color.New(color.FgRed, color.Bold)
)

// Bold makes the input string bold.
func Bold(s string) string {
	return bold(s)
}

// PrintErrorLine writes a single line prefixed with the error marker.
func PrintErrorLine(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", errorMarker.Sprint("[ERROR]"), msg)
}
