package errors

import (
	"fmt"
	"strings"
)

// ANSI escape codes, used directly rather than through a color library —
// the terminal formatter is the one place in the ambient stack that stays
// on raw escapes; the CLI's own pretty-printer is the fatih/color consumer.
const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
)

// FormatTerminal renders a SyntaxError the way a compiler front end prints
// to stderr: a bold red header line, the source excerpt with a column
// caret, then expected/found detail.
func FormatTerminal(e *SyntaxError) string {
	var b strings.Builder

	file := e.Location.File
	if file == "" {
		file = "<source>"
	}
	fmt.Fprintf(&b, "%s%serror%s: %s\n", ansiBold, ansiRed, ansiReset, e.Message)
	fmt.Fprintf(&b, "  %s--> %s:%d:%d%s\n", ansiDim, file, e.Location.Line, e.Location.Column, ansiReset)

	if e.Excerpt != "" {
		fmt.Fprintf(&b, "   %s|%s\n", ansiDim, ansiReset)
		fmt.Fprintf(&b, "%3d%s|%s %s\n", e.Location.Line, ansiDim, ansiReset, e.Excerpt)
		caret := strings.Repeat(" ", caretWidth(e.Location.Column-1))
		fmt.Fprintf(&b, "   %s|%s %s%s^%s\n", ansiDim, ansiReset, caret, ansiRed, ansiReset)
	}

	if e.Expected != "" {
		fmt.Fprintf(&b, "  expected %s, found %s\n", e.Expected, e.Found)
	}

	return b.String()
}

// FormatCompact renders a one-line `file:line:col: message [code]` form.
func FormatCompact(e *SyntaxError) string {
	file := e.Location.File
	if file == "" {
		file = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d: %s [%s]", file, e.Location.Line, e.Location.Column, e.Message, e.Code)
}

func caretWidth(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
