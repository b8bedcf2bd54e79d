// Package output writes the launcher's human-readable console messages.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"
)

type palette struct {
	cyan, red, dim, reset string
}

var ansi = palette{
	cyan:  "\033[36m",
	red:   "\033[31m",
	dim:   "\033[2m",
	reset: "\033[0m",
}

// Color support is decided per stream: either one may be redirected.
var (
	stdoutColors = ansi
	stderrColors = ansi
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		stdoutColors = palette{}
	}
	if !supportscolor.Stderr().SupportsColor {
		stderrColors = palette{}
	}
}

// colorsFor returns the palette for w. Only the process's own stdout and
// stderr are ever colored.
func colorsFor(w io.Writer) palette {
	switch w {
	case io.Writer(os.Stdout):
		return stdoutColors
	case io.Writer(os.Stderr):
		return stderrColors
	}
	return palette{}
}

// Statusf writes a progress line.
func Statusf(w io.Writer, format string, args ...interface{}) {
	c := colorsFor(w)
	writeLine(w, c.cyan, c.reset, fmt.Sprintf(format, args...))
}

// Errorf writes a failure line.
func Errorf(w io.Writer, format string, args ...interface{}) {
	c := colorsFor(w)
	writeLine(w, c.red, c.reset, fmt.Sprintf(format, args...))
}

// Hintf writes a suggestion following a failure.
func Hintf(w io.Writer, format string, args ...interface{}) {
	c := colorsFor(w)
	writeLine(w, c.dim, c.reset, fmt.Sprintf(format, args...))
}

func writeLine(w io.Writer, color, reset, msg string) {
	if color == "" {
		_, _ = fmt.Fprintln(w, msg)
		return
	}
	_, _ = fmt.Fprintf(w, "%s%s%s\n", color, msg, reset)
}
