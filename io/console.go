// Package combiio handles the terminal output of go-combiflag drivers:
// early-exit messages on stdout, error reports on stderr with color when
// the terminal supports it.
package combiio

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console writes driver output. Messages (help text, version lines) go to
// the out stream, error reports to the err stream in the error style.
type Console struct {
	out      io.Writer
	err      io.Writer
	errStyle *color.Color
}

// NewConsole creates a console on the process's standard streams. Color is
// handled by fatih/color, which disables itself on non-terminals and under
// NO_COLOR.
func NewConsole() *Console {
	return &Console{
		out:      os.Stdout,
		err:      os.Stderr,
		errStyle: color.New(color.FgRed),
	}
}

// NewConsoleWriters creates a console on custom streams, without color.
// Tests use this to capture output.
func NewConsoleWriters(out, err io.Writer) *Console {
	style := color.New(color.FgRed)
	style.DisableColor()
	return &Console{out: out, err: err, errStyle: style}
}

// Message writes one line to the output stream.
func (c *Console) Message(s string) {
	fmt.Fprintln(c.out, s)
}

// Messagef writes one formatted line to the output stream.
func (c *Console) Messagef(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Error writes one line to the error stream in the error style.
func (c *Console) Error(s string) {
	c.errStyle.Fprintln(c.err, s)
}

// Errorf writes one formatted line to the error stream in the error style.
func (c *Console) Errorf(format string, args ...any) {
	c.errStyle.Fprintf(c.err, format+"\n", args...)
}

// Out returns the output stream.
func (c *Console) Out() io.Writer { return c.out }

// Err returns the error stream.
func (c *Console) Err() io.Writer { return c.err }
