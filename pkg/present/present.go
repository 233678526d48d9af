// Package present prints the presentation summary, the per-notebook insight
// report and the slide templates.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/capstone/pkg/project"
	"github.com/fatih/color"
)

const bannerWidth = 60

// Option configures a Writer.
type Option func(*Writer)

// WithColor enables or disables colored headings. Colors are also dropped
// when stdout is not a terminal.
func WithColor(enabled bool) Option {
	return func(w *Writer) {
		if !enabled {
			w.heading.DisableColor()
			w.warn.DisableColor()
		}
	}
}

// Writer prints presentation material to an output stream.
// The first write error is kept and returned by every later call.
type Writer struct {
	out     io.Writer
	facts   *project.Facts
	heading *color.Color
	warn    *color.Color
	err     error
}

// NewWriter returns a Writer printing facts to out.
func NewWriter(out io.Writer, facts *project.Facts, opts ...Option) *Writer {
	w := &Writer{
		out:     out,
		facts:   facts,
		heading: color.New(color.Bold),
		warn:    color.New(color.FgYellow),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) println(s string) {
	w.printf("%s\n", s)
}

func (w *Writer) styled(c *color.Color, s string) {
	if w.err != nil {
		return
	}
	_, w.err = c.Fprintln(w.out, s)
}

func (w *Writer) banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	w.println(rule)
	w.styled(w.heading, title)
	w.println(rule)
}

func (w *Writer) section(title string) {
	w.println("")
	w.styled(w.heading, title)
}

func (w *Writer) numbered(items []string) {
	for i, item := range items {
		w.printf("%d. %s\n", i+1, item)
	}
}
