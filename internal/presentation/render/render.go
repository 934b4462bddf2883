package render

import (
	"errors"
	"io"

	"github.com/penwyp/go-history-monitor/internal/util"
)

// ErrNoData is returned when a chart is asked to render an empty bucket
// mapping. Callers skip the affected report instead of failing the run.
var ErrNoData = errors.New("no data to report")

// Renderer draws usage charts to a writer.
type Renderer struct {
	out     io.Writer
	palette Palette
	size    func() (int, int)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette swaps the calendar intensity palette.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithTerminalSize overrides terminal size detection.
func WithTerminalSize(size func() (int, int)) Option {
	return func(r *Renderer) {
		r.size = size
	}
}

// New creates a Renderer writing to out, using the default palette and
// live terminal size detection unless overridden.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:     out,
		palette: DefaultPalette,
		size:    util.TerminalSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
