package diagnostic

import (
	"fmt"
	"io"

	"github.com/micalang/mica/output"
)

// WriterEmitter streams diagnostics to a writer as they are emitted,
// optionally styled for a terminal.
type WriterEmitter struct {
	w      io.Writer
	styles *output.Styles
}

// NewWriterEmitter creates an emitter that writes one line per diagnostic.
// A nil styles renders plain text.
func NewWriterEmitter(w io.Writer, styles *output.Styles) *WriterEmitter {
	return &WriterEmitter{w: w, styles: styles}
}

// Emit implements Emitter.
func (e *WriterEmitter) Emit(d Diagnostic) {
	location := fmt.Sprintf("%s:%d:%d", d.Filename, d.Line, d.Column)
	if d.Filename == "" {
		location = fmt.Sprintf("%d:%d", d.Line, d.Column)
	}

	if e.styles == nil {
		_, _ = fmt.Fprintf(e.w, "%s: %s [%s]\n", location, d.Message, d.Category)
		return
	}

	_, _ = fmt.Fprintf(e.w, "%s: %s %s%s%s\n",
		e.styles.Location(location),
		d.Message,
		e.styles.Dim("["),
		e.styles.Category(d.Category),
		e.styles.Dim("]"),
	)
}
