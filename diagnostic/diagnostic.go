// Package diagnostic defines the diagnostic values produced by the lexer and
// the emitter contract through which they leave it. The lexer reports every
// problem it finds and keeps going; policy for what to do with a buffer that
// has errors belongs to the caller.
package diagnostic

import "fmt"

// Diagnostic is a single reported problem, positioned in the source.
type Diagnostic struct {
	// Category is a short machine-readable kind string, shared between
	// related diagnostics (e.g. all numeric literal problems).
	Category string

	// Message is the formatted human-readable description.
	Message string

	Filename string
	Line     int // 1-based
	Column   int // 1-based
}

func (d Diagnostic) String() string {
	location := fmt.Sprintf("%s:%d:%d", d.Filename, d.Line, d.Column)
	if d.Filename == "" {
		location = fmt.Sprintf("%d:%d", d.Line, d.Column)
	}
	return fmt.Sprintf("%s: %s", location, d.Message)
}

// Emitter receives diagnostics from the lexer as they are detected.
// Emission is fire-and-forget; the lexer never inspects the result.
type Emitter interface {
	Emit(d Diagnostic)
}
