// Package source provides the immutable source text buffer consumed by the
// lexer. A Buffer owns the complete text of one compilation unit with stable
// byte offsets; downstream stages retain slices of it rather than copies.
package source

import (
	"fmt"
	"os"
)

// Buffer holds the complete source text of a single file.
// The text is never mutated after construction.
type Buffer struct {
	filename string
	text     []byte
}

// FromBytes creates a buffer around text already in memory.
// The buffer takes ownership of the slice; callers must not mutate it.
func FromBytes(filename string, text []byte) *Buffer {
	return &Buffer{filename: filename, text: text}
}

// FromString creates a buffer around a string, mainly useful in tests.
func FromString(text string) *Buffer {
	return &Buffer{filename: "<string>", text: []byte(text)}
}

// FromFile reads the named file into a new buffer.
func FromFile(filename string) (*Buffer, error) {
	text, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return &Buffer{filename: filename, text: text}, nil
}

// Filename returns the name the buffer was loaded from.
func (b *Buffer) Filename() string {
	return b.filename
}

// Text returns the source text. The returned slice must not be mutated.
func (b *Buffer) Text() []byte {
	return b.text
}

// Len returns the source length in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}
