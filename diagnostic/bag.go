package diagnostic

import (
	"io"

	"golang.org/x/exp/slices"
)

// Bag is an Emitter that collects diagnostics in emission order.
// Each lexed buffer owns its own bag; bags are not safe for concurrent use.
type Bag struct {
	diagnostics []Diagnostic
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{}
}

// Emit implements Emitter.
func (b *Bag) Emit(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
}

// Empty reports whether nothing was emitted.
func (b *Bag) Empty() bool {
	return len(b.diagnostics) == 0
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int {
	return len(b.diagnostics)
}

// Diagnostics returns the collected diagnostics in emission order.
func (b *Bag) Diagnostics() []Diagnostic {
	return b.diagnostics
}

// Categories returns the distinct categories seen, sorted.
func (b *Bag) Categories() []string {
	var categories []string
	for _, d := range b.diagnostics {
		if !slices.Contains(categories, d.Category) {
			categories = append(categories, d.Category)
		}
	}
	slices.Sort(categories)
	return categories
}

// WriteTo renders every collected diagnostic to w, one per line.
func (b *Bag) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, d := range b.diagnostics {
		n, err := io.WriteString(w, d.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
