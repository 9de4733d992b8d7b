// Package mica exposes the lexical front end of the Mica language toolchain.
package mica

import (
	"github.com/micalang/mica/diagnostic"
	"github.com/micalang/mica/lexer"
	"github.com/micalang/mica/source"
)

// Lex tokenizes a source buffer, collecting diagnostics into a fresh bag.
// The returned buffer is always structurally well-formed; check HasErrors
// (or the bag) to decide whether to proceed past this stage.
func Lex(src *source.Buffer) (*lexer.TokenizedBuffer, *diagnostic.Bag) {
	bag := diagnostic.NewBag()
	return lexer.Lex(src, bag), bag
}
