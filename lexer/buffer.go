// Package lexer converts source text into a TokenizedBuffer: a stream of
// typed tokens organized into lines, ready for a parser to consume.
//
// Lexing is a single pass that never aborts. Malformed input produces Error
// tokens and diagnostics, and bracket recovery keeps the token stream
// structurally well-formed (every opener matched, every byte accounted for)
// so downstream stages can walk it without crashing.
package lexer

import (
	"math/big"

	"github.com/micalang/mica/source"
)

// Token is a handle to one token in a TokenizedBuffer.
type Token struct {
	index int32
}

// Index returns the token's position in the buffer's token sequence.
func (t Token) Index() int {
	return int(t.index)
}

// Line is a handle to one physical source line in a TokenizedBuffer.
type Line struct {
	index int32
}

// Index returns the line's zero-based position in the buffer.
func (l Line) Index() int {
	return int(l.index)
}

// tokenInfo is the per-token record. Tokens are immutable once created
// except for the bracket links and the Error downgrade applied during
// recovery from unmatched closing symbols.
type tokenInfo struct {
	kind       TokenKind
	isRecovery bool
	line       Line
	column     int32

	// Kind-specific auxiliary data.
	literalIndex int32      // IntegerLiteral: index into the literal store
	errorLength  int32      // Error: byte length of the consumed span
	id           Identifier // Identifier: interned spelling handle
	openingToken Token      // closing symbols: the matched opener
	closingToken Token      // opening symbols: the matched closer
}

// lineInfo records one physical source line.
type lineInfo struct {
	start  int32 // byte offset of the line's first byte in the source
	length int32 // byte length, set when the newline (or EOF) is reached
	indent int32 // column of the first non-comment token, -1 until known
}

// TokenizedBuffer owns the result of lexing one source buffer: the token,
// line, and identifier tables, the integer literal store, and a global error
// flag. It grows append-only during the pass and is read-only afterwards,
// safe for unsynchronized concurrent reads.
type TokenizedBuffer struct {
	source *source.Buffer

	tokens   []tokenInfo
	lines    []lineInfo
	interner *Interner
	literals []*big.Int

	hasErrors bool
}

func newTokenizedBuffer(src *source.Buffer) *TokenizedBuffer {
	// Identifier volume scales roughly with source size.
	internerCap := src.Len() / 40
	if internerCap < 64 {
		internerCap = 64
	}
	return &TokenizedBuffer{
		source:   src,
		tokens:   make([]tokenInfo, 0, src.Len()/4+16),
		interner: NewInterner(internerCap),
	}
}

func (b *TokenizedBuffer) addToken(info tokenInfo) Token {
	b.tokens = append(b.tokens, info)
	return Token{index: int32(len(b.tokens) - 1)}
}

func (b *TokenizedBuffer) addLine(info lineInfo) Line {
	b.lines = append(b.lines, info)
	return Line{index: int32(len(b.lines) - 1)}
}

// Source returns the source buffer this buffer was lexed from.
func (b *TokenizedBuffer) Source() *source.Buffer {
	return b.source
}

// HasErrors reports whether any diagnostic was emitted during lexing.
func (b *TokenizedBuffer) HasErrors() bool {
	return b.hasErrors
}

// Len returns the number of tokens.
func (b *TokenizedBuffer) Len() int {
	return len(b.tokens)
}

// Tokens returns handles for every token in order.
func (b *TokenizedBuffer) Tokens() []Token {
	tokens := make([]Token, len(b.tokens))
	for i := range tokens {
		tokens[i] = Token{index: int32(i)}
	}
	return tokens
}

// LineCount returns the number of line records.
func (b *TokenizedBuffer) LineCount() int {
	return len(b.lines)
}

// Kind returns the token's kind.
func (b *TokenizedBuffer) Kind(t Token) TokenKind {
	return b.tokens[t.index].kind
}

// TokenLine returns the line a token sits on.
func (b *TokenizedBuffer) TokenLine(t Token) Line {
	return b.tokens[t.index].line
}

// LineNumber returns the 1-based line number for display.
func (b *TokenizedBuffer) LineNumber(l Line) int {
	return int(l.index) + 1
}

// ColumnNumber returns the token's 1-based column number for display.
func (b *TokenizedBuffer) ColumnNumber(t Token) int {
	return int(b.tokens[t.index].column) + 1
}

// IndentColumnNumber returns the 1-based column of the line's first token,
// or 0 if the line has no indent recorded.
func (b *TokenizedBuffer) IndentColumnNumber(l Line) int {
	return int(b.lines[l.index].indent) + 1
}

// Text returns the token's source spelling: the fixed spelling for symbols
// and keywords, the interned text for identifiers, and a re-sliced source
// span for literals, doc comments, and error tokens. Recovery tokens render
// as their kind's fixed spelling even though no source bytes back them.
func (b *TokenizedBuffer) Text(t Token) string {
	info := &b.tokens[t.index]
	if spelling := info.kind.FixedSpelling(); spelling != "" {
		return spelling
	}

	switch info.kind {
	case KindError:
		start := b.lines[info.line.index].start + info.column
		return string(b.source.Text()[start : start+info.errorLength])

	case KindDocComment:
		// Doc comments span from their column to the end of the line.
		line := b.lines[info.line.index]
		return string(b.source.Text()[line.start+info.column : line.start+line.length])

	case KindIntegerLiteral:
		// Re-derive from the source to preserve oddities like the radix
		// prefix or digit separators the author wrote.
		start := b.lines[info.line.index].start + info.column
		return string(takeLeadingIntegerLiteral(b.source.Text()[start:]))
	}

	if info.kind != KindIdentifier {
		panic("lexer: token kind has no spelling: " + info.kind.Name())
	}
	return b.interner.Text(info.id)
}

// Identifier returns the identifier handle of an Identifier token.
// It panics on any other kind; this is a programmer-error contract.
func (b *TokenizedBuffer) Identifier(t Token) Identifier {
	info := &b.tokens[t.index]
	if info.kind != KindIdentifier {
		panic("lexer: token is not an identifier: " + info.kind.Name())
	}
	return info.id
}

// IntegerLiteral returns the parsed arbitrary-precision value of an
// IntegerLiteral token. It panics on any other kind. The returned value
// must not be mutated.
func (b *TokenizedBuffer) IntegerLiteral(t Token) *big.Int {
	info := &b.tokens[t.index]
	if info.kind != KindIntegerLiteral {
		panic("lexer: token is not an integer literal: " + info.kind.Name())
	}
	return b.literals[info.literalIndex]
}

// MatchedClosingToken returns the closing token linked to an opening symbol.
// It panics if the token does not open a group.
func (b *TokenizedBuffer) MatchedClosingToken(opening Token) Token {
	info := &b.tokens[opening.index]
	if !info.kind.IsOpeningSymbol() {
		panic("lexer: token is not an opening symbol: " + info.kind.Name())
	}
	return info.closingToken
}

// MatchedOpeningToken returns the opening token linked to a closing symbol.
// It panics if the token does not close a group.
func (b *TokenizedBuffer) MatchedOpeningToken(closing Token) Token {
	info := &b.tokens[closing.index]
	if !info.kind.IsClosingSymbol() {
		panic("lexer: token is not a closing symbol: " + info.kind.Name())
	}
	return info.openingToken
}

// IsRecoveryToken reports whether the token was synthesized by bracket
// recovery rather than derived from source bytes.
func (b *TokenizedBuffer) IsRecoveryToken(t Token) bool {
	return b.tokens[t.index].isRecovery
}

// IdentifierText returns the spelling for an identifier handle.
func (b *TokenizedBuffer) IdentifierText(id Identifier) string {
	return b.interner.Text(id)
}

// IdentifierCount returns the number of distinct identifiers interned.
func (b *TokenizedBuffer) IdentifierCount() int {
	return b.interner.Len()
}
