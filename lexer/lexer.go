package lexer

import (
	"bytes"
	"math"
	"math/big"

	"github.com/micalang/mica/diagnostic"
	"github.com/micalang/mica/source"
)

// Lex scans the entire source buffer in a single pass and returns the
// tokenized result. Diagnostics for malformed input go to the emitter; the
// pass itself never fails and always runs to completion.
func Lex(src *source.Buffer, emitter diagnostic.Emitter) *TokenizedBuffer {
	buffer := newTokenizedBuffer(src)
	l := &lexer{
		buffer:  buffer,
		emitter: emitter,
		text:    src.Text(),
	}
	l.line = buffer.addLine(lineInfo{start: 0, indent: -1})

	for l.skipWhitespace() {
		// Try each recognizer in fixed priority order. The error
		// recognizer always consumes at least one byte, so the loop
		// makes progress on any input.
		if l.lexSymbol() {
			continue
		}
		if l.lexKeywordOrIdentifier() {
			continue
		}
		if l.lexIntegerLiteral() {
			continue
		}
		l.lexError()
	}

	// Anything still open at end of input gets closed with recovery tokens.
	l.closeInvalidOpenGroups(KindError)
	return buffer
}

// lexer is the single-pass state machine. One instance processes exactly one
// source buffer start to finish; nothing is shared across buffers.
type lexer struct {
	buffer  *TokenizedBuffer
	emitter diagnostic.Emitter

	text []byte
	pos  int

	line      Line
	column    int
	setIndent bool

	openGroups []Token
}

// emit reports a diagnostic at the given zero-based column on the current
// line and marks the buffer as erroneous. Every diagnostic sets the flag, so
// HasErrors holds exactly when something was emitted.
func (l *lexer) emit(column int, d diagnostic.Diagnostic) {
	d.Filename = l.buffer.source.Filename()
	d.Line = l.buffer.LineNumber(l.line)
	d.Column = column + 1
	l.buffer.hasErrors = true
	l.emitter.Emit(d)
}

// skipWhitespace advances over spaces, tabs, newlines, and comments. It
// returns true when stopped at a non-whitespace byte and false when the
// source is exhausted. Line records are finalized and created here.
func (l *lexer) skipWhitespace() bool {
	for l.pos < len(l.text) {
		// Commenting is line-oriented and comments lex as-if whitespace.
		// A comment must be the first non-whitespace content on its line,
		// which is exactly when the indent has not been recorded yet.
		if !l.setIndent && bytes.HasPrefix(l.text[l.pos:], []byte("//")) {
			// Three slashes introduce a documentation comment, which is
			// preserved as a token spanning the rest of the line. All
			// other comments produce nothing.
			if bytes.HasPrefix(l.text[l.pos:], []byte("///")) {
				l.buffer.lines[l.line.index].indent = int32(l.column)
				l.setIndent = true
				l.buffer.addToken(tokenInfo{
					kind:   KindDocComment,
					line:   l.line,
					column: int32(l.column),
				})
			}
			for l.pos < len(l.text) && l.text[l.pos] != '\n' {
				l.column++
				l.pos++
			}
			if l.pos >= len(l.text) {
				break
			}
		}

		switch l.text[l.pos] {
		default:
			// A non-whitespace byte: hand control back to the recognizers.
			return true

		case '\n':
			l.buffer.lines[l.line.index].length = int32(l.column)
			l.pos++
			// A trailing newline ends the pass without an empty line.
			if l.pos >= len(l.text) {
				return false
			}
			start := l.buffer.lines[l.line.index].start + int32(l.column) + 1
			l.line = l.buffer.addLine(lineInfo{start: start, indent: -1})
			l.column = 0
			l.setIndent = false

		case ' ', '\t':
			l.column++
			l.pos++
		}
	}

	// End of input also ends the current line.
	l.buffer.lines[l.line.index].length = int32(l.column)
	return false
}

// recordIndent records the current line's indent once, at the start column
// of the first token on the line.
func (l *lexer) recordIndent(column int) {
	if !l.setIndent {
		l.buffer.lines[l.line.index].indent = int32(column)
		l.setIndent = true
	}
}

// lexSymbol recognizes fixed-spelling symbols in registry order, first match
// wins. Opening symbols push onto the group stack; closing symbols run
// bracket recovery and link to their opener, or downgrade to an error token
// when nothing is open.
func (l *lexer) lexSymbol() bool {
	kind := KindError
	for _, candidate := range symbolKinds {
		if bytes.HasPrefix(l.text[l.pos:], []byte(candidate.FixedSpelling())) {
			kind = candidate
			break
		}
	}
	if kind == KindError {
		return false
	}

	l.recordIndent(l.column)

	// Any groups this closer cannot close must be closed first.
	l.closeInvalidOpenGroups(kind)

	token := l.buffer.addToken(tokenInfo{
		kind:   kind,
		line:   l.line,
		column: int32(l.column),
	})
	spelling := kind.FixedSpelling()
	column := l.column
	l.column += len(spelling)
	l.pos += len(spelling)

	if kind.IsOpeningSymbol() {
		l.openGroups = append(l.openGroups, token)
		return true
	}
	if !kind.IsClosingSymbol() {
		return true
	}

	closingInfo := &l.buffer.tokens[token.index]

	// A closer with nothing open is consumed as an error token.
	if len(l.openGroups) == 0 {
		closingInfo.kind = KindError
		closingInfo.errorLength = int32(len(spelling))
		l.emit(column, unmatchedClosing())
		return true
	}

	opening := l.openGroups[len(l.openGroups)-1]
	l.openGroups = l.openGroups[:len(l.openGroups)-1]
	l.buffer.tokens[opening.index].closingToken = token
	closingInfo.openingToken = opening
	return true
}

// closeInvalidOpenGroups closes every open group that cannot stay open
// across the symbol kind. Passing KindError closes all open groups. Each
// popped opener gets a synthetic zero-length closing token marked as
// recovery, so every opener ends the pass matched.
func (l *lexer) closeInvalidOpenGroups(kind TokenKind) {
	if !kind.IsClosingSymbol() && kind != KindError {
		return
	}

	for len(l.openGroups) > 0 {
		opening := l.openGroups[len(l.openGroups)-1]
		openingKind := l.buffer.tokens[opening.index].kind
		if kind == openingKind.ClosingSymbol() {
			return
		}

		l.openGroups = l.openGroups[:len(l.openGroups)-1]
		l.emit(l.column, mismatchedClosing())

		closing := l.buffer.addToken(tokenInfo{
			kind:       openingKind.ClosingSymbol(),
			isRecovery: true,
			line:       l.line,
			column:     int32(l.column),
		})
		l.buffer.tokens[opening.index].closingToken = closing
		l.buffer.tokens[closing.index].openingToken = opening
	}
}

// lexKeywordOrIdentifier recognizes a maximal run of letters, digits, and
// underscores starting with a letter or underscore, then resolves it against
// the keyword table or interns it as an identifier.
func (l *lexer) lexKeywordOrIdentifier() bool {
	c := l.text[l.pos]
	if !isAlpha(c) && c != '_' {
		return false
	}

	l.recordIndent(l.column)

	run := takeWordRun(l.text[l.pos:])
	column := l.column
	l.column += len(run)
	l.pos += len(run)

	if kind, ok := keywordKinds[string(run)]; ok {
		l.buffer.addToken(tokenInfo{
			kind:   kind,
			line:   l.line,
			column: int32(column),
		})
		return true
	}

	l.buffer.addToken(tokenInfo{
		kind:   KindIdentifier,
		line:   l.line,
		column: int32(column),
		id:     l.buffer.interner.Intern(run),
	})
	return true
}

// lexIntegerLiteral recognizes integer literals. The leading run is greedy
// over all alphanumerics and underscores so that a malformed literal like
// 0x1g becomes one diagnosable span instead of several confusing tokens.
func (l *lexer) lexIntegerLiteral() bool {
	run := takeLeadingIntegerLiteral(l.text[l.pos:])
	if len(run) == 0 {
		return false
	}

	column := l.column
	l.column += len(run)
	l.pos += len(run)
	l.recordIndent(column)

	// On any validation failure a single error token covers the whole run,
	// preserving the offending spelling for diagnostics.
	errorToken := func() bool {
		l.buffer.addToken(tokenInfo{
			kind:        KindError,
			line:        l.line,
			column:      int32(column),
			errorLength: int32(len(run)),
		})
		return true
	}

	radix := 10
	digits := run
	if len(run) >= 2 && run[0] == '0' {
		switch run[1] {
		case 'x':
			radix = 16
			digits = run[2:]
		case 'b':
			radix = 2
			digits = run[2:]
		default:
			l.emit(column, unknownBaseSpecifier())
			return errorToken()
		}
	}

	result := l.checkDigitSequence(digits, radix, column)
	if !result.ok {
		return errorToken()
	}

	cleaned := digits
	if result.hasSeparators {
		cleaned = bytes.ReplaceAll(digits, []byte("_"), nil)
	}
	value := new(big.Int)
	if _, ok := value.SetString(string(cleaned), radix); !ok {
		panic("lexer: validated digit sequence failed to parse")
	}

	token := l.buffer.addToken(tokenInfo{
		kind:   KindIntegerLiteral,
		line:   l.line,
		column: int32(column),
	})
	l.buffer.tokens[token.index].literalIndex = int32(len(l.buffer.literals))
	l.buffer.literals = append(l.buffer.literals, value)
	return true
}

// lexError is the fallback recognizer. It consumes a maximal run of bytes
// that cannot start any other token and emits a single error token for it.
func (l *lexer) lexError() {
	length := 0
	for l.pos+length < len(l.text) {
		c := l.text[l.pos+length]
		if isAlnum(c) || c == '_' || c == '\t' || c == '\n' {
			break
		}
		if symbolStartBytes[c] && l.symbolAt(l.pos+length) {
			break
		}
		length++
	}
	// Guarantee forward progress even if the next byte should have been
	// recognized by an earlier recognizer.
	if length == 0 {
		length = 1
	}
	if length > math.MaxInt32 {
		length = math.MaxInt32
	}

	l.buffer.addToken(tokenInfo{
		kind:        KindError,
		line:        l.line,
		column:      int32(l.column),
		errorLength: int32(length),
	})
	l.emit(l.column, unrecognizedCharacters())

	l.column += length
	l.pos += length
}

// symbolAt reports whether a registered symbol spelling starts at offset.
func (l *lexer) symbolAt(offset int) bool {
	for _, kind := range symbolKinds {
		if bytes.HasPrefix(l.text[offset:], []byte(kind.FixedSpelling())) {
			return true
		}
	}
	return false
}

// takeLeadingIntegerLiteral returns the greedy integer-literal run at the
// start of text, or nil if text does not start with a decimal digit.
func takeLeadingIntegerLiteral(text []byte) []byte {
	if len(text) == 0 || !isDigit(text[0]) {
		return nil
	}
	return takeWordRun(text)
}

// takeWordRun returns the maximal leading run of letters, digits, and
// underscores.
func takeWordRun(text []byte) []byte {
	i := 0
	for i < len(text) && (isAlnum(text[i]) || text[i] == '_') {
		i++
	}
	return text[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
