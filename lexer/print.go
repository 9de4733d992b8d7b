package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// printWidths carries the column widths needed to align a token dump.
type printWidths struct {
	index    int
	kind     int
	line     int
	column   int
	indent   int
	spelling int
}

func (w *printWidths) widen(other printWidths) {
	w.index = max(w.index, other.index)
	w.kind = max(w.kind, other.kind)
	w.line = max(w.line, other.line)
	w.column = max(w.column, other.column)
	w.indent = max(w.indent, other.indent)
	w.spelling = max(w.spelling, other.spelling)
}

func decimalWidth(n int) int {
	return len(strconv.Itoa(n))
}

func (b *TokenizedBuffer) tokenPrintWidths(t Token) printWidths {
	line := b.TokenLine(t)
	return printWidths{
		index:  decimalWidth(len(b.tokens)),
		kind:   len(b.Kind(t).Name()),
		line:   decimalWidth(b.LineNumber(line)),
		column: decimalWidth(b.ColumnNumber(t)),
		indent: decimalWidth(b.IndentColumnNumber(line)),
		// Spellings can hold multi-byte runes (error tokens especially),
		// so measure display width rather than byte length.
		spelling: runewidth.StringWidth(b.Text(t)),
	}
}

// Print writes a human-readable, width-aligned rendering of every token.
func (b *TokenizedBuffer) Print(w io.Writer) error {
	if len(b.tokens) == 0 {
		return nil
	}

	widths := printWidths{index: decimalWidth(len(b.tokens))}
	for _, token := range b.Tokens() {
		widths.widen(b.tokenPrintWidths(token))
	}

	for _, token := range b.Tokens() {
		if err := b.printToken(w, token, widths); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// PrintToken writes a single token without cross-token alignment.
func (b *TokenizedBuffer) PrintToken(w io.Writer, t Token) error {
	return b.printToken(w, t, b.tokenPrintWidths(t))
}

func (b *TokenizedBuffer) printToken(w io.Writer, t Token, widths printWidths) error {
	widths.widen(b.tokenPrintWidths(t))

	info := &b.tokens[t.index]
	text := b.Text(t)

	_, err := fmt.Fprintf(w,
		"token: { index: %*d, kind: %*s, line: %*d, column: %*d, indent: %*d, spelling: '%s'%s",
		widths.index, t.Index(),
		widths.kind+2, "'"+info.kind.Name()+"'",
		widths.line, b.LineNumber(info.line),
		widths.column, b.ColumnNumber(t),
		widths.indent, b.IndentColumnNumber(info.line),
		text,
		spaces(widths.spelling-runewidth.StringWidth(text)),
	)
	if err != nil {
		return err
	}

	switch {
	case info.kind == KindIdentifier:
		_, err = fmt.Fprintf(w, ", identifier: %d", info.id.Index())
	case info.kind.IsOpeningSymbol():
		_, err = fmt.Fprintf(w, ", closing_token: %d", info.closingToken.Index())
	case info.kind.IsClosingSymbol():
		_, err = fmt.Fprintf(w, ", opening_token: %d", info.openingToken.Index())
	}
	if err != nil {
		return err
	}

	if info.isRecovery {
		if _, err := io.WriteString(w, ", recovery: true"); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, " }")
	return err
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
