package lexer

// Digit sequence validation for integer literals. The radix is 2, 10, or 16;
// hexadecimal digits are upper-case. Underscores are digit separators and are
// subject to placement rules: never at either end, never doubled, and for
// decimal and hexadecimal they must group digits in threes or fours counted
// from the right.

type digitSequenceResult struct {
	ok            bool
	hasSeparators bool
}

// checkDigitSequence validates the digit span of an integer literal and
// reports every problem it finds. A false result means no literal token
// should be produced; separator problems alone do not reject the literal.
func (l *lexer) checkDigitSequence(text []byte, radix int, column int) digitSequenceResult {
	if len(text) == 0 {
		l.emit(column, emptyDigitSequence())
		return digitSequenceResult{ok: false}
	}

	separators := 0
	for i, c := range text {
		if validDigit(c, radix) {
			continue
		}

		if c == '_' {
			// A separator cannot start or end the sequence or sit next
			// to another separator. Flag it but keep going.
			if i == 0 || text[i-1] == '_' || i+1 == len(text) {
				l.emit(column, invalidDigitSeparator())
			}
			separators++
			continue
		}

		l.emit(column, invalidDigit(c, radix))
		return digitSequenceResult{ok: false}
	}

	if separators > 0 && radix != 2 {
		l.checkDigitSeparatorPlacement(text, radix, separators, column)
	}

	return digitSequenceResult{ok: true, hasSeparators: separators > 0}
}

// checkDigitSeparatorPlacement verifies that separators occur at exactly the
// expected positions: every 4th character from the right in decimal (groups
// of 3 digits) and every 5th in hexadecimal (groups of 4 digits). Any
// deviation is reported once.
func (l *lexer) checkDigitSeparatorPlacement(text []byte, radix, separators, column int) {
	stride := 4
	if radix == 16 {
		stride = 5
	}

	remaining := separators
	for pos := len(text); pos >= stride; {
		pos -= stride
		if text[pos] != '_' {
			l.emit(column, irregularDigitSeparators(radix))
			return
		}
		remaining--
	}

	// Any separator not accounted for sits at an unexpected position.
	if remaining != 0 {
		l.emit(column, irregularDigitSeparators(radix))
	}
}

func validDigit(c byte, radix int) bool {
	switch radix {
	case 2:
		return c == '0' || c == '1'
	case 16:
		return isDigit(c) || (c >= 'A' && c <= 'F')
	default:
		return isDigit(c)
	}
}
