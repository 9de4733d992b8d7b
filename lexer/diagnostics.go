package lexer

import (
	"fmt"

	"github.com/micalang/mica/diagnostic"
)

// Diagnostic categories, shared between related diagnostics.
const (
	CategoryBalancedDelimiters       = "syntax-balanced-delimiters"
	CategoryInvalidNumber            = "syntax-invalid-number"
	CategoryIrregularDigitSeparators = "syntax-irregular-digit-separators"
	CategoryUnrecognizedCharacters   = "syntax-unrecognized-characters"
)

func unmatchedClosing() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Category: CategoryBalancedDelimiters,
		Message:  "Closing symbol without a corresponding opening symbol.",
	}
}

func mismatchedClosing() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Category: CategoryBalancedDelimiters,
		Message:  "Closing symbol does not match most recent opening symbol.",
	}
}

func emptyDigitSequence() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Category: CategoryInvalidNumber,
		Message:  "Empty digit sequence in numeric literal.",
	}
}

func invalidDigit(digit byte, radix int) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Category: CategoryInvalidNumber,
		Message: fmt.Sprintf("Invalid digit '%c' in %s numeric literal.",
			digit, radixName(radix)),
	}
}

func invalidDigitSeparator() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Category: CategoryInvalidNumber,
		Message:  "Misplaced digit separator in numeric literal.",
	}
}

func irregularDigitSeparators(radix int) diagnostic.Diagnostic {
	group := "3"
	if radix == 16 {
		group = "4"
	}
	return diagnostic.Diagnostic{
		Category: CategoryIrregularDigitSeparators,
		Message: fmt.Sprintf("Digit separators in %s should appear every %s characters from the right.",
			radixName(radix), group),
	}
}

func unknownBaseSpecifier() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Category: CategoryInvalidNumber,
		Message:  "Unknown base specifier in numeric literal.",
	}
}

func unrecognizedCharacters() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Category: CategoryUnrecognizedCharacters,
		Message:  "Encountered unrecognized characters while parsing.",
	}
}

func radixName(radix int) string {
	switch radix {
	case 2:
		return "binary"
	case 16:
		return "hexadecimal"
	default:
		return "decimal"
	}
}
