package lexer

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/micalang/mica/diagnostic"
	"github.com/micalang/mica/source"
)

func lexString(t *testing.T, input string) (*TokenizedBuffer, *diagnostic.Bag) {
	t.Helper()
	bag := diagnostic.NewBag()
	buffer := Lex(source.FromString(input), bag)
	return buffer, bag
}

func kinds(buffer *TokenizedBuffer) []TokenKind {
	var kinds []TokenKind
	for _, t := range buffer.Tokens() {
		kinds = append(kinds, buffer.Kind(t))
	}
	return kinds
}

func TestLexEmpty(t *testing.T) {
	buffer, bag := lexString(t, "")

	assert.Equal(t, 0, buffer.Len())
	assert.Equal(t, 1, buffer.LineCount())
	assert.False(t, buffer.HasErrors())
	assert.True(t, bag.Empty())
}

func TestLexSymbols(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"+", []TokenKind{KindPlus}},
		{"- -", []TokenKind{KindMinus, KindMinus}},
		{"->", []TokenKind{KindArrow}},
		{"=>", []TokenKind{KindFatArrow}},
		{"==", []TokenKind{KindEqualEqual}},
		{"=", []TokenKind{KindEqual}},
		{"!=", []TokenKind{KindNotEqual}},
		{"!", []TokenKind{KindNot}},
		{"<=", []TokenKind{KindLessEqual}},
		{">=", []TokenKind{KindGreaterEqual}},
		{"< >", []TokenKind{KindLess, KindGreater}},
		{"* / %", []TokenKind{KindStar, KindSlash, KindPercent}},
		{"& | ^ ~", []TokenKind{KindAmp, KindPipe, KindCaret, KindTilde}},
		{", . ; :", []TokenKind{KindComma, KindPeriod, KindSemi, KindColon}},
		{"()", []TokenKind{KindOpenParen, KindCloseParen}},
		{"[]", []TokenKind{KindOpenSquareBracket, KindCloseSquareBracket}},
		{"{}", []TokenKind{KindOpenCurlyBrace, KindCloseCurlyBrace}},
		// Longest-prefix ordering: no truncation into shorter operators.
		{"===", []TokenKind{KindEqualEqual, KindEqual}},
		{"->>", []TokenKind{KindArrow, KindGreater}},
		{"<==", []TokenKind{KindLessEqual, KindEqual}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			buffer, _ := lexString(t, tt.input)
			assert.Equal(t, tt.want, kinds(buffer))
			assert.False(t, buffer.HasErrors())
		})
	}
}

func TestLexKeywords(t *testing.T) {
	tests := map[string]TokenKind{
		"and":      KindAndKeyword,
		"break":    KindBreakKeyword,
		"continue": KindContinueKeyword,
		"else":     KindElseKeyword,
		"false":    KindFalseKeyword,
		"fn":       KindFnKeyword,
		"for":      KindForKeyword,
		"if":       KindIfKeyword,
		"let":      KindLetKeyword,
		"not":      KindNotKeyword,
		"or":       KindOrKeyword,
		"return":   KindReturnKeyword,
		"struct":   KindStructKeyword,
		"true":     KindTrueKeyword,
		"var":      KindVarKeyword,
		"while":    KindWhileKeyword,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			buffer, _ := lexString(t, input)

			if buffer.Len() != 1 {
				t.Fatalf("got %d tokens, want 1", buffer.Len())
			}
			token := buffer.Tokens()[0]
			if buffer.Kind(token) != want {
				t.Errorf("got kind %s, want %s", buffer.Kind(token), want)
			}
			if buffer.Text(token) != input {
				t.Errorf("got text %q, want %q", buffer.Text(token), input)
			}
		})
	}
}

func TestLexIdentifiers(t *testing.T) {
	tests := []string{"x", "_x", "x1", "fnord", "iffy", "snake_case", "_", "__1"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			buffer, _ := lexString(t, input)

			if buffer.Len() != 1 {
				t.Fatalf("got %d tokens, want 1", buffer.Len())
			}
			token := buffer.Tokens()[0]
			if buffer.Kind(token) != KindIdentifier {
				t.Errorf("got kind %s, want Identifier", buffer.Kind(token))
			}
			if buffer.Text(token) != input {
				t.Errorf("got text %q, want %q", buffer.Text(token), input)
			}
		})
	}
}

func TestIdentifierInterning(t *testing.T) {
	buffer, _ := lexString(t, "alpha beta alpha alpha beta")

	tokens := buffer.Tokens()
	assert.Equal(t, 5, len(tokens))
	assert.Equal(t, 2, buffer.IdentifierCount())

	alpha := buffer.Identifier(tokens[0])
	beta := buffer.Identifier(tokens[1])
	assert.NotEqual(t, alpha, beta)
	assert.Equal(t, alpha, buffer.Identifier(tokens[2]))
	assert.Equal(t, alpha, buffer.Identifier(tokens[3]))
	assert.Equal(t, beta, buffer.Identifier(tokens[4]))

	assert.Equal(t, "alpha", buffer.IdentifierText(alpha))
	assert.Equal(t, "beta", buffer.IdentifierText(beta))
}

func TestBasicExpression(t *testing.T) {
	buffer, _ := lexString(t, "x + 1\n")

	assert.False(t, buffer.HasErrors())
	assert.Equal(t, []TokenKind{KindIdentifier, KindPlus, KindIntegerLiteral}, kinds(buffer))
	assert.Equal(t, 1, buffer.LineCount())

	tokens := buffer.Tokens()
	prevColumn := 0
	for i, token := range tokens {
		if got := buffer.LineNumber(buffer.TokenLine(token)); got != 1 {
			t.Errorf("token %d: got line %d, want 1", i, got)
		}
		if got := buffer.ColumnNumber(token); got <= prevColumn {
			t.Errorf("token %d: column %d not increasing past %d", i, got, prevColumn)
		} else {
			prevColumn = got
		}
	}

	value := buffer.IntegerLiteral(tokens[2])
	assert.Equal(t, int64(1), value.Int64())
}

func TestLineAndColumnTracking(t *testing.T) {
	buffer, _ := lexString(t, "fn main\n\tvar x\n  y\n")

	tokens := buffer.Tokens()
	assert.Equal(t, 5, len(tokens))
	assert.Equal(t, 3, buffer.LineCount())

	// fn at 1:1, main at 1:4.
	assert.Equal(t, 1, buffer.LineNumber(buffer.TokenLine(tokens[0])))
	assert.Equal(t, 1, buffer.ColumnNumber(tokens[0]))
	assert.Equal(t, 4, buffer.ColumnNumber(tokens[1]))

	// A tab advances the column by one.
	assert.Equal(t, 2, buffer.LineNumber(buffer.TokenLine(tokens[2])))
	assert.Equal(t, 2, buffer.ColumnNumber(tokens[2]))

	assert.Equal(t, 3, buffer.LineNumber(buffer.TokenLine(tokens[4])))
	assert.Equal(t, 3, buffer.ColumnNumber(tokens[4]))
}

func TestLineIndent(t *testing.T) {
	buffer, _ := lexString(t, "  x\nno_indent\n\n")

	tokens := buffer.Tokens()
	assert.Equal(t, 3, buffer.IndentColumnNumber(buffer.TokenLine(tokens[0])))
	assert.Equal(t, 1, buffer.IndentColumnNumber(buffer.TokenLine(tokens[1])))

	// A line with no tokens never records an indent.
	assert.Equal(t, 3, buffer.LineCount())
}

func TestTrailingNewlineOpensNoLine(t *testing.T) {
	buffer, _ := lexString(t, "x\n")
	assert.Equal(t, 1, buffer.LineCount())

	buffer, _ = lexString(t, "x\ny\n")
	assert.Equal(t, 2, buffer.LineCount())
}

func TestComments(t *testing.T) {
	t.Run("WholeLineComment", func(t *testing.T) {
		buffer, _ := lexString(t, "// just a comment\nx\n")
		assert.Equal(t, []TokenKind{KindIdentifier}, kinds(buffer))
		assert.False(t, buffer.HasErrors())
	})

	t.Run("IndentedComment", func(t *testing.T) {
		buffer, _ := lexString(t, "   // indented comment\n")
		assert.Equal(t, 0, buffer.Len())
	})

	t.Run("CommentAfterTokenIsNotAComment", func(t *testing.T) {
		// Once indent is recorded, slashes lex as symbols.
		buffer, _ := lexString(t, "x // y\n")
		assert.Equal(t, []TokenKind{KindIdentifier, KindSlash, KindSlash, KindIdentifier}, kinds(buffer))
	})

	t.Run("CommentDoesNotRecordIndent", func(t *testing.T) {
		buffer, _ := lexString(t, "  // comment\n")
		line := Line{index: 0}
		assert.Equal(t, 0, buffer.IndentColumnNumber(line))
	})
}

func TestDocComments(t *testing.T) {
	buffer, _ := lexString(t, "/// Returns the answer.\nfn answer\n")

	tokens := buffer.Tokens()
	assert.Equal(t, []TokenKind{KindDocComment, KindFnKeyword, KindIdentifier}, kinds(buffer))

	doc := tokens[0]
	assert.Equal(t, "/// Returns the answer.", buffer.Text(doc))
	assert.Equal(t, 1, buffer.LineNumber(buffer.TokenLine(doc)))
	assert.Equal(t, 1, buffer.ColumnNumber(doc))
	// Doc comments record the line indent.
	assert.Equal(t, 1, buffer.IndentColumnNumber(buffer.TokenLine(doc)))
	assert.False(t, buffer.HasErrors())
}

func TestDocCommentIndented(t *testing.T) {
	buffer, _ := lexString(t, "  /// doc\n")

	tokens := buffer.Tokens()
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, "/// doc", buffer.Text(tokens[0]))
	assert.Equal(t, 3, buffer.ColumnNumber(tokens[0]))
	assert.Equal(t, 3, buffer.IndentColumnNumber(buffer.TokenLine(tokens[0])))
}

func TestDocCommentAtEndOfInput(t *testing.T) {
	buffer, _ := lexString(t, "/// no newline")

	tokens := buffer.Tokens()
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, "/// no newline", buffer.Text(tokens[0]))
}

func TestMatchedBrackets(t *testing.T) {
	buffer, _ := lexString(t, "([{}])")

	assert.False(t, buffer.HasErrors())
	tokens := buffer.Tokens()

	pairs := [][2]int{{0, 5}, {1, 4}, {2, 3}}
	for _, pair := range pairs {
		opening, closing := tokens[pair[0]], tokens[pair[1]]
		if got := buffer.MatchedClosingToken(opening); got != closing {
			t.Errorf("opener %d: got closer %d, want %d", pair[0], got.Index(), pair[1])
		}
		if got := buffer.MatchedOpeningToken(closing); got != opening {
			t.Errorf("closer %d: got opener %d, want %d", pair[1], got.Index(), pair[0])
		}
	}
}

func TestUnmatchedClosing(t *testing.T) {
	buffer, bag := lexString(t, ")")

	assert.True(t, buffer.HasErrors())
	tokens := buffer.Tokens()
	assert.Equal(t, 1, len(tokens))
	// The closer is consumed but downgraded to an error token.
	assert.Equal(t, KindError, buffer.Kind(tokens[0]))
	assert.Equal(t, ")", buffer.Text(tokens[0]))

	diags := bag.Diagnostics()
	assert.Equal(t, 1, len(diags))
	assert.Equal(t, CategoryBalancedDelimiters, diags[0].Category)
}

func TestMismatchedClosing(t *testing.T) {
	buffer, bag := lexString(t, "(]")

	assert.True(t, buffer.HasErrors())
	tokens := buffer.Tokens()
	assert.Equal(t, 3, len(tokens))

	// The opener is closed by a synthesized recovery token.
	assert.Equal(t, KindOpenParen, buffer.Kind(tokens[0]))
	assert.Equal(t, KindCloseParen, buffer.Kind(tokens[1]))
	assert.True(t, buffer.IsRecoveryToken(tokens[1]))
	assert.Equal(t, tokens[1], buffer.MatchedClosingToken(tokens[0]))
	assert.Equal(t, tokens[0], buffer.MatchedOpeningToken(tokens[1]))

	// The square bracket itself ends up unmatched.
	assert.Equal(t, KindError, buffer.Kind(tokens[2]))
	assert.Equal(t, "]", buffer.Text(tokens[2]))

	diags := bag.Diagnostics()
	assert.Equal(t, 2, len(diags))
	assert.Equal(t, "Closing symbol does not match most recent opening symbol.", diags[0].Message)
	assert.Equal(t, "Closing symbol without a corresponding opening symbol.", diags[1].Message)
}

func TestUnclosedAtEndOfInput(t *testing.T) {
	buffer, bag := lexString(t, "({")

	assert.True(t, buffer.HasErrors())
	tokens := buffer.Tokens()
	assert.Equal(t, 4, len(tokens))

	// Innermost group closes first.
	assert.Equal(t, KindCloseCurlyBrace, buffer.Kind(tokens[2]))
	assert.Equal(t, KindCloseParen, buffer.Kind(tokens[3]))
	assert.True(t, buffer.IsRecoveryToken(tokens[2]))
	assert.True(t, buffer.IsRecoveryToken(tokens[3]))
	assert.Equal(t, tokens[2], buffer.MatchedClosingToken(tokens[1]))
	assert.Equal(t, tokens[3], buffer.MatchedClosingToken(tokens[0]))

	assert.Equal(t, 2, bag.Len())
}

func TestCrossingBrackets(t *testing.T) {
	buffer, _ := lexString(t, "([)]")

	tokens := buffer.Tokens()
	assert.Equal(t, 5, len(tokens))
	assert.Equal(t, []TokenKind{
		KindOpenParen,
		KindOpenSquareBracket,
		KindCloseSquareBracket, // recovery for the open square bracket
		KindCloseParen,
		KindError, // the source square bracket, unmatched by then
	}, kinds(buffer))

	assert.True(t, buffer.IsRecoveryToken(tokens[2]))
	assert.Equal(t, tokens[2], buffer.MatchedClosingToken(tokens[1]))
	assert.Equal(t, tokens[0], buffer.MatchedOpeningToken(tokens[3]))
}

func TestUnrecognizedCharacters(t *testing.T) {
	buffer, bag := lexString(t, "§")

	assert.True(t, buffer.HasErrors())
	tokens := buffer.Tokens()
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, KindError, buffer.Kind(tokens[0]))
	assert.Equal(t, "§", buffer.Text(tokens[0]))

	diags := bag.Diagnostics()
	assert.Equal(t, 1, len(diags))
	assert.Equal(t, CategoryUnrecognizedCharacters, diags[0].Category)
}

func TestUnrecognizedRunIsMaximal(t *testing.T) {
	// The run extends over everything that cannot start another token,
	// spaces included, and stops before the identifier.
	buffer, bag := lexString(t, "§ ¶x")

	tokens := buffer.Tokens()
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, KindError, buffer.Kind(tokens[0]))
	assert.Equal(t, "§ ¶", buffer.Text(tokens[0]))
	assert.Equal(t, KindIdentifier, buffer.Kind(tokens[1]))
	assert.Equal(t, 1, bag.Len())
}

func TestErrorRunStopsAtSymbol(t *testing.T) {
	buffer, _ := lexString(t, "§+")

	assert.Equal(t, []TokenKind{KindError, KindPlus}, kinds(buffer))
}

func TestDeterminism(t *testing.T) {
	input := "fn f(a, b)\n  /// doc\n  return 0x1_0000 + a§]\n"

	var first, second bytes.Buffer
	bufferA, bagA := lexString(t, input)
	bufferB, bagB := lexString(t, input)
	assert.NoError(t, bufferA.Print(&first))
	assert.NoError(t, bufferB.Print(&second))

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, bagA.Diagnostics(), bagB.Diagnostics())
}

// TestSourceCoverage checks that every non-recovery token's spelling is
// exactly the source bytes at its position, with no overlaps, and that no
// byte is consumed twice.
func TestSourceCoverage(t *testing.T) {
	inputs := []string{
		"x + 1\n",
		"fn f(a) { return a * 0b1010 }\n",
		"(]",
		"0x1g 1__0 §§ // trailing\n",
		"/// doc\n\t \tweird  \n",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			buffer, _ := lexString(t, input)
			src := []byte(input)
			covered := make([]bool, len(src))

			for _, token := range buffer.Tokens() {
				if buffer.IsRecoveryToken(token) {
					continue
				}
				text := buffer.Text(token)
				line := buffer.TokenLine(token)
				start := lineStart(buffer, line) + buffer.ColumnNumber(token) - 1

				if got := string(src[start : start+len(text)]); got != text {
					t.Fatalf("token %d: source span %q != spelling %q", token.Index(), got, text)
				}
				for i := start; i < start+len(text); i++ {
					if covered[i] {
						t.Fatalf("byte %d consumed twice", i)
					}
					covered[i] = true
				}
			}
		})
	}
}

// lineStart recomputes a line's byte offset from the line number.
func lineStart(buffer *TokenizedBuffer, line Line) int {
	start := 0
	src := buffer.Source().Text()
	for n := buffer.LineNumber(line) - 1; n > 0; n-- {
		i := bytes.IndexByte(src[start:], '\n')
		start += i + 1
	}
	return start
}

func BenchmarkLex(b *testing.B) {
	input := source.FromString(`/// Computes greatest common divisors.
fn gcd(a, b) {
  while b != 0 {
    let t = b
    b = a % b
    a = t
  }
  return a
}

fn main() -> never {
  var big = 1_000_000 * 0xFFFF_FFFF
  gcd(big, 0b1010)
}
`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bag := diagnostic.NewBag()
		_ = Lex(input, bag)
	}
}
