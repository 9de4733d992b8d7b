package lexer

// TokenKind classifies a lexed token. It is a closed set: fixed-spelling
// symbols, keywords, and the variable-spelling kinds (identifiers, integer
// literals, doc comments, and the error kind used for malformed input).
type TokenKind uint8

const (
	// KindError marks a span of source that no recognizer accepted, or a
	// closing symbol that had no opening counterpart.
	KindError TokenKind = iota

	KindIdentifier
	KindIntegerLiteral
	KindDocComment

	// Grouping symbols. Openers and closers are paired in the registry.
	KindOpenParen
	KindCloseParen
	KindOpenSquareBracket
	KindCloseSquareBracket
	KindOpenCurlyBrace
	KindCloseCurlyBrace

	// Other fixed-spelling symbols.
	KindArrow        // ->
	KindFatArrow     // =>
	KindEqualEqual   // ==
	KindNotEqual     // !=
	KindLessEqual    // <=
	KindGreaterEqual // >=
	KindEqual        // =
	KindNot          // !
	KindLess         // <
	KindGreater      // >
	KindPlus         // +
	KindMinus        // -
	KindStar         // *
	KindSlash        // /
	KindPercent      // %
	KindAmp          // &
	KindPipe         // |
	KindCaret        // ^
	KindTilde        // ~
	KindComma        // ,
	KindPeriod       // .
	KindSemi         // ;
	KindColon        // :

	// Keywords.
	KindAndKeyword
	KindBreakKeyword
	KindContinueKeyword
	KindElseKeyword
	KindFalseKeyword
	KindFnKeyword
	KindForKeyword
	KindIfKeyword
	KindLetKeyword
	KindNotKeyword
	KindOrKeyword
	KindReturnKeyword
	KindStructKeyword
	KindTrueKeyword
	KindVarKeyword
	KindWhileKeyword
)

// kindInfo is the static registry entry for a token kind.
type kindInfo struct {
	name     string
	spelling string
	keyword  bool
	// For grouping symbols, the counterpart kind. Zero (KindError) means
	// the kind does not participate in grouping.
	opens  TokenKind // set on closers: the kind that opens this group
	closes TokenKind // set on openers: the kind that closes this group
}

var kindTable = [...]kindInfo{
	KindError:          {name: "Error"},
	KindIdentifier:     {name: "Identifier"},
	KindIntegerLiteral: {name: "IntegerLiteral"},
	KindDocComment:     {name: "DocComment"},

	KindOpenParen:          {name: "OpenParen", spelling: "(", closes: KindCloseParen},
	KindCloseParen:         {name: "CloseParen", spelling: ")", opens: KindOpenParen},
	KindOpenSquareBracket:  {name: "OpenSquareBracket", spelling: "[", closes: KindCloseSquareBracket},
	KindCloseSquareBracket: {name: "CloseSquareBracket", spelling: "]", opens: KindOpenSquareBracket},
	KindOpenCurlyBrace:     {name: "OpenCurlyBrace", spelling: "{", closes: KindCloseCurlyBrace},
	KindCloseCurlyBrace:    {name: "CloseCurlyBrace", spelling: "}", opens: KindOpenCurlyBrace},

	KindArrow:        {name: "Arrow", spelling: "->"},
	KindFatArrow:     {name: "FatArrow", spelling: "=>"},
	KindEqualEqual:   {name: "EqualEqual", spelling: "=="},
	KindNotEqual:     {name: "NotEqual", spelling: "!="},
	KindLessEqual:    {name: "LessEqual", spelling: "<="},
	KindGreaterEqual: {name: "GreaterEqual", spelling: ">="},
	KindEqual:        {name: "Equal", spelling: "="},
	KindNot:          {name: "Not", spelling: "!"},
	KindLess:         {name: "Less", spelling: "<"},
	KindGreater:      {name: "Greater", spelling: ">"},
	KindPlus:         {name: "Plus", spelling: "+"},
	KindMinus:        {name: "Minus", spelling: "-"},
	KindStar:         {name: "Star", spelling: "*"},
	KindSlash:        {name: "Slash", spelling: "/"},
	KindPercent:      {name: "Percent", spelling: "%"},
	KindAmp:          {name: "Amp", spelling: "&"},
	KindPipe:         {name: "Pipe", spelling: "|"},
	KindCaret:        {name: "Caret", spelling: "^"},
	KindTilde:        {name: "Tilde", spelling: "~"},
	KindComma:        {name: "Comma", spelling: ","},
	KindPeriod:       {name: "Period", spelling: "."},
	KindSemi:         {name: "Semi", spelling: ";"},
	KindColon:        {name: "Colon", spelling: ":"},

	KindAndKeyword:      {name: "AndKeyword", spelling: "and", keyword: true},
	KindBreakKeyword:    {name: "BreakKeyword", spelling: "break", keyword: true},
	KindContinueKeyword: {name: "ContinueKeyword", spelling: "continue", keyword: true},
	KindElseKeyword:     {name: "ElseKeyword", spelling: "else", keyword: true},
	KindFalseKeyword:    {name: "FalseKeyword", spelling: "false", keyword: true},
	KindFnKeyword:       {name: "FnKeyword", spelling: "fn", keyword: true},
	KindForKeyword:      {name: "ForKeyword", spelling: "for", keyword: true},
	KindIfKeyword:       {name: "IfKeyword", spelling: "if", keyword: true},
	KindLetKeyword:      {name: "LetKeyword", spelling: "let", keyword: true},
	KindNotKeyword:      {name: "NotKeyword", spelling: "not", keyword: true},
	KindOrKeyword:       {name: "OrKeyword", spelling: "or", keyword: true},
	KindReturnKeyword:   {name: "ReturnKeyword", spelling: "return", keyword: true},
	KindStructKeyword:   {name: "StructKeyword", spelling: "struct", keyword: true},
	KindTrueKeyword:     {name: "TrueKeyword", spelling: "true", keyword: true},
	KindVarKeyword:      {name: "VarKeyword", spelling: "var", keyword: true},
	KindWhileKeyword:    {name: "WhileKeyword", spelling: "while", keyword: true},
}

// symbolKinds lists every fixed-spelling symbol in recognition order.
// Longer spellings come before shorter ones sharing their prefix, so that
// first-match recognition never truncates an operator.
var symbolKinds = []TokenKind{
	KindArrow, KindFatArrow, KindEqualEqual, KindNotEqual,
	KindLessEqual, KindGreaterEqual,
	KindOpenParen, KindCloseParen,
	KindOpenSquareBracket, KindCloseSquareBracket,
	KindOpenCurlyBrace, KindCloseCurlyBrace,
	KindEqual, KindNot, KindLess, KindGreater,
	KindPlus, KindMinus, KindStar, KindSlash, KindPercent,
	KindAmp, KindPipe, KindCaret, KindTilde,
	KindComma, KindPeriod, KindSemi, KindColon,
}

// keywordKinds maps keyword spellings to their kinds.
var keywordKinds = func() map[string]TokenKind {
	m := make(map[string]TokenKind)
	for kind, info := range kindTable {
		if info.keyword {
			m[info.spelling] = TokenKind(kind)
		}
	}
	return m
}()

// symbolStartBytes marks every byte that begins a registered symbol
// spelling. The error recognizer stops at these bytes.
var symbolStartBytes = func() (set [256]bool) {
	for _, kind := range symbolKinds {
		set[kind.FixedSpelling()[0]] = true
	}
	return set
}()

// Name returns the kind's name for display.
func (k TokenKind) Name() string {
	return kindTable[k].name
}

func (k TokenKind) String() string {
	return k.Name()
}

// FixedSpelling returns the canonical spelling for symbols and keywords,
// or "" for kinds whose spelling varies per token.
func (k TokenKind) FixedSpelling() string {
	return kindTable[k].spelling
}

// IsKeyword reports whether the kind is a keyword.
func (k TokenKind) IsKeyword() bool {
	return kindTable[k].keyword
}

// IsOpeningSymbol reports whether the kind opens a group.
func (k TokenKind) IsOpeningSymbol() bool {
	return kindTable[k].closes != KindError
}

// IsClosingSymbol reports whether the kind closes a group.
func (k TokenKind) IsClosingSymbol() bool {
	return kindTable[k].opens != KindError
}

// ClosingSymbol returns the kind that closes a group opened by k.
// Only meaningful for opening symbols.
func (k TokenKind) ClosingSymbol() TokenKind {
	return kindTable[k].closes
}

// OpeningSymbol returns the kind that opens a group closed by k.
// Only meaningful for closing symbols.
func (k TokenKind) OpeningSymbol() TokenKind {
	return kindTable[k].opens
}
