package token

// Lexer turns a prerequisite description into tokens and reports irregularities
// in the result. Implementations may keep per-call state, so callers obtain a
// fresh Lexer for every description.
type Lexer interface {
	Tokenize(input string) []Token
	Validate(tokens []Token) error
}

// LexerFactory returns a fresh Lexer.
type LexerFactory func() Lexer

// NewLexer is the default LexerFactory.
func NewLexer() Lexer {
	return NewPrereqTokenizer()
}

var _ Lexer = (*PrereqTokenizer)(nil)
