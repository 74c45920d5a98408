package prereq

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/course-graph/internal/token"
)

const defaultMaxDepth = 64

var ErrTooDeep = errors.New("parentheses nested too deeply")

// ParseError is returned together with an Empty fallback when a prerequisite
// description cannot be turned into a tree.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse prerequisites %q: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser is a recursive-descent parser for the grammar
//
//	Expr   := Term (OR Term)*
//	Term   := Factor ((AND | ',')? Factor)*
//	Factor := COURSE | '(' Expr ')'
//
// AND binds tighter than OR. Each level folds into one n-ary node.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	maxDepth int
	newLexer token.LexerFactory
}

type ParserOption func(*Parser)

// WithMaxDepth bounds how deeply parentheses may nest before parsing gives up.
func WithMaxDepth(depth int) ParserOption {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// WithLexer replaces the tokenizer used for each description.
func WithLexer(factory token.LexerFactory) ParserOption {
	return func(p *Parser) {
		if factory != nil {
			p.newLexer = factory
		}
	}
}

func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{maxDepth: defaultMaxDepth, newLexer: token.NewLexer}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Analysis is the outcome of parsing one description.
type Analysis struct {
	Tree      Node
	// Irregular is the tokenizer's diagnostic for a description that parsed
	// but is malformed, e.g. unbalanced parentheses. Nil when well formed.
	Irregular error
	Leaves    int
	Depth     int
}

// Parse never fails hard: on error the returned node is Empty and the error is a *ParseError.
func (p *Parser) Parse(source string) (Node, error) {
	a, err := p.Analyze(source)
	return a.Tree, err
}

// Analyze parses source like Parse and also reports the tokenizer diagnostic
// and the size of the resulting tree.
func (p *Parser) Analyze(source string) (a Analysis, err error) {
	lexer := p.newLexer()
	tokens := lexer.Tokenize(source)
	if len(tokens) == 0 || tokens[0].Type == token.EOF {
		return Analysis{Tree: Empty{}}, nil
	}

	if verr := lexer.Validate(tokens); verr != nil {
		a.Irregular = verr
		slog.Debug("irregular prerequisite expression", "source", source, "reason", verr)
	}

	defer func() {
		if r := recover(); r != nil {
			a = Analysis{Tree: Empty{}, Irregular: a.Irregular}
			err = &ParseError{Source: source, Err: fmt.Errorf("recovered: %v", r)}
			slog.Error("failed to parse prerequisites", "source", source, "error", err)
		}
	}()

	c := &cursor{tokens: tokens, maxDepth: p.maxDepth}
	node, perr := c.parse()
	if perr != nil {
		slog.Error("failed to parse prerequisites", "source", source, "error", perr)
		return Analysis{Tree: Empty{}, Irregular: a.Irregular}, &ParseError{Source: source, Err: perr}
	}

	a.Tree = node
	a.Leaves = CountLeaves(node)
	a.Depth = Depth(node)
	return a, nil
}

// cursor is the parse position threaded through the recursive calls of one Parse.
type cursor struct {
	tokens   []token.Token
	pos      int
	depth    int
	maxDepth int
}

func (c *cursor) peek() token.Token {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos]
	}
	return token.Token{Type: token.EOF}
}

func (c *cursor) advance() {
	if c.pos < len(c.tokens) {
		c.pos++
	}
}

// skipStrayClose drops ')' tokens that have no open '(' so the operator after
// them still applies to the preceding factor.
func (c *cursor) skipStrayClose() {
	for c.depth == 0 && c.peek().Type == token.RPAREN {
		c.advance()
	}
}

// parse consumes the whole token stream. A leading unmatched ')' is skipped.
func (c *cursor) parse() (Node, error) {
	var parts []Node
	for {
		switch c.peek().Type {
		case token.EOF:
			return NewAnd(parts...), nil
		case token.RPAREN:
			c.advance()
		default:
			n, err := c.expr()
			if err != nil {
				return nil, err
			}
			parts = append(parts, n)
		}
	}
}

func (c *cursor) expr() (Node, error) {
	first, err := c.term()
	if err != nil {
		return nil, err
	}
	terms := []Node{first}

	for c.peek().Type == token.OR {
		c.advance()
		t, err := c.term()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return NewOr(terms...), nil
}

func (c *cursor) term() (Node, error) {
	first, err := c.factor()
	if err != nil {
		return nil, err
	}
	factors := []Node{first}

	for {
		c.skipStrayClose()
		tok := c.peek()
		if tok.Type == token.AND {
			c.advance()
		} else if !tok.StartsFactor() {
			break
		}

		f, err := c.factor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, f)
	}
	return NewAnd(factors...), nil
}

// factor returns nil for an absent factor. Tokens that cannot start a factor are
// skipped, except those that end the enclosing term or expression.
func (c *cursor) factor() (Node, error) {
	tok := c.peek()
	switch tok.Type {
	case token.COURSE:
		c.advance()
		return Leaf{ID: tok.Value}, nil
	case token.LPAREN:
		c.advance()
		c.depth++
		if c.depth > c.maxDepth {
			return nil, fmt.Errorf("%w: limit %d", ErrTooDeep, c.maxDepth)
		}
		n, err := c.expr()
		if err != nil {
			return nil, err
		}
		c.depth--
		if c.peek().Type == token.RPAREN {
			c.advance()
		}
		return n, nil
	case token.OR, token.RPAREN, token.EOF:
		return nil, nil
	default:
		c.advance()
		return nil, nil
	}
}
