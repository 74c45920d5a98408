package token

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	andRune  = 'ו'
	alefRune = 'א'
)

type PrereqTokenizer struct {
	input []rune
	pos   int
	word  strings.Builder
}

func NewPrereqTokenizer() *PrereqTokenizer {
	return &PrereqTokenizer{}
}

// Tokenize converts a free-text prerequisite description into a slice of Tokens.
// Example: Input: `(01130018 או 01140015) ו-01040023`
//
// Conjunction glyphs are split out wherever they appear, so an AND glyph glued to a
// course number still yields two tokens. Words that are not exactly 8 digits are dropped.
func (t *PrereqTokenizer) Tokenize(input string) []Token {
	t.input = []rune(strings.TrimSpace(input))
	t.pos = 0
	t.word.Reset()

	var tokens []Token
	emit := func(tok Token) {
		tokens = t.flush(tokens)
		tokens = append(tokens, tok)
	}

	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case unicode.IsSpace(ch):
			tokens = t.flush(tokens)
			t.pos++
		case ch == '(':
			emit(Token{Type: LPAREN, Value: "("})
			t.pos++
		case ch == ')':
			emit(Token{Type: RPAREN, Value: ")"})
			t.pos++
		case ch == ',':
			emit(Token{Type: AND, Value: ","})
			t.pos++
		case ch == alefRune && t.peek() == andRune:
			emit(Token{Type: OR, Value: OrGlyph})
			t.pos += 2
		case ch == andRune:
			emit(Token{Type: AND, Value: AndGlyph})
			t.pos++
			if t.pos < len(t.input) && t.input[t.pos] == '-' {
				t.pos++ // "ו-" is written as a single conjunction
			}
		default:
			t.word.WriteRune(ch)
			t.pos++
		}
	}
	tokens = t.flush(tokens)

	tokens = append(tokens, Token{Type: EOF})
	return tokens
}

func (t *PrereqTokenizer) peek() rune {
	if t.pos+1 < len(t.input) {
		return t.input[t.pos+1]
	}
	return 0
}

// flush closes the pending word and keeps it only when it is a course identifier.
func (t *PrereqTokenizer) flush(tokens []Token) []Token {
	if t.word.Len() == 0 {
		return tokens
	}
	word := t.word.String()
	t.word.Reset()

	if IsCourseID(word) {
		tokens = append(tokens, Token{Type: COURSE, Value: word})
	}
	return tokens
}

// IsCourseID reports whether s is exactly CourseIDLength ASCII digits.
func IsCourseID(s string) bool {
	if len(s) != CourseIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Validate reports structural irregularities. The parser recovers from all of them,
// so callers use the result as a diagnostic only.
func (t *PrereqTokenizer) Validate(tokens []Token) error {
	depth := 0
	hasCourse := false

	for i, tok := range tokens {
		if tok.Type == EOF {
			break
		}

		switch tok.Type {
		case COURSE:
			hasCourse = true
		case LPAREN:
			depth++
			if i+1 < len(tokens) && tokens[i+1].Type == RPAREN {
				return fmt.Errorf("empty parentheses")
			}
		case RPAREN:
			depth--
			if depth < 0 {
				return fmt.Errorf("unexpected closing parenthesis")
			}
		case AND, OR:
			if i == 0 {
				return fmt.Errorf("expression cannot start with %s", tok.Value)
			}
			prev := tokens[i-1].Type
			if prev != COURSE && prev != RPAREN {
				return fmt.Errorf("unexpected %s operator", tok.Value)
			}
		default:
			return fmt.Errorf("invalid token: %s", tok.Value)
		}
	}

	if depth != 0 {
		return fmt.Errorf("unbalanced parentheses: %d unclosed", depth)
	}

	if !hasCourse {
		return fmt.Errorf("expression must reference at least one course")
	}

	return nil
}
