package token

type Type int

const (
	EOF Type = iota
	COURSE
	AND
	OR
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case COURSE:
		return "COURSE"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Glyphs of the two conjunctions used in prerequisite text.
const (
	AndGlyph = "ו"
	OrGlyph  = "או"
)

// CourseIDLength is the number of decimal digits in a course identifier.
const CourseIDLength = 8

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  Type
	Value string
}

// StartsFactor reports whether a factor (course or parenthesized group) begins at this token.
func (t Token) StartsFactor() bool {
	return t.Type == COURSE || t.Type == LPAREN
}
