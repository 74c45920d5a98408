package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func types(tokens []Token) []Type {
	out := make([]Type, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Type)
	}
	return out
}

func TestPrereqTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Type
		values   []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: []Type{EOF},
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: []Type{EOF},
		},
		{
			name:     "single course",
			input:    "01130018",
			expected: []Type{COURSE, EOF},
			values:   []string{"01130018", ""},
		},
		{
			name:     "and",
			input:    "01130018 ו 01140015",
			expected: []Type{COURSE, AND, COURSE, EOF},
		},
		{
			name:     "or is not split into alef and vav",
			input:    "01130018 או 01140015",
			expected: []Type{COURSE, OR, COURSE, EOF},
		},
		{
			name:     "and glued to course number",
			input:    "01130018ו 01140015",
			expected: []Type{COURSE, AND, COURSE, EOF},
			values:   []string{"01130018", AndGlyph, "01140015", ""},
		},
		{
			name:     "hyphenated and",
			input:    "01130018 ו-01140015",
			expected: []Type{COURSE, AND, COURSE, EOF},
		},
		{
			name:     "comma is and",
			input:    "01130018,01140015",
			expected: []Type{COURSE, AND, COURSE, EOF},
			values:   []string{"01130018", ",", "01140015", ""},
		},
		{
			name:     "parentheses without spaces",
			input:    "(01130018 או 01140015)ו 01040023",
			expected: []Type{LPAREN, COURSE, OR, COURSE, RPAREN, AND, COURSE, EOF},
		},
		{
			name:     "wrong length numbers are dropped",
			input:    "0113001 או 011400150",
			expected: []Type{OR, EOF},
		},
		{
			name:     "annotation text is dropped",
			input:    "01130018 (note)",
			expected: []Type{COURSE, LPAREN, RPAREN, EOF},
		},
	}

	tokenizer := NewPrereqTokenizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenizer.Tokenize(tt.input)
			assert.Equal(t, tt.expected, types(tokens))
			if tt.values != nil {
				values := make([]string, 0, len(tokens))
				for _, tok := range tokens {
					values = append(values, tok.Value)
				}
				assert.Equal(t, tt.values, values)
			}
		})
	}
}

func TestPrereqTokenizer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "(01130018 או 01140015) ו 01040023"},
		{name: "unclosed", input: "(01130018 או 01140015", wantErr: true},
		{name: "unexpected close", input: "01130018)", wantErr: true},
		{name: "leading operator", input: "ו 01130018", wantErr: true},
		{name: "double operator", input: "01130018 ו ו 01140015", wantErr: true},
		{name: "no course", input: "ללא", wantErr: true},
		{name: "empty parentheses", input: "() 01130018", wantErr: true},
	}

	tokenizer := NewPrereqTokenizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tokenizer.Validate(tokenizer.Tokenize(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsCourseID(t *testing.T) {
	assert.True(t, IsCourseID("01130018"))
	assert.False(t, IsCourseID("0113001"))
	assert.False(t, IsCourseID("0113001a"))
	assert.False(t, IsCourseID("٠١١٣٠٠١٨"))
}

func TestNewLexer_ReturnsFreshInstances(t *testing.T) {
	a, b := NewLexer(), NewLexer()
	assert.NotSame(t, a, b)
	assert.Equal(t, []Type{COURSE, OR, COURSE, EOF}, types(a.Tokenize("01130018 או 01140015")))
}
