package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		kinds    []TokenKind
	}{
		{
			name:     "empty source",
			input:    "",
			expected: []string{},
			kinds:    []TokenKind{},
		},
		{
			name:     "plain text",
			input:    "hello world",
			expected: []string{"hello world"},
			kinds:    []TokenKind{TokenKindLiteral},
		},
		{
			name:     "single variable",
			input:    "{{funk}}",
			expected: []string{"{{funk}}"},
			kinds:    []TokenKind{TokenKindVariable},
		},
		{
			name:     "variables separated by spaces",
			input:    " {{funk}} {{so}} {{brother}} ",
			expected: []string{" ", "{{funk}}", " ", "{{so}}", " ", "{{brother}}", " "},
			kinds: []TokenKind{
				TokenKindLiteral, TokenKindVariable, TokenKindLiteral, TokenKindVariable,
				TokenKindLiteral, TokenKindVariable, TokenKindLiteral,
			},
		},
		{
			name:     "tag between text",
			input:    "a{% if x %}b{% endif %}",
			expected: []string{"a", "{% if x %}", "b", "{% endif %}"},
			kinds:    []TokenKind{TokenKindLiteral, TokenKindTag, TokenKindLiteral, TokenKindTag},
		},
		{
			name:     "multiline tag",
			input:    "{% cycle\n'a',\n'b' %}",
			expected: []string{"{% cycle\n'a',\n'b' %}"},
			kinds:    []TokenKind{TokenKindTag},
		},
		{
			name:     "unterminated variable at end",
			input:    "x {{ y",
			expected: []string{"x ", "{{ y"},
			kinds:    []TokenKind{TokenKindLiteral, TokenKindLiteral},
		},
		{
			name:     "unterminated variable before tag",
			input:    "{{ a {% if b %}",
			expected: []string{"{{ a ", "{% if b %}"},
			kinds:    []TokenKind{TokenKindLiteral, TokenKindTag},
		},
		{
			name:     "unterminated tag before variable",
			input:    "{% if b } {{ c }}",
			expected: []string{"{% if b } ", "{{ c }}"},
			kinds:    []TokenKind{TokenKindLiteral, TokenKindVariable},
		},
		{
			name:     "stray braces",
			input:    " div { font-weight: bold; } ",
			expected: []string{" div { font-weight: bold; } "},
			kinds:    []TokenKind{TokenKindLiteral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input, nil, nil)
			require.Len(t, tokens, len(tt.expected))
			assert.Equal(t, tt.expected, Strings(tokens))
			for i, tok := range tokens {
				assert.Equal(t, tt.kinds[i], tok.Kind, "token %d", i)
			}
		})
	}
}

func TestLexer_RoundTrip(t *testing.T) {
	sources := []string{
		"",
		"{{",
		"}}",
		"{%",
		"{{{{}}}}",
		"{% %}{{}}",
		"a {{ b }} c {% d %} e {{ f",
		"{% if x %}{{ y }}{% endif %}{% for",
		"line1\n{{ a }}\nline3\n{% b %}",
		"{ } {{ } }} %} {%",
	}
	for _, src := range sources {
		tokens := Tokenize(src, nil, nil)
		assert.Equal(t, src, strings.Join(Strings(tokens), ""), "source %q", src)
		for _, tok := range tokens {
			assert.NotEmpty(t, tok.Value)
		}
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens := Tokenize("ab\ncd{{ x }}\n{% y %}", nil, nil)
	require.Len(t, tokens, 4)

	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, tokens[0].Position)
	assert.Equal(t, Position{Offset: 5, Line: 2, Column: 3}, tokens[1].Position)
	assert.Equal(t, Position{Offset: 12, Line: 2, Column: 10}, tokens[2].Position)
	assert.Equal(t, Position{Offset: 13, Line: 3, Column: 1}, tokens[3].Position)
}

func TestLexer_CustomGrammar(t *testing.T) {
	g, err := NewGrammar("<%", "%>", "<<", ">>")
	require.NoError(t, err)

	tokens := Tokenize("a<< b >>c<% d %>{{ e }}", g, nil)
	assert.Equal(t, []string{"a", "<< b >>", "c", "<% d %>", "{{ e }}"}, Strings(tokens))
	assert.Equal(t, TokenKindVariable, tokens[1].Kind)
	assert.Equal(t, TokenKindTag, tokens[3].Kind)
	assert.Equal(t, TokenKindLiteral, tokens[4].Kind)
}

func TestToken_String(t *testing.T) {
	tok := Token{Kind: TokenKindTag, Value: "{% x %}", Position: Position{Line: 2, Column: 4}}
	assert.Equal(t, `Token{TAG: "{% x %}" @ line 2, column 4}`, tok.String())
	assert.True(t, tok.IsTag())
	assert.False(t, tok.IsVariable())
	assert.False(t, tok.IsLiteral())
}
