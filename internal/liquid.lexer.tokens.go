package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// advance returns the position reached after consuming text
func (p Position) advance(text string) Position {
	for i := 0; i < len(text); i++ {
		if text[i] == CharNewline {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Offset += len(text)
	return p
}

// Token is an immutable slice of the template source
type Token struct {
	Kind     TokenKind
	Value    string
	Position Position
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Kind, t.Value, t.Position)
}

// IsTag returns true for a complete tag span
func (t Token) IsTag() bool {
	return t.Kind == TokenKindTag
}

// IsVariable returns true for a complete variable span
func (t Token) IsVariable() bool {
	return t.Kind == TokenKindVariable
}

// IsLiteral returns true for literal text
func (t Token) IsLiteral() bool {
	return t.Kind == TokenKindLiteral
}

// Strings returns the raw source slices of tokens in order
func Strings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}
