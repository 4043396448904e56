package internal

import (
	"regexp"
	"strings"
)

// Grammar holds the delimiters of one template dialect. A Grammar is built
// once and never mutated, so it is shared freely between parsers.
type Grammar struct {
	TagStart      string
	TagEnd        string
	VariableStart string
	VariableEnd   string

	tagSpan      *regexp.Regexp
	variableSpan *regexp.Regexp
}

var defaultGrammar = mustGrammar(StrTagStart, StrTagEnd, StrVariableStart, StrVariableEnd)

// DefaultGrammar returns the grammar using {% %} and {{ }}
func DefaultGrammar() *Grammar {
	return defaultGrammar
}

// NewGrammar builds a grammar for the given delimiters
func NewGrammar(tagStart, tagEnd, variableStart, variableEnd string) (*Grammar, error) {
	if tagStart == "" || tagEnd == "" || variableStart == "" || variableEnd == "" {
		return nil, &GrammarError{Message: ErrMsgEmptyDelimiter}
	}
	if strings.HasPrefix(tagStart, variableStart) || strings.HasPrefix(variableStart, tagStart) {
		return nil, &GrammarError{Message: ErrMsgAmbiguousDelimiters}
	}

	tagSpan := regexp.MustCompile(`(?s)^` + regexp.QuoteMeta(tagStart) + `\s*(\w+)(.*)` + regexp.QuoteMeta(tagEnd) + `$`)
	variableSpan := regexp.MustCompile(`(?s)^` + regexp.QuoteMeta(variableStart) + `(.*)` + regexp.QuoteMeta(variableEnd) + `$`)

	return &Grammar{
		TagStart:      tagStart,
		TagEnd:        tagEnd,
		VariableStart: variableStart,
		VariableEnd:   variableEnd,
		tagSpan:       tagSpan,
		variableSpan:  variableSpan,
	}, nil
}

func mustGrammar(tagStart, tagEnd, variableStart, variableEnd string) *Grammar {
	g, err := NewGrammar(tagStart, tagEnd, variableStart, variableEnd)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseTag splits a complete tag span into its name and trimmed markup.
// ok is false when the span is not a well-formed tag.
func (g *Grammar) ParseTag(raw string) (name, markup string, ok bool) {
	m := g.tagSpan.FindStringSubmatch(raw)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// VariableMarkup returns the payload of a complete variable span
func (g *Grammar) VariableMarkup(raw string) (string, bool) {
	m := g.variableSpan.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsTagSpan reports whether raw starts with the tag opening delimiter
func (g *Grammar) IsTagSpan(raw string) bool {
	return strings.HasPrefix(raw, g.TagStart)
}

// IsVariableSpan reports whether raw starts with the variable opening delimiter
func (g *Grammar) IsVariableSpan(raw string) bool {
	return strings.HasPrefix(raw, g.VariableStart)
}

// GrammarError reports an unusable delimiter configuration
type GrammarError struct {
	Message string
}

func (e *GrammarError) Error() string {
	return e.Message
}
