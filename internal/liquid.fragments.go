package internal

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	quotedFragmentRe = regexp.MustCompile(PatternQuotedFragment)
	tagAttributeRe   = regexp.MustCompile(PatternTagAttribute)
	filterArgumentRe = regexp.MustCompile(PatternFilterArgument)
	filterNameRe     = regexp.MustCompile(PatternFilterName)
	integerRe        = regexp.MustCompile(PatternInteger)
	decimalRe        = regexp.MustCompile(PatternDecimal)
)

// Attribute is one name: value pair from tag markup
type Attribute struct {
	Key   string
	Value string
}

// QuotedFragments returns every quoted fragment of s in order
func QuotedFragments(s string) []string {
	return quotedFragmentRe.FindAllString(s, -1)
}

// FirstQuotedFragment returns the leftmost quoted fragment of s
func FirstQuotedFragment(s string) (string, bool) {
	loc := quotedFragmentRe.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[loc[0]:loc[1]], true
}

// TagAttributes extracts name: value pairs from tag markup, independent of
// any positional syntax the tag also accepts.
func TagAttributes(markup string) []Attribute {
	matches := tagAttributeRe.FindAllStringSubmatch(markup, -1)
	attrs := make([]Attribute, 0, len(matches))
	for _, m := range matches {
		attrs = append(attrs, Attribute{Key: m[1], Value: m[2]})
	}
	return attrs
}

// SplitFilters splits variable markup on filter separators that are not
// inside a quoted literal. The first element is the expression part.
func SplitFilters(markup string) []string {
	var parts []string
	var quote byte
	last := 0
	for i := 0; i < len(markup); i++ {
		ch := markup[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == CharDoubleQuote || ch == CharSingleQuote:
			if strings.IndexByte(markup[i+1:], ch) >= 0 {
				quote = ch
			}
		case ch == CharPipe:
			parts = append(parts, markup[last:i])
			last = i + 1
		}
	}
	return append(parts, markup[last:])
}

// ParseFilter reads one filter segment: a name followed by arguments
// introduced by ':' and separated by ','.
func ParseFilter(segment string) (name string, args []string, ok bool) {
	loc := filterNameRe.FindStringSubmatchIndex(segment)
	if loc == nil {
		return "", nil, false
	}
	name = segment[loc[2]:loc[3]]
	args = make([]string, 0)
	for _, m := range filterArgumentRe.FindAllStringSubmatch(segment[loc[1]:], -1) {
		args = append(args, m[1])
	}
	return name, args, true
}

// Unquote strips matching single or double quotes
func Unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	first, last := s[0], s[len(s)-1]
	if (first == CharDoubleQuote || first == CharSingleQuote) && first == last {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// ParseLiteral interprets expr as a literal value: quoted strings, integers,
// decimals and the true/false/nil keywords. ok is false for anything that
// must be resolved as a variable path.
func ParseLiteral(expr string) (any, bool) {
	if s, ok := Unquote(expr); ok {
		return s, true
	}
	switch expr {
	case KeywordTrue:
		return true, true
	case KeywordFalse:
		return false, true
	case KeywordNil, KeywordNull:
		return nil, true
	}
	if integerRe.MatchString(expr) {
		if n, err := strconv.Atoi(expr); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(expr, FloatBitSize); err == nil {
			return f, true
		}
	}
	if decimalRe.MatchString(expr) {
		if f, err := strconv.ParseFloat(expr, FloatBitSize); err == nil {
			return f, true
		}
	}
	return nil, false
}
