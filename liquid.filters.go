package liquid

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/itsatony/go-liquid/internal"
)

// FilterFunc transforms the current value of a variable. args are already
// resolved in the rendering context.
type FilterFunc func(input any, args ...any) (any, error)

// FilterSet maps filter names to implementations
type FilterSet map[string]FilterFunc

// Standard filter names
const (
	FilterSize          = "size"
	FilterUpcase        = "upcase"
	FilterDowncase      = "downcase"
	FilterCapitalize    = "capitalize"
	FilterEscape        = "escape"
	FilterStripHTML     = "strip_html"
	FilterStripNewlines = "strip_newlines"
	FilterNewlineToBr   = "newline_to_br"
	FilterJoin          = "join"
	FilterFirst         = "first"
	FilterLast          = "last"
	FilterSort          = "sort"
	FilterTruncate      = "truncate"
	FilterTruncateWords = "truncatewords"
	FilterReplace       = "replace"
	FilterReplaceFirst  = "replace_first"
	FilterRemove        = "remove"
	FilterRemoveFirst   = "remove_first"
	FilterAppend        = "append"
	FilterPrepend       = "prepend"
	FilterDefault       = "default"
)

// Standard filter defaults
const (
	DefaultJoinGlue       = " "
	DefaultTruncateLength = 50
	DefaultTruncateWords  = 15
	DefaultTruncateEnd    = "..."
	LineBreakHTML         = "<br />\n"
)

var (
	htmlTagRe  = regexp.MustCompile(`(?s)<.*?>`)
	newlineRe  = regexp.MustCompile(`\r?\n`)
	newlinesRe = regexp.MustCompile(`[\r\n]+`)
)

// StandardFilters returns the built-in filter set registered by default
func StandardFilters() FilterSet {
	return FilterSet{
		FilterSize:          filterSize,
		FilterUpcase:        stringFilter(strings.ToUpper),
		FilterDowncase:      stringFilter(strings.ToLower),
		FilterCapitalize:    stringFilter(capitalize),
		FilterEscape:        stringFilter(html.EscapeString),
		FilterStripHTML:     stringFilter(func(s string) string { return htmlTagRe.ReplaceAllString(s, "") }),
		FilterStripNewlines: stringFilter(func(s string) string { return newlinesRe.ReplaceAllString(s, "") }),
		FilterNewlineToBr:   stringFilter(func(s string) string { return newlineRe.ReplaceAllString(s, LineBreakHTML) }),
		FilterJoin:          filterJoin,
		FilterFirst:         filterFirst,
		FilterLast:          filterLast,
		FilterSort:          filterSort,
		FilterTruncate:      filterTruncate,
		FilterTruncateWords: filterTruncateWords,
		FilterReplace:       replaceFilter(-1, false),
		FilterReplaceFirst:  replaceFilter(1, false),
		FilterRemove:        replaceFilter(-1, true),
		FilterRemoveFirst:   replaceFilter(1, true),
		FilterAppend:        filterAppend,
		FilterPrepend:       filterPrepend,
		FilterDefault:       filterDefault,
	}
}

func stringFilter(fn func(string) string) FilterFunc {
	return func(input any, _ ...any) (any, error) {
		return fn(internal.ToString(input)), nil
	}
}

func argString(args []any, i int, fallback string) string {
	if i < len(args) && args[i] != nil {
		return internal.ToString(args[i])
	}
	return fallback
}

func argInt(args []any, i int, fallback int) int {
	if i < len(args) {
		if n, ok := internal.ToInt(args[i]); ok {
			return n
		}
	}
	return fallback
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func filterSize(input any, _ ...any) (any, error) {
	return internal.Length(input), nil
}

func filterJoin(input any, args ...any) (any, error) {
	items, ok := internal.Sequence(input)
	if !ok {
		return input, nil
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = internal.ToString(item)
	}
	return strings.Join(parts, argString(args, 0, DefaultJoinGlue)), nil
}

func filterFirst(input any, _ ...any) (any, error) {
	items, ok := internal.Sequence(input)
	if !ok || len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func filterLast(input any, _ ...any) (any, error) {
	items, ok := internal.Sequence(input)
	if !ok || len(items) == 0 {
		return nil, nil
	}
	return items[len(items)-1], nil
}

func filterSort(input any, _ ...any) (any, error) {
	items, ok := internal.Sequence(input)
	if !ok {
		return input, nil
	}
	sorted := make([]any, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return internal.Compare(sorted[i], sorted[j]) < 0
	})
	return sorted, nil
}

func filterTruncate(input any, args ...any) (any, error) {
	s := []rune(internal.ToString(input))
	length := argInt(args, 0, DefaultTruncateLength)
	end := argString(args, 1, DefaultTruncateEnd)
	if len(s) <= length {
		return string(s), nil
	}
	keep := length - utf8.RuneCountInString(end)
	if keep < 0 {
		keep = 0
	}
	return string(s[:keep]) + end, nil
}

func filterTruncateWords(input any, args ...any) (any, error) {
	s := internal.ToString(input)
	words := strings.Fields(s)
	count := argInt(args, 0, DefaultTruncateWords)
	end := argString(args, 1, DefaultTruncateEnd)
	if count < 1 {
		count = 1
	}
	if len(words) <= count {
		return s, nil
	}
	return strings.Join(words[:count], " ") + end, nil
}

func replaceFilter(n int, remove bool) FilterFunc {
	return func(input any, args ...any) (any, error) {
		replacement := ""
		if !remove {
			replacement = argString(args, 1, "")
		}
		return strings.Replace(internal.ToString(input), argString(args, 0, ""), replacement, n), nil
	}
}

func filterAppend(input any, args ...any) (any, error) {
	return internal.ToString(input) + argString(args, 0, ""), nil
}

func filterPrepend(input any, args ...any) (any, error) {
	return argString(args, 0, "") + internal.ToString(input), nil
}

func filterDefault(input any, args ...any) (any, error) {
	if input == nil || input == "" || input == false {
		if len(args) > 0 {
			return args[0], nil
		}
		return nil, nil
	}
	return input, nil
}
