package liquid

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariable(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		want    string
		filters []FilterCall
	}{
		{
			name:   "bare name",
			markup: "hello",
			want:   "hello",
		},
		{
			name:   "filters without arguments",
			markup: "hello | textileze | paragraph",
			want:   "hello",
			filters: []FilterCall{
				{Name: "textileze", Args: []string{}},
				{Name: "paragraph", Args: []string{}},
			},
		},
		{
			name:   "quoted input with arguments",
			markup: " 'foo' | repeat: 3, 3, 3 ",
			want:   "'foo'",
			filters: []FilterCall{
				{Name: "repeat", Args: []string{"3", "3", "3"}},
			},
		},
		{
			name:   "quoted arguments keep separators",
			markup: `date | format: "%Y, %m", 'x|y'`,
			want:   "date",
			filters: []FilterCall{
				{Name: "format", Args: []string{`"%Y, %m"`, "'x|y'"}},
			},
		},
		{
			name:   "pipe inside quoted input",
			markup: "'a|b' | upcase",
			want:   "'a|b'",
			filters: []FilterCall{
				{Name: "upcase", Args: []string{}},
			},
		},
		{
			name:   "dotted path",
			markup: "  product.variants.first.title  ",
			want:   "product.variants.first.title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseVariable(tt.markup)
			assert.Equal(t, tt.want, v.Name)
			if tt.filters == nil {
				assert.Empty(t, v.Filters)
				return
			}
			assert.Equal(t, tt.filters, v.Filters)
		})
	}
}

func TestVariable_Render(t *testing.T) {
	repeat := FilterSet{"repeat": func(in any, args ...any) (any, error) {
		n := 0
		for _, a := range args {
			if i, ok := a.(int); ok {
				n += i
			}
		}
		return strings.Repeat(fmt.Sprint(in), n), nil
	}}

	tests := []struct {
		name    string
		markup  string
		assigns map[string]any
		want    string
	}{
		{"literal string", "'foo'", nil, "foo"},
		{"literal number", "42", nil, "42"},
		{"decimal", "2.5", nil, "2.5"},
		{"variable", "x", map[string]any{"x": "value"}, "value"},
		{"filter with literal args", "'ab' | repeat: 1, 1", nil, "abab"},
		{"filter with variable arg", "'ab' | repeat: n", map[string]any{"n": 3}, "ababab"},
		{"unknown filter passes through", "'ab' | nosuchfilter: 1", nil, "ab"},
		{"chained filters", "'ab' | repeat: 2 | upcase", nil, "ABAB"},
		{"nil renders empty", "nil", nil, ""},
		{"list concatenates", "list", map[string]any{"list": []any{1, "a", 2}}, "1a2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(tt.assigns, nil, nil)
			ctx.AddFilters(StandardFilters(), repeat)
			out, err := ParseVariable(tt.markup).Render(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
