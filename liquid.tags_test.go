package liquid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renderCase struct {
	name    string
	source  string
	assigns map[string]any
	want    string
}

func runRenderCases(t *testing.T, tests []renderCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderString(t, tt.source, tt.assigns))
		})
	}
}

type namedDrop struct {
	BaseDrop
	name string
}

func (d *namedDrop) String() string { return d.name }

func TestAssignTag(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"literal", "{% assign a = 'x' %}{{ a }}", nil, "x"},
		{"variable", "{% assign a = list.first %}{{ a }}", map[string]any{"list": []any{7, 8}}, "7"},
		{"filter chain", "{% assign a = 'x' | upcase | append: '!' %}{{ a }}", nil, "X!"},
		{"no output", "[{% assign a = 1 %}]", nil, "[]"},
		{"overwrites", "{% assign a = 1 %}{% assign a = 2 %}{{ a }}", nil, "2"},
		{"scoped to block", "{% if true %}{% assign z = 1 %}{{ z }}{% endif %}[{{ z }}]", nil, "1[]"},
	})
}

func TestCaptureTag(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"captures output", "{% capture v %}test {{ x }}{% endcapture %}[{{ v }}]", map[string]any{"x": 1}, "[test 1]"},
		{"body is not emitted", "a{% capture v %}b{% endcapture %}c", nil, "ac"},
		{"inner assigns stay inside", "{% capture v %}{% assign w = 1 %}{% endcapture %}[{{ w }}]", nil, "[]"},
	})
}

func TestCommentTag(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"drops body", "a{% comment %}hidden {{ x }}{% endcomment %}b", map[string]any{"x": 1}, "ab"},
		{"ignores unknown tags", "a{% comment %}{% whatever %}{% else %}{% endcomment %}b", nil, "ab"},
	})
}

func TestCycleTag(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"rotates", "{% cycle 'one', 'two' %} {% cycle 'one', 'two' %} {% cycle 'one', 'two' %}", nil, "one two one"},
		{"in a loop", "{% for i in list %}{% cycle 'odd', 'even' %} {% endfor %}", map[string]any{"list": []any{1, 2, 3}}, "odd even odd "},
		{"different value lists are independent", "{% cycle 'a', 'b' %}{% cycle 'c', 'd' %}{% cycle 'a', 'b' %}{% cycle 'c', 'd' %}", nil, "acbd"},
		{"named groups", "{% cycle 1: 'a', 'b' %}{% cycle 2: 'a', 'b' %}{% cycle 1: 'a', 'b' %}{% cycle 2: 'a', 'b' %}", nil, "aabb"},
		{"variable values", "{% cycle x, y %}{% cycle x, y %}", map[string]any{"x": "X", "y": "Y"}, "XY"},
		{"variable group name", "{% cycle g: 'a', 'b' %}{% cycle h: 'a', 'b' %}", map[string]any{"g": "same", "h": "same"}, "ab"},
	})
}

func TestForTag(t *testing.T) {
	five := map[string]any{"array": []any{1, 2, 3, 4, 5}}

	runRenderCases(t, []renderCase{
		{"iterates", "{% for item in array %} {{ item }} {% endfor %}", map[string]any{"array": []any{1, 2, 3}}, " 1  2  3 "},
		{"typed slice", "{% for s in strs %}{{ s }}{% endfor %}", map[string]any{"strs": []string{"a", "b"}}, "ab"},
		{"empty collection", "[{% for item in array %}x{% endfor %}]", map[string]any{"array": []any{}}, "[]"},
		{"absent collection", "[{% for item in nothing %}x{% endfor %}]", nil, "[]"},
		{"scalar collection", "[{% for item in n %}x{% endfor %}]", map[string]any{"n": 5}, "[]"},
		{
			"forloop metadata",
			"{% for item in array %}{{ forloop.index }}/{{ forloop.length }}{% if forloop.first %}F{% endif %}{% if forloop.last %}L{% endif %} {% endfor %}",
			map[string]any{"array": []any{"a", "b", "c"}},
			"1/3F 2/3 3/3L ",
		},
		{
			"reverse indices",
			"{% for item in array %}{{ forloop.index0 }}{{ forloop.rindex }}{{ forloop.rindex0 }} {% endfor %}",
			map[string]any{"array": []any{"a", "b"}},
			"021 110 ",
		},
		{"loop name", "{% for item in array %}{{ forloop.name }}{% endfor %}", map[string]any{"array": []any{1}}, "item-array"},
		{"limit", "{% for i in array limit: 2 %}{{ i }}{% endfor %}", five, "12"},
		{"offset", "{% for i in array offset: 3 %}{{ i }}{% endfor %}", five, "45"},
		{"limit and offset", "{% for i in array limit: 2 offset: 1 %}{{ i }}{% endfor %}", five, "23"},
		{"limit from variable", "{% for i in array limit: n %}{{ i }}{% endfor %}", map[string]any{"array": []any{1, 2, 3}, "n": 1}, "1"},
		{"zero limit means no limit", "{% for i in array limit: 0 %}{{ i }}{% endfor %}", five, "12345"},
		{"zero limit after offset", "{% for i in array limit: 0 offset: 3 %}{{ i }}{% endfor %}", five, "45"},
		{"negative limit consumes nothing", "[{% for i in array limit: -1 %}{{ i }}{% endfor %}]", five, "[]"},
		{"offset past end", "[{% for i in array offset: 9 %}{{ i }}{% endfor %}]", five, "[]"},
		{
			"offset continue",
			"{% for i in array limit: 2 %}{{ i }}{% endfor %}|{% for i in array offset: continue limit: 2 %}{{ i }}{% endfor %}|{% for i in array offset: continue %}{{ i }}{% endfor %}",
			five,
			"12|34|5",
		},
		{
			"map iterates sorted pairs",
			"{% for pair in hash %}{{ pair.key }}={{ pair.value }};{% endfor %}",
			map[string]any{"hash": map[string]any{"b": 2, "a": 1}},
			"a=1;b=2;",
		},
		{
			"nested loops",
			"{% for a in outer %}{% for b in inner %}{{ a }}{{ b }} {% endfor %}{% endfor %}",
			map[string]any{"outer": []any{1, 2}, "inner": []any{"x", "y"}},
			"1x 1y 2x 2y ",
		},
		{"loop variable does not leak", "{% for i in array limit: 1 %}{% endfor %}[{{ i }}{{ forloop.index }}]", five, "[]"},
	})
}

func TestIfTag(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"true literal", "{% if true %}yes{% endif %}", nil, "yes"},
		{"false with else", "{% if false %}yes{% else %}no{% endif %}", nil, "no"},
		{"truthy variable", "{% if v %}yes{% else %}no{% endif %}", map[string]any{"v": "text"}, "yes"},
		{"empty string is falsy", "{% if v %}yes{% else %}no{% endif %}", map[string]any{"v": ""}, "no"},
		{"zero is falsy", "{% if v %}yes{% else %}no{% endif %}", map[string]any{"v": 0}, "no"},
		{"absent is falsy", "{% if v %}yes{% else %}no{% endif %}", nil, "no"},
		{"empty list is truthy", "{% if v %}yes{% else %}no{% endif %}", map[string]any{"v": []any{}}, "yes"},
		{"equal numbers", "{% if 1 == 1 %}yes{% endif %}", nil, "yes"},
		{"number and numeric string", "{% if n == '1' %}yes{% endif %}", map[string]any{"n": 1}, "yes"},
		{"not equal", "{% if 1 != 2 %}yes{% endif %}", nil, "yes"},
		{"greater", "{% if 2 > 1 %}yes{% endif %}", nil, "yes"},
		{"less", "{% if 1 < 2 %}yes{% endif %}", nil, "yes"},
		{"greater or equal", "{% if 2 >= 2 %}yes{% endif %}", nil, "yes"},
		{"less or equal false", "{% if 1 <= 0 %}yes{% else %}no{% endif %}", nil, "no"},
		{"numeric not lexical", "{% if 10 > 9 %}yes{% endif %}", nil, "yes"},
		{"strings equal", "{% if 'a' == 'a' %}yes{% endif %}", nil, "yes"},
		{"strings differ", "{% if 'a' == 'b' %}yes{% else %}no{% endif %}", nil, "no"},
		{"string ordering", "{% if 'b' > 'a' %}yes{% endif %}", nil, "yes"},
		{"bool comparison", "{% if v == true %}yes{% endif %}", map[string]any{"v": true}, "yes"},
		{"variable comparison", "{% if a == b %}yes{% endif %}", map[string]any{"a": "x", "b": "x"}, "yes"},
	})
}

func TestIfTag_NullComparisons(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"absent equals nil", "{% if missing == nil %}yes{% else %}no{% endif %}", nil, "yes"},
		{"nil equals nil", "{% if nil == nil %}yes{% else %}no{% endif %}", nil, "yes"},
		{"absent differs from value", "{% if missing != 1 %}yes{% else %}no{% endif %}", nil, "yes"},
		{"absent not equal to value", "{% if missing == 1 %}yes{% else %}no{% endif %}", nil, "no"},
		{"absent not ordered", "{% if missing > 1 %}yes{% else %}no{% endif %}", nil, "no"},
		{"absent not less", "{% if missing < 1 %}yes{% else %}no{% endif %}", nil, "no"},
		{"value not ordered against absent", "{% if 1 >= missing %}yes{% else %}no{% endif %}", nil, "no"},
		{"nil differs from nil is false", "{% if nil != nil %}yes{% else %}no{% endif %}", nil, "no"},
	})
}

func TestIfTag_Empty(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"empty list equals empty", "{% if list == empty %}yes{% else %}no{% endif %}", map[string]any{"list": []any{}}, "yes"},
		{"full list is not empty", "{% if list == empty %}yes{% else %}no{% endif %}", map[string]any{"list": []any{1}}, "no"},
		{"empty on the left", "{% if empty != list %}yes{% else %}no{% endif %}", map[string]any{"list": []any{1}}, "yes"},
	})
}

func TestIfTag_Drops(t *testing.T) {
	t.Run("drop with string form compares", func(t *testing.T) {
		out := renderString(t, "{% if d == 'bob' %}yes{% endif %}", map[string]any{"d": &namedDrop{name: "bob"}})
		assert.Equal(t, "yes", out)
	})

	t.Run("drop without string form is not comparable", func(t *testing.T) {
		tmpl := MustParse("{% if d == 'bob' %}yes{% endif %}")
		_, err := tmpl.Render(map[string]any{"d": FuncDrop{}})
		require.Error(t, err)
		assert.True(t, IsSemanticError(err))
		assert.Contains(t, err.Error(), ErrMsgNotComparable)
	})
}

func TestUnlessTag(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"false renders body", "{% unless false %}yes{% endunless %}", nil, "yes"},
		{"true renders else", "{% unless true %}yes{% else %}no{% endunless %}", nil, "no"},
		{"comparison", "{% unless a == 1 %}yes{% else %}no{% endunless %}", map[string]any{"a": 2}, "yes"},
	})
}

func TestCaseTag(t *testing.T) {
	src := "{% case x %}{% when 1 %}one{% when 2 %}two{% else %}other{% endcase %}"

	runRenderCases(t, []renderCase{
		{"first when", src, map[string]any{"x": 1}, "one"},
		{"second when", src, map[string]any{"x": 2}, "two"},
		{"else", src, map[string]any{"x": 5}, "other"},
		{"absent value hits else", src, nil, "other"},
		{"every match renders", "{% case x %}{% when 1 %}a{% when 2 %}b{% when 1 %}c{% endcase %}", map[string]any{"x": 1}, "ac"},
		{"no match no else", "[{% case x %}{% when 1 %}a{% endcase %}]", map[string]any{"x": 3}, "[]"},
		{"comma alternatives", "{% case x %}{% when 1, 2 %}low{% endcase %}", map[string]any{"x": 2}, "low"},
		{"or alternatives", "{% case x %}{% when 1 or 3 %}odd{% endcase %}", map[string]any{"x": 3}, "odd"},
		{"strings", "{% case s %}{% when 'hi' %}H{% when \"bye\" %}B{% endcase %}", map[string]any{"s": "bye"}, "B"},
		{"content before first when is dropped", "{% case x %}junk{% when 1 %}a{% endcase %}", map[string]any{"x": 1}, "a"},
		{"variable when", "{% case x %}{% when y %}same{% endcase %}", map[string]any{"x": "v", "y": "v"}, "same"},
	})

	t.Run("when after else", func(t *testing.T) {
		err := parseError(t, "{% case x %}{% else %}{% when 1 %}{% endcase %}")
		assert.True(t, IsSyntaxError(err))
	})

	t.Run("second else", func(t *testing.T) {
		err := parseError(t, "{% case x %}{% else %}{% else %}{% endcase %}")
		assert.True(t, IsSemanticError(err))
	})

	t.Run("case without value", func(t *testing.T) {
		err := parseError(t, "{% case %}{% endcase %}")
		assert.True(t, IsSyntaxError(err))
	})
}
