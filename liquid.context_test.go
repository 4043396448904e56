package liquid

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	Title      string
	PriceCents int `liquid:"price"`
	Tags       []string
	hidden     string
}

type counterDrop struct {
	BaseDrop
	reads int
}

func (d *counterDrop) HasKey(name string) bool {
	return name == "count"
}

func (d *counterDrop) Get(string) any {
	d.reads++
	return d.reads
}

func (d *counterDrop) Fallback(name string) any {
	return "missing:" + name
}

// viewerDrop reads other variables from the rendering context
type viewerDrop struct {
	BaseDrop
	owner string
}

func (d *viewerDrop) HasKey(name string) bool { return name == "greeting" }

func (d *viewerDrop) GetContext(ctx *Context, _ string) any {
	return fmt.Sprintf("%s sees %s", ctx.Get("viewer"), d.owner)
}

func (d *viewerDrop) FallbackContext(ctx *Context, name string) any {
	return ctx.Get(name)
}

type listDrop struct {
	BaseDrop
	items []any
}

func (d *listDrop) Items() []any { return d.items }

func TestContext_Get(t *testing.T) {
	ctx := NewContext(map[string]any{
		"name":    "tobi",
		"user":    map[string]any{"profile": map[string]any{"age": 42}},
		"list":    []any{"a", "b", "c"},
		"strs":    []string{"x", "y"},
		"product": product{Title: "Board", PriceCents: 100, Tags: []string{"snow"}, hidden: "h"},
		"ptr":     &product{Title: "Pointer"},
		"ints":    map[string]int{"one": 1},
		"nilptr":  (*product)(nil),
	}, nil, nil)

	tests := []struct {
		expr string
		want any
	}{
		{"name", "tobi"},
		{"'literal'", "literal"},
		{`"double"`, "double"},
		{"12", 12},
		{"-3", -3},
		{"1.5", 1.5},
		{"true", true},
		{"false", false},
		{"nil", nil},
		{"null", nil},
		{"missing", nil},
		{"missing.deeper", nil},
		{"user.profile.age", 42},
		{"user.size", 1},
		{"name.size", 4},
		{"list.first", "a"},
		{"list.last", "c"},
		{"list.size", 3},
		{"list.1", "b"},
		{"list.-1", "c"},
		{"list.9", nil},
		{"strs.last", "y"},
		{"product.title", "Board"},
		{"product.Title", "Board"},
		{"product.price", 100},
		{"product.price_cents", nil},
		{"product.tags.first", "snow"},
		{"product.hidden", nil},
		{"ptr.title", "Pointer"},
		{"ints.one", 1},
		{"nilptr.title", nil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, ctx.Get(tt.expr))
		})
	}
}

func TestContext_Scopes(t *testing.T) {
	ctx := NewContext(map[string]any{"x": "root"}, nil, nil)
	assert.Equal(t, 1, ctx.Depth())

	ctx.Push()
	assert.Equal(t, "root", ctx.Get("x"), "outer scopes stay visible")

	ctx.Set("x", "inner")
	ctx.Set("y", "only inner")
	assert.Equal(t, "inner", ctx.Get("x"))
	assert.True(t, ctx.Has("y"))

	ctx.Pop()
	assert.Equal(t, "root", ctx.Get("x"))
	assert.False(t, ctx.Has("y"))

	t.Run("root scope is never popped", func(t *testing.T) {
		ctx.Pop()
		ctx.Pop()
		assert.Equal(t, 1, ctx.Depth())
		assert.Equal(t, "root", ctx.Get("x"))
	})

	t.Run("nil binding shadows outer value", func(t *testing.T) {
		ctx.Push()
		defer ctx.Pop()
		ctx.Set("x", nil)
		assert.Nil(t, ctx.Get("x"))
	})
}

func TestContext_Registers(t *testing.T) {
	seed := map[string]map[string]any{"cycle": {"k": 1}}
	ctx := NewContext(nil, seed, nil)

	assert.Equal(t, 1, ctx.Registers("cycle")["k"])

	ctx.Registers("cycle")["k"] = 2
	assert.Equal(t, 1, seed["cycle"]["k"], "seed is copied")

	fresh := ctx.Registers("custom")
	require.NotNil(t, fresh)
	fresh["a"] = true
	assert.Equal(t, true, ctx.Registers("custom")["a"])
}

func TestContext_Filters(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	assert.False(t, ctx.HasFilter("upcase"))

	out, err := ctx.Invoke("upcase", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", out, "unknown filters pass through")

	ctx.AddFilters(StandardFilters())
	ctx.AddFilters(FilterSet{"upcase": func(any, ...any) (any, error) { return "override", nil }})
	ctx.AddFilters(FilterSet{})

	assert.True(t, ctx.HasFilter("upcase"))
	out, err = ctx.Invoke("upcase", "x")
	require.NoError(t, err)
	assert.Equal(t, "override", out)

	out, err = ctx.Invoke("downcase", "X")
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}

func TestContext_Drops(t *testing.T) {
	t.Run("known keys are read lazily", func(t *testing.T) {
		d := &counterDrop{}
		ctx := NewContext(map[string]any{"d": d}, nil, nil)

		assert.Equal(t, 1, ctx.Get("d.count"))
		assert.Equal(t, 2, ctx.Get("d.count"))
		assert.Equal(t, "missing:other", ctx.Get("d.other"))
	})

	t.Run("context drop reads the rendering context", func(t *testing.T) {
		d := &viewerDrop{owner: "bob"}
		out := renderString(t, "{{ d.greeting }}|{{ d.name }}|{{ d.nothing }}",
			map[string]any{"d": d, "viewer": "alice", "name": "via context"})
		assert.Equal(t, "alice sees bob|via context|", out)
	})

	t.Run("shared context drop across concurrent renders", func(t *testing.T) {
		d := &viewerDrop{owner: "bob"}
		tmpl := MustParse("{% for i in list %}{{ d.greeting }};{% endfor %}")

		var wg sync.WaitGroup
		results := make([]string, 64)
		for n := range results {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				out, err := tmpl.Render(map[string]any{
					"d":      d,
					"viewer": fmt.Sprintf("v%d", n),
					"list":   []any{1, 2, 3},
				})
				if err == nil {
					results[n] = out
				}
			}(n)
		}
		wg.Wait()

		for n, out := range results {
			want := fmt.Sprintf("v%d sees bob;", n)
			assert.Equal(t, want+want+want, out)
		}
	})

	t.Run("func drop", func(t *testing.T) {
		calls := 0
		d := FuncDrop{
			"now": func() any { calls++; return calls },
			"child": func() any {
				return FuncDrop{"leaf": func() any { return "deep" }}
			},
		}
		out := renderString(t, "{{ d.now }}{{ d.now }} {{ d.child.leaf }} [{{ d.nothing }}]", map[string]any{"d": d})
		assert.Equal(t, "12 deep []", out)
	})

	t.Run("iterable drop", func(t *testing.T) {
		d := &listDrop{items: []any{"x", "y", "z"}}
		out := renderString(t, "{{ d.first }}{{ d.size }}{% for i in d %}{{ i }}{% endfor %}", map[string]any{"d": d})
		assert.Equal(t, "x3xyz", out)
	})
}
