// Package liquid implements the Liquid template language: a safe,
// non-evaluating markup where templates can read host data but never run
// arbitrary code.
//
// Output is written with variables and logic with tags:
//
//	Hello {{ user.name | upcase }}!
//	{% for item in cart limit: 3 %}{{ forloop.index }}. {{ item.title }}{% endfor %}
//
// # Basic Usage
//
// Parse once, render many times:
//
//	tmpl := liquid.MustParse("Hello {{ name }}!")
//	out, err := tmpl.Render(map[string]any{"name": "Alice"})
//	// out: "Hello Alice!"
//
// # Built-in Tags
//
// assign, capture, comment, cycle, for, if, unless, case and include are
// registered by default. Add your own through a TagRegistry:
//
//	reg := liquid.StandardTagRegistry(nil)
//	reg.Register("shout", func(p *liquid.Parser, markup string, pos liquid.Position) (liquid.Node, error) {
//	    return liquid.Text(strings.ToUpper(markup)), nil
//	})
//	tmpl, _ := liquid.New(liquid.WithTagRegistry(reg))
//
// # Filters
//
// Filters are plain functions grouped in a FilterSet. Sets registered later
// win on name collisions; unknown filters pass their input through.
//
//	tmpl.RegisterFilter(liquid.FilterSet{
//	    "money": func(in any, _ ...any) (any, error) { return fmt.Sprintf("$%.2f", in), nil },
//	})
//
// Filters can also be written in Starlark with NewStarlarkFilters.
//
// # Drops
//
// Host objects expose data lazily by implementing Drop; BaseDrop supplies
// empty defaults. Drops that read other variables implement ContextDrop and
// receive the render Context with every property read.
//
// # Includes
//
// The include tag loads partials through a FileSystem: LocalFileSystem,
// MemoryFileSystem, PostgresFileSystem, or any of those wrapped in a
// CachedFileSystem. Templates without one refuse includes.
package liquid
