package liquid

import (
	"github.com/itsatony/go-liquid/internal"
)

// FilterCall is one filter of a variable's chain. Args are unresolved
// expressions, resolved against the context on every render.
type FilterCall struct {
	Name string
	Args []string
}

// Variable is an output expression followed by an ordered filter chain
type Variable struct {
	Name    string
	Filters []FilterCall
}

// ParseVariable parses the payload of a {{ }} span:
//
//	expr | filter: arg, arg | filter
//
// Whitespace around names and separators is insignificant and filter
// separators inside quoted literals are kept.
func ParseVariable(markup string) *Variable {
	segments := internal.SplitFilters(markup)
	name, _ := internal.FirstQuotedFragment(segments[0])

	v := &Variable{Name: name, Filters: make([]FilterCall, 0, len(segments)-1)}
	for _, segment := range segments[1:] {
		filterName, args, ok := internal.ParseFilter(segment)
		if !ok {
			continue
		}
		v.Filters = append(v.Filters, FilterCall{Name: filterName, Args: args})
	}
	return v
}

// Evaluate resolves the expression and pipes it through the filter chain
func (v *Variable) Evaluate(ctx *Context) (any, error) {
	value := ctx.Get(v.Name)
	for _, f := range v.Filters {
		args := make([]any, len(f.Args))
		for i, arg := range f.Args {
			args[i] = ctx.Get(arg)
		}
		var err error
		value, err = ctx.Invoke(f.Name, value, args...)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// Render implements Node
func (v *Variable) Render(ctx *Context) (string, error) {
	value, err := v.Evaluate(ctx)
	if err != nil {
		return "", err
	}
	return internal.ToString(value), nil
}
