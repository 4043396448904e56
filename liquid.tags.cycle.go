package liquid

import (
	"regexp"
	"strings"

	"github.com/itsatony/go-liquid/internal"
)

var cycleNamedSyntax = regexp.MustCompile(patternCycleNamed)

// CycleTag emits its values in rotation. Cycles resolving to the same name
// share one position, kept in the cycle register.
//
//	{% cycle 'odd', 'even' %}
//	{% cycle group: 'a', 'b', 'c' %}
type CycleTag struct {
	Name   string
	Values []string
}

func newCycleTag(_ *Parser, markup string, pos Position) (Node, error) {
	if m := cycleNamedSyntax.FindStringSubmatch(markup); m != nil {
		values := internal.QuotedFragments(m[2])
		if len(values) == 0 {
			return nil, NewSyntaxError(ErrMsgCycleSyntax, TagCycle, markup, pos)
		}
		return &CycleTag{Name: m[1], Values: values}, nil
	}

	values := internal.QuotedFragments(markup)
	if len(values) == 0 {
		return nil, NewSyntaxError(ErrMsgCycleSyntax, TagCycle, markup, pos)
	}
	// Unnamed cycles are keyed by their value list.
	name := string(internal.CharSingleQuote) + strings.Join(values, "") + string(internal.CharSingleQuote)
	return &CycleTag{Name: name, Values: values}, nil
}

// Render implements Node
func (t *CycleTag) Render(ctx *Context) (string, error) {
	ctx.Push()
	defer ctx.Pop()

	key := internal.ToString(ctx.Get(t.Name))
	reg := ctx.Registers(RegisterCycle)

	iteration, _ := reg[key].(int)
	if iteration >= len(t.Values) {
		iteration = 0
	}
	value := ctx.Get(t.Values[iteration])

	iteration++
	if iteration >= len(t.Values) {
		iteration = 0
	}
	reg[key] = iteration

	return internal.ToString(value), nil
}
