package liquid

import (
	"regexp"
)

var assignSyntax = regexp.MustCompile(patternAssign)

// AssignTag binds a value in the innermost scope:
//
//	{% assign name = source | filter %}
type AssignTag struct {
	To   string
	From *Variable
}

func newAssignTag(_ *Parser, markup string, pos Position) (Node, error) {
	m := assignSyntax.FindStringSubmatch(markup)
	if m == nil {
		return nil, NewSyntaxError(ErrMsgAssignSyntax, TagAssign, markup, pos)
	}
	from := ParseVariable(m[2])
	if from.Name == "" {
		return nil, NewSyntaxError(ErrMsgAssignSyntax, TagAssign, markup, pos)
	}
	return &AssignTag{To: m[1], From: from}, nil
}

// Render implements Node
func (t *AssignTag) Render(ctx *Context) (string, error) {
	value, err := t.From.Evaluate(ctx)
	if err != nil {
		return "", err
	}
	ctx.Set(t.To, value)
	return "", nil
}
