package liquid

import (
	"strings"

	"github.com/itsatony/go-liquid/internal"
)

// caseState tracks which body a case block is collecting
type caseState int

const (
	caseStatePreamble caseState = iota
	caseStateWhen
	caseStateElse
)

// WhenClause is one when branch. The body renders when the case value
// equals any of Values.
type WhenClause struct {
	Values []string
	Nodes  []Node
}

// CaseTag compares a value against when clauses. Every matching clause
// renders, in declaration order; else renders when none matched. Content
// before the first when is discarded.
//
//	{% case status %}{% when 'open' %}...{% when 'closed', 'done' %}...{% else %}...{% endcase %}
type CaseTag struct {
	Block
	Left  string
	Whens []*WhenClause
	Else  []Node
	state caseState
}

func newCaseTag(p *Parser, markup string, pos Position) (Node, error) {
	left, ok := internal.FirstQuotedFragment(markup)
	if !ok {
		return nil, NewSyntaxError(ErrMsgCaseSyntax, TagCase, markup, pos)
	}
	t := &CaseTag{Block: Block{Name: TagCase}, Left: left}
	if err := p.ParseBlock(t, pos); err != nil {
		return nil, err
	}
	return t, nil
}

// AppendNode adds n to the clause being collected
func (t *CaseTag) AppendNode(n Node) {
	switch t.state {
	case caseStateWhen:
		clause := t.Whens[len(t.Whens)-1]
		clause.Nodes = append(clause.Nodes, n)
	case caseStateElse:
		t.Else = append(t.Else, n)
	}
}

// UnknownTag opens when and else clauses
func (t *CaseTag) UnknownTag(p *Parser, name, markup string, pos Position) error {
	switch name {
	case KeywordWhen:
		if t.state == caseStateElse {
			return NewSyntaxError(ErrMsgWhenSyntax, KeywordWhen, markup, pos)
		}
		values := whenValues(markup)
		if len(values) == 0 {
			return NewSyntaxError(ErrMsgWhenSyntax, KeywordWhen, markup, pos)
		}
		t.Whens = append(t.Whens, &WhenClause{Values: values})
		t.state = caseStateWhen
		return nil
	case KeywordElse:
		if t.state == caseStateElse {
			return NewDuplicateElseError(t.Name, pos)
		}
		t.state = caseStateElse
		return nil
	}
	return t.Block.UnknownTag(p, name, markup, pos)
}

// whenValues splits "a, b or c" into its alternatives
func whenValues(markup string) []string {
	fragments := internal.QuotedFragments(markup)
	values := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != KeywordOr {
			values = append(values, f)
		}
	}
	return values
}

// Render implements Node
func (t *CaseTag) Render(ctx *Context) (string, error) {
	var sb strings.Builder
	matched := false
	for _, clause := range t.Whens {
		ok, err := t.matches(ctx, clause)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		matched = true
		s, err := renderScoped(ctx, clause.Nodes)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	if matched || t.Else == nil {
		return sb.String(), nil
	}
	return renderScoped(ctx, t.Else)
}

func (t *CaseTag) matches(ctx *Context, clause *WhenClause) (bool, error) {
	for _, value := range clause.Values {
		ok, err := Condition{Left: t.Left, Operator: OpEqual, Right: value}.Evaluate(ctx)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func renderScoped(ctx *Context, nodes []Node) (string, error) {
	ctx.Push()
	defer ctx.Pop()
	return renderNodes(ctx, nodes)
}
