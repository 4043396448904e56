package liquid

// ifBranch selects which body an if block is currently collecting
type ifBranch int

const (
	ifBranchThen ifBranch = iota
	ifBranchElse
)

// IfTag renders one of two bodies depending on a condition. Unless is the
// same block with the condition negated.
//
//	{% if user.age >= 18 %}adult{% else %}minor{% endif %}
type IfTag struct {
	Block
	Condition Condition
	Negate    bool
	Then      []Node
	Else      []Node
	branch    ifBranch
}

func newIfTag(p *Parser, markup string, pos Position) (Node, error) {
	return parseIfBlock(p, TagIf, ErrMsgIfSyntax, false, markup, pos)
}

func newUnlessTag(p *Parser, markup string, pos Position) (Node, error) {
	return parseIfBlock(p, TagUnless, ErrMsgUnlessSyntax, true, markup, pos)
}

func parseIfBlock(p *Parser, name, syntaxMsg string, negate bool, markup string, pos Position) (Node, error) {
	cond, ok, err := parseCondition(markup, name, pos)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewSyntaxError(syntaxMsg, name, markup, pos)
	}

	t := &IfTag{Block: Block{Name: name}, Condition: cond, Negate: negate}
	if err := p.ParseBlock(t, pos); err != nil {
		return nil, err
	}
	return t, nil
}

// AppendNode adds n to the branch being collected
func (t *IfTag) AppendNode(n Node) {
	switch t.branch {
	case ifBranchThen:
		t.Then = append(t.Then, n)
	case ifBranchElse:
		t.Else = append(t.Else, n)
	}
}

// UnknownTag switches to the else branch on else
func (t *IfTag) UnknownTag(p *Parser, name, markup string, pos Position) error {
	if name != KeywordElse {
		return t.Block.UnknownTag(p, name, markup, pos)
	}
	if t.branch == ifBranchElse {
		return NewDuplicateElseError(t.Name, pos)
	}
	t.branch = ifBranchElse
	return nil
}

// Render implements Node
func (t *IfTag) Render(ctx *Context) (string, error) {
	ctx.Push()
	defer ctx.Pop()

	ok, err := t.Condition.Evaluate(ctx)
	if err != nil {
		return "", err
	}
	if ok != t.Negate {
		return renderNodes(ctx, t.Then)
	}
	return renderNodes(ctx, t.Else)
}
