package liquid

import (
	"regexp"
)

var captureSyntax = regexp.MustCompile(patternCapture)

// CaptureTag renders its body and binds the output string in the
// enclosing scope.
type CaptureTag struct {
	Block
	To string
}

func newCaptureTag(p *Parser, markup string, pos Position) (Node, error) {
	m := captureSyntax.FindStringSubmatch(markup)
	if m == nil {
		return nil, NewSyntaxError(ErrMsgCaptureSyntax, TagCapture, markup, pos)
	}
	t := &CaptureTag{Block: Block{Name: TagCapture}, To: m[1]}
	if err := p.ParseBlock(t, pos); err != nil {
		return nil, err
	}
	return t, nil
}

// Render implements Node
func (t *CaptureTag) Render(ctx *Context) (string, error) {
	ctx.Push()
	out, err := renderNodes(ctx, t.Nodes)
	ctx.Pop()
	if err != nil {
		return "", err
	}
	ctx.Set(t.To, out)
	return "", nil
}

// CommentTag discards its body
type CommentTag struct {
	Block
}

func newCommentTag(p *Parser, _ string, pos Position) (Node, error) {
	t := &CommentTag{Block: Block{Name: TagComment}}
	if err := p.ParseBlock(t, pos); err != nil {
		return nil, err
	}
	return t, nil
}

// AppendNode drops body nodes
func (t *CommentTag) AppendNode(Node) {}

// UnknownTag accepts any tag inside a comment
func (t *CommentTag) UnknownTag(*Parser, string, string, Position) error {
	return nil
}

// Render implements Node
func (t *CommentTag) Render(*Context) (string, error) {
	return "", nil
}
