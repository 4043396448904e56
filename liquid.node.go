package liquid

import (
	"strings"
)

// Node is one unit of a parsed template. Nodes are immutable after
// parsing and may be rendered by many goroutines at once, each with its
// own Context.
type Node interface {
	Render(ctx *Context) (string, error)
}

// Text is literal template text, rendered verbatim
type Text string

// Render implements Node
func (t Text) Render(*Context) (string, error) {
	return string(t), nil
}

// BlockHandler receives the nodes of a block while the parser consumes
// its body. Blocks recognising auxiliary keywords (else, when) do so in
// UnknownTag.
type BlockHandler interface {
	BlockName() string
	Delimiter() string
	AppendNode(n Node)
	UnknownTag(p *Parser, name, markup string, pos Position) error
}

// Block is the embeddable base of block tags: it collects body nodes and
// applies the default unknown-tag policy.
type Block struct {
	Name  string
	Nodes []Node
}

// BlockName implements BlockHandler
func (b *Block) BlockName() string {
	return b.Name
}

// Delimiter returns the tag name closing the block
func (b *Block) Delimiter() string {
	return EndTagPrefix + b.Name
}

// AppendNode implements BlockHandler
func (b *Block) AppendNode(n Node) {
	b.Nodes = append(b.Nodes, n)
}

// UnknownTag rejects every tag the registry does not know
func (b *Block) UnknownTag(_ *Parser, name, _ string, pos Position) error {
	switch name {
	case KeywordElse:
		return NewUnexpectedElseError(b.Name, pos)
	case KeywordEnd:
		return NewInvalidDelimiterError(b.Name, b.Delimiter(), pos)
	default:
		return NewUnknownTagError(name, pos)
	}
}

// Render renders the body in order
func (b *Block) Render(ctx *Context) (string, error) {
	return renderNodes(ctx, b.Nodes)
}

func renderNodes(ctx *Context, nodes []Node) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		out, err := n.Render(ctx)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// Document is the root block of a template. It has no closing tag and
// ends with the input.
type Document struct {
	Block
}

func newDocument() *Document {
	return &Document{Block: Block{Name: BlockDocument}}
}

// Delimiter is empty: no tag closes a document
func (d *Document) Delimiter() string {
	return ""
}
