package liquid

import (
	"regexp"
	"strings"

	"github.com/itsatony/go-liquid/internal"
)

var forSyntax = regexp.MustCompile(patternFor)

// ForTag renders its body once per element of a collection.
//
//	{% for item in collection limit: 2 offset: continue %}...{% endfor %}
//
// With limit or offset present, the index after the last consumed element
// is stored in the for register under the loop name, so a later loop over
// the same item and collection can resume with offset: continue.
type ForTag struct {
	Block
	Variable   string
	Collection string
	LoopName   string
	Limit      string
	Offset     string
}

func newForTag(p *Parser, markup string, pos Position) (Node, error) {
	m := forSyntax.FindStringSubmatch(markup)
	if m == nil {
		return nil, NewSyntaxError(ErrMsgForSyntax, TagFor, markup, pos)
	}

	t := &ForTag{
		Block:      Block{Name: TagFor},
		Variable:   m[1],
		Collection: m[2],
		LoopName:   m[1] + ForloopNameSep + m[2],
	}
	for _, attr := range internal.TagAttributes(markup[len(m[0]):]) {
		switch attr.Key {
		case AttrLimit:
			t.Limit = attr.Value
		case AttrOffset:
			t.Offset = attr.Value
		}
	}

	if err := p.ParseBlock(t, pos); err != nil {
		return nil, err
	}
	return t, nil
}

// Render implements Node
func (t *ForTag) Render(ctx *Context) (string, error) {
	items, ok := internal.Sequence(ctx.Get(t.Collection))
	if !ok || len(items) == 0 {
		return "", nil
	}

	if t.Limit != "" || t.Offset != "" {
		items = t.segment(ctx, items)
		if len(items) == 0 {
			return "", nil
		}
	}

	ctx.Push()
	defer ctx.Pop()

	var sb strings.Builder
	length := len(items)
	for i, item := range items {
		ctx.Set(t.Variable, item)
		ctx.Set(ForloopVariable, map[string]any{
			ForloopName:    t.LoopName,
			ForloopLength:  length,
			ForloopIndex:   i + 1,
			ForloopIndex0:  i,
			ForloopRindex:  length - i,
			ForloopRindex0: length - i - 1,
			ForloopFirst:   boolFlag(i == 0),
			ForloopLast:    boolFlag(i == length-1),
		})
		out, err := renderNodes(ctx, t.Nodes)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// segment applies offset and limit and records where the loop stopped
func (t *ForTag) segment(ctx *Context, items []any) []any {
	reg := ctx.Registers(RegisterFor)

	offset := 0
	if t.Offset == KeywordContinue {
		offset, _ = reg[t.LoopName].(int)
	} else if t.Offset != "" {
		offset, _ = internal.ToInt(ctx.Get(t.Offset))
	}
	offset = clamp(offset, 0, len(items))

	// A zero or unresolvable limit consumes the rest of the collection.
	end := len(items)
	if t.Limit != "" {
		if limit, ok := internal.ToInt(ctx.Get(t.Limit)); ok && limit != 0 {
			end = clamp(offset+limit, offset, len(items))
		}
	}

	reg[t.LoopName] = end
	return items[offset:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
