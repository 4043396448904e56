package liquid

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/itsatony/go-liquid/internal"
)

var includeSyntax = regexp.MustCompile(patternInclude)

// IncludeTag renders another template, loaded and parsed once when the
// including template is parsed.
//
//	{% include 'product' with featured %}
//	{% include 'product' for products %}
//	{% include 'footer' year: 2024 %}
//
// The with/for value is bound to the last path segment of the template name.
type IncludeTag struct {
	TemplateName string
	Variable     string
	Collection   bool
	Attributes   []internal.Attribute
	Document     *Document
}

func newIncludeTag(p *Parser, markup string, pos Position) (Node, error) {
	m := includeSyntax.FindStringSubmatch(markup)
	if m == nil {
		return nil, NewSyntaxError(ErrMsgIncludeSyntax, TagInclude, markup, pos)
	}
	name, _ := internal.Unquote(m[1])

	t := &IncludeTag{
		TemplateName: name,
		Variable:     m[3],
		Collection:   m[2] == KeywordFor,
		Attributes:   internal.TagAttributes(markup[len(m[0]):]),
	}

	fs := p.FileSystem()
	if fs == nil {
		return nil, NewIncludeError(name, pos, NewNoFileSystemError(name))
	}
	source, err := fs.ReadTemplateFile(p.Context(), name)
	if err != nil {
		return nil, NewIncludeError(name, pos, err)
	}
	doc, err := p.ParseDocument(name, source, pos)
	if err != nil {
		return nil, err
	}
	t.Document = doc

	p.Logger().Debug(LogMsgIncludeLoaded,
		zap.String(LogFieldTemplate, name),
		zap.Int(LogFieldBytes, len(source)))
	return t, nil
}

// ParameterName is the variable the with/for value is bound to
func (t *IncludeTag) ParameterName() string {
	if i := strings.LastIndex(t.TemplateName, TemplatePathSeparator); i >= 0 {
		return t.TemplateName[i+1:]
	}
	return t.TemplateName
}

// Render implements Node
func (t *IncludeTag) Render(ctx *Context) (string, error) {
	ctx.Push()
	defer ctx.Pop()

	for _, attr := range t.Attributes {
		ctx.Set(attr.Key, ctx.Get(attr.Value))
	}

	if t.Variable == "" {
		return t.Document.Render(ctx)
	}

	value := ctx.Get(t.Variable)
	if !t.Collection {
		ctx.Set(t.ParameterName(), value)
		return t.Document.Render(ctx)
	}

	if value == nil {
		return "", nil
	}
	items, ok := internal.Sequence(value)
	if !ok {
		items = []any{value}
	}

	var sb strings.Builder
	for _, item := range items {
		ctx.Set(t.ParameterName(), item)
		out, err := t.Document.Render(ctx)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}
