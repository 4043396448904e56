package liquid

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/itsatony/go-liquid/internal"
)

// Template holds a parsed document together with the filters and
// collaborators used to render it. A parsed Template may be rendered by
// many goroutines at once; each render gets its own Context.
type Template struct {
	config *templateConfig

	mu      sync.RWMutex
	root    *Document
	filters []FilterSet
}

// New creates an empty template. Invalid options are reported here.
func New(opts ...Option) (*Template, error) {
	config := defaultTemplateConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.err != nil {
		return nil, config.err
	}
	config.finish()

	t := &Template{config: config}
	if config.standardFilters {
		t.filters = append(t.filters, StandardFilters())
	}
	t.filters = append(t.filters, config.filters...)
	return t, nil
}

// MustParse creates and parses a template, panicking on error
func MustParse(source string, opts ...Option) *Template {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	if _, err := t.Parse(source); err != nil {
		panic(err)
	}
	return t
}

// Tokenize splits source into literal, tag and variable tokens using the
// default delimiters. Concatenating the result reproduces source.
func Tokenize(source string) []string {
	return internal.Strings(internal.Tokenize(source, nil, nil))
}

// Parse builds the document for source, replacing any previous one.
// It returns t so calls can be chained.
func (t *Template) Parse(source string) (*Template, error) {
	return t.ParseContext(context.Background(), source)
}

// ParseContext is Parse with a context passed to the file system when
// includes are loaded.
func (t *Template) ParseContext(ctx context.Context, source string) (*Template, error) {
	p := newParser(ctx, source, t.config, 0)
	doc, err := p.parseDocument()
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.root = doc
	t.mu.Unlock()

	t.config.logger.Debug(LogMsgTemplateParsed,
		zap.Int(LogFieldTokens, len(p.tokens)),
		zap.Int(LogFieldNodes, len(doc.Nodes)))
	return t, nil
}

// Root returns the parsed document, or nil before Parse
func (t *Template) Root() *Document {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// RegisterFilter adds a filter set to every subsequent render. It wins
// over previously registered sets on name collisions.
func (t *Template) RegisterFilter(set FilterSet) {
	if len(set) == 0 {
		return
	}
	t.mu.Lock()
	t.filters = append(t.filters, set)
	t.mu.Unlock()
}

// Render renders the parsed document against assigns in a fresh Context.
func (t *Template) Render(assigns map[string]any, opts ...RenderOption) (string, error) {
	rc := &renderConfig{}
	for _, opt := range opts {
		opt(rc)
	}

	t.mu.RLock()
	root := t.root
	filters := make([]FilterSet, len(t.filters))
	copy(filters, t.filters)
	t.mu.RUnlock()

	if root == nil {
		return "", NewNotParsedError()
	}

	ctx := NewContext(assigns, rc.registers, t.config.logger)
	ctx.AddFilters(filters...)
	ctx.AddFilters(rc.filters...)

	out, err := root.Render(ctx)
	if err != nil {
		return "", err
	}

	t.config.logger.Debug(LogMsgTemplateRendered,
		zap.Int(LogFieldBytes, len(out)),
		zap.Int(LogFieldFilters, len(filters)+len(rc.filters)))
	return out, nil
}
