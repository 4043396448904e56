package liquid

import (
	"context"

	"go.uber.org/zap"

	"github.com/itsatony/go-liquid/internal"
)

// Parser turns a token stream into a node tree. Tag factories receive the
// parser so block tags can consume their own bodies through ParseBlock and
// include can load nested templates.
type Parser struct {
	ctx    context.Context
	tokens []internal.Token
	pos    int
	config *templateConfig
	depth  int
}

func newParser(ctx context.Context, source string, config *templateConfig, depth int) *Parser {
	tokens := internal.Tokenize(source, config.grammar, config.logger)
	return &Parser{
		ctx:    ctx,
		tokens: tokens,
		config: config,
		depth:  depth,
	}
}

// Context returns the context the parse was started with
func (p *Parser) Context() context.Context {
	return p.ctx
}

// FileSystem returns the collaborator used to load included templates
func (p *Parser) FileSystem() FileSystem {
	return p.config.fileSystem
}

// Logger returns the parse logger
func (p *Parser) Logger() *zap.Logger {
	return p.config.logger
}

// Depth returns the include nesting level, 0 for the top-level template
func (p *Parser) Depth() int {
	return p.depth
}

func (p *Parser) next() (internal.Token, bool) {
	if p.pos >= len(p.tokens) {
		return internal.Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *Parser) parseDocument() (*Document, error) {
	doc := newDocument()
	if err := p.ParseBlock(doc, Position{Offset: 0, Line: 1, Column: 1}); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseDocument parses source as a nested template sharing this parser's
// grammar, tags and file system, one include level deeper.
func (p *Parser) ParseDocument(name, source string, pos Position) (*Document, error) {
	if p.depth >= p.config.maxIncludeDepth {
		return nil, NewIncludeDepthError(name, p.depth+1, pos)
	}
	return newParser(p.ctx, source, p.config, p.depth+1).parseDocument()
}

// ParseBlock consumes tokens into b until its delimiter tag. Reaching the
// end of input finishes a Document and is an error for every other block.
// start is the position of the tag that opened b.
func (p *Parser) ParseBlock(b BlockHandler, start Position) error {
	grammar := p.config.grammar
	for {
		tok, ok := p.next()
		if !ok {
			if b.Delimiter() == "" {
				return nil
			}
			return NewUnterminatedBlockError(b.BlockName(), start)
		}

		switch tok.Kind {
		case internal.TokenKindTag:
			name, markup, ok := grammar.ParseTag(tok.Value)
			if !ok {
				return NewMalformedTagError(tok.Value, tok.Position)
			}
			if name == b.Delimiter() {
				p.config.logger.Debug(LogMsgBlockParsed, zap.String(LogFieldBlock, b.BlockName()))
				return nil
			}
			factory, found := p.config.tags.Lookup(name)
			if !found {
				if err := b.UnknownTag(p, name, markup, tok.Position); err != nil {
					return err
				}
				continue
			}
			node, err := factory(p, markup, tok.Position)
			if err != nil {
				return err
			}
			b.AppendNode(node)

		case internal.TokenKindVariable:
			markup, _ := grammar.VariableMarkup(tok.Value)
			b.AppendNode(ParseVariable(markup))

		default:
			if grammar.IsTagSpan(tok.Value) {
				return NewMalformedTagError(tok.Value, tok.Position)
			}
			b.AppendNode(Text(tok.Value))
		}
	}
}
