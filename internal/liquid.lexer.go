package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Lexer splits template source into literal, tag and variable tokens.
// Concatenating the produced token values always reproduces the source.
type Lexer struct {
	source  string
	grammar *Grammar
	logger  *zap.Logger
	tokens  []Token
	pos     Position // position of the next emitted token
}

// NewLexer creates a lexer for source using grammar
func NewLexer(source string, grammar *Grammar, logger *zap.Logger) *Lexer {
	if grammar == nil {
		grammar = DefaultGrammar()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lexer{
		source:  source,
		grammar: grammar,
		logger:  logger,
		pos:     Position{Offset: 0, Line: 1, Column: 1},
	}
}

// Tokenize is a convenience wrapper around NewLexer(...).Tokenize()
func Tokenize(source string, grammar *Grammar, logger *zap.Logger) []Token {
	return NewLexer(source, grammar, logger).Tokenize()
}

// Tokenize scans the whole source. An opening delimiter without a matching
// closing delimiter before the next opening delimiter (or end of input) is
// not an error here: it starts a new literal token, leaving well-formedness
// to the parser.
func (l *Lexer) Tokenize() []Token {
	l.logger.Debug(LogMsgTokenizerStart, zap.Int(LogFieldSource, len(l.source)))
	l.tokens = make([]Token, 0)

	start := 0
	cursor := 0
	for {
		at, opener, closer, kind := l.nextOpening(cursor)
		if at < 0 {
			break
		}
		bodyStart := at + len(opener)
		end := l.closingIndex(bodyStart, closer)
		if end < 0 {
			l.emit(TokenKindLiteral, start, at)
			l.logger.Debug(LogMsgUnterminatedSpan,
				zap.Int(LogFieldLine, l.pos.Line),
				zap.Int(LogFieldColumn, l.pos.Column))
			start = at
			cursor = bodyStart
			continue
		}
		l.emit(TokenKindLiteral, start, at)
		l.emit(kind, at, end)
		start = end
		cursor = end
	}
	l.emit(TokenKindLiteral, start, len(l.source))

	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(l.tokens)))
	return l.tokens
}

// nextOpening finds the nearest opening delimiter at or after from
func (l *Lexer) nextOpening(from int) (at int, opener, closer string, kind TokenKind) {
	rest := l.source[from:]
	tagAt := strings.Index(rest, l.grammar.TagStart)
	varAt := strings.Index(rest, l.grammar.VariableStart)

	switch {
	case tagAt < 0 && varAt < 0:
		return -1, "", "", TokenKindLiteral
	case varAt < 0 || (tagAt >= 0 && tagAt < varAt):
		return from + tagAt, l.grammar.TagStart, l.grammar.TagEnd, TokenKindTag
	default:
		return from + varAt, l.grammar.VariableStart, l.grammar.VariableEnd, TokenKindVariable
	}
}

// closingIndex returns the end offset of the span whose body starts at
// bodyStart, or -1 when the span is unterminated.
func (l *Lexer) closingIndex(bodyStart int, closer string) int {
	rest := l.source[bodyStart:]
	idx := strings.Index(rest, closer)
	if idx < 0 {
		return -1
	}
	body := rest[:idx]
	if strings.Contains(body, l.grammar.TagStart) || strings.Contains(body, l.grammar.VariableStart) {
		return -1
	}
	return bodyStart + idx + len(closer)
}

// emit appends source[from:to] as a token, dropping empty slices
func (l *Lexer) emit(kind TokenKind, from, to int) {
	if from >= to {
		return
	}
	value := l.source[from:to]
	l.tokens = append(l.tokens, Token{Kind: kind, Value: value, Position: l.pos})
	l.pos = l.pos.advance(value)
}
