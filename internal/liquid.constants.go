package internal

// TokenKind classifies a raw template token
type TokenKind string

// Token kind constants
const (
	TokenKindLiteral  TokenKind = "LITERAL"
	TokenKindTag      TokenKind = "TAG"
	TokenKindVariable TokenKind = "VARIABLE"
)

// Default delimiters
const (
	StrTagStart      = "{%"
	StrTagEnd        = "%}"
	StrVariableStart = "{{"
	StrVariableEnd   = "}}"
)

// Separators are fixed for every grammar; only delimiters are configurable.
const (
	StrFilterSeparator         = "|"
	StrFilterArgumentSeparator = ":"
	StrArgumentSeparator       = ","
	StrAttributeSeparator      = "."
)

// Character constants
const (
	CharNewline     = '\n'
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharPipe        = '|'
	CharMinus       = '-'
)

// Literal keywords recognised during resolution
const (
	KeywordTrue  = "true"
	KeywordFalse = "false"
	KeywordNil   = "nil"
	KeywordNull  = "null"
	KeywordEmpty = "empty"
)

// Sequence property names reachable through dotted paths
const (
	PropertySize  = "size"
	PropertyFirst = "first"
	PropertyLast  = "last"
)

// Map entries are exposed to loops as key/value pairs
const (
	PairKey   = "key"
	PairValue = "value"
)

// Regular expression building blocks. The quoted fragment is the unit for
// every value token: a quoted literal or a run of characters that are not
// whitespace, argument separators or filter separators.
const (
	PatternQuotedFragment = `"[^"]+"|'[^']+'|[^\s,|]+`
	PatternTagAttribute   = `(\w+)\s*:\s*(` + PatternQuotedFragment + `)`
	PatternFilterArgument = `(?::|,)\s*(` + PatternQuotedFragment + `)`
	PatternFilterName     = `^\s*(\w+)`
	PatternInteger        = `^-?\d+$`
	PatternDecimal        = `^-?\d+\.\d+$`
)

// Value formatting
const (
	FloatFormat    byte = 'f'
	FloatPrecision      = -1
	FloatBitSize        = 64
)

// Log messages
const (
	LogMsgTokenizerStart   = "tokenizing template source"
	LogMsgTokenizerEnd     = "tokenized template source"
	LogMsgUnterminatedSpan = "unterminated delimiter kept as literal text"
)

// Log field names
const (
	LogFieldSource = "source_length"
	LogFieldTokens = "token_count"
	LogFieldLine   = "line"
	LogFieldColumn = "column"
)

// Error messages
const (
	ErrMsgEmptyDelimiter      = "grammar delimiters must not be empty"
	ErrMsgAmbiguousDelimiters = "tag and variable opening delimiters must not overlap"
)
