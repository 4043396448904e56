package liquid

import (
	"time"

	"github.com/itsatony/go-liquid/internal"
)

// Standard tag names
const (
	TagAssign  = "assign"
	TagCapture = "capture"
	TagComment = "comment"
	TagCycle   = "cycle"
	TagFor     = "for"
	TagIf      = "if"
	TagUnless  = "unless"
	TagCase    = "case"
	TagInclude = "include"
)

// Auxiliary keywords recognised inside blocks and tag markup
const (
	KeywordElse     = "else"
	KeywordWhen     = "when"
	KeywordEnd      = "end"
	KeywordWith     = "with"
	KeywordFor      = "for"
	KeywordOr       = "or"
	KeywordContinue = "continue"
	KeywordEmpty    = "empty"
	EndTagPrefix    = "end"
	BlockDocument   = "document"
)

// Tag attribute names
const (
	AttrLimit  = "limit"
	AttrOffset = "offset"
)

// Register namespaces used by stateful tags
const (
	RegisterCycle = "cycle"
	RegisterFor   = "for"
)

// Loop metadata bound inside every for body
const (
	ForloopVariable = "forloop"
	ForloopName     = "name"
	ForloopLength   = "length"
	ForloopIndex    = "index"
	ForloopIndex0   = "index0"
	ForloopRindex   = "rindex"
	ForloopRindex0  = "rindex0"
	ForloopFirst    = "first"
	ForloopLast     = "last"
	ForloopNameSep  = "-"
)

// Comparison operators
const (
	OpEqual        = "=="
	OpNotEqual     = "!="
	OpGreater      = ">"
	OpLess         = "<"
	OpGreaterEqual = ">="
	OpLessEqual    = "<="
)

// Tag markup grammar
const (
	patternAssign       = `(?s)^(\w+)\s*=\s*(.+)$`
	patternCapture      = `^(\w+)$`
	patternCycleNamed   = `(?s)^(` + internal.PatternQuotedFragment + `)\s*:\s*(.*)$`
	patternFor          = `^(\w+)\s+in\s+(` + internal.PatternQuotedFragment + `)`
	patternCondition    = `(?s)^(` + internal.PatternQuotedFragment + `)\s*([=!<>]+)?\s*(` + internal.PatternQuotedFragment + `)?\s*$`
	patternInclude      = `^("[^"]+"|'[^']+')(?:\s+(with|for)\s+(` + internal.PatternQuotedFragment + `))?`
	patternTemplateName = `^[a-zA-Z0-9_]+(/[a-zA-Z0-9_]+)*$`
)

// File system naming
const (
	TemplateFilePrefix    = "_"
	TemplateFileExtension = ".liquid"
	TemplatePathSeparator = "/"
)

// File system driver names
const (
	FileSystemDriverLocal    = "local"
	FileSystemDriverMemory   = "memory"
	FileSystemDriverPostgres = "postgres"
)

// PostgreSQL defaults
const (
	PostgresDriverName             = "postgres"
	PostgresTablePrefix            = "liquid_"
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)

// Cache defaults
const (
	CacheDefaultTTL         = 5 * time.Minute
	CacheDefaultMaxEntries  = 1000
	CacheDefaultNegativeTTL = 30 * time.Second
)

// Engine defaults
const (
	DefaultMaxIncludeDepth = 32
)

// Error codes
const (
	ErrCodeSyntax     = "LIQUID_SYNTAX"
	ErrCodeSemantic   = "LIQUID_SEMANTIC"
	ErrCodeResolution = "LIQUID_RESOLUTION"
	ErrCodeFilter     = "LIQUID_FILTER"
	ErrCodeConfig     = "LIQUID_CONFIG"
)

// Error messages - parsing
const (
	ErrMsgMalformedTag      = "tag was not properly terminated"
	ErrMsgUnterminatedBlock = "tag was never closed"
	ErrMsgUnknownTag        = "unknown tag"
	ErrMsgUnexpectedElse    = "block does not expect else tag"
	ErrMsgInvalidDelimiter  = "'end' is not a valid delimiter, use"
	ErrMsgDuplicateElse     = "block does not expect a second else tag"
	ErrMsgAssignSyntax      = "syntax error in 'assign' - valid syntax: assign [var] = [source]"
	ErrMsgCaptureSyntax     = "syntax error in 'capture' - valid syntax: capture [var]"
	ErrMsgCycleSyntax       = "syntax error in 'cycle' - valid syntax: cycle [name :] var [, var2, var3 ...]"
	ErrMsgForSyntax         = "syntax error in 'for' - valid syntax: for [item] in [collection]"
	ErrMsgIfSyntax          = "syntax error in 'if' - valid syntax: if [condition]"
	ErrMsgUnlessSyntax      = "syntax error in 'unless' - valid syntax: unless [condition]"
	ErrMsgCaseSyntax        = "syntax error in 'case' - valid syntax: case [condition]"
	ErrMsgWhenSyntax        = "syntax error in 'when' - valid syntax: when [condition]"
	ErrMsgIncludeSyntax     = "syntax error in 'include' - valid syntax: include '[template]' (with|for) [object|collection]"
	ErrMsgUnknownOperator   = "unknown comparison operator"
	ErrMsgInvalidDelimiters = "invalid template delimiters"
)

// Error messages - rendering
const (
	ErrMsgNotComparable  = "value cannot be converted to a string for comparison"
	ErrMsgFilterFailed   = "filter failed"
	ErrMsgNotParsed      = "template has not been parsed"
	ErrMsgIncludeFailed  = "include failed"
	ErrMsgIncludeTooDeep = "include nesting is too deep"
)

// Error messages - file systems
const (
	ErrMsgNoFileSystem             = "this liquid context does not allow includes"
	ErrMsgIllegalTemplateName      = "illegal template name"
	ErrMsgIllegalTemplatePath      = "illegal template path"
	ErrMsgTemplateNotFound         = "template not found"
	ErrMsgTemplateReadFailed       = "failed to read template file"
	ErrMsgEmptyTemplateName        = "template name cannot be empty"
	ErrMsgFileSystemClosed         = "file system is closed"
	ErrMsgNilFileSystemDriver      = "file system driver is nil"
	ErrMsgDriverAlreadyRegistered  = "file system driver already registered"
	ErrMsgFileSystemDriverNotFound = "file system driver not found"
	ErrMsgInvalidRoot              = "file system root is not a directory"
)

// Error messages - PostgreSQL
const (
	ErrMsgPostgresConnectionFailed = "failed to connect to PostgreSQL"
	ErrMsgPostgresQueryFailed      = "PostgreSQL query failed"
	ErrMsgPostgresMigrationFailed  = "PostgreSQL migration failed"
	ErrMsgPostgresEmptyConnString  = "PostgreSQL connection string is empty"
	ErrMsgPostgresAlreadyClosed    = "PostgreSQL file system is already closed"
)

// Error messages - configuration and scripted filters
const (
	ErrMsgConfigRead        = "failed to read configuration file"
	ErrMsgConfigParse       = "failed to parse configuration file"
	ErrMsgConfigFileSystem  = "failed to open configured file system"
	ErrMsgConfigDelimiters  = "delimiters need exactly an opening and a closing string"
	ErrMsgScriptLoad        = "failed to load filter script"
	ErrMsgScriptExec        = "failed to execute filter script"
	ErrMsgScriptUnsupported = "filter script returned an unsupported value"
)

// Error formatting
const (
	FmtErrorSubject = "%s: %s"
	FmtErrorUse     = "%s %s"
)

// Metadata keys for errors
const (
	MetaKeyKind     = "kind"
	MetaKeyTag      = "tag"
	MetaKeyMarkup   = "markup"
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyOperator = "operator"
	MetaKeyFilter   = "filter"
	MetaKeyTemplate = "template"
	MetaKeyPath     = "path"
	MetaKeyValue    = "value"
	MetaKeyDriver   = "driver"
)

// Log messages
const (
	LogMsgTemplateParsed   = "template parsed"
	LogMsgTemplateRendered = "template rendered"
	LogMsgBlockParsed      = "block parsed"
	LogMsgTagReplaced      = "tag factory replaced"
	LogMsgTagRegistered    = "tag factory registered"
	LogMsgFilterMissing    = "filter not registered, passing value through"
	LogMsgScopeUnderflow   = "pop on root scope ignored"
	LogMsgIncludeLoaded    = "included template loaded"
	LogMsgCacheHit         = "template file cache hit"
	LogMsgCacheMiss        = "template file cache miss"
	LogMsgFileRead         = "template file read"
	LogMsgScriptLoaded     = "filter script loaded"
)

// Log field names
const (
	LogFieldTag      = "tag"
	LogFieldBlock    = "block"
	LogFieldNodes    = "node_count"
	LogFieldFilter   = "filter"
	LogFieldTemplate = "template"
	LogFieldPath     = "path"
	LogFieldTokens   = "token_count"
	LogFieldBytes    = "bytes"
	LogFieldFilters  = "filter_count"
	LogFieldScript   = "script"
)
