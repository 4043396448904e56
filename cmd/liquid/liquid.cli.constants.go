package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameTokens   = "tokens"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagConfig   = "config"
	FlagOutput   = "output"
	FlagFormat   = "format"
	FlagVerbose  = "verbose"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagConfigShort   = "c"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
	FlagVerboseShort  = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Data file extensions decoded as YAML; everything else is JSON
const (
	DataExtYAML = ".yaml"
	DataExtYML  = ".yml"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgInvalidData         = "invalid data"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgParseTemplateFailed = "template parsing failed"
	ErrMsgRenderFailed        = "template rendering failed"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgConfigFailed        = "failed to load configuration"
)

// Help text templates
const (
	HelpMainUsage = `go-liquid - Liquid template rendering CLI

Usage:
    liquid <command> [options]

Commands:
    render      Render a template with data
    validate    Parse a template and report the first error
    tokens      Print the token stream of a template
    version     Show version information
    help        Show help for a command

Use "liquid help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

Usage:
    liquid render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <json>       JSON data string
    -f, --data-file <file>  JSON or YAML (.yaml, .yml) data file
    -c, --config <file>     YAML configuration (file system, delimiters, filter scripts)
    -o, --output <file>     Output file (default: stdout)
    -v, --verbose           Log parse and render details to stderr

Examples:
    liquid render -t page.liquid -d '{"name": "Alice"}'
    liquid render -t page.liquid -f data.yaml -c liquid.yaml
    cat page.liquid | liquid render -t - -d '{"name": "Bob"}'
    liquid render -t page.liquid -f data.json -o page.html`

	HelpValidateUsage = `Parse a template and report the first error

Usage:
    liquid validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -c, --config <file>     YAML configuration (needed to resolve includes)
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    liquid validate -t page.liquid
    liquid validate -t page.liquid -c liquid.yaml -F json
    cat page.liquid | liquid validate -t -`

	HelpTokensUsage = `Print the token stream of a template

Usage:
    liquid tokens [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)`

	HelpVersionUsage = `Show version information

Usage:
    liquid version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    liquid help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    tokens      Show help for tokens command
    version     Show help for version command`
)

// Version output
const (
	VersionTextTemplate   = "go-liquid %s\nRevision: %s\nBuilt: %s\nGo: %s\nTags: %s\nFilters: %d standard"
	VersionUnknown        = "unknown"
	VersionDevel          = "(devel)"
	VersionModifiedSuffix = " (modified)"
	VersionListSep        = ", "
)

// Build settings recorded by the go command
const (
	BuildSettingRevision = "vcs.revision"
	BuildSettingTime     = "vcs.time"
	BuildSettingModified = "vcs.modified"
)

// Validation output format templates
const (
	ValidationTextSuccess = "Template is valid"
	ValidationTextFailure = "[%s] %s at line %d, column %d"
)

// CLI metadata
const (
	CLIName = "liquid"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
