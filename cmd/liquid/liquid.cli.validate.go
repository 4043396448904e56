package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"go.uber.org/zap"

	"github.com/itsatony/go-liquid"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	configPath   string
	format       string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid bool                   `json:"valid"`
	Error *validationErrorOutput `json:"error,omitempty"`
}

type validationErrorOutput struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Tag     string `json:"tag,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	tmpl, err := newTemplate(cfg.configPath, zap.NewNop())
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return ExitCodeInputError
	}

	output := validationOutput{Valid: true}
	if _, err := tmpl.Parse(string(source)); err != nil {
		output.Valid = false
		output.Error = describeError(err)
	}

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(output, stdout)
	}
	return outputValidationText(output, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &validateConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

// describeError extracts kind, position and tag recorded on a template error
func describeError(err error) *validationErrorOutput {
	out := &validationErrorOutput{
		Kind:    string(liquid.KindOf(err)),
		Message: err.Error(),
	}

	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return out
	}
	if v, ok := customErr.GetMetadata(liquid.MetaKeyLine); ok {
		out.Line, _ = strconv.Atoi(v)
	}
	if v, ok := customErr.GetMetadata(liquid.MetaKeyColumn); ok {
		out.Column, _ = strconv.Atoi(v)
	}
	if v, ok := customErr.GetMetadata(liquid.MetaKeyTag); ok {
		out.Tag = v
	}
	return out
}

func outputValidationText(output validationOutput, stdout io.Writer) int {
	if output.Valid {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return ExitCodeSuccess
	}

	e := output.Error
	fmt.Fprintf(stdout, ValidationTextFailure+FmtNewline, e.Kind, e.Message, e.Line, e.Column)
	return ExitCodeValidationError
}

func outputValidationJSON(output validationOutput, stdout io.Writer) int {
	jsonBytes, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
