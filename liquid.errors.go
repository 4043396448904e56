package liquid

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-liquid/internal"
)

// Position represents a location in the source template
type Position = internal.Position

// ErrorKind classifies fatal template errors
type ErrorKind string

// Error kinds
const (
	ErrorKindSyntax     ErrorKind = "syntax"
	ErrorKindSemantic   ErrorKind = "semantic"
	ErrorKindResolution ErrorKind = "resolution"
	ErrorKindFilter     ErrorKind = "filter"
	ErrorKindConfig     ErrorKind = "config"
)

// KindOf returns the kind recorded on err, or "" for foreign errors
func KindOf(err error) ErrorKind {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	kind, ok := customErr.GetMetadata(MetaKeyKind)
	if !ok {
		return ""
	}
	return ErrorKind(kind)
}

// IsSyntaxError reports whether err is a syntax error
func IsSyntaxError(err error) bool {
	return KindOf(err) == ErrorKindSyntax
}

// IsSemanticError reports whether err is a semantic error
func IsSemanticError(err error) bool {
	return KindOf(err) == ErrorKindSemantic
}

// IsResolutionError reports whether err is a resolution error
func IsResolutionError(err error) bool {
	return KindOf(err) == ErrorKindResolution
}

var kindCodes = map[ErrorKind]string{
	ErrorKindSyntax:     ErrCodeSyntax,
	ErrorKindSemantic:   ErrCodeSemantic,
	ErrorKindResolution: ErrCodeResolution,
	ErrorKindFilter:     ErrCodeFilter,
	ErrorKindConfig:     ErrCodeConfig,
}

var kindCategories = map[ErrorKind]cuserr.ErrorCategory{
	ErrorKindSyntax:     cuserr.ErrorCategoryValidation,
	ErrorKindSemantic:   cuserr.ErrorCategoryValidation,
	ErrorKindResolution: cuserr.ErrorCategoryNotFound,
	ErrorKindFilter:     cuserr.ErrorCategoryInternal,
	ErrorKindConfig:     cuserr.ErrorCategoryValidation,
}

// newError creates an error carrying the code and kind of its category
func newError(kind ErrorKind, msg string) *cuserr.CustomError {
	return cuserr.NewCustomErrorWithCategory(kindCategories[kind], kindCodes[kind], msg).
		WithMetadata(MetaKeyKind, string(kind))
}

// wrapError is newError keeping cause reachable through errors.Is and errors.As
func wrapError(kind ErrorKind, msg string, cause error) *cuserr.CustomError {
	return cuserr.WrapWithCustomError(cause, kindCategories[kind], kindCodes[kind], msg).
		WithMetadata(MetaKeyKind, string(kind))
}

func withPosition(err *cuserr.CustomError, pos Position) *cuserr.CustomError {
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

func subject(msg, name string) string {
	return fmt.Sprintf(FmtErrorSubject, msg, name)
}

// NewSyntaxError creates a syntax error for tag markup that does not match
// the tag's grammar. msg names the expected syntax.
func NewSyntaxError(msg, tagName, markup string, pos Position) error {
	return withPosition(newError(ErrorKindSyntax, msg), pos).
		WithMetadata(MetaKeyTag, tagName).
		WithMetadata(MetaKeyMarkup, markup)
}

// NewMalformedTagError creates an error for a tag span missing its closing delimiter
func NewMalformedTagError(raw string, pos Position) error {
	return withPosition(newError(ErrorKindSyntax, subject(ErrMsgMalformedTag, raw)), pos).
		WithMetadata(MetaKeyMarkup, raw)
}

// NewUnterminatedBlockError creates an error for a block reaching end of input
func NewUnterminatedBlockError(blockName string, pos Position) error {
	return withPosition(newError(ErrorKindSyntax, subject(ErrMsgUnterminatedBlock, blockName)), pos).
		WithMetadata(MetaKeyTag, blockName)
}

// NewUnknownTagError creates an error for a tag name with no registered factory
func NewUnknownTagError(tagName string, pos Position) error {
	return withPosition(newError(ErrorKindSemantic, subject(ErrMsgUnknownTag, tagName)), pos).
		WithMetadata(MetaKeyTag, tagName)
}

// NewUnexpectedElseError creates an error for an else inside a block that has no else branch
func NewUnexpectedElseError(blockName string, pos Position) error {
	return withPosition(newError(ErrorKindSemantic, subject(ErrMsgUnexpectedElse, blockName)), pos).
		WithMetadata(MetaKeyTag, blockName)
}

// NewDuplicateElseError creates an error for a second else in the same block
func NewDuplicateElseError(blockName string, pos Position) error {
	return withPosition(newError(ErrorKindSemantic, subject(ErrMsgDuplicateElse, blockName)), pos).
		WithMetadata(MetaKeyTag, blockName)
}

// NewInvalidDelimiterError creates an error for a bare end tag
func NewInvalidDelimiterError(blockName, delimiter string, pos Position) error {
	msg := subject(blockName, fmt.Sprintf(FmtErrorUse, ErrMsgInvalidDelimiter, delimiter))
	return withPosition(newError(ErrorKindSemantic, msg), pos).
		WithMetadata(MetaKeyTag, blockName)
}

// NewUnknownOperatorError creates an error for an unsupported comparison operator
func NewUnknownOperatorError(op, tagName string, pos Position) error {
	return withPosition(newError(ErrorKindSemantic, subject(ErrMsgUnknownOperator, op)), pos).
		WithMetadata(MetaKeyOperator, op).
		WithMetadata(MetaKeyTag, tagName)
}

// NewNotComparableError creates an error for comparing a value without a string form
func NewNotComparableError(expr string, value any) error {
	return newError(ErrorKindSemantic, subject(ErrMsgNotComparable, expr)).
		WithMetadata(MetaKeyMarkup, expr).
		WithMetadata(MetaKeyValue, fmt.Sprintf("%T", value))
}

// NewIncludeError wraps a failure to load an included template
func NewIncludeError(templateName string, pos Position, cause error) error {
	return withPosition(wrapError(ErrorKindResolution, subject(ErrMsgIncludeFailed, templateName), cause), pos).
		WithMetadata(MetaKeyTemplate, templateName)
}

// NewIncludeDepthError creates an error for includes nested beyond the configured limit
func NewIncludeDepthError(templateName string, depth int, pos Position) error {
	return withPosition(newError(ErrorKindResolution, subject(ErrMsgIncludeTooDeep, templateName)), pos).
		WithMetadata(MetaKeyTemplate, templateName).
		WithMetadata(MetaKeyValue, strconv.Itoa(depth))
}

// NewFilterError wraps an error returned by a filter function
func NewFilterError(filterName string, cause error) error {
	return wrapError(ErrorKindFilter, subject(ErrMsgFilterFailed, filterName), cause).
		WithMetadata(MetaKeyFilter, filterName)
}

// NewNotParsedError is returned when rendering a template that holds no document
func NewNotParsedError() error {
	return newError(ErrorKindSemantic, ErrMsgNotParsed)
}

// NewConfigError creates a configuration error
func NewConfigError(msg string, cause error) error {
	if cause != nil {
		return wrapError(ErrorKindConfig, msg, cause)
	}
	return newError(ErrorKindConfig, msg)
}

// FileSystemError represents a template file system failure
type FileSystemError struct {
	Message string
	Name    string
	Cause   error
}

// Error implements the error interface.
func (e *FileSystemError) Error() string {
	msg := e.Message
	if e.Name != "" {
		msg = subject(msg, e.Name)
	}
	if e.Cause != nil {
		msg = subject(msg, e.Cause.Error())
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *FileSystemError) Unwrap() error {
	return e.Cause
}

// NewTemplateNotFoundError creates an error for a missing template file
func NewTemplateNotFoundError(name string) error {
	return &FileSystemError{Message: ErrMsgTemplateNotFound, Name: name}
}

// NewNoFileSystemError creates the error returned when includes are disabled
func NewNoFileSystemError(name string) error {
	return &FileSystemError{Message: ErrMsgNoFileSystem, Name: name}
}

// NewFileSystemDriverNotFoundError creates an error for an unknown driver name
func NewFileSystemDriverNotFoundError(name string) error {
	return &FileSystemError{Message: ErrMsgFileSystemDriverNotFound, Name: name}
}

// NewFileSystemClosedError creates an error for use after Close
func NewFileSystemClosedError() error {
	return &FileSystemError{Message: ErrMsgFileSystemClosed}
}

// IsTemplateNotFound reports whether err means the template does not exist
func IsTemplateNotFound(err error) bool {
	var fsErr *FileSystemError
	return errors.As(err, &fsErr) && fsErr.Message == ErrMsgTemplateNotFound
}
