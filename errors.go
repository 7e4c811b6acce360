package esmodel

import (
	"errors"

	"github.com/reoring/esmodel/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired          = "required"
	CodeBuilderUsed       = "builder_used"
	CodeUnrecognizedValue = "unrecognized_value"
	CodeParseError        = "parse_error"
)

// ErrBuilderAlreadyUsed is returned by Build on every call after the first
// successful one. It signals a programmer error and is never retried.
var ErrBuilderAlreadyUsed = errors.New(i18n.T(CodeBuilderUsed, nil))

// MissingRequiredFieldError reports a required field that was never set when
// Build was called.
type MissingRequiredFieldError struct {
	// Model is the name of the model whose builder failed.
	Model string
	// Path is the field name, dot-qualified through nested builders
	// (for example "total.value").
	Path string
}

func (e *MissingRequiredFieldError) Error() string {
	return i18n.T(CodeRequired, map[string]string{"property": e.Model + "." + e.Path})
}

// Code returns CodeRequired.
func (e *MissingRequiredFieldError) Code() string { return CodeRequired }

// Field returns the path of the missing field.
func (e *MissingRequiredFieldError) Field() string { return e.Path }

// UnrecognizedWireValueError is returned when a wire value cannot be coerced
// to the shape an element codec expects, e.g. a union object matching none
// of its variants.
type UnrecognizedWireValueError struct {
	Path     string // dot-qualified position in the input ("" at the root)
	Expected string
	Got      string
	Offset   int64 // byte offset in the input (-1 when unknown)
}

func (e *UnrecognizedWireValueError) Error() string {
	where := e.Path
	if where == "" {
		where = "<root>"
	}
	return i18n.T(CodeUnrecognizedValue, map[string]string{"path": where, "expected": e.Expected, "got": e.Got})
}

// Code returns CodeUnrecognizedValue.
func (e *UnrecognizedWireValueError) Code() string { return CodeUnrecognizedValue }

// ParseError reports input the Source could not deliver: malformed or
// truncated JSON or YAML, or a Limits violation. Err keeps the cause, so
// errors.Is(err, io.ErrUnexpectedEOF) and errors.As(err, **LimitError) work.
type ParseError struct {
	Path   string // dot-qualified position in the input ("" at the root)
	Offset int64  // byte offset in the input (-1 when unknown)
	Err    error
}

func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "<root>"
	}
	return "esmodel: " + i18n.T(CodeParseError, nil) + " (" + where + "): " + e.Err.Error()
}

// Code returns CodeParseError.
func (e *ParseError) Code() string { return CodeParseError }

func (e *ParseError) Unwrap() error { return e.Err }

// IsMissingRequiredField reports whether err (or any error it wraps) is a
// MissingRequiredFieldError, returning it when so.
func IsMissingRequiredField(err error) (*MissingRequiredFieldError, bool) {
	var m *MissingRequiredFieldError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

// qualify prefixes a nested failure with the field it was produced for.
func qualify(err error, model, field string) error {
	var m *MissingRequiredFieldError
	if errors.As(err, &m) {
		return &MissingRequiredFieldError{Model: model, Path: field + "." + m.Path}
	}
	return err
}
