// Package errors provides structured error types for lanparty.
//
// Every error that reaches a user carries a [Code]. The CLI prints the
// message, the HTTP API maps the code to a status and returns it in the JSON
// body, and tests match on it with [Is].
//
// # Error Codes
//
//   - INVALID_*: the caller sent something wrong (HTTP 400)
//   - NOT_FOUND, FILE_NOT_FOUND: a resource is missing (HTTP 404)
//   - CACHE_ERROR: a cache backend failed; logged, never fatal to an analysis
//   - INTERNAL_ERROR, UNSUPPORTED: everything else (HTTP 500)
//
// Errors about a specific line of an edge list are built with [AtLine], so
// the line number is available as data through [LineOf] as well as in the
// message.
//
// # Usage
//
//	err := errors.AtLine(errors.ErrCodeInvalidEdge, 3, cause, "%q", line)
//	if errors.Is(err, errors.ErrCodeInvalidEdge) {
//	    fmt.Println("bad line", errors.LineOf(err))
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidEdge   Code = "INVALID_EDGE"
	ErrCodeInvalidNode   Code = "INVALID_NODE"
	ErrCodeInvalidDriver Code = "INVALID_DRIVER"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeCache Code = "CACHE_ERROR"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// IsInvalid reports whether c blames the caller's input.
func (c Code) IsInvalid() bool { return strings.HasPrefix(string(c), "INVALID_") }

// IsNotFound reports whether c names a missing resource.
func (c Code) IsNotFound() bool { return c == ErrCodeNotFound || c == ErrCodeFileNotFound }

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Line    int // 1-based edge-list line, 0 when not tied to input
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// AtLine creates an Error about line of an input file. The message is
// prefixed with "line N: ". cause may be nil.
func AtLine(code Code, line int, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf("line %d: ", line) + fmt.Sprintf(format, args...),
		Line:    line,
		Cause:   cause,
	}
}

// Is reports whether the outermost *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LineOf returns the input line of the first *Error in err's chain that
// names one, or 0.
func LineOf(err error) int {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return 0
		}
		if e.Line > 0 {
			return e.Line
		}
		err = e.Cause
	}
	return 0
}

// UserMessage returns the message of the outermost *Error without its code
// prefix, or err.Error() for foreign errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
