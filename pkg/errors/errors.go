// Package errors defines the coded errors shared by the graphcanvas
// packages, the CLI and the HTTP API.
//
// Every failure that reaches a user carries a [Code]. The CLI prints the
// message without the code, and the API maps the code to an HTTP status
// (see httputil.StatusFor).
//
// # Codes
//
//	INVALID_INPUT        malformed request bodies, record names, ids
//	INVALID_ARGUMENT     operation parameters (counts, radii, offsets)
//	INVALID_MODE         unknown editor interaction mode
//	INVALID_GRAPH        vertex maps with asymmetric or dangling neighbours
//	INVALID_FORMAT       unknown render format or undecodable JSON
//	NOT_FOUND            generic lookup failure
//	OPERATION_NOT_FOUND  unknown class or function name
//	GRAPH_NOT_FOUND      unknown saved graph id
//	STORAGE_ERROR        file, MongoDB or Redis backend failures
//	TIMEOUT              backend deadline exceeded
//	INTERNAL_ERROR       bugs and unexpected states
//	UNSUPPORTED          missing optional tooling, such as librsvg for PDF
//
// Vertex and edge lookups on a graph never produce errors; they report
// absence with nil or false.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOperationNotFound, "unknown operation %q", name)
//	if errors.Is(err, errors.ErrCodeOperationNotFound) {
//	    // list the available names
//	}
//
//	return errors.Wrap(errors.ErrCodeStorage, err, "save graph %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidMode     Code = "INVALID_MODE"
	ErrCodeInvalidGraph    Code = "INVALID_GRAPH"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeOperationNotFound Code = "OPERATION_NOT_FOUND"
	ErrCodeGraphNotFound     Code = "GRAPH_NOT_FOUND"

	ErrCodeStorage Code = "STORAGE_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error formats as "CODE: message" or "CODE: message: cause".
func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code and a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// as finds the outermost *Error in err's chain.
func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost coded error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the outermost code in err's chain, or "" for uncoded errors.
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of a coded error without its code, or
// err.Error() for anything else.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsNotFound reports whether err carries any of the not-found codes.
func IsNotFound(err error) bool {
	switch GetCode(err) {
	case ErrCodeNotFound, ErrCodeOperationNotFound, ErrCodeGraphNotFound:
		return true
	}
	return false
}
