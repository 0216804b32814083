// Package apperrors defines the error taxonomy shared by all modules.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP mapping and logging.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConfiguration
	KindNotFound
	KindUnauthorized
	KindGeneration
	KindEmail
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindGeneration:
		return "generation"
	case KindEmail:
		return "email"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// HTTPStatus maps a kind to its response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a kind, a user-safe message and an optional wrapped cause.
// The cause never crosses the HTTP boundary; only Message does.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an upstream cause to a taxonomy error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error    { return New(KindValidation, message) }
func Configuration(message string) *Error { return New(KindConfiguration, message) }
func NotFound(message string) *Error      { return New(KindNotFound, message) }
func Unauthorized(message string) *Error  { return New(KindUnauthorized, message) }

// Generation wraps an upstream text-generation failure. When the upstream
// message is not presentable, pass a generic message instead.
func Generation(message string, err error) *Error {
	return Wrap(KindGeneration, message, err)
}

func Email(message string, err error) *Error { return Wrap(KindEmail, message, err) }
func Store(message string, err error) *Error { return Wrap(KindStore, message, err) }

// IsKind reports whether err (or anything it wraps) is a taxonomy error
// of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// As extracts the taxonomy error from err, wrapping foreign errors as
// unknown so callers always get a classified error back.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(KindUnknown, "internal error", err)
}
