package apperr

import "errors"

// Code classifies an error for transport mapping.
type Code string

const (
	CodeUnauthorized Code = "unauthorized" // no identity
	CodeForbidden    Code = "forbidden"    // identity present, scope violation
	CodeValidation   Code = "validation"   // malformed, missing or duplicate input
	CodeNotFound     Code = "not_found"    // target row absent
	CodeConflict     Code = "conflict"     // concurrent uniqueness violation
	CodeInternal     Code = "internal"     // unexpected store/transport failure
)

// Error is a coded application error with a human-readable message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, err error, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
