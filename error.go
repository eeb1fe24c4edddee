package salesite

import (
	"errors"
	"fmt"
)

// Error codes classify failures for callers. The scrape-specific kinds
// (EBLOCKED, ERETRYABLE, EFATAL) drive the batch coordinator's domain
// circuit breaker; the rest are general-purpose application codes.
const (
	// EBLOCKED indicates a site actively resists automated access.
	// Further URLs on the same domain should not be attempted this batch.
	EBLOCKED = "blocked"

	// ERETRYABLE indicates a transient failure. Unrelated URLs on the same
	// domain may still succeed; nothing is retried automatically.
	ERETRYABLE = "retryable"

	// EFATAL indicates a failure scoped to a single URL. The domain is not
	// implicated.
	EFATAL = "fatal"

	// EUNKNOWN is the default for unclassified errors, treated
	// conservatively like EFATAL.
	EUNKNOWN = "unknown"

	// EINVALID indicates invalid input or an invalid extracted value.
	EINVALID = "invalid"

	// EINTERNAL indicates an internal error.
	EINTERNAL = "internal"
)

// Error represents an application error with a machine-readable code.
type Error struct {
	// Code is one of the code constants above.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("salesite error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if it is an *Error.
// Returns the empty string for nil and EUNKNOWN for unclassified errors.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EUNKNOWN
}

// ErrorMessage returns the message of the error, if it is an *Error.
// Returns the empty string for nil and a generic message otherwise.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "An internal error has occurred."
}
