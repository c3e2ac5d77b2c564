package scrape

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EFETCH     = "fetch"      // network or transport failure
	EINTERNAL  = "internal"   // unexpected internal error
	EINVALID   = "invalid"    // validation failed
	ENOTFOUND  = "not_found"  // entity does not exist
	ENOTLOADED = "not_loaded" // query against a scraper with no document
	ESELECTOR  = "selector"   // malformed CSS selector
	ESTATUS    = "status"     // HTTP response with a non-success status
)

// Error represents an application-specific error. Application errors can
// be unwrapped by the caller to extract the code and message.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("scrape error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
