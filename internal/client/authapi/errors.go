package authapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Static error definitions for better error handling.
// Each API error wraps exactly one of these, so callers classify with errors.Is.
var (
	// ErrInvalidCredentials indicates wrong email or password (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotActivated indicates the account exists but was never activated (HTTP 403).
	ErrNotActivated = errors.New("account not activated")
	// ErrAccountNotFound indicates no account matches the identifier (HTTP 404).
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountLocked indicates the account is temporarily locked (HTTP 423).
	ErrAccountLocked = errors.New("account locked")
	// ErrValidation indicates the server rejected the payload, possibly with
	// per-field detail such as a duplicate email or ID number (HTTP 400).
	ErrValidation = errors.New("validation failed")
	// ErrServer indicates a 5xx response.
	ErrServer = errors.New("server error")
	// ErrUnexpectedStatus indicates a status code outside the documented set.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrNetwork indicates that no response was received at all.
	// Network failures never trigger a token refresh.
	ErrNetwork = errors.New("network error")
)

// Error is an API-level failure carrying the HTTP status, the backend
// message, and any per-field validation detail.
type Error struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the backend-provided human-readable message, if any.
	Message string
	// Fields maps field names to server-reported validation messages.
	Fields map[string]string

	kind error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v (%d): %s", e.kind, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("%v (%d)", e.kind, e.StatusCode)
}

// Unwrap returns the classification sentinel for errors.Is checks.
func (e *Error) Unwrap() error {
	return e.kind
}

// NewError builds an Error classified by HTTP status code.
func NewError(statusCode int, message string, fields map[string]string) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Fields:     fields,
		kind:       classifyStatus(statusCode),
	}
}

// newStatusError builds an Error from a decoded error response body.
func newStatusError(statusCode int, body *errorResponse) *Error {
	if body == nil {
		return NewError(statusCode, "", nil)
	}

	return NewError(statusCode, body.Message, body.Errors)
}

func classifyStatus(statusCode int) error {
	switch {
	case statusCode == http.StatusBadRequest:
		return ErrValidation
	case statusCode == http.StatusUnauthorized:
		return ErrInvalidCredentials
	case statusCode == http.StatusForbidden:
		return ErrNotActivated
	case statusCode == http.StatusNotFound:
		return ErrAccountNotFound
	case statusCode == http.StatusLocked:
		return ErrAccountLocked
	case statusCode >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrUnexpectedStatus
	}
}

// AsError extracts the *Error from an error chain, if present.
func AsError(err error) (*Error, bool) {
	var apiError *Error
	ok := errors.As(err, &apiError)

	return apiError, ok
}
