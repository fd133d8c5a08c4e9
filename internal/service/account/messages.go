package account

import (
	"errors"
	"net/http"

	"github.com/edunexus/auth-client/internal/client/authapi"
)

// User-facing fallback messages per failure class. For authentication,
// activation and lock failures the backend message wins when present,
// because it carries specifics such as the remaining lock time.
const (
	msgValidation         = "Please check the entered data."
	msgInvalidCredentials = "Incorrect email or password."
	msgNotActivated       = "Your account is not activated. Please check your email for the activation code."
	msgAccountNotFound    = "No account matches that email address."
	msgAccountLocked      = "Your account is temporarily locked. Please try again later."
	msgServerError        = "The server encountered an error. Please try again later."
	msgServiceUnavailable = "The service is temporarily unavailable. Please try again later."
	msgNetwork            = "Could not reach the server. Please check your connection."
	msgUnexpected         = "An unexpected error occurred. Please try again."
)

// FriendlyMessage translates an API failure into the message shown to the
// user. Validation failures always get the generic prompt; the per-field
// detail is rendered separately.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	apiError, ok := authapi.AsError(err)
	if !ok {
		if errors.Is(err, authapi.ErrNetwork) {
			return msgNetwork
		}

		return msgUnexpected
	}

	switch {
	case errors.Is(err, authapi.ErrValidation):
		return msgValidation
	case errors.Is(err, authapi.ErrInvalidCredentials):
		return messageOr(apiError, msgInvalidCredentials)
	case errors.Is(err, authapi.ErrNotActivated):
		return messageOr(apiError, msgNotActivated)
	case errors.Is(err, authapi.ErrAccountNotFound):
		return messageOr(apiError, msgAccountNotFound)
	case errors.Is(err, authapi.ErrAccountLocked):
		return messageOr(apiError, msgAccountLocked)
	case apiError.StatusCode == http.StatusServiceUnavailable:
		return msgServiceUnavailable
	case errors.Is(err, authapi.ErrServer):
		return msgServerError
	default:
		return msgUnexpected
	}
}

func messageOr(apiError *authapi.Error, fallback string) string {
	if apiError.Message != "" {
		return apiError.Message
	}

	return fallback
}
