package authapi

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/edunexus/auth-client/internal/config"
	http_transport "github.com/edunexus/auth-client/internal/transport/http"
)

// Client defines the interface for interacting with the authentication API.
type Client interface {
	// Register creates a new account from the aggregated registration payload.
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	// ActivateAccount activates an account with the emailed code.
	ActivateAccount(ctx context.Context, request *ActivateAccountRequest) (*AuthResponse, error)
	// ResendActivationCode requests a new activation code for the given email.
	ResendActivationCode(ctx context.Context, request *ResendActivationCodeRequest) (*AuthResponse, error)
	// Login authenticates with email and password.
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	// LoginWithGoogle authenticates with a Google ID token.
	LoginWithGoogle(ctx context.Context, request *GoogleLoginRequest) (*AuthResponse, error)
	// Logout notifies the server that the current session ends.
	Logout(ctx context.Context) error
	// RequestUnlock requests an immediate unlock code for a locked account.
	RequestUnlock(ctx context.Context, request *RequestUnlockRequest) (*AuthResponse, error)
	// VerifyUnlockCode verifies an unlock code.
	VerifyUnlockCode(ctx context.Context, request *VerifyUnlockCodeRequest) (*AuthResponse, error)
	// ForgotPassword starts password recovery for the given email.
	ForgotPassword(ctx context.Context, request *ForgotPasswordRequest) (*AuthResponse, error)
	// ResetPassword completes password recovery with the emailed code.
	ResetPassword(ctx context.Context, request *ResetPasswordRequest) (*AuthResponse, error)
	// ChangePassword changes the password of the logged-in account.
	ChangePassword(ctx context.Context, request *ChangePasswordRequest) (*AuthResponse, error)
	// RequestEmailChange starts the email change flow.
	RequestEmailChange(ctx context.Context, request *RequestEmailChangeRequest) (*AuthResponse, error)
	// VerifyEmailChange completes the email change flow.
	VerifyEmailChange(ctx context.Context, request *VerifyEmailChangeRequest) (*AuthResponse, error)
	// UpdateProfile updates mutable profile fields.
	UpdateProfile(ctx context.Context, request *UpdateProfileRequest) (*AuthResponse, error)
	// GetCurrentUser fetches the profile of the logged-in account.
	GetCurrentUser(ctx context.Context) (*UserInfo, error)
	// ValidateToken asks the server whether the current access token is valid.
	ValidateToken(ctx context.Context) (*TokenValidation, error)
	// RefreshToken exchanges a refresh token for fresh credentials.
	RefreshToken(ctx context.Context, request *RefreshTokenRequest) (*AuthResponse, error)
	// GetBaseURL returns the base URL of the authentication API.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for the authentication API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

const (
	// authRegisterURI is the URI path for account registration.
	authRegisterURI = "auth/register"
	// authActivateAccountURI is the URI path for account activation.
	authActivateAccountURI = "auth/activate-account"
	// authResendActivationCodeURI is the URI path for resending the activation code.
	authResendActivationCodeURI = "auth/resend-activation-code"
	// authLoginURI is the URI path for password login.
	authLoginURI = "auth/login"
	// authGoogleLoginURI is the URI path for Google OAuth login.
	authGoogleLoginURI = "auth/login/google"
	// authLogoutURI is the URI path for logout.
	authLogoutURI = "auth/logout"
	// authRequestUnlockURI is the URI path for requesting an unlock code.
	authRequestUnlockURI = "auth/request-unlock"
	// authVerifyUnlockCodeURI is the URI path for verifying an unlock code.
	authVerifyUnlockCodeURI = "auth/verify-unlock-code"
	// authForgotPasswordURI is the URI path for starting password recovery.
	authForgotPasswordURI = "auth/forgot-password"
	// authResetPasswordURI is the URI path for completing password recovery.
	authResetPasswordURI = "auth/reset-password"
	// authChangePasswordURI is the URI path for changing the password.
	authChangePasswordURI = "auth/change-password"
	// authRequestEmailChangeURI is the URI path for starting an email change.
	authRequestEmailChangeURI = "auth/request-email-change"
	// authVerifyEmailChangeURI is the URI path for completing an email change.
	authVerifyEmailChangeURI = "auth/verify-email-change"
	// authUpdateProfileURI is the URI path for profile updates.
	authUpdateProfileURI = "auth/update-profile"
	// authCurrentUserURI is the URI path for the logged-in account's profile.
	authCurrentUserURI = "auth/me"
	// authValidateTokenURI is the URI path for server-side token validation.
	authValidateTokenURI = "auth/validate-token"
	// authRefreshTokenURI is the URI path for refreshing the access token.
	authRefreshTokenURI = "auth/refresh-token"
)

// NewClient creates and returns a new instance of ClientImpl.
// The provided http.Client is expected to carry the transport stack
// (logging, request-ID injection, bearer attachment with refresh).
func NewClient(cfg *config.Config, httpClient *http.Client) (Client, error) {
	baseURL, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	return &ClientImpl{
		cfg:        cfg,
		baseURL:    baseURL.String(),
		httpClient: httpClient,
	}, nil
}

// Register creates a new account from the aggregated registration payload.
func (c *ClientImpl) Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authRegisterURI, request)
}

// ActivateAccount activates an account with the emailed code.
func (c *ClientImpl) ActivateAccount(ctx context.Context, request *ActivateAccountRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authActivateAccountURI, request)
}

// ResendActivationCode requests a new activation code for the given email.
func (c *ClientImpl) ResendActivationCode(
	ctx context.Context,
	request *ResendActivationCodeRequest,
) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authResendActivationCodeURI, request)
}

// Login authenticates with email and password.
func (c *ClientImpl) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authLoginURI, request)
}

// LoginWithGoogle authenticates with a Google ID token.
func (c *ClientImpl) LoginWithGoogle(ctx context.Context, request *GoogleLoginRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authGoogleLoginURI, request)
}

// Logout notifies the server that the current session ends.
// The bearer transport attaches the stored token.
func (c *ClientImpl) Logout(ctx context.Context) error {
	_, err := callJSON[AuthResponse](c, ctx, http.MethodPost, authLogoutURI, nil)

	return err
}

// RequestUnlock requests an immediate unlock code for a locked account.
func (c *ClientImpl) RequestUnlock(ctx context.Context, request *RequestUnlockRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authRequestUnlockURI, request)
}

// VerifyUnlockCode verifies an unlock code.
func (c *ClientImpl) VerifyUnlockCode(ctx context.Context, request *VerifyUnlockCodeRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authVerifyUnlockCodeURI, request)
}

// ForgotPassword starts password recovery for the given email.
func (c *ClientImpl) ForgotPassword(ctx context.Context, request *ForgotPasswordRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authForgotPasswordURI, request)
}

// ResetPassword completes password recovery with the emailed code.
func (c *ClientImpl) ResetPassword(ctx context.Context, request *ResetPasswordRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authResetPasswordURI, request)
}

// ChangePassword changes the password of the logged-in account.
func (c *ClientImpl) ChangePassword(ctx context.Context, request *ChangePasswordRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, ctx, http.MethodPut, authChangePasswordURI, request)
}

// RequestEmailChange starts the email change flow.
func (c *ClientImpl) RequestEmailChange(
	ctx context.Context,
	request *RequestEmailChangeRequest,
) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, ctx, http.MethodPost, authRequestEmailChangeURI, request)
}

// VerifyEmailChange completes the email change flow.
func (c *ClientImpl) VerifyEmailChange(ctx context.Context, request *VerifyEmailChangeRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, ctx, http.MethodPost, authVerifyEmailChangeURI, request)
}

// UpdateProfile updates mutable profile fields.
func (c *ClientImpl) UpdateProfile(ctx context.Context, request *UpdateProfileRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, ctx, http.MethodPut, authUpdateProfileURI, request)
}

// GetCurrentUser fetches the profile of the logged-in account.
func (c *ClientImpl) GetCurrentUser(ctx context.Context) (*UserInfo, error) {
	return callJSON[UserInfo](c, ctx, http.MethodGet, authCurrentUserURI, nil)
}

// ValidateToken asks the server whether the current access token is valid.
func (c *ClientImpl) ValidateToken(ctx context.Context) (*TokenValidation, error) {
	return callJSON[TokenValidation](c, ctx, http.MethodPost, authValidateTokenURI, nil)
}

// RefreshToken exchanges a refresh token for fresh credentials.
// A 401 from this endpoint is final: it must never trigger another refresh.
func (c *ClientImpl) RefreshToken(ctx context.Context, request *RefreshTokenRequest) (*AuthResponse, error) {
	return callJSON[AuthResponse](c, publicCtx(ctx), http.MethodPost, authRefreshTokenURI, request)
}

// GetBaseURL returns the base URL of the authentication API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// publicCtx marks a request as belonging to a public endpoint,
// where a 401 is a final answer rather than a sign of token expiry.
func publicCtx(ctx context.Context) context.Context {
	return http_transport.WithAuthRetryDisabled(ctx)
}

//nolint:revive // Go doesn't allow struct methods to be generic, so the client is the first argument.
func callJSON[T any](c *ClientImpl, ctx context.Context, method, uri string, body any) (*T, error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	var payload *bytes.Reader

	if body != nil {
		encoded, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", marshalErr)
		}

		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, route, payload)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		// No response was received: never classified as an auth failure.
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	defer response.Body.Close()

	if response.StatusCode >= http.StatusMultipleChoices {
		var errorBody errorResponse

		// A non-JSON error body is fine, the status code alone classifies the failure.
		_ = json.NewDecoder(response.Body).Decode(&errorBody)

		return nil, newStatusError(response.StatusCode, &errorBody)
	}

	var result T

	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
