package account

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/edunexus/auth-client/internal/client/authapi"
	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/session"
)

// HomePath is where a successful login navigates to.
const HomePath = "/home"

// ErrResendCooldown indicates an activation-code resend attempted before the
// cooldown expired.
var ErrResendCooldown = errors.New("activation code was just sent")

// Service wires the authentication API to the local session and exposes the
// account flows the commands drive.
type Service struct {
	cfg     *config.Config
	api     authapi.Client
	session *session.Manager
	// saveConfig persists the config file. Swapped out in tests.
	saveConfig func(*config.Config) error

	mu         sync.Mutex
	lastResend time.Time
}

// NewService creates an account service.
func NewService(cfg *config.Config, api authapi.Client, sessionManager *session.Manager) *Service {
	return &Service{
		cfg:        cfg,
		api:        api,
		session:    sessionManager,
		saveConfig: config.SaveConfig,
	}
}

// Login authenticates with email and password and stores the issued tokens.
// With remember set the email is persisted to the config file so the next
// login can pre-fill it; without it a previously remembered copy of the same
// email is dropped.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (*authapi.AuthResponse, error) {
	response, err := s.api.Login(ctx, &authapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if err = s.session.SetSession(response.AccessToken, response.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.rememberEmail(ctx, email, remember)

	logger.Infof(ctx, "Logged in as %q", email)

	return response, nil
}

// LoginWithGoogle authenticates with a Google ID token and stores the issued tokens.
func (s *Service) LoginWithGoogle(ctx context.Context, idToken string) (*authapi.AuthResponse, error) {
	response, err := s.api.LoginWithGoogle(ctx, &authapi.GoogleLoginRequest{IDToken: idToken})
	if err != nil {
		return nil, err
	}

	if err = s.session.SetSession(response.AccessToken, response.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	logger.Infof(ctx, "Logged in via Google")

	return response, nil
}

// Logout ends the session. The server call is best-effort: the local session
// is cleared even when the server cannot be reached.
func (s *Service) Logout(ctx context.Context) error {
	if s.session.IsAuthenticated() {
		if err := s.api.Logout(ctx); err != nil {
			logger.Warnf(ctx, "Server logout failed, clearing local session anyway: %v", err)
		}
	}

	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	logger.Infof(ctx, "Logged out")

	return nil
}

// Activate redeems an emailed activation code. Some deployments issue tokens
// right away; when they do, the session starts immediately.
func (s *Service) Activate(ctx context.Context, activationCode string) (*authapi.AuthResponse, error) {
	response, err := s.api.ActivateAccount(ctx, &authapi.ActivateAccountRequest{ActivationCode: activationCode})
	if err != nil {
		return nil, err
	}

	if response.AccessToken != "" {
		if err = s.session.SetSession(response.AccessToken, response.RefreshToken); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
	}

	return response, nil
}

// ResendActivation requests a fresh activation code, rate-limited by the
// configured cooldown so the mailbox is not flooded by impatient retries.
func (s *Service) ResendActivation(ctx context.Context, email string) (*authapi.AuthResponse, error) {
	if remaining := s.CooldownRemaining(); remaining > 0 {
		return nil, fmt.Errorf("%w: wait %s", ErrResendCooldown, remaining.Round(time.Second))
	}

	response, err := s.api.ResendActivationCode(ctx, &authapi.ResendActivationCodeRequest{Email: email})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastResend = time.Now()
	s.mu.Unlock()

	logger.Infof(ctx, "Activation code resent to %q", email)

	return response, nil
}

// CooldownRemaining reports how long until the next activation resend is allowed.
func (s *Service) CooldownRemaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastResend.IsZero() {
		return 0
	}

	remaining := s.cfg.ParsedResendCooldown - time.Since(s.lastResend)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// RequestUnlock asks for an unlock code for a locked account.
func (s *Service) RequestUnlock(ctx context.Context, email string) (*authapi.AuthResponse, error) {
	return s.api.RequestUnlock(ctx, &authapi.RequestUnlockRequest{Email: email})
}

// VerifyUnlockCode redeems an emailed unlock code.
func (s *Service) VerifyUnlockCode(ctx context.Context, code string) (*authapi.AuthResponse, error) {
	return s.api.VerifyUnlockCode(ctx, &authapi.VerifyUnlockCodeRequest{Code: code})
}

// ForgotPassword starts password recovery for the given email.
func (s *Service) ForgotPassword(ctx context.Context, email string) (*authapi.AuthResponse, error) {
	return s.api.ForgotPassword(ctx, &authapi.ForgotPasswordRequest{Email: email})
}

// ResetPassword completes password recovery with the emailed code.
func (s *Service) ResetPassword(ctx context.Context, resetCode, password, confirmPassword string) (*authapi.AuthResponse, error) {
	return s.api.ResetPassword(ctx, &authapi.ResetPasswordRequest{
		ResetCode:       resetCode,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
}

// ChangePassword changes the password of the logged-in account.
func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword, confirmPassword string) (*authapi.AuthResponse, error) {
	return s.api.ChangePassword(ctx, &authapi.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
		ConfirmPassword: confirmPassword,
	})
}

// RequestEmailChange starts the email change flow.
func (s *Service) RequestEmailChange(ctx context.Context, newEmail, confirmation, currentPassword string) (*authapi.AuthResponse, error) {
	return s.api.RequestEmailChange(ctx, &authapi.RequestEmailChangeRequest{
		NewEmail:             newEmail,
		NewEmailConfirmation: confirmation,
		CurrentPassword:      currentPassword,
	})
}

// VerifyEmailChange completes the email change flow.
func (s *Service) VerifyEmailChange(ctx context.Context, verificationCode string) (*authapi.AuthResponse, error) {
	return s.api.VerifyEmailChange(ctx, &authapi.VerifyEmailChangeRequest{VerificationCode: verificationCode})
}

// Profile fetches the profile of the logged-in account.
func (s *Service) Profile(ctx context.Context) (*authapi.UserInfo, error) {
	if !s.session.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}

	return s.api.GetCurrentUser(ctx)
}

// UpdateProfile updates mutable profile fields.
func (s *Service) UpdateProfile(ctx context.Context, request *authapi.UpdateProfileRequest) (*authapi.AuthResponse, error) {
	if !s.session.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}

	return s.api.UpdateProfile(ctx, request)
}

// RememberedEmail returns the email persisted by a previous login, if any.
func (s *Service) RememberedEmail() string {
	return s.cfg.RememberedEmail
}

// Status describes the current session from the local point of view, plus
// the server's verdict when asked for.
type Status struct {
	// Authenticated reports whether a token pair is stored locally.
	Authenticated bool
	// State is the lifecycle state of the session.
	State session.State
	// Email, Name and Role come from the decoded access token.
	Email string
	Name  string
	Role  string
	// IssuedAt and ExpiresAt come from the decoded access token.
	IssuedAt  time.Time
	ExpiresAt time.Time
	// ServerChecked reports whether the server was consulted.
	ServerChecked bool
	// ServerValid is the server's verdict on the current token.
	ServerValid bool
	// ServerMessage is the server's explanation, if any.
	ServerMessage string
}

// Status reports the session state. With checkServer set, the server is also
// asked to validate the current access token.
func (s *Service) Status(ctx context.Context, checkServer bool) (*Status, error) {
	status := &Status{
		Authenticated: s.session.IsAuthenticated(),
		State:         s.session.State(),
	}

	if !status.Authenticated {
		return status, nil
	}

	claims, err := s.session.Claims()
	if err != nil {
		// An opaque token still authenticates; there is just nothing to show.
		logger.Debugf(ctx, "Cannot decode access token claims: %v", err)
	} else {
		status.Email = claims.Email
		status.Name = claims.Name
		status.Role = claims.Role
		status.IssuedAt = claims.IssuedAt
		status.ExpiresAt = claims.ExpiresAt
	}

	if !checkServer {
		return status, nil
	}

	validation, err := s.api.ValidateToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}

	status.ServerChecked = true
	status.ServerValid = validation.Valid
	status.ServerMessage = validation.Message

	return status, nil
}

// rememberEmail persists or clears the remembered login email. Failures are
// logged and swallowed: a broken config file must not fail a login.
func (s *Service) rememberEmail(ctx context.Context, email string, remember bool) {
	switch {
	case remember:
		s.cfg.RememberedEmail = email
	case s.cfg.RememberedEmail == email:
		s.cfg.RememberedEmail = ""
	default:
		return
	}

	if err := s.saveConfig(s.cfg); err != nil {
		logger.Warnf(ctx, "Failed to persist remembered email: %v", err)
	}
}
