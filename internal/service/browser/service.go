package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"

	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions for visibility during debugging.
	browserSlowMotionDelay = 200 * time.Millisecond

	// loginPath is the login page of the web front-end.
	loginPath = "/login"

	// accessTokenCookie and refreshTokenCookie are the cookies the web
	// front-end stores its token pair in after a successful login.
	accessTokenCookie  = "token"
	refreshTokenCookie = "refreshToken"

	// loginPollInterval is the interval for polling the login status.
	loginPollInterval = 1 * time.Second

	// maxLoginWaitTime is the maximum time to wait for the user to complete login.
	maxLoginWaitTime = 10 * time.Minute

	// sessionEstablishDelay is the delay after login to let the front-end
	// finish writing both cookies.
	sessionEstablishDelay = 2 * time.Second

	// browserCleanupDelay is the delay to wait for Chrome to release file locks before cleanup.
	browserCleanupDelay = 500 * time.Millisecond
)

var (
	// ErrLoginTimeout is returned when login takes too long.
	ErrLoginTimeout = errors.New("login timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed by the user.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrTokensNotFound is returned when the token cookies cannot be found after login.
	ErrTokensNotFound = errors.New("token cookies not found - login may have failed")
)

// TokenPair is the credential pair extracted from the browser session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service provides browser-based authentication.
type Service interface {
	// LoginAndExtractTokens opens a browser on the login page, waits for the
	// user to authenticate, then extracts the issued token pair.
	LoginAndExtractTokens(ctx context.Context) (*TokenPair, error)
}

// ServiceImpl implements Service using a locally launched Chrome.
type ServiceImpl struct {
	cfg     *config.Config
	browser *rod.Browser
	page    *rod.Page
	// tempDir stores the temporary profile directory for cleanup.
	tempDir string
}

// NewService creates a new browser authentication service.
func NewService(cfg *config.Config) *ServiceImpl {
	return &ServiceImpl{cfg: cfg}
}

// LoginAndExtractTokens opens a browser, waits for the user to log in, then
// extracts the token pair from the browser's cookies.
func (s *ServiceImpl) LoginAndExtractTokens(ctx context.Context) (*TokenPair, error) {
	logger.Info(ctx, "Starting browser-based authentication")

	if err := s.initBrowser(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	loginURL := s.cfg.WebBaseURL + loginPath

	logger.Infof(ctx, "Opening %s - please log in there", loginURL)

	if err := s.page.Navigate(loginURL); err != nil {
		return nil, fmt.Errorf("failed to open login page: %w", err)
	}

	pair, err := s.waitForLogin(ctx)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	logger.Info(ctx, "Token pair extracted successfully")

	return pair, nil
}

// waitForLogin polls the browser until the front-end has written its token
// cookies, the user closes the browser, or the wait times out.
func (s *ServiceImpl) waitForLogin(ctx context.Context) (*TokenPair, error) {
	deadline := time.Now().Add(maxLoginWaitTime)
	ticker := time.NewTicker(loginPollInterval)

	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		if time.Now().After(deadline) {
			return nil, ErrLoginTimeout
		}

		if !s.isBrowserAlive(ctx) {
			return nil, ErrBrowserClosed
		}

		pair, err := s.extractTokens(ctx)
		if err != nil {
			logger.Debugf(ctx, "Cookie check failed: %v", err)

			continue
		}

		if pair == nil {
			continue
		}

		// Both cookies are there. Give the front-end a moment to settle so
		// a mid-write refresh token is not truncated.
		logger.Debug(ctx, "Token cookies found, letting the session settle")
		time.Sleep(sessionEstablishDelay)

		settled, err := s.extractTokens(ctx)
		if err != nil || settled == nil {
			return pair, nil
		}

		return settled, nil
	}
}

// extractTokens reads the token pair from the browser's cookies.
// Returns nil without error while the cookies are not there yet.
func (s *ServiceImpl) extractTokens(ctx context.Context) (*TokenPair, error) {
	cookies, err := s.page.Cookies([]string{s.cfg.WebBaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to read cookies: %w", err)
	}

	var pair TokenPair

	for _, cookie := range cookies {
		switch cookie.Name {
		case accessTokenCookie:
			pair.AccessToken = strings.TrimSpace(cookie.Value)
		case refreshTokenCookie:
			pair.RefreshToken = strings.TrimSpace(cookie.Value)
		}
	}

	if pair.AccessToken == "" {
		return nil, nil
	}

	logger.Debugf(ctx, "Found access token cookie, refresh token present: %t", pair.RefreshToken != "")

	return &pair, nil
}
