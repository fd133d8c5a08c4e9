package app

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/edunexus/auth-client/internal/client/authapi"
	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/service/account"
	"github.com/edunexus/auth-client/internal/service/browser"
)

// LoginOptions carries the login command's flags.
type LoginOptions struct {
	// Email and Password skip the interactive prompts when set.
	Email    string
	Password string
	// Remember persists the email for the next login.
	Remember bool
	// Browser switches to browser-assisted login, which also covers the
	// Google OAuth flow a terminal cannot host.
	Browser bool
	// GoogleIDToken authenticates with an already obtained Google ID token.
	GoogleIDToken string
}

// ExecuteLoginCommand executes the login command.
func ExecuteLoginCommand(ctx context.Context, cfg *config.Config, opts *LoginOptions) {
	c := mustComponents(ctx, cfg)

	switch {
	case opts.Browser:
		executeBrowserLogin(ctx, c)
	case opts.GoogleIDToken != "":
		executeGoogleLogin(ctx, c, opts.GoogleIDToken)
	default:
		executePasswordLogin(ctx, c, opts)
	}
}

func executePasswordLogin(ctx context.Context, c *components, opts *LoginOptions) {
	reader := bufio.NewReader(os.Stdin)

	email := opts.Email
	if email == "" {
		var err error

		email, err = promptLine(reader, "Email", c.accounts.RememberedEmail())
		if err != nil {
			logger.Fatalf(ctx, "Failed to read email: %v", err)
		}
	}

	password := opts.Password
	if password == "" {
		var err error

		password, err = promptPassword(reader, "Password")
		if err != nil {
			logger.Fatalf(ctx, "Failed to read password: %v", err)
		}
	}

	response, err := c.accounts.Login(ctx, email, password, opts.Remember)
	if err != nil {
		reportLoginFailure(ctx, err, email)

		return
	}

	greetLoggedInUser(ctx, c, response)
}

func executeGoogleLogin(ctx context.Context, c *components, idToken string) {
	response, err := c.accounts.LoginWithGoogle(ctx, idToken)
	if err != nil {
		logger.Fatalf(ctx, "Google login failed: %s", account.FriendlyMessage(err))
	}

	greetLoggedInUser(ctx, c, response)
}

// executeBrowserLogin opens the web front-end's login page in a local Chrome
// and adopts the token pair the front-end stores after the user signs in.
func executeBrowserLogin(ctx context.Context, c *components) {
	pair, err := browser.NewService(c.cfg).LoginAndExtractTokens(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Browser login failed: %v", err)
	}

	if err = c.session.SetSession(pair.AccessToken, pair.RefreshToken); err != nil {
		logger.Fatalf(ctx, "Failed to store session: %v", err)
	}

	greetLoggedInUser(ctx, c, nil)
}

// reportLoginFailure shows the friendly message plus a next-step hint for
// the failures the user can act on.
func reportLoginFailure(ctx context.Context, err error, email string) {
	message := account.FriendlyMessage(err)

	switch {
	case errors.Is(err, authapi.ErrNotActivated):
		logger.Error(ctx, message)
		logger.Infof(ctx, "Run 'auth-client account resend --email %s' to get a new activation code.", email)
	case errors.Is(err, authapi.ErrAccountLocked):
		logger.Error(ctx, message)
		logger.Infof(ctx, "Run 'auth-client account unlock --email %s' to request an unlock code.", email)
	default:
		logger.Error(ctx, message)
	}

	os.Exit(1)
}

func greetLoggedInUser(ctx context.Context, c *components, response *authapi.AuthResponse) {
	name := ""

	if response != nil && response.UserInfo != nil {
		name = response.UserInfo.Name
	}

	if name == "" {
		if claims, err := c.session.Claims(); err == nil {
			if claims.Name != "" {
				name = claims.Name
			} else {
				name = claims.Email
			}
		}
	}

	if name != "" {
		logger.Infof(ctx, "Welcome back, %s!", name)
	} else {
		logger.Info(ctx, "Login successful.")
	}

	logger.Infof(ctx, "You are signed in. Your dashboard: %s%s", c.cfg.WebBaseURL, account.HomePath)
}

// ExecuteLogoutCommand executes the logout command.
func ExecuteLogoutCommand(ctx context.Context, cfg *config.Config) {
	c := mustComponents(ctx, cfg)

	if err := c.accounts.Logout(ctx); err != nil {
		logger.Fatalf(ctx, "Logout failed: %v", err)
	}

	logger.Infof(ctx, "You are signed out. Log in again at %s/login or with 'auth-client login'.", cfg.WebBaseURL)
}
