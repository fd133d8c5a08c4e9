package app

import (
	"bufio"
	"context"
	"errors"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/service/account"
)

// ExecuteActivateCommand executes the account activation command.
func ExecuteActivateCommand(ctx context.Context, cfg *config.Config, activationCode string) {
	c := mustComponents(ctx, cfg)

	response, err := c.accounts.Activate(ctx, activationCode)
	if err != nil {
		logger.Fatalf(ctx, "Activation failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Info(ctx, "Account activated.")
	}

	if c.session.IsAuthenticated() {
		logger.Info(ctx, "You are now signed in.")
	} else {
		logger.Info(ctx, "You can sign in with 'auth-client login'.")
	}
}

// ExecuteResendActivationCommand executes the activation-code resend command.
// When the cooldown is still running it shows a countdown and retries once
// the cooldown expires.
func ExecuteResendActivationCommand(ctx context.Context, cfg *config.Config, email string) {
	c := mustComponents(ctx, cfg)

	response, err := c.accounts.ResendActivation(ctx, email)
	if errors.Is(err, account.ErrResendCooldown) {
		waitOutCooldown(ctx, c)

		response, err = c.accounts.ResendActivation(ctx, email)
	}

	if err != nil {
		logger.Fatalf(ctx, "Resend failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Infof(ctx, "A new activation code was sent to %s.", email)
	}
}

// waitOutCooldown renders a one-second-resolution countdown until the next
// resend is allowed.
func waitOutCooldown(ctx context.Context, c *components) {
	remaining := c.accounts.CooldownRemaining()
	if remaining <= 0 {
		return
	}

	seconds := int(remaining.Round(time.Second) / time.Second)
	bar := progressbar.NewOptions(seconds,
		progressbar.OptionSetDescription("Waiting for the resend cooldown"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for i := 0; i < seconds; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}

	_ = bar.Finish()
}

// ExecuteUnlockRequestCommand executes the unlock-code request command.
func ExecuteUnlockRequestCommand(ctx context.Context, cfg *config.Config, email string) {
	c := mustComponents(ctx, cfg)

	response, err := c.accounts.RequestUnlock(ctx, email)
	if err != nil {
		logger.Fatalf(ctx, "Unlock request failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Infof(ctx, "An unlock code was sent to %s.", email)
	}
}

// ExecuteUnlockVerifyCommand executes the unlock-code verification command.
func ExecuteUnlockVerifyCommand(ctx context.Context, cfg *config.Config, code string) {
	c := mustComponents(ctx, cfg)

	response, err := c.accounts.VerifyUnlockCode(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Unlock failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Info(ctx, "Account unlocked. You can sign in with 'auth-client login'.")
	}
}

// ExecuteForgotPasswordCommand executes the password recovery request command.
func ExecuteForgotPasswordCommand(ctx context.Context, cfg *config.Config, email string) {
	c := mustComponents(ctx, cfg)

	response, err := c.accounts.ForgotPassword(ctx, email)
	if err != nil {
		logger.Fatalf(ctx, "Password recovery failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Infof(ctx, "A password reset code was sent to %s.", email)
	}
}

// ExecuteResetPasswordCommand executes the password reset command.
func ExecuteResetPasswordCommand(ctx context.Context, cfg *config.Config, resetCode string) {
	c := mustComponents(ctx, cfg)
	reader := bufio.NewReader(os.Stdin)

	password, err := promptPassword(reader, "New password")
	if err != nil {
		logger.Fatalf(ctx, "Failed to read password: %v", err)
	}

	confirmPassword, err := promptPassword(reader, "Confirm new password")
	if err != nil {
		logger.Fatalf(ctx, "Failed to read password: %v", err)
	}

	response, err := c.accounts.ResetPassword(ctx, resetCode, password, confirmPassword)
	if err != nil {
		logger.Fatalf(ctx, "Password reset failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Info(ctx, "Password reset. You can sign in with 'auth-client login'.")
	}
}

// ExecuteChangePasswordCommand executes the password change command for the
// logged-in account.
func ExecuteChangePasswordCommand(ctx context.Context, cfg *config.Config) {
	c := mustComponents(ctx, cfg)
	reader := bufio.NewReader(os.Stdin)

	currentPassword, err := promptPassword(reader, "Current password")
	if err != nil {
		logger.Fatalf(ctx, "Failed to read password: %v", err)
	}

	newPassword, err := promptPassword(reader, "New password")
	if err != nil {
		logger.Fatalf(ctx, "Failed to read password: %v", err)
	}

	confirmPassword, err := promptPassword(reader, "Confirm new password")
	if err != nil {
		logger.Fatalf(ctx, "Failed to read password: %v", err)
	}

	response, err := c.accounts.ChangePassword(ctx, currentPassword, newPassword, confirmPassword)
	if err != nil {
		logger.Fatalf(ctx, "Password change failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Info(ctx, "Password changed.")
	}
}

// ExecuteEmailChangeRequestCommand executes the email change request command.
func ExecuteEmailChangeRequestCommand(ctx context.Context, cfg *config.Config, newEmail string) {
	c := mustComponents(ctx, cfg)
	reader := bufio.NewReader(os.Stdin)

	confirmation, err := promptLine(reader, "Repeat the new email", "")
	if err != nil {
		logger.Fatalf(ctx, "Failed to read email: %v", err)
	}

	currentPassword, err := promptPassword(reader, "Current password")
	if err != nil {
		logger.Fatalf(ctx, "Failed to read password: %v", err)
	}

	response, err := c.accounts.RequestEmailChange(ctx, newEmail, confirmation, currentPassword)
	if err != nil {
		logger.Fatalf(ctx, "Email change request failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Infof(ctx, "A verification code was sent to %s.", newEmail)
	}
}

// ExecuteEmailChangeVerifyCommand executes the email change verification command.
func ExecuteEmailChangeVerifyCommand(ctx context.Context, cfg *config.Config, verificationCode string) {
	c := mustComponents(ctx, cfg)

	response, err := c.accounts.VerifyEmailChange(ctx, verificationCode)
	if err != nil {
		logger.Fatalf(ctx, "Email change failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Info(ctx, "Email address updated.")
	}
}
