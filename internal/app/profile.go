package app

import (
	"context"
	"fmt"

	"github.com/edunexus/auth-client/internal/client/authapi"
	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/service/account"
)

// ExecuteProfileShowCommand executes the profile display command.
func ExecuteProfileShowCommand(ctx context.Context, cfg *config.Config) {
	c := mustComponents(ctx, cfg)

	user, err := c.accounts.Profile(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch profile: %s", account.FriendlyMessage(err))
	}

	fmt.Printf("Email:   %s\n", user.Email)
	fmt.Printf("Name:    %s %s\n", user.Name, user.LastName)

	if user.PhoneNumber != "" {
		fmt.Printf("Phone:   %s\n", user.PhoneNumber)
	}

	if user.Role != "" {
		fmt.Printf("Role:    %s\n", user.Role)
	}

	if user.Status != "" {
		fmt.Printf("Status:  %s\n", user.Status)
	}
}

// ProfileUpdateOptions carries the profile update command's flags. Empty
// fields are left unchanged.
type ProfileUpdateOptions struct {
	Name        string
	LastName    string
	PhoneNumber string
}

// ExecuteProfileUpdateCommand executes the profile update command.
func ExecuteProfileUpdateCommand(ctx context.Context, cfg *config.Config, opts *ProfileUpdateOptions) {
	c := mustComponents(ctx, cfg)

	if opts.Name == "" && opts.LastName == "" && opts.PhoneNumber == "" {
		logger.Fatal(ctx, "Nothing to update: pass at least one of --name, --last-name, --phone.")
	}

	response, err := c.accounts.UpdateProfile(ctx, &authapi.UpdateProfileRequest{
		Name:        opts.Name,
		LastName:    opts.LastName,
		PhoneNumber: opts.PhoneNumber,
	})
	if err != nil {
		logger.Fatalf(ctx, "Profile update failed: %s", account.FriendlyMessage(err))
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Info(ctx, "Profile updated.")
	}
}
