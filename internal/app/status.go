package app

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/utils"
)

// ExecuteStatusCommand executes the status command. With checkServer set the
// server is also asked for its verdict on the stored token.
func ExecuteStatusCommand(ctx context.Context, cfg *config.Config, checkServer bool) {
	c := mustComponents(ctx, cfg)

	status, err := c.accounts.Status(ctx, checkServer)
	if err != nil {
		logger.Fatalf(ctx, "Failed to check status: %v", err)
	}

	if !status.Authenticated {
		fmt.Println("Not signed in. Run 'auth-client login' to sign in.")

		return
	}

	fmt.Printf("Signed in (session %s)\n", status.State)

	if status.Email != "" {
		fmt.Printf("  Account: %s\n", status.Email)
	}

	if status.Name != "" {
		fmt.Printf("  Name:    %s\n", status.Name)
	}

	if status.Role != "" {
		fmt.Printf("  Role:    %s\n", status.Role)
	}

	if !status.ExpiresAt.IsZero() {
		fmt.Printf("  Token:   %s, expires %s\n",
			utils.MaskToken(c.session.AccessToken()), humanize.Time(status.ExpiresAt))
	} else {
		fmt.Printf("  Token:   %s\n", utils.MaskToken(c.session.AccessToken()))
	}

	if !status.ServerChecked {
		return
	}

	if status.ServerValid {
		fmt.Println("  Server:  token accepted")
	} else if status.ServerMessage != "" {
		fmt.Printf("  Server:  token rejected (%s)\n", status.ServerMessage)
	} else {
		fmt.Println("  Server:  token rejected")
	}
}
