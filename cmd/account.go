package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edunexus/auth-client/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var (
	resendEmailFlag string
	unlockEmailFlag string
	unlockCodeFlag  string
	newEmailFlag    string
	verifyCodeFlag  string

	accountCmd = &cobra.Command{
		Use:   "account",
		Short: "Account activation, unlock and email management",
	}

	accountActivateCmd = &cobra.Command{
		Use:   "activate {code}",
		Short: "Activate a freshly registered account",
		Long: `Activate an account with the code from the activation email.

Some deployments sign you in right away after activation; otherwise run
'auth-client login' afterwards.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteActivateCommand(cmd.Context(), appConfig, args[0])
		},
	}

	accountResendCmd = &cobra.Command{
		Use:   "resend",
		Short: "Request a new activation code",
		Long: `Request a new activation code for an unactivated account.

Resends are rate-limited; when the cooldown is still running the command
waits it out with a countdown and then retries.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteResendActivationCommand(cmd.Context(), appConfig, resendEmailFlag)
		},
	}

	accountUnlockCmd = &cobra.Command{
		Use:   "unlock",
		Short: "Unlock a locked account",
		Long: `Unlock an account locked after too many failed login attempts.

With --email an unlock code is requested; with --code the emailed code is
redeemed.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if unlockCodeFlag != "" {
				app.ExecuteUnlockVerifyCommand(cmd.Context(), appConfig, unlockCodeFlag)

				return
			}

			app.ExecuteUnlockRequestCommand(cmd.Context(), appConfig, unlockEmailFlag)
		},
	}

	accountEmailCmd = &cobra.Command{
		Use:   "email",
		Short: "Change the account's email address",
		Long: `Change the email address of the logged-in account.

With --new a verification code is sent to the new address; with --code the
emailed code is redeemed and the change takes effect.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if verifyCodeFlag != "" {
				app.ExecuteEmailChangeVerifyCommand(cmd.Context(), appConfig, verifyCodeFlag)

				return
			}

			app.ExecuteEmailChangeRequestCommand(cmd.Context(), appConfig, newEmailFlag)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	accountResendCmd.Flags().StringVarP(&resendEmailFlag, "email", "e", "", "email of the account to activate.")
	_ = accountResendCmd.MarkFlagRequired("email")

	unlockFlags := accountUnlockCmd.Flags()
	unlockFlags.StringVarP(&unlockEmailFlag, "email", "e", "", "email of the locked account.")
	unlockFlags.StringVar(&unlockCodeFlag, "code", "", "unlock code from the email.")
	accountUnlockCmd.MarkFlagsOneRequired("email", "code")

	emailFlags := accountEmailCmd.Flags()
	emailFlags.StringVar(&newEmailFlag, "new", "", "new email address.")
	emailFlags.StringVar(&verifyCodeFlag, "code", "", "verification code from the email.")
	accountEmailCmd.MarkFlagsOneRequired("new", "code")

	accountCmd.AddCommand(accountActivateCmd)
	accountCmd.AddCommand(accountResendCmd)
	accountCmd.AddCommand(accountUnlockCmd)
	accountCmd.AddCommand(accountEmailCmd)

	rootCmd.AddCommand(accountCmd)
}
