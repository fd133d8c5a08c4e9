package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edunexus/auth-client/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var (
	forgotEmailFlag string

	passwordCmd = &cobra.Command{
		Use:   "password",
		Short: "Password recovery and change",
	}

	passwordForgotCmd = &cobra.Command{
		Use:   "forgot",
		Short: "Request a password reset code",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteForgotPasswordCommand(cmd.Context(), appConfig, forgotEmailFlag)
		},
	}

	passwordResetCmd = &cobra.Command{
		Use:   "reset {code}",
		Short: "Reset the password with the emailed code",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteResetPasswordCommand(cmd.Context(), appConfig, args[0])
		},
	}

	passwordChangeCmd = &cobra.Command{
		Use:   "change",
		Short: "Change the password of the logged-in account",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteChangePasswordCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	passwordForgotCmd.Flags().StringVarP(&forgotEmailFlag, "email", "e", "", "email of the account to recover.")
	_ = passwordForgotCmd.MarkFlagRequired("email")

	passwordCmd.AddCommand(passwordForgotCmd)
	passwordCmd.AddCommand(passwordResetCmd)
	passwordCmd.AddCommand(passwordChangeCmd)

	rootCmd.AddCommand(passwordCmd)
}
