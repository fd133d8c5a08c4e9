package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edunexus/auth-client/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var (
	loginOptions app.LoginOptions

	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in and start a local session",
		Long: `Sign in with your email and password.

Prompts for anything not passed as a flag. With --remember the email is
stored in the configuration file and pre-filled next time.

For Google accounts use --browser: a Chrome window opens on the web login
page, you sign in there (including the Google flow), and the session is
picked up automatically.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteLoginCommand(cmd.Context(), appConfig, &loginOptions)
		},
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Sign out and drop the local session",
		Long: `Sign out of the current session.

The server is notified on a best-effort basis; the local tokens are removed
even when the server cannot be reached.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteLogoutCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	loginFlags := loginCmd.Flags()

	loginFlags.StringVarP(&loginOptions.Email, "email", "e", "", "account email (prompted when omitted).")
	loginFlags.StringVarP(&loginOptions.Password, "password", "p", "", "account password (prompted when omitted).")
	loginFlags.BoolVarP(&loginOptions.Remember, "remember", "r", false, "remember the email for the next login.")
	loginFlags.BoolVarP(&loginOptions.Browser, "browser", "b", false, "log in through a browser window (needed for Google accounts).")
	loginFlags.StringVar(&loginOptions.GoogleIDToken, "google-id-token", "", "log in with an already obtained Google ID token.")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
