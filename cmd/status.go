package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edunexus/auth-client/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var (
	statusServerFlag bool

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Long: `Show whether you are signed in, as whom, and when the session token
expires. With --server the token is also validated against the server.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteStatusCommand(cmd.Context(), appConfig, statusServerFlag)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	statusCmd.Flags().BoolVarP(&statusServerFlag, "server", "s", false, "also validate the token against the server.")

	rootCmd.AddCommand(statusCmd)
}
