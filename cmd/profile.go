package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edunexus/auth-client/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var (
	profileUpdateOptions app.ProfileUpdateOptions

	profileCmd = &cobra.Command{
		Use:   "profile",
		Short: "Show or update the account profile",
	}

	profileShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the profile of the logged-in account",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteProfileShowCommand(cmd.Context(), appConfig)
		},
	}

	profileUpdateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Long:  `Update the name, last name or phone number. Omitted flags are left unchanged.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteProfileUpdateCommand(cmd.Context(), appConfig, &profileUpdateOptions)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	updateFlags := profileUpdateCmd.Flags()
	updateFlags.StringVar(&profileUpdateOptions.Name, "name", "", "new first name.")
	updateFlags.StringVar(&profileUpdateOptions.LastName, "last-name", "", "new last name.")
	updateFlags.StringVar(&profileUpdateOptions.PhoneNumber, "phone", "", "new phone number.")

	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
}
