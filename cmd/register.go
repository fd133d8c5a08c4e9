package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edunexus/auth-client/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account with the step-by-step wizard",
	Long: `Walk through the three registration steps:

1. Identity: ID number, name, last name, date of birth
2. Contact: email and phone number
3. Credentials: password and terms of service

Answers are saved as you go (passwords excluded), so an interrupted run
resumes at the same step. Type 'back' at any prompt to revisit a previous
step; nothing you entered is lost.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteRegisterCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(registerCmd)
}
