package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "auth-client",
		Short: "Sign in, register and manage your account from the terminal.",
		Long: `auth-client is a CLI companion to the web application's account system.

It keeps a local session (access and refresh tokens) and transparently
refreshes it when the server reports it expired, so authenticated commands
keep working without re-entering credentials.

Common flows:
- 'login' signs in with email and password (or via browser for Google)
- 'register' walks through the multi-step sign-up form
- 'status' shows who is signed in and when the session expires
- 'account' and 'password' cover activation, unlock and recovery`,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	persistentFlags := rootCmd.PersistentFlags()
	persistentFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))
	persistentFlags.String("api-url", "", "override the authentication API base URL.")
	persistentFlags.String("state-dir", "", "override the directory holding session state.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	bindFlagsToConfig(cmd.Flags(), appConfig)

	if err = config.ValidateConfig(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Invalid configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// bindFlagsToConfig applies explicitly set command-line flags on top of the
// loaded configuration. Unset flags leave the file values untouched.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) {
	if flag := flags.Lookup("api-url"); flag != nil && flag.Changed {
		value, _ := flags.GetString("api-url")
		cfg.APIBaseURL = strings.TrimSuffix(value, "/")
	}

	if flag := flags.Lookup("state-dir"); flag != nil && flag.Changed {
		cfg.StateDir, _ = flags.GetString("state-dir")
	}
}
