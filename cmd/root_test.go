package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/edunexus/auth-client/internal/config"
)

const testBaseConfigContent = `
api_base_url: "https://auth.example.com/api/"
web_base_url: "https://app.example.com"
remembered_email: "john.doe@test.com"
log_level: "debug"
request_timeout: "10s"
redirect_delay: "500ms"
alert_dismiss_delay: "3s"
resend_cooldown: "30s"
`

// TestLoadConfigFromFile tests that file values override the defaults and
// derived fields are parsed.
//
//nolint:paralleltest // Cannot run in parallel due to Viper global state.
func TestLoadConfigFromFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), config.DefaultConfigFilename)
	require.NoError(t, os.WriteFile(configFile, []byte(testBaseConfigContent), 0o600))

	cfg, err := config.LoadConfig(configFile)
	require.NoError(t, err)
	require.NoError(t, config.ValidateConfig(cfg))

	// The trailing slash is trimmed so request paths join cleanly.
	assert.Equal(t, "https://auth.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "https://app.example.com", cfg.WebBaseURL)
	assert.Equal(t, "john.doe@test.com", cfg.RememberedEmail)
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, 10*time.Second, cfg.ParsedRequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.ParsedRedirectDelay)
	assert.Equal(t, 3*time.Second, cfg.ParsedAlertDismissDelay)
	assert.Equal(t, 30*time.Second, cfg.ParsedResendCooldown)
}

// TestLoadConfigDefaults tests that a missing file still yields a usable config.
//
//nolint:paralleltest // Cannot run in parallel due to Viper global state.
func TestLoadConfigDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	cfg, err := config.LoadConfig(configFile)
	require.NoError(t, err)
	require.NoError(t, config.ValidateConfig(cfg))

	assert.Equal(t, config.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, config.DefaultWebBaseURL, cfg.WebBaseURL)
	assert.Equal(t, 30*time.Second, cfg.ParsedRequestTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.ParsedRedirectDelay)
	assert.Equal(t, time.Minute, cfg.ParsedResendCooldown)
}

// TestBindFlagsToConfig tests that only explicitly set flags override the
// loaded configuration.
func TestBindFlagsToConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		APIBaseURL: "https://auth.example.com/api",
		StateDir:   "/tmp/original-state",
	}

	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	emptyFlags.String("api-url", "", "")
	emptyFlags.String("state-dir", "", "")

	bindFlagsToConfig(emptyFlags, cfg)
	assert.Equal(t, "https://auth.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/original-state", cfg.StateDir)

	changedFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	changedFlags.String("api-url", "", "")
	changedFlags.String("state-dir", "", "")
	require.NoError(t, changedFlags.Parse([]string{
		"--api-url", "https://staging.example.com/api/",
		"--state-dir", "/tmp/other-state",
	}))

	bindFlagsToConfig(changedFlags, cfg)
	assert.Equal(t, "https://staging.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/other-state", cfg.StateDir)
}

// TestCommandTree tests that every user-facing command is registered.
func TestCommandTree(t *testing.T) {
	t.Parallel()

	expected := map[string][]string{
		"login":    nil,
		"logout":   nil,
		"register": nil,
		"status":   nil,
		"account":  {"activate", "resend", "unlock", "email"},
		"password": {"forgot", "reset", "change"},
		"profile":  {"show", "update"},
	}

	for name, subcommands := range expected {
		command := findCommand(t, rootCmd.Commands(), name)

		for _, subcommand := range subcommands {
			findCommand(t, command.Commands(), subcommand)
		}
	}
}

func findCommand(t *testing.T, commands []*cobra.Command, name string) *cobra.Command {
	t.Helper()

	for _, command := range commands {
		if command.Name() == name {
			return command
		}
	}

	t.Fatalf("command %q is not registered", name)

	return nil
}
