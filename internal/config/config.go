package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/storage"
)

// Config holds all configuration settings.
type Config struct {
	// APIBaseURL is the base URL of the authentication API, e.g. "http://localhost:8080/api".
	APIBaseURL string `mapstructure:"api_base_url"`
	// WebBaseURL is the base URL of the web front-end, used by the browser-assisted login.
	WebBaseURL string `mapstructure:"web_base_url"`
	// RememberedEmail is the last account email used, persisted for login convenience.
	RememberedEmail string `mapstructure:"remembered_email"`
	// StateDir is the directory holding persisted client state (tokens, drafts).
	StateDir string `mapstructure:"state_dir"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the timeout applied to every API request (e.g. "30s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// RedirectDelay is how long a success message stays visible before navigation (e.g. "1500ms").
	RedirectDelay string `mapstructure:"redirect_delay"`
	// AlertDismissDelay is how long error alerts stay visible before auto-dismissal.
	AlertDismissDelay string `mapstructure:"alert_dismiss_delay"`
	// ResendCooldown is the minimum interval between activation-code resends.
	ResendCooldown string `mapstructure:"resend_cooldown"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedRedirectDelay is the parsed redirect delay.
	ParsedRedirectDelay time.Duration
	// ParsedAlertDismissDelay is the parsed alert dismissal delay.
	ParsedAlertDismissDelay time.Duration
	// ParsedResendCooldown is the parsed resend cooldown.
	ParsedResendCooldown time.Duration
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".auth-client.yaml"

	// DefaultAPIBaseURL is the default authentication API base URL.
	DefaultAPIBaseURL = "http://localhost:8080/api"

	// DefaultWebBaseURL is the default web front-end base URL.
	DefaultWebBaseURL = "http://localhost:3000"

	// DefaultRequestTimeout matches the web client's 30-second request timeout.
	DefaultRequestTimeout = "30s"

	// DefaultRedirectDelay matches the registration page's success display delay.
	DefaultRedirectDelay = "1500ms"

	// DefaultAlertDismissDelay is the default error alert lifetime.
	DefaultAlertDismissDelay = "5s"

	// DefaultResendCooldown is the default pause enforced between activation-code resends.
	DefaultResendCooldown = "60s"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a dumped request or response.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// stateSubdirectory is where client state lives under the user's home directory.
	stateSubdirectory = ".auth-client"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyAPIBaseURL indicates that the API base URL is missing.
	ErrEmptyAPIBaseURL = errors.New("api_base_url cannot be empty")
	// ErrInvalidAPIBaseURL indicates that the API base URL cannot be parsed.
	ErrInvalidAPIBaseURL = errors.New("api_base_url is not a valid URL")
	// ErrInvalidWebBaseURL indicates that the web base URL cannot be parsed.
	ErrInvalidWebBaseURL = errors.New("web_base_url is not a valid URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidRedirectDelay indicates that the redirect delay is invalid.
	ErrInvalidRedirectDelay = errors.New("redirect_delay must be positive")
	// ErrInvalidAlertDismissDelay indicates that the alert dismissal delay is invalid.
	ErrInvalidAlertDismissDelay = errors.New("alert_dismiss_delay must be positive")
	// ErrInvalidResendCooldown indicates that the resend cooldown is invalid.
	ErrInvalidResendCooldown = errors.New("resend_cooldown must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing file is not an error: every setting has a usable default.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	viper.SetDefault("api_base_url", DefaultAPIBaseURL)
	viper.SetDefault("web_base_url", DefaultWebBaseURL)
	viper.SetDefault("state_dir", defaultStateDir())
	viper.SetDefault("log_level", "info")
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("redirect_delay", DefaultRedirectDelay)
	viper.SetDefault("alert_dismiss_delay", DefaultAlertDismissDelay)
	viper.SetDefault("resend_cooldown", DefaultResendCooldown)

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config from file: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	apiBaseURL := strings.TrimSpace(cfg.APIBaseURL)
	if apiBaseURL == "" {
		return ErrEmptyAPIBaseURL
	}

	if _, err := url.ParseRequestURI(apiBaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAPIBaseURL, err)
	}

	cfg.APIBaseURL = strings.TrimRight(apiBaseURL, "/")

	if webBaseURL := strings.TrimSpace(cfg.WebBaseURL); webBaseURL != "" {
		if _, err := url.ParseRequestURI(webBaseURL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWebBaseURL, err)
		}

		cfg.WebBaseURL = strings.TrimRight(webBaseURL, "/")
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	var err error

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedRedirectDelay, err = time.ParseDuration(cfg.RedirectDelay)
	if err != nil {
		return fmt.Errorf("failed to parse redirect delay: %w", err)
	}

	if cfg.ParsedRedirectDelay <= 0 {
		return ErrInvalidRedirectDelay
	}

	cfg.ParsedAlertDismissDelay, err = time.ParseDuration(cfg.AlertDismissDelay)
	if err != nil {
		return fmt.Errorf("failed to parse alert dismissal delay: %w", err)
	}

	if cfg.ParsedAlertDismissDelay <= 0 {
		return ErrInvalidAlertDismissDelay
	}

	cfg.ParsedResendCooldown, err = time.ParseDuration(cfg.ResendCooldown)
	if err != nil {
		return fmt.Errorf("failed to parse resend cooldown: %w", err)
	}

	if cfg.ParsedResendCooldown <= 0 {
		return ErrInvalidResendCooldown
	}

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
// Only the remembered account email is rewritten; everything else is left untouched.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.RememberedEmail, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	updateRememberedEmailInNode(&node, cfg.RememberedEmail)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, storage.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, rememberedEmail string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("remembered_email", rememberedEmail)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateRememberedEmailInNode updates the remembered_email value in the YAML node tree.
func updateRememberedEmailInNode(node *yaml.Node, rememberedEmail string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "remembered_email" {
			valueNode.Value = rememberedEmail

			return
		}
	}

	// Key not present yet: append it to the end of the mapping.
	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "remembered_email"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: rememberedEmail},
	)
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return stateSubdirectory
	}

	return home + string(os.PathSeparator) + stateSubdirectory
}
