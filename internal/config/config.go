// Package config loads the ambient configuration for the topsis CLI.
//
// None of the settings here alter the command-line contract; they tune
// logging, output formatting and exit-code behavior. Precedence is
// environment variables over the optional topsis.yaml file over built-in
// defaults.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "topsiscli/internal/errors"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// TOPSIS_LOGGING_LEVEL.
const EnvPrefix = "TOPSIS"

// DefaultConfigFile is the optional YAML config file looked up in the
// working directory.
const DefaultConfigFile = "topsis.yaml"

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	CLI     CLIConfig     `yaml:"cli" envconfig:"CLI"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// OutputConfig controls how the augmented table is written
type OutputConfig struct {
	Precision int    `yaml:"precision" envconfig:"PRECISION" validate:"gte=0,lte=17"`
	Delimiter string `yaml:"delimiter" envconfig:"DELIMITER" validate:"len=1"`
}

// CLIConfig contains CLI behavior switches.
type CLIConfig struct {
	// LegacyExitCode restores the original tool's behavior of exiting 0
	// after printing an error. Off by default; failures exit 1.
	LegacyExitCode bool `yaml:"legacy_exit_code" envconfig:"LEGACY_EXIT_CODE"`
}

// Default returns the built-in configuration defaults
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Precision: 4,
			Delimiter: ",",
		},
		CLI: CLIConfig{
			LegacyExitCode: false,
		},
	}
}

// Load loads configuration from the optional config file and environment
// variables, with environment taking precedence.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom loads configuration using the given config file path.
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, apperrors.NewConfigError("read config file", err).
				WithContext("path", configFile)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, apperrors.NewConfigError("parse config file", err).
				WithContext("path", configFile)
		}
	}

	// Environment overrides win over file values
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, apperrors.NewConfigError("load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks the configuration against its struct tags
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}
	return nil
}

// DelimiterRune returns the configured field separator as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Output.Delimiter {
		return r
	}
	return ','
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger builds a slog.Logger writing to w per the logging configuration.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}

	var handler slog.Handler
	switch c.Logging.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// String renders the effective configuration for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("logging=%s/%s output=%q@%d legacy_exit=%t",
		c.Logging.Level, c.Logging.Format,
		c.Output.Delimiter, c.Output.Precision,
		c.CLI.LegacyExitCode)
}
