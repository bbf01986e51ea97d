// Package config provides configuration loading and validation for extlint.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/extlint/extlint/internal/extpolicy"
)

// Sentinel validation errors.
var (
	ErrInvalidStyle  = errors.New("invalid rule style")
	ErrInvalidFormat = errors.New("invalid output format")
)

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTML = "html"
)

// lintableExtensions are the source file extensions linted by default.
var lintableExtensions = []string{
	".js", ".jsx", ".mjs", ".cjs",
	".ts", ".tsx", ".mts", ".cts",
}

// Config holds all configuration for one extlint run.
type Config struct {
	Rule      RuleConfig      `mapstructure:"rule"`
	Lint      LintConfig      `mapstructure:"lint"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// RuleConfig holds the import-extension rule options: the default style and
// per-extension overrides.
type RuleConfig struct {
	Style     string            `mapstructure:"style"`
	Overrides map[string]string `mapstructure:"overrides"`
}

// LintConfig holds driver options.
type LintConfig struct {
	Extensions []string `mapstructure:"extensions"`
	Exclude    []string `mapstructure:"exclude"`
	Format     string   `mapstructure:"format"`
	Fix        bool     `mapstructure:"fix"`
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds OTLP export options. An empty endpoint disables
// telemetry entirely.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	Insecure     bool   `mapstructure:"insecure"`
}

// Load loads configuration from file and environment variables. An empty
// configPath searches for .extlint.yaml in the working directory.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".extlint")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix("EXTLINT")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := Validate(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Default returns the configuration used when no file or environment is
// present.
func Default() *Config {
	viperCfg := viper.New()
	setDefaults(viperCfg)

	var config Config

	_ = viperCfg.Unmarshal(&config) //nolint:errcheck // defaults always unmarshal.

	return &config
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("rule.style", string(extpolicy.StyleAlways))
	viperCfg.SetDefault("rule.overrides", map[string]string{})

	viperCfg.SetDefault("lint.extensions", lintableExtensions)
	viperCfg.SetDefault("lint.exclude", []string{"node_modules"})
	viperCfg.SetDefault("lint.format", FormatText)
	viperCfg.SetDefault("lint.fix", false)

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.insecure", false)
}

// Validate validates the configuration, including the schema check over the
// rule options.
func Validate(config *Config) error {
	if !extpolicy.Style(config.Rule.Style).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, config.Rule.Style)
	}

	switch config.Lint.Format {
	case FormatText, FormatJSON, FormatYAML, FormatHTML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Lint.Format)
	}

	return ValidateRuleOptions(config.Rule)
}

// Policy converts the rule options into the policy value threaded through
// per-target checks.
func (c *Config) Policy() extpolicy.Config {
	policy := extpolicy.Config{
		DefaultStyle: extpolicy.Style(c.Rule.Style),
		Overrides:    make(map[string]extpolicy.Style, len(c.Rule.Overrides)),
	}

	for ext, style := range c.Rule.Overrides {
		policy.Overrides[ext] = extpolicy.Style(style)
	}

	return policy
}
