package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extlint/extlint/internal/config"
	"github.com/extlint/extlint/internal/extpolicy"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, "always", cfg.Rule.Style)
	assert.Empty(t, cfg.Rule.Overrides)
	assert.Contains(t, cfg.Lint.Extensions, ".ts")
	assert.Contains(t, cfg.Lint.Exclude, "node_modules")
	assert.Equal(t, config.FormatText, cfg.Lint.Format)
	assert.False(t, cfg.Lint.Fix)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "extlint.yaml")
	content := `
rule:
  style: never
  overrides:
    .json: always
lint:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Rule.Style)
	assert.Equal(t, "always", cfg.Rule.Overrides[".json"])
	assert.Equal(t, config.FormatJSON, cfg.Lint.Format)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_RejectsBadStyle(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rule.Style = "sometimes"

	err := config.Validate(cfg)
	require.ErrorIs(t, err, config.ErrInvalidStyle)
}

func TestValidate_RejectsBadFormat(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Lint.Format = "xml"

	err := config.Validate(cfg)
	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestValidateRuleOptions_UnknownExtensionKey(t *testing.T) {
	t.Parallel()

	err := config.ValidateRuleOptions(config.RuleConfig{
		Style:     "always",
		Overrides: map[string]string{"js": "never"},
	})
	require.ErrorIs(t, err, config.ErrInvalidOptions)
}

func TestValidateRuleOptions_BadOverrideValue(t *testing.T) {
	t.Parallel()

	err := config.ValidateRuleOptions(config.RuleConfig{
		Style:     "always",
		Overrides: map[string]string{".js": "maybe"},
	})
	require.ErrorIs(t, err, config.ErrInvalidOptions)
}

func TestValidateRuleOptions_Valid(t *testing.T) {
	t.Parallel()

	err := config.ValidateRuleOptions(config.RuleConfig{
		Style:     "never",
		Overrides: map[string]string{".js": "always", ".json": "always"},
	})
	require.NoError(t, err)
}

func TestPolicy(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rule.Style = "never"
	cfg.Rule.Overrides = map[string]string{".json": "always"}

	policy := cfg.Policy()

	assert.Equal(t, extpolicy.StyleNever, policy.DefaultStyle)
	assert.Equal(t, extpolicy.StyleAlways, policy.Overrides[".json"])
}
