// Package commands implements the extlint CLI commands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/extlint/extlint/internal/config"
	"github.com/extlint/extlint/internal/lint"
	"github.com/extlint/extlint/internal/lint/format"
	"github.com/extlint/extlint/internal/observability"
	"github.com/extlint/extlint/pkg/version"
)

// ErrIssuesFound signals a clean run that reported diagnostics. The CLI maps
// it to exit code 1 without printing an error.
var ErrIssuesFound = errors.New("issues found")

// LintCommand holds the flags for the lint command.
type LintCommand struct {
	configPath string
	style      string
	formatName string
	output     string
	fix        bool
	noColor    bool
	verbose    bool
}

// NewLintCommand creates and configures the lint command.
func NewLintCommand() *cobra.Command {
	cmd := &LintCommand{}

	cobraCmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint import specifiers for file extension policy",
		Long: `Lint JavaScript and TypeScript files for import path extension policy.

Import specifiers that resolve to a file on disk must carry the file's
extension (style "always") or must omit it (style "never"). Bare module
specifiers and unresolved paths are ignored.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "Config file (default: .extlint.yaml in the working directory)")
	cobraCmd.Flags().StringVar(&cmd.style, "style", "", "Default extension style: always or never (overrides config)")
	cobraCmd.Flags().StringVarP(&cmd.formatName, "format", "f", "", "Output format: text, json, yaml, or html (overrides config)")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().BoolVar(&cmd.fix, "fix", false, "Rewrite files to apply suggested fixes")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Enable debug logging")

	return cobraCmd
}

// Run executes the lint command.
func (c *LintCommand) Run(cobraCmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	providers, err := c.initObservability(cfg)
	if err != nil {
		return err
	}

	defer func() {
		shutdownErr := providers.Shutdown(context.Background())
		if shutdownErr != nil {
			providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
		}
	}()

	start := time.Now()
	runner := lint.NewRunner(cfg, providers.Logger, providers.Tracer)

	result, err := runner.Run(cobraCmd.Context(), args)
	if err != nil {
		return err
	}

	if cfg.Lint.Fix {
		applied, fixErr := lint.FixFiles(result)
		if fixErr != nil {
			return fixErr
		}

		providers.Logger.Info("applied fixes", "count", applied)

		// Re-run so the report reflects the rewritten files.
		result, err = runner.Run(cobraCmd.Context(), args)
		if err != nil {
			return err
		}
	}

	writer, closeWriter, err := c.outputWriter()
	if err != nil {
		return err
	}
	defer closeWriter()

	formatErr := c.render(writer, cfg, result, time.Since(start))
	if formatErr != nil {
		return formatErr
	}

	if result.TotalDiagnostics() > 0 {
		return ErrIssuesFound
	}

	return nil
}

// loadConfig loads the configuration and applies flag overrides.
func (c *LintCommand) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	if c.style != "" {
		cfg.Rule.Style = c.style
	}

	if c.formatName != "" {
		cfg.Lint.Format = c.formatName
	}

	if c.fix {
		cfg.Lint.Fix = true
	}

	if c.verbose {
		cfg.Logging.Level = "debug"
	}

	validateErr := config.Validate(cfg)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

func (c *LintCommand) initObservability(cfg *config.Config) (observability.Providers, error) {
	return observability.Init(observability.Config{
		ServiceName:    "extlint",
		ServiceVersion: version.Version,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure:   cfg.Telemetry.Insecure,
		LogLevel:       observability.ParseLevel(cfg.Logging.Level),
		LogJSON:        cfg.Logging.Format == "json",
	})
}

// outputWriter opens the output destination. The returned closer is a no-op
// for stdout.
func (c *LintCommand) outputWriter() (io.Writer, func(), error) {
	if c.output == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(c.output) //nolint:gosec // user-chosen report path.
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}

// render formats the result to the writer.
func (c *LintCommand) render(w io.Writer, cfg *config.Config, result *lint.Result, duration time.Duration) error {
	formatter, err := format.New(cfg.Lint.Format, format.Options{
		NoColor:  c.noColor || c.output != "",
		Duration: duration,
	})
	if err != nil {
		return err
	}

	return formatter.Format(w, result)
}
