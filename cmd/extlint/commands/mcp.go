package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/extlint/extlint/internal/config"
	"github.com/extlint/extlint/internal/mcp"
	"github.com/extlint/extlint/internal/observability"
	"github.com/extlint/extlint/pkg/version"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes extlint as a tool that AI agents can discover
and invoke:
  - extlint_lint: Lint a file or directory for import extension policy violations`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			providers, err := initMCPObservability(cfg, debug)
			if err != nil {
				return err
			}

			defer func() {
				shutdownErr := providers.Shutdown(context.Background())
				if shutdownErr != nil {
					providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
				}
			}()

			srv := mcp.NewServer(mcp.ServerDeps{
				Config: cfg,
				Logger: providers.Logger,
				Tracer: providers.Tracer,
			})

			return srv.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: .extlint.yaml in the working directory)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}

// initMCPObservability configures logging and tracing for the MCP server.
// Logs always go to stderr as JSON so the stdio transport stays clean.
func initMCPObservability(cfg *config.Config, debug bool) (observability.Providers, error) {
	obsCfg := observability.Config{
		ServiceName:    "extlint",
		ServiceVersion: version.Version,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure:   cfg.Telemetry.Insecure,
		LogLevel:       observability.ParseLevel(cfg.Logging.Level),
		LogJSON:        true,
	}

	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		obsCfg.OTLPEndpoint = endpoint
		obsCfg.OTLPInsecure = os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true"
	}

	if debug {
		obsCfg.LogLevel = observability.ParseLevel("debug")
	}

	return observability.Init(obsCfg)
}
