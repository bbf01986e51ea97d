// Package main provides the entry point for the extlint CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/extlint/extlint/cmd/extlint/commands"
	"github.com/extlint/extlint/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "extlint",
		Short: "extlint - import path extension linter for JavaScript and TypeScript",
		Long: `extlint enforces a consistent file extension policy on import specifiers.

Commands:
  lint      Lint files or directories for extension policy violations
  mcp       Start an MCP server exposing extlint as a tool`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewLintCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, commands.ErrIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "extlint %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
