package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/extlint/extlint/internal/config"
	"github.com/extlint/extlint/internal/lint"
)

// Tool name constants.
const (
	ToolNameLint = "extlint_lint"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyPath indicates the path parameter is empty.
	ErrEmptyPath = errors.New("path parameter is required and must not be empty")
	// ErrPathNotAbsolute indicates the path is not an absolute path.
	ErrPathNotAbsolute = errors.New("path must be an absolute path")
	// ErrPathNotFound indicates the path does not exist.
	ErrPathNotFound = errors.New("path does not exist")
)

// LintInput is the input schema for the extlint_lint tool.
type LintInput struct {
	Overrides map[string]string `json:"overrides,omitempty" jsonschema:"optional per-extension style overrides (e.g. {\".json\": \"always\"})"`
	Path      string            `json:"path"                jsonschema:"absolute path to a file or directory to lint"`
	Style     string            `json:"style,omitempty"     jsonschema:"default extension style: always or never"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// handleLint processes extlint_lint tool calls.
func (s *Server) handleLint(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input LintInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validatePathInput(input.Path)
	if err != nil {
		return errorResult(err)
	}

	cfg, err := s.toolConfig(input)
	if err != nil {
		return errorResult(err)
	}

	runner := lint.NewRunner(cfg, s.logger, s.tracer)

	result, err := runner.Run(ctx, []string{input.Path})
	if err != nil {
		return errorResult(fmt.Errorf("lint: %w", err))
	}

	return jsonResult(result)
}

// toolConfig derives a per-call configuration from the server config and the
// tool input overrides.
func (s *Server) toolConfig(input LintInput) (*config.Config, error) {
	cfg := *s.cfg

	if input.Style != "" {
		cfg.Rule.Style = input.Style
	}

	if len(input.Overrides) > 0 {
		merged := make(map[string]string, len(s.cfg.Rule.Overrides)+len(input.Overrides))
		for ext, style := range s.cfg.Rule.Overrides {
			merged[ext] = style
		}

		for ext, style := range input.Overrides {
			merged[ext] = style
		}

		cfg.Rule.Overrides = merged
	}

	err := config.Validate(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

// validatePathInput checks the lint path constraints.
func validatePathInput(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %s", ErrPathNotAbsolute, path)
	}

	_, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	return nil
}
