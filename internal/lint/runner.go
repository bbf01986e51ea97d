package lint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/extlint/extlint/internal/config"
	"github.com/extlint/extlint/internal/extpolicy"
	"github.com/extlint/extlint/internal/jsast"
	"github.com/extlint/extlint/internal/resolve"
)

// ErrNoInputs is returned when no lintable files match the given paths.
var ErrNoInputs = errors.New("no lintable files found")

// Runner performs one analysis run. Each file is processed independently;
// the runner holds no cross-file state beyond the result it accumulates.
type Runner struct {
	parser   *jsast.Parser
	resolver *resolve.Resolver
	checker  *extpolicy.Checker
	cfg      *config.Config
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(cfg *config.Config, logger *slog.Logger, tracer trace.Tracer) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer("extlint")
	}

	return &Runner{
		parser:   jsast.NewParser(),
		resolver: resolve.New(),
		checker:  extpolicy.NewChecker(cfg.Policy()),
		cfg:      cfg,
		logger:   logger,
		tracer:   tracer,
	}
}

// Run lints all lintable files under the given paths and returns the
// per-file diagnostics in walk order.
func (r *Runner) Run(ctx context.Context, paths []string) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "lint.run")
	defer span.End()

	files, err := r.expandPaths(paths)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputs, strings.Join(paths, ", "))
	}

	span.SetAttributes(attribute.Int("lint.files", len(files)))

	result := &Result{FilesScanned: len(files)}

	for _, file := range files {
		diags, lintErr := r.LintFile(ctx, file)
		if lintErr != nil {
			return nil, lintErr
		}

		if len(diags) > 0 {
			result.Files = append(result.Files, FileResult{File: file, Diagnostics: diags})
		}
	}

	span.SetAttributes(attribute.Int("lint.diagnostics", result.TotalDiagnostics()))

	return result, nil
}

// LintFile lints a single file and returns its diagnostics in source order.
func (r *Runner) LintFile(ctx context.Context, path string) ([]Diagnostic, error) {
	content, err := os.ReadFile(path) //nolint:gosec // linting user-supplied paths is the point.
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	refs, err := r.parser.CollectModuleRefs(ctx, path, content)
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "linting file", "path", path, "module_refs", len(refs))

	var diags []Diagnostic

	for _, ref := range refs {
		resolved, _ := r.resolver.Resolve(path, ref.Specifier)

		target := extpolicy.ImportTarget{
			ResolvedPath: resolved,
			Specifier:    ref.Specifier,
			Span:         extpolicy.Span{Start: ref.Start, End: ref.End},
		}

		diag, ok := r.checker.Check(target)
		if !ok {
			continue
		}

		line, column := position(content, diag.Span.Start)

		diags = append(diags, Diagnostic{
			File:      path,
			Line:      line,
			Column:    column,
			RuleID:    RuleID,
			MessageID: string(diag.MessageID),
			Message:   diag.Message(),
			Ext:       diag.Ext,
			Span:      diag.Span,
			Fix:       diag.Fix,
		})
	}

	return diags, nil
}

// expandPaths resolves the argument paths into the ordered list of lintable
// files, honoring the configured extension and exclusion lists.
func (r *Runner) expandPaths(paths []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			if r.lintable(root) {
				files = append(files, root)
			}

			continue
		}

		walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				if path != root && r.excluded(entry.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if r.lintable(path) {
				files = append(files, path)
			}

			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk %s: %w", root, walkErr)
		}
	}

	return files, nil
}

// lintable reports whether the file's extension is in the configured list.
func (r *Runner) lintable(path string) bool {
	return slices.Contains(r.cfg.Lint.Extensions, strings.ToLower(filepath.Ext(path)))
}

// excluded reports whether a directory name is skipped during the walk.
// Dot-directories are always skipped.
func (r *Runner) excluded(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(r.cfg.Lint.Exclude, name)
}
