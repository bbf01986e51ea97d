package extpolicy

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DirReader lists a directory. It exists so the sibling-extension discovery
// can be exercised against injected failures in tests; the production
// implementation reads the local filesystem.
type DirReader interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
}

// osDirReader reads directories from the local filesystem.
type osDirReader struct{}

func (osDirReader) ReadDir(dir string) ([]fs.DirEntry, error) {
	return os.ReadDir(dir) //nolint:wrapcheck // thin capability adapter.
}

// Checker evaluates import targets against an extension policy. It holds no
// per-target state; every target is decided independently.
type Checker struct {
	cfg  Config
	fsys DirReader
}

// NewChecker creates a Checker for the given policy configuration.
func NewChecker(cfg Config) *Checker {
	return &Checker{cfg: cfg, fsys: osDirReader{}}
}

// WithDirReader replaces the directory-listing capability, returning the
// checker for chaining.
func (c *Checker) WithDirReader(fsys DirReader) *Checker {
	c.fsys = fsys

	return c
}

// Check decides whether the target violates the policy. The second return
// value is false when the target is skipped or compliant.
//
// Targets are skipped when the specifier is a bare module name (no path
// separator), when upstream resolution failed, or when no canonical
// extension is determinable (extension-less resolved path with zero or
// several same-named siblings on disk).
func (c *Checker) Check(target ImportTarget) (Diagnostic, bool) {
	if target.ResolvedPath == "" {
		return Diagnostic{}, false
	}

	if !strings.ContainsAny(target.Specifier, `/\`) {
		return Diagnostic{}, false
	}

	siblings := c.siblingExtensions(target.ResolvedPath)

	canonical := filepath.Ext(target.ResolvedPath)
	if canonical == "" {
		// Extension-less resolved path: only a unique sibling makes the
		// canonical extension determinable. Anything else is ambiguous and
		// guessing would produce a wrong autofix.
		if len(siblings) != 1 {
			return Diagnostic{}, false
		}

		canonical = siblings[0]
	}

	specExt := path.Ext(target.Specifier)
	fixable := len(siblings) == 1

	switch c.cfg.StyleFor(canonical) {
	case StyleAlways:
		if specExt == canonical {
			return Diagnostic{}, false
		}

		return c.requireExt(target, canonical, fixable), true
	case StyleNever:
		if specExt != canonical {
			return Diagnostic{}, false
		}

		return c.forbidExt(target, canonical, fixable), true
	}

	return Diagnostic{}, false
}

// requireExt builds the diagnostic for a missing extension. The fix inserts
// the canonical extension immediately before the closing quote.
func (c *Checker) requireExt(target ImportTarget, canonical string, fixable bool) Diagnostic {
	diag := Diagnostic{
		MessageID: MsgRequireExt,
		Ext:       canonical,
		Span:      target.Span,
	}

	if fixable {
		at := target.Span.End - 1
		diag.Fix = &TextEdit{Start: at, End: at, NewText: canonical}
	}

	return diag
}

// forbidExt builds the diagnostic for a forbidden extension. The fix removes
// the trailing extension, located by last-index-of within the specifier and
// shifted past the opening quote.
func (c *Checker) forbidExt(target ImportTarget, canonical string, fixable bool) Diagnostic {
	diag := Diagnostic{
		MessageID: MsgForbidExt,
		Ext:       canonical,
		Span:      target.Span,
	}

	if fixable {
		idx := strings.LastIndex(target.Specifier, canonical)
		if idx >= 0 {
			start := target.Span.Start + 1 + idx
			diag.Fix = &TextEdit{Start: start, End: start + len(canonical)}
		}
	}

	return diag
}

// siblingExtensions returns the extensions of all directory entries sharing
// the resolved path's base name, in directory-listing order. A directory
// that cannot be listed yields no siblings; the error is swallowed here on
// purpose so an unreadable directory degrades to "no siblings" rather than
// failing the run.
func (c *Checker) siblingExtensions(resolved string) []string {
	entries, err := c.fsys.ReadDir(filepath.Dir(resolved))
	if err != nil {
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(resolved), filepath.Ext(resolved))

	var exts []string

	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)

		if strings.TrimSuffix(name, ext) == base {
			exts = append(exts, ext)
		}
	}

	return exts
}
