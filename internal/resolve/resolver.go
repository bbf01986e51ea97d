// Package resolve maps JavaScript/TypeScript module specifiers to files on
// disk. It covers relative and root-absolute specifiers only; bare package
// names are left unresolved so downstream checks can skip them.
package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions is the probe order for extension-less specifiers. It is
// also the extension vocabulary shared with option-schema validation.
var DefaultExtensions = []string{
	".js", ".jsx", ".mjs", ".cjs",
	".ts", ".tsx", ".mts", ".cts",
	".json", ".node",
}

// indexBase is the directory-index file base name.
const indexBase = "index"

// Resolver resolves module specifiers relative to an importing file.
type Resolver struct {
	exts []string
}

// New creates a Resolver probing the default extension list.
func New() *Resolver {
	return NewWithExtensions(DefaultExtensions)
}

// NewWithExtensions creates a Resolver probing the given extensions in order.
func NewWithExtensions(exts []string) *Resolver {
	return &Resolver{exts: exts}
}

// Resolve returns the absolute on-disk path the specifier refers to, seen
// from the file that contains the import. The second return value is false
// when the specifier is bare or nothing on disk matches.
//
// Resolution order follows the usual bundler convention: the literal path,
// then the path with each known extension appended, then a directory's
// index file.
func (r *Resolver) Resolve(fromFile, specifier string) (string, bool) {
	if !IsPathSpecifier(specifier) {
		return "", false
	}

	target := filepath.FromSlash(specifier)
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(fromFile), target)
	}

	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}

	if info, err := os.Stat(target); err == nil {
		if !info.IsDir() {
			return target, true
		}

		return r.resolveIndex(target)
	}

	for _, ext := range r.exts {
		candidate := target + ext
		if isFile(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// resolveIndex resolves a directory import to its index file.
func (r *Resolver) resolveIndex(dir string) (string, bool) {
	for _, ext := range r.exts {
		candidate := filepath.Join(dir, indexBase+ext)
		if isFile(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// IsPathSpecifier reports whether the specifier names a file path rather
// than a bare module (package) name.
func IsPathSpecifier(specifier string) bool {
	return strings.HasPrefix(specifier, "./") ||
		strings.HasPrefix(specifier, "../") ||
		strings.HasPrefix(specifier, "/") ||
		specifier == "." || specifier == ".."
}

func isFile(p string) bool {
	info, err := os.Stat(p)

	return err == nil && !info.IsDir()
}
