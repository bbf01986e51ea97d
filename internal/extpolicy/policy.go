// Package extpolicy implements the import file-extension policy check for
// JavaScript/TypeScript module specifiers.
package extpolicy

// Style is a policy value for a file extension in import specifiers.
type Style string

// Supported policy styles.
const (
	// StyleAlways requires specifiers to carry the file extension.
	StyleAlways Style = "always"

	// StyleNever forbids specifiers from carrying the file extension.
	StyleNever Style = "never"
)

// Valid reports whether the style is one of the supported values.
func (s Style) Valid() bool {
	return s == StyleAlways || s == StyleNever
}

// Config holds the extension policy for one analysis run. It is built once
// from rule options and is read-only thereafter.
type Config struct {
	// DefaultStyle applies to every extension without an override.
	DefaultStyle Style

	// Overrides maps an extension (with leading dot, e.g. ".js") to the
	// style that takes precedence over DefaultStyle for that extension.
	Overrides map[string]Style
}

// DefaultConfig returns the policy used when no options are configured.
func DefaultConfig() Config {
	return Config{DefaultStyle: StyleAlways}
}

// StyleFor returns the effective style for the given canonical extension.
func (c Config) StyleFor(ext string) Style {
	if style, ok := c.Overrides[ext]; ok {
		return style
	}

	return c.DefaultStyle
}
