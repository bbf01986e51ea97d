// Package format renders lint results in the supported output formats.
package format

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/extlint/extlint/internal/lint"
)

// ErrUnknownFormat indicates an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Format names.
const (
	NameText = "text"
	NameJSON = "json"
	NameYAML = "yaml"
	NameHTML = "html"
)

// Options controls rendering.
type Options struct {
	// NoColor disables ANSI colors in the text format.
	NoColor bool

	// Duration is the wall time of the run, shown in the text summary.
	Duration time.Duration
}

// Formatter renders a lint result to a writer.
type Formatter interface {
	Format(w io.Writer, result *lint.Result) error
}

// New returns the formatter for the given format name.
func New(name string, options Options) (Formatter, error) {
	switch name {
	case NameText:
		return &textFormatter{options: options}, nil
	case NameJSON:
		return &jsonFormatter{}, nil
	case NameYAML:
		return &yamlFormatter{}, nil
	case NameHTML:
		return &htmlFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
