package format

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/extlint/extlint/internal/lint"
)

// jsonFormatter renders the result as indented JSON.
type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, result *lint.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(result)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// yamlFormatter renders the result as YAML.
type yamlFormatter struct{}

func (yamlFormatter) Format(w io.Writer, result *lint.Result) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close() //nolint:errcheck // flushed by Encode below.

	err := encoder.Encode(result)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}
