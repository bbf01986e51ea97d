package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/extlint/extlint/internal/resolve"
)

// ErrInvalidOptions indicates rule options that fail the options schema.
var ErrInvalidOptions = errors.New("invalid rule options")

// styleEnum is the schema fragment accepting exactly the two style values.
func styleEnum() map[string]any {
	return map[string]any{"enum": []any{"always", "never"}}
}

// optionsSchema builds the JSON Schema for the rule options. Override keys
// are restricted to the shared known-extension list so a typo like "js"
// (missing dot) is rejected instead of silently never matching.
func optionsSchema() map[string]any {
	overrideProps := make(map[string]any, len(resolve.DefaultExtensions))
	for _, ext := range resolve.DefaultExtensions {
		overrideProps[ext] = styleEnum()
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"style": styleEnum(),
			"overrides": map[string]any{
				"type":                 "object",
				"properties":           overrideProps,
				"additionalProperties": false,
			},
		},
		"additionalProperties": false,
	}
}

// ValidateRuleOptions checks the rule options against the options schema.
func ValidateRuleOptions(rule RuleConfig) error {
	overrides := make(map[string]any, len(rule.Overrides))
	for ext, style := range rule.Overrides {
		overrides[ext] = style
	}

	document := map[string]any{
		"style":     rule.Style,
		"overrides": overrides,
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(optionsSchema()),
		gojsonschema.NewGoLoader(document),
	)
	if err != nil {
		return fmt.Errorf("options schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		details = append(details, resultErr.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(details, "; "))
}
