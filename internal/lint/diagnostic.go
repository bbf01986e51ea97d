// Package lint drives the import-extension analysis over files and
// directories: enumerating import targets, invoking the policy check, and
// applying fixes.
package lint

import (
	"github.com/extlint/extlint/internal/extpolicy"
)

// RuleID identifies the single rule this linter ships.
const RuleID = "import-extension"

// Diagnostic is one reported policy violation, positioned within a file.
type Diagnostic struct {
	File      string `json:"file"      yaml:"file"`
	Line      int    `json:"line"      yaml:"line"`
	Column    int    `json:"column"    yaml:"column"`
	RuleID    string `json:"ruleId"    yaml:"ruleId"`
	MessageID string `json:"messageId" yaml:"messageId"`
	Message   string `json:"message"   yaml:"message"`
	Ext       string `json:"ext"       yaml:"ext"`

	// Span is the byte range of the flagged specifier literal.
	Span extpolicy.Span `json:"-" yaml:"-"`

	// Fix is the suggested edit, nil when none is safe.
	Fix *extpolicy.TextEdit `json:"-" yaml:"-"`
}

// HasFix reports whether the diagnostic carries a fix.
func (d Diagnostic) HasFix() bool {
	return d.Fix != nil
}

// FileResult holds the diagnostics of one linted file.
type FileResult struct {
	File        string       `json:"file"        yaml:"file"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// Result is the outcome of one analysis run.
type Result struct {
	Files        []FileResult `json:"files"        yaml:"files"`
	FilesScanned int          `json:"filesScanned" yaml:"filesScanned"`
}

// TotalDiagnostics returns the diagnostic count across all files.
func (r *Result) TotalDiagnostics() int {
	total := 0
	for _, file := range r.Files {
		total += len(file.Diagnostics)
	}

	return total
}

// FixableCount returns how many diagnostics carry a fix.
func (r *Result) FixableCount() int {
	total := 0

	for _, file := range r.Files {
		for _, diag := range file.Diagnostics {
			if diag.HasFix() {
				total++
			}
		}
	}

	return total
}

// position converts a byte offset into 1-based line and column numbers.
func position(src []byte, offset int) (line, column int) {
	line, column = 1, 1

	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			column = 1

			continue
		}

		column++
	}

	return line, column
}
