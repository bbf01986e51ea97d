package format

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/extlint/extlint/internal/lint"
)

// textFormatter renders human-readable, optionally colored output.
type textFormatter struct {
	options Options
}

// Format writes one block per file with diagnostics, then a summary table.
func (f *textFormatter) Format(w io.Writer, result *lint.Result) error {
	if f.options.NoColor {
		color.NoColor = true //nolint:reassign // intentional override of library global.
	}

	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	for _, file := range result.Files {
		bold.Fprintln(w, file.File)

		for _, diag := range file.Diagnostics {
			fmt.Fprintf(w, "  %s  %s  %s\n",
				cyan.Sprintf("%d:%d", diag.Line, diag.Column),
				red.Sprint(diag.MessageID),
				diag.Message,
			)

			if preview := f.fixPreview(file.File, diag); preview != "" {
				fmt.Fprintf(w, "       fix: %s\n", preview)
			}
		}

		fmt.Fprintln(w)
	}

	f.writeSummary(w, result)

	return nil
}

// fixPreview renders the specifier literal before and after the suggested
// fix. A file that can no longer be read yields no preview.
func (f *textFormatter) fixPreview(path string, diag lint.Diagnostic) string {
	if !diag.HasFix() {
		return ""
	}

	src, err := os.ReadFile(path) //nolint:gosec // previewing the linted file.
	if err != nil || diag.Span.End > len(src) {
		return ""
	}

	edit := *diag.Fix
	if edit.Start < diag.Span.Start || edit.End > diag.Span.End {
		return ""
	}

	original := string(src[diag.Span.Start:diag.Span.End])
	relStart := edit.Start - diag.Span.Start
	relEnd := edit.End - diag.Span.Start
	fixed := original[:relStart] + edit.NewText + original[relEnd:]

	if color.NoColor {
		return fmt.Sprintf("%s -> %s", original, fixed)
	}

	dmp := diffmatchpatch.New()

	return dmp.DiffPrettyText(dmp.DiffMain(original, fixed, false))
}

// writeSummary appends the run totals.
func (f *textFormatter) writeSummary(w io.Writer, result *lint.Result) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false

	tbl.AppendRow(table.Row{"Files scanned", humanize.Comma(int64(result.FilesScanned))})
	tbl.AppendRow(table.Row{"Files with issues", humanize.Comma(int64(len(result.Files)))})
	tbl.AppendRow(table.Row{"Diagnostics", humanize.Comma(int64(result.TotalDiagnostics()))})
	tbl.AppendRow(table.Row{"Fixable", humanize.Comma(int64(result.FixableCount()))})

	if f.options.Duration > 0 {
		tbl.AppendRow(table.Row{"Duration", f.options.Duration.Round(time.Millisecond).String()})
	}

	tbl.Render()
}
