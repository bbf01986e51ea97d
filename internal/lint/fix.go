package lint

import (
	"fmt"
	"os"
	"sort"

	"github.com/extlint/extlint/internal/extpolicy"
)

// ApplyEdits applies the edits to src and returns the result. Edits are
// applied last-to-first so earlier offsets stay valid; ranges must not
// overlap, which holds for this rule since every edit stays within its own
// specifier literal.
func ApplyEdits(src []byte, edits []extpolicy.TextEdit) []byte {
	ordered := make([]extpolicy.TextEdit, len(edits))
	copy(ordered, edits)

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	out := src

	for _, edit := range ordered {
		if edit.Start < 0 || edit.End > len(out) || edit.Start > edit.End {
			continue
		}

		patched := make([]byte, 0, len(out)+len(edit.NewText)-(edit.End-edit.Start))
		patched = append(patched, out[:edit.Start]...)
		patched = append(patched, edit.NewText...)
		patched = append(patched, out[edit.End:]...)
		out = patched
	}

	return out
}

// FixFiles rewrites every file in the result that has fixable diagnostics
// and returns the number of applied fixes.
func FixFiles(result *Result) (int, error) {
	applied := 0

	for _, file := range result.Files {
		var edits []extpolicy.TextEdit

		for _, diag := range file.Diagnostics {
			if diag.HasFix() {
				edits = append(edits, *diag.Fix)
			}
		}

		if len(edits) == 0 {
			continue
		}

		src, err := os.ReadFile(file.File) //nolint:gosec // rewriting linted files.
		if err != nil {
			return applied, fmt.Errorf("read %s: %w", file.File, err)
		}

		fixed := ApplyEdits(src, edits)

		info, err := os.Stat(file.File)
		if err != nil {
			return applied, fmt.Errorf("stat %s: %w", file.File, err)
		}

		writeErr := os.WriteFile(file.File, fixed, info.Mode().Perm())
		if writeErr != nil {
			return applied, fmt.Errorf("write %s: %w", file.File, writeErr)
		}

		applied += len(edits)
	}

	return applied, nil
}
