package extpolicy

import "fmt"

// MessageID identifies a diagnostic message in the rule's catalog.
type MessageID string

// Message catalog identifiers.
const (
	// MsgRequireExt reports a specifier missing its file extension.
	MsgRequireExt MessageID = "requireExt"

	// MsgForbidExt reports a specifier carrying a forbidden file extension.
	MsgForbidExt MessageID = "forbidExt"
)

// messageTemplates maps message IDs to their printf templates.
var messageTemplates = map[MessageID]string{
	MsgRequireExt: "require file extension '%s'.",
	MsgForbidExt:  "forbid file extension '%s'.",
}

// Span is a half-open byte offset range [Start, End) in the source unit.
type Span struct {
	Start int
	End   int
}

// TextEdit is a single text replacement over an absolute byte offset range.
// A zero-width range is an insertion.
type TextEdit struct {
	Start   int
	End     int
	NewText string
}

// ImportTarget is one import/export statement's module reference, produced by
// the syntax-tree enumerator. Span covers the specifier string literal
// including its quote characters; Specifier is the unquoted text.
type ImportTarget struct {
	// ResolvedPath is the absolute on-disk path the specifier resolves to,
	// or empty when upstream resolution failed.
	ResolvedPath string

	Specifier string
	Span      Span
}

// Diagnostic is a single policy violation, optionally carrying a fix.
type Diagnostic struct {
	MessageID MessageID

	// Ext is the canonical extension the message refers to.
	Ext string

	// Span locates the specifier string literal that was flagged.
	Span Span

	// Fix is the suggested text edit, nil when no safe fix exists.
	Fix *TextEdit
}

// Message renders the diagnostic's catalog message.
func (d Diagnostic) Message() string {
	return fmt.Sprintf(messageTemplates[d.MessageID], d.Ext)
}

// HasFix reports whether the diagnostic carries a fix.
func (d Diagnostic) HasFix() bool {
	return d.Fix != nil
}
