package jsast

import (
	"context"
	"fmt"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Node types of interest in the JS/TS grammars.
const (
	nodeImportStatement = "import_statement"
	nodeExportStatement = "export_statement"
	nodeCallExpression  = "call_expression"
	nodeArguments       = "arguments"
	nodeString          = "string"
	nodeImport          = "import"
	nodeIdentifier      = "identifier"
)

// requireFunc is the CommonJS import function name.
const requireFunc = "require"

// ModuleRef is one module reference found in a source file. Start and End
// are byte offsets of the specifier string literal, quotes included;
// Specifier is the unquoted text.
type ModuleRef struct {
	Specifier string
	Start     int
	End       int
}

// CollectModuleRefs parses the file and returns all module references from
// static imports, re-exports, dynamic import() calls, and require() calls,
// in source order. Only plain string literal specifiers are collected;
// template strings and computed expressions are not statically analyzable.
func (p *Parser) CollectModuleRefs(ctx context.Context, filename string, content []byte) ([]ModuleRef, error) {
	tree, err := p.Parse(ctx, filename, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var refs []ModuleRef

	collectRefs(tree.RootNode(), content, &refs)

	return refs, nil
}

// collectRefs walks the tree depth-first, appending module references.
func collectRefs(node sitter.Node, src []byte, refs *[]ModuleRef) {
	switch node.Type() {
	case nodeImportStatement, nodeExportStatement:
		if ref, ok := sourceString(node, src); ok {
			*refs = append(*refs, ref)
		}
	case nodeCallExpression:
		if ref, ok := callModuleRef(node, src); ok {
			*refs = append(*refs, ref)
		}
	}

	for idx := range node.NamedChildCount() {
		collectRefs(node.NamedChild(idx), src, refs)
	}
}

// sourceString returns the module source of an import/export statement: its
// first direct string child. Export statements without a source clause have
// none.
func sourceString(node sitter.Node, src []byte) (ModuleRef, bool) {
	for idx := range node.NamedChildCount() {
		child := node.NamedChild(idx)
		if child.Type() == nodeString {
			return stringRef(child, src), true
		}
	}

	return ModuleRef{}, false
}

// callModuleRef returns the module reference of a dynamic import() or
// require() call with a single string literal argument.
func callModuleRef(node sitter.Node, src []byte) (ModuleRef, bool) {
	callee := node.NamedChild(0)
	if callee.IsNull() {
		return ModuleRef{}, false
	}

	switch callee.Type() {
	case nodeImport:
	case nodeIdentifier:
		if nodeText(callee, src) != requireFunc {
			return ModuleRef{}, false
		}
	default:
		return ModuleRef{}, false
	}

	for idx := range node.NamedChildCount() {
		child := node.NamedChild(idx)
		if child.Type() != nodeArguments {
			continue
		}

		first := child.NamedChild(0)
		if !first.IsNull() && first.Type() == nodeString {
			return stringRef(first, src), true
		}

		return ModuleRef{}, false
	}

	return ModuleRef{}, false
}

// stringRef builds a ModuleRef from a string literal node, stripping the
// surrounding quote characters from the specifier text.
func stringRef(node sitter.Node, src []byte) ModuleRef {
	start := int(node.StartByte())
	end := int(node.EndByte())

	text := nodeText(node, src)

	specifier := text
	if len(text) >= 2 {
		specifier = text[1 : len(text)-1]
	}

	return ModuleRef{Specifier: specifier, Start: start, End: end}
}

// nodeText returns the source text covered by the node.
func nodeText(node sitter.Node, src []byte) string {
	start := node.StartByte()
	end := node.EndByte()

	if end <= uint(len(src)) && start <= end {
		return string(src[start:end])
	}

	return ""
}

// String implements fmt.Stringer for debug logging.
func (r ModuleRef) String() string {
	return fmt.Sprintf("%q [%d:%d)", r.Specifier, r.Start, r.End)
}
