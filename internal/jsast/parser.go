// Package jsast parses JavaScript and TypeScript sources with tree-sitter
// and enumerates their module import/export references.
package jsast

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/src-d/enry/v2"
)

// Sentinel errors for parser operations.
var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	errNoRootNode      = errors.New("no root node")
	errPoolType        = errors.New("pool returned unexpected type")
)

// Language names.
const (
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangTSX        = "tsx"
)

// languageFuncs maps language names to their tree-sitter grammar functions.
var languageFuncs = map[string]func() unsafe.Pointer{
	LangJavaScript: javascript.GetLanguage,
	LangTypeScript: typescript.GetLanguage,
	LangTSX:        tsx.GetLanguage,
}

// extLanguages maps file extensions to language names. JSX parses with the
// JavaScript grammar; .tsx needs the dedicated TSX grammar.
var extLanguages = map[string]string{
	".js":  LangJavaScript,
	".jsx": LangJavaScript,
	".mjs": LangJavaScript,
	".cjs": LangJavaScript,
	".ts":  LangTypeScript,
	".mts": LangTypeScript,
	".cts": LangTypeScript,
	".tsx": LangTSX,
}

// enryLanguages maps enry detection results to language names, used as a
// content-based fallback for files with unknown extensions.
var enryLanguages = map[string]string{
	"JavaScript": LangJavaScript,
	"TypeScript": LangTypeScript,
	"JSX":        LangJavaScript,
	"TSX":        LangTSX,
}

// Parser parses JS/TS sources. It pools one tree-sitter parser per language
// and is safe for concurrent use.
type Parser struct {
	pools map[string]*sync.Pool
}

// NewParser creates a Parser with all supported grammars loaded.
func NewParser() *Parser {
	pools := make(map[string]*sync.Pool, len(languageFuncs))

	for name, fn := range languageFuncs {
		lang := sitter.NewLanguage(fn())

		pools[name] = &sync.Pool{
			New: func() any {
				tsParser := sitter.NewParser()
				tsParser.SetLanguage(lang)

				return tsParser
			},
		}
	}

	return &Parser{pools: pools}
}

// IsSupported reports whether the filename maps to a supported language by
// extension alone.
func (p *Parser) IsSupported(filename string) bool {
	_, ok := extLanguages[strings.ToLower(filepath.Ext(filename))]

	return ok
}

// Language returns the language name for the file, using the extension first
// and enry content detection as a fallback. Empty when unsupported.
func (p *Parser) Language(filename string, content []byte) string {
	if lang, ok := extLanguages[strings.ToLower(filepath.Ext(filename))]; ok {
		return lang
	}

	return enryLanguages[enry.GetLanguage(filepath.Base(filename), content)]
}

// Parse parses the file content and returns the syntax tree. The caller owns
// the tree and must Close it.
func (p *Parser) Parse(ctx context.Context, filename string, content []byte) (*sitter.Tree, error) {
	lang := p.Language(filename, content)
	if lang == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}

	pool := p.pools[lang]

	tsParser, ok := pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if tree.RootNode().IsNull() {
		tree.Close()

		return nil, fmt.Errorf("%w: %s", errNoRootNode, filename)
	}

	return tree, nil
}
