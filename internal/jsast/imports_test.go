package jsast_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extlint/extlint/internal/jsast"
)

func collect(t *testing.T, filename, src string) []jsast.ModuleRef {
	t.Helper()

	refs, err := jsast.NewParser().CollectModuleRefs(context.Background(), filename, []byte(src))
	require.NoError(t, err)

	return refs
}

func TestCollectModuleRefs_StaticImport(t *testing.T) {
	t.Parallel()

	src := `import { a } from "./a.js";` + "\n"

	refs := collect(t, "main.js", src)
	require.Len(t, refs, 1)
	assert.Equal(t, "./a.js", refs[0].Specifier)
	assert.Equal(t, `"./a.js"`, src[refs[0].Start:refs[0].End])
}

func TestCollectModuleRefs_SideEffectImport(t *testing.T) {
	t.Parallel()

	refs := collect(t, "main.js", `import "./setup.js";`)
	require.Len(t, refs, 1)
	assert.Equal(t, "./setup.js", refs[0].Specifier)
}

func TestCollectModuleRefs_ExportFrom(t *testing.T) {
	t.Parallel()

	src := `export { b } from "./b";` + "\n" + `export const c = "not-a-module";` + "\n"

	refs := collect(t, "main.js", src)
	require.Len(t, refs, 1)
	assert.Equal(t, "./b", refs[0].Specifier)
}

func TestCollectModuleRefs_DynamicImport(t *testing.T) {
	t.Parallel()

	refs := collect(t, "main.js", `const mod = await import("./lazy.js");`)
	require.Len(t, refs, 1)
	assert.Equal(t, "./lazy.js", refs[0].Specifier)
}

func TestCollectModuleRefs_Require(t *testing.T) {
	t.Parallel()

	src := `const a = require("./a");` + "\n" + `const b = notRequire("./b");` + "\n"

	refs := collect(t, "main.cjs", src)
	require.Len(t, refs, 1)
	assert.Equal(t, "./a", refs[0].Specifier)
}

func TestCollectModuleRefs_TemplateStringSkipped(t *testing.T) {
	t.Parallel()

	refs := collect(t, "main.js", "const m = await import(`./${name}.js`);")
	assert.Empty(t, refs)
}

func TestCollectModuleRefs_SourceOrder(t *testing.T) {
	t.Parallel()

	src := `import "./first.js";` + "\n" + `import "./second.js";` + "\n"

	refs := collect(t, "main.js", src)
	require.Len(t, refs, 2)
	assert.Equal(t, "./first.js", refs[0].Specifier)
	assert.Equal(t, "./second.js", refs[1].Specifier)
	assert.Less(t, refs[0].Start, refs[1].Start)
}

func TestCollectModuleRefs_TypeScript(t *testing.T) {
	t.Parallel()

	src := `import type { T } from "./types";` + "\n" + `export * from "./util.ts";` + "\n"

	refs := collect(t, "main.ts", src)
	require.Len(t, refs, 2)
	assert.Equal(t, "./types", refs[0].Specifier)
	assert.Equal(t, "./util.ts", refs[1].Specifier)
}

func TestCollectModuleRefs_TSX(t *testing.T) {
	t.Parallel()

	src := `import App from "./App";` + "\n" + `export const el = <App prop="./not-a-module" />;` + "\n"

	refs := collect(t, "main.tsx", src)
	require.Len(t, refs, 1)
	assert.Equal(t, "./App", refs[0].Specifier)
}

func TestCollectModuleRefs_UnsupportedFile(t *testing.T) {
	t.Parallel()

	_, err := jsast.NewParser().CollectModuleRefs(context.Background(), "notes.txt", []byte("hello"))
	require.ErrorIs(t, err, jsast.ErrUnsupportedFile)
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	parser := jsast.NewParser()

	assert.True(t, parser.IsSupported("a.js"))
	assert.True(t, parser.IsSupported("a.TSX"))
	assert.True(t, parser.IsSupported("a.mts"))
	assert.False(t, parser.IsSupported("a.go"))
	assert.False(t, parser.IsSupported("Makefile"))
}

func TestLanguage_ByExtension(t *testing.T) {
	t.Parallel()

	parser := jsast.NewParser()

	assert.Equal(t, jsast.LangJavaScript, parser.Language("a.mjs", nil))
	assert.Equal(t, jsast.LangTypeScript, parser.Language("a.cts", nil))
	assert.Equal(t, jsast.LangTSX, parser.Language("a.tsx", nil))
}
