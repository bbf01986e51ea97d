package format_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extlint/extlint/internal/lint"
	"github.com/extlint/extlint/internal/lint/format"
)

func sampleResult() *lint.Result {
	return &lint.Result{
		FilesScanned: 3,
		Files: []lint.FileResult{
			{
				File: "src/main.js",
				Diagnostics: []lint.Diagnostic{
					{
						File:      "src/main.js",
						Line:      2,
						Column:    19,
						RuleID:    lint.RuleID,
						MessageID: "requireExt",
						Message:   "require file extension '.js'.",
						Ext:       ".js",
					},
				},
			},
		},
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := format.New("xml", format.Options{})
	require.ErrorIs(t, err, format.ErrUnknownFormat)
}

func TestTextFormat(t *testing.T) {
	t.Parallel()

	formatter, err := format.New(format.NameText, format.Options{NoColor: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, formatter.Format(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "src/main.js")
	assert.Contains(t, out, "2:19")
	assert.Contains(t, out, "requireExt")
	assert.Contains(t, out, "require file extension '.js'.")
	assert.Contains(t, out, "Files scanned")
	assert.Contains(t, out, "Fixable")
}

func TestJSONFormat(t *testing.T) {
	t.Parallel()

	formatter, err := format.New(format.NameJSON, format.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, formatter.Format(&buf, sampleResult()))

	var decoded lint.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 3, decoded.FilesScanned)
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, "requireExt", decoded.Files[0].Diagnostics[0].MessageID)
}

func TestYAMLFormat(t *testing.T) {
	t.Parallel()

	formatter, err := format.New(format.NameYAML, format.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, formatter.Format(&buf, sampleResult()))

	assert.Contains(t, buf.String(), "messageId: requireExt")
	assert.Contains(t, buf.String(), "ext: .js")
}

func TestHTMLFormat(t *testing.T) {
	t.Parallel()

	formatter, err := format.New(format.NameHTML, format.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, formatter.Format(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Import extension diagnostics")
}
