package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/wikiplan/internal/structure"
)

// useTestConfig points loadConfig at a nonexistent file so tests always
// run with defaults, regardless of the developer's real config.
func useTestConfig(t *testing.T) {
	t.Helper()
	old := configPath
	configPath = filepath.Join(t.TempDir(), "missing.toml")
	t.Cleanup(func() { configPath = old })
}

func TestVersionString(t *testing.T) {
	s := versionString()
	assert.Contains(t, s, "wikiplan")
	assert.Contains(t, s, "dev")
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("file content"), 0o644))

	got, err := readInput(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "file content", got)
}

func TestReadInputFromStdin(t *testing.T) {
	got, err := readInput(strings.NewReader("piped content"), "")
	require.NoError(t, err)
	assert.Equal(t, "piped content", got)

	got, err = readInput(strings.NewReader("dash means stdin"), "-")
	require.NoError(t, err)
	assert.Equal(t, "dash means stdin", got)
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput(nil, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

const sampleResponse = `<wiki_structure>
  <title>Demo</title>
  <description>Plan</description>
  <pages>
    <page id="page-1">
      <title>Home</title>
      <importance>high</importance>
    </page>
  </pages>
</wiki_structure>`

func TestParseCommandJSON(t *testing.T) {
	useTestConfig(t)

	cmd := parseCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(sampleResponse))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var ws structure.WikiStructure
	require.NoError(t, json.Unmarshal(out.Bytes(), &ws))
	assert.Equal(t, "Demo", ws.Title)
	require.Len(t, ws.Pages, 1)
	assert.Equal(t, "page-1", ws.Pages[0].ID)
}

func TestParseCommandXMLFormat(t *testing.T) {
	useTestConfig(t)

	cmd := parseCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(sampleResponse))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "xml"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "<wiki_structure>")
	assert.Contains(t, out.String(), `<page id="page-1">`)
}

func TestParseCommandFailureCarriesAllReasons(t *testing.T) {
	useTestConfig(t)

	cmd := parseCmd()
	cmd.SetIn(strings.NewReader("no structure here"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XML:")
	assert.Contains(t, err.Error(), "JSON:")
	assert.Contains(t, err.Error(), "Regex:")
}

func TestExtractCommandFiles(t *testing.T) {
	useTestConfig(t)

	dir := t.TempDir()
	page := filepath.Join(dir, "page.md")
	content := `Intro text.

<!-- DIAGRAM_DATA_START -->
{"nodes": [{"id": "a", "label": "A"}], "edges": [], "mermaidSource": "graph TD\n A[X]"}
<!-- DIAGRAM_DATA_END -->
`
	require.NoError(t, os.WriteFile(page, []byte(content), 0o644))

	cmd := extractCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{page})

	require.NoError(t, cmd.Execute())

	var results []fileDiagrams
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, page, results[0].File)
	require.Len(t, results[0].Diagrams, 1)
	assert.Equal(t, "graph TD\n A[X]", results[0].Diagrams[0].MermaidSource)
}

func TestExtractCommandStdinNoDiagrams(t *testing.T) {
	useTestConfig(t)

	cmd := extractCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("plain content, no markers"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, "[]", out.String())
}
