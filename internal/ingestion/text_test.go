package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "## Subtitle")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3\n• Item 4"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
	assert.Contains(t, result, "• Item 4")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"

	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestCleanText_MessyPosting(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "messy_posting.txt"))
	require.NoError(t, err)

	result := CleanText(string(content))

	assert.Contains(t, result, "# Data Analyst,   Retail Insights")
	assert.Contains(t, result, "About the team: we build reporting for stores.")
	assert.Contains(t, result, "- Own SQL reporting pipelines")
	assert.Contains(t, result, "  * Partner with merchandising on weekly metrics")
	assert.Contains(t, result, "- Tableau or Looker   dashboards")
	assert.NotContains(t, result, "\n\n\n")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatHTML, DetectFormat("posting.html"))
	assert.Equal(t, FormatHTML, DetectFormat("POSTING.HTM"))
	assert.Equal(t, FormatText, DetectFormat("posting.md"))
	assert.Equal(t, FormatText, DetectFormat("posting.txt"))
	assert.Equal(t, FormatText, DetectFormat("posting"))
	assert.Equal(t, FormatDOCX, DetectFormat("posting.DOCX"))
}

func TestLoadJobText_TextIsVerbatim(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "jd.txt")
	testContent := "Data Analyst\n\n  Strong   SQL  \n"
	require.NoError(t, os.WriteFile(testFile, []byte(testContent), 0644))

	text, metadata, err := LoadJobText(testFile)
	require.NoError(t, err)

	assert.Equal(t, testContent, text)
	require.NotNil(t, metadata)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, testFile, metadata.Source)
	assert.Equal(t, ComputeHash(testContent), metadata.Hash)
}

func TestLoadJobText_HTML(t *testing.T) {
	text, metadata, err := LoadJobText(filepath.Join("testdata", "posting.html"))
	require.NoError(t, err)

	assert.Equal(t, FormatHTML, metadata.Format)
	assert.Contains(t, text, "Data Analyst")
	assert.Contains(t, text, "We are looking for an analyst to own retail reporting.")
	assert.Contains(t, text, "- Build SQL models for store sales\n- Automate weekly reporting")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Copyright")
}

func TestLoadJobText_FileNotFound(t *testing.T) {
	text, metadata, err := LoadJobText("/nonexistent/file.txt")

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadJobText_HashUniqueness(t *testing.T) {
	tmpDir := t.TempDir()
	testFile1 := filepath.Join(tmpDir, "test1.txt")
	testFile2 := filepath.Join(tmpDir, "test2.txt")
	require.NoError(t, os.WriteFile(testFile1, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(testFile2, []byte("Content 2"), 0644))

	_, metadata1, err := LoadJobText(testFile1)
	require.NoError(t, err)
	_, metadata2, err := LoadJobText(testFile2)
	require.NoError(t, err)

	assert.NotEqual(t, metadata1.Hash, metadata2.Hash)
}

func writeDocx(t *testing.T, paragraphs ...string) string {
	t.Helper()
	var body string
	for _, p := range paragraphs {
		body += `<w:p><w:r><w:t xml:space="preserve">` + p + `</w:t></w:r></w:p>`
	}
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "jd.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestLoadJobText_DOCX(t *testing.T) {
	path := writeDocx(t, "Data Analyst", "  ", "Strong  SQL and Python")

	text, metadata, err := LoadJobText(path)
	require.NoError(t, err)

	assert.Equal(t, "Data Analyst\nStrong SQL and Python\n", text)
	assert.Equal(t, FormatDOCX, metadata.Format)
}

func TestLoadJobText_CorruptDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, _, err := LoadJobText(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to extract text")
}
