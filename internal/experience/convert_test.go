package experience

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workHistory() []string {
	return []string{
		"Work Experience",
		"Acme Retail | Marketing Analyst",
		"Chicago, IL | Jan 2020 - Mar 2022",
		"Built SQL reporting for 40 stores.",
		"Reduced KYC backlog by 200 cases.",
		"Globex | Data Engineer",
		"Designed Kafka ingestion for payments.",
	}
}

func TestConvertParagraphs(t *testing.T) {
	blocks := ConvertParagraphs(workHistory())

	require.Len(t, blocks, 2)
	assert.Equal(t, "Acme Retail | Marketing Analyst | Chicago, IL | Jan 2020 - Mar 2022", blocks[0].Header)
	assert.Equal(t, []string{"Built SQL reporting for 40 stores.", "Reduced KYC backlog by 200 cases."}, blocks[0].Paragraphs)
	assert.Equal(t, "Globex | Data Engineer |  |", blocks[1].Header)
	assert.Equal(t, []string{"Designed Kafka ingestion for payments."}, blocks[1].Paragraphs)
}

func TestConvertParagraphs_HeaderRules(t *testing.T) {
	assert.True(t, looksLikeHeader("Acme | Analyst"))
	assert.False(t, looksLikeHeader("Acme Analyst"))
	assert.False(t, looksLikeHeader("Acme | "))
	assert.False(t, looksLikeHeader("Remote | May 2021 - Present"))
	assert.True(t, looksLikeLocationDates("Remote | Sept 2021 - Present"))
	assert.False(t, looksLikeLocationDates("Remote | 2021 - Present"))
}

func TestToMarkdown_RoundTripsThroughParser(t *testing.T) {
	md := ToMarkdown(ConvertParagraphs(workHistory()))

	assert.Equal(t, "# Experience Bank (converted from .docx)\n\n"+
		"## Acme Retail | Marketing Analyst | Chicago, IL | Jan 2020 - Mar 2022\n\n"+
		"Built SQL reporting for 40 stores.\n\n"+
		"Reduced KYC backlog by 200 cases.\n\n"+
		"## Globex | Data Engineer |  |\n\n"+
		"Designed Kafka ingestion for payments.\n", md)

	bank, err := ParseMarkdownBank(md)
	require.NoError(t, err)
	require.Len(t, bank.Experiences, 2)
	assert.Equal(t, "Acme Retail", bank.Experiences[0].Company)
	assert.Equal(t, "Jan 2020 - Mar 2022", bank.Experiences[0].Dates)
	assert.Equal(t, "Globex", bank.Experiences[1].Company)
}

func writeWorkHistoryDocx(t *testing.T, paragraphs ...string) string {
	t.Helper()
	var body string
	for _, p := range paragraphs {
		body += `<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`
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

	path := filepath.Join(t.TempDir(), "work_history.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestLoadExperienceBank_Docx(t *testing.T) {
	path := writeWorkHistoryDocx(t, workHistory()...)

	bank, err := LoadExperienceBank(path)
	require.NoError(t, err)
	require.Len(t, bank.Experiences, 2)
	assert.Equal(t, "Marketing Analyst", bank.Experiences[0].Title)
	assert.Contains(t, bank.Experiences[0].Body, "Reduced KYC backlog")
}

func TestConvertDocx_Missing(t *testing.T) {
	_, err := ConvertDocx(filepath.Join(t.TempDir(), "missing.docx"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}
