package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	styleBullet  = "ListBullet"
	styleHeading = "Heading1"
	styleNormal  = "Normal"
	styleTitle   = "Title"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:styleId="Normal"><w:name w:val="Normal"/></w:style><w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style><w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/></w:style></w:styles>`

// para describes one fixture paragraph; raw replaces the generated run content
type para struct {
	style string
	text  string
	raw   string
}

func bullet(text string) para  { return para{style: styleBullet, text: text} }
func heading(text string) para { return para{style: styleHeading, text: text} }
func normal(text string) para  { return para{style: styleNormal, text: text} }

func escape(t *testing.T, s string) string {
	var buf bytes.Buffer
	require.NoError(t, xml.EscapeText(&buf, []byte(s)))
	return buf.String()
}

func documentXML(t *testing.T, paras []para) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paras {
		sb.WriteString(`<w:p>`)
		if p.style != "" {
			sb.WriteString(`<w:pPr><w:pStyle w:val="` + p.style + `"/></w:pPr>`)
		}
		if p.raw != "" {
			sb.WriteString(p.raw)
		} else if p.text != "" {
			sb.WriteString(`<w:r><w:rPr><w:b/></w:rPr><w:t>` + escape(t, p.text) + `</w:t></w:r>`)
		}
		sb.WriteString(`</w:p>`)
	}
	sb.WriteString(`<w:sectPr/></w:body></w:document>`)
	return sb.String()
}

// buildDocx assembles a minimal .docx package in memory
func buildDocx(t *testing.T, withStyles bool, paras ...para) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct{ name, body string }{
		{"[Content_Types].xml", contentTypesXML},
		{"word/document.xml", documentXML(t, paras)},
	}
	if withStyles {
		parts = append(parts, struct{ name, body string }{"word/styles.xml", stylesXML})
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(part.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func parseFixture(t *testing.T, paras ...para) *Document {
	t.Helper()
	doc, err := Parse(buildDocx(t, true, paras...))
	require.NoError(t, err)
	return doc
}

func writeFixture(t *testing.T, paras ...para) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, buildDocx(t, true, paras...), 0644))
	return path
}

// reparse serializes and parses a document again
func reparse(t *testing.T, doc *Document) *Document {
	t.Helper()
	data, err := doc.Bytes()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	return again
}

func texts(doc *Document) []string {
	var out []string
	for _, p := range doc.Paragraphs() {
		out = append(out, p.Text())
	}
	return out
}

// resumeFixture has two bullet groups of sizes 3 and 2
func resumeFixture() []para {
	return []para{
		{style: styleTitle, text: "Jordan Example"},
		heading("Experience"),
		normal("Acme | Analyst | 2020-2022"),
		bullet("Led team of 5"),
		bullet("Built SQL reporting for 40 stores"),
		bullet("Reduced KYC backlog by 200 cases"),
		normal("Globex | Engineer | 2022-present"),
		bullet("Designed Kafka ingestion"),
		bullet("Cut batch runtime by 30%"),
	}
}
