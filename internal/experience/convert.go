package experience

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/docx"
)

var monthWord = regexp.MustCompile(`(?i)\b(?:jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|sept|september|oct|october|nov|november|dec|december)\b`)

// ConvertedBlock is one experience recovered from a work history document
type ConvertedBlock struct {
	Header     string
	Paragraphs []string
}

// ConvertParagraphs groups document paragraphs into experience blocks. A
// header is a pipe-separated "Company | Title" line with at least two fields
// and no month names; an optional "Location | Dates" line may follow it.
// Paragraphs before the first header are dropped. Unknown fields stay blank.
func ConvertParagraphs(paras []string) []ConvertedBlock {
	var blocks []ConvertedBlock
	for i := 0; i < len(paras); {
		if !looksLikeHeader(paras[i]) {
			i++
			continue
		}

		fields := splitPipes(paras[i])
		var location, dates string
		if i+1 < len(paras) && looksLikeLocationDates(paras[i+1]) {
			ld := splitPipes(paras[i+1])
			location, dates = field(ld, 0), field(ld, 1)
			i++
		}
		header := strings.TrimRight(strings.Join([]string{field(fields, 0), field(fields, 1), location, dates}, " | "), " ")

		block := ConvertedBlock{Header: header}
		for i++; i < len(paras) && !looksLikeHeader(paras[i]); i++ {
			block.Paragraphs = append(block.Paragraphs, paras[i])
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// ToMarkdown renders converted blocks in experience bank format
func ToMarkdown(blocks []ConvertedBlock) string {
	var sb strings.Builder
	sb.WriteString("# Experience Bank (converted from .docx)\n")
	for _, b := range blocks {
		sb.WriteString("\n## ")
		sb.WriteString(b.Header)
		sb.WriteString("\n")
		for _, p := range b.Paragraphs {
			sb.WriteString("\n")
			sb.WriteString(p)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ConvertDocx reads a work history .docx and returns bank markdown
func ConvertDocx(path string) (string, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return "", &LoadError{Message: "failed to open work history document", Cause: err}
	}
	return ToMarkdown(ConvertParagraphs(doc.ParagraphTexts())), nil
}

func looksLikeHeader(line string) bool {
	if !strings.Contains(line, "|") || monthWord.MatchString(line) {
		return false
	}
	nonEmpty := 0
	for _, f := range splitPipes(line) {
		if f != "" {
			nonEmpty++
		}
	}
	return nonEmpty >= 2
}

func looksLikeLocationDates(line string) bool {
	return strings.Contains(line, "|") && monthWord.MatchString(line)
}

func splitPipes(line string) []string {
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
