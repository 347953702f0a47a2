// Package ingestion reads job description files into plain text.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/docx"
)

// Supported job description formats
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatDOCX = "docx"
)

var (
	multiSpace      = regexp.MustCompile(`\s+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = excessiveBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving headings and bullets
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + trimmed
	}

	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// DetectFormat picks the reader for a job description path by extension
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".docx":
		return FormatDOCX
	default:
		return FormatText
	}
}

// LoadJobText reads a job description. Text and markdown files are returned
// verbatim; HTML files are reduced to cleaned text and .docx files to their
// non-empty paragraphs.
func LoadJobText(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	format := DetectFormat(path)
	text := string(content)
	switch format {
	case FormatHTML:
		text, err = HTMLToText(text)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	case FormatDOCX:
		doc, err := docx.Parse(content)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		text = doc.PlainText()
	}

	return text, NewMetadata(text, path, format), nil
}
