// Package evidence extracts verbatim evidence snippets from experience bodies.
//
// Snippets never span a paragraph boundary: every snippet is cut from exactly
// one blank-line separated paragraph of the body.
package evidence

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Minimum snippet lengths in runes
const (
	MinBulletLen    = 50
	MinSentenceLen  = 60
	MinParagraphLen = 80
	// FallbackLen is the rune budget of the synthetic fallback snippet
	FallbackLen = 240
)

var (
	intraLineSpace = regexp.MustCompile(`[\t ]+`)
	paragraphBreak = regexp.MustCompile(`\n\s*\n+`)
	anySpace       = regexp.MustCompile(`\s+`)
	bulletMarker   = regexp.MustCompile(`^\s*(?:[-*•]|\d+\.)\s+`)
	sentenceEnd    = regexp.MustCompile(`[.!?]\s+`)
)

// Paragraphs normalizes line endings and intra-line whitespace and returns
// the non-empty blank-line separated paragraphs of body.
func Paragraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(intraLineSpace.ReplaceAllString(line, " "), " ")
	}
	body = strings.TrimSpace(strings.Join(lines, "\n"))
	if body == "" {
		return nil
	}

	parts := paragraphBreak.Split(body, -1)
	paras := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// ExtractSnippets returns snippet candidates in paragraph order. Scores and
// ids are left empty for the caller to fill in.
func ExtractSnippets(body string) []types.EvidenceSnippet {
	var out []types.EvidenceSnippet

	for idx, para := range Paragraphs(body) {
		var lines []string
		for _, ln := range strings.Split(para, "\n") {
			if ln = strings.TrimSpace(ln); ln != "" {
				lines = append(lines, ln)
			}
		}

		before := len(out)
		if isBulletParagraph(lines) {
			for _, ln := range lines {
				if !bulletMarker.MatchString(ln) {
					continue
				}
				text := strings.TrimSpace(bulletMarker.ReplaceAllString(ln, ""))
				if utf8.RuneCountInString(text) >= MinBulletLen {
					out = append(out, snippet(text, idx, types.SnippetBullet))
				}
			}
		} else {
			for _, s := range splitSentences(flatten(para)) {
				if utf8.RuneCountInString(s) >= MinSentenceLen {
					out = append(out, snippet(s, idx, types.SnippetSentence))
				}
			}
		}

		if len(out) == before {
			if flat := flatten(para); utf8.RuneCountInString(flat) >= MinParagraphLen {
				out = append(out, snippet(flat, idx, types.SnippetParagraph))
			}
		}
	}

	return out
}

// Fallback builds the synthetic snippet used when nothing in the body scores:
// the whitespace-flattened body cut to FallbackLen runes with an ellipsis.
func Fallback(body string) types.EvidenceSnippet {
	flat := flatten(body)
	if utf8.RuneCountInString(flat) > FallbackLen {
		flat = string([]rune(flat)[:FallbackLen]) + "..."
	}
	return snippet(flat, 0, types.SnippetFallback)
}

// isBulletParagraph reports whether at least half of the lines carry a marker
func isBulletParagraph(lines []string) bool {
	marked := 0
	for _, ln := range lines {
		if bulletMarker.MatchString(ln) {
			marked++
		}
	}
	return marked > 0 && marked*2 >= len(lines)
}

// splitSentences splits after terminal punctuation that is followed by whitespace
func splitSentences(flat string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(flat, -1) {
		sentences = append(sentences, strings.TrimSpace(flat[start:loc[0]+1]))
		start = loc[1]
	}
	if rest := strings.TrimSpace(flat[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func flatten(s string) string {
	return anySpace.ReplaceAllString(strings.TrimSpace(s), " ")
}

func snippet(text string, idx int, kind string) types.EvidenceSnippet {
	return types.EvidenceSnippet{Text: text, ParagraphIndex: idx, Kind: kind}
}
