package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td"

// HTMLToText extracts readable text from a saved job posting page.
// Headings and paragraphs become blank-line separated paragraphs and list
// items become "- " bullet lines so downstream paragraph splitting still works.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, head, nav, footer").Remove()

	var sb strings.Builder
	prevWasItem := false
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// nested blocks are already covered by their outermost block
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}

		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}

		isItem := goquery.NodeName(s) == "li"
		switch {
		case isItem && prevWasItem:
			sb.WriteString("\n")
		case sb.Len() > 0:
			sb.WriteString("\n\n")
		}
		if isItem {
			sb.WriteString("- ")
		}
		sb.WriteString(text)
		prevWasItem = isItem
	})

	if sb.Len() == 0 {
		return CleanText(strings.Join(strings.Fields(doc.Text()), " ")), nil
	}
	return CleanText(sb.String()), nil
}
