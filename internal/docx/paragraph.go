package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// Paragraph is a top-level w:p element of the document body
type Paragraph struct {
	Index int
	el    *etree.Element
	doc   *Document
}

// Text concatenates the paragraph's text runs, including runs inside hyperlinks
func (p *Paragraph) Text() string {
	var sb strings.Builder
	walk(p.el, func(el *etree.Element) {
		switch {
		case isW(el, "t"):
			sb.WriteString(el.Text())
		case isW(el, "tab"):
			sb.WriteByte('\t')
		case isW(el, "br"), isW(el, "cr"):
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

// IsEmpty reports whether the paragraph has no visible text. A zero-width
// space counts as content so reserve slots stay part of their bullet group.
func (p *Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == ""
}

// StyleID returns the paragraph style id, or "" for the default style
func (p *Paragraph) StyleID() string {
	pPr := firstChild(p.el, "pPr")
	if pPr == nil {
		return ""
	}
	if st := firstChild(pPr, "pStyle"); st != nil {
		return st.SelectAttrValue("w:val", "")
	}
	return ""
}

// StyleName returns the display name of the paragraph style
func (p *Paragraph) StyleName() string {
	return p.doc.StyleName(p.StyleID())
}

// IsBullet reports whether the paragraph uses a bullet or list style
func (p *Paragraph) IsBullet() bool {
	name := strings.ToLower(p.StyleName())
	return strings.Contains(name, "bullet") || strings.HasPrefix(name, "list")
}

// IsHeading reports whether the paragraph uses a heading or title style
func (p *Paragraph) IsHeading() bool {
	name := strings.ToLower(p.StyleName())
	return strings.HasPrefix(name, "heading") || name == "title" || name == "subtitle"
}

// Bookmarks returns the names of bookmarks that start inside the paragraph
func (p *Paragraph) Bookmarks() []string {
	var names []string
	walk(p.el, func(el *etree.Element) {
		if isW(el, "bookmarkStart") {
			names = append(names, el.SelectAttrValue("w:name", ""))
		}
	})
	return names
}

// HasBookmark reports whether any bookmark starts inside the paragraph
func (p *Paragraph) HasBookmark() bool {
	return len(p.Bookmarks()) > 0
}

// SetText replaces the paragraph's text with a single run. Paragraph
// properties and bookmarks are kept, and the new run takes the formatting of
// the paragraph's first run.
func (p *Paragraph) SetText(text string) {
	rPr := firstRunProps(p.el)

	for _, c := range p.el.ChildElements() {
		if isW(c, "pPr") || isW(c, "bookmarkStart") || isW(c, "bookmarkEnd") {
			continue
		}
		p.el.RemoveChild(c)
	}

	run := newRun(text, rPr)
	if end := firstChild(p.el, "bookmarkEnd"); end != nil {
		p.el.InsertChildAt(end.Index(), run)
		return
	}
	p.el.AddChild(run)
}

func newRun(text string, rPr *etree.Element) *etree.Element {
	run := etree.NewElement("w:r")
	if rPr != nil {
		run.AddChild(rPr)
	}
	t := run.CreateElement("w:t")
	if strings.TrimSpace(text) != text {
		t.CreateAttr("xml:space", "preserve")
	}
	t.SetText(text)
	return run
}

// firstRunProps returns a copy of the run properties of the first run under el
func firstRunProps(el *etree.Element) *etree.Element {
	var rPr *etree.Element
	found := false
	walk(el, func(c *etree.Element) {
		if found || !isW(c, "r") {
			return
		}
		found = true
		if props := firstChild(c, "rPr"); props != nil {
			rPr = props.Copy()
		}
	})
	return rPr
}
