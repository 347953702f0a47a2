package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

// Document is an opened .docx package. Only word/document.xml is parsed for
// editing; every other part is carried through untouched.
type Document struct {
	raw    []byte
	zr     *zip.Reader
	xml    *etree.Document
	body   *etree.Element
	styles map[string]string
}

// Open reads and parses the .docx file at path
func Open(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentError{Message: "failed to read document", Path: path, Cause: err}
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a .docx package held in memory
func Parse(raw []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, &DocumentError{Message: "not a zip package", Cause: err}
	}

	d := &Document{raw: raw, zr: zr, styles: map[string]string{}}

	docXML, err := readPart(zr, documentPart)
	if err != nil {
		return nil, err
	}
	d.xml = etree.NewDocument()
	if err := d.xml.ReadFromBytes(docXML); err != nil {
		return nil, &DocumentError{Message: "failed to parse " + documentPart, Cause: err}
	}
	root := d.xml.Root()
	if root == nil {
		return nil, &DocumentError{Message: documentPart + " has no root element"}
	}
	d.body = firstChild(root, "body")
	if d.body == nil {
		return nil, &DocumentError{Message: documentPart + " has no w:body"}
	}

	if stylesXML, err := readPart(zr, stylesPart); err == nil {
		d.styles = parseStyles(stylesXML)
	}
	return d, nil
}

func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &DocumentError{Message: "failed to open " + name, Cause: err}
		}
		defer func() { _ = rc.Close() }()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, &DocumentError{Message: "failed to read " + name, Cause: err}
		}
		return data, nil
	}
	return nil, &DocumentError{Message: "missing part " + name}
}

// Raw returns the bytes the document was parsed from
func (d *Document) Raw() []byte {
	return d.raw
}

// Bytes serializes the document. The main part is re-encoded; all other zip
// entries are copied without recompression and in their original order.
func (d *Document) Bytes() ([]byte, error) {
	docXML, err := d.xml.WriteToBytes()
	if err != nil {
		return nil, &DocumentError{Message: "failed to encode " + documentPart, Cause: err}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range d.zr.File {
		if f.Name != documentPart {
			if err := zw.Copy(f); err != nil {
				return nil, &DocumentError{Message: "failed to copy " + f.Name, Cause: err}
			}
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   f.Method,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, &DocumentError{Message: "failed to write " + f.Name, Cause: err}
		}
		if _, err := w.Write(docXML); err != nil {
			return nil, &DocumentError{Message: "failed to write " + f.Name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &DocumentError{Message: "failed to finalize package", Cause: err}
	}
	return buf.Bytes(), nil
}

// Save writes the serialized document to path
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &DocumentError{Message: "failed to write document", Path: path, Cause: err}
	}
	return nil
}

// Paragraphs returns the top-level paragraphs of the body in order.
// Paragraphs nested in tables or text boxes are not included.
func (d *Document) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range d.body.ChildElements() {
		if isW(el, "p") {
			paras = append(paras, &Paragraph{Index: len(paras), el: el, doc: d})
		}
	}
	return paras
}

// Text returns the text of every top-level paragraph, one per line
func (d *Document) Text() string {
	var buf bytes.Buffer
	for i, p := range d.Paragraphs() {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(p.Text())
	}
	return buf.String()
}

// ParagraphTexts returns the whitespace-collapsed text of every non-empty
// paragraph. Reserve slot markers are dropped.
func (d *Document) ParagraphTexts() []string {
	var out []string
	for _, p := range d.Paragraphs() {
		raw := strings.ReplaceAll(p.Text(), reserveText, "")
		if text := strings.Join(strings.Fields(raw), " "); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// PlainText joins the non-empty paragraphs with newlines
func (d *Document) PlainText() string {
	paras := d.ParagraphTexts()
	if len(paras) == 0 {
		return ""
	}
	return strings.Join(paras, "\n") + "\n"
}

// StyleName resolves a style id to its display name, falling back to the id
func (d *Document) StyleName(id string) string {
	if name, ok := d.styles[id]; ok && name != "" {
		return name
	}
	return id
}

func parseStyles(data []byte) map[string]string {
	styles := map[string]string{}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil || doc.Root() == nil {
		return styles
	}
	for _, st := range doc.Root().ChildElements() {
		if !isW(st, "style") {
			continue
		}
		id := st.SelectAttrValue("w:styleId", "")
		if name := firstChild(st, "name"); name != nil && id != "" {
			styles[id] = name.SelectAttrValue("w:val", "")
		}
	}
	return styles
}

func isW(el *etree.Element, tag string) bool {
	return el.Space == "w" && el.Tag == tag
}

func firstChild(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if isW(c, tag) {
			return c
		}
	}
	return nil
}

// walk visits el and its descendants in document order
func walk(el *etree.Element, visit func(*etree.Element)) {
	visit(el)
	for _, c := range el.ChildElements() {
		walk(c, visit)
	}
}
