package docx

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/beevik/etree"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// DefaultPrefix is the bookmark name prefix for bullets
	DefaultPrefix = "B"
	// DefaultReservePerGroup is the number of reserve slots added per bullet group
	DefaultReservePerGroup = 1
	// firstBookmarkID keeps generated ids clear of the low ids Word assigns
	firstBookmarkID = 1000
	// reserveText keeps a reserve paragraph present in the list without visible text
	reserveText = "\u200b"
)

var reserveName = regexp.MustCompile(`_R\d+$`)

// TagOptions controls bullet tagging
type TagOptions struct {
	Prefix          string
	ReservePerGroup int
}

// DefaultTagOptions returns prefix "B" with one reserve slot per group
func DefaultTagOptions() TagOptions {
	return TagOptions{Prefix: DefaultPrefix, ReservePerGroup: DefaultReservePerGroup}
}

// BulletGroups returns maximal runs of consecutive non-empty bullet paragraphs
func (d *Document) BulletGroups() [][]*Paragraph {
	var groups [][]*Paragraph
	var group []*Paragraph
	for _, p := range d.Paragraphs() {
		if p.IsBullet() && !p.IsEmpty() {
			group = append(group, p)
			continue
		}
		if len(group) > 0 {
			groups = append(groups, group)
			group = nil
		}
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}
	return groups
}

// BookmarkIndex maps every bookmark name to the index of its paragraph
func (d *Document) BookmarkIndex() map[string]int {
	index := map[string]int{}
	for _, p := range d.Paragraphs() {
		for _, name := range p.Bookmarks() {
			if _, dup := index[name]; !dup {
				index[name] = p.Index
			}
		}
	}
	return index
}

// TagBullets bookmarks every untagged bullet paragraph as {prefix}NNNN and
// appends reserve slots to groups that have none. Running it again on its own
// output adds nothing.
func (d *Document) TagBullets(opts TagOptions) (types.TagResult, error) {
	if opts.Prefix == "" {
		return types.TagResult{}, &DocumentError{Message: "bookmark prefix must not be empty"}
	}
	if opts.ReservePerGroup < 0 {
		opts.ReservePerGroup = 0
	}

	nextID, nextSeq := d.bookmarkCounters(opts.Prefix)
	added := map[string]bool{}
	result := types.TagResult{}

	groups := d.BulletGroups()
	result.Groups = len(groups)

	for _, group := range groups {
		hasReserve := false
		for _, p := range group {
			for _, name := range p.Bookmarks() {
				if reserveName.MatchString(name) {
					hasReserve = true
				}
			}
			if p.HasBookmark() {
				continue
			}
			name := fmt.Sprintf("%s%04d", opts.Prefix, nextSeq)
			addBookmark(p.el, name, nextID)
			added[name] = false
			result.TaggedBullets++
			nextSeq++
			nextID++
		}

		if hasReserve {
			continue
		}
		prev := group[len(group)-1].el
		for r := 1; r <= opts.ReservePerGroup; r++ {
			slot := newReserveParagraph(group[len(group)-1].el)
			d.body.InsertChildAt(prev.Index()+1, slot)
			name := fmt.Sprintf("%s%04d_R%d", opts.Prefix, nextSeq, r)
			addBookmark(slot, name, nextID)
			added[name] = true
			result.ReserveBulletsAdded++
			nextSeq++
			nextID++
			prev = slot
		}
	}

	result.Bookmarks = make([]types.Bookmark, 0, len(added))
	for _, p := range d.Paragraphs() {
		walk(p.el, func(el *etree.Element) {
			if !isW(el, "bookmarkStart") {
				return
			}
			name := el.SelectAttrValue("w:name", "")
			reserve, ok := added[name]
			if !ok {
				return
			}
			id, _ := strconv.Atoi(el.SelectAttrValue("w:id", ""))
			result.Bookmarks = append(result.Bookmarks, types.Bookmark{
				Name:           name,
				ID:             id,
				ParagraphIndex: p.Index,
				Reserve:        reserve,
			})
		})
	}
	return result, nil
}

// bookmarkCounters returns the next free bookmark id and the next bullet
// sequence number for prefix, both past anything already in the document.
func (d *Document) bookmarkCounters(prefix string) (nextID, nextSeq int) {
	seqPattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)(?:_R\d+)?$`)
	maxID := firstBookmarkID - 1
	maxSeq := 0
	walk(d.body, func(el *etree.Element) {
		if !isW(el, "bookmarkStart") {
			return
		}
		if id, err := strconv.Atoi(el.SelectAttrValue("w:id", "")); err == nil && id > maxID {
			maxID = id
		}
		if m := seqPattern.FindStringSubmatch(el.SelectAttrValue("w:name", "")); m != nil {
			if seq, err := strconv.Atoi(m[1]); err == nil && seq > maxSeq {
				maxSeq = seq
			}
		}
	})
	return maxID + 1, maxSeq + 1
}

// addBookmark wraps the paragraph content in a bookmark. The start goes right
// after the paragraph properties and the end closes the paragraph.
func addBookmark(p *etree.Element, name string, id int) {
	start := etree.NewElement("w:bookmarkStart")
	start.CreateAttr("w:id", strconv.Itoa(id))
	start.CreateAttr("w:name", name)

	pos := 0
	if pPr := firstChild(p, "pPr"); pPr != nil {
		pos = pPr.Index() + 1
	}
	p.InsertChildAt(pos, start)

	end := etree.NewElement("w:bookmarkEnd")
	end.CreateAttr("w:id", strconv.Itoa(id))
	p.AddChild(end)
}

// newReserveParagraph builds an empty-looking bullet styled like last
func newReserveParagraph(last *etree.Element) *etree.Element {
	slot := etree.NewElement("w:p")
	if pPr := firstChild(last, "pPr"); pPr != nil {
		slot.AddChild(pPr.Copy())
	}
	slot.AddChild(newRun(reserveText, firstRunProps(last)))
	return slot
}
