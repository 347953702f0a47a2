package docx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeText is the matching form of paragraph and bullet text:
// NFKC-normalized with whitespace runs collapsed and trimmed.
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(norm.NFKC.String(s), " "))
}

// ApplyEdits rewrites the text of the paragraphs the edits address. An edit
// is addressed by its bullet_id bookmark first, then by the first paragraph
// whose normalized text equals its old_bullet. Paragraphs are never added or
// removed.
func (d *Document) ApplyEdits(edits []types.BulletEdit) types.ApplyResult {
	paras := d.Paragraphs()
	bookmarks := d.BookmarkIndex()
	textIndex := map[string][]int{}
	for _, p := range paras {
		key := NormalizeText(p.Text())
		if key == "" {
			continue
		}
		textIndex[key] = append(textIndex[key], p.Index)
	}

	result := types.ApplyResult{Outcomes: make([]types.EditOutcome, 0, len(edits))}
	edited := map[int]bool{}

	for i, edit := range edits {
		outcome := types.EditOutcome{Index: i}
		target := -1

		if edit.BulletID != "" {
			if idx, ok := bookmarks[edit.BulletID]; ok {
				target = idx
				outcome.AddressedBy = types.AddressedByBulletID
			}
		}
		// A blank old_bullet never addresses anything, including spacer paragraphs.
		if oldKey := NormalizeText(edit.OldBullet); target < 0 && oldKey != "" {
			if matches := textIndex[oldKey]; len(matches) > 0 {
				target = matches[0]
				outcome.AddressedBy = types.AddressedByOldBullet
				outcome.DuplicateMatches = len(matches) - 1
			}
		}

		var structErr error
		if target >= 0 {
			structErr = checkStructure(paras[target], edit.NewBullet)
		}

		switch {
		case target < 0:
			outcome.Status = types.OutcomeMissing
			outcome.Reason = missingReason(edit)
			result.Missing++
		case structErr != nil:
			outcome.Status = types.OutcomeRejected
			outcome.Reason = structErr.Error()
			outcome.ParagraphIndex = intPtr(target)
			result.Rejected++
		case edited[target]:
			outcome.Status = types.OutcomeConflict
			outcome.Reason = fmt.Sprintf("paragraph %d was already rewritten by an earlier edit", target)
			outcome.ParagraphIndex = intPtr(target)
			result.Conflicts++
		default:
			paras[target].SetText(edit.NewBullet)
			edited[target] = true
			outcome.Status = types.OutcomeReplaced
			outcome.ParagraphIndex = intPtr(target)
			result.Replaced++
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result
}

// ResolveOldBullets returns a copy of edits in which every edit addressed by
// a known bullet_id and carrying a blank old_bullet gets the bookmarked
// paragraph's current text as its old_bullet.
func (d *Document) ResolveOldBullets(edits []types.BulletEdit) []types.BulletEdit {
	paras := d.Paragraphs()
	bookmarks := d.BookmarkIndex()
	resolved := make([]types.BulletEdit, len(edits))
	copy(resolved, edits)
	for i := range resolved {
		edit := &resolved[i]
		if edit.BulletID == "" || NormalizeText(edit.OldBullet) != "" {
			continue
		}
		if idx, ok := bookmarks[edit.BulletID]; ok {
			edit.OldBullet = paras[idx].Text()
		}
	}
	return resolved
}

// checkStructure rejects edits that would alter the document skeleton
func checkStructure(p *Paragraph, newBullet string) error {
	if p.IsHeading() {
		return &StructuralViolationError{
			Message:        fmt.Sprintf("target uses heading style %q", p.StyleName()),
			ParagraphIndex: p.Index,
		}
	}
	if strings.ContainsAny(newBullet, "\r\n\v\f") {
		return &StructuralViolationError{
			Message:        "new bullet contains a line break and would need a new paragraph",
			ParagraphIndex: p.Index,
		}
	}
	return nil
}

func missingReason(edit types.BulletEdit) string {
	switch {
	case edit.BulletID != "" && NormalizeText(edit.OldBullet) != "":
		return fmt.Sprintf("no bookmark %q and no paragraph matching old_bullet", edit.BulletID)
	case edit.BulletID != "":
		return fmt.Sprintf("no bookmark %q", edit.BulletID)
	case NormalizeText(edit.OldBullet) == "":
		return "old_bullet is blank"
	default:
		return "no paragraph matching old_bullet"
	}
}

func intPtr(i int) *int {
	return &i
}
