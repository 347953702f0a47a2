package validation

import (
	"github.com/jonathan/resume-tailor/internal/types"
)

// LintAndGate lints every edit of plan and returns a gated copy alongside the
// report. Edits with specificity loss or buzzword drift get NeedsUserOK set;
// the flag is never cleared and UserApproved is left alone.
func LintAndGate(plan types.EditPlan) (types.EditPlan, types.LintReport) {
	gated := plan.Clone()
	report := types.LintReport{Edits: make([]types.EditLint, 0, len(gated.Edits))}

	for i := range gated.Edits {
		edit := &gated.Edits[i]
		issues := LintBulletPair(edit.OldBullet, edit.NewBullet)

		flagged := gating(issues)
		if flagged {
			edit.NeedsUserOK = true
		}

		report.Edits = append(report.Edits, types.EditLint{
			Index:         i,
			ExperienceRef: edit.ExperienceRef,
			BulletID:      edit.BulletID,
			Flagged:       flagged,
			NeedsUserOK:   edit.NeedsUserOK,
			Issues:        issues,
		})
	}

	report.Summary = Summarize(gated, report.Edits)
	return gated, report
}

// Summarize counts flagged and still-unresolved edits
func Summarize(plan types.EditPlan, edits []types.EditLint) types.LintSummary {
	summary := types.LintSummary{TotalEdits: len(plan.Edits), Status: types.GateReady}
	for _, e := range edits {
		if e.Flagged {
			summary.FlaggedEdits++
		}
	}
	for _, e := range plan.Edits {
		if e.Unresolved() {
			summary.BlockedEdits++
		}
	}
	if summary.BlockedEdits > 0 {
		summary.Status = types.GateBlocked
	}
	return summary
}

// CheckGate returns a *GatedError when any edit still needs user approval
func CheckGate(plan types.EditPlan) error {
	var blocked []int
	for i, e := range plan.Edits {
		if e.Unresolved() {
			blocked = append(blocked, i)
		}
	}
	if len(blocked) > 0 {
		return &GatedError{Indices: blocked}
	}
	return nil
}
