// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Lint issue kinds
const (
	IssueSpecificityLoss = "specificity_loss"
	IssueBuzzwordDrift   = "buzzword_drift"
	IssueNewMetrics      = "new_metrics"
	IssueNewAcronyms     = "new_acronyms"
)

// Gate statuses
const (
	GateReady   = "ready"
	GateBlocked = "blocked"
)

// LintIssue is a single finding on an (old, new) bullet pair
type LintIssue struct {
	Kind         string   `json:"kind"`
	Message      string   `json:"message"`
	RemovedTerms []string `json:"removed_terms,omitempty"`
	AddedTerms   []string `json:"added_terms,omitempty"`
}

// EditLint holds the issues found for the edit at Index
type EditLint struct {
	Index         int         `json:"index"`
	ExperienceRef string      `json:"experience_ref"`
	BulletID      string      `json:"bullet_id,omitempty"`
	Flagged       bool        `json:"flagged"`
	NeedsUserOK   bool        `json:"needs_user_ok"`
	Issues        []LintIssue `json:"issues"`
}

// LintSummary aggregates a lint report
type LintSummary struct {
	TotalEdits   int    `json:"total_edits"`
	FlaggedEdits int    `json:"flagged_edits"`
	BlockedEdits int    `json:"blocked_edits"`
	Status       string `json:"status"`
}

// LintReport is the plan lint artifact
type LintReport struct {
	Summary LintSummary `json:"summary"`
	Edits   []EditLint  `json:"edits"`
}
