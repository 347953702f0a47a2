// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Bookmark is a named anchor on exactly one document paragraph
type Bookmark struct {
	Name           string `json:"name"`
	ID             int    `json:"id"`
	ParagraphIndex int    `json:"paragraph_index"`
	Reserve        bool   `json:"reserve,omitempty"`
}

// TagResult summarizes a tagging pass
type TagResult struct {
	TaggedBullets       int        `json:"tagged_bullets"`
	ReserveBulletsAdded int        `json:"reserve_bullets_added"`
	Groups              int        `json:"groups"`
	Bookmarks           []Bookmark `json:"bookmarks"`
}

// Edit outcome statuses
const (
	OutcomeReplaced = "replaced"
	OutcomeMissing  = "missing"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
)

// Addressing modes
const (
	AddressedByBulletID  = "bullet_id"
	AddressedByOldBullet = "old_bullet"
)

// EditOutcome records what happened to one edit during application
type EditOutcome struct {
	Index            int    `json:"index"`
	Status           string `json:"status"`
	AddressedBy      string `json:"addressed_by,omitempty"`
	ParagraphIndex   *int   `json:"paragraph_index,omitempty"`
	DuplicateMatches int    `json:"duplicate_matches,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// ApplyResult summarizes an edit application
type ApplyResult struct {
	Replaced  int           `json:"replaced"`
	Missing   int           `json:"missing"`
	Rejected  int           `json:"rejected"`
	Conflicts int           `json:"conflicts"`
	Outcomes  []EditOutcome `json:"outcomes"`
}

// ManifestTarget identifies what the edited resume targets
type ManifestTarget struct {
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
}

// EditManifest is written next to an edited document
type EditManifest struct {
	RunID      string         `json:"run_id"`
	CreatedAt  string         `json:"created_at"`
	BasePath   string         `json:"base_path"`
	OutputPath string         `json:"output_path"`
	Target     ManifestTarget `json:"target"`
	Result     ApplyResult    `json:"result"`
	Edits      []BulletEdit   `json:"edits"`
}
