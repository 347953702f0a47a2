// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// EvidenceCitation points at the experience (and optionally the snippet) supporting an edit
type EvidenceCitation struct {
	SourceExperience string `json:"source_experience" validate:"required"`
	SnippetID        string `json:"snippet_id,omitempty"`
	Quote            string `json:"quote,omitempty" validate:"max=400"`
}

// BulletEdit is the edit plan entry for a single resume bullet.
// At least one of BulletID or OldBullet addresses the target paragraph.
// NeedsUserOK may be raised by the linter but is never cleared by it.
type BulletEdit struct {
	ExperienceRef string             `json:"experience_ref" validate:"required"`
	BulletID      string             `json:"bullet_id,omitempty" validate:"required_without=OldBullet"`
	OldBullet     string             `json:"old_bullet,omitempty" validate:"required_without=BulletID"`
	NewBullet     string             `json:"new_bullet" validate:"required"`
	Evidence      []EvidenceCitation `json:"evidence,omitempty" validate:"dive"`
	NeedsUserOK   bool               `json:"needs_user_ok"`
	UserApproved  bool               `json:"user_approved,omitempty"`
}

// Unresolved reports whether the edit still waits for human approval
func (e BulletEdit) Unresolved() bool {
	return e.NeedsUserOK && !e.UserApproved
}

// EditPlan is the auditable list of bullet edits produced upstream
type EditPlan struct {
	TargetCompany string       `json:"target_company,omitempty"`
	TargetRole    string       `json:"target_role,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	Edits         []BulletEdit `json:"edits" validate:"dive"`
}

// Validate validates the EditPlan using the validator.
func (p *EditPlan) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Clone returns a deep copy of the plan
func (p EditPlan) Clone() EditPlan {
	out := p
	out.Edits = make([]BulletEdit, len(p.Edits))
	for i, e := range p.Edits {
		e.Evidence = append([]EvidenceCitation(nil), e.Evidence...)
		out.Edits[i] = e
	}
	return out
}
