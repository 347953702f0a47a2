// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceBlock is one entry of the candidate's experience bank.
// Blocks are created once when the bank is parsed and are not modified afterwards.
type ExperienceBlock struct {
	ID       string `json:"exp_id"`
	Header   string `json:"header"`
	Company  string `json:"company,omitempty"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
	Dates    string `json:"dates,omitempty"`
	Body     string `json:"body"`
}

// EvidenceIndex is the verbatim dump of every parsed experience block
type EvidenceIndex struct {
	RunID           string            `json:"run_id"`
	GeneratedAt     string            `json:"generated_at"`
	ExperienceCount int               `json:"experience_count"`
	Experiences     []ExperienceBlock `json:"experiences"`
	SkippedBlocks   []string          `json:"skipped_blocks,omitempty"`
}
