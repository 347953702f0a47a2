// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Snippet kinds
const (
	SnippetBullet    = "bullet"
	SnippetSentence  = "sentence"
	SnippetParagraph = "paragraph"
	SnippetFallback  = "fallback"
)

// EvidenceSnippet is a verbatim quote from one experience block.
// ParagraphIndex ties the snippet to a single paragraph of the block body.
type EvidenceSnippet struct {
	ID             string `json:"sn_id,omitempty"`
	Text           string `json:"text"`
	ParagraphIndex int    `json:"paragraph_index"`
	Kind           string `json:"kind"`
	Score          int    `json:"score"`
}

// ScoreBreakdown holds the components of an experience score
type ScoreBreakdown struct {
	OverlapCount      int      `json:"overlap_count"`
	OverlapScore      int      `json:"overlap_score"`
	HardSkillMatches  int      `json:"hard_skill_matches"`
	HardSkillBonus    int      `json:"hard_skill_bonus"`
	RecencyBonus      int      `json:"recency_bonus"`
	PinnedBonus       int      `json:"pinned_bonus"`
	Total             int      `json:"total"`
	MatchedTerms      []string `json:"matched_terms,omitempty"`
	MatchedHardSkills []string `json:"matched_hard_skills,omitempty"`
	Year              int      `json:"year,omitempty"`
}

// RankedExperience pairs an experience block with its score
type RankedExperience struct {
	Experience ExperienceBlock
	Score      ScoreBreakdown
}

// SelectedExperience is a ranked experience together with its top evidence snippets
type SelectedExperience struct {
	ExpID    string            `json:"exp_id"`
	Header   string            `json:"header"`
	Score    ScoreBreakdown    `json:"score"`
	Snippets []EvidenceSnippet `json:"snippets"`
}

// SelectedEvidence is the selected-evidence artifact
type SelectedEvidence struct {
	RunID       string               `json:"run_id"`
	GeneratedAt string               `json:"generated_at"`
	Selected    []SelectedExperience `json:"selected"`
}
