// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordCount is a single ranked term in a keyword profile
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// KeywordProfile is the ranked list of terms extracted from a job description.
// Keywords are ordered by descending count, ties broken lexicographically.
type KeywordProfile struct {
	Keywords []KeywordCount `json:"top_keywords"`
}

// Terms returns the profile keywords as a set
func (p KeywordProfile) Terms() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Keywords))
	for _, kw := range p.Keywords {
		set[kw.Keyword] = struct{}{}
	}
	return set
}

// Top returns the first k keywords (all of them when k <= 0 or k exceeds the profile size)
func (p KeywordProfile) Top(k int) []string {
	if k <= 0 || k > len(p.Keywords) {
		k = len(p.Keywords)
	}
	out := make([]string, 0, k)
	for _, kw := range p.Keywords[:k] {
		out = append(out, kw.Keyword)
	}
	return out
}

// ExtractionInfo describes how a keyword profile was produced
type ExtractionInfo struct {
	Method         string `json:"method"`
	TopK           int    `json:"top_k"`
	GenericPenalty int    `json:"generic_penalty"`
}

// JDProfile is the job description profile artifact
type JDProfile struct {
	RunID       string         `json:"run_id"`
	GeneratedAt string         `json:"generated_at"`
	JDHash      string         `json:"jd_hash"`
	Source      string         `json:"source,omitempty"`
	Extraction  ExtractionInfo `json:"extraction"`
	KeywordProfile
}

// CoverageReport records which top JD keywords are covered by the selected evidence
type CoverageReport struct {
	RunID                   string   `json:"run_id"`
	GeneratedAt             string   `json:"generated_at"`
	SelectedExperienceCount int      `json:"selected_experience_count"`
	TopKeywords             []string `json:"top_keywords"`
	MissingTopKeywords      []string `json:"missing_top_keywords"`
	KeywordCoverageRate     float64  `json:"keyword_coverage_rate"`
	Notes                   []string `json:"notes,omitempty"`
}
