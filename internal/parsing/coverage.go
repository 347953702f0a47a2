package parsing

import (
	"github.com/jonathan/resume-tailor/internal/terms"
	"github.com/jonathan/resume-tailor/internal/types"
)

// CoverageResult lists which of the top profile keywords appear in a set of texts
type CoverageResult struct {
	TopKeywords []string
	Missing     []string
	Rate        float64
}

// Coverage checks the top k profile keywords against the terms of texts.
// Missing keywords keep profile order.
func Coverage(profile types.KeywordProfile, texts []string, k int) CoverageResult {
	if k <= 0 {
		k = DefaultCoverageK
	}

	covered := make(map[string]struct{})
	for _, text := range texts {
		for term := range terms.Set(text) {
			covered[term] = struct{}{}
		}
	}

	top := profile.Top(k)
	missing := make([]string, 0)
	for _, kw := range top {
		if _, ok := covered[kw]; !ok {
			missing = append(missing, kw)
		}
	}

	rate := 1.0 - float64(len(missing))/float64(max(1, len(top)))
	return CoverageResult{TopKeywords: top, Missing: missing, Rate: rate}
}
