package selection

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/evidence"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/terms"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// DefaultMaxExps is the number of experiences selected when unset
	DefaultMaxExps = 4
	// DefaultMaxSnippets is the number of snippets kept per experience
	DefaultMaxSnippets = 3
)

// Options tunes scoring and snippet selection
type Options struct {
	Weights     ranking.Weights
	Pinned      []string
	MaxSnippets int
}

// DefaultOptions returns default weights, no pins and three snippets per experience
func DefaultOptions() Options {
	return Options{
		Weights:     ranking.DefaultWeights(),
		MaxSnippets: DefaultMaxSnippets,
	}
}

// SelectTop ranks exps against the profile and returns the best maxExps with
// a strictly positive keyword overlap, each with its top evidence snippets.
// Priors only reorder experiences that already overlap the profile.
func SelectTop(profile types.KeywordProfile, exps []types.ExperienceBlock, maxExps int, opts Options) ([]types.SelectedExperience, error) {
	if maxExps < 1 {
		return nil, &Error{Message: fmt.Sprintf("max experiences must be at least 1, got %d", maxExps)}
	}
	if opts.MaxSnippets < 1 {
		opts.MaxSnippets = DefaultMaxSnippets
	}

	profileTerms := profile.Terms()
	ctx := ranking.NewScoringContext(exps, opts.Pinned)
	ranked := ranking.RankExperiences(profileTerms, exps, ctx, opts.Weights)

	selected := make([]types.SelectedExperience, 0, maxExps)
	for _, r := range ranked {
		if len(selected) == maxExps {
			break
		}
		if r.Score.OverlapCount == 0 {
			continue
		}
		selected = append(selected, types.SelectedExperience{
			ExpID:    r.Experience.ID,
			Header:   r.Experience.Header,
			Score:    r.Score,
			Snippets: TopSnippets(profileTerms, r.Experience.Body, opts.MaxSnippets),
		})
	}

	return selected, nil
}

// TopSnippets scores the snippet candidates of body and keeps the best n with
// positive overlap, ordered by (score desc, length desc, paragraph asc). When
// none overlap, a single fallback snippet is returned instead.
func TopSnippets(profileTerms map[string]struct{}, body string, n int) []types.EvidenceSnippet {
	candidates := evidence.ExtractSnippets(body)
	for i := range candidates {
		candidates[i].Score = terms.Overlap(profileTerms, candidates[i].Text)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if la, lb := utf8.RuneCountInString(a.Text), utf8.RuneCountInString(b.Text); la != lb {
			return la > lb
		}
		return a.ParagraphIndex < b.ParagraphIndex
	})

	top := make([]types.EvidenceSnippet, 0, n)
	for _, c := range candidates {
		if len(top) == n || c.Score <= 0 {
			break
		}
		top = append(top, c)
	}

	if len(top) == 0 {
		fallback := evidence.Fallback(body)
		fallback.Score = terms.Overlap(profileTerms, fallback.Text)
		top = append(top, fallback)
	}

	for i := range top {
		top[i].ID = fmt.Sprintf("sn%d", i+1)
	}
	return top
}
