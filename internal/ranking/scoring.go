// Package ranking scores experience blocks against a job description profile.
package ranking

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/jonathan/resume-tailor/internal/terms"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Weights are the integer constants combined into an experience's total score.
// OverlapMultiplier must exceed one HardSkillBonus plus RecencyMaxBonus and
// PinnedBonus. HardSkillBonus is paid per matched hard skill.
type Weights struct {
	OverlapMultiplier int `json:"overlap_multiplier" yaml:"overlap_multiplier"`
	HardSkillBonus    int `json:"hard_skill_bonus" yaml:"hard_skill_bonus"`
	RecencyMaxBonus   int `json:"recency_max_bonus" yaml:"recency_max_bonus"`
	PinnedBonus       int `json:"pinned_bonus" yaml:"pinned_bonus"`
}

// DefaultWeights returns the standard scoring weights
func DefaultWeights() Weights {
	return Weights{
		OverlapMultiplier: 100,
		HardSkillBonus:    2,
		RecencyMaxBonus:   5,
		PinnedBonus:       10,
	}
}

// ScoringContext carries the run-wide inputs to scoring
type ScoringContext struct {
	// LatestYear is the most recent year seen across all experiences
	LatestYear int
	Pinned     map[string]struct{}
}

var (
	yearPattern    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	currentPattern = regexp.MustCompile(`(?i)\b(?:present|current)\b`)
)

// NewScoringContext derives the latest year from exps and indexes the pin-set
func NewScoringContext(exps []types.ExperienceBlock, pinned []string) ScoringContext {
	ctx := ScoringContext{Pinned: make(map[string]struct{}, len(pinned))}
	for _, id := range pinned {
		if id != "" {
			ctx.Pinned[id] = struct{}{}
		}
	}
	for _, exp := range exps {
		if year, _ := ExperienceYear(exp); year > ctx.LatestYear {
			ctx.LatestYear = year
		}
	}
	return ctx
}

// ExperienceYear returns the most recent four-digit year in the experience's
// dates, falling back to its header when dates carry no year. current reports
// an open-ended range such as "2021-present".
func ExperienceYear(exp types.ExperienceBlock) (year int, current bool) {
	year, current = scanYears(exp.Dates)
	if year == 0 && !current {
		year, current = scanYears(exp.Header)
	}
	return year, current
}

func scanYears(s string) (int, bool) {
	latest := 0
	for _, m := range yearPattern.FindAllString(s, -1) {
		if y, err := strconv.Atoi(m); err == nil && y > latest {
			latest = y
		}
	}
	return latest, currentPattern.MatchString(s)
}

// recencyBonus is full at parity with the latest year and decays by one per year
func recencyBonus(exp types.ExperienceBlock, ctx ScoringContext, w Weights) int {
	year, current := ExperienceYear(exp)
	if current {
		return w.RecencyMaxBonus
	}
	if year == 0 {
		return 0
	}
	age := ctx.LatestYear - year
	if age < 0 {
		age = 0
	}
	bonus := w.RecencyMaxBonus - age
	if bonus < 0 {
		return 0
	}
	return bonus
}

// ScoreExperience computes the score breakdown of one experience block
func ScoreExperience(profileTerms map[string]struct{}, exp types.ExperienceBlock, ctx ScoringContext, w Weights) types.ScoreBreakdown {
	expTerms := terms.Set(exp.Header + " " + exp.Body)

	matched := terms.Intersect(profileTerms, expTerms)
	sort.Strings(matched)

	var skills []string
	for t := range expTerms {
		if terms.IsHardSkill(t) {
			skills = append(skills, t)
		}
	}
	sort.Strings(skills)

	year, _ := ExperienceYear(exp)
	score := types.ScoreBreakdown{
		OverlapCount:      len(matched),
		OverlapScore:      len(matched) * w.OverlapMultiplier,
		HardSkillMatches:  len(skills),
		HardSkillBonus:    len(skills) * w.HardSkillBonus,
		RecencyBonus:      recencyBonus(exp, ctx, w),
		MatchedTerms:      matched,
		MatchedHardSkills: skills,
		Year:              year,
	}
	if _, ok := ctx.Pinned[exp.ID]; ok {
		score.PinnedBonus = w.PinnedBonus
	}
	score.Total = score.OverlapScore + score.HardSkillBonus + score.RecencyBonus + score.PinnedBonus
	return score
}
