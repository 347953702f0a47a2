package ranking

import (
	"sort"

	"github.com/jonathan/resume-tailor/internal/types"
)

// RankExperiences scores every experience and returns them best first.
// Ties on total break by recency, then hard skills, then pinning, then id,
// so the result does not depend on input order.
func RankExperiences(profileTerms map[string]struct{}, exps []types.ExperienceBlock, ctx ScoringContext, w Weights) []types.RankedExperience {
	ranked := make([]types.RankedExperience, 0, len(exps))
	for _, exp := range exps {
		ranked = append(ranked, types.RankedExperience{
			Experience: exp,
			Score:      ScoreExperience(profileTerms, exp, ctx, w),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

func less(a, b types.RankedExperience) bool {
	if a.Score.Total != b.Score.Total {
		return a.Score.Total > b.Score.Total
	}
	if a.Score.RecencyBonus != b.Score.RecencyBonus {
		return a.Score.RecencyBonus > b.Score.RecencyBonus
	}
	if a.Score.HardSkillBonus != b.Score.HardSkillBonus {
		return a.Score.HardSkillBonus > b.Score.HardSkillBonus
	}
	if a.Score.PinnedBonus != b.Score.PinnedBonus {
		return a.Score.PinnedBonus > b.Score.PinnedBonus
	}
	return a.Experience.ID < b.Experience.ID
}
