// Package parsing builds weighted keyword profiles from job description text.
package parsing

import (
	"sort"

	"github.com/jonathan/resume-tailor/internal/terms"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// DefaultTopK is the number of keywords kept for ranking
	DefaultTopK = 60
	// DefaultCoverageK is the number of keywords checked for coverage
	DefaultCoverageK = 40
	// GenericPenalty is subtracted from the count of generic terms before ranking
	GenericPenalty = 1
	// ExtractionMethod names the keyword extraction used for profiles
	ExtractionMethod = "lexical-unigram-bigram"
)

// BuildProfile ranks the terms of a job description into a keyword profile.
// Generic terms are down-weighted by GenericPenalty (never below zero), zero
// counts are dropped and the top topK terms are kept ordered by (-count, term).
func BuildProfile(jdText string, topK int) types.KeywordProfile {
	if topK <= 0 {
		topK = DefaultTopK
	}

	counts := make(map[string]int)
	for _, term := range terms.Extract(jdText) {
		counts[term]++
	}

	keywords := make([]types.KeywordCount, 0, len(counts))
	for term, count := range counts {
		if terms.IsGeneric(term) {
			count = max(count-GenericPenalty, 0)
		}
		if count == 0 {
			continue
		}
		keywords = append(keywords, types.KeywordCount{Keyword: term, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Keyword < keywords[j].Keyword
	})

	if len(keywords) > topK {
		keywords = keywords[:topK]
	}

	return types.KeywordProfile{Keywords: keywords}
}

// Extraction describes the settings BuildProfile ran with
func Extraction(topK int) types.ExtractionInfo {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return types.ExtractionInfo{
		Method:         ExtractionMethod,
		TopK:           topK,
		GenericPenalty: GenericPenalty,
	}
}
