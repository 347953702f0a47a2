// Package terms tokenizes free text into unigram and bigram terms used by every scoring component.
package terms

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

const (
	// minTokenLen is the shortest unigram kept
	minTokenLen = 3
	// minPairOccurrences is how often a non-whitelisted pair must repeat to become a bigram
	minPairOccurrences = 2
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9_+.\-]*`)

// Tokenize splits text into case-folded tokens with surrounding punctuation stripped.
// No stopword or length filtering is applied.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(text, -1)
	folder := cases.Fold()
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Trim(tok, "._-")
		if tok == "" {
			continue
		}
		tokens = append(tokens, folder.String(tok))
	}
	return tokens
}

// Unigrams returns the qualifying unigrams of text in order, one per occurrence
func Unigrams(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < minTokenLen || IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Extract returns the ordered term list for text: every unigram in order,
// followed by the qualifying bigrams in pair order.
func Extract(text string) []string {
	unigrams := Unigrams(text)
	if len(unigrams) < 2 {
		return unigrams
	}

	pairCounts := make(map[[2]string]int, len(unigrams)-1)
	for i := 0; i+1 < len(unigrams); i++ {
		pairCounts[[2]string{unigrams[i], unigrams[i+1]}]++
	}

	out := make([]string, 0, len(unigrams)*2)
	out = append(out, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		a, b := unigrams[i], unigrams[i+1]
		if keepBigram(a, b, pairCounts[[2]string{a, b}]) {
			out = append(out, a+"_"+b)
		}
	}
	return out
}

func keepBigram(a, b string, occurrences int) bool {
	if IsWhitelistedPhrase(a, b) {
		return true
	}
	if occurrences < minPairOccurrences {
		return false
	}
	return !(IsGeneric(a) && IsGeneric(b))
}

// Set returns the distinct terms of text
func Set(text string) map[string]struct{} {
	list := Extract(text)
	set := make(map[string]struct{}, len(list))
	for _, t := range list {
		set[t] = struct{}{}
	}
	return set
}

// Overlap counts the members of profile present in text's term set
func Overlap(profile map[string]struct{}, text string) int {
	return len(Intersect(profile, Set(text)))
}

// Intersect returns the members of a also present in b, in no particular order
func Intersect(a, b map[string]struct{}) []string {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make([]string, 0)
	for t := range a {
		if _, ok := b[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
