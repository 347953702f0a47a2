package validation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	wordPattern    = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9\-_/]*`)
	acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// genericPhrases are words and phrases that tend to replace concrete claims
var genericPhrases = []string{
	"complex", "various", "multiple", "key", "critical", "robust", "scalable",
	"optimized", "streamlined", "leveraged", "utilized", "improved", "enhanced",
	"maintained", "developed", "implemented", "real-time", "kpi", "kpis",
	"stakeholders", "insights", "impactful", "data-driven", "end-to-end",
	"time-series", "timeseries", "monitoring", "market trends", "efficiency",
	"operational", "synergies", "innovative", "dynamic", "strategic",
	"drove", "spearheaded", "world-class", "best-in-class",
}

// domainTerms are concrete domain nouns whose removal counts as specificity loss
var domainTerms = []string{
	"nowcasting", "inflation", "kyc", "aml", "high-frequency", "ehr", "billing",
	"clinical", "fraud", "risk", "ant", "ant group", "sanctions", "underwriting",
	"claims", "payments", "ledger",
}

// phraseSet splits a vocabulary into single words and multi-word phrases
type phraseSet struct {
	words   map[string]struct{}
	phrases []string
}

func newPhraseSet(list []string) phraseSet {
	ps := phraseSet{words: make(map[string]struct{}, len(list))}
	for _, p := range list {
		if strings.Contains(p, " ") {
			ps.phrases = append(ps.phrases, p)
			continue
		}
		ps.words[p] = struct{}{}
	}
	return ps
}

// match returns the members of the set present in the token sequence
func (ps phraseSet) match(tokens []string) map[string]struct{} {
	found := make(map[string]struct{})
	for _, t := range tokens {
		if _, ok := ps.words[t]; ok {
			found[t] = struct{}{}
		}
	}
	joined := " " + strings.Join(tokens, " ") + " "
	for _, p := range ps.phrases {
		if strings.Contains(joined, " "+p+" ") {
			found[p] = struct{}{}
		}
	}
	return found
}

var (
	generic = newPhraseSet(genericPhrases)
	domain  = newPhraseSet(domainTerms)
)

// specificity is the lexical profile of one bullet
type specificity struct {
	tokens   []string
	terms    map[string]struct{}
	digits   int
	acronyms int
}

func normalizeBullet(s string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

func tokenizeBullet(text string) []string {
	raw := wordPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimRight(t, "-_/")
		if t != "" {
			tokens = append(tokens, strings.ToLower(t))
		}
	}
	return tokens
}

func analyze(bullet string) specificity {
	text := normalizeBullet(bullet)
	sp := specificity{tokens: tokenizeBullet(text)}
	sp.terms = domain.match(sp.tokens)

	for _, t := range sp.tokens {
		if strings.ContainsAny(t, "0123456789") {
			sp.terms[t] = struct{}{}
			sp.digits++
		}
		if strings.Contains(t, "-") {
			sp.terms[t] = struct{}{}
		}
	}
	acronyms := acronymPattern.FindAllString(text, -1)
	for _, a := range acronyms {
		sp.terms[strings.ToLower(a)] = struct{}{}
	}
	sp.acronyms = len(acronyms)
	return sp
}

// difference returns the sorted members of a missing from b
func difference(a, b map[string]struct{}) []string {
	out := make([]string, 0)
	for t := range a {
		if _, ok := b[t]; !ok {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// LintBulletPair compares an original bullet with its proposed rewrite.
// It is purely lexical and never rewrites either bullet.
func LintBulletPair(oldBullet, newBullet string) []types.LintIssue {
	issues := make([]types.LintIssue, 0)
	before := analyze(oldBullet)
	after := analyze(newBullet)

	removed := difference(before.terms, after.terms)
	if len(removed) > 0 {
		issues = append(issues, types.LintIssue{
			Kind:         types.IssueSpecificityLoss,
			Message:      "new bullet drops specific terms from the original; keep concrete nouns unless the job description calls for generalization",
			RemovedTerms: removed,
		})
	}

	addedGeneric := difference(generic.match(after.tokens), generic.match(before.tokens))
	if len(addedGeneric) > 0 && len(removed) > 0 {
		issues = append(issues, types.LintIssue{
			Kind:         types.IssueBuzzwordDrift,
			Message:      "new bullet adds generic phrasing while removing specifics",
			RemovedTerms: removed,
			AddedTerms:   addedGeneric,
		})
	}

	if after.digits > before.digits {
		issues = append(issues, types.LintIssue{
			Kind:    types.IssueNewMetrics,
			Message: "new bullet introduces numbers not present in the original; make sure evidence supports them",
		})
	}

	if after.acronyms > before.acronyms {
		issues = append(issues, types.LintIssue{
			Kind:    types.IssueNewAcronyms,
			Message: "new bullet adds acronyms or tools not present in the original; make sure evidence supports them",
		})
	}

	return issues
}

// gating reports whether any issue forces user review
func gating(issues []types.LintIssue) bool {
	for _, iss := range issues {
		if iss.Kind == types.IssueSpecificityLoss || iss.Kind == types.IssueBuzzwordDrift {
			return true
		}
	}
	return false
}
