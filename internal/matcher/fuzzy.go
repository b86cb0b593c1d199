package matcher

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// FuzzyStrategy matches near-identical category names with minor typos using
// a difflib similarity ratio. The cutoff is deliberately strict to avoid
// false positives.
type FuzzyStrategy struct {
	Cutoff float64
}

// Name returns the name of this strategy.
func (s *FuzzyStrategy) Name() string {
	return "Fuzzy"
}

// Resolve returns the single best-matching category if its similarity to the
// input is at least the cutoff. Equal ratios resolve to the
// lexicographically smallest lowered name.
func (s *FuzzyStrategy) Resolve(q query) (string, bool) {
	best := ""
	bestLower := ""
	bestRatio := 0.0

	for _, cat := range q.categories {
		ratio := similarity(q.joined, cat.lower)
		if ratio > bestRatio || (ratio == bestRatio && best != "" && cat.lower < bestLower) {
			best = cat.orig
			bestLower = cat.lower
			bestRatio = ratio
		}
	}

	if best == "" || bestRatio < s.Cutoff {
		return "", false
	}
	return best, true
}

// similarity computes the difflib sequence-match ratio between two strings,
// compared character by character.
func similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
