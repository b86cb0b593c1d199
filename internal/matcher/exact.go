package matcher

import "strings"

// ExactStrategy matches when the lowercased input equals a known category's
// lowercased name. It always wins over every other strategy regardless of
// keyword score.
type ExactStrategy struct{}

// Name returns the name of this strategy.
func (s *ExactStrategy) Name() string {
	return "Exact"
}

// Resolve returns the category whose lowered name equals the lowered input.
func (s *ExactStrategy) Resolve(q query) (string, bool) {
	for _, cat := range q.categories {
		if cat.lower == q.joined {
			return cat.orig, true
		}
	}
	return "", false
}

// SubstringStrategy matches when a known category's lowercased name appears
// as a substring of the input. This lets inputs like "on my food budget"
// resolve to "Food".
type SubstringStrategy struct{}

// Name returns the name of this strategy.
func (s *SubstringStrategy) Name() string {
	return "Substring"
}

// Resolve returns the first category whose lowered name is contained in the
// token-joined input.
func (s *SubstringStrategy) Resolve(q query) (string, bool) {
	for _, cat := range q.categories {
		if cat.lower != "" && strings.Contains(q.joined, cat.lower) {
			return cat.orig, true
		}
	}
	return "", false
}
