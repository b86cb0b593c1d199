package matcher

import "strings"

// KeywordStrategy scores categories against the input tokens using semantic
// keyword groups. It is the last and loosest stage of the resolution chain.
type KeywordStrategy struct {
	groups   []Group
	minScore int
}

// NewKeywordStrategy creates a KeywordStrategy over the given groups. A
// candidate is accepted only when its score reaches minScore.
func NewKeywordStrategy(groups []Group, minScore int) *KeywordStrategy {
	return &KeywordStrategy{groups: groups, minScore: minScore}
}

// Name returns the name of this strategy.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Resolve scores every category and returns the best one if it reaches the
// minimum score. Scoring per category:
//   - +2 for each input token that is a substring of the category's lowered name
//   - +2 for each input token that equals a keyword of the category's mapped group
//   - +1 for each group whose keywords contain an input token and whose label
//     is a substring of the category's lowered name
//
// Ties resolve to the lexicographically smallest lowered name. This
// tie-break is a documented contract, not an accident of iteration order.
func (s *KeywordStrategy) Resolve(q query) (string, bool) {
	best := ""
	bestLower := ""
	bestScore := 0

	for _, cat := range q.categories {
		score := s.score(q.tokens, cat.lower)
		if score > bestScore || (score == bestScore && best != "" && cat.lower < bestLower) {
			best = cat.orig
			bestLower = cat.lower
			bestScore = score
		}
	}

	if best == "" || bestScore < s.minScore {
		return "", false
	}
	return best, true
}

func (s *KeywordStrategy) score(tokens []string, catLower string) int {
	score := 0

	for _, tok := range tokens {
		if strings.Contains(catLower, tok) {
			score += 2
		}
	}

	if group := s.groupForName(catLower); group != nil {
		for _, tok := range tokens {
			if group.Contains(tok) {
				score += 2
			}
		}
	}

	for i := range s.groups {
		group := &s.groups[i]
		if !strings.Contains(catLower, group.Label) {
			continue
		}
		for _, tok := range tokens {
			if group.Contains(tok) {
				score++
				break
			}
		}
	}

	return score
}

// groupForName maps a category name to a semantic group when the name
// contains the group's label or one of its keywords. The first matching
// group in declaration order wins.
func (s *KeywordStrategy) groupForName(catLower string) *Group {
	for i := range s.groups {
		group := &s.groups[i]
		if strings.Contains(catLower, group.Label) {
			return group
		}
		for _, kw := range group.Keywords {
			if strings.Contains(catLower, kw) {
				return group
			}
		}
	}
	return nil
}
