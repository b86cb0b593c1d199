// Package matcher resolves free text to an existing budget category. It
// first tries exact and substring matches, then fuzzy string similarity,
// then keyword-group scoring, short-circuiting on the first success.
package matcher

import (
	"strings"
	"unicode"

	"fjacquet/budget-chat/internal/budgeterror"
	"fjacquet/budget-chat/internal/logging"
)

// Default confidence thresholds. An inferred category is accepted only when
// the fuzzy similarity reaches DefaultFuzzyCutoff or the keyword score
// reaches DefaultMinScore.
const (
	DefaultFuzzyCutoff = 0.85
	DefaultMinScore    = 2
)

// Match is the result of a successful resolution.
type Match struct {
	// Category is the resolved category name in its original casing.
	Category string
	// Strategy names the strategy that produced the match.
	Strategy string
	// Exact is true when the input named the category verbatim
	// (case-insensitively) rather than being inferred.
	Exact bool
}

// Matcher resolves free text against a set of known category names. It has
// no side effects: resolution is a pure function of the text and the
// categories passed to Resolve.
type Matcher struct {
	strategies []ResolutionStrategy
	logger     logging.Logger
}

// Option configures a Matcher.
type Option func(*options)

type options struct {
	groups      []Group
	fuzzyCutoff float64
	minScore    int
}

// WithGroups replaces the built-in keyword groups.
func WithGroups(groups []Group) Option {
	return func(o *options) {
		if len(groups) > 0 {
			o.groups = groups
		}
	}
}

// WithFuzzyCutoff overrides the fuzzy similarity threshold.
func WithFuzzyCutoff(cutoff float64) Option {
	return func(o *options) {
		if cutoff > 0 {
			o.fuzzyCutoff = cutoff
		}
	}
}

// WithMinScore overrides the minimum keyword score.
func WithMinScore(minScore int) Option {
	return func(o *options) {
		if minScore > 0 {
			o.minScore = minScore
		}
	}
}

// New creates a Matcher with the standard strategy chain.
func New(logger logging.Logger, opts ...Option) *Matcher {
	o := options{
		groups:      BuiltinGroups(),
		fuzzyCutoff: DefaultFuzzyCutoff,
		minScore:    DefaultMinScore,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Matcher{
		strategies: []ResolutionStrategy{
			&ExactStrategy{},
			&SubstringStrategy{},
			&FuzzyStrategy{Cutoff: o.fuzzyCutoff},
			NewKeywordStrategy(o.groups, o.minScore),
		},
		logger: logger,
	}
}

// Resolve maps free text to one of the known categories, or returns a
// NoMatchError when no strategy is confident enough. Categories are
// consulted in the order given; ties inside a strategy resolve
// lexicographically.
func (m *Matcher) Resolve(text string, categories []string) (Match, error) {
	if len(categories) == 0 {
		return Match{}, &budgeterror.NoMatchError{Text: text}
	}

	toks := Tokenize(text)
	if len(toks) == 0 {
		return Match{}, &budgeterror.NoMatchError{Text: text}
	}

	q := query{
		tokens: toks,
		joined: strings.Join(toks, " "),
	}
	for _, name := range categories {
		q.categories = append(q.categories, categoryName{
			lower: strings.ToLower(name),
			orig:  name,
		})
	}

	for _, strategy := range m.strategies {
		if name, ok := strategy.Resolve(q); ok {
			m.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()},
				logging.Field{Key: logging.FieldInput, Value: text},
				logging.Field{Key: logging.FieldCategory, Value: name},
			).Debug("Resolved category")

			return Match{
				Category: name,
				Strategy: strategy.Name(),
				Exact:    strategy.Name() == "Exact",
			}, nil
		}
	}

	m.logger.WithField(logging.FieldInput, text).Debug("No confident category match")
	return Match{}, &budgeterror.NoMatchError{Text: text}
}

// Tokenize splits text into lowercase alphanumeric words. Any
// non-alphanumeric character acts as a separator.
func Tokenize(text string) []string {
	var toks []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			toks = append(toks, b.String())
			b.Reset()
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return toks
}
