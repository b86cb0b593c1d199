package matcher

// query is the pre-processed form of one resolution request shared by all
// strategies: the tokenized input and the known categories in ledger order.
type query struct {
	tokens []string
	// joined is the lowercase tokens rejoined with single spaces.
	joined string
	// categories holds (lowercase, original) name pairs in ledger order.
	categories []categoryName
}

type categoryName struct {
	lower string
	orig  string
}

// ResolutionStrategy defines one method of resolving free text to a known
// category. Strategies are evaluated in a fixed order and the first
// successful one wins.
type ResolutionStrategy interface {
	// Resolve attempts to resolve the query to a category name.
	// Returns the original category name and whether resolution succeeded.
	Resolve(q query) (string, bool)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}
