package receipts

import (
	"errors"

	"fjacquet/budget-chat/internal/budgeterror"
	"fjacquet/budget-chat/internal/ledger"
	"fjacquet/budget-chat/internal/matcher"
)

// Recorded is a receipt item that was attributed to a category.
type Recorded struct {
	Item
	Category string
}

// Result reports which receipt items were recorded and which were skipped
// because no category matched their label.
type Result struct {
	Recorded []Recorded
	Skipped  []Item
}

// Record attributes each item to the category the matcher resolves for its
// label and adds the amount to the ledger. Items with no confident match are
// skipped, not rejected.
func Record(l *ledger.Ledger, m *matcher.Matcher, items []Item) (Result, error) {
	var result Result
	for _, item := range items {
		match, err := m.Resolve(item.Label, l.Categories())
		if err != nil {
			var noMatch *budgeterror.NoMatchError
			if errors.As(err, &noMatch) {
				result.Skipped = append(result.Skipped, item)
				continue
			}
			return Result{}, err
		}

		if err := l.AddSpend(match.Category, item.Amount); err != nil {
			return Result{}, err
		}
		result.Recorded = append(result.Recorded, Recorded{Item: item, Category: match.Category})
	}
	return result, nil
}
