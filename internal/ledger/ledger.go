// Package ledger holds the budget ledger aggregate: per-category allocations
// and cumulative spend.
package ledger

import (
	"github.com/shopspring/decimal"

	"fjacquet/budget-chat/internal/budgeterror"
)

// SetResult reports whether SetCategory created a new category or updated an
// existing one.
type SetResult int

const (
	// Created indicates the category did not exist before the call.
	Created SetResult = iota
	// Updated indicates the category existed and its allocation was replaced.
	Updated
)

// Category is a named budget bucket with an allocation and accumulated spend.
type Category struct {
	Name       string
	Allocation decimal.Decimal
	Spent      decimal.Decimal
}

// Remaining returns allocation minus spend. It may be negative; overspend is
// permitted, not rejected.
func (c Category) Remaining() decimal.Decimal {
	return c.Allocation.Sub(c.Spent)
}

// CategorySummary is one row of the ledger summary.
type CategorySummary struct {
	Name       string
	Allocation decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
}

// CategoryStatus is a point-in-time snapshot of a single category including
// the share of the allocation already used.
type CategoryStatus struct {
	Name        string
	Allocation  decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed decimal.Decimal
}

// Ledger maps category names to allocations and spend. Categories keep their
// insertion order so summaries render deterministically. The zero value is
// not usable; construct with New.
type Ledger struct {
	categories map[string]*Category
	order      []string
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{categories: make(map[string]*Category)}
}

// SetCategory creates the category if absent or overwrites its allocation if
// present. Existing spend is preserved on re-set; a new category starts with
// zero spend.
func (l *Ledger) SetCategory(name string, amount decimal.Decimal) SetResult {
	if cat, ok := l.categories[name]; ok {
		cat.Allocation = amount
		return Updated
	}

	l.categories[name] = &Category{
		Name:       name,
		Allocation: amount,
		Spent:      decimal.Zero,
	}
	l.order = append(l.order, name)
	return Created
}

// AddSpend adds amount to the category's running total. The name must match
// a known category exactly; resolving loose descriptions to categories is
// the matcher's job, not the ledger's.
func (l *Ledger) AddSpend(name string, amount decimal.Decimal) error {
	cat, ok := l.categories[name]
	if !ok {
		return &budgeterror.UnknownCategoryError{Name: name}
	}
	cat.Spent = cat.Spent.Add(amount)
	return nil
}

// Remaining returns allocation minus spend for the named category.
func (l *Ledger) Remaining(name string) (decimal.Decimal, error) {
	cat, ok := l.categories[name]
	if !ok {
		return decimal.Zero, &budgeterror.UnknownCategoryError{Name: name}
	}
	return cat.Remaining(), nil
}

// Status returns a snapshot of the named category. PercentUsed is zero when
// the allocation is zero.
func (l *Ledger) Status(name string) (CategoryStatus, error) {
	cat, ok := l.categories[name]
	if !ok {
		return CategoryStatus{}, &budgeterror.UnknownCategoryError{Name: name}
	}

	percent := decimal.Zero
	if !cat.Allocation.IsZero() {
		percent = cat.Spent.Div(cat.Allocation).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return CategoryStatus{
		Name:        cat.Name,
		Allocation:  cat.Allocation,
		Remaining:   cat.Remaining(),
		PercentUsed: percent,
	}, nil
}

// Summary returns one row per category in insertion order.
func (l *Ledger) Summary() []CategorySummary {
	summaries := make([]CategorySummary, 0, len(l.order))
	for _, name := range l.order {
		cat := l.categories[name]
		summaries = append(summaries, CategorySummary{
			Name:       cat.Name,
			Allocation: cat.Allocation,
			Spent:      cat.Spent,
			Remaining:  cat.Remaining(),
		})
	}
	return summaries
}

// Categories returns the category names in insertion order.
func (l *Ledger) Categories() []string {
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}

// Len returns the number of categories.
func (l *Ledger) Len() int {
	return len(l.order)
}

// Spent returns the accumulated spend for the named category.
func (l *Ledger) Spent(name string) (decimal.Decimal, error) {
	cat, ok := l.categories[name]
	if !ok {
		return decimal.Zero, &budgeterror.UnknownCategoryError{Name: name}
	}
	return cat.Spent, nil
}

// SetSpent overwrites the accumulated spend for the named category. It is
// used when restoring a ledger from persisted state.
func (l *Ledger) SetSpent(name string, amount decimal.Decimal) error {
	cat, ok := l.categories[name]
	if !ok {
		return &budgeterror.UnknownCategoryError{Name: name}
	}
	cat.Spent = amount
	return nil
}
