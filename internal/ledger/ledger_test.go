package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/budget-chat/internal/budgeterror"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestSetCategoryCreatedAndUpdated(t *testing.T) {
	l := New()

	result := l.SetCategory("Food", dec(t, "100"))
	assert.Equal(t, Created, result)

	result = l.SetCategory("Food", dec(t, "250"))
	assert.Equal(t, Updated, result)

	summary := l.Summary()
	require.Len(t, summary, 1)
	assert.True(t, summary[0].Allocation.Equal(dec(t, "250")))
	assert.True(t, summary[0].Spent.IsZero())
}

func TestSetCategoryPreservesSpendOnReset(t *testing.T) {
	l := New()
	l.SetCategory("Food", dec(t, "100"))
	require.NoError(t, l.AddSpend("Food", dec(t, "40")))

	l.SetCategory("Food", dec(t, "200"))

	spent, err := l.Spent("Food")
	require.NoError(t, err)
	assert.True(t, spent.Equal(dec(t, "40")))
}

func TestAddSpendAccumulates(t *testing.T) {
	l := New()
	l.SetCategory("Food", dec(t, "100"))

	require.NoError(t, l.AddSpend("Food", dec(t, "25")))
	require.NoError(t, l.AddSpend("Food", dec(t, "30")))

	remaining, err := l.Remaining("Food")
	require.NoError(t, err)
	assert.True(t, remaining.Equal(dec(t, "45")))
}

func TestRemainingMayGoNegative(t *testing.T) {
	l := New()
	l.SetCategory("Fun", dec(t, "50"))
	require.NoError(t, l.AddSpend("Fun", dec(t, "80")))

	remaining, err := l.Remaining("Fun")
	require.NoError(t, err)
	assert.True(t, remaining.Equal(dec(t, "-30")))
}

func TestUnknownCategory(t *testing.T) {
	l := New()

	err := l.AddSpend("Nope", dec(t, "10"))
	require.Error(t, err)
	var unknownErr *budgeterror.UnknownCategoryError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "Nope", unknownErr.Name)

	_, err = l.Remaining("Nope")
	assert.True(t, errors.As(err, &unknownErr))

	// A failed spend must not create the category.
	assert.Equal(t, 0, l.Len())
}

func TestSummaryInsertionOrder(t *testing.T) {
	l := New()
	l.SetCategory("Travel", dec(t, "300"))
	l.SetCategory("Food", dec(t, "200"))
	l.SetCategory("Fun", dec(t, "50"))

	// Re-setting an existing category must not move it.
	l.SetCategory("Travel", dec(t, "400"))

	names := make([]string, 0, 3)
	for _, row := range l.Summary() {
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{"Travel", "Food", "Fun"}, names)
	assert.Equal(t, []string{"Travel", "Food", "Fun"}, l.Categories())
}

func TestStatus(t *testing.T) {
	l := New()
	l.SetCategory("Food", dec(t, "200"))
	require.NoError(t, l.AddSpend("Food", dec(t, "50")))

	status, err := l.Status("Food")
	require.NoError(t, err)
	assert.True(t, status.PercentUsed.Equal(dec(t, "25")))
	assert.True(t, status.Remaining.Equal(dec(t, "150")))
}

func TestStatusZeroAllocation(t *testing.T) {
	l := New()
	l.SetCategory("Misc", decimal.Zero)
	require.NoError(t, l.AddSpend("Misc", dec(t, "5")))

	status, err := l.Status("Misc")
	require.NoError(t, err)
	assert.True(t, status.PercentUsed.IsZero())
}
