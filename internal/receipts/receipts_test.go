package receipts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/budget-chat/internal/budgeterror"
	"fjacquet/budget-chat/internal/ledger"
	"fjacquet/budget-chat/internal/logging"
	"fjacquet/budget-chat/internal/matcher"
)

func TestParseItems(t *testing.T) {
	lines := []string{
		"milk 3.50",
		"bus ticket $2.75",
		"no-amount-here",
		"12.00",
		"fancy cheese wheel 24",
	}

	items := ParseItems(lines)
	require.Len(t, items, 3)

	assert.Equal(t, "milk", items[0].Label)
	assert.True(t, items[0].Amount.Equal(decimal.RequireFromString("3.5")))

	assert.Equal(t, "bus ticket", items[1].Label)
	assert.True(t, items[1].Amount.Equal(decimal.RequireFromString("2.75")))

	assert.Equal(t, "fancy cheese wheel", items[2].Label)
	assert.True(t, items[2].Amount.Equal(decimal.NewFromInt(24)))
}

func TestTextFileExtractor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.txt")
	require.NoError(t, os.WriteFile(path, []byte("milk 3.50\n\n  bus ticket 2.75  \n"), 0644))

	lines, err := TextFileExtractor{}.ExtractLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"milk 3.50", "bus ticket 2.75"}, lines)
}

func TestTextFileExtractorMissingFile(t *testing.T) {
	_, err := TextFileExtractor{}.ExtractLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestExtractWithoutExtractor(t *testing.T) {
	_, err := Extract(nil, "receipt.jpg")
	require.Error(t, err)
	var unavailable *budgeterror.ExtractionUnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestRecord(t *testing.T) {
	logger := &logging.MockLogger{}
	l := ledger.New()
	l.SetCategory("Food", decimal.NewFromInt(100))
	l.SetCategory("Transport", decimal.NewFromInt(50))

	items := []Item{
		{Label: "groceries", Amount: decimal.RequireFromString("30")},
		{Label: "bus ticket", Amount: decimal.RequireFromString("2.75")},
		{Label: "quantum flux coupling", Amount: decimal.RequireFromString("99")},
	}

	result, err := Record(l, matcher.New(logger), items)
	require.NoError(t, err)

	require.Len(t, result.Recorded, 2)
	assert.Equal(t, "Food", result.Recorded[0].Category)
	assert.Equal(t, "Transport", result.Recorded[1].Category)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "quantum flux coupling", result.Skipped[0].Label)

	spent, err := l.Spent("Food")
	require.NoError(t, err)
	assert.True(t, spent.Equal(decimal.NewFromInt(30)))
}
