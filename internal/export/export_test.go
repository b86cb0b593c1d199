package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/budget-chat/internal/ledger"
	"fjacquet/budget-chat/internal/logging"
)

func buildLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	l.SetCategory("Food", decimal.NewFromInt(200))
	l.SetCategory("Travel", decimal.NewFromInt(300))
	require.NoError(t, l.AddSpend("Food", decimal.RequireFromString("50.5")))
	return l
}

func TestSummaryRows(t *testing.T) {
	rows := SummaryRows(buildLedger(t))

	require.Len(t, rows, 2)
	assert.Equal(t, SummaryRow{Category: "Food", Budget: "200.00", Spent: "50.50", Remaining: "149.50"}, rows[0])
	assert.Equal(t, SummaryRow{Category: "Travel", Budget: "300.00", Spent: "0.00", Remaining: "300.00"}, rows[1])
}

func TestWriteSummaryCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "out", "summary.csv")

	require.NoError(t, WriteSummaryCSV(buildLedger(t), csvFile, &logging.MockLogger{}))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Category,Budget,Spent,Remaining")
	assert.Contains(t, content, "Food,200.00,50.50,149.50")
	assert.Contains(t, content, "Travel,300.00,0.00,300.00")
}

func TestWriteSummaryCSVEmptyLedger(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "summary.csv")

	require.NoError(t, WriteSummaryCSV(ledger.New(), csvFile, &logging.MockLogger{}))
	assert.FileExists(t, csvFile)
}
