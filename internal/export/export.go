// Package export writes the budget summary to CSV for external consumption.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"fjacquet/budget-chat/internal/ledger"
	"fjacquet/budget-chat/internal/logging"
)

// SummaryRow is one CSV row of the exported budget summary. All amounts are
// rendered with two decimals.
type SummaryRow struct {
	Category  string `csv:"Category"`
	Budget    string `csv:"Budget"`
	Spent     string `csv:"Spent"`
	Remaining string `csv:"Remaining"`
}

// SummaryRows converts the ledger summary to CSV rows in insertion order.
// Pure read; the ledger is not mutated.
func SummaryRows(l *ledger.Ledger) []SummaryRow {
	summaries := l.Summary()
	rows := make([]SummaryRow, 0, len(summaries))
	for _, row := range summaries {
		rows = append(rows, SummaryRow{
			Category:  row.Name,
			Budget:    row.Allocation.StringFixed(2),
			Spent:     row.Spent.StringFixed(2),
			Remaining: row.Remaining.StringFixed(2),
		})
	}
	return rows
}

// WriteSummaryCSV writes the ledger summary to the given CSV file, creating
// the parent directory if needed.
func WriteSummaryCSV(l *ledger.Ledger, csvFile string, logger logging.Logger) error {
	rows := SummaryRows(l)

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Exported budget summary to CSV")

	return nil
}
