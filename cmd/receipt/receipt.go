// Package receipt handles receipt ingestion commands.
package receipt

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/budget-chat/cmd/root"
	"fjacquet/budget-chat/internal/currencyutils"
	"fjacquet/budget-chat/internal/receipts"
)

var inputFile string

// Cmd represents the receipt command
var Cmd = &cobra.Command{
	Use:   "receipt",
	Short: "Record expenses from receipt text lines",
	Long: `Read receipt lines from a text file (one "<item> <amount>" per line),
match each item against the budget categories and record the expenses. An
OCR front-end can produce the text file from a receipt image.`,
	Run: receiptFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Receipt text file")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func receiptFunc(cmd *cobra.Command, args []string) {
	session, err := root.BuildSession()
	if err != nil {
		root.Log.Fatalf("Failed to load budget: %v", err)
	}

	lines, err := receipts.Extract(receipts.TextFileExtractor{}, inputFile)
	if err != nil {
		root.Log.Fatalf("Failed to extract receipt lines: %v", err)
	}

	items := receipts.ParseItems(lines)
	result, err := receipts.Record(session.Agent.Ledger(), session.Matcher, items)
	if err != nil {
		root.Log.Fatalf("Failed to record receipt items: %v", err)
	}

	if len(result.Recorded) > 0 {
		if err := session.Store.Save(session.Agent.Ledger()); err != nil {
			root.Log.Fatalf("Failed to save budget: %v", err)
		}
	}

	for _, rec := range result.Recorded {
		fmt.Printf("Added %s to %s from line '%s'\n",
			currencyutils.FormatUSD(rec.Amount), rec.Category, rec.Label)
	}
	for _, item := range result.Skipped {
		fmt.Printf("Skipped '%s' (no matching category)\n", item.Label)
	}
	root.Log.Infof("Receipt processed: %d recorded, %d skipped",
		len(result.Recorded), len(result.Skipped))
}
