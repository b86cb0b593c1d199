// Package receipts turns receipt text lines into recorded expenses. The
// image-to-text step is a host-provided capability; this package only
// consumes its line output.
package receipts

import (
	"bufio"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/budget-chat/internal/budgeterror"
	"fjacquet/budget-chat/internal/currencyutils"
)

// Item is one parsed receipt line: a label and an amount.
type Item struct {
	Label  string
	Amount decimal.Decimal
}

// LineExtractor produces text lines from a receipt reference (an image path
// for an OCR-backed implementation, a text file for the built-in stub).
type LineExtractor interface {
	ExtractLines(ref string) ([]string, error)
}

// TextFileExtractor reads receipt lines from a plain text file, one item per
// line. It stands in for an OCR extractor, which the host wires in.
type TextFileExtractor struct{}

// ExtractLines returns the non-empty trimmed lines of the file.
func (TextFileExtractor) ExtractLines(ref string) ([]string, error) {
	file, err := os.Open(ref)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Extract runs the extractor against the reference, surfacing a missing
// extractor as a reportable condition rather than a nil dereference.
func Extract(extractor LineExtractor, ref string) ([]string, error) {
	if extractor == nil {
		return nil, &budgeterror.ExtractionUnavailableError{Reason: "no line extractor configured"}
	}
	return extractor.ExtractLines(ref)
}

// ParseItems parses "<label> <amount>" lines where the last whitespace-
// separated token is the amount. Lines that don't fit the pattern are
// skipped.
func ParseItems(lines []string) []Item {
	var items []Item
	for _, line := range lines {
		idx := strings.LastIndex(strings.TrimSpace(line), " ")
		if idx < 0 {
			continue
		}

		label := strings.TrimSpace(line[:idx])
		amount, err := currencyutils.ParseAmount(line[idx+1:])
		if err != nil || label == "" {
			continue
		}

		items = append(items, Item{Label: label, Amount: amount})
	}
	return items
}
