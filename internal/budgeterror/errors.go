// Package budgeterror defines the typed error conditions used throughout
// the application.
package budgeterror

import "fmt"

// UnknownCategoryError indicates an operation referenced a category that is
// not present in the ledger.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category: %s", e.Name)
}

// InvalidAmountError indicates currency text that did not parse as a decimal
// amount.
type InvalidAmountError struct {
	Value string
	Err   error
}

func (e *InvalidAmountError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid amount '%s'", e.Value)
	}
	return fmt.Sprintf("invalid amount '%s': %v", e.Value, e.Err)
}

func (e *InvalidAmountError) Unwrap() error {
	return e.Err
}

// NoMatchError indicates the matcher found no sufficiently confident
// category for the given text.
type NoMatchError struct {
	Text string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no confident category match for '%s'", e.Text)
}

// CorruptStateError indicates the persisted budget state could not be read.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt budget state in %s: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// ExtractionUnavailableError indicates no receipt line extractor is
// configured for the session.
type ExtractionUnavailableError struct {
	Reason string
}

func (e *ExtractionUnavailableError) Error() string {
	return fmt.Sprintf("receipt extraction unavailable: %s", e.Reason)
}
