// Package store provides persistence for the budget ledger and the keyword
// group configuration.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"

	"fjacquet/budget-chat/internal/budgeterror"
	"fjacquet/budget-chat/internal/ledger"
	"fjacquet/budget-chat/internal/logging"
)

// state is the on-disk schema: two mappings from category name to amount.
// The file is overwritten wholesale on every save; last write wins.
type state struct {
	Categories map[string]decimal.Decimal `json:"categories"`
	Spent      map[string]decimal.Decimal `json:"spent"`
}

// StateStore reads and writes the budget ledger at a fixed path. The path is
// supplied at construction; there is no process-wide default.
type StateStore struct {
	path   string
	logger logging.Logger
}

// NewStateStore creates a store for the given file path.
func NewStateStore(path string, logger logging.Logger) *StateStore {
	return &StateStore{path: path, logger: logger}
}

// Path returns the file path this store reads and writes.
func (s *StateStore) Path() string {
	return s.path
}

// Save writes the ledger to disk, creating the parent directory if needed.
// Write failures are returned to the caller; silent data loss is not
// acceptable.
func (s *StateStore) Save(l *ledger.Ledger) error {
	st := state{
		Categories: make(map[string]decimal.Decimal),
		Spent:      make(map[string]decimal.Decimal),
	}
	for _, row := range l.Summary() {
		st.Categories[row.Name] = row.Allocation
		st.Spent[row.Name] = row.Spent
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling budget state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing budget state: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: l.Len()},
	).Debug("Saved budget state")

	return nil
}

// Load reads the ledger from disk. A missing file yields an empty ledger;
// unreadable content yields a CorruptStateError. Categories are restored in
// lexicographic name order since the on-disk schema carries no order.
func (s *StateStore) Load() (*ledger.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.path).Debug("No budget state file, starting empty")
			return ledger.New(), nil
		}
		return nil, fmt.Errorf("error reading budget state: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, &budgeterror.CorruptStateError{Path: s.path, Err: err}
	}

	names := make([]string, 0, len(st.Categories))
	for name := range st.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	l := ledger.New()
	for _, name := range names {
		l.SetCategory(name, st.Categories[name])
		if spent, ok := st.Spent[name]; ok {
			if err := l.SetSpent(name, spent); err != nil {
				return nil, err
			}
		}
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: l.Len()},
	).Debug("Loaded budget state")

	return l, nil
}
