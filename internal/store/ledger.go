package store

import (
	"github.com/google/uuid"

	"grana/internal/model"
)

// Expenses returns the ledger in insertion order. An absent or corrupt
// ledger reads as empty. When userID is non-empty only that user's
// records are returned.
func (s *Store) Expenses(userID string) []model.Expense {
	var ledger []model.Expense
	s.read(colExpenses, &ledger)

	if userID == "" {
		return ledger
	}
	var out []model.Expense
	for _, e := range ledger {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// AppendExpense assigns the record a unique id, appends it to the
// ledger and commits immediately.
func (s *Store) AppendExpense(e model.Expense) (model.Expense, error) {
	e.ID = uuid.NewString()

	ledger := s.Expenses("")
	ledger = append(ledger, e)
	if err := s.write(colExpenses, ledger); err != nil {
		return model.Expense{}, err
	}
	return e, nil
}

// RemoveExpense deletes the record with the given id. Removing an
// unknown id is a no-op.
func (s *Store) RemoveExpense(id string) error {
	ledger := s.Expenses("")

	kept := ledger[:0]
	for _, e := range ledger {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(ledger) {
		return nil
	}
	return s.write(colExpenses, kept)
}
