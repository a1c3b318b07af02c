package repositories

import (
	"context"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
)

// ExpenseRepository defines persistence operations for the date-keyed
// expense book.
type ExpenseRepository interface {
	// SaveExpenseItems appends items under a calendar date key
	// (2006-01-02). Order within a date is preserved.
	SaveExpenseItems(ctx context.Context, date string, items []domain.ExpenseItem) error

	// GetExpenseBook returns the expense book restricted to dates in
	// [from, to).
	GetExpenseBook(ctx context.Context, from, to time.Time) (domain.ExpenseBook, error)
}
