package services

import (
	"context"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
)

// ExpenseSvcFacade defines operations on the date-keyed expense book.
type ExpenseSvcFacade interface {
	RecordExpenses(ctx context.Context, req dto.RecordExpensesRequest, creatorUserID string) ([]domain.ExpenseItem, error)
	ListExpenses(ctx context.Context, from, to time.Time) (domain.ExpenseBook, error)
}
