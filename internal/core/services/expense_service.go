package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo repositories.ExpenseRepository
}

// NewExpenseService creates the expense book service.
func NewExpenseService(expenseRepo repositories.ExpenseRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

// RecordExpenses appends items under the request's calendar date.
// Categories are normalized to their canonical labels so statement
// buckets never split on spelling variants.
func (s *expenseService) RecordExpenses(ctx context.Context, req dto.RecordExpensesRequest, creatorUserID string) ([]domain.ExpenseItem, error) {
	now := time.Now().UTC()

	items := make([]domain.ExpenseItem, len(req.Items))
	for i, line := range req.Items {
		if line.PaidAmount.IsNegative() {
			return nil, fmt.Errorf("%w: expense paid amount must not be negative", apperrors.ErrValidation)
		}
		items[i] = domain.ExpenseItem{
			ExpenseID:   uuid.NewString(),
			Category:    ledger.NormalizeExpenseCategory(line.Category),
			SubCategory: line.SubCategory,
			BillAmount:  line.BillAmount,
			PaidAmount:  line.PaidAmount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := s.expenseRepo.SaveExpenseItems(ctx, req.Date, items); err != nil {
		s.LogError(ctx, err, "Failed to save expense items", slog.String("date", req.Date))
		return nil, fmt.Errorf("failed to record expenses: %w", err)
	}

	s.LogInfo(ctx, "Expenses recorded", slog.String("date", req.Date), slog.Int("count", len(items)))
	return items, nil
}

// ListExpenses returns the expense book restricted to [from, to).
func (s *expenseService) ListExpenses(ctx context.Context, from, to time.Time) (domain.ExpenseBook, error) {
	book, err := s.expenseRepo.GetExpenseBook(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if book == nil {
		return domain.ExpenseBook{}, nil
	}
	return book, nil
}
