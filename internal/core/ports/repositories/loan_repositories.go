package repositories

import (
	"context"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
)

// LoanRepository defines persistence operations for the loan ledger.
type LoanRepository interface {
	SaveLoan(ctx context.Context, loan domain.Loan) error
	ListLoans(ctx context.Context) ([]domain.Loan, error)

	// SaveRepayment records an installment. Returns
	// apperrors.ErrNotFound when the referenced loan does not exist.
	SaveRepayment(ctx context.Context, repayment domain.Repayment) error
	ListRepayments(ctx context.Context) ([]domain.Repayment, error)
}
