package services

import (
	"context"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LoanSvcFacade defines operations on the loan ledger.
type LoanSvcFacade interface {
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, creatorUserID string) (*domain.Loan, error)
	RecordRepayment(ctx context.Context, req dto.RecordRepaymentRequest, creatorUserID string) (*domain.Repayment, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)

	// Outstanding returns total borrowed, total repaid and the net
	// position over the full loan history.
	Outstanding(ctx context.Context) (borrowed, repaid, outstanding decimal.Decimal, err error)
}
