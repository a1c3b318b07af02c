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
	"github.com/shopspring/decimal"
)

type loanService struct {
	BaseService
	loanRepo repositories.LoanRepository
}

// NewLoanService creates the loan ledger service.
func NewLoanService(loanRepo repositories.LoanRepository) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: loanRepo}
}

// CreateLoan records a borrowed amount.
func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, creatorUserID string) (*domain.Loan, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: loan amount must be positive", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid loan date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now().UTC()
	loan := domain.Loan{
		LoanID: uuid.NewString(),
		Source: req.Source,
		Amount: req.Amount,
		Date:   date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("source", req.Source))
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	s.LogInfo(ctx, "Loan recorded", slog.String("loan_id", loan.LoanID), slog.String("source", req.Source))
	return &loan, nil
}

// RecordRepayment records an installment against an existing loan.
// Overpayment is allowed; the outstanding figure goes negative rather
// than clamping, so excess repayments stay visible.
func (s *loanService) RecordRepayment(ctx context.Context, req dto.RecordRepaymentRequest, creatorUserID string) (*domain.Repayment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: repayment amount must be positive", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid repayment date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now().UTC()
	repayment := domain.Repayment{
		RepaymentID: uuid.NewString(),
		LoanID:      req.LoanID,
		Amount:      req.Amount,
		Date:        date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.loanRepo.SaveRepayment(ctx, repayment); err != nil {
		s.LogError(ctx, err, "Failed to save repayment", slog.String("loan_id", req.LoanID))
		return nil, fmt.Errorf("failed to record repayment: %w", err)
	}

	s.LogInfo(ctx, "Repayment recorded", slog.String("loan_id", req.LoanID))
	return &repayment, nil
}

// ListLoans returns all loans.
func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

// Outstanding returns total borrowed, total repaid and the net position
// over the full loan history.
func (s *loanService) Outstanding(ctx context.Context) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("failed to list loans: %w", err)
	}
	repayments, err := s.loanRepo.ListRepayments(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("failed to list repayments: %w", err)
	}

	borrowed := decimal.Zero
	for _, loan := range loans {
		borrowed = borrowed.Add(loan.Amount)
	}
	repaid := decimal.Zero
	for _, rep := range repayments {
		repaid = repaid.Add(rep.Amount)
	}

	return borrowed, repaid, ledger.LoanOutstanding(loans, repayments), nil
}
