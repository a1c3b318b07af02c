package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	"github.com/cliniccore/clinic_ledger_app/internal/models"
	"github.com/cliniccore/clinic_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type loanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new repository for the loan ledger.
func NewLoanRepository(pool *pgxpool.Pool) repositories.LoanRepository {
	return &loanRepository{pool: pool}
}

// SaveLoan inserts a new borrowed amount.
func (r *loanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	query := `
		INSERT INTO loans (loan_id, source, amount, loan_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.LoanID,
		m.Source,
		m.Amount,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save loan %s: %w", loan.LoanID, err)
	}
	return nil
}

// ListLoans returns all loans ordered by date.
func (r *loanRepository) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	query := `
		SELECT loan_id, source, amount, loan_date, created_at, created_by, last_updated_at, last_updated_by
		FROM loans
		ORDER BY loan_date, loan_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var ms []models.Loan
	for rows.Next() {
		var m models.Loan
		if err := rows.Scan(
			&m.LoanID,
			&m.Source,
			&m.Amount,
			&m.Date,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}
	return mapping.ToDomainLoanSlice(ms), nil
}

// SaveRepayment records an installment against an existing loan.
func (r *loanRepository) SaveRepayment(ctx context.Context, repayment domain.Repayment) error {
	m := mapping.ToModelRepayment(repayment)
	query := `
		INSERT INTO loan_repayments (repayment_id, loan_id, amount, repayment_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.RepaymentID,
		m.LoanID,
		m.Amount,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			// Referenced loan does not exist
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to save repayment %s: %w", repayment.RepaymentID, err)
	}
	return nil
}

// ListRepayments returns all installments ordered by date.
func (r *loanRepository) ListRepayments(ctx context.Context) ([]domain.Repayment, error) {
	query := `
		SELECT repayment_id, loan_id, amount, repayment_date, created_at, created_by, last_updated_at, last_updated_by
		FROM loan_repayments
		ORDER BY repayment_date, repayment_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list repayments: %w", err)
	}
	defer rows.Close()

	var ms []models.Repayment
	for rows.Next() {
		var m models.Repayment
		if err := rows.Scan(
			&m.RepaymentID,
			&m.LoanID,
			&m.Amount,
			&m.Date,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan repayment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating repayment rows: %w", err)
	}
	return mapping.ToDomainRepaymentSlice(ms), nil
}
