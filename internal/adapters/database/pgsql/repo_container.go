package pgsql

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *repositories.RepositoryProvider {
	invoiceRepo := NewInvoiceRepository(pool)
	expenseRepo := NewExpenseRepository(pool)
	collectionRepo := NewCollectionRepository(pool)
	loanRepo := NewLoanRepository(pool)
	shareholderRepo := NewShareholderRepository(pool)

	return &repositories.RepositoryProvider{
		InvoiceRepo:     invoiceRepo,
		ExpenseRepo:     expenseRepo,
		CollectionRepo:  collectionRepo,
		LoanRepo:        loanRepo,
		ShareholderRepo: shareholderRepo,
		SnapshotRepo:    NewSnapshotRepository(invoiceRepo, expenseRepo, collectionRepo, loanRepo, shareholderRepo),
	}
}
