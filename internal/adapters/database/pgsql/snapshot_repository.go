package pgsql

import (
	"context"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
)

type snapshotRepository struct {
	invoices     repositories.InvoiceRepository
	expenses     repositories.ExpenseRepository
	collections  repositories.CollectionRepository
	loans        repositories.LoanRepository
	shareholders repositories.ShareholderRepository
}

// NewSnapshotRepository creates the repository that materializes the
// full transaction log for one reconciliation run.
func NewSnapshotRepository(
	invoices repositories.InvoiceRepository,
	expenses repositories.ExpenseRepository,
	collections repositories.CollectionRepository,
	loans repositories.LoanRepository,
	shareholders repositories.ShareholderRepository,
) repositories.SnapshotRepository {
	return &snapshotRepository{
		invoices:     invoices,
		expenses:     expenses,
		collections:  collections,
		loans:        loans,
		shareholders: shareholders,
	}
}

// GetLedgerSnapshot loads the whole transaction log. Period filtering
// happens in the reconciliation engine, not in SQL, so carry-forward
// always sees the full history.
func (r *snapshotRepository) GetLedgerSnapshot(ctx context.Context) (ledger.Snapshot, error) {
	var snap ledger.Snapshot
	var err error

	if snap.Invoices, err = r.invoices.ListInvoices(ctx, nil, time.Time{}, time.Time{}); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.Expenses, err = r.expenses.GetExpenseBook(ctx, time.Time{}, time.Time{}); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.DueCollections, err = r.collections.ListDueCollections(ctx); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.CompanyCollections, err = r.collections.ListCompanyCollections(ctx); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.Loans, err = r.loans.ListLoans(ctx); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.Repayments, err = r.loans.ListRepayments(ctx); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.Shareholders, err = r.shareholders.ListShareholders(ctx); err != nil {
		return ledger.Snapshot{}, err
	}
	return snap, nil
}
