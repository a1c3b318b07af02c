package services

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates the service container with all the
// services wired onto the repository provider.
func NewServiceContainer(repos *repositories.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Invoice:     NewInvoiceService(repos.InvoiceRepo),
		Expense:     NewExpenseService(repos.ExpenseRepo),
		Collection:  NewCollectionService(repos.CollectionRepo, repos.InvoiceRepo),
		Loan:        NewLoanService(repos.LoanRepo),
		Shareholder: NewShareholderService(repos.ShareholderRepo),
		Reporting:   NewReportingService(repos.SnapshotRepo, repos.ShareholderRepo),
	}
}
