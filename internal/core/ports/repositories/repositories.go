package repositories

// RepositoryProvider aggregates all repository implementations so they
// can be passed around as one dependency.
type RepositoryProvider struct {
	InvoiceRepo     InvoiceRepository
	ExpenseRepo     ExpenseRepository
	CollectionRepo  CollectionRepository
	LoanRepo        LoanRepository
	ShareholderRepo ShareholderRepository
	SnapshotRepo    SnapshotRepository
}
