package ledger

import (
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
)

// Snapshot is the immutable view of the transaction log one computation
// runs over. Callers own the underlying collections; the engine only
// reads them for the duration of a single call.
type Snapshot struct {
	Invoices           []domain.Invoice
	Expenses           domain.ExpenseBook
	DueCollections     []domain.DueCollection
	CompanyCollections []domain.CompanyCollection
	Loans              []domain.Loan
	Repayments         []domain.Repayment
	Shareholders       []domain.Shareholder
}

// expenseBookDateLayout is the key format of domain.ExpenseBook.
const expenseBookDateLayout = "2006-01-02"

// parseExpenseDate resolves an expense book key to a date. Malformed
// keys are unresolvable and their items are excluded from every period.
func parseExpenseDate(key string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(expenseBookDateLayout, key, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
