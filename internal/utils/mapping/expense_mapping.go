package mapping

import (
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/models"
)

// ToModelExpenseItem converts a domain ExpenseItem to a model row under
// the given date bucket.
func ToModelExpenseItem(d domain.ExpenseItem, date time.Time, position int) models.ExpenseItem {
	return models.ExpenseItem{
		ExpenseID:   d.ExpenseID,
		ExpenseDate: date,
		Category:    d.Category,
		SubCategory: d.SubCategory,
		BillAmount:  d.BillAmount,
		PaidAmount:  d.PaidAmount,
		Position:    position,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseItem converts a model expense row to a domain item.
// The date bucket lives in the ExpenseBook key, not on the item.
func ToDomainExpenseItem(m models.ExpenseItem) domain.ExpenseItem {
	return domain.ExpenseItem{
		ExpenseID:   m.ExpenseID,
		Category:    m.Category,
		SubCategory: m.SubCategory,
		BillAmount:  m.BillAmount,
		PaidAmount:  m.PaidAmount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseBook groups ordered expense rows into the date-keyed
// book. Rows must arrive sorted by date then position.
func ToDomainExpenseBook(ms []models.ExpenseItem) domain.ExpenseBook {
	book := make(domain.ExpenseBook)
	for _, m := range ms {
		key := m.ExpenseDate.Format("2006-01-02")
		book[key] = append(book[key], ToDomainExpenseItem(m))
	}
	return book
}
