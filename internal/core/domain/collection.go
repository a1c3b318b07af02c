package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueCollection is a later cash recovery against an earlier invoice's
// due balance. The invoice ID prefix decides which ledger it belongs to.
type DueCollection struct {
	CollectionID    string          `json:"collectionID"`
	InvoiceID       string          `json:"invoiceID"`
	CollectionDate  time.Time       `json:"collectionDate"`
	AmountCollected decimal.Decimal `json:"amountCollected"`
	AuditFields
}

// CompanyCollection is a direct cash receipt from an external company.
type CompanyCollection struct {
	CollectionID string          `json:"collectionID"`
	CompanyName  string          `json:"companyName"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	AuditFields
}
