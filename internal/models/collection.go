package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueCollection is the database representation of a due recovery row.
type DueCollection struct {
	CollectionID    string          `json:"collectionID"`
	InvoiceID       string          `json:"invoiceID"`
	CollectionDate  time.Time       `json:"collectionDate"`
	AmountCollected decimal.Decimal `json:"amountCollected"`
	AuditFields
}

// CompanyCollection is the database representation of a company receipt row.
type CompanyCollection struct {
	CollectionID string          `json:"collectionID"`
	CompanyName  string          `json:"companyName"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	AuditFields
}
