package dto

import (
	"github.com/shopspring/decimal"
)

// RecordDueCollectionRequest records a cash recovery against an earlier
// invoice's due balance. The invoice ID prefix (LAB-/CLN-) decides which
// ledger the recovery belongs to.
type RecordDueCollectionRequest struct {
	InvoiceID       string          `json:"invoiceID" binding:"required"`
	CollectionDate  string          `json:"collectionDate" binding:"required,datetime=2006-01-02"`
	AmountCollected decimal.Decimal `json:"amountCollected" binding:"required,dpositive"`
}

// RecordCompanyCollectionRequest records a direct cash receipt from an
// external company.
type RecordCompanyCollectionRequest struct {
	CompanyName string          `json:"companyName" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dpositive"`
}
