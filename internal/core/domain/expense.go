package domain

import "github.com/shopspring/decimal"

// ExpenseItem is a cash expense recorded under a calendar date.
// One date maps to an ordered list of items; the date itself is the key
// of the ExpenseBook map, so the item only carries the amounts.
type ExpenseItem struct {
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`    // Free-form label, normalized by the classifier
	SubCategory string          `json:"subCategory"` // e.g. employee name for salary categories
	BillAmount  decimal.Decimal `json:"billAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	AuditFields
}

// ExpenseBook maps an ISO calendar date (2006-01-02) to the ordered list
// of expense items recorded on that date.
type ExpenseBook map[string][]ExpenseItem
