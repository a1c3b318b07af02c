package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseItem is the database representation of one expense row.
// ExpenseDate is the calendar date bucket; Position preserves the
// recorded order within a date.
type ExpenseItem struct {
	ExpenseID   string          `json:"expenseID"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	BillAmount  decimal.Decimal `json:"billAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Position    int             `json:"position"`
	AuditFields
}
