package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the database representation of a loan row.
type Loan struct {
	LoanID string          `json:"loanID"`
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	AuditFields
}

// Repayment is the database representation of a loan installment row.
type Repayment struct {
	RepaymentID string          `json:"repaymentID"`
	LoanID      string          `json:"loanID"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	AuditFields
}
