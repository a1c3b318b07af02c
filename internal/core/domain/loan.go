package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a borrowed amount recorded outside the invoice flow.
type Loan struct {
	LoanID string          `json:"loanID"`
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	AuditFields
}

// Repayment is a cash installment against a loan.
type Repayment struct {
	RepaymentID string          `json:"repaymentID"`
	LoanID      string          `json:"loanID"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	AuditFields
}
