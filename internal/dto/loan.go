package dto

import (
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the payload for recording a new loan.
type CreateLoanRequest struct {
	Source string          `json:"source" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Date   string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// RecordRepaymentRequest defines the payload for a loan installment.
type RecordRepaymentRequest struct {
	LoanID string          `json:"loanID" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Date   string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID    string          `json:"loanID"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// LoanOutstandingResponse is the loan ledger position.
type LoanOutstandingResponse struct {
	TotalBorrowed decimal.Decimal `json:"totalBorrowed"`
	TotalRepaid   decimal.Decimal `json:"totalRepaid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// ToLoanResponse converts a domain.Loan to its DTO.
func ToLoanResponse(loan *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:    loan.LoanID,
		Source:    loan.Source,
		Amount:    loan.Amount,
		Date:      loan.Date.Format("2006-01-02"),
		CreatedAt: loan.CreatedAt,
	}
}
