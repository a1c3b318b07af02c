package dto

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// StatementResponse is one period's financial statement.
type StatementResponse struct {
	Ledger      string `json:"ledger"`
	PeriodType  string `json:"periodType"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`

	CarryForward    decimal.Decimal            `json:"carryForward"`
	Collection      map[string]decimal.Decimal `json:"collection"`
	DueRecovery     decimal.Decimal            `json:"dueRecovery"`
	TotalCollection decimal.Decimal            `json:"totalCollection"`

	Expense       map[string]decimal.Decimal `json:"expense"`
	LoanRepayment decimal.Decimal            `json:"loanRepayment"`
	TotalExpense  decimal.Decimal            `json:"totalExpense"`

	NetBalance        decimal.Decimal `json:"netBalance"`
	DistributedProfit decimal.Decimal `json:"distributedProfit"`
	ClosingBalance    decimal.Decimal `json:"closingBalance"`

	LoanOutstanding decimal.Decimal `json:"loanOutstanding"`
	InventoryValue  decimal.Decimal `json:"inventoryValue"`
	NetWorth        decimal.Decimal `json:"netWorth"`
}

// ToStatementResponse converts an engine statement to its DTO.
func ToStatementResponse(stmt *ledger.Statement) StatementResponse {
	collection := make(map[string]decimal.Decimal, len(stmt.Collection))
	for tag, amount := range stmt.Collection {
		collection[string(tag)] = amount
	}

	return StatementResponse{
		Ledger:            string(stmt.Ledger),
		PeriodType:        string(stmt.PeriodType),
		PeriodStart:       stmt.Period.Start.Format("2006-01-02"),
		PeriodEnd:         stmt.Period.End.Format("2006-01-02"),
		CarryForward:      stmt.CarryForward,
		Collection:        collection,
		DueRecovery:       stmt.DueRecovery,
		TotalCollection:   stmt.TotalCollection,
		Expense:           stmt.Expense,
		LoanRepayment:     stmt.LoanRepayment,
		TotalExpense:      stmt.TotalExpense,
		NetBalance:        stmt.NetBalance,
		DistributedProfit: stmt.DistributedProfit,
		ClosingBalance:    stmt.ClosingBalance,
		LoanOutstanding:   stmt.LoanOutstanding,
		InventoryValue:    stmt.InventoryValue,
		NetWorth:          stmt.NetWorth,
	}
}

// DistributeProfitRequest defines the payload for a profit distribution.
type DistributeProfitRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dpositive"`
}

// ShareholderPayoutResponse is one shareholder's allocation.
type ShareholderPayoutResponse struct {
	ShareholderID string          `json:"shareholderID"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"`
	Payout        decimal.Decimal `json:"payout"`
}

// DistributionResponse is the result of a profit distribution.
type DistributionResponse struct {
	Amount        decimal.Decimal             `json:"amount"`
	TotalShares   decimal.Decimal             `json:"totalShares"`
	PerShareValue decimal.Decimal             `json:"perShareValue"`
	Payouts       []ShareholderPayoutResponse `json:"payouts"`
}

// ToDistributionResponse assembles the payout listing in shareholder
// order so the response is stable across calls.
func ToDistributionResponse(amount decimal.Decimal, shareholders []domain.Shareholder, payouts map[string]decimal.Decimal) DistributionResponse {
	rows := make([]ShareholderPayoutResponse, len(shareholders))
	for i, sh := range shareholders {
		rows[i] = ShareholderPayoutResponse{
			ShareholderID: sh.ShareholderID,
			Name:          sh.Name,
			Shares:        sh.Shares,
			Payout:        payouts[sh.ShareholderID],
		}
	}
	return DistributionResponse{
		Amount:        amount,
		TotalShares:   ledger.TotalShares(shareholders),
		PerShareValue: ledger.PerShareValue(amount, shareholders),
		Payouts:       rows,
	}
}
