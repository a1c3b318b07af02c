package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is one period's assembled financial statement for a ledger.
type Statement struct {
	Ledger     LedgerKind `json:"ledger"`
	PeriodType PeriodType `json:"periodType"`
	Period     Period     `json:"period"`

	CarryForward decimal.Decimal                `json:"carryForward"`
	Collection   map[CategoryTag]decimal.Decimal `json:"collection"`
	DueRecovery  decimal.Decimal                `json:"dueRecovery"`
	// TotalCollection includes the carry-forward as an additional
	// collection line on top of the bucket sums and due recovery.
	TotalCollection decimal.Decimal `json:"totalCollection"`

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

// ComposeSummary assembles the full period statement: aggregation plus
// carry-forward, loan figures, an optional distributed profit and the
// net worth line. Inventory valuation is supplied by the caller; it is
// not computed here.
func ComposeSummary(snap Snapshot, kind LedgerKind, pt PeriodType, ref time.Time, distributed, inventoryValue decimal.Decimal) (Statement, error) {
	period, err := NewPeriod(pt, ref)
	if err != nil {
		return Statement{}, err
	}

	buckets := Aggregate(snap, kind, period)
	carry := CarryForward(snap, kind, period.Start)
	outstanding := LoanOutstanding(snap.Loans, snap.Repayments)

	totalCollection := carry.Add(buckets.TotalCollection())
	totalExpense := buckets.TotalExpense()
	netBalance := totalCollection.Sub(totalExpense)
	distributed = amountOrZero(distributed)
	closing := netBalance.Sub(distributed)

	return Statement{
		Ledger:            kind,
		PeriodType:        pt,
		Period:            period,
		CarryForward:      carry,
		Collection:        buckets.Collection,
		DueRecovery:       buckets.DueRecovery,
		TotalCollection:   totalCollection,
		Expense:           buckets.Expense,
		LoanRepayment:     buckets.LoanRepayment,
		TotalExpense:      totalExpense,
		NetBalance:        netBalance,
		DistributedProfit: distributed,
		ClosingBalance:    closing,
		LoanOutstanding:   outstanding,
		InventoryValue:    amountOrZero(inventoryValue),
		NetWorth:          closing.Add(amountOrZero(inventoryValue)).Sub(outstanding),
	}, nil
}
