package ledger

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanOutstanding is total borrowed minus total repaid over the entire
// loan history. Over-repayment is left visible; no clamp is applied.
func LoanOutstanding(loans []domain.Loan, repayments []domain.Repayment) decimal.Decimal {
	outstanding := decimal.Zero
	for _, loan := range loans {
		outstanding = outstanding.Add(amountOrZero(loan.Amount))
	}
	for _, rep := range repayments {
		outstanding = outstanding.Sub(amountOrZero(rep.Amount))
	}
	return outstanding
}

// PeriodRepayments sums the installments whose date falls in-period.
// This is the "this period's installment expense" figure; outstanding
// itself is always computed over full history.
func PeriodRepayments(repayments []domain.Repayment, p Period) decimal.Decimal {
	total := decimal.Zero
	for _, rep := range repayments {
		if !p.Contains(rep.Date) {
			continue
		}
		total = total.Add(amountOrZero(rep.Amount))
	}
	return total
}
