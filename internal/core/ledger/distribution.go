package ledger

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalShares sums the share counts of all shareholders.
func TotalShares(shareholders []domain.Shareholder) decimal.Decimal {
	total := decimal.Zero
	for _, sh := range shareholders {
		total = total.Add(amountOrZero(sh.Shares))
	}
	return total
}

// PerShareValue is amount divided by the total share count, or zero when
// no shares exist. No division-by-zero fault ever propagates.
func PerShareValue(amount decimal.Decimal, shareholders []domain.Shareholder) decimal.Decimal {
	total := TotalShares(shareholders)
	if !total.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(total)
}

// DistributeProfit allocates a distributable amount across shareholders
// proportional to share count, keyed by shareholder ID. The allocation
// is stateless: callers must subtract the amount from the net balance
// themselves to obtain the period's closing balance.
func DistributeProfit(amount decimal.Decimal, shareholders []domain.Shareholder) map[string]decimal.Decimal {
	payouts := make(map[string]decimal.Decimal, len(shareholders))
	perShare := PerShareValue(amount, shareholders)
	for _, sh := range shareholders {
		payouts[sh.ShareholderID] = amountOrZero(sh.Shares).Mul(perShare)
	}
	return payouts
}
