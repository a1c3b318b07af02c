package ledger_test

import (
	"testing"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDistributeProfit(t *testing.T) {
	// Spec example: shares 4.5 + 2 + 1 = 7.5, D = 7500, per-share 1000.
	shareholders := []domain.Shareholder{
		{ShareholderID: "sh-1", Name: "A", Shares: dec("4.5")},
		{ShareholderID: "sh-2", Name: "B", Shares: dec("2")},
		{ShareholderID: "sh-3", Name: "C", Shares: dec("1")},
	}

	payouts := ledger.DistributeProfit(dec("7500"), shareholders)

	assertDecimal(t, "4500", payouts["sh-1"])
	assertDecimal(t, "2000", payouts["sh-2"])
	assertDecimal(t, "1000", payouts["sh-3"])

	sum := decimal.Zero
	for _, p := range payouts {
		sum = sum.Add(p)
	}
	assertDecimal(t, "7500", sum)
}

func TestDistributeProfit_ZeroShares(t *testing.T) {
	shareholders := []domain.Shareholder{
		{ShareholderID: "sh-1", Shares: decimal.Zero},
		{ShareholderID: "sh-2", Shares: decimal.Zero},
	}

	payouts := ledger.DistributeProfit(dec("7500"), shareholders)

	// Per-share value is zero when no shares exist; nothing faults.
	for id, p := range payouts {
		assert.True(t, p.IsZero(), id)
	}
}

func TestDistributeProfit_NoShareholders(t *testing.T) {
	payouts := ledger.DistributeProfit(dec("100"), nil)
	assert.Empty(t, payouts)
}

func TestPerShareValue(t *testing.T) {
	shareholders := []domain.Shareholder{
		{ShareholderID: "sh-1", Shares: dec("4.5")},
		{ShareholderID: "sh-2", Shares: dec("2")},
		{ShareholderID: "sh-3", Shares: dec("1")},
	}
	assertDecimal(t, "1000", ledger.PerShareValue(dec("7500"), shareholders))
	assertDecimal(t, "0", ledger.PerShareValue(dec("7500"), nil))
}
