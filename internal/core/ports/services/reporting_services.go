package services

import (
	"context"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade produces period financial statements and profit
// distributions from a fresh ledger snapshot.
type ReportingSvcFacade interface {
	// PeriodStatement assembles one day/month/year statement for the
	// given ledger. distributed and inventoryValue are caller-supplied;
	// inventory valuation is never computed here.
	PeriodStatement(ctx context.Context, kind ledger.LedgerKind, pt ledger.PeriodType, ref time.Time, distributed, inventoryValue decimal.Decimal) (*ledger.Statement, error)

	// DistributeProfit allocates a manager-chosen amount across the
	// registered shareholders proportional to share count.
	DistributeProfit(ctx context.Context, amount decimal.Decimal) ([]domain.Shareholder, map[string]decimal.Decimal, error)
}
