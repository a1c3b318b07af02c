package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	snapshotRepo    repositories.SnapshotRepository
	shareholderRepo repositories.ShareholderRepository
}

// NewReportingService creates the reporting service. Every computation
// runs over a freshly fetched snapshot so it never reads a partially
// updated ledger.
func NewReportingService(snapshotRepo repositories.SnapshotRepository, shareholderRepo repositories.ShareholderRepository) portssvc.ReportingSvcFacade {
	return &reportingService{snapshotRepo: snapshotRepo, shareholderRepo: shareholderRepo}
}

// PeriodStatement assembles one day/month/year statement for a ledger.
func (s *reportingService) PeriodStatement(ctx context.Context, kind ledger.LedgerKind, pt ledger.PeriodType, ref time.Time, distributed, inventoryValue decimal.Decimal) (*ledger.Statement, error) {
	snap, err := s.snapshotRepo.GetLedgerSnapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger snapshot")
		return nil, fmt.Errorf("failed to fetch ledger snapshot: %w", err)
	}

	statement, err := ledger.ComposeSummary(snap, kind, pt, ref, distributed, inventoryValue)
	if err != nil {
		return nil, fmt.Errorf("failed to compose statement: %w", err)
	}

	s.LogInfo(ctx, "Statement composed",
		slog.String("ledger", string(kind)),
		slog.String("period_type", string(pt)),
		slog.String("net_balance", statement.NetBalance.String()),
	)
	return &statement, nil
}

// DistributeProfit allocates a manager-chosen amount across the
// registered shareholders proportional to share count.
func (s *reportingService) DistributeProfit(ctx context.Context, amount decimal.Decimal) ([]domain.Shareholder, map[string]decimal.Decimal, error) {
	if amount.IsNegative() {
		return nil, nil, fmt.Errorf("%w: distributable amount must not be negative", apperrors.ErrValidation)
	}

	shareholders, err := s.shareholderRepo.ListShareholders(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list shareholders: %w", err)
	}

	payouts := ledger.DistributeProfit(amount, shareholders)

	s.LogInfo(ctx, "Profit distributed",
		slog.String("amount", amount.String()),
		slog.Int("shareholders", len(shareholders)),
	)
	return shareholders, payouts, nil
}
