package repositories

import (
	"context"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
)

// ShareholderRepository defines persistence operations for shareholders.
type ShareholderRepository interface {
	SaveShareholder(ctx context.Context, shareholder domain.Shareholder) error
	ListShareholders(ctx context.Context) ([]domain.Shareholder, error)
}
