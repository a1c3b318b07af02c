package repositories

import (
	"context"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
)

// CollectionRepository defines persistence operations for due
// recoveries and direct company receipts.
type CollectionRepository interface {
	SaveDueCollection(ctx context.Context, collection domain.DueCollection) error
	ListDueCollections(ctx context.Context) ([]domain.DueCollection, error)

	SaveCompanyCollection(ctx context.Context, collection domain.CompanyCollection) error
	ListCompanyCollections(ctx context.Context) ([]domain.CompanyCollection, error)
}
