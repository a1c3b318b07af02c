package services

import (
	"context"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
)

// CollectionSvcFacade defines operations for due recoveries and direct
// company receipts.
type CollectionSvcFacade interface {
	RecordDueCollection(ctx context.Context, req dto.RecordDueCollectionRequest, creatorUserID string) (*domain.DueCollection, error)
	RecordCompanyCollection(ctx context.Context, req dto.RecordCompanyCollectionRequest, creatorUserID string) (*domain.CompanyCollection, error)
}
