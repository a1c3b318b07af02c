package services

import (
	"context"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
)

// ShareholderSvcFacade defines operations on shareholders.
type ShareholderSvcFacade interface {
	CreateShareholder(ctx context.Context, req dto.CreateShareholderRequest, creatorUserID string) (*domain.Shareholder, error)
	ListShareholders(ctx context.Context) ([]domain.Shareholder, error)
}
