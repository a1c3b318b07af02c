package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type shareholderService struct {
	BaseService
	shareholderRepo repositories.ShareholderRepository
}

// NewShareholderService creates the shareholder service.
func NewShareholderService(shareholderRepo repositories.ShareholderRepository) portssvc.ShareholderSvcFacade {
	return &shareholderService{shareholderRepo: shareholderRepo}
}

// CreateShareholder registers a shareholder. Shares may be fractional
// but must be positive.
func (s *shareholderService) CreateShareholder(ctx context.Context, req dto.CreateShareholderRequest, creatorUserID string) (*domain.Shareholder, error) {
	if !req.Shares.IsPositive() {
		return nil, fmt.Errorf("%w: shares must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	shareholder := domain.Shareholder{
		ShareholderID: uuid.NewString(),
		Name:          req.Name,
		Shares:        req.Shares,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.shareholderRepo.SaveShareholder(ctx, shareholder); err != nil {
		s.LogError(ctx, err, "Failed to save shareholder", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create shareholder: %w", err)
	}

	s.LogInfo(ctx, "Shareholder registered", slog.String("shareholder_id", shareholder.ShareholderID))
	return &shareholder, nil
}

// ListShareholders returns all registered shareholders.
func (s *shareholderService) ListShareholders(ctx context.Context) ([]domain.Shareholder, error) {
	shareholders, err := s.shareholderRepo.ListShareholders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shareholders: %w", err)
	}
	if shareholders == nil {
		return []domain.Shareholder{}, nil
	}
	return shareholders, nil
}
