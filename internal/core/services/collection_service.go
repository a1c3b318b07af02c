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

type collectionService struct {
	BaseService
	collectionRepo repositories.CollectionRepository
	invoiceRepo    repositories.InvoiceRepository
}

// NewCollectionService creates the collection service.
func NewCollectionService(collectionRepo repositories.CollectionRepository, invoiceRepo repositories.InvoiceRepository) portssvc.CollectionSvcFacade {
	return &collectionService{collectionRepo: collectionRepo, invoiceRepo: invoiceRepo}
}

// RecordDueCollection records a cash recovery against an invoice due.
// The recovery never exceeds what is still owed on the invoice.
func (s *collectionService) RecordDueCollection(ctx context.Context, req dto.RecordDueCollectionRequest, creatorUserID string) (*domain.DueCollection, error) {
	if !req.AmountCollected.IsPositive() {
		return nil, fmt.Errorf("%w: collected amount must be positive", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.CollectionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid collection date %q", apperrors.ErrValidation, req.CollectionDate)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice %s for due collection: %w", req.InvoiceID, err)
	}
	if invoice.IsVoided() {
		return nil, fmt.Errorf("%w: invoice %s is voided", apperrors.ErrValidation, req.InvoiceID)
	}
	if req.AmountCollected.GreaterThan(invoice.DueAmount) {
		return nil, fmt.Errorf("%w: collected amount exceeds due of invoice %s", apperrors.ErrValidation, req.InvoiceID)
	}

	now := time.Now().UTC()
	collection := domain.DueCollection{
		CollectionID:    uuid.NewString(),
		InvoiceID:       req.InvoiceID,
		CollectionDate:  date,
		AmountCollected: req.AmountCollected,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.collectionRepo.SaveDueCollection(ctx, collection); err != nil {
		s.LogError(ctx, err, "Failed to save due collection", slog.String("invoice_id", req.InvoiceID))
		return nil, fmt.Errorf("failed to record due collection: %w", err)
	}

	s.LogInfo(ctx, "Due collection recorded", slog.String("invoice_id", req.InvoiceID))
	return &collection, nil
}

// RecordCompanyCollection records a direct cash receipt from a company.
func (s *collectionService) RecordCompanyCollection(ctx context.Context, req dto.RecordCompanyCollectionRequest, creatorUserID string) (*domain.CompanyCollection, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid collection date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now().UTC()
	collection := domain.CompanyCollection{
		CollectionID: uuid.NewString(),
		CompanyName:  req.CompanyName,
		Date:         date,
		Amount:       req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.collectionRepo.SaveCompanyCollection(ctx, collection); err != nil {
		s.LogError(ctx, err, "Failed to save company collection", slog.String("company", req.CompanyName))
		return nil, fmt.Errorf("failed to record company collection: %w", err)
	}

	s.LogInfo(ctx, "Company collection recorded", slog.String("company", req.CompanyName))
	return &collection, nil
}
