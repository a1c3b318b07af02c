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

// invoiceIDPrefixes maps an invoice kind to its ID prefix. The prefix is
// what later routes a due recovery back to the right ledger.
var invoiceIDPrefixes = map[domain.InvoiceKind]string{
	domain.KindLab:              "LAB-",
	domain.KindIndoorClinic:     "CLN-",
	domain.KindPharmacySale:     "PHS-",
	domain.KindPharmacyPurchase: "PHP-",
}

type invoiceService struct {
	BaseService
	invoiceRepo repositories.InvoiceRepository
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(invoiceRepo repositories.InvoiceRepository) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

// CreateInvoice persists a new invoice with a kind-prefixed ID and a
// due amount derived from total, discount and paid amount.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	prefix, ok := invoiceIDPrefixes[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, req.Kind)
	}
	if req.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total must not be negative", apperrors.ErrValidation)
	}

	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid invoice date %q", apperrors.ErrValidation, req.InvoiceDate)
	}

	invoiceID := prefix + uuid.NewString()
	now := time.Now().UTC()

	items := make([]domain.InvoiceLineItem, len(req.Items))
	for i, line := range req.Items {
		items[i] = domain.InvoiceLineItem{
			LineItemID:     uuid.NewString(),
			InvoiceID:      invoiceID,
			Name:           line.Name,
			ServiceGroup:   line.ServiceGroup,
			Price:          line.Price,
			Quantity:       line.Quantity,
			PassThroughFee: line.PassThroughFee,
			IsClinicFund:   line.IsClinicFund,
		}
	}

	due := req.Total.Sub(req.Discount).Sub(req.PaidAmount)
	status := domain.StatusPaid
	if due.IsPositive() {
		status = domain.StatusDue
	}

	invoice := domain.Invoice{
		InvoiceID:         invoiceID,
		Kind:              req.Kind,
		InvoiceDate:       invoiceDate,
		Items:             items,
		Total:             req.Total,
		Discount:          req.Discount,
		PaidAmount:        req.PaidAmount,
		DueAmount:         due,
		Status:            status,
		CommissionPaid:    req.CommissionPaid,
		SpecialCommission: req.SpecialCommission,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoiceID), slog.String("kind", string(req.Kind)))
	return &invoice, nil
}

// GetInvoiceByID retrieves one invoice with its line items.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

// ListInvoices returns invoices of the given kind in [from, to).
func (s *invoiceService) ListInvoices(ctx context.Context, kind *domain.InvoiceKind, from, to time.Time) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, kind, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

// CancelInvoice voids an invoice. A voided invoice contributes zero to
// every bucket of every statement from then on.
func (s *invoiceService) CancelInvoice(ctx context.Context, invoiceID string, userID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to load invoice %s for cancellation: %w", invoiceID, err)
	}
	if invoice.IsVoided() {
		return fmt.Errorf("%w: invoice %s is already voided", apperrors.ErrValidation, invoiceID)
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.StatusCancelled, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to cancel invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to cancel invoice %s: %w", invoiceID, err)
	}

	s.LogInfo(ctx, "Invoice cancelled", slog.String("invoice_id", invoiceID))
	return nil
}
