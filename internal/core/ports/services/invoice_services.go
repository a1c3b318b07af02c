package services

import (
	"context"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
)

// InvoiceSvcFacade defines operations on invoices.
type InvoiceSvcFacade interface {
	// CreateInvoice persists a new invoice with a prefixed ID derived
	// from its kind (LAB-, CLN-, PHS-, PHP-).
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	ListInvoices(ctx context.Context, kind *domain.InvoiceKind, from, to time.Time) ([]domain.Invoice, error)

	// CancelInvoice voids an invoice so it contributes zero to every
	// bucket of every statement.
	CancelInvoice(ctx context.Context, invoiceID string, userID string) error
}
