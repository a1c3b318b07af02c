package repositories

import (
	"context"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices and
// their line items.
type InvoiceRepository interface {
	// SaveInvoice persists an invoice together with its line items.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// FindInvoiceByID retrieves one invoice with its line items.
	// Returns apperrors.ErrNotFound when no such invoice exists.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices returns invoices of the given kind (all kinds when
	// nil) whose date falls in [from, to).
	ListInvoices(ctx context.Context, kind *domain.InvoiceKind, from, to time.Time) ([]domain.Invoice, error)

	// UpdateInvoiceStatus transitions an invoice's status.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error
}
