package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	"github.com/cliniccore/clinic_ledger_app/internal/models"
	"github.com/cliniccore/clinic_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new repository for invoice data.
func NewInvoiceRepository(pool *pgxpool.Pool) repositories.InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

// SaveInvoice inserts an invoice and its line items in one transaction.
func (r *invoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for invoice %s: %w", invoice.InvoiceID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	m := mapping.ToModelInvoice(invoice)

	invoiceQuery := `
		INSERT INTO invoices (invoice_id, kind, invoice_date, total, discount, paid_amount, due_amount, status, commission_paid, special_commission, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		m.InvoiceID,
		m.Kind,
		m.InvoiceDate,
		m.Total,
		m.Discount,
		m.PaidAmount,
		m.DueAmount,
		m.Status,
		m.CommissionPaid,
		m.SpecialCommission,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}

	lineQuery := `
		INSERT INTO invoice_line_items (line_item_id, invoice_id, name, service_group, price, quantity, pass_through_fee, is_clinic_fund, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for i, item := range invoice.Items {
		lm := mapping.ToModelLineItem(item, i)
		_, err = tx.Exec(ctx, lineQuery,
			lm.LineItemID,
			m.InvoiceID, // Line items always belong to the enclosing invoice
			lm.Name,
			lm.ServiceGroup,
			lm.Price,
			lm.Quantity,
			lm.PassThroughFee,
			lm.IsClinicFund,
			lm.Position,
		)
		if err != nil {
			return fmt.Errorf("failed to save line item %d of invoice %s: %w", i, invoice.InvoiceID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice with its line items.
func (r *invoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, kind, invoice_date, total, discount, paid_amount, due_amount, status, commission_paid, special_commission, created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE invoice_id = $1;
	`
	var m models.Invoice
	err := r.pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.Kind,
		&m.InvoiceDate,
		&m.Total,
		&m.Discount,
		&m.PaidAmount,
		&m.DueAmount,
		&m.Status,
		&m.CommissionPaid,
		&m.SpecialCommission,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	lines, err := r.findLineItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	inv := mapping.ToDomainInvoice(m, lines)
	return &inv, nil
}

func (r *invoiceRepository) findLineItems(ctx context.Context, invoiceID string) ([]models.InvoiceLineItem, error) {
	query := `
		SELECT line_item_id, invoice_id, name, service_group, price, quantity, pass_through_fee, is_clinic_fund, position
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY position;
	`
	rows, err := r.pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	var lines []models.InvoiceLineItem
	for rows.Next() {
		var lm models.InvoiceLineItem
		if err := rows.Scan(
			&lm.LineItemID,
			&lm.InvoiceID,
			&lm.Name,
			&lm.ServiceGroup,
			&lm.Price,
			&lm.Quantity,
			&lm.PassThroughFee,
			&lm.IsClinicFund,
			&lm.Position,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line item row: %w", err)
		}
		lines = append(lines, lm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item rows: %w", err)
	}
	return lines, nil
}

// ListInvoices returns invoices of the given kind (all kinds when nil)
// whose date falls in [from, to). Zero bounds leave that side open;
// invoices without a date only appear in fully unbounded listings.
func (r *invoiceRepository) ListInvoices(ctx context.Context, kind *domain.InvoiceKind, from, to time.Time) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, kind, invoice_date, total, discount, paid_amount, due_amount, status, commission_paid, special_commission, created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE 1=1
	`
	args := []any{}
	if kind != nil {
		args = append(args, string(*kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND invoice_date >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND invoice_date < $%d", len(args))
	}
	query += " ORDER BY invoice_id;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.Kind,
			&m.InvoiceDate,
			&m.Total,
			&m.Discount,
			&m.PaidAmount,
			&m.DueAmount,
			&m.Status,
			&m.CommissionPaid,
			&m.SpecialCommission,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		lines, err := r.findLineItems(ctx, m.InvoiceID)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m, lines))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

// UpdateInvoiceStatus transitions an invoice's status.
func (r *invoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, invoiceID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
