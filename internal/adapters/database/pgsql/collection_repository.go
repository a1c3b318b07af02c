package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	"github.com/cliniccore/clinic_ledger_app/internal/models"
	"github.com/cliniccore/clinic_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolationCode = "23503"

type collectionRepository struct {
	pool *pgxpool.Pool
}

// NewCollectionRepository creates a new repository for due recoveries
// and company receipts.
func NewCollectionRepository(pool *pgxpool.Pool) repositories.CollectionRepository {
	return &collectionRepository{pool: pool}
}

// SaveDueCollection records a cash recovery against an invoice due.
func (r *collectionRepository) SaveDueCollection(ctx context.Context, collection domain.DueCollection) error {
	m := mapping.ToModelDueCollection(collection)
	query := `
		INSERT INTO due_collections (collection_id, invoice_id, collection_date, amount_collected, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CollectionID,
		m.InvoiceID,
		m.CollectionDate,
		m.AmountCollected,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			// Referenced invoice does not exist
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to save due collection %s: %w", collection.CollectionID, err)
	}
	return nil
}

// ListDueCollections returns all due recoveries ordered by date.
func (r *collectionRepository) ListDueCollections(ctx context.Context) ([]domain.DueCollection, error) {
	query := `
		SELECT collection_id, invoice_id, collection_date, amount_collected, created_at, created_by, last_updated_at, last_updated_by
		FROM due_collections
		ORDER BY collection_date, collection_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list due collections: %w", err)
	}
	defer rows.Close()

	var ms []models.DueCollection
	for rows.Next() {
		var m models.DueCollection
		if err := rows.Scan(
			&m.CollectionID,
			&m.InvoiceID,
			&m.CollectionDate,
			&m.AmountCollected,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan due collection row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due collection rows: %w", err)
	}
	return mapping.ToDomainDueCollectionSlice(ms), nil
}

// SaveCompanyCollection records a direct company receipt.
func (r *collectionRepository) SaveCompanyCollection(ctx context.Context, collection domain.CompanyCollection) error {
	m := mapping.ToModelCompanyCollection(collection)
	query := `
		INSERT INTO company_collections (collection_id, company_name, collection_date, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CollectionID,
		m.CompanyName,
		m.Date,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save company collection %s: %w", collection.CollectionID, err)
	}
	return nil
}

// ListCompanyCollections returns all company receipts ordered by date.
func (r *collectionRepository) ListCompanyCollections(ctx context.Context) ([]domain.CompanyCollection, error) {
	query := `
		SELECT collection_id, company_name, collection_date, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM company_collections
		ORDER BY collection_date, collection_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list company collections: %w", err)
	}
	defer rows.Close()

	var ms []models.CompanyCollection
	for rows.Next() {
		var m models.CompanyCollection
		if err := rows.Scan(
			&m.CollectionID,
			&m.CompanyName,
			&m.Date,
			&m.Amount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company collection row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company collection rows: %w", err)
	}
	return mapping.ToDomainCompanyCollectionSlice(ms), nil
}
