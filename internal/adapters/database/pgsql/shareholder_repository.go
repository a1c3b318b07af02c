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

type shareholderRepository struct {
	pool *pgxpool.Pool
}

// NewShareholderRepository creates a new repository for shareholder data.
func NewShareholderRepository(pool *pgxpool.Pool) repositories.ShareholderRepository {
	return &shareholderRepository{pool: pool}
}

// SaveShareholder inserts a new shareholder.
func (r *shareholderRepository) SaveShareholder(ctx context.Context, shareholder domain.Shareholder) error {
	m := mapping.ToModelShareholder(shareholder)
	query := `
		INSERT INTO shareholders (shareholder_id, name, shares, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ShareholderID,
		m.Name,
		m.Shares,
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
		return fmt.Errorf("failed to save shareholder %s: %w", shareholder.ShareholderID, err)
	}
	return nil
}

// ListShareholders returns all shareholders ordered by name.
func (r *shareholderRepository) ListShareholders(ctx context.Context) ([]domain.Shareholder, error) {
	query := `
		SELECT shareholder_id, name, shares, created_at, created_by, last_updated_at, last_updated_by
		FROM shareholders
		ORDER BY name, shareholder_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shareholders: %w", err)
	}
	defer rows.Close()

	var ms []models.Shareholder
	for rows.Next() {
		var m models.Shareholder
		if err := rows.Scan(
			&m.ShareholderID,
			&m.Name,
			&m.Shares,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shareholder row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shareholder rows: %w", err)
	}
	return mapping.ToDomainShareholderSlice(ms), nil
}
