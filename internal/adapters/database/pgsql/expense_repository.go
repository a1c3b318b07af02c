package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ports/repositories"
	"github.com/cliniccore/clinic_ledger_app/internal/models"
	"github.com/cliniccore/clinic_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type expenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new repository for the expense book.
func NewExpenseRepository(pool *pgxpool.Pool) repositories.ExpenseRepository {
	return &expenseRepository{pool: pool}
}

// SaveExpenseItems appends items under a calendar date, continuing the
// position sequence already stored for that date.
func (r *expenseRepository) SaveExpenseItems(ctx context.Context, date string, items []domain.ExpenseItem) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid expense date %q: %w", date, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for expenses on %s: %w", date, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var next int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM expense_items WHERE expense_date = $1;`,
		day,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to read expense positions for %s: %w", date, err)
	}

	query := `
		INSERT INTO expense_items (expense_id, expense_date, category, sub_category, bill_amount, paid_amount, position, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for i, item := range items {
		m := mapping.ToModelExpenseItem(item, day, next+i)
		_, err = tx.Exec(ctx, query,
			m.ExpenseID,
			m.ExpenseDate,
			m.Category,
			m.SubCategory,
			m.BillAmount,
			m.PaidAmount,
			m.Position,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save expense item %d on %s: %w", i, date, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit expenses on %s: %w", date, err)
	}
	return nil
}

// GetExpenseBook returns the date-keyed expense book restricted to
// dates in [from, to). Zero bounds leave that side open.
func (r *expenseRepository) GetExpenseBook(ctx context.Context, from, to time.Time) (domain.ExpenseBook, error) {
	query := `
		SELECT expense_id, expense_date, category, sub_category, bill_amount, paid_amount, position, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_items
		WHERE 1=1
	`
	args := []any{}
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND expense_date >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND expense_date < $%d", len(args))
	}
	query += " ORDER BY expense_date, position;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense book: %w", err)
	}
	defer rows.Close()

	var ms []models.ExpenseItem
	for rows.Next() {
		var m models.ExpenseItem
		if err := rows.Scan(
			&m.ExpenseID,
			&m.ExpenseDate,
			&m.Category,
			&m.SubCategory,
			&m.BillAmount,
			&m.PaidAmount,
			&m.Position,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return mapping.ToDomainExpenseBook(ms), nil
}
