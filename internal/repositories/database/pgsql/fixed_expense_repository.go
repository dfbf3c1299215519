package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	"github.com/emersonvf/centavo/internal/models"
	"github.com/emersonvf/centavo/internal/utils/mapping"
)

const fixedExpenseColumns = `fixed_expense_id, name, amount, due_day, category, auto_pay, created_at, last_updated_at`

type PgxFixedExpenseRepository struct {
	BaseRepository
}

// newPgxFixedExpenseRepository creates a new repository for bill definitions.
func newPgxFixedExpenseRepository(pool *pgxpool.Pool) portsrepo.FixedExpenseRepository {
	return &PgxFixedExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FixedExpenseRepository = (*PgxFixedExpenseRepository)(nil)

func scanFixedExpense(row pgx.Row) (models.FixedExpense, error) {
	var m models.FixedExpense
	err := row.Scan(
		&m.FixedExpenseID,
		&m.Name,
		&m.Amount,
		&m.DueDay,
		&m.Category,
		&m.AutoPay,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveFixedExpense inserts a new recurring bill definition.
func (r *PgxFixedExpenseRepository) SaveFixedExpense(ctx context.Context, def domain.FixedExpense) error {
	m := mapping.ToModelFixedExpense(def)

	query := `
		INSERT INTO fixed_expenses (` + fixedExpenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FixedExpenseID,
		m.Name,
		m.Amount,
		m.DueDay,
		m.Category,
		m.AutoPay,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: fixed expense %s", apperrors.ErrDuplicate, m.FixedExpenseID)
		}
		return fmt.Errorf("failed to save fixed expense %s: %w", m.FixedExpenseID, err)
	}
	return nil
}

// FindFixedExpenseByID retrieves a bill definition by its ID.
func (r *PgxFixedExpenseRepository) FindFixedExpenseByID(ctx context.Context, fixedExpenseID string) (*domain.FixedExpense, error) {
	query := `
		SELECT ` + fixedExpenseColumns + `
		FROM fixed_expenses
		WHERE fixed_expense_id = $1;
	`
	m, err := scanFixedExpense(r.Pool.QueryRow(ctx, query, fixedExpenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fixed expense by ID %s: %w", fixedExpenseID, err)
	}

	d := mapping.ToDomainFixedExpense(m)
	return &d, nil
}

// ListFixedExpenses retrieves all bill definitions ordered by due day.
func (r *PgxFixedExpenseRepository) ListFixedExpenses(ctx context.Context) ([]domain.FixedExpense, error) {
	query := `
		SELECT ` + fixedExpenseColumns + `
		FROM fixed_expenses
		ORDER BY due_day, name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed expenses: %w", err)
	}
	defer rows.Close()

	defs := []domain.FixedExpense{}
	for rows.Next() {
		m, err := scanFixedExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed expense row: %w", err)
		}
		defs = append(defs, mapping.ToDomainFixedExpense(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating fixed expense rows: %w", rows.Err())
	}
	return defs, nil
}

// UpdateFixedExpense updates an existing bill definition.
func (r *PgxFixedExpenseRepository) UpdateFixedExpense(ctx context.Context, def domain.FixedExpense) error {
	m := mapping.ToModelFixedExpense(def)

	query := `
		UPDATE fixed_expenses
		SET name = $2, amount = $3, due_day = $4, category = $5, auto_pay = $6, last_updated_at = $7
		WHERE fixed_expense_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.FixedExpenseID,
		m.Name,
		m.Amount,
		m.DueDay,
		m.Category,
		m.AutoPay,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update fixed expense %s: %w", m.FixedExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFixedExpense removes a definition. Bills already generated from it
// keep their weak reference and are untouched.
func (r *PgxFixedExpenseRepository) DeleteFixedExpense(ctx context.Context, fixedExpenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM fixed_expenses WHERE fixed_expense_id = $1;`, fixedExpenseID)
	if err != nil {
		return fmt.Errorf("failed to delete fixed expense %s: %w", fixedExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
