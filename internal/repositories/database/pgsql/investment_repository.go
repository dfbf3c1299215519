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

const investmentColumns = `investment_id, name, type, amount, yield, created_at, last_updated_at`

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for investments.
func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepository = (*PgxInvestmentRepository)(nil)

func scanInvestment(row pgx.Row) (models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.Name,
		&m.Type,
		&m.Amount,
		&m.Yield,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, inv domain.Investment) error {
	m := mapping.ToModelInvestment(inv)

	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvestmentID,
		m.Name,
		m.Type,
		m.Amount,
		m.Yield,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: investment %s", apperrors.ErrDuplicate, m.InvestmentID)
		}
		return fmt.Errorf("failed to save investment %s: %w", m.InvestmentID, err)
	}
	return nil
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE investment_id = $1;
	`
	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment by ID %s: %w", investmentID, err)
	}

	d := mapping.ToDomainInvestment(m)
	return &d, nil
}

func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	invs := []domain.Investment{}
	for rows.Next() {
		m, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		invs = append(invs, mapping.ToDomainInvestment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", rows.Err())
	}
	return invs, nil
}

func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	m := mapping.ToModelInvestment(inv)

	query := `
		UPDATE investments
		SET name = $2, type = $3, amount = $4, yield = $5, last_updated_at = $6
		WHERE investment_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.InvestmentID,
		m.Name,
		m.Type,
		m.Amount,
		m.Yield,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment %s: %w", m.InvestmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, investmentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM investments WHERE investment_id = $1;`, investmentID)
	if err != nil {
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
