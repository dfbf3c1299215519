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

const goalColumns = `goal_id, name, target_amount, current_amount, target_date, created_at, last_updated_at`

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for savings goals.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.Name,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.TargetDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.Name,
		m.TargetAmount,
		m.CurrentAmount,
		m.TargetDate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: goal %s", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE goal_id = $1;
	`
	m, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	d := mapping.ToDomainGoal(m)
	return &d, nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, mapping.ToDomainGoal(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rows.Err())
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		UPDATE goals
		SET name = $2, target_amount = $3, current_amount = $4, target_date = $5, last_updated_at = $6
		WHERE goal_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.Name,
		m.TargetAmount,
		m.CurrentAmount,
		m.TargetDate,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", m.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
