package repositories

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
)

// GoalRepository defines persistence operations for savings goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	// ListGoals returns all goals ordered by creation time descending.
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, goalID string) error
}
