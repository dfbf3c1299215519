package services

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/dto"
)

// GoalSvcFacade exposes savings goal operations.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error
}
