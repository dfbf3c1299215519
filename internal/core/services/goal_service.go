package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
)

// goalService provides savings goal CRUD.
type goalService struct {
	goalRepo portsrepo.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo portsrepo.GoalRepository) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	now := time.Now().UTC()

	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	return s.goalRepo.FindGoalByID(ctx, goalID)
}

func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx)
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	goal.LastUpdatedAt = time.Now().UTC()

	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		return nil, fmt.Errorf("failed to update goal %s: %w", goalID, err)
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string) error {
	return s.goalRepo.DeleteGoal(ctx, goalID)
}
