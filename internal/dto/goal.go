package dto

import (
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name          string          `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal `json:"targetAmount" binding:"required"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *time.Time      `json:"targetDate"`
}

// UpdateGoalRequest defines the fields an update may change.
type UpdateGoalRequest struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	TargetDate    *time.Time       `json:"targetDate"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	Progress      decimal.Decimal `json:"progress"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToGoalResponse converts a domain.Goal to its response DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Progress:      g.Progress(),
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// ToListGoalResponse converts a slice of goals.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
