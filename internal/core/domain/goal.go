package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings goal tracked toward a target amount.
type Goal struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	AuditFields
}

// Validate checks the structural invariants of a goal.
func (g Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("name is required")
	}
	if g.TargetAmount.IsNegative() {
		return fmt.Errorf("target amount must not be negative")
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("current amount must not be negative")
	}
	return nil
}

// Progress returns the completion ratio in [0, 1], capped at 1.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	ratio := g.CurrentAmount.Div(g.TargetAmount)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return ratio
}
