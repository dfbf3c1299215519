package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the DB representation of a savings goal.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	TargetDate    *time.Time      `db:"target_date"`
	AuditFields
}
