package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FixedExpense is a recurring monthly bill definition. The materializer
// produces at most one PENDING bill transaction from each definition per
// calendar month.
type FixedExpense struct {
	FixedExpenseID string          `json:"fixedExpenseID"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"` // always >= 0
	DueDay         int             `json:"dueDay"` // 1..31, clamped to the month's last day
	Category       string          `json:"category"`
	AutoPay        bool            `json:"autoPay"` // informational only
	AuditFields
}

// Validate checks the structural invariants of a fixed expense definition.
func (f FixedExpense) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if f.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if f.DueDay < 1 || f.DueDay > 31 {
		return fmt.Errorf("due day must be between 1 and 31, got %d", f.DueDay)
	}
	return nil
}
