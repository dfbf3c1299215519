package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Investment is a position the user holds outside the day-to-day cash flow.
type Investment struct {
	InvestmentID string           `json:"investmentID"`
	Name         string           `json:"name"`
	Type         string           `json:"type"` // free text, e.g. "CDB", "Stocks"
	Amount       decimal.Decimal  `json:"amount"`
	Yield        *decimal.Decimal `json:"yield,omitempty"` // annual percentage, optional
	AuditFields
}

// Validate checks the structural invariants of an investment.
func (i Investment) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}
