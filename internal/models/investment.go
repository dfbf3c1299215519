package models

import (
	"github.com/shopspring/decimal"
)

// Investment is the DB representation of an investment position.
type Investment struct {
	InvestmentID string           `db:"investment_id"`
	Name         string           `db:"name"`
	Type         string           `db:"type"`
	Amount       decimal.Decimal  `db:"amount"`
	Yield        *decimal.Decimal `db:"yield"`
	AuditFields
}
