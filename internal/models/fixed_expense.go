package models

import (
	"github.com/shopspring/decimal"
)

// FixedExpense is the DB representation of a recurring bill definition.
type FixedExpense struct {
	FixedExpenseID string          `db:"fixed_expense_id"`
	Name           string          `db:"name"`
	Amount         decimal.Decimal `db:"amount"`
	DueDay         int             `db:"due_day"`
	Category       string          `db:"category"`
	AutoPay        bool            `db:"auto_pay"`
	AuditFields
}
