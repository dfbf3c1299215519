package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransactionStatus tracks whether a transaction has been settled.
type TransactionStatus string

const (
	Paid    TransactionStatus = "PAID"
	Pending TransactionStatus = "PENDING"
)

// Transaction is the DB representation of a financial transaction.
// FixedExpenseID and MonthKey are set only on materialized bills; MonthKey is
// stored as "YYYY-MM" text so the uniqueness constraint can cover it.
type Transaction struct {
	TransactionID  string            `db:"transaction_id"`
	Amount         decimal.Decimal   `db:"amount"`
	Description    string            `db:"description"`
	Date           time.Time         `db:"date"`
	DueDate        *time.Time        `db:"due_date"`
	Category       string            `db:"category"`
	Type           TransactionType   `db:"type"`
	Status         TransactionStatus `db:"status"`
	IsBill         bool              `db:"is_bill"`
	FixedExpenseID *string           `db:"fixed_expense_id"`
	MonthKey       *string           `db:"month_key"`
	AuditFields
}
