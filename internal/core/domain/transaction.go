package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction. Amounts are
// always stored positive; the sign is derived solely from the type.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether the type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// TransactionStatus indicates whether a transaction has been settled.
type TransactionStatus string

const (
	// Paid transactions contribute to the settled balance. Terminal state.
	Paid TransactionStatus = "PAID"
	// Pending transactions are open obligations; they never contribute to the
	// settled balance and feed the upcoming-bills view instead.
	Pending TransactionStatus = "PENDING"
)

// IsValid reports whether the status is one of the known values.
func (s TransactionStatus) IsValid() bool {
	return s == Paid || s == Pending
}

// Transaction represents a single income or expense record.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"` // always >= 0
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`              // economic/event date; creation date for bills
	DueDate       *time.Time      `json:"dueDate,omitempty"` // settlement deadline for pending obligations
	Category      string          `json:"category"`
	Type          TransactionType `json:"type"`
	Status        TransactionStatus `json:"status"`
	IsBill        bool            `json:"isBill"`
	// FixedExpenseID is a weak back-reference to the definition that generated
	// this bill. Lookup only; the definition does not own the transaction.
	FixedExpenseID *string `json:"fixedExpenseID,omitempty"`
	// MonthKey is set only on materializer-generated bills and backs the
	// one-bill-per-definition-per-month uniqueness constraint.
	MonthKey *MonthKey `json:"monthKey,omitempty"`
	AuditFields
}

// EffectiveDueDate returns the date the upcoming-bills view sorts on:
// the due date when present, otherwise the transaction date.
func (t Transaction) EffectiveDueDate() time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.Date
}

// IsSettled reports whether the transaction counts toward the settled balance.
func (t Transaction) IsSettled() bool {
	return t.Status == Paid
}

// Validate checks the structural invariants of a transaction.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if t.Description == "" {
		return fmt.Errorf("description is required")
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("unknown transaction status %q", t.Status)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if t.IsBill && t.FixedExpenseID == nil {
		return fmt.Errorf("bill transactions must reference a fixed expense")
	}
	return nil
}
