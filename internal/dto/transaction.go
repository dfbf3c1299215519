package dto

import (
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Date        time.Time       `json:"date" binding:"required"`
	Status      string          `json:"status" binding:"omitempty,oneof=PAID PENDING"`
	DueDate     *time.Time      `json:"dueDate"`
}

// UpdateTransactionRequest defines the fields a generic update may change.
// Status is deliberately absent: settling and reopening are separate
// operations with their own endpoints.
type UpdateTransactionRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Date        *time.Time       `json:"date"`
	DueDate     *time.Time       `json:"dueDate"`
}

// ReopenTransactionRequest carries the mandatory justification for the
// administrative PAID to PENDING reversal.
type ReopenTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Date           time.Time       `json:"date"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Category       string          `json:"category"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	IsBill         bool            `json:"isBill"`
	FixedExpenseID *string         `json:"fixedExpenseID,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  t.TransactionID,
		Amount:         t.Amount,
		Description:    t.Description,
		Date:           t.Date,
		DueDate:        t.DueDate,
		Category:       t.Category,
		Type:           string(t.Type),
		Status:         string(t.Status),
		IsBill:         t.IsBill,
		FixedExpenseID: t.FixedExpenseID,
		CreatedAt:      t.CreatedAt,
		LastUpdatedAt:  t.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// SummaryResponse is the dashboard aggregate derived from the canonical
// balance calculation.
type SummaryResponse struct {
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	PendingExpense decimal.Decimal `json:"pendingExpense"`
	Balance        decimal.Decimal `json:"balance"`
}

// ListUpcomingBillsParams defines query parameters for the bills view.
type ListUpcomingBillsParams struct {
	Limit int `form:"limit,default=10"`
}
