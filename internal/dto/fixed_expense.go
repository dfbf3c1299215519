package dto

import (
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFixedExpenseRequest defines the data needed to create a recurring
// bill definition.
type CreateFixedExpenseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	DueDay   int             `json:"dueDay" binding:"required,min=1,max=31"`
	Category string          `json:"category"`
	AutoPay  bool            `json:"autoPay"`
}

// UpdateFixedExpenseRequest defines the fields an update may change.
type UpdateFixedExpenseRequest struct {
	Name     *string          `json:"name"`
	Amount   *decimal.Decimal `json:"amount"`
	DueDay   *int             `json:"dueDay" binding:"omitempty,min=1,max=31"`
	Category *string          `json:"category"`
	AutoPay  *bool            `json:"autoPay"`
}

// FixedExpenseResponse defines the data returned for a bill definition.
type FixedExpenseResponse struct {
	FixedExpenseID string          `json:"fixedExpenseID"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	DueDay         int             `json:"dueDay"`
	Category       string          `json:"category"`
	AutoPay        bool            `json:"autoPay"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToFixedExpenseResponse converts a domain.FixedExpense to its response DTO.
func ToFixedExpenseResponse(f *domain.FixedExpense) FixedExpenseResponse {
	return FixedExpenseResponse{
		FixedExpenseID: f.FixedExpenseID,
		Name:           f.Name,
		Amount:         f.Amount,
		DueDay:         f.DueDay,
		Category:       f.Category,
		AutoPay:        f.AutoPay,
		CreatedAt:      f.CreatedAt,
		LastUpdatedAt:  f.LastUpdatedAt,
	}
}

// ToListFixedExpenseResponse converts a slice of definitions.
func ToListFixedExpenseResponse(defs []domain.FixedExpense) []FixedExpenseResponse {
	res := make([]FixedExpenseResponse, len(defs))
	for i := range defs {
		res[i] = ToFixedExpenseResponse(&defs[i])
	}
	return res
}

// MaterializeResponse reports the outcome of a materializer run.
type MaterializeResponse struct {
	Generated    int                   `json:"generated"`
	Transactions []TransactionResponse `json:"transactions"`
}
