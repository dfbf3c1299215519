package dto

import (
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to create an investment.
type CreateInvestmentRequest struct {
	Name   string           `json:"name" binding:"required"`
	Type   string           `json:"type"`
	Amount decimal.Decimal  `json:"amount" binding:"required"`
	Yield  *decimal.Decimal `json:"yield"`
}

// UpdateInvestmentRequest defines the fields an update may change.
type UpdateInvestmentRequest struct {
	Name   *string          `json:"name"`
	Type   *string          `json:"type"`
	Amount *decimal.Decimal `json:"amount"`
	Yield  *decimal.Decimal `json:"yield"`
}

// InvestmentResponse defines the data returned for an investment.
type InvestmentResponse struct {
	InvestmentID  string           `json:"investmentID"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	Yield         *decimal.Decimal `json:"yield,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToInvestmentResponse converts a domain.Investment to its response DTO.
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:  inv.InvestmentID,
		Name:          inv.Name,
		Type:          inv.Type,
		Amount:        inv.Amount,
		Yield:         inv.Yield,
		CreatedAt:     inv.CreatedAt,
		LastUpdatedAt: inv.LastUpdatedAt,
	}
}

// ToListInvestmentResponse converts a slice of investments.
func ToListInvestmentResponse(invs []domain.Investment) []InvestmentResponse {
	res := make([]InvestmentResponse, len(invs))
	for i := range invs {
		res[i] = ToInvestmentResponse(&invs[i])
	}
	return res
}
