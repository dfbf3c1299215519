package services

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/dto"
)

// InvestmentSvcFacade exposes investment operations.
type InvestmentSvcFacade interface {
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error)
	GetInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
	UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, investmentID string) error
}
