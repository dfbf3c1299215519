package repositories

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
)

// InvestmentRepository defines persistence operations for investments.
type InvestmentRepository interface {
	SaveInvestment(ctx context.Context, inv domain.Investment) error
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
	// ListInvestments returns all investments ordered by creation time descending.
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
	UpdateInvestment(ctx context.Context, inv domain.Investment) error
	DeleteInvestment(ctx context.Context, investmentID string) error
}
