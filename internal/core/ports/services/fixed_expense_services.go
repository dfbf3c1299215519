package services

import (
	"context"
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/dto"
)

// FixedExpenseSvcFacade exposes recurring bill definition operations and the
// monthly materializer.
type FixedExpenseSvcFacade interface {
	CreateFixedExpense(ctx context.Context, req dto.CreateFixedExpenseRequest) (*domain.FixedExpense, error)
	GetFixedExpenseByID(ctx context.Context, fixedExpenseID string) (*domain.FixedExpense, error)
	ListFixedExpenses(ctx context.Context) ([]domain.FixedExpense, error)
	UpdateFixedExpense(ctx context.Context, fixedExpenseID string, req dto.UpdateFixedExpenseRequest) (*domain.FixedExpense, error)
	DeleteFixedExpense(ctx context.Context, fixedExpenseID string) error
	// MaterializeMonth ensures each definition has exactly one bill
	// transaction in today's month. Idempotent; per-definition failures are
	// skipped and reflected in the reduced count.
	MaterializeMonth(ctx context.Context, today time.Time) (*dto.MaterializeResponse, error)
}
