package repositories

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
)

// FixedExpenseRepository defines persistence operations for recurring bill
// definitions.
type FixedExpenseRepository interface {
	SaveFixedExpense(ctx context.Context, def domain.FixedExpense) error
	// FindFixedExpenseByID returns apperrors.ErrNotFound when missing.
	FindFixedExpenseByID(ctx context.Context, fixedExpenseID string) (*domain.FixedExpense, error)
	// ListFixedExpenses returns all definitions ordered by due day ascending.
	ListFixedExpenses(ctx context.Context) ([]domain.FixedExpense, error)
	UpdateFixedExpense(ctx context.Context, def domain.FixedExpense) error
	// DeleteFixedExpense removes the definition only. Generated transactions
	// are never cascaded.
	DeleteFixedExpense(ctx context.Context, fixedExpenseID string) error
}
