package repositories

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
)

// BillOrderRepository persists the single manual bill-ordering preference.
type BillOrderRepository interface {
	// GetBillOrder returns the stored ordering, or an empty order with
	// version 0 when none has ever been saved.
	GetBillOrder(ctx context.Context) (*domain.BillOrder, error)
	// SaveBillOrder replaces the ordering if expectedVersion matches the
	// stored version, bumping it by one. A stale version returns
	// apperrors.ErrConflict.
	SaveBillOrder(ctx context.Context, order domain.BillOrder, expectedVersion int64) (*domain.BillOrder, error)
}
