package services

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/dto"
)

// BillOrderSvcFacade exposes the manual bill ordering preference.
type BillOrderSvcFacade interface {
	GetBillOrder(ctx context.Context) (*domain.BillOrder, error)
	// UpdateBillOrder replaces the ordering; a stale expectedVersion returns
	// apperrors.ErrConflict.
	UpdateBillOrder(ctx context.Context, req dto.UpdateBillOrderRequest) (*domain.BillOrder, error)
}
