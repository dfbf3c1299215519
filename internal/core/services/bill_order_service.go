package services

import (
	"context"
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
)

// billOrderService manages the versioned manual bill ordering preference.
type billOrderService struct {
	billOrderRepo portsrepo.BillOrderRepository
}

// NewBillOrderService creates a new BillOrderService.
func NewBillOrderService(billOrderRepo portsrepo.BillOrderRepository) portssvc.BillOrderSvcFacade {
	return &billOrderService{billOrderRepo: billOrderRepo}
}

var _ portssvc.BillOrderSvcFacade = (*billOrderService)(nil)

func (s *billOrderService) GetBillOrder(ctx context.Context) (*domain.BillOrder, error) {
	return s.billOrderRepo.GetBillOrder(ctx)
}

func (s *billOrderService) UpdateBillOrder(ctx context.Context, req dto.UpdateBillOrderRequest) (*domain.BillOrder, error) {
	now := time.Now().UTC()
	order := domain.BillOrder{
		TransactionIDs: req.TransactionIDs,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	return s.billOrderRepo.SaveBillOrder(ctx, order, req.ExpectedVersion)
}
