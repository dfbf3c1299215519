package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
)

// investmentService provides investment CRUD.
type investmentService struct {
	investmentRepo portsrepo.InvestmentRepository
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(investmentRepo portsrepo.InvestmentRepository) portssvc.InvestmentSvcFacade {
	return &investmentService{investmentRepo: investmentRepo}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	now := time.Now().UTC()

	inv := domain.Investment{
		InvestmentID: uuid.NewString(),
		Name:         req.Name,
		Type:         req.Type,
		Amount:       req.Amount,
		Yield:        req.Yield,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.investmentRepo.SaveInvestment(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save investment: %w", err)
	}
	return &inv, nil
}

func (s *investmentService) GetInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	return s.investmentRepo.FindInvestmentByID(ctx, investmentID)
}

func (s *investmentService) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	return s.investmentRepo.ListInvestments(ctx)
}

func (s *investmentService) UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		inv.Name = *req.Name
	}
	if req.Type != nil {
		inv.Type = *req.Type
	}
	if req.Amount != nil {
		inv.Amount = *req.Amount
	}
	if req.Yield != nil {
		inv.Yield = req.Yield
	}
	inv.LastUpdatedAt = time.Now().UTC()

	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.investmentRepo.UpdateInvestment(ctx, *inv); err != nil {
		return nil, fmt.Errorf("failed to update investment %s: %w", investmentID, err)
	}
	return inv, nil
}

func (s *investmentService) DeleteInvestment(ctx context.Context, investmentID string) error {
	return s.investmentRepo.DeleteInvestment(ctx, investmentID)
}
