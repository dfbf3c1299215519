package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
	"github.com/emersonvf/centavo/internal/middleware"
)

const defaultBillCategory = "Fixed Expense"

// fixedExpenseService manages recurring bill definitions and materializes
// them into monthly bill transactions.
type fixedExpenseService struct {
	fixedExpenseRepo portsrepo.FixedExpenseRepository
	transactionRepo  portsrepo.TransactionRepository
}

// NewFixedExpenseService creates a new FixedExpenseService.
func NewFixedExpenseService(fixedExpenseRepo portsrepo.FixedExpenseRepository, transactionRepo portsrepo.TransactionRepository) portssvc.FixedExpenseSvcFacade {
	return &fixedExpenseService{
		fixedExpenseRepo: fixedExpenseRepo,
		transactionRepo:  transactionRepo,
	}
}

var _ portssvc.FixedExpenseSvcFacade = (*fixedExpenseService)(nil)

func (s *fixedExpenseService) CreateFixedExpense(ctx context.Context, req dto.CreateFixedExpenseRequest) (*domain.FixedExpense, error) {
	now := time.Now().UTC()
	category := req.Category
	if category == "" {
		category = defaultBillCategory
	}

	def := domain.FixedExpense{
		FixedExpenseID: uuid.NewString(),
		Name:           req.Name,
		Amount:         req.Amount,
		DueDay:         req.DueDay,
		Category:       category,
		AutoPay:        req.AutoPay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.fixedExpenseRepo.SaveFixedExpense(ctx, def); err != nil {
		return nil, fmt.Errorf("failed to save fixed expense: %w", err)
	}
	return &def, nil
}

func (s *fixedExpenseService) GetFixedExpenseByID(ctx context.Context, fixedExpenseID string) (*domain.FixedExpense, error) {
	return s.fixedExpenseRepo.FindFixedExpenseByID(ctx, fixedExpenseID)
}

func (s *fixedExpenseService) ListFixedExpenses(ctx context.Context) ([]domain.FixedExpense, error) {
	return s.fixedExpenseRepo.ListFixedExpenses(ctx)
}

func (s *fixedExpenseService) UpdateFixedExpense(ctx context.Context, fixedExpenseID string, req dto.UpdateFixedExpenseRequest) (*domain.FixedExpense, error) {
	def, err := s.fixedExpenseRepo.FindFixedExpenseByID(ctx, fixedExpenseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		def.Name = *req.Name
	}
	if req.Amount != nil {
		def.Amount = *req.Amount
	}
	if req.DueDay != nil {
		def.DueDay = *req.DueDay
	}
	if req.Category != nil {
		def.Category = *req.Category
	}
	if req.AutoPay != nil {
		def.AutoPay = *req.AutoPay
	}
	def.LastUpdatedAt = time.Now().UTC()

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.fixedExpenseRepo.UpdateFixedExpense(ctx, *def); err != nil {
		return nil, fmt.Errorf("failed to update fixed expense %s: %w", fixedExpenseID, err)
	}
	return def, nil
}

func (s *fixedExpenseService) DeleteFixedExpense(ctx context.Context, fixedExpenseID string) error {
	return s.fixedExpenseRepo.DeleteFixedExpense(ctx, fixedExpenseID)
}

// MaterializeMonth ensures each recurring bill definition has exactly one
// transaction in today's month. Triggered on every app load, so it must be
// idempotent and cheap: definitions that already have a bill this month are
// skipped, and a concurrent run losing the insert race is treated the same
// as finding an existing bill.
func (s *fixedExpenseService) MaterializeMonth(ctx context.Context, today time.Time) (*dto.MaterializeResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	month := domain.MonthKeyFromTime(today)

	defs, err := s.fixedExpenseRepo.ListFixedExpenses(ctx)
	if err != nil {
		// Only enumeration failure fails the whole run.
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}

	generated := make([]domain.Transaction, 0)
	for _, def := range defs {
		txn, err := s.materializeOne(ctx, def, today, month)
		if err != nil {
			// Best effort: one bad definition must not block the rest. The
			// next natural trigger completes any unfinished work.
			logger.Error("Failed to materialize fixed expense",
				slog.String("fixed_expense_id", def.FixedExpenseID),
				slog.String("month", month.String()),
				slog.String("error", err.Error()))
			continue
		}
		if txn != nil {
			generated = append(generated, *txn)
		}
	}

	logger.Info("Fixed expense check completed",
		slog.String("month", month.String()),
		slog.Int("definitions", len(defs)),
		slog.Int("generated", len(generated)))

	return &dto.MaterializeResponse{
		Generated:    len(generated),
		Transactions: dto.ToListTransactionResponse(generated),
	}, nil
}

// materializeOne creates the bill transaction for one definition, or returns
// (nil, nil) when the month is already covered.
func (s *fixedExpenseService) materializeOne(ctx context.Context, def domain.FixedExpense, today time.Time, month domain.MonthKey) (*domain.Transaction, error) {
	_, err := s.transactionRepo.FindBillForMonth(ctx, def.FixedExpenseID, month)
	if err == nil {
		return nil, nil // already materialized this month
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing bill: %w", err)
	}

	now := time.Now().UTC()
	dueDate := month.DateAtNoon(def.DueDay)
	fixedExpenseID := def.FixedExpenseID
	monthKey := month

	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		Amount:         def.Amount,
		Description:    fmt.Sprintf("%s (Bill)", def.Name),
		Date:           today,
		DueDate:        &dueDate,
		Category:       def.Category,
		Type:           domain.Expense,
		Status:         domain.Pending,
		IsBill:         true,
		FixedExpenseID: &fixedExpenseID,
		MonthKey:       &monthKey,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if txn.Category == "" {
		txn.Category = defaultBillCategory
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent run won the insert race; the uniqueness constraint
			// on (fixed_expense_id, month_key) makes this benign.
			middleware.GetLoggerFromCtx(ctx).Info("Bill already materialized by concurrent run",
				slog.String("fixed_expense_id", def.FixedExpenseID),
				slog.String("month", month.String()))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to save bill transaction: %w", err)
	}

	return &txn, nil
}
