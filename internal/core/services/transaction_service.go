package services

import (
	"context"
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
	"github.com/emersonvf/centavo/internal/utils/accounting"
)

// transactionService provides transaction CRUD, the settle/reopen status
// transitions, and the reconciled balance and upcoming-bills views.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepository
	billOrderRepo   portsrepo.BillOrderRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, billOrderRepo portsrepo.BillOrderRepository) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		billOrderRepo:   billOrderRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := time.Now().UTC()

	status := domain.TransactionStatus(req.Status)
	if req.Status == "" {
		// User-entered transactions default to settled; only the materializer
		// creates PENDING bills.
		status = domain.Paid
	}
	category := req.Category
	if category == "" {
		category = "Uncategorized"
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		DueDate:       req.DueDate,
		Category:      category,
		Type:          domain.TransactionType(req.Type),
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.DueDate != nil {
		txn.DueDate = req.DueDate
	}
	txn.LastUpdatedAt = time.Now().UTC()

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}

// SettleTransaction transitions a PENDING transaction to PAID. The reverse
// direction is only available through ReopenTransaction.
func (s *transactionService) SettleTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.Paid {
		return nil, fmt.Errorf("%w: transaction %s is already settled", apperrors.ErrValidation, transactionID)
	}

	now := time.Now().UTC()
	if err := s.transactionRepo.UpdateTransactionStatus(ctx, transactionID, domain.Paid, now); err != nil {
		return nil, fmt.Errorf("failed to settle transaction %s: %w", transactionID, err)
	}

	txn.Status = domain.Paid
	txn.LastUpdatedAt = now
	return txn, nil
}

// ReopenTransaction is the administrative escape hatch that reverses a PAID
// transaction back to PENDING for data repair. It is not part of the normal
// flow and always leaves an audit log entry with the operator's reason.
func (s *transactionService) ReopenTransaction(ctx context.Context, transactionID string, reason string) (*domain.Transaction, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: a reason is required to reopen a transaction", apperrors.ErrValidation)
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.Pending {
		return nil, fmt.Errorf("%w: transaction %s is not settled", apperrors.ErrValidation, transactionID)
	}

	now := time.Now().UTC()
	if err := s.transactionRepo.UpdateTransactionStatus(ctx, transactionID, domain.Pending, now); err != nil {
		return nil, fmt.Errorf("failed to reopen transaction %s: %w", transactionID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Warn("Transaction reopened",
		slog.String("transaction_id", transactionID),
		slog.String("reason", reason))

	txn.Status = domain.Pending
	txn.LastUpdatedAt = now
	return txn, nil
}

// GetSummary computes the dashboard figures from the full transaction set
// through the single canonical balance calculation.
func (s *transactionService) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for summary: %w", err)
	}

	summary := accounting.Summarize(txns)
	return &dto.SummaryResponse{
		Income:         summary.Income,
		Expense:        summary.Expense,
		PendingExpense: summary.PendingExpense,
		Balance:        summary.Balance,
	}, nil
}

// ListUpcomingBills returns pending bill obligations merged with the stored
// manual ordering. A failure to load the preference degrades to plain date
// ordering rather than failing the view.
func (s *transactionService) ListUpcomingBills(ctx context.Context, limit int) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for bills view: %w", err)
	}

	var manualOrder []string
	if order, err := s.billOrderRepo.GetBillOrder(ctx); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to load bill order preference, using date order",
			slog.String("error", err.Error()))
	} else {
		manualOrder = order.TransactionIDs
	}

	return accounting.UpcomingBills(txns, manualOrder, limit), nil
}
