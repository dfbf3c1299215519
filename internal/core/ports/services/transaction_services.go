package services

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/dto"
)

// TransactionSvcFacade exposes transaction operations to the handlers.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
	// SettleTransaction transitions PENDING to PAID.
	SettleTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ReopenTransaction is the audited administrative PAID to PENDING
	// reversal; reason is mandatory.
	ReopenTransaction(ctx context.Context, transactionID string, reason string) (*domain.Transaction, error)
	// GetSummary returns the canonical balance figures.
	GetSummary(ctx context.Context) (*dto.SummaryResponse, error)
	// ListUpcomingBills returns pending bills merged with the stored manual
	// ordering preference.
	ListUpcomingBills(ctx context.Context, limit int) ([]domain.Transaction, error)
}
