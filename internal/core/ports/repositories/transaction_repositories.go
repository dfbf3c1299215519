package repositories

import (
	"context"
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// SaveTransaction inserts a new transaction. Inserting a second bill for
	// the same (fixedExpenseID, monthKey) pair returns apperrors.ErrDuplicate.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// FindTransactionByID returns apperrors.ErrNotFound when missing.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactions returns the full set ordered by date descending.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// UpdateTransaction persists field edits. Status is not touched here.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// UpdateTransactionStatus performs the single-column status transition.
	// Atomic per row; returns apperrors.ErrNotFound when missing.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updatedAt time.Time) error
	// DeleteTransaction returns apperrors.ErrNotFound when missing.
	DeleteTransaction(ctx context.Context, transactionID string) error
	// FindBillForMonth looks up the materialized bill for a definition in a
	// month bucket. Returns apperrors.ErrNotFound when none exists.
	FindBillForMonth(ctx context.Context, fixedExpenseID string, month domain.MonthKey) (*domain.Transaction, error)
	// FindIncomeByDescription locates an income transaction by exact
	// description, used to detect an already-imported fortnight.
	FindIncomeByDescription(ctx context.Context, description string) (*domain.Transaction, error)
}
