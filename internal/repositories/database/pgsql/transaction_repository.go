package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	"github.com/emersonvf/centavo/internal/models"
	"github.com/emersonvf/centavo/internal/utils/mapping"
)

const transactionColumns = `transaction_id, amount, description, date, due_date, category, type, status, is_bill, fixed_expense_id, month_key, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.DueDate,
		&m.Category,
		&m.Type,
		&m.Status,
		&m.IsBill,
		&m.FixedExpenseID,
		&m.MonthKey,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveTransaction inserts a new transaction. The partial unique index on
// (fixed_expense_id, month_key) turns a second bill for the same month into
// a unique violation, surfaced as ErrDuplicate.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Amount,
		m.Description,
		m.Date,
		m.DueDate,
		m.Category,
		m.Type,
		m.Status,
		m.IsBill,
		m.FixedExpenseID,
		m.MonthKey,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListTransactions retrieves every transaction, newest date first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		d, err := mapping.ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		txns = append(txns, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

// UpdateTransaction updates the editable fields of a transaction. Status is
// deliberately excluded; UpdateTransactionStatus owns that column.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET amount = $2, description = $3, date = $4, due_date = $5, category = $6, last_updated_at = $7
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Amount,
		m.Description,
		m.Date,
		m.DueDate,
		m.Category,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransactionStatus flips the status column in a single statement.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updatedAt time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, last_updated_at = $3
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, models.TransactionStatus(status), updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction permanently.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBillForMonth looks up the materialized bill of one definition in one
// month bucket.
func (r *PgxTransactionRepository) FindBillForMonth(ctx context.Context, fixedExpenseID string, month domain.MonthKey) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE is_bill = TRUE AND fixed_expense_id = $1 AND month_key = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, fixedExpenseID, month.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill for %s in %s: %w", fixedExpenseID, month, err)
	}

	d, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindIncomeByDescription locates an income transaction by exact description.
func (r *PgxTransactionRepository) FindIncomeByDescription(ctx context.Context, description string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE type = 'INCOME' AND description = $1
		LIMIT 1;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find income by description: %w", err)
	}

	d, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
