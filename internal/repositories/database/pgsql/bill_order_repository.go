package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	"github.com/emersonvf/centavo/internal/models"
)

// billOrderKey is the row key of the single ordering preference.
const billOrderKey = "bill_order"

type PgxBillOrderRepository struct {
	BaseRepository
}

// newPgxBillOrderRepository creates a new repository for the bill ordering
// preference.
func newPgxBillOrderRepository(pool *pgxpool.Pool) portsrepo.BillOrderRepository {
	return &PgxBillOrderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BillOrderRepository = (*PgxBillOrderRepository)(nil)

func toDomainBillOrder(m models.BillOrderPreference) domain.BillOrder {
	return domain.BillOrder{
		TransactionIDs: m.TransactionIDs,
		Version:        m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// GetBillOrder returns the stored ordering. A never-saved preference comes
// back as an empty order at version 0 so callers need no special case.
func (r *PgxBillOrderRepository) GetBillOrder(ctx context.Context) (*domain.BillOrder, error) {
	query := `
		SELECT preference_key, transaction_ids, version, created_at, last_updated_at
		FROM preferences
		WHERE preference_key = $1;
	`
	var m models.BillOrderPreference
	err := r.Pool.QueryRow(ctx, query, billOrderKey).Scan(
		&m.PreferenceKey,
		&m.TransactionIDs,
		&m.Version,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.BillOrder{TransactionIDs: []string{}, Version: 0}, nil
		}
		return nil, fmt.Errorf("failed to load bill order preference: %w", err)
	}

	d := toDomainBillOrder(m)
	return &d, nil
}

// SaveBillOrder replaces the ordering under optimistic concurrency. The row
// is locked, the caller's expected version compared against the stored one,
// and the version bumped on success. A stale expectation is a conflict.
func (r *PgxBillOrderRepository) SaveBillOrder(ctx context.Context, order domain.BillOrder, expectedVersion int64) (*domain.BillOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var currentVersion int64
	var createdAt time.Time
	err = tx.QueryRow(ctx,
		`SELECT version, created_at FROM preferences WHERE preference_key = $1 FOR UPDATE;`,
		billOrderKey,
	).Scan(&currentVersion, &createdAt)

	now := time.Now().UTC()
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		if expectedVersion != 0 {
			return nil, fmt.Errorf("%w: bill order version %d does not exist yet", apperrors.ErrConflict, expectedVersion)
		}
		createdAt = now
		_, err = tx.Exec(ctx,
			`INSERT INTO preferences (preference_key, transaction_ids, version, created_at, last_updated_at)
			 VALUES ($1, $2, 1, $3, $4);`,
			billOrderKey, order.TransactionIDs, createdAt, now,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert bill order preference: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to lock bill order preference: %w", err)
	case currentVersion != expectedVersion:
		return nil, fmt.Errorf("%w: bill order version is %d, expected %d", apperrors.ErrConflict, currentVersion, expectedVersion)
	default:
		_, err = tx.Exec(ctx,
			`UPDATE preferences
			 SET transaction_ids = $2, version = version + 1, last_updated_at = $3
			 WHERE preference_key = $1;`,
			billOrderKey, order.TransactionIDs, now,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update bill order preference: %w", err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.BillOrder{
		TransactionIDs: order.TransactionIDs,
		Version:        expectedVersion + 1,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			LastUpdatedAt: now,
		},
	}, nil
}
