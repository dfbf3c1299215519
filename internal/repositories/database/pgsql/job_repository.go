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

const jobColumns = `job_id, date, price, origin, destination, notes, created_at, last_updated_at`

type PgxJobRepository struct {
	BaseRepository
}

// newPgxJobRepository creates a new repository for delivery jobs.
func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepository {
	return &PgxJobRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepository = (*PgxJobRepository)(nil)

func scanJob(row pgx.Row) (models.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobID,
		&m.Date,
		&m.Price,
		&m.Origin,
		&m.Destination,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	m := mapping.ToModelJob(job)

	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.JobID,
		m.Date,
		m.Price,
		m.Origin,
		m.Destination,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: job %s", apperrors.ErrDuplicate, m.JobID)
		}
		return fmt.Errorf("failed to save job %s: %w", m.JobID, err)
	}
	return nil
}

func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE job_id = $1;
	`
	m, err := scanJob(r.Pool.QueryRow(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by ID %s: %w", jobID, err)
	}

	d := mapping.ToDomainJob(m)
	return &d, nil
}

func (r *PgxJobRepository) ListJobs(ctx context.Context) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		m, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, mapping.ToDomainJob(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", rows.Err())
	}
	return jobs, nil
}

// ListJobsInRange returns jobs dated inside the inclusive [start, end] window,
// oldest first.
func (r *PgxJobRepository) ListJobsInRange(ctx context.Context, start, end time.Time) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE date >= $1 AND date <= $2
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs in range: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		m, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, mapping.ToDomainJob(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", rows.Err())
	}
	return jobs, nil
}

func (r *PgxJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	m := mapping.ToModelJob(job)

	query := `
		UPDATE jobs
		SET date = $2, price = $3, origin = $4, destination = $5, notes = $6, last_updated_at = $7
		WHERE job_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.JobID,
		m.Date,
		m.Price,
		m.Origin,
		m.Destination,
		m.Notes,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update job %s: %w", m.JobID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJobRepository) DeleteJob(ctx context.Context, jobID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM jobs WHERE job_id = $1;`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job %s: %w", jobID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
