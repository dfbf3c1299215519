package repositories

import (
	"context"
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
)

// JobRepository defines persistence operations for delivery jobs.
type JobRepository interface {
	SaveJob(ctx context.Context, job domain.Job) error
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)
	// ListJobs returns all jobs ordered by date descending.
	ListJobs(ctx context.Context) ([]domain.Job, error)
	// ListJobsInRange returns jobs with date inside [start, end], ordered by
	// date ascending.
	ListJobsInRange(ctx context.Context, start, end time.Time) ([]domain.Job, error)
	UpdateJob(ctx context.Context, job domain.Job) error
	DeleteJob(ctx context.Context, jobID string) error
}
