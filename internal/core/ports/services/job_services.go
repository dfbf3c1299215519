package services

import (
	"context"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/dto"
)

// JobSvcFacade exposes delivery job operations and the fortnight income
// import.
type JobSvcFacade interface {
	CreateJob(ctx context.Context, req dto.CreateJobRequest) (*domain.Job, error)
	GetJobByID(ctx context.Context, jobID string) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]domain.Job, error)
	UpdateJob(ctx context.Context, jobID string, req dto.UpdateJobRequest) (*domain.Job, error)
	DeleteJob(ctx context.Context, jobID string) error
	// ImportPeriod folds the jobs in [startDate, endDate] into one PAID
	// income transaction, net of the operational cost. An empty period
	// returns apperrors.ErrNotFound; an already imported period returns
	// apperrors.ErrConflict.
	ImportPeriod(ctx context.Context, req dto.ImportPeriodRequest) (*dto.ImportPeriodResponse, error)
}
