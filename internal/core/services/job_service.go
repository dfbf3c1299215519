package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
	"github.com/emersonvf/centavo/internal/middleware"
)

// operationalCostRate is the share of the fortnight subtotal withheld for
// fuel and vehicle costs before the income lands.
var operationalCostRate = decimal.NewFromFloat(0.07)

// jobService provides delivery job CRUD and the fortnight income import.
type jobService struct {
	jobRepo         portsrepo.JobRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo portsrepo.JobRepository, transactionRepo portsrepo.TransactionRepository) portssvc.JobSvcFacade {
	return &jobService{
		jobRepo:         jobRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

func (s *jobService) CreateJob(ctx context.Context, req dto.CreateJobRequest) (*domain.Job, error) {
	now := time.Now().UTC()

	job := domain.Job{
		JobID:       uuid.NewString(),
		Date:        req.Date,
		Price:       req.Price,
		Origin:      req.Origin,
		Destination: req.Destination,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.jobRepo.SaveJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	return &job, nil
}

func (s *jobService) GetJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.jobRepo.FindJobByID(ctx, jobID)
}

func (s *jobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.jobRepo.ListJobs(ctx)
}

func (s *jobService) UpdateJob(ctx context.Context, jobID string, req dto.UpdateJobRequest) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		job.Date = *req.Date
	}
	if req.Price != nil {
		job.Price = *req.Price
	}
	if req.Origin != nil {
		job.Origin = *req.Origin
	}
	if req.Destination != nil {
		job.Destination = *req.Destination
	}
	if req.Notes != nil {
		job.Notes = *req.Notes
	}
	job.LastUpdatedAt = time.Now().UTC()

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.jobRepo.UpdateJob(ctx, *job); err != nil {
		return nil, fmt.Errorf("failed to update job %s: %w", jobID, err)
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, jobID string) error {
	return s.jobRepo.DeleteJob(ctx, jobID)
}

// ImportPeriod folds the jobs of one fortnight into a single PAID income
// transaction, net of the operational cost. The period's description doubles
// as the idempotency key: re-importing the same period is a conflict.
func (s *jobService) ImportPeriod(ctx context.Context, req dto.ImportPeriodRequest) (*dto.ImportPeriodResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must not precede start date", apperrors.ErrValidation)
	}

	jobs, err := s.jobRepo.ListJobsInRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs in period: %w", err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: no jobs in period", apperrors.ErrNotFound)
	}

	subtotal := decimal.Zero
	for _, job := range jobs {
		subtotal = subtotal.Add(job.Price)
	}
	operationalCost := subtotal.Mul(operationalCostRate)
	totalNet := subtotal.Sub(operationalCost)

	description := fmt.Sprintf("My Jobs %s - %s",
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))

	existing, err := s.transactionRepo.FindIncomeByDescription(ctx, description)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for prior import: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: period already imported", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        totalNet,
		Description:   description,
		Date:          req.EndDate, // payment date is the end of the fortnight
		Category:      "Jobs",
		Type:          domain.Income,
		Status:        domain.Paid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save period income: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Fortnight imported",
		slog.String("description", description),
		slog.Int("jobs", len(jobs)),
		slog.String("total_net", totalNet.String()))

	return &dto.ImportPeriodResponse{
		Subtotal:        subtotal,
		OperationalCost: operationalCost,
		TotalNet:        totalNet,
		Transaction:     dto.ToTransactionResponse(&txn),
	}, nil
}
