package dto

import (
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJobRequest defines the data needed to record a delivery job.
type CreateJobRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Notes       string          `json:"notes"`
}

// UpdateJobRequest defines the fields an update may change.
type UpdateJobRequest struct {
	Date        *time.Time       `json:"date"`
	Price       *decimal.Decimal `json:"price"`
	Origin      *string          `json:"origin"`
	Destination *string          `json:"destination"`
	Notes       *string          `json:"notes"`
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobID         string          `json:"jobID"`
	Date          time.Time       `json:"date"`
	Price         decimal.Decimal `json:"price"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToJobResponse converts a domain.Job to its response DTO.
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		JobID:         j.JobID,
		Date:          j.Date,
		Price:         j.Price,
		Origin:        j.Origin,
		Destination:   j.Destination,
		Notes:         j.Notes,
		CreatedAt:     j.CreatedAt,
		LastUpdatedAt: j.LastUpdatedAt,
	}
}

// ToListJobResponse converts a slice of jobs.
func ToListJobResponse(jobs []domain.Job) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i := range jobs {
		res[i] = ToJobResponse(&jobs[i])
	}
	return res
}

// ImportPeriodRequest selects the fortnight of jobs to fold into one income
// transaction.
type ImportPeriodRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// ImportPeriodResponse reports the outcome of a fortnight import.
type ImportPeriodResponse struct {
	Subtotal        decimal.Decimal     `json:"subtotal"`
	OperationalCost decimal.Decimal     `json:"operationalCost"`
	TotalNet        decimal.Decimal     `json:"totalNet"`
	Transaction     TransactionResponse `json:"transaction"`
}
