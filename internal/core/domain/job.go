package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Job is a single ad-hoc delivery job. Jobs are batch-imported per fortnight
// into one INCOME transaction, net of the operational cost.
type Job struct {
	JobID       string          `json:"jobID"`
	Date        time.Time       `json:"date"`
	Price       decimal.Decimal `json:"price"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Notes       string          `json:"notes"`
	AuditFields
}

// Validate checks the structural invariants of a job.
func (j Job) Validate() error {
	if j.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if j.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}
