package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is the DB representation of a single delivery job.
type Job struct {
	JobID       string          `db:"job_id"`
	Date        time.Time       `db:"date"`
	Price       decimal.Decimal `db:"price"`
	Origin      string          `db:"origin"`
	Destination string          `db:"destination"`
	Notes       string          `db:"notes"`
	AuditFields
}
