package models

import "time"

// AuditFields holds the common audit timestamps embedded in every model.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
