package mapping

import (
	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/models"
)

// ToModelJob converts a domain Job to its DB model.
func ToModelJob(d domain.Job) models.Job {
	return models.Job{
		JobID:       d.JobID,
		Date:        d.Date,
		Price:       d.Price,
		Origin:      d.Origin,
		Destination: d.Destination,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJob converts a DB model Job to its domain form.
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:       m.JobID,
		Date:        m.Date,
		Price:       m.Price,
		Origin:      m.Origin,
		Destination: m.Destination,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
