package mapping

import (
	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/models"
)

// ToModelGoal converts a domain Goal to its DB model.
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:        d.GoalID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		TargetDate:    d.TargetDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoal converts a DB model Goal to its domain form.
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:        m.GoalID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
