package mapping

import (
	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/models"
)

// ToModelInvestment converts a domain Investment to its DB model.
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID: d.InvestmentID,
		Name:         d.Name,
		Type:         d.Type,
		Amount:       d.Amount,
		Yield:        d.Yield,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestment converts a DB model Investment to its domain form.
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID: m.InvestmentID,
		Name:         m.Name,
		Type:         m.Type,
		Amount:       m.Amount,
		Yield:        m.Yield,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
