package mapping

import (
	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/models"
)

// ToModelFixedExpense converts a domain FixedExpense to its DB model.
func ToModelFixedExpense(d domain.FixedExpense) models.FixedExpense {
	return models.FixedExpense{
		FixedExpenseID: d.FixedExpenseID,
		Name:           d.Name,
		Amount:         d.Amount,
		DueDay:         d.DueDay,
		Category:       d.Category,
		AutoPay:        d.AutoPay,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixedExpense converts a DB model FixedExpense to its domain form.
func ToDomainFixedExpense(m models.FixedExpense) domain.FixedExpense {
	return domain.FixedExpense{
		FixedExpenseID: m.FixedExpenseID,
		Name:           m.Name,
		Amount:         m.Amount,
		DueDay:         m.DueDay,
		Category:       m.Category,
		AutoPay:        m.AutoPay,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
