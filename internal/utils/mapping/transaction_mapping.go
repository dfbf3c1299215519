package mapping

import (
	"fmt"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/models"
)

// ToModelTransaction converts a domain Transaction to its DB model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var monthKey *string
	if d.MonthKey != nil {
		s := d.MonthKey.String()
		monthKey = &s
	}
	return models.Transaction{
		TransactionID:  d.TransactionID,
		Amount:         d.Amount,
		Description:    d.Description,
		Date:           d.Date,
		DueDate:        d.DueDate,
		Category:       d.Category,
		Type:           models.TransactionType(d.Type),
		Status:         models.TransactionStatus(d.Status),
		IsBill:         d.IsBill,
		FixedExpenseID: d.FixedExpenseID,
		MonthKey:       monthKey,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a DB model Transaction to its domain form.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	var monthKey *domain.MonthKey
	if m.MonthKey != nil {
		mk, err := domain.ParseMonthKey(*m.MonthKey)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("invalid month key %q on transaction %s: %w", *m.MonthKey, m.TransactionID, err)
		}
		monthKey = &mk
	}
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		Amount:         m.Amount,
		Description:    m.Description,
		Date:           m.Date,
		DueDate:        m.DueDate,
		Category:       m.Category,
		Type:           domain.TransactionType(m.Type),
		Status:         domain.TransactionStatus(m.Status),
		IsBill:         m.IsBill,
		FixedExpenseID: m.FixedExpenseID,
		MonthKey:       monthKey,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}, nil
}
