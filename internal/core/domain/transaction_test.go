package domain_test

import (
	"testing"
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()
	fixedID := "fe-1"

	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid paid expense",
			tx: domain.Transaction{
				TransactionID: "txn-1",
				Amount:        decimal.NewFromFloat(42.50),
				Description:   "groceries",
				Date:          now,
				Type:          domain.Expense,
				Status:        domain.Paid,
			},
			wantErr: false,
		},
		{
			name: "valid bill with fixed expense reference",
			tx: domain.Transaction{
				TransactionID:  "txn-2",
				Amount:         decimal.NewFromFloat(75),
				Description:    "Cell Phone (Bill)",
				Date:           now,
				Type:           domain.Expense,
				Status:         domain.Pending,
				IsBill:         true,
				FixedExpenseID: &fixedID,
			},
			wantErr: false,
		},
		{
			name: "negative amount",
			tx: domain.Transaction{
				TransactionID: "txn-3",
				Amount:        decimal.NewFromFloat(-1),
				Description:   "bad",
				Date:          now,
				Type:          domain.Expense,
				Status:        domain.Paid,
			},
			wantErr: true,
			errMsg:  "amount must not be negative",
		},
		{
			name: "unknown type",
			tx: domain.Transaction{
				TransactionID: "txn-4",
				Amount:        decimal.NewFromFloat(1),
				Description:   "bad",
				Date:          now,
				Type:          domain.TransactionType("TRANSFER"),
				Status:        domain.Paid,
			},
			wantErr: true,
			errMsg:  "unknown transaction type",
		},
		{
			name: "bill without fixed expense reference",
			tx: domain.Transaction{
				TransactionID: "txn-5",
				Amount:        decimal.NewFromFloat(1),
				Description:   "orphan bill",
				Date:          now,
				Type:          domain.Expense,
				Status:        domain.Pending,
				IsBill:        true,
			},
			wantErr: true,
			errMsg:  "must reference a fixed expense",
		},
		{
			name: "missing description",
			tx: domain.Transaction{
				TransactionID: "txn-6",
				Amount:        decimal.NewFromFloat(1),
				Date:          now,
				Type:          domain.Income,
				Status:        domain.Paid,
			},
			wantErr: true,
			errMsg:  "description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_EffectiveDueDate(t *testing.T) {
	date := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	withDue := domain.Transaction{Date: date, DueDate: &due}
	withoutDue := domain.Transaction{Date: date}

	assert.Equal(t, due, withDue.EffectiveDueDate())
	assert.Equal(t, date, withoutDue.EffectiveDueDate())
}

func TestFixedExpense_Validate(t *testing.T) {
	valid := domain.FixedExpense{Name: "Eletric", Amount: decimal.NewFromFloat(60.71), DueDay: 10}
	assert.NoError(t, valid.Validate())

	badDay := domain.FixedExpense{Name: "X", Amount: decimal.NewFromInt(1), DueDay: 32}
	assert.Error(t, badDay.Validate())

	zeroDay := domain.FixedExpense{Name: "X", Amount: decimal.NewFromInt(1), DueDay: 0}
	assert.Error(t, zeroDay.Validate())
}
