package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/emersonvf/centavo/internal/core/services"
	"github.com/emersonvf/centavo/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dtoCreateFixedExpense(name string, dueDay int) dto.CreateFixedExpenseRequest {
	return dto.CreateFixedExpenseRequest{
		Name:   name,
		Amount: decimal.NewFromFloat(120.50),
		DueDay: dueDay,
	}
}

func fixedExpense(id, name string, dueDay int) domain.FixedExpense {
	return domain.FixedExpense{
		FixedExpenseID: id,
		Name:           name,
		Amount:         decimal.NewFromFloat(75),
		DueDay:         dueDay,
		Category:       "Utilities",
	}
}

func TestMaterializeMonth_CreatesMissingBills(t *testing.T) {
	feRepo := new(MockFixedExpenseRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewFixedExpenseService(feRepo, txnRepo)

	today := time.Date(2025, time.June, 3, 9, 30, 0, 0, time.UTC)
	month := domain.MonthKey{Year: 2025, Month: time.June}

	feRepo.On("ListFixedExpenses", mock.Anything).Return([]domain.FixedExpense{
		fixedExpense("fe-1", "Cell Phone", 5),
		fixedExpense("fe-2", "Eletric", 10),
	}, nil)
	// fe-1 already has a bill this month, fe-2 does not.
	feOneBill := domain.Transaction{TransactionID: "existing"}
	txnRepo.On("FindBillForMonth", mock.Anything, "fe-1", month).Return(&feOneBill, nil)
	txnRepo.On("FindBillForMonth", mock.Anything, "fe-2", month).Return(nil, apperrors.ErrNotFound)
	txnRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.FixedExpenseID != nil && *txn.FixedExpenseID == "fe-2"
	})).Return(nil)

	result, err := svc.MaterializeMonth(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	require.Len(t, result.Transactions, 1)

	generated := result.Transactions[0]
	assert.Equal(t, "Eletric (Bill)", generated.Description)
	assert.Equal(t, "EXPENSE", generated.Type)
	assert.Equal(t, "PENDING", generated.Status)
	assert.True(t, generated.IsBill)
	assert.Equal(t, today, generated.Date)
	require.NotNil(t, generated.DueDate)
	assert.Equal(t, time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC), *generated.DueDate)
	txnRepo.AssertExpectations(t)
}

func TestMaterializeMonth_IdempotentWhenAllCovered(t *testing.T) {
	feRepo := new(MockFixedExpenseRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewFixedExpenseService(feRepo, txnRepo)

	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	month := domain.MonthKeyFromTime(today)

	feRepo.On("ListFixedExpenses", mock.Anything).Return([]domain.FixedExpense{
		fixedExpense("fe-1", "Cell Phone", 5),
	}, nil)
	existing := domain.Transaction{TransactionID: "bill-1"}
	txnRepo.On("FindBillForMonth", mock.Anything, "fe-1", month).Return(&existing, nil)

	result, err := svc.MaterializeMonth(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
	assert.Empty(t, result.Transactions)
	txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestMaterializeMonth_ClampsDueDay(t *testing.T) {
	tests := []struct {
		name    string
		today   time.Time
		dueDay  int
		wantDue time.Time
	}{
		{
			name:    "day 31 in June",
			today:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			dueDay:  31,
			wantDue: time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "day 29 in non-leap February",
			today:   time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			dueDay:  29,
			wantDue: time.Date(2025, time.February, 28, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "day 29 in leap February",
			today:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			dueDay:  29,
			wantDue: time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feRepo := new(MockFixedExpenseRepository)
			txnRepo := new(MockTransactionRepository)
			svc := services.NewFixedExpenseService(feRepo, txnRepo)

			feRepo.On("ListFixedExpenses", mock.Anything).Return([]domain.FixedExpense{
				fixedExpense("fe-1", "Rent", tt.dueDay),
			}, nil)
			txnRepo.On("FindBillForMonth", mock.Anything, "fe-1", mock.Anything).Return(nil, apperrors.ErrNotFound)
			txnRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)

			result, err := svc.MaterializeMonth(context.Background(), tt.today)

			require.NoError(t, err)
			require.Equal(t, 1, result.Generated)
			require.NotNil(t, result.Transactions[0].DueDate)
			assert.Equal(t, tt.wantDue, *result.Transactions[0].DueDate)
		})
	}
}

func TestMaterializeMonth_SkipsFailedDefinitionAndContinues(t *testing.T) {
	feRepo := new(MockFixedExpenseRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewFixedExpenseService(feRepo, txnRepo)

	today := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	feRepo.On("ListFixedExpenses", mock.Anything).Return([]domain.FixedExpense{
		fixedExpense("fe-bad", "Broken", 5),
		fixedExpense("fe-good", "Gas", 10),
	}, nil)
	txnRepo.On("FindBillForMonth", mock.Anything, "fe-bad", mock.Anything).Return(nil, apperrors.ErrNotFound)
	txnRepo.On("FindBillForMonth", mock.Anything, "fe-good", mock.Anything).Return(nil, apperrors.ErrNotFound)
	txnRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return *txn.FixedExpenseID == "fe-bad"
	})).Return(errors.New("connection reset"))
	txnRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return *txn.FixedExpenseID == "fe-good"
	})).Return(nil)

	result, err := svc.MaterializeMonth(context.Background(), today)

	// Partial success: the overall run still reports success with the
	// reduced count.
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, "Gas (Bill)", result.Transactions[0].Description)
}

func TestMaterializeMonth_DuplicateInsertIsBenign(t *testing.T) {
	feRepo := new(MockFixedExpenseRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewFixedExpenseService(feRepo, txnRepo)

	today := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	feRepo.On("ListFixedExpenses", mock.Anything).Return([]domain.FixedExpense{
		fixedExpense("fe-1", "Cell Phone", 5),
	}, nil)
	txnRepo.On("FindBillForMonth", mock.Anything, "fe-1", mock.Anything).Return(nil, apperrors.ErrNotFound)
	// A concurrent run inserted between the check and our insert.
	txnRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	result, err := svc.MaterializeMonth(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
}

func TestMaterializeMonth_EnumerationFailureFailsRun(t *testing.T) {
	feRepo := new(MockFixedExpenseRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewFixedExpenseService(feRepo, txnRepo)

	feRepo.On("ListFixedExpenses", mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.MaterializeMonth(context.Background(), time.Now())

	assert.Error(t, err)
}

func TestCreateFixedExpense_Validation(t *testing.T) {
	feRepo := new(MockFixedExpenseRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewFixedExpenseService(feRepo, txnRepo)

	_, err := svc.CreateFixedExpense(context.Background(), dtoCreateFixedExpense("", 10))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateFixedExpense(context.Background(), dtoCreateFixedExpense("Rent", 0))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateFixedExpense_DefaultsCategory(t *testing.T) {
	feRepo := new(MockFixedExpenseRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewFixedExpenseService(feRepo, txnRepo)

	feRepo.On("SaveFixedExpense", mock.Anything, mock.MatchedBy(func(def domain.FixedExpense) bool {
		return def.Category == "Fixed Expense"
	})).Return(nil)

	def, err := svc.CreateFixedExpense(context.Background(), dtoCreateFixedExpense("Rent", 1))

	require.NoError(t, err)
	assert.Equal(t, "Fixed Expense", def.Category)
	feRepo.AssertExpectations(t)
}
