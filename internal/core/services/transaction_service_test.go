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

func pendingBill(id string, amount float64, due time.Time) domain.Transaction {
	dueDate := due
	return domain.Transaction{
		TransactionID: id,
		Amount:        decimal.NewFromFloat(amount),
		Description:   id,
		Date:          due.AddDate(0, 0, -10),
		DueDate:       &dueDate,
		Type:          domain.Expense,
		Status:        domain.Pending,
		IsBill:        true,
	}
}

func TestCreateTransaction_DefaultsStatusAndCategory(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	txnRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)

	txn, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Description: "Groceries",
		Amount:      decimal.NewFromFloat(52.30),
		Type:        "EXPENSE",
		Date:        time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Paid, txn.Status)
	assert.Equal(t, "Uncategorized", txn.Category)
	assert.NotEmpty(t, txn.TransactionID)
}

func TestCreateTransaction_RejectsNegativeAmount(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	_, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Description: "Bad",
		Amount:      decimal.NewFromFloat(-10),
		Type:        "EXPENSE",
		Date:        time.Now(),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestSettleTransaction(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	pending := pendingBill("txn-1", 80, time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC))
	txnRepo.On("FindTransactionByID", mock.Anything, "txn-1").Return(&pending, nil)
	txnRepo.On("UpdateTransactionStatus", mock.Anything, "txn-1", domain.Paid, mock.Anything).Return(nil)

	txn, err := svc.SettleTransaction(context.Background(), "txn-1")

	require.NoError(t, err)
	assert.Equal(t, domain.Paid, txn.Status)
	txnRepo.AssertExpectations(t)
}

func TestSettleTransaction_AlreadySettled(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	paid := domain.Transaction{TransactionID: "txn-1", Status: domain.Paid, Type: domain.Expense}
	txnRepo.On("FindTransactionByID", mock.Anything, "txn-1").Return(&paid, nil)

	_, err := svc.SettleTransaction(context.Background(), "txn-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	txnRepo.AssertNotCalled(t, "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleTransaction_NotFound(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	txnRepo.On("FindTransactionByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.SettleTransaction(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReopenTransaction(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	paid := domain.Transaction{TransactionID: "txn-1", Status: domain.Paid, Type: domain.Expense}
	txnRepo.On("FindTransactionByID", mock.Anything, "txn-1").Return(&paid, nil)
	txnRepo.On("UpdateTransactionStatus", mock.Anything, "txn-1", domain.Pending, mock.Anything).Return(nil)

	txn, err := svc.ReopenTransaction(context.Background(), "txn-1", "paid against the wrong bill")

	require.NoError(t, err)
	assert.Equal(t, domain.Pending, txn.Status)
	txnRepo.AssertExpectations(t)
}

func TestReopenTransaction_RequiresReason(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	_, err := svc.ReopenTransaction(context.Background(), "txn-1", "")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	txnRepo.AssertNotCalled(t, "FindTransactionByID", mock.Anything, mock.Anything)
}

func TestReopenTransaction_NotSettled(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	pending := pendingBill("txn-1", 50, time.Now())
	txnRepo.On("FindTransactionByID", mock.Anything, "txn-1").Return(&pending, nil)

	_, err := svc.ReopenTransaction(context.Background(), "txn-1", "mistake")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetSummary_PendingExpensesDoNotReduceBalance(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	txnRepo.On("ListTransactions", mock.Anything).Return([]domain.Transaction{
		{Amount: decimal.NewFromFloat(1000), Type: domain.Income, Status: domain.Paid},
		{Amount: decimal.NewFromFloat(300), Type: domain.Expense, Status: domain.Paid},
		{Amount: decimal.NewFromFloat(150), Type: domain.Expense, Status: domain.Pending},
	}, nil)

	summary, err := svc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.True(t, summary.Income.Equal(decimal.NewFromFloat(1000)), "income %s", summary.Income)
	assert.True(t, summary.Expense.Equal(decimal.NewFromFloat(300)), "expense %s", summary.Expense)
	assert.True(t, summary.PendingExpense.Equal(decimal.NewFromFloat(150)), "pending %s", summary.PendingExpense)
	assert.True(t, summary.Balance.Equal(decimal.NewFromFloat(700)), "balance %s", summary.Balance)
}

func TestListUpcomingBills_AppliesManualOrder(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	june := func(day int) time.Time {
		return time.Date(2025, time.June, day, 12, 0, 0, 0, time.UTC)
	}
	txnRepo.On("ListTransactions", mock.Anything).Return([]domain.Transaction{
		pendingBill("bill-a", 10, june(5)),
		pendingBill("bill-b", 20, june(10)),
		pendingBill("bill-c", 30, june(15)),
	}, nil)
	orderRepo.On("GetBillOrder", mock.Anything).Return(&domain.BillOrder{
		TransactionIDs: []string{"bill-c", "bill-a"},
		Version:        3,
	}, nil)

	bills, err := svc.ListUpcomingBills(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, "bill-c", bills[0].TransactionID)
	assert.Equal(t, "bill-a", bills[1].TransactionID)
	assert.Equal(t, "bill-b", bills[2].TransactionID)
}

func TestListUpcomingBills_PreferenceFailureDegradesToDateOrder(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewTransactionService(txnRepo, orderRepo)

	june := func(day int) time.Time {
		return time.Date(2025, time.June, day, 12, 0, 0, 0, time.UTC)
	}
	txnRepo.On("ListTransactions", mock.Anything).Return([]domain.Transaction{
		pendingBill("bill-b", 20, june(10)),
		pendingBill("bill-a", 10, june(5)),
	}, nil)
	orderRepo.On("GetBillOrder", mock.Anything).Return(nil, errors.New("db down"))

	bills, err := svc.ListUpcomingBills(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "bill-a", bills[0].TransactionID)
	assert.Equal(t, "bill-b", bills[1].TransactionID)
}
