package services_test

import (
	"context"
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updatedAt time.Time) error {
	args := m.Called(ctx, transactionID, status, updatedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindBillForMonth(ctx context.Context, fixedExpenseID string, month domain.MonthKey) (*domain.Transaction, error) {
	args := m.Called(ctx, fixedExpenseID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindIncomeByDescription(ctx context.Context, description string) (*domain.Transaction, error) {
	args := m.Called(ctx, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Mock FixedExpenseRepository ---

type MockFixedExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.FixedExpenseRepository = (*MockFixedExpenseRepository)(nil)

func (m *MockFixedExpenseRepository) SaveFixedExpense(ctx context.Context, def domain.FixedExpense) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}

func (m *MockFixedExpenseRepository) FindFixedExpenseByID(ctx context.Context, fixedExpenseID string) (*domain.FixedExpense, error) {
	args := m.Called(ctx, fixedExpenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedExpense), args.Error(1)
}

func (m *MockFixedExpenseRepository) ListFixedExpenses(ctx context.Context) ([]domain.FixedExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedExpense), args.Error(1)
}

func (m *MockFixedExpenseRepository) UpdateFixedExpense(ctx context.Context, def domain.FixedExpense) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}

func (m *MockFixedExpenseRepository) DeleteFixedExpense(ctx context.Context, fixedExpenseID string) error {
	args := m.Called(ctx, fixedExpenseID)
	return args.Error(0)
}

// --- Mock JobRepository ---

type MockJobRepository struct {
	mock.Mock
}

var _ portsrepo.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobsInRange(ctx context.Context, start, end time.Time) ([]domain.Job, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// --- Mock BillOrderRepository ---

type MockBillOrderRepository struct {
	mock.Mock
}

var _ portsrepo.BillOrderRepository = (*MockBillOrderRepository)(nil)

func (m *MockBillOrderRepository) GetBillOrder(ctx context.Context) (*domain.BillOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillOrder), args.Error(1)
}

func (m *MockBillOrderRepository) SaveBillOrder(ctx context.Context, order domain.BillOrder, expectedVersion int64) (*domain.BillOrder, error) {
	args := m.Called(ctx, order, expectedVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillOrder), args.Error(1)
}
