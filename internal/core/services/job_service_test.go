package services_test

import (
	"context"
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

func deliveryJob(id string, date time.Time, price float64) domain.Job {
	return domain.Job{
		JobID:       id,
		Date:        date,
		Price:       decimal.NewFromFloat(price),
		Origin:      "Centro",
		Destination: "Jardins",
	}
}

func TestImportPeriod(t *testing.T) {
	jobRepo := new(MockJobRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewJobService(jobRepo, txnRepo)

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	description := "My Jobs 2025-06-01 - 2025-06-15"

	jobRepo.On("ListJobsInRange", mock.Anything, start, end).Return([]domain.Job{
		deliveryJob("job-1", start.AddDate(0, 0, 2), 60),
		deliveryJob("job-2", start.AddDate(0, 0, 9), 40),
	}, nil)
	txnRepo.On("FindIncomeByDescription", mock.Anything, description).Return(nil, apperrors.ErrNotFound)
	txnRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Income &&
			txn.Status == domain.Paid &&
			txn.Description == description &&
			txn.Date.Equal(end)
	})).Return(nil)

	result, err := svc.ImportPeriod(context.Background(), dto.ImportPeriodRequest{
		StartDate: start,
		EndDate:   end,
	})

	require.NoError(t, err)
	// 100 gross, 7% operational cost withheld.
	assert.True(t, result.Subtotal.Equal(decimal.NewFromFloat(100)), "subtotal %s", result.Subtotal)
	assert.True(t, result.OperationalCost.Equal(decimal.NewFromFloat(7)), "cost %s", result.OperationalCost)
	assert.True(t, result.TotalNet.Equal(decimal.NewFromFloat(93)), "net %s", result.TotalNet)
	assert.Equal(t, description, result.Transaction.Description)
	txnRepo.AssertExpectations(t)
}

func TestImportPeriod_AlreadyImported(t *testing.T) {
	jobRepo := new(MockJobRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewJobService(jobRepo, txnRepo)

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	jobRepo.On("ListJobsInRange", mock.Anything, start, end).Return([]domain.Job{
		deliveryJob("job-1", start, 50),
	}, nil)
	prior := domain.Transaction{TransactionID: "txn-prior", Type: domain.Income}
	txnRepo.On("FindIncomeByDescription", mock.Anything, mock.Anything).Return(&prior, nil)

	_, err := svc.ImportPeriod(context.Background(), dto.ImportPeriodRequest{
		StartDate: start,
		EndDate:   end,
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestImportPeriod_EmptyPeriod(t *testing.T) {
	jobRepo := new(MockJobRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewJobService(jobRepo, txnRepo)

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	jobRepo.On("ListJobsInRange", mock.Anything, start, end).Return([]domain.Job{}, nil)

	_, err := svc.ImportPeriod(context.Background(), dto.ImportPeriodRequest{
		StartDate: start,
		EndDate:   end,
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestImportPeriod_InvertedRange(t *testing.T) {
	jobRepo := new(MockJobRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewJobService(jobRepo, txnRepo)

	_, err := svc.ImportPeriod(context.Background(), dto.ImportPeriodRequest{
		StartDate: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	jobRepo.AssertNotCalled(t, "ListJobsInRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBillOrder_VersionConflict(t *testing.T) {
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewBillOrderService(orderRepo)

	orderRepo.On("SaveBillOrder", mock.Anything, mock.Anything, int64(2)).Return(nil, apperrors.ErrConflict)

	_, err := svc.UpdateBillOrder(context.Background(), dto.UpdateBillOrderRequest{
		TransactionIDs:  []string{"bill-a", "bill-b"},
		ExpectedVersion: 2,
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateBillOrder(t *testing.T) {
	orderRepo := new(MockBillOrderRepository)
	svc := services.NewBillOrderService(orderRepo)

	saved := domain.BillOrder{TransactionIDs: []string{"bill-a"}, Version: 3}
	orderRepo.On("SaveBillOrder", mock.Anything, mock.MatchedBy(func(order domain.BillOrder) bool {
		return len(order.TransactionIDs) == 1 && order.TransactionIDs[0] == "bill-a"
	}), int64(2)).Return(&saved, nil)

	order, err := svc.UpdateBillOrder(context.Background(), dto.UpdateBillOrderRequest{
		TransactionIDs:  []string{"bill-a"},
		ExpectedVersion: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), order.Version)
}
