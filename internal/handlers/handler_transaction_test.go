package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/emersonvf/centavo/internal/apperrors"
	"github.com/emersonvf/centavo/internal/core/domain"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
func (m *MockTransactionService) SettleTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ReopenTransaction(ctx context.Context, transactionID string, reason string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}
func (m *MockTransactionService) ListUpcomingBills(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	registerTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	now := time.Now().UTC()
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        decimal.NewFromFloat(52.30),
		Description:   "Groceries",
		Date:          now,
		Category:      "Uncategorized",
		Type:          domain.Expense,
		Status:        domain.Paid,
	}
	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Description == "Groceries" && req.Type == "EXPENSE"
	})).Return(created, nil).Once()

	body, _ := json.Marshal(gin.H{
		"description": "Groceries",
		"amount":      52.30,
		"type":        "EXPENSE",
		"date":        now.Format(time.RFC3339Nano),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal("PAID", resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidType() {
	body, _ := json.Marshal(gin.H{
		"description": "Groceries",
		"amount":      10,
		"type":        "TRANSFER",
		"date":        time.Now().UTC().Format(time.RFC3339Nano),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestSettleTransaction_NotFound() {
	suite.mockService.On("SettleTransaction", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/missing/settle", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestReopenTransaction_MissingReason() {
	body, _ := json.Marshal(gin.H{})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/txn-1/reopen", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ReopenTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetSummary() {
	suite.mockService.On("GetSummary", mock.Anything).Return(&dto.SummaryResponse{
		Income:         decimal.NewFromInt(1000),
		Expense:        decimal.NewFromInt(300),
		PendingExpense: decimal.NewFromInt(150),
		Balance:        decimal.NewFromInt(700),
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/summary", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(700)))
}

func (suite *TransactionHandlerTestSuite) TestListUpcomingBills_DefaultLimit() {
	suite.mockService.On("ListUpcomingBills", mock.Anything, 10).Return([]domain.Transaction{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/upcoming-bills", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
