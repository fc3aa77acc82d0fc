package transaction_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"beltstock/internal/api/transaction"
	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/service/transactionservice"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req transactionservice.CreateTransactionRequest) (domain.Transaction, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (transactionservice.Ledger, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(transactionservice.Ledger), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newMux(svc *MockTransactionService) *http.ServeMux {
	h := transaction.NewHandler(svc, logger.Nop())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/transactions", h.ListTransactionsHandler)
	mux.HandleFunc("POST /v1/transactions", h.CreateTransactionHandler)
	mux.HandleFunc("DELETE /v1/transactions/{id}", h.DeleteTransactionHandler)
	return mux
}

func TestListTransactionsHandler_Filters(t *testing.T) {
	svc := new(MockTransactionService)
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	svc.On("ListTransactions", mock.Anything, domain.TransactionFilter{Search: "bx", Type: domain.TransactionOut, Date: &day}).
		Return(transactionservice.Ledger{Transactions: []domain.Transaction{}, Summary: domain.TransactionSummary{TotalOut: 3}}, nil)

	rec := httptest.NewRecorder()
	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/transactions?search=bx&type=out&date=2024-03-05", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalOut":3`)
}

func TestCreateTransactionHandler_NegativeBalance(t *testing.T) {
	svc := new(MockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(domain.Transaction{}, apperror.NewValidationError("saldo negativo"))

	body := `{"productId":"` + uuid.New().String() + `","type":"OUT","quantity":50,"reason":"venda"}`
	rec := httptest.NewRecorder()
	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTransactionHandler(t *testing.T) {
	svc := new(MockTransactionService)
	id := uuid.New().String()
	svc.On("DeleteTransaction", mock.Anything, id).Return(nil)

	rec := httptest.NewRecorder()
	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/transactions/"+id, nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
