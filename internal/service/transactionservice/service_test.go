package transactionservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/repository/transactionrepo"
	"beltstock/internal/service/transactionservice"
)

// MockTransactionRepository executa o BalanceFunc sobre um saldo fixo.
type MockTransactionRepository struct {
	mock.Mock
	balance int
}

func (m *MockTransactionRepository) Record(ctx context.Context, productID string, apply transactionrepo.BalanceFunc) (domain.Transaction, error) {
	m.Called(ctx, productID)
	t, err := apply(m.balance)
	if err != nil {
		return domain.Transaction{}, err
	}
	t.ProductID = productID
	return t, nil
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestApply(t *testing.T) {
	cases := []struct {
		name        string
		kind        domain.TransactionType
		prev, qty   int
		delta, next int
	}{
		{"entrada", domain.TransactionIn, 10, 5, 5, 15},
		{"saída", domain.TransactionOut, 10, 4, 4, 6},
		{"ajuste para cima", domain.TransactionAdjustment, 10, 25, 15, 25},
		{"ajuste para baixo", domain.TransactionAdjustment, 10, 3, -7, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			delta, next, err := transactionservice.Apply(tc.kind, tc.prev, tc.qty)
			require.NoError(t, err)
			assert.Equal(t, tc.delta, delta)
			assert.Equal(t, tc.next, next)
		})
	}
}

func TestApply_RejectsNegativeBalance(t *testing.T) {
	_, _, err := transactionservice.Apply(domain.TransactionOut, 3, 4)

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCreateTransaction_Adjustment(t *testing.T) {
	repo := &MockTransactionRepository{balance: 12}
	productID := uuid.New().String()
	repo.On("Record", mock.Anything, productID).Return()

	svc := transactionservice.NewService(repo, logger.Nop())
	tx, err := svc.CreateTransaction(context.Background(), transactionservice.CreateTransactionRequest{
		ProductID: productID,
		Type:      domain.TransactionAdjustment,
		Quantity:  8,
		Reason:    "contagem física",
		Date:      "2024-03-05",
	})

	require.NoError(t, err)
	assert.Equal(t, -4, tx.Quantity)
	assert.Equal(t, 12, tx.PreviousQuantity)
	assert.Equal(t, 8, tx.NewQuantity)
	assert.Equal(t, 2024, tx.Date.Year())
}

func TestCreateTransaction_Validation(t *testing.T) {
	svc := transactionservice.NewService(&MockTransactionRepository{}, logger.Nop())
	productID := uuid.New().String()

	cases := []transactionservice.CreateTransactionRequest{
		{ProductID: "x", Type: domain.TransactionIn, Quantity: 1, Reason: "r"},
		{ProductID: productID, Type: "MOVE", Quantity: 1, Reason: "r"},
		{ProductID: productID, Type: domain.TransactionIn, Quantity: 0, Reason: "r"},
		{ProductID: productID, Type: domain.TransactionIn, Quantity: 1, Reason: "  "},
		{ProductID: productID, Type: domain.TransactionIn, Quantity: 1, Reason: "r", Date: "ontem"},
	}
	for _, req := range cases {
		_, err := svc.CreateTransaction(context.Background(), req)
		var vErr *apperror.ValidationError
		assert.ErrorAs(t, err, &vErr, "%+v", req)
	}
}

func TestListTransactions_Summary(t *testing.T) {
	repo := &MockTransactionRepository{}
	repo.On("FindAll", mock.Anything, domain.TransactionFilter{}).Return([]domain.Transaction{
		{Type: domain.TransactionIn, Quantity: 10},
		{Type: domain.TransactionOut, Quantity: 3},
		{Type: domain.TransactionAdjustment, Quantity: -4},
		{Type: domain.TransactionAdjustment, Quantity: 2},
	}, nil)

	ledger, err := transactionservice.NewService(repo, logger.Nop()).ListTransactions(context.Background(), domain.TransactionFilter{})

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionSummary{TotalIn: 10, TotalOut: 3, TotalAdjustments: 6}, ledger.Summary)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	repo := &MockTransactionRepository{}
	id := uuid.New().String()
	repo.On("Delete", mock.Anything, id).Return(apperror.NewNotFoundError("não existe"))

	err := transactionservice.NewService(repo, logger.Nop()).DeleteTransaction(context.Background(), id)

	assert.True(t, apperror.IsNotFound(err))
}
