package dashboardservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"beltstock/internal/domain"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/service/dashboardservice"
)

type MockStockLister struct {
	mock.Mock
}

func (m *MockStockLister) FindAll(ctx context.Context) ([]domain.Stock, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Stock), args.Error(1)
}

func TestStats(t *testing.T) {
	lister := new(MockStockLister)
	lister.On("FindAll", mock.Anything).Return([]domain.Stock{
		{Category: "Cogged", Subcategory: "Bx", Quantity: 199},
		{Category: "Cogged", Subcategory: "Ax", Quantity: 200},
		{Category: "PK", Subcategory: "4px", Quantity: 500, Status: &domain.StatusThresholds{High: 1000}},
		{Category: "PK", Subcategory: "Bx", Quantity: 499},
	}, nil)

	stats, err := dashboardservice.NewService(lister, logger.Nop()).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1398, stats.TotalStock)
	assert.Equal(t, 1, stats.LowStockItems.Count)
	assert.Equal(t, 2, stats.MediumStockItems.Count)
	// Limites próprios não contam no dashboard
	assert.Equal(t, 1, stats.HighStockItems.Count)
	assert.Equal(t, []string{"Cogged", "PK"}, stats.Categories.Items)
	assert.Equal(t, []string{"4px", "Ax", "Bx"}, stats.Subcategories.Items)
}

func TestStats_Empty(t *testing.T) {
	stats := dashboardservice.Summarize(nil)

	assert.Zero(t, stats.TotalStock)
	assert.NotNil(t, stats.LowStockItems.Items)
	assert.Equal(t, 0, stats.Categories.Count)
}

func TestStats_RepositoryError(t *testing.T) {
	lister := new(MockStockLister)
	lister.On("FindAll", mock.Anything).Return([]domain.Stock(nil), errors.New("db down"))

	_, err := dashboardservice.NewService(lister, logger.Nop()).Stats(context.Background())

	assert.Error(t, err)
}
