package stockrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/cache"
	"beltstock/internal/pkg/database"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/repository/historyrepo"
	"beltstock/internal/repository/stockrepo"
	"beltstock/migrations"
)

// noCache é um cache.Client que sempre erra (miss), para os testes baterem no banco.
type noCache struct{}

func (noCache) Get(context.Context, string) (string, error) { return "", cache.ErrCacheMiss }

func (noCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (noCache) Delete(context.Context, ...string) error { return nil }

func (noCache) GetInt(context.Context, string) (int, error) { return 0, cache.ErrCacheMiss }

func (noCache) Incr(context.Context, string, time.Duration) (int, error) { return 1, nil }

// setupTestDB sobe um PostgreSQL com testcontainers e aplica as migrações.
func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("Ignorando teste de integração no modo short")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err, "falha ao subir o container postgres")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewPostgresDB(dsn, 10*time.Second, database.DefaultPool)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Up(db))
	return db
}

func newStock(sizes []string, perSize int) (domain.Stock, []domain.StockMovement) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stock := domain.Stock{
		ID:          uuid.New().String(),
		Category:    "Cogged",
		Subcategory: "Bx",
		Quantity:    perSize * len(sizes),
		StockIn:     date,
		LastUpdated: date,
		SizeMode:    "single",
		Sizes:       sizes,
		Version:     1,
	}
	initial := domain.StockAdjustment{Sizes: sizes, PerSize: perSize, Date: date}.Movements(stock)
	return stock, initial
}

func TestStockRepository_CreateAdjustAndReadHistory(t *testing.T) {
	db := setupTestDB(t)
	log := logger.Nop()
	repo := stockrepo.NewStockRepository(db, noCache{}, 5*time.Second, time.Minute, log)
	history := historyrepo.NewHistoryRepository(db, 5*time.Second, log)
	ctx := context.Background()

	stock, initial := newStock([]string{"40", "42"}, 10)
	_, err := repo.Create(ctx, stock, initial)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"40", "42"}, got.Sizes)
	assert.Equal(t, 20, got.Quantity)

	updated, movements, err := repo.ApplyAdjustment(ctx, domain.StockAdjustment{
		StockID:  stock.ID,
		Sizes:    []string{"40"},
		PerSize:  -4,
		Date:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Expected: got.Version,
	})
	require.NoError(t, err)
	assert.Equal(t, 16, updated.Quantity)
	assert.Equal(t, 2, updated.Version)
	require.Len(t, movements, 1)

	rows, err := history.Find(ctx, domain.HistoryFilter{Category: "Cogged", Subcategory: "Bx"})
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, domain.Quantity(4), rows[0].StockOut)
}

func TestStockRepository_StaleVersionConflicts(t *testing.T) {
	db := setupTestDB(t)
	repo := stockrepo.NewStockRepository(db, noCache{}, 5*time.Second, time.Minute, logger.Nop())
	ctx := context.Background()

	stock, initial := newStock([]string{"40"}, 5)
	_, err := repo.Create(ctx, stock, initial)
	require.NoError(t, err)

	_, _, err = repo.ApplyAdjustment(ctx, domain.StockAdjustment{StockID: stock.ID, Sizes: []string{"40"}, PerSize: 1, Date: time.Now(), Expected: 7})

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestStockRepository_NeverNegative(t *testing.T) {
	db := setupTestDB(t)
	repo := stockrepo.NewStockRepository(db, noCache{}, 5*time.Second, time.Minute, logger.Nop())
	ctx := context.Background()

	stock, initial := newStock([]string{"40"}, 5)
	_, err := repo.Create(ctx, stock, initial)
	require.NoError(t, err)

	_, _, err = repo.ApplyAdjustment(ctx, domain.StockAdjustment{StockID: stock.ID, Sizes: []string{"40"}, PerSize: -6, Date: time.Now()})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestStockRepository_DuplicateLineConflicts(t *testing.T) {
	db := setupTestDB(t)
	repo := stockrepo.NewStockRepository(db, noCache{}, 5*time.Second, time.Minute, logger.Nop())
	ctx := context.Background()

	first, initial := newStock([]string{"40"}, 5)
	_, err := repo.Create(ctx, first, initial)
	require.NoError(t, err)

	second, _ := newStock([]string{"41"}, 1)
	_, err = repo.Create(ctx, second, nil)

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
