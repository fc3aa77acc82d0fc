package stockrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/cache"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/pkg/metrics"
)

// Chaves de cache das linhas de estoque.
const (
	stockCacheKey  = "stock:%s"
	stocksCacheKey = "stocks:all"
)

const uniqueViolation = "23505"

const stockColumns = `id, category, subcategory, quantity, stock_in, last_updated, size_mode, sizes,
	size_prefix, status_high, status_medium, status_low, initial_quantity, version`

// StockRepository acessa as tabelas stocks e stock_history. Toda alteração de quantidade grava
// o histórico na mesma transação e usa controle de concorrência otimista (coluna version).
type StockRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewStockRepository cria e retorna uma nova instância do Repositório de Estoque.
func NewStockRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *StockRepository {
	return &StockRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// rowScanner é satisfeito por *sql.Row e *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStock(row rowScanner) (domain.Stock, error) {
	var (
		s                 domain.Stock
		sizes             []string
		high, medium, low int
		initial           sql.NullInt64
	)
	err := row.Scan(&s.ID, &s.Category, &s.Subcategory, &s.Quantity, &s.StockIn, &s.LastUpdated, &s.SizeMode,
		pq.Array(&sizes), &s.SizePrefix, &high, &medium, &low, &initial, &s.Version)
	if err != nil {
		return domain.Stock{}, err
	}

	s.Sizes = sizes
	if s.Sizes == nil {
		s.Sizes = []string{}
	}
	if t := (domain.StatusThresholds{High: high, Medium: medium, Low: low}); !t.IsZero() {
		s.Status = &t
	}
	if initial.Valid {
		v := int(initial.Int64)
		s.InitialQuantity = &v
	}
	return s, nil
}

func thresholds(t *domain.StatusThresholds) (int, int, int) {
	if t == nil {
		return 0, 0, 0
	}
	return t.High, t.Medium, t.Low
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

// Create insere a linha de estoque e os lançamentos de entrada inicial numa única transação.
func (r *StockRepository) Create(ctx context.Context, stock domain.Stock, initial []domain.StockMovement) (domain.Stock, error) {
	r.logger.Debug("Iniciando criação de linha de estoque no repositório.", map[string]interface{}{
		"category":    stock.Category,
		"subcategory": stock.Subcategory,
		"sizes":       len(stock.Sizes),
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação de criação de estoque.", err)
		return domain.Stock{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	// 1. Linha de estoque
	high, medium, low := thresholds(stock.Status)
	query := `INSERT INTO stocks (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(ctxTimeout, query,
		stock.ID, stock.Category, stock.Subcategory, stock.Quantity, stock.StockIn, stock.LastUpdated, stock.SizeMode,
		pq.Array(stock.Sizes), stock.SizePrefix, high, medium, low, nullableInt(stock.InitialQuantity), stock.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn("Linha de estoque duplicada.", map[string]interface{}{"category": stock.Category, "subcategory": stock.Subcategory})
			return domain.Stock{}, apperror.NewConflictError(fmt.Sprintf("Já existe estoque para %s / %s.", stock.Category, stock.Subcategory))
		}
		r.logger.Error("Falha ao inserir linha de estoque.", err)
		return domain.Stock{}, apperror.NewDBError("Falha ao inserir linha de estoque", err)
	}

	// 2. Histórico de entrada inicial (um lançamento por tamanho)
	if err := insertMovements(ctxTimeout, tx, initial); err != nil {
		r.logger.Error("Falha ao inserir histórico inicial.", err)
		return domain.Stock{}, apperror.NewDBError("Falha ao inserir histórico inicial", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de criação de estoque.", err)
		return domain.Stock{}, apperror.NewDBError("Falha ao commitar transação", err)
	}

	r.invalidate(ctx, stock.ID)
	r.logger.Info("Linha de estoque criada com sucesso.", map[string]interface{}{"id": stock.ID, "quantity": stock.Quantity})
	return stock, nil
}

// FindAll lista as linhas de estoque (mais recentes primeiro), com cache-aside.
func (r *StockRepository) FindAll(ctx context.Context) ([]domain.Stock, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var stocks []domain.Stock
	if r.readCache(ctxTimeout, "stocks", stocksCacheKey, &stocks) {
		return stocks, nil
	}

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+stockColumns+` FROM stocks ORDER BY stock_in DESC, category, subcategory`)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de estoque.", err)
		return nil, apperror.NewDBError("Falha ao listar estoque", err)
	}
	defer rows.Close()

	stocks = []domain.Stock{}
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear linha de estoque na iteração.", err)
			return nil, apperror.NewDBError("Falha ao ler linha de estoque", err)
		}
		stocks = append(stocks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Erro após iteração das linhas de estoque", err)
	}

	r.writeCache(ctxTimeout, stocksCacheKey, stocks)
	return stocks, nil
}

// FindByID busca uma linha de estoque, com cache-aside.
func (r *StockRepository) FindByID(ctx context.Context, id string) (domain.Stock, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(stockCacheKey, id)
	var stock domain.Stock
	if r.readCache(ctxTimeout, "stock", key, &stock) {
		return stock, nil
	}

	stock, err := scanStock(r.DB.QueryRowContext(ctxTimeout, `SELECT `+stockColumns+` FROM stocks WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Linha de estoque não encontrada.", map[string]interface{}{"id": id})
		return domain.Stock{}, apperror.NewNotFoundError(fmt.Sprintf("Estoque com ID %s não existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar linha de estoque no DB.", err)
		return domain.Stock{}, apperror.NewDBError("Falha ao buscar estoque", err)
	}

	r.writeCache(ctxTimeout, key, stock)
	return stock, nil
}

// Update grava os metadados editáveis (categoria, subcategoria, prefixo, limites) com OCC.
// Renomear a linha também renomeia o histórico dela, para o registro continuar agrupando certo.
func (r *StockRepository) Update(ctx context.Context, stock domain.Stock) (domain.Stock, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return domain.Stock{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	high, medium, low := thresholds(stock.Status)
	now := time.Now().UTC()
	const query = `
		UPDATE stocks
		SET category = $1, subcategory = $2, size_prefix = $3, status_high = $4, status_medium = $5,
		    status_low = $6, last_updated = $7, version = version + 1
		WHERE id = $8 AND version = $9`
	result, err := tx.ExecContext(ctxTimeout, query,
		stock.Category, stock.Subcategory, stock.SizePrefix, high, medium, low, now, stock.ID, stock.Version)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Stock{}, apperror.NewConflictError(fmt.Sprintf("Já existe estoque para %s / %s.", stock.Category, stock.Subcategory))
		}
		r.logger.Error("Falha ao atualizar linha de estoque.", err)
		return domain.Stock{}, apperror.NewDBError("Falha ao atualizar estoque", err)
	}
	if err := r.checkVersion(result, stock.ID, stock.Version); err != nil {
		return domain.Stock{}, err
	}

	const historyQuery = `UPDATE stock_history SET category = $1, subcategory = $2 WHERE stock_id = $3`
	if _, err := tx.ExecContext(ctxTimeout, historyQuery, stock.Category, stock.Subcategory, stock.ID); err != nil {
		r.logger.Error("Falha ao renomear histórico da linha de estoque.", err)
		return domain.Stock{}, apperror.NewDBError("Falha ao atualizar histórico", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Stock{}, apperror.NewDBError("Falha ao commitar transação", err)
	}

	stock.Version++
	stock.LastUpdated = now
	r.invalidate(ctx, stock.ID)
	return stock, nil
}

// Delete remove a linha de estoque e, em cascata, o histórico dela.
func (r *StockRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover linha de estoque.", err)
		return apperror.NewDBError("Falha ao remover estoque", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Estoque com ID %s não existe.", id))
	}

	r.invalidate(ctx, id)
	r.logger.Info("Linha de estoque removida.", map[string]interface{}{"id": id})
	return nil
}

// ApplyAdjustment aplica um ajuste de quantidade por tamanho, utilizando transação e
// controle de concorrência otimista (OCC). Grava um lançamento de histórico por tamanho.
func (r *StockRepository) ApplyAdjustment(ctx context.Context, adj domain.StockAdjustment) (domain.Stock, []domain.StockMovement, error) {
	r.logger.Debug("Iniciando ajuste de estoque no repositório.", map[string]interface{}{
		"stock_id": adj.StockID,
		"sizes":    adj.Sizes,
		"per_size": adj.PerSize,
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação para ajuste de estoque.", err)
		return domain.Stock{}, nil, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	// 1. Ler a linha com FOR UPDATE (bloqueia a linha na transação)
	current, err := scanStock(tx.QueryRowContext(ctxTimeout, `SELECT `+stockColumns+` FROM stocks WHERE id = $1 FOR UPDATE`, adj.StockID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Stock{}, nil, apperror.NewNotFoundError(fmt.Sprintf("Estoque com ID %s não existe.", adj.StockID))
	}
	if err != nil {
		r.logger.Error("Falha ao selecionar linha de estoque para ajuste.", err)
		return domain.Stock{}, nil, apperror.NewDBError("Falha ao buscar estoque para ajuste", err)
	}

	// 2. A versão lida pelo serviço precisa ser a atual: o saldo por tamanho foi validado sobre ela.
	if adj.Expected > 0 && current.Version != adj.Expected {
		r.logger.Warn("Falha no controle de concorrência otimista (OCC). Versão do registro desatualizada.", map[string]interface{}{
			"stock_id":         adj.StockID,
			"expected_version": adj.Expected,
			"current_version":  current.Version,
		})
		return domain.Stock{}, nil, apperror.NewConflictError("O estoque foi modificado por outra operação. Tente novamente.")
	}

	// 3. A quantidade total nunca fica negativa
	newQuantity := current.Quantity + adj.Delta()
	if newQuantity < 0 {
		r.logger.Warn("Tentativa de ajustar estoque para quantidade negativa.", map[string]interface{}{
			"stock_id":         adj.StockID,
			"current_quantity": current.Quantity,
			"delta":            adj.Delta(),
		})
		return domain.Stock{}, nil, apperror.NewValidationError("Ajuste resultaria em quantidade de estoque negativa.")
	}

	// 4. Atualizar com OCC
	now := time.Now().UTC()
	const queryUpdate = `
		UPDATE stocks SET quantity = $1, version = version + 1, last_updated = $2
		WHERE id = $3 AND version = $4`
	result, err := tx.ExecContext(ctxTimeout, queryUpdate, newQuantity, now, adj.StockID, current.Version)
	if err != nil {
		r.logger.Error("Falha ao atualizar quantidade de estoque.", err)
		return domain.Stock{}, nil, apperror.NewDBError("Falha ao atualizar estoque", err)
	}
	if err := r.checkVersion(result, adj.StockID, current.Version); err != nil {
		return domain.Stock{}, nil, err
	}

	// 5. Histórico: um lançamento por tamanho
	movements := adj.Movements(current)
	if err := insertMovements(ctxTimeout, tx, movements); err != nil {
		r.logger.Error("Falha ao inserir histórico do ajuste.", err)
		return domain.Stock{}, nil, apperror.NewDBError("Falha ao inserir histórico", err)
	}

	// 6. Commit
	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de ajuste de estoque.", err)
		return domain.Stock{}, nil, apperror.NewDBError("Falha ao commitar transação", err)
	}

	current.Quantity = newQuantity
	current.Version++
	current.LastUpdated = now
	r.invalidate(ctx, adj.StockID)

	r.logger.Info("Estoque ajustado com sucesso.", map[string]interface{}{
		"stock_id":     adj.StockID,
		"new_quantity": newQuantity,
		"new_version":  current.Version,
	})
	return current, movements, nil
}

func insertMovements(ctx context.Context, tx *sql.Tx, movements []domain.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stock_history (id, stock_id, category, subcategory, size, stock_in, stock_out, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range movements {
		if _, err := stmt.ExecContext(ctx, m.ID, m.StockID, m.Category, m.Subcategory, string(m.Size),
			m.StockIn.Int(), m.StockOut.Int(), m.Date); err != nil {
			return err
		}
	}
	return nil
}

func (r *StockRepository) checkVersion(result sql.Result, id string, version int) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas.", err)
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Falha no controle de concorrência otimista (OCC). Versão do registro desatualizada.", map[string]interface{}{
			"stock_id":         id,
			"expected_version": version,
		})
		return apperror.NewConflictError("O estoque foi modificado por outra operação. Tente novamente.")
	}
	return nil
}

// --- Cache ---

func (r *StockRepository) readCache(ctx context.Context, resource, key string, dest interface{}) bool {
	hit, err := cache.GetJSON(ctx, r.Cache, key, dest)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues(resource, "error").Inc()
		r.logger.Warn("Falha ao ler do cache, consultando o DB.", map[string]interface{}{"key": key, "error": err.Error()})
	case hit:
		metrics.CacheLookups.WithLabelValues(resource, "hit").Inc()
	default:
		metrics.CacheLookups.WithLabelValues(resource, "miss").Inc()
	}
	return hit
}

func (r *StockRepository) writeCache(ctx context.Context, key string, value interface{}) {
	if err := cache.SetJSON(ctx, r.Cache, key, value, r.CacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar no cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (r *StockRepository) invalidate(ctx context.Context, id string) {
	if err := r.Cache.Delete(ctx, fmt.Sprintf(stockCacheKey, id), stocksCacheKey); err != nil {
		r.logger.Warn("Falha ao invalidar cache de estoque.", map[string]interface{}{"id": id, "error": err.Error()})
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
