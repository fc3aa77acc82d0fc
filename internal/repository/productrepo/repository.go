package productrepo

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

// Chaves de cache dos produtos.
const (
	productCacheKey  = "product:%s"
	productsCacheKey = "products:all"
)

// uniqueViolation é o código do PostgreSQL para violação de UNIQUE.
const uniqueViolation = "23505"

// ProductRepository acessa a tabela products, com cache-aside no Redis para as leituras.
type ProductRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// Save persiste um novo produto. Categoria/subcategoria repetida vira ConflictError.
func (r *ProductRepository) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `INSERT INTO products (id, category, subcategory, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.DB.ExecContext(ctxTimeout, query, product.ID, product.Category, product.Subcategory, product.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Product{}, apperror.NewConflictError(fmt.Sprintf("Produto %s / %s já existe.", product.Category, product.Subcategory))
		}
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao inserir produto", err)
	}

	r.invalidate(ctx, product.ID)
	r.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": product.ID, "category": product.Category, "subcategory": product.Subcategory})
	return product, nil
}

// FindAll lista os produtos ordenados por categoria e subcategoria.
func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 1. Cache-Aside (READ)
	var products []domain.Product
	if r.readCache(ctxTimeout, "products", productsCacheKey, &products) {
		return products, nil
	}

	// 2. Banco de Dados
	const query = `SELECT id, category, subcategory, created_at FROM products ORDER BY category, subcategory`
	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de produtos.", err)
		return nil, apperror.NewDBError("Falha ao listar produtos", err)
	}
	defer rows.Close()

	products = []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Subcategory, &p.CreatedAt); err != nil {
			r.logger.Error("Falha ao mapear produto na iteração de FindAll.", err)
			return nil, apperror.NewDBError("Falha ao ler produto", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Erro após iteração das linhas de produtos", err)
	}

	// 3. Cache-Aside (WRITE)
	r.writeCache(ctxTimeout, productsCacheKey, products)
	return products, nil
}

// FindByID busca um produto pelo ID, utilizando a estratégia Cache-Aside.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(productCacheKey, id)
	var product domain.Product
	if r.readCache(ctxTimeout, "product", key, &product) {
		return product, nil
	}

	const query = `SELECT id, category, subcategory, created_at FROM products WHERE id = $1`
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(&product.ID, &product.Category, &product.Subcategory, &product.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto no DB", err)
	}

	r.writeCache(ctxTimeout, key, product)
	return product, nil
}

// Update altera categoria e subcategoria do produto.
func (r *ProductRepository) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `UPDATE products SET category = $1, subcategory = $2 WHERE id = $3 RETURNING created_at`
	err := r.DB.QueryRowContext(ctxTimeout, query, product.Category, product.Subcategory, product.ID).Scan(&product.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", product.ID))
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Product{}, apperror.NewConflictError(fmt.Sprintf("Produto %s / %s já existe.", product.Category, product.Subcategory))
		}
		r.logger.Error("Falha ao atualizar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao atualizar produto", err)
	}

	r.invalidate(ctx, product.ID)
	return product, nil
}

// Delete remove o produto (e, em cascata, suas transações).
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover produto do DB.", err)
		return apperror.NewDBError("Falha ao remover produto", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
	}

	r.invalidate(ctx, id)
	r.logger.Info("Produto removido.", map[string]interface{}{"id": id})
	return nil
}

// --- Cache ---

func (r *ProductRepository) readCache(ctx context.Context, resource, key string, dest interface{}) bool {
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

func (r *ProductRepository) writeCache(ctx context.Context, key string, value interface{}) {
	if err := cache.SetJSON(ctx, r.Cache, key, value, r.CacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar no cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (r *ProductRepository) invalidate(ctx context.Context, id string) {
	if err := r.Cache.Delete(ctx, fmt.Sprintf(productCacheKey, id), productsCacheKey); err != nil {
		r.logger.Warn("Falha ao invalidar cache de produtos.", map[string]interface{}{"id": id, "error": err.Error()})
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
