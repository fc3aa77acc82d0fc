package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "beltstock/docs" // Registro da especificação Swagger
	"beltstock/internal/api/dashboard"
	"beltstock/internal/api/history"
	"beltstock/internal/api/product"
	"beltstock/internal/api/stock"
	"beltstock/internal/api/transaction"
	"beltstock/internal/pkg/cache"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/pkg/metrics"
	"beltstock/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Product     *product.Handler
	Stock       *stock.Handler
	History     *history.Handler
	Transaction *transaction.Handler
	Dashboard   *dashboard.Handler
}

// RateLimit configura o limite de requisições por IP. Cache nil desliga o limite.
type RateLimit struct {
	Cache       cache.Client
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, limit RateLimit, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Infraestrutura ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Produtos ---
	mux.HandleFunc("GET /v1/products", h.Product.ListProductsHandler)
	mux.HandleFunc("POST /v1/products", h.Product.CreateProductHandler)
	mux.HandleFunc("GET /v1/products/{id}", h.Product.GetProductByIDHandler)
	mux.HandleFunc("PUT /v1/products/{id}", h.Product.UpdateProductHandler)
	mux.HandleFunc("DELETE /v1/products/{id}", h.Product.DeleteProductHandler)

	// --- 3. Estoque ---
	mux.HandleFunc("GET /v1/stocks", h.Stock.ListStocksHandler)
	mux.HandleFunc("POST /v1/stocks", h.Stock.CreateStockHandler)
	mux.HandleFunc("POST /v1/stocks/sizes/preview", h.Stock.PreviewSizesHandler)
	mux.HandleFunc("GET /v1/stocks/{id}", h.Stock.GetStockHandler)
	mux.HandleFunc("PUT /v1/stocks/{id}", h.Stock.UpdateStockHandler)
	mux.HandleFunc("DELETE /v1/stocks/{id}", h.Stock.DeleteStockHandler)
	mux.HandleFunc("PATCH /v1/stocks/{id}/add-quantity", h.Stock.AddQuantityHandler)
	mux.HandleFunc("PATCH /v1/stocks/{id}/delete-quantity", h.Stock.RemoveQuantityHandler)

	// --- 4. Histórico e registro ---
	mux.HandleFunc("GET /v1/stocks/history", h.History.HistoryHandler)
	mux.HandleFunc("GET /v1/stocks/register", h.History.RegisterHandler)
	mux.HandleFunc("GET /v1/stocks/register/export", h.History.ExportHandler)

	// --- 5. Transações e dashboard ---
	mux.HandleFunc("GET /v1/transactions", h.Transaction.ListTransactionsHandler)
	mux.HandleFunc("POST /v1/transactions", h.Transaction.CreateTransactionHandler)
	mux.HandleFunc("DELETE /v1/transactions/{id}", h.Transaction.DeleteTransactionHandler)
	mux.HandleFunc("GET /v1/dashboard/stats", h.Dashboard.StatsHandler)

	// --- 6. Middlewares globais ---
	mws := []func(http.Handler) http.Handler{middleware.Observe(log)}
	if limit.Cache != nil && limit.MaxRequests > 0 {
		mws = append(mws, middleware.RateLimiter(limit.Cache, limit.MaxRequests, limit.Period, log))
	}
	return middleware.Chain(mux, mws...)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
