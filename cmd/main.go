package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beltstock/config"
	"beltstock/internal/pkg/cache"
	"beltstock/internal/pkg/database"
	"beltstock/internal/pkg/events"
	"beltstock/internal/pkg/logger"

	// Camadas para Injeção de Dependências
	"beltstock/internal/api/dashboard"
	"beltstock/internal/api/history"
	"beltstock/internal/api/product"
	"beltstock/internal/api/router"
	"beltstock/internal/api/stock"
	"beltstock/internal/api/transaction"
	"beltstock/internal/repository/historyrepo"
	"beltstock/internal/repository/productrepo"
	"beltstock/internal/repository/stockrepo"
	"beltstock/internal/repository/transactionrepo"
	"beltstock/internal/service/dashboardservice"
	"beltstock/internal/service/historyservice"
	"beltstock/internal/service/productservice"
	"beltstock/internal/service/stockservice"
	"beltstock/internal/service/transactionservice"
)

// @title BeltStock API
// @version 1.0
// @description Estoque de correias por tamanho: linhas de estoque, registro reconstruído, transações e dashboard.
// @BasePath /v1
func main() {
	// 1. Configuração e Inicialização
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout, database.DefaultPool)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem Redis o serviço continua: leituras vão direto ao DB.
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Warn("Redis indisponível; cache e rate limit vão degradar.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		log.Info("Conexão Redis estabelecida.", nil)
	}
	defer cacheClient.Close()

	// C. Eventos de movimentação (Kafka opcional)
	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.Info("Publicação de movimentações no Kafka habilitada.", map[string]interface{}{"brokers": cfg.KafkaBrokers, "topic": cfg.KafkaTopic})
	}
	defer publisher.Close()

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	productRepo := productrepo.NewProductRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, log)
	stockRepo := stockrepo.NewStockRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, log)
	historyRepo := historyrepo.NewHistoryRepository(db, cfg.DBTimeout, log)
	transactionRepo := transactionrepo.NewTransactionRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	productSvc := productservice.NewService(productRepo, log)
	stockSvc := stockservice.NewService(stockRepo, historyRepo, publisher, log)
	historySvc := historyservice.NewService(historyRepo, stockRepo, log)
	transactionSvc := transactionservice.NewService(transactionRepo, log)
	dashboardSvc := dashboardservice.NewService(stockRepo, log)
	log.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		Product:     product.NewHandler(productSvc, log),
		Stock:       stock.NewHandler(stockSvc, log),
		History:     history.NewHandler(historySvc, log),
		Transaction: transaction.NewHandler(transactionSvc, log),
		Dashboard:   dashboard.NewHandler(dashboardSvc, log),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, router.RateLimit{
		Cache:       cacheClient,
		MaxRequests: cfg.RateLimitMaxRequests,
		Period:      cfg.RateLimitPeriod,
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // Exportação XLSX de registros grandes
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor BeltStock ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
