// Package metrics concentra os coletores Prometheus do serviço.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests conta as requisições por rota, método e status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beltstock_http_requests_total",
		Help: "Total de requisições HTTP por rota, método e status",
	}, []string{"route", "method", "status"})

	// HTTPDuration mede a latência das requisições por rota.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "beltstock_http_request_duration_seconds",
		Help:    "Latência das requisições HTTP por rota",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"route", "method"})

	// StockMovements conta as unidades movimentadas, por direção (in/out).
	StockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beltstock_stock_movement_units_total",
		Help: "Unidades movimentadas no estoque por direção",
	}, []string{"direction"})

	// LedgerOverdrawn conta os lançamentos cujo saldo precisou ser travado em zero
	// ao reconstruir o registro.
	LedgerOverdrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beltstock_ledger_overdrawn_entries_total",
		Help: "Lançamentos do registro com saída maior que o saldo",
	})

	// CacheLookups conta acessos ao cache por chave lógica e resultado (hit/miss/error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beltstock_cache_lookups_total",
		Help: "Consultas ao cache por recurso e resultado",
	}, []string{"resource", "result"})

	// EventPublishErrors conta falhas ao publicar eventos de movimentação.
	EventPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beltstock_event_publish_errors_total",
		Help: "Falhas ao publicar eventos de movimentação",
	})
)

// Handler expõe o registro padrão no formato texto do Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
