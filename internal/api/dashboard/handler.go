package dashboard

import (
	"context"
	"net/http"

	"beltstock/internal/api/respond"
	"beltstock/internal/domain"
	"beltstock/internal/pkg/logger"
)

type DashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

type Handler struct {
	Service DashboardService
	Logger  logger.Logger
}

func NewHandler(svc DashboardService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// StatsHandler lida com a requisição GET /v1/dashboard/stats.
// @Summary Resumo do dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Router /dashboard/stats [get]
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	respond.JSON(w, r, h.Logger, stats, err, http.StatusOK)
}
