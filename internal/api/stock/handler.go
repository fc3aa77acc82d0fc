package stock

import (
	"context"
	"net/http"

	"beltstock/internal/api/respond"
	"beltstock/internal/domain"
	"beltstock/internal/pkg/logger"
)

// StockService define o contrato que o Handler espera da camada de Serviço.
type StockService interface {
	CreateStock(ctx context.Context, req domain.CreateStockRequest) (domain.Stock, error)
	ListStocks(ctx context.Context) ([]domain.Stock, error)
	GetStock(ctx context.Context, id string) (domain.Stock, error)
	UpdateStock(ctx context.Context, id string, req domain.UpdateStockRequest) (domain.Stock, error)
	DeleteStock(ctx context.Context, id string) error
	AddQuantity(ctx context.Context, id string, req domain.QuantityAdjustmentRequest) (domain.Stock, error)
	RemoveQuantity(ctx context.Context, id string, req domain.QuantityAdjustmentRequest) (domain.Stock, error)
	PreviewSizes(in domain.SizeInput) (domain.SizePreview, error)
}

// Handler agrupa todos os métodos de Handler de estoque.
type Handler struct {
	Service StockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateStockHandler lida com a requisição POST /v1/stocks.
// @Summary Cria uma linha de estoque
// @Description Deriva os tamanhos (lista explícita ou faixa start/end/interval) e registra a entrada inicial de cada tamanho.
// @Tags stocks
// @Accept json
// @Produce json
// @Param stock body domain.CreateStockRequest true "Linha de estoque"
// @Success 201 {object} domain.Stock "Linha criada"
// @Failure 400 {object} domain.ErrorResponse "Tamanhos ou payload inválidos"
// @Failure 409 {object} domain.ErrorResponse "Linha já existe"
// @Router /stocks [post]
func (h *Handler) CreateStockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStockRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	stock, err := h.Service.CreateStock(r.Context(), req)
	respond.JSON(w, r, h.Logger, stock, err, http.StatusCreated)
}

// ListStocksHandler lida com a requisição GET /v1/stocks.
// @Summary Lista as linhas de estoque
// @Tags stocks
// @Produce json
// @Success 200 {array} domain.Stock "Linhas de estoque com a classificação atual"
// @Router /stocks [get]
func (h *Handler) ListStocksHandler(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.Service.ListStocks(r.Context())
	respond.JSON(w, r, h.Logger, stocks, err, http.StatusOK)
}

// GetStockHandler lida com a requisição GET /v1/stocks/{id}.
// @Summary Obtém uma linha de estoque
// @Tags stocks
// @Produce json
// @Param id path string true "ID da linha"
// @Success 200 {object} domain.Stock
// @Failure 404 {object} domain.ErrorResponse "Linha não encontrada"
// @Router /stocks/{id} [get]
func (h *Handler) GetStockHandler(w http.ResponseWriter, r *http.Request) {
	stock, err := h.Service.GetStock(r.Context(), r.PathValue("id"))
	respond.JSON(w, r, h.Logger, stock, err, http.StatusOK)
}

// UpdateStockHandler lida com a requisição PUT /v1/stocks/{id}.
// @Summary Edita os metadados da linha
// @Tags stocks
// @Accept json
// @Produce json
// @Param id path string true "ID da linha"
// @Param stock body domain.UpdateStockRequest true "Campos alterados"
// @Success 200 {object} domain.Stock
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Versão desatualizada"
// @Router /stocks/{id} [put]
func (h *Handler) UpdateStockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStockRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	stock, err := h.Service.UpdateStock(r.Context(), r.PathValue("id"), req)
	respond.JSON(w, r, h.Logger, stock, err, http.StatusOK)
}

// DeleteStockHandler lida com a requisição DELETE /v1/stocks/{id}.
// @Summary Remove a linha e o histórico dela
// @Tags stocks
// @Param id path string true "ID da linha"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Router /stocks/{id} [delete]
func (h *Handler) DeleteStockHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteStock(r.Context(), r.PathValue("id"))
	respond.JSON(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// AddQuantityHandler lida com a requisição PATCH /v1/stocks/{id}/add-quantity.
// @Summary Entrada por tamanho
// @Description Soma stockInQuantity a cada tamanho pedido. Tamanhos fora da linha são rejeitados todos de uma vez.
// @Tags stocks
// @Accept json
// @Produce json
// @Param id path string true "ID da linha"
// @Param adjustment body domain.QuantityAdjustmentRequest true "Tamanhos e quantidade"
// @Success 200 {object} domain.Stock
// @Failure 400 {object} domain.ErrorResponse "sizes not found"
// @Failure 409 {object} domain.ErrorResponse
// @Router /stocks/{id}/add-quantity [patch]
func (h *Handler) AddQuantityHandler(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.Service.AddQuantity)
}

// RemoveQuantityHandler lida com a requisição PATCH /v1/stocks/{id}/delete-quantity.
// @Summary Saída por tamanho
// @Description Retira stockOutQuantity de cada tamanho pedido; cada tamanho precisa ter saldo.
// @Tags stocks
// @Accept json
// @Produce json
// @Param id path string true "ID da linha"
// @Param adjustment body domain.QuantityAdjustmentRequest true "Tamanhos e quantidade"
// @Success 200 {object} domain.Stock
// @Failure 400 {object} domain.ErrorResponse "sizes not found / insufficient stock"
// @Failure 409 {object} domain.ErrorResponse "Linha alterada durante a saída"
// @Router /stocks/{id}/delete-quantity [patch]
func (h *Handler) RemoveQuantityHandler(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.Service.RemoveQuantity)
}

type adjustFunc func(ctx context.Context, id string, req domain.QuantityAdjustmentRequest) (domain.Stock, error)

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request, fn adjustFunc) {
	var req domain.QuantityAdjustmentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	stock, err := fn(r.Context(), r.PathValue("id"), req)
	respond.JSON(w, r, h.Logger, stock, err, http.StatusOK)
}

// PreviewSizesHandler lida com a requisição POST /v1/stocks/sizes/preview.
// @Summary Prévia dos tamanhos
// @Description Deriva os rótulos e o total de tamanhos dos campos atuais do formulário, sem gravar nada.
// @Tags stocks
// @Accept json
// @Produce json
// @Param sizes body domain.SizeInput true "Especificação de tamanhos"
// @Success 200 {object} domain.SizePreview
// @Failure 400 {object} domain.ErrorResponse
// @Router /stocks/sizes/preview [post]
func (h *Handler) PreviewSizesHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.SizeInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	preview, err := h.Service.PreviewSizes(in)
	respond.JSON(w, r, h.Logger, preview, err, http.StatusOK)
}
