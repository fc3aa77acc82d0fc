package transaction

import (
	"context"
	"net/http"
	"strings"

	"beltstock/internal/api/respond"
	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/service/transactionservice"
)

// TransactionService define o contrato que o Handler espera da camada de Serviço.
type TransactionService interface {
	CreateTransaction(ctx context.Context, req transactionservice.CreateTransactionRequest) (domain.Transaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (transactionservice.Ledger, error)
	DeleteTransaction(ctx context.Context, id string) error
}

type Handler struct {
	Service TransactionService
	Logger  logger.Logger
}

func NewHandler(svc TransactionService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ListTransactionsHandler lida com a requisição GET /v1/transactions.
// @Summary Registro de transações
// @Tags transactions
// @Produce json
// @Param search query string false "Busca em produto, motivo ou referência"
// @Param type query string false "IN, OUT ou ADJUSTMENT"
// @Param date query string false "Dia (yyyy-mm-dd)"
// @Success 200 {object} transactionservice.Ledger
// @Failure 400 {object} domain.ErrorResponse
// @Router /transactions [get]
func (h *Handler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	filter := domain.TransactionFilter{
		Search: values.Get("search"),
		Type:   domain.TransactionType(strings.ToUpper(strings.TrimSpace(values.Get("type")))),
	}
	if raw := strings.TrimSpace(values.Get("date")); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			respond.Error(w, r, h.Logger, apperror.NewValidationError("Parâmetro date inválido."))
			return
		}
		filter.Date = &date
	}

	ledger, err := h.Service.ListTransactions(r.Context(), filter)
	respond.JSON(w, r, h.Logger, ledger, err, http.StatusOK)
}

// CreateTransactionHandler lida com a requisição POST /v1/transactions.
// @Summary Registra uma transação
// @Description IN soma, OUT subtrai e ADJUSTMENT define o novo total do produto.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body transactionservice.CreateTransactionRequest true "Transação"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /transactions [post]
func (h *Handler) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req transactionservice.CreateTransactionRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	tx, err := h.Service.CreateTransaction(r.Context(), req)
	respond.JSON(w, r, h.Logger, tx, err, http.StatusCreated)
}

// DeleteTransactionHandler lida com a requisição DELETE /v1/transactions/{id}.
// @Summary Remove uma transação
// @Tags transactions
// @Param id path string true "ID da transação"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *Handler) DeleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteTransaction(r.Context(), r.PathValue("id"))
	respond.JSON(w, r, h.Logger, nil, err, http.StatusNoContent)
}
