package history

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"beltstock/internal/api/respond"
	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/ledger"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/service/historyservice"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HistoryService define o contrato que o Handler espera da camada de Serviço.
type HistoryService interface {
	History(ctx context.Context, filter domain.HistoryFilter) ([]domain.StockMovement, error)
	Register(ctx context.Context, q historyservice.RegisterQuery) (historyservice.Register, error)
	Export(ctx context.Context, q historyservice.RegisterQuery, w io.Writer) error
}

// Handler agrupa os handlers de histórico e registro.
type Handler struct {
	Service HistoryService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc HistoryService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// HistoryHandler lida com a requisição GET /v1/stocks/history.
// @Summary Histórico de entradas e saídas
// @Tags history
// @Produce json
// @Param category query string false "Categoria"
// @Param subcategory query string false "Subcategoria"
// @Param startDate query string false "Data inicial (yyyy-mm-dd)"
// @Param endDate query string false "Data final (yyyy-mm-dd, inclusiva)"
// @Success 200 {array} domain.StockMovement
// @Failure 400 {object} domain.ErrorResponse
// @Router /stocks/history [get]
func (h *Handler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseHistoryFilter(r.URL.Query())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	history, err := h.Service.History(r.Context(), filter)
	respond.JSON(w, r, h.Logger, history, err, http.StatusOK)
}

// RegisterHandler lida com a requisição GET /v1/stocks/register.
// @Summary Registro de estoque
// @Description Lançamentos com saldo por tamanho (mais recentes primeiro), totais do dia e quantidade inicial.
// @Tags history
// @Produce json
// @Param category query string false "Categoria"
// @Param subcategory query string false "Subcategoria"
// @Param q query string false "Busca por tamanho"
// @Param date query string false "Dia de corte do total (yyyy-mm-dd)"
// @Success 200 {object} historyservice.Register
// @Failure 400 {object} domain.ErrorResponse
// @Router /stocks/register [get]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	q, err := ParseRegisterQuery(r.URL.Query())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	register, err := h.Service.Register(r.Context(), q)
	respond.JSON(w, r, h.Logger, register, err, http.StatusOK)
}

// ExportHandler lida com a requisição GET /v1/stocks/register/export.
// @Summary Exporta o registro em XLSX
// @Tags history
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param category query string false "Categoria"
// @Param subcategory query string false "Subcategoria"
// @Param q query string false "Busca por tamanho"
// @Param date query string false "Dia de corte do total (yyyy-mm-dd)"
// @Success 200 {file} file
// @Failure 400 {object} domain.ErrorResponse
// @Router /stocks/register/export [get]
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	q, err := ParseRegisterQuery(r.URL.Query())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	// A planilha vai para um buffer: um erro no meio ainda pode virar resposta JSON.
	var buf bytes.Buffer
	if err := h.Service.Export(r.Context(), q, &buf); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, FileName(q)))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("Falha ao enviar planilha do registro.", err)
	}
}

// FileName devolve o nome do arquivo exportado, ex.: "register-cogged-bx.xlsx".
func FileName(q historyservice.RegisterQuery) string {
	parts := []string{"register"}
	for _, p := range []string{q.Category, q.Subcategory} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, strings.ToLower(strings.ReplaceAll(p, " ", "-")))
		}
	}
	return strings.Join(parts, "-") + ".xlsx"
}

// ParseHistoryFilter lê os filtros da query string. endDate cobre o dia inteiro.
func ParseHistoryFilter(values url.Values) (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{
		Category:    strings.TrimSpace(values.Get("category")),
		Subcategory: strings.TrimSpace(values.Get("subcategory")),
	}

	start, err := optionalDate(values, "startDate")
	if err != nil {
		return domain.HistoryFilter{}, err
	}
	end, err := optionalDate(values, "endDate")
	if err != nil {
		return domain.HistoryFilter{}, err
	}
	if end != nil {
		eod := ledger.EndOfDay(*end)
		end = &eod
	}
	filter.StartDate, filter.EndDate = start, end
	return filter, nil
}

// ParseRegisterQuery lê os parâmetros do registro.
func ParseRegisterQuery(values url.Values) (historyservice.RegisterQuery, error) {
	q := historyservice.RegisterQuery{
		Category:    values.Get("category"),
		Subcategory: values.Get("subcategory"),
		Search:      values.Get("q"),
	}
	date, err := optionalDate(values, "date")
	if err != nil {
		return historyservice.RegisterQuery{}, err
	}
	if date != nil {
		q.Date = *date
	}
	return q, nil
}

func optionalDate(values url.Values, key string) (*time.Time, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		return nil, apperror.NewValidationError(fmt.Sprintf("Parâmetro %s inválido: %s.", key, raw))
	}
	return &t, nil
}
