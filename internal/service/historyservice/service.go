package historyservice

import (
	"context"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/export"
	"beltstock/internal/ledger"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/pkg/metrics"
)

// HistoryRepository é a leitura do histórico de lançamentos.
type HistoryRepository interface {
	Find(ctx context.Context, filter domain.HistoryFilter) ([]domain.StockMovement, error)
}

// StockLister fornece as linhas de estoque (com a quantidade inicial registrada).
type StockLister interface {
	FindAll(ctx context.Context) ([]domain.Stock, error)
}

// RegisterQuery são os parâmetros da tela de registro.
type RegisterQuery struct {
	Category    string
	Subcategory string
	Search      string    // Busca por tamanho (q)
	Date        time.Time // Dia de corte do total; zero vale hoje
}

// Register é o registro reconstruído de uma ou mais linhas de estoque.
type Register struct {
	Entries         []ledger.Entry `json:"entries"`
	Stats           ledger.Stats   `json:"stats"`
	InitialQuantity int            `json:"initialQuantity"`
	Overdrawn       []ledger.Entry `json:"overdrawn"`
}

// Service monta o histórico bruto e o registro de estoque.
type Service struct {
	history HistoryRepository
	stocks  StockLister
	logger  logger.Logger
	now     func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Histórico.
func NewService(history HistoryRepository, stocks StockLister, log logger.Logger) *Service {
	return &Service{
		history: history,
		stocks:  stocks,
		logger:  log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock troca o relógio que define "hoje".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// History devolve os lançamentos filtrados, do mais recente para o mais antigo.
func (s *Service) History(ctx context.Context, filter domain.HistoryFilter) ([]domain.StockMovement, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, apperror.NewValidationError("A data final deve ser posterior à data inicial.")
	}
	return s.history.Find(ctx, filter)
}

// Register reconstrói o registro das linhas que casam com a consulta.
// A busca por tamanho filtra só as linhas do registro; os totais do topo usam o histórico inteiro.
func (s *Service) Register(ctx context.Context, q RegisterQuery) (Register, error) {
	q.Category = strings.TrimSpace(q.Category)
	q.Subcategory = strings.TrimSpace(q.Subcategory)

	// 1. Linhas de estoque e histórico em paralelo
	var (
		stocks []domain.Stock
		events []domain.StockMovement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := s.stocks.FindAll(gctx)
		if err != nil {
			return err
		}
		stocks = matching(all, q)
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.history.Find(gctx, domain.HistoryFilter{Category: q.Category, Subcategory: q.Subcategory})
		return err
	})
	if err := g.Wait(); err != nil {
		return Register{}, err
	}

	// 2. Quantidade inicial: valor do backend, senão a primeira entrada de cada tamanho
	initial := initialQuantity(stocks, events)

	// 3. Busca por tamanho e reconstrução
	visible := ledger.FilterBySize(events, q.Search)
	groups := ledger.Reconstruct(visible)

	today := s.now()
	cutoff := q.Date
	if cutoff.IsZero() {
		cutoff = today
	}

	register := Register{
		Entries:         ledger.Flatten(groups),
		Stats:           ledger.ComputeStats(events, cutoff, today),
		InitialQuantity: initial,
		Overdrawn:       ledger.Overdrawn(groups),
	}

	if register.Entries == nil {
		register.Entries = []ledger.Entry{}
	}
	if register.Overdrawn == nil {
		register.Overdrawn = []ledger.Entry{}
	}

	// 4. Diagnóstico de saídas acima do saldo
	if n := len(register.Overdrawn); n > 0 {
		metrics.LedgerOverdrawn.Add(float64(n))
		s.logger.Warn("Registro com saídas acima do saldo.", map[string]interface{}{
			"category":    q.Category,
			"subcategory": q.Subcategory,
			"entries":     n,
		})
	}
	return register, nil
}

// Export escreve o registro da consulta como planilha XLSX.
func (s *Service) Export(ctx context.Context, q RegisterQuery, w io.Writer) error {
	register, err := s.Register(ctx, q)
	if err != nil {
		return err
	}
	return export.WriteRegister(w, export.RegisterSheet{
		Title:           Title(q),
		Entries:         register.Entries,
		Stats:           register.Stats,
		InitialQuantity: register.InitialQuantity,
	})
}

// Title é o nome do registro exibido na planilha.
func Title(q RegisterQuery) string {
	switch {
	case q.Category == "":
		return "All stock"
	case q.Subcategory == "":
		return q.Category
	default:
		return q.Category + " / " + q.Subcategory
	}
}

func matching(stocks []domain.Stock, q RegisterQuery) []domain.Stock {
	var out []domain.Stock
	for _, st := range stocks {
		if q.Category != "" && st.Category != q.Category {
			continue
		}
		if q.Subcategory != "" && st.Subcategory != q.Subcategory {
			continue
		}
		out = append(out, st)
	}
	return out
}

// initialQuantity soma, por linha, a quantidade inicial registrada ou, na falta dela, a
// reconstruída do histórico daquela linha.
func initialQuantity(stocks []domain.Stock, events []domain.StockMovement) int {
	type line struct{ category, subcategory string }
	byLine := make(map[line][]domain.StockMovement)
	for _, ev := range events {
		k := line{ev.Category, ev.Subcategory}
		byLine[k] = append(byLine[k], ev)
	}

	total := 0
	for _, st := range stocks {
		if st.InitialQuantity != nil {
			total += *st.InitialQuantity
			continue
		}
		total += ledger.InitialQuantityTotal(byLine[line{st.Category, st.Subcategory}])
	}
	return total
}
