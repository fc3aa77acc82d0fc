package stockservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/ledger"
	"beltstock/internal/pkg/events"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/pkg/metrics"
	"beltstock/internal/sizeset"
)

// StockRepository define o contrato que o Serviço de Estoque espera da camada de Persistência.
type StockRepository interface {
	Create(ctx context.Context, stock domain.Stock, initial []domain.StockMovement) (domain.Stock, error)
	FindAll(ctx context.Context) ([]domain.Stock, error)
	FindByID(ctx context.Context, id string) (domain.Stock, error)
	Update(ctx context.Context, stock domain.Stock) (domain.Stock, error)
	Delete(ctx context.Context, id string) error
	ApplyAdjustment(ctx context.Context, adj domain.StockAdjustment) (domain.Stock, []domain.StockMovement, error)
}

// HistoryReader é a leitura do histórico usada para conferir o saldo por tamanho.
type HistoryReader interface {
	Find(ctx context.Context, filter domain.HistoryFilter) ([]domain.StockMovement, error)
}

// MsgInsufficientStock prefixa a lista de tamanhos sem saldo para uma saída.
const MsgInsufficientStock = "insufficient stock for sizes"

// MaxQuantityPerSize limita a quantidade movimentada por tamanho em uma única operação,
// mantendo quantidade × tamanhos longe do limite de int.
const MaxQuantityPerSize = 1_000_000

// MsgQuantityTooLarge é a mensagem para quantidades acima de MaxQuantityPerSize.
const MsgQuantityTooLarge = "quantity per size too large"

// Service implementa as linhas de estoque e os ajustes de quantidade por tamanho.
type Service struct {
	repo      StockRepository
	history   HistoryReader
	publisher events.Publisher
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
func NewService(repo StockRepository, history HistoryReader, publisher events.Publisher, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		history:   history,
		publisher: publisher,
		logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock troca o relógio usado como data padrão dos lançamentos.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do estoque deve ser um UUID válido.")
	}
	return nil
}

// parseDate interpreta a data do formulário; vazia vale agora.
func (s *Service) parseDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return s.now(), nil
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperror.NewValidationError(fmt.Sprintf("Data inválida: %s.", raw))
	}
	return date, nil
}

// PreviewSizes deriva os rótulos e o total de tamanhos a partir dos campos atuais do formulário.
func (s *Service) PreviewSizes(in domain.SizeInput) (domain.SizePreview, error) {
	spec, err := sizeset.FromInput(in)
	if err != nil {
		return domain.SizePreview{}, err
	}
	labels, err := sizeset.Derive(spec)
	if err != nil {
		return domain.SizePreview{}, err
	}
	return domain.SizePreview{Sizes: labels, Count: sizeset.Count(spec)}, nil
}

// CreateStock cria uma linha de estoque: deriva os tamanhos, grava a entrada inicial de cada
// tamanho e define quantity = tamanhos × quantidade por tamanho.
func (s *Service) CreateStock(ctx context.Context, req domain.CreateStockRequest) (domain.Stock, error) {
	s.logger.Debug("Iniciando criação de linha de estoque no serviço.", map[string]interface{}{
		"category":    req.Category,
		"subcategory": req.Subcategory,
		"size_mode":   req.SizeMode,
	})

	// 1. Validação dos campos da linha
	category := strings.TrimSpace(req.Category)
	subcategory := strings.TrimSpace(req.Subcategory)
	if category == "" || subcategory == "" {
		return domain.Stock{}, apperror.NewValidationError("Categoria e subcategoria são obrigatórias.")
	}
	if req.StockInQuantity < 0 {
		return domain.Stock{}, apperror.NewValidationError("A quantidade de entrada não pode ser negativa.")
	}
	if req.StockInQuantity > MaxQuantityPerSize {
		return domain.Stock{}, apperror.NewValidationError(MsgQuantityTooLarge)
	}

	// 2. Tamanhos
	spec, err := sizeset.FromInput(req.SizeInput)
	if err != nil {
		return domain.Stock{}, err
	}
	sizes, err := sizeset.Derive(spec)
	if err != nil {
		return domain.Stock{}, err
	}
	prefix, err := sizeset.NormalizePrefix(req.SizePrefix)
	if err != nil {
		return domain.Stock{}, err
	}

	date, err := s.parseDate(req.StockIn)
	if err != nil {
		return domain.Stock{}, err
	}

	// 3. Montagem da linha e da entrada inicial
	total := req.StockInQuantity * len(sizes)
	stock := domain.Stock{
		ID:              uuid.New().String(),
		Category:        category,
		Subcategory:     subcategory,
		Quantity:        total,
		StockIn:         date,
		LastUpdated:     s.now(),
		SizeMode:        string(spec.Mode),
		Sizes:           sizes,
		SizePrefix:      prefix,
		InitialQuantity: &total,
		Version:         1,
	}
	if !req.Status.IsZero() {
		stock.Status = req.Status
	}

	var initial []domain.StockMovement
	if req.StockInQuantity > 0 {
		initial = domain.StockAdjustment{StockID: stock.ID, Sizes: sizes, PerSize: req.StockInQuantity, Date: date}.Movements(stock)
	}

	created, err := s.repo.Create(ctx, stock, initial)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("falha ao criar linha de estoque: %w", err)
	}

	metrics.StockMovements.WithLabelValues("in").Add(float64(total))
	s.publish(ctx, created, initial)

	created.CurrentStatus = created.Classify()
	return created, nil
}

// ListStocks devolve as linhas de estoque com a classificação atual.
func (s *Service) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	stocks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stocks {
		stocks[i].CurrentStatus = stocks[i].Classify()
	}
	return stocks, nil
}

// GetStock busca uma linha de estoque.
func (s *Service) GetStock(ctx context.Context, id string) (domain.Stock, error) {
	if err := validateID(id); err != nil {
		return domain.Stock{}, err
	}
	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stock{}, err
	}
	stock.CurrentStatus = stock.Classify()
	return stock, nil
}

// UpdateStock edita os metadados da linha. Campos ausentes ficam como estão.
func (s *Service) UpdateStock(ctx context.Context, id string, req domain.UpdateStockRequest) (domain.Stock, error) {
	if err := validateID(id); err != nil {
		return domain.Stock{}, err
	}
	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stock{}, err
	}

	if req.Category != nil {
		stock.Category = strings.TrimSpace(*req.Category)
	}
	if req.Subcategory != nil {
		stock.Subcategory = strings.TrimSpace(*req.Subcategory)
	}
	if stock.Category == "" || stock.Subcategory == "" {
		return domain.Stock{}, apperror.NewValidationError("Categoria e subcategoria são obrigatórias.")
	}
	if req.SizePrefix != nil {
		prefix, err := sizeset.NormalizePrefix(*req.SizePrefix)
		if err != nil {
			return domain.Stock{}, err
		}
		stock.SizePrefix = prefix
	}
	if req.Status != nil {
		stock.Status = req.Status
		if req.Status.IsZero() {
			stock.Status = nil
		}
	}

	updated, err := s.repo.Update(ctx, stock)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("falha ao atualizar linha de estoque: %w", err)
	}
	updated.CurrentStatus = updated.Classify()
	return updated, nil
}

// DeleteStock remove a linha de estoque e o histórico dela.
func (s *Service) DeleteStock(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// resolveSizes devolve os rótulos do ajuste: a lista pronta quando veio, senão a derivação
// da especificação (com o prefixo da linha quando o pedido não traz um).
func resolveSizes(req domain.QuantityAdjustmentRequest, stock domain.Stock) ([]string, error) {
	if len(req.Sizes) > 0 {
		seen := make(map[string]struct{}, len(req.Sizes))
		var labels []string
		for _, raw := range req.Sizes {
			label := strings.TrimSpace(raw)
			if label == "" {
				continue
			}
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
		if len(labels) == 0 {
			return nil, apperror.NewValidationError(sizeset.MsgNoValidSizes)
		}
		return labels, nil
	}

	in := req.SizeInput
	if in.SizePrefix == "" {
		in.SizePrefix = stock.SizePrefix
	}
	spec, err := sizeset.FromInput(in)
	if err != nil {
		return nil, err
	}
	return sizeset.Derive(spec)
}

// AddQuantity soma stockInQuantity a cada tamanho pedido.
func (s *Service) AddQuantity(ctx context.Context, id string, req domain.QuantityAdjustmentRequest) (domain.Stock, error) {
	if req.StockInQuantity <= 0 {
		return domain.Stock{}, apperror.NewValidationError("A quantidade de entrada deve ser positiva.")
	}
	return s.adjust(ctx, id, req, req.StockInQuantity)
}

// RemoveQuantity retira stockOutQuantity de cada tamanho pedido. Cada tamanho precisa ter saldo
// suficiente no registro reconstruído a partir do histórico.
func (s *Service) RemoveQuantity(ctx context.Context, id string, req domain.QuantityAdjustmentRequest) (domain.Stock, error) {
	if req.StockOutQuantity <= 0 {
		return domain.Stock{}, apperror.NewValidationError("A quantidade de saída deve ser positiva.")
	}
	return s.adjust(ctx, id, req, -req.StockOutQuantity)
}

func (s *Service) adjust(ctx context.Context, id string, req domain.QuantityAdjustmentRequest, perSize int) (domain.Stock, error) {
	if err := validateID(id); err != nil {
		return domain.Stock{}, err
	}
	if perSize > MaxQuantityPerSize || perSize < -MaxQuantityPerSize {
		return domain.Stock{}, apperror.NewValidationError(MsgQuantityTooLarge)
	}

	// 1. Linha atual
	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stock{}, err
	}

	// 2. Tamanhos pedidos precisam existir na linha
	sizes, err := resolveSizes(req, stock)
	if err != nil {
		return domain.Stock{}, err
	}
	if err := sizeset.ValidateAgainstStock(sizes, stock); err != nil {
		return domain.Stock{}, err
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return domain.Stock{}, err
	}

	// 3. Saídas: saldo por tamanho
	if perSize < 0 {
		if err := s.checkBalances(ctx, stock, sizes, -perSize); err != nil {
			return domain.Stock{}, err
		}
	}

	// 4. Transação. Saídas exigem a mesma versão conferida no passo 3 (OCC)
	adj := domain.StockAdjustment{StockID: id, Sizes: sizes, PerSize: perSize, Date: date}
	if perSize < 0 {
		adj.Expected = stock.Version
	}
	updated, movements, err := s.repo.ApplyAdjustment(ctx, adj)
	if err != nil {
		s.logger.Warn("Falha ao ajustar estoque no repositório.", map[string]interface{}{"stock_id": id, "error": err.Error()})
		return domain.Stock{}, err
	}

	if perSize > 0 {
		metrics.StockMovements.WithLabelValues("in").Add(float64(adj.Delta()))
	} else {
		metrics.StockMovements.WithLabelValues("out").Add(float64(-adj.Delta()))
	}
	s.publish(ctx, updated, movements)

	s.logger.Info("Estoque ajustado com sucesso.", map[string]interface{}{
		"stock_id":     id,
		"sizes":        sizes,
		"per_size":     perSize,
		"new_quantity": updated.Quantity,
		"new_version":  updated.Version,
	})
	updated.CurrentStatus = updated.Classify()
	return updated, nil
}

func (s *Service) checkBalances(ctx context.Context, stock domain.Stock, sizes []string, perSize int) error {
	history, err := s.history.Find(ctx, domain.HistoryFilter{Category: stock.Category, Subcategory: stock.Subcategory})
	if err != nil {
		return err
	}
	balances := ledger.Balances(history)

	var short []string
	for _, size := range sizes {
		available := balances[ledger.Key{Category: stock.Category, Subcategory: stock.Subcategory, Size: size}]
		if available < perSize {
			short = append(short, fmt.Sprintf("%s (%d available)", size, available))
		}
	}
	if len(short) > 0 {
		s.logger.Warn("Saída maior que o saldo do tamanho.", map[string]interface{}{"stock_id": stock.ID, "sizes": short})
		return apperror.NewListValidationError(MsgInsufficientStock, short)
	}
	return nil
}

// publish anuncia as movimentações. Falhas não desfazem o ajuste, só são registradas.
func (s *Service) publish(ctx context.Context, stock domain.Stock, movements []domain.StockMovement) {
	if len(movements) == 0 {
		return
	}
	if err := s.publisher.PublishMovements(ctx, domain.MovementEvents(stock, movements)); err != nil {
		metrics.EventPublishErrors.Inc()
		s.logger.Error("Falha ao publicar movimentações de estoque.", err)
	}
}
