package transactionservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/repository/transactionrepo"
)

// TransactionRepository define o contrato de persistência do registro de transações.
type TransactionRepository interface {
	Record(ctx context.Context, productID string, apply transactionrepo.BalanceFunc) (domain.Transaction, error)
	FindAll(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// CreateTransactionRequest é o payload do formulário de transação.
// Para ADJUSTMENT, Quantity é o novo total do produto.
type CreateTransactionRequest struct {
	ProductID   string                 `json:"productId"`
	ProductName string                 `json:"productName,omitempty"`
	Type        domain.TransactionType `json:"type"`
	Quantity    int                    `json:"quantity"`
	Reason      string                 `json:"reason"`
	Reference   string                 `json:"reference,omitempty"`
	Date        string                 `json:"date,omitempty"`
}

// Ledger é a listagem com os totais.
type Ledger struct {
	Transactions []domain.Transaction      `json:"transactions"`
	Summary      domain.TransactionSummary `json:"summary"`
}

type Service struct {
	repo   TransactionRepository
	logger logger.Logger
	now    func() time.Time
}

func NewService(repo TransactionRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log, now: func() time.Time { return time.Now().UTC() }}
}

// Apply calcula o novo saldo: IN soma, OUT subtrai e ADJUSTMENT define o total
// (a quantidade registrada passa a ser a diferença). Saldo negativo é rejeitado.
func Apply(kind domain.TransactionType, previous, quantity int) (delta, next int, err error) {
	switch kind {
	case domain.TransactionIn:
		delta, next = quantity, previous+quantity
	case domain.TransactionOut:
		delta, next = quantity, previous-quantity
	case domain.TransactionAdjustment:
		delta, next = quantity-previous, quantity
	default:
		return 0, 0, apperror.NewValidationError("Tipo de transação inválido: use IN, OUT ou ADJUSTMENT.")
	}
	if next < 0 {
		return 0, 0, apperror.NewValidationError("A transação deixaria o saldo do produto negativo.")
	}
	return delta, next, nil
}

// CreateTransaction registra uma entrada, saída ou ajuste de um produto.
func (s *Service) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (domain.Transaction, error) {
	// 1. Validação
	if _, err := uuid.Parse(req.ProductID); err != nil {
		return domain.Transaction{}, apperror.NewValidationError("O ID do produto deve ser um UUID válido.")
	}
	if !req.Type.Valid() {
		return domain.Transaction{}, apperror.NewValidationError("Tipo de transação inválido: use IN, OUT ou ADJUSTMENT.")
	}
	if req.Quantity < 0 || (req.Type != domain.TransactionAdjustment && req.Quantity == 0) {
		return domain.Transaction{}, apperror.NewValidationError("Quantidade inválida.")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return domain.Transaction{}, apperror.NewValidationError("O motivo da transação é obrigatório.")
	}

	date := s.now()
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			return domain.Transaction{}, apperror.NewValidationError("Data inválida.")
		}
		date = parsed
	}

	// 2. Gravação sobre o saldo atual
	return s.repo.Record(ctx, req.ProductID, func(previous int) (domain.Transaction, error) {
		delta, next, err := Apply(req.Type, previous, req.Quantity)
		if err != nil {
			return domain.Transaction{}, err
		}
		return domain.Transaction{
			ID:               uuid.New().String(),
			ProductName:      strings.TrimSpace(req.ProductName),
			Type:             req.Type,
			Quantity:         delta,
			PreviousQuantity: previous,
			NewQuantity:      next,
			Reason:           reason,
			Reference:        strings.TrimSpace(req.Reference),
			Date:             date,
		}, nil
	})
}

// ListTransactions devolve as transações filtradas e os totais delas.
func (s *Service) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (Ledger, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return Ledger{}, apperror.NewValidationError("Tipo de transação inválido.")
	}
	transactions, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return Ledger{}, err
	}
	return Ledger{Transactions: transactions, Summary: Summarize(transactions)}, nil
}

// Summarize soma entradas, saídas e o módulo dos ajustes.
func Summarize(transactions []domain.Transaction) domain.TransactionSummary {
	var sum domain.TransactionSummary
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionIn:
			sum.TotalIn += t.Quantity
		case domain.TransactionOut:
			sum.TotalOut += t.Quantity
		case domain.TransactionAdjustment:
			if t.Quantity < 0 {
				sum.TotalAdjustments -= t.Quantity
			} else {
				sum.TotalAdjustments += t.Quantity
			}
		}
	}
	return sum
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID da transação deve ser um UUID válido.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Transação removida.", map[string]interface{}{"id": id})
	return nil
}
