package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stock representa uma linha de estoque (categoria + subcategoria) com seu conjunto de tamanhos.
type Stock struct {
	ID              string            `json:"_id"`
	Category        string            `json:"category"`
	Subcategory     string            `json:"subcategory"`
	Quantity        int               `json:"quantity"` // Total somando todos os tamanhos
	StockIn         time.Time         `json:"stockIn"`  // Data da entrada inicial
	LastUpdated     time.Time         `json:"lastUpdated"`
	SizeMode        string            `json:"sizeMode"`
	Sizes           []string          `json:"sizes"`
	SizePrefix      string            `json:"sizePrefix,omitempty"`
	Status          *StatusThresholds `json:"status,omitempty"`
	InitialQuantity *int              `json:"initialQuantity,omitempty"`
	CurrentStatus   StockStatus       `json:"currentStatus,omitempty"`
	Version         int               `json:"version"` // Para Controle de Concorrência Otimista (OCC)
}

// StatusThresholds são os limites configurados pelo usuário para classificar o estoque.
type StatusThresholds struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// IsZero informa se nenhum limite foi configurado.
func (t *StatusThresholds) IsZero() bool {
	return t == nil || (t.High == 0 && t.Medium == 0 && t.Low == 0)
}

// StockStatus é a classificação de exibição de uma linha de estoque.
type StockStatus string

const (
	StatusHigh     StockStatus = "high"
	StatusMedium   StockStatus = "medium"
	StatusLow      StockStatus = "low"
	StatusCritical StockStatus = "critical"
)

// Limites padrão usados quando a linha não tem limites próprios (e no dashboard).
const (
	DefaultMediumThreshold = 200
	DefaultHighThreshold   = 500
)

// Classify classifica a quantidade atual da linha de estoque.
// Sem limites configurados: abaixo de 200 é low, abaixo de 500 é medium, acima disso high.
// Com limites: o primeiro limite positivo atingido (high, medium, low) vence; abaixo de todos é critical.
func (s Stock) Classify() StockStatus {
	return ClassifyQuantity(s.Quantity, s.Status)
}

// ClassifyQuantity aplica as regras de Classify a uma quantidade avulsa.
func ClassifyQuantity(quantity int, t *StatusThresholds) StockStatus {
	if t.IsZero() {
		switch {
		case quantity < DefaultMediumThreshold:
			return StatusLow
		case quantity < DefaultHighThreshold:
			return StatusMedium
		default:
			return StatusHigh
		}
	}

	switch {
	case t.High > 0 && quantity >= t.High:
		return StatusHigh
	case t.Medium > 0 && quantity >= t.Medium:
		return StatusMedium
	case t.Low > 0 && quantity >= t.Low:
		return StatusLow
	default:
		return StatusCritical
	}
}

// SizeInput é a especificação de tamanhos enviada pelo formulário:
// lista explícita (sizeMode "single") ou faixa start/end/interval (sizeMode "multiple").
type SizeInput struct {
	SizeMode   string   `json:"sizeMode,omitempty"`
	SingleSize SizeList `json:"singleSize,omitempty"`
	Start      *int     `json:"start,omitempty"`
	End        *int     `json:"end,omitempty"`
	Interval   *int     `json:"interval,omitempty"`
	SizePrefix string   `json:"sizePrefix,omitempty"`
}

// CreateStockRequest é o payload de criação de uma linha de estoque.
type CreateStockRequest struct {
	Category        string            `json:"category"`
	Subcategory     string            `json:"subcategory"`
	StockIn         string            `json:"stockIn,omitempty"` // yyyy-mm-dd
	StockInQuantity int               `json:"stockInQuantity"`   // Quantidade por tamanho
	Status          *StatusThresholds `json:"status,omitempty"`
	SizeInput
}

// UpdateStockRequest é o payload de edição dos metadados de uma linha de estoque.
// Campos nulos não são alterados.
type UpdateStockRequest struct {
	Category    *string           `json:"category,omitempty"`
	Subcategory *string           `json:"subcategory,omitempty"`
	SizePrefix  *string           `json:"sizePrefix,omitempty"`
	Status      *StatusThresholds `json:"status,omitempty"`
}

// QuantityAdjustmentRequest é o payload de PATCH add-quantity / delete-quantity.
// Os tamanhos podem vir prontos em Sizes ou ser derivados de SizeInput.
type QuantityAdjustmentRequest struct {
	Sizes            SizeList `json:"sizes,omitempty"`
	StockInQuantity  int      `json:"stockInQuantity,omitempty"`
	StockOutQuantity int      `json:"stockOutQuantity,omitempty"`
	Date             string   `json:"date,omitempty"`
	SizeInput
}

// StockAdjustment é o ajuste já validado que o repositório aplica em transação.
type StockAdjustment struct {
	StockID  string
	Sizes    []string
	PerSize  int // Positivo para entrada, negativo para saída
	Date     time.Time
	Expected int // Versão lida pelo serviço (OCC)
}

// Delta devolve a variação total do ajuste sobre a quantidade da linha.
func (a StockAdjustment) Delta() int {
	return a.PerSize * len(a.Sizes)
}

// Movements monta os lançamentos de histórico do ajuste sobre a linha: um por tamanho,
// com a quantidade em StockIn (entrada) ou StockOut (saída).
func (a StockAdjustment) Movements(stock Stock) []StockMovement {
	movements := make([]StockMovement, 0, len(a.Sizes))
	for _, size := range a.Sizes {
		m := StockMovement{
			ID:          uuid.New().String(),
			StockID:     stock.ID,
			Category:    stock.Category,
			Subcategory: stock.Subcategory,
			Size:        SizeLabel(size),
			Date:        a.Date,
		}
		if a.PerSize >= 0 {
			m.StockIn = Quantity(a.PerSize)
		} else {
			m.StockOut = Quantity(-a.PerSize)
		}
		movements = append(movements, m)
	}
	return movements
}

// MovementEvents converte lançamentos gravados nos eventos publicados, com o total atual da linha.
func MovementEvents(stock Stock, movements []StockMovement) []StockMovementEvent {
	events := make([]StockMovementEvent, 0, len(movements))
	for _, m := range movements {
		events = append(events, StockMovementEvent{
			StockID:     stock.ID,
			Category:    m.Category,
			Subcategory: m.Subcategory,
			Size:        string(m.Size),
			StockIn:     m.StockIn.Int(),
			StockOut:    m.StockOut.Int(),
			Quantity:    stock.Quantity,
			Date:        m.Date,
		})
	}
	return events
}

// SizePreview é a prévia dos tamanhos que o formulário vai gerar.
type SizePreview struct {
	Sizes []string `json:"sizes"`
	Count int      `json:"count"`
}
