package domain

import "time"

// TransactionType é o tipo de um lançamento manual do registro de transações.
type TransactionType string

const (
	TransactionIn         TransactionType = "IN"
	TransactionOut        TransactionType = "OUT"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
)

// Valid informa se o tipo é conhecido.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionAdjustment:
		return true
	}
	return false
}

// Transaction é um lançamento manual (entrada, saída ou ajuste) de um produto.
type Transaction struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	Type             TransactionType `json:"type"`
	Quantity         int             `json:"quantity"`
	PreviousQuantity int             `json:"previousQuantity"`
	NewQuantity      int             `json:"newQuantity"`
	Reason           string          `json:"reason"`
	Reference        string          `json:"reference,omitempty"`
	Date             time.Time       `json:"date"`
}

// TransactionSummary resume o registro: total de entradas, saídas e ajustes (em módulo).
type TransactionSummary struct {
	TotalIn          int `json:"totalIn"`
	TotalOut         int `json:"totalOut"`
	TotalAdjustments int `json:"totalAdjustments"`
}

// TransactionFilter filtra o registro de transações.
type TransactionFilter struct {
	Search string
	Type   TransactionType
	Date   *time.Time
}
