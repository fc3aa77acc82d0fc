package domain

import (
	"encoding/json"
	"time"
)

// StockMovement é um lançamento do histórico (entrada ou saída) de um tamanho de uma linha de estoque.
// Em dados bem formados apenas um de StockIn/StockOut vem preenchido, mas isso não é imposto.
type StockMovement struct {
	ID          string    `json:"_id,omitempty"`
	StockID     string    `json:"stockId,omitempty"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Size        SizeLabel `json:"size,omitempty"`
	StockIn     Quantity  `json:"stockin,omitempty"`
	StockOut    Quantity  `json:"stockout,omitempty"`
	Date        time.Time `json:"date"`
}

// UnmarshalJSON aceita datas "yyyy-mm-dd" além de RFC3339, como o histórico legado exporta.
func (m *StockMovement) UnmarshalJSON(data []byte) error {
	type alias StockMovement
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		m.Date = time.Time{}
		return nil
	}
	date, err := ParseDate(aux.Date)
	if err != nil {
		return err
	}
	m.Date = date
	return nil
}

// HistoryFilter define os filtros de busca do histórico (todos opcionais).
type HistoryFilter struct {
	Category    string
	Subcategory string
	StartDate   *time.Time
	EndDate     *time.Time
}

// StockMovementEvent é a mensagem publicada a cada lançamento gravado.
type StockMovementEvent struct {
	StockID     string    `json:"stockId"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Size        string    `json:"size"`
	StockIn     int       `json:"stockin,omitempty"`
	StockOut    int       `json:"stockout,omitempty"`
	Quantity    int       `json:"quantity"` // Total da linha após o ajuste
	Date        time.Time `json:"date"`
}
