// Package export gera a planilha XLSX do registro de estoque.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"beltstock/internal/ledger"
)

const (
	registerSheet = "Register"
	summarySheet  = "Summary"
	dateLayout    = "2006-01-02"
)

var registerHeader = []interface{}{"Date", "Category", "Subcategory", "Size", "Stock In", "Stock Out", "Remaining", "Deficit"}

// RegisterSheet são os dados de uma planilha de registro.
type RegisterSheet struct {
	Title           string
	Entries         []ledger.Entry
	Stats           ledger.Stats
	InitialQuantity int
}

// WriteRegister escreve o registro em w: a aba Register com um lançamento por linha (na ordem
// recebida) e a aba Summary com os totais.
func WriteRegister(w io.Writer, sheet RegisterSheet) error {
	f := excelize.NewFile()
	defer f.Close()

	// 1. Aba do registro (renomeia a Sheet1 padrão)
	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		return fmt.Errorf("falha ao nomear aba do registro: %w", err)
	}
	if err := f.SetSheetRow(registerSheet, "A1", &registerHeader); err != nil {
		return fmt.Errorf("falha ao escrever cabeçalho: %w", err)
	}
	for i, e := range sheet.Entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			e.Date.Format(dateLayout),
			e.Category,
			e.Subcategory,
			sizeCell(e),
			e.StockIn.Int(),
			e.StockOut.Int(),
			e.RemainingStock,
			e.Deficit,
		}
		if err := f.SetSheetRow(registerSheet, cell, &row); err != nil {
			return fmt.Errorf("falha ao escrever linha %d: %w", i+2, err)
		}
	}

	// 2. Aba de resumo
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("falha ao criar aba de resumo: %w", err)
	}
	summary := [][]interface{}{
		{"Register", sheet.Title},
		{"Initial Quantity", sheet.InitialQuantity},
		{"Total Stock", sheet.Stats.TotalStock},
		{"Today Stock In", sheet.Stats.TodayStockIn},
		{"Today Stock Out", sheet.Stats.TodayStockOut},
	}
	for i, row := range summary {
		row := row
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("falha ao escrever resumo: %w", err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func sizeCell(e ledger.Entry) string {
	if e.Size == "" {
		return ledger.UnknownSize
	}
	return string(e.Size)
}
