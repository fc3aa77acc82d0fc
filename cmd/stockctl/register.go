package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"beltstock/internal/domain"
	"beltstock/internal/service/historyservice"
)

var (
	registerOut         string
	registerCategory    string
	registerSubcategory string
	registerQuery       string
	registerDate        string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Planilha do registro de estoque",
}

var registerExportCmd = &cobra.Command{
	Use:     "export <history.json>",
	Short:   "Gera o XLSX do registro a partir de um histórico em JSON",
	Example: `  stockctl register export ./history.json --category Cogged --subcategory Bx --out bx.xlsx`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := readEvents(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		q := historyservice.RegisterQuery{Category: registerCategory, Subcategory: registerSubcategory, Search: registerQuery}
		if registerDate != "" {
			if q.Date, err = domain.ParseDate(registerDate); err != nil {
				return err
			}
		}

		f, err := os.Create(registerOut)
		if err != nil {
			return fmt.Errorf("falha ao criar %s: %w", registerOut, err)
		}
		defer f.Close()

		svc := historyservice.NewService(memoryHistory(events), memoryHistory(events), log)
		if err := svc.Export(context.Background(), q, f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "registro gravado em %s\n", registerOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.AddCommand(registerExportCmd)

	registerExportCmd.Flags().StringVar(&registerOut, "out", "register.xlsx", "Arquivo de saída")
	registerExportCmd.Flags().StringVar(&registerCategory, "category", "", "Categoria")
	registerExportCmd.Flags().StringVar(&registerSubcategory, "subcategory", "", "Subcategoria")
	registerExportCmd.Flags().StringVar(&registerQuery, "q", "", "Busca por tamanho")
	registerExportCmd.Flags().StringVar(&registerDate, "date", "", "Dia de corte do total (yyyy-mm-dd)")
}

// memoryHistory aplica os filtros do histórico sobre lançamentos já carregados.
type memoryHistory []domain.StockMovement

func (m memoryHistory) Find(_ context.Context, filter domain.HistoryFilter) ([]domain.StockMovement, error) {
	var out []domain.StockMovement
	for _, ev := range m {
		switch {
		case filter.Category != "" && !strings.EqualFold(ev.Category, filter.Category):
			continue
		case filter.Subcategory != "" && !strings.EqualFold(ev.Subcategory, filter.Subcategory):
			continue
		case filter.StartDate != nil && ev.Date.Before(*filter.StartDate):
			continue
		case filter.EndDate != nil && ev.Date.After(*filter.EndDate):
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// FindAll devolve uma linha por categoria/subcategoria do histórico, sem quantidade inicial
// registrada: o registro reconstrói a inicial dos próprios lançamentos.
func (m memoryHistory) FindAll(context.Context) ([]domain.Stock, error) {
	seen := make(map[[2]string]bool)
	var stocks []domain.Stock
	for _, ev := range m {
		k := [2]string{ev.Category, ev.Subcategory}
		if seen[k] {
			continue
		}
		seen[k] = true
		stocks = append(stocks, domain.Stock{Category: ev.Category, Subcategory: ev.Subcategory})
	}
	return stocks, nil
}
