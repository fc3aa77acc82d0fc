package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"beltstock/internal/domain"
	"beltstock/internal/ledger"
)

var (
	ledgerDate  string
	ledgerToday string
	ledgerSize  string
	ledgerQuery string
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Reconstrói o registro a partir de um histórico em JSON",
	Long: `Os comandos de ledger leem um array JSON de lançamentos no formato do histórico
({category, subcategory, size, stockin, stockout, date}). Use "-" para ler da entrada padrão.`,
}

var ledgerReconstructCmd = &cobra.Command{
	Use:     "reconstruct <history.json>",
	Short:   "Lista os lançamentos com o saldo por tamanho",
	Example: `  stockctl ledger reconstruct ./history.json --q 40`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := readEvents(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		groups := ledger.Reconstruct(ledger.FilterBySize(events, ledgerQuery))
		entries := ledger.Flatten(groups)

		if n := len(ledger.Overdrawn(groups)); n > 0 {
			log.Warn("Histórico com saídas acima do saldo.", map[string]interface{}{"entries": n})
		}
		if output == "json" {
			return writeJSON(cmd.OutOrStdout(), entries)
		}
		writeEntries(cmd.OutOrStdout(), entries)
		return nil
	},
}

var ledgerStatsCmd = &cobra.Command{
	Use:   "stats <history.json>",
	Short: "Total até o dia de corte e movimentação de hoje",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := readEvents(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		today, err := dateFlag(ledgerToday, time.Now().UTC())
		if err != nil {
			return err
		}
		cutoff, err := dateFlag(ledgerDate, today)
		if err != nil {
			return err
		}
		stats := ledger.ComputeStats(events, cutoff, today)
		if output == "json" {
			return writeJSON(cmd.OutOrStdout(), stats)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "total stock: %d\ntoday in: %d\ntoday out: %d\n", stats.TotalStock, stats.TodayStockIn, stats.TodayStockOut)
		return nil
	},
}

var ledgerInitialCmd = &cobra.Command{
	Use:   "initial <history.json>",
	Short: "Quantidade inicial reconstruída (de um tamanho ou de todos)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := readEvents(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		total := ledger.InitialQuantityTotal(events)
		if cmd.Flags().Changed("size") {
			total = ledger.InitialQuantity(events, ledgerSize)
		}
		fmt.Fprintln(cmd.OutOrStdout(), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ledgerCmd)
	ledgerCmd.AddCommand(ledgerReconstructCmd, ledgerStatsCmd, ledgerInitialCmd)

	ledgerReconstructCmd.Flags().StringVar(&ledgerQuery, "q", "", "Busca por tamanho")
	ledgerStatsCmd.Flags().StringVar(&ledgerDate, "date", "", "Dia de corte do total (yyyy-mm-dd, padrão: hoje)")
	ledgerStatsCmd.Flags().StringVar(&ledgerToday, "today", "", "Dia considerado hoje (yyyy-mm-dd)")
	ledgerInitialCmd.Flags().StringVar(&ledgerSize, "size", "", "Tamanho (vazio seleciona lançamentos sem tamanho)")
}

// readEvents lê o histórico do arquivo (ou da entrada padrão com "-").
func readEvents(stdin io.Reader, path string) ([]domain.StockMovement, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("falha ao abrir histórico: %w", err)
		}
		defer f.Close()
		r = f
	}

	var events []domain.StockMovement
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("histórico inválido: %w", err)
	}
	log.Debug("Histórico carregado.", map[string]interface{}{"events": len(events)})
	return events, nil
}

func dateFlag(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	return domain.ParseDate(raw)
}

func writeEntries(w io.Writer, entries []ledger.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tSUBCATEGORY\tSIZE\tIN\tOUT\tREMAINING\tDEFICIT")
	for _, e := range entries {
		size := string(e.Size)
		if size == "" {
			size = ledger.UnknownSize
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			e.Date.Format("2006-01-02"), e.Category, e.Subcategory, size, e.StockIn, e.StockOut, e.RemainingStock, e.Deficit)
	}
	tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
