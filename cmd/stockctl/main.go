package main

import (
	"os"

	"github.com/spf13/cobra"

	"beltstock/internal/pkg/logger"
)

var (
	logLevel string
	output   string
	log      logger.Logger = logger.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stockctl",
	Short: "Ferramentas offline de tamanhos e registro de estoque",
	Long: `stockctl roda as mesmas regras do serviço sem banco de dados: deriva conjuntos de
tamanhos, reconstrói o registro a partir de um histórico exportado em JSON e gera a
planilha XLSX do registro.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.NewWithWriter(os.Stderr, logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Nível de log (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Formato de saída: table ou json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
