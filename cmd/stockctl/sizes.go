package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"beltstock/internal/sizeset"
)

var (
	sizesMode     string
	sizesList     string
	sizesStart    string
	sizesEnd      string
	sizesInterval string
	sizesPrefix   string
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "Deriva e conta conjuntos de tamanhos",
}

var sizesDeriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Mostra os rótulos gerados pela especificação",
	Example: `  stockctl sizes derive --mode single --sizes "41, 42, XL" --prefix RU
  stockctl sizes derive --mode multiple --start 40 --end 50 --interval 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := sizesSpec()
		if err != nil {
			return err
		}
		labels, err := sizeset.Derive(spec)
		if err != nil {
			return err
		}
		if output == "json" {
			return writeJSON(cmd.OutOrStdout(), labels)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(labels, ", "))
		return nil
	},
}

var sizesCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Mostra o total de tamanhos (0 para especificação inválida)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := sizesSpec()
		if err != nil {
			// A prévia conta 0 em vez de falhar.
			log.Debug("Especificação inválida.", map[string]interface{}{"error": err.Error()})
			spec = sizeset.Spec{Mode: sizeset.ModeRange}
		}
		fmt.Fprintln(cmd.OutOrStdout(), sizeset.Count(spec))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
	sizesCmd.AddCommand(sizesDeriveCmd, sizesCountCmd)

	for _, c := range []*cobra.Command{sizesDeriveCmd, sizesCountCmd} {
		c.Flags().StringVar(&sizesMode, "mode", string(sizeset.ModeExplicit), "single (lista) ou multiple (faixa)")
		c.Flags().StringVar(&sizesList, "sizes", "", "Lista separada por vírgulas (mode single)")
		c.Flags().StringVar(&sizesStart, "start", "", "Início da faixa (mode multiple)")
		c.Flags().StringVar(&sizesEnd, "end", "", "Fim da faixa, inclusivo (mode multiple)")
		c.Flags().StringVar(&sizesInterval, "interval", "", "Passo da faixa (mode multiple)")
		c.Flags().StringVar(&sizesPrefix, "prefix", "", "Prefixo dos tamanhos numéricos (até 5 caracteres)")
	}
}

func sizesSpec() (sizeset.Spec, error) {
	switch sizeset.Mode(sizesMode) {
	case sizeset.ModeRange:
		return sizeset.ParseRange(sizesStart, sizesEnd, sizesInterval, sizesPrefix)
	case sizeset.ModeExplicit:
		return sizeset.Explicit(sizeset.SplitRaw(sizesList), sizesPrefix), nil
	default:
		return sizeset.Spec{}, fmt.Errorf("modo desconhecido: %s", sizesMode)
	}
}
