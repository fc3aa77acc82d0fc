package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"beltstock/config"
	"beltstock/internal/pkg/database"
	"beltstock/migrations"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica as migrações goose do schema do estoque",
	Long: `Executa as migrações embutidas no binário (products, stocks, stock_history,
transactions) contra o banco apontado por DATABASE_URL.`,
	SilenceUsage: true,
}

func gooseCommand(name, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), name, args...)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		gooseCommand("up", "Aplica todas as migrações pendentes", cobra.NoArgs),
		gooseCommand("up-to", "Aplica as migrações até a versão informada", cobra.ExactArgs(1)),
		gooseCommand("down", "Desfaz a última migração", cobra.NoArgs),
		gooseCommand("down-to", "Desfaz as migrações até a versão informada", cobra.ExactArgs(1)),
		gooseCommand("redo", "Desfaz e reaplica a última migração", cobra.NoArgs),
		gooseCommand("status", "Mostra o estado de cada migração", cobra.NoArgs),
		gooseCommand("version", "Mostra a versão atual do schema", cobra.NoArgs),
	)
}

func run(ctx context.Context, command string, args ...string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout, database.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		return fmt.Errorf("goose: falha ao conectar ao DB: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, db, migrations.Dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	fmt.Printf("goose %s success\n", command)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
