// Package migrations embute os scripts goose do schema do estoque.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// FS contém os arquivos NNNNN_*.sql.
//
//go:embed *.sql
var FS embed.FS

// Dir é o diretório base dentro de FS.
const Dir = "."

// Up aplica todas as migrações pendentes.
func Up(db *sql.DB) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, Dir)
}
