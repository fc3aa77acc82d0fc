package historyrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
)

// HistoryRepository lê os lançamentos de entrada e saída (tabela stock_history).
// A escrita acontece no stockrepo, dentro da transação de cada ajuste.
type HistoryRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewHistoryRepository cria e retorna uma nova instância do Repositório de Histórico.
func NewHistoryRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *HistoryRepository {
	return &HistoryRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

// BuildQuery monta o SELECT filtrado. Datas são inclusivas; EndDate cobre o dia inteiro
// quando o chamador passa meia-noite.
func BuildQuery(filter domain.HistoryFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Subcategory != "" {
		add("subcategory = $%d", filter.Subcategory)
	}
	if filter.StartDate != nil {
		add("date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("date <= $%d", *filter.EndDate)
	}

	query := `SELECT id, COALESCE(stock_id::text, ''), category, subcategory, size, stock_in, stock_out, date FROM stock_history`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC"
	return query, args
}

// Find lista os lançamentos que atendem ao filtro, mais recentes primeiro.
func (r *HistoryRepository) Find(ctx context.Context, filter domain.HistoryFilter) ([]domain.StockMovement, error) {
	r.logger.Debug("Buscando histórico de estoque.", map[string]interface{}{
		"category":    filter.Category,
		"subcategory": filter.Subcategory,
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args := BuildQuery(filter)
	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao consultar histórico de estoque.", err)
		return nil, apperror.NewDBError("Falha ao consultar histórico", err)
	}
	defer rows.Close()

	movements := []domain.StockMovement{}
	for rows.Next() {
		var (
			m       domain.StockMovement
			size    string
			in, out int
		)
		if err := rows.Scan(&m.ID, &m.StockID, &m.Category, &m.Subcategory, &size, &in, &out, &m.Date); err != nil {
			r.logger.Error("Falha ao mapear lançamento do histórico.", err)
			return nil, apperror.NewDBError("Falha ao ler histórico", err)
		}
		m.Size = domain.SizeLabel(size)
		m.StockIn = domain.Quantity(in)
		m.StockOut = domain.Quantity(out)
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Erro após iteração do histórico", err)
	}

	r.logger.Debug("Histórico carregado.", map[string]interface{}{"total": len(movements)})
	return movements, nil
}
