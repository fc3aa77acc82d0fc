package transactionrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
)

// TransactionRepository acessa o registro de transações manuais (tabela transactions).
type TransactionRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewTransactionRepository cria e retorna uma nova instância do Repositório de Transações.
func NewTransactionRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *TransactionRepository {
	return &TransactionRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

// BalanceFunc recebe o saldo atual do produto e devolve a transação completa a gravar.
type BalanceFunc func(previous int) (domain.Transaction, error)

// Record grava uma transação calculada sobre o saldo atual do produto (new_quantity da
// transação mais recente, ou 0). A linha do produto fica travada até o COMMIT, então duas
// transações concorrentes do mesmo produto nunca partem do mesmo saldo.
func (r *TransactionRepository) Record(ctx context.Context, productID string, apply BalanceFunc) (domain.Transaction, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return domain.Transaction{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	// 1. Trava do produto
	var productName string
	err = tx.QueryRowContext(ctxTimeout, `SELECT subcategory FROM products WHERE id = $1 FOR UPDATE`, productID).Scan(&productName)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Transaction{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", productID))
	}
	if err != nil {
		return domain.Transaction{}, apperror.NewDBError("Falha ao travar produto", err)
	}

	// 2. Saldo atual
	var previous int
	err = tx.QueryRowContext(ctxTimeout,
		`SELECT new_quantity FROM transactions WHERE product_id = $1 ORDER BY date DESC, id DESC LIMIT 1`, productID).Scan(&previous)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.Transaction{}, apperror.NewDBError("Falha ao ler saldo do produto", err)
	}

	// 3. Regra de negócio (serviço)
	t, err := apply(previous)
	if err != nil {
		return domain.Transaction{}, err
	}
	if t.ProductName == "" {
		t.ProductName = productName
	}

	// 4. Inserção
	const query = `
		INSERT INTO transactions (id, product_id, product_name, type, quantity, previous_quantity, new_quantity, reason, reference, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := tx.ExecContext(ctxTimeout, query,
		t.ID, productID, t.ProductName, string(t.Type), t.Quantity, t.PreviousQuantity, t.NewQuantity, t.Reason, t.Reference, t.Date); err != nil {
		r.logger.Error("Falha ao inserir transação no DB.", err)
		return domain.Transaction{}, apperror.NewDBError("Falha ao inserir transação", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Transaction{}, apperror.NewDBError("Falha no COMMIT da transação", err)
	}

	t.ProductID = productID
	r.logger.Info("Transação registrada.", map[string]interface{}{"id": t.ID, "type": t.Type, "quantity": t.Quantity, "new_quantity": t.NewQuantity})
	return t, nil
}

// BuildQuery monta o SELECT filtrado: busca por nome do produto, motivo ou referência
// (sem diferenciar maiúsculas), tipo e dia de calendário.
func BuildQuery(filter domain.TransactionFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(product_name ILIKE $%d OR reason ILIKE $%d OR reference ILIKE $%d)", n, n, n))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Date != nil {
		y, m, d := filter.Date.Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, filter.Date.Location())
		args = append(args, start, start.AddDate(0, 0, 1))
		conds = append(conds, fmt.Sprintf("date >= $%d AND date < $%d", len(args)-1, len(args)))
	}

	query := `SELECT id, product_id, product_name, type, quantity, previous_quantity, new_quantity, reason, reference, date FROM transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC"
	return query, args
}

// FindAll lista as transações que atendem ao filtro, mais recentes primeiro.
func (r *TransactionRepository) FindAll(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args := BuildQuery(filter)
	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao consultar transações.", err)
		return nil, apperror.NewDBError("Falha ao consultar transações", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var (
			t    domain.Transaction
			kind string
		)
		if err := rows.Scan(&t.ID, &t.ProductID, &t.ProductName, &kind, &t.Quantity, &t.PreviousQuantity,
			&t.NewQuantity, &t.Reason, &t.Reference, &t.Date); err != nil {
			r.logger.Error("Falha ao mapear transação.", err)
			return nil, apperror.NewDBError("Falha ao ler transação", err)
		}
		t.Type = domain.TransactionType(kind)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Erro após iteração das transações", err)
	}
	return transactions, nil
}

// Delete remove uma transação.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover transação.", err)
		return apperror.NewDBError("Falha ao remover transação", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Transação com ID %s não existe.", id))
	}
	return nil
}
