package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// balanceRetryLimit ограничивает число повторов при конфликтах
// сериализации, после чего наружу уходит ErrConflict.
const balanceRetryLimit = 3

// TransactionFilter описывает параметры выборки списка транзакций.
type TransactionFilter struct {
	Type       string
	CategoryID int
	Date       *time.Time
	Search     string
}

// CreateTransaction записывает транзакцию и её вклад в баланс счёта одной
// транзакцией БД: либо сохраняется и то и другое, либо ничего. Строка счёта
// блокируется на время пересчёта, поэтому конкурентные записи по одному
// счёту сериализуются, а по разным счетам идут параллельно.
func CreateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	return withBalanceRetry(func() error {
		return createTransactionOnce(pool, transaction)
	})
}

func createTransactionOnce(pool *pgxpool.Pool, transaction *models.Transaction) error {
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(ctx)

	balance, err := lockAccountBalance(ctx, tx, transaction.AccountID, transaction.UserID)
	if err != nil {
		return err
	}

	if err := checkCategoryOwned(ctx, tx, transaction.CategoryID, transaction.UserID); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (user_id, account_id, category_id, amount, type, notes, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		transaction.UserID,
		transaction.AccountID,
		transaction.CategoryID,
		transaction.Amount,
		transaction.Type,
		transaction.Notes,
		transaction.Date).Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %v", err)
	}

	newBalance := balance.Add(transaction.SignedEffect())
	if err := writeAccountBalance(ctx, tx, transaction.AccountID, newBalance); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpdateTransaction меняет транзакцию и корректирует балансы: старый вклад
// снимается со старого счёта, новый применяется к новому. Инвариант
// "баланс счёта равен сумме вкладов его транзакций" сохраняется.
func UpdateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	return withBalanceRetry(func() error {
		return updateTransactionOnce(pool, transaction)
	})
}

func updateTransactionOnce(pool *pgxpool.Pool, transaction *models.Transaction) error {
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(ctx)

	old, err := lockTransactionRow(ctx, tx, transaction.ID, transaction.UserID)
	if err != nil {
		return err
	}

	balances, err := lockAccountBalances(ctx, tx, transaction.UserID, old.AccountID, transaction.AccountID)
	if err != nil {
		return err
	}

	if err := checkCategoryOwned(ctx, tx, transaction.CategoryID, transaction.UserID); err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET account_id = $1, category_id = $2, amount = $3, type = $4, notes = $5, transaction_date = $6, updated_at = now()
		WHERE id = $7 AND user_id = $8
		RETURNING created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		transaction.AccountID,
		transaction.CategoryID,
		transaction.Amount,
		transaction.Type,
		transaction.Notes,
		transaction.Date,
		transaction.ID,
		transaction.UserID).Scan(&transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка обновления транзакции: %v", err)
	}

	balances[old.AccountID] = balances[old.AccountID].Sub(old.SignedEffect())
	balances[transaction.AccountID] = balances[transaction.AccountID].Add(transaction.SignedEffect())

	for accountID, balance := range balances {
		if err := writeAccountBalance(ctx, tx, accountID, balance); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteTransaction удаляет транзакцию и снимает её вклад с баланса счёта.
func DeleteTransaction(pool *pgxpool.Pool, transactionID, userID int) error {
	return withBalanceRetry(func() error {
		return deleteTransactionOnce(pool, transactionID, userID)
	})
}

func deleteTransactionOnce(pool *pgxpool.Pool, transactionID, userID int) error {
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(ctx)

	old, err := lockTransactionRow(ctx, tx, transactionID, userID)
	if err != nil {
		return err
	}

	balance, err := lockAccountBalance(ctx, tx, old.AccountID, userID)
	if err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления транзакции: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: транзакция с ID %d", ErrNotFound, transactionID)
	}

	if err := writeAccountBalance(ctx, tx, old.AccountID, balance.Sub(old.SignedEffect())); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func GetTransactionByID(pool *pgxpool.Pool, transactionID, userID int) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, account_id, category_id, amount, type, notes, transaction_date, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND user_id = $2`

	transaction := &models.Transaction{}
	err := pool.QueryRow(context.Background(), query, transactionID, userID).Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.AccountID,
		&transaction.CategoryID,
		&transaction.Amount,
		&transaction.Type,
		&transaction.Notes,
		&transaction.Date,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: транзакция с ID %d", ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("ошибка при получении транзакции: %v", err)
	}

	return transaction, nil
}

// GetTransactions извлекает транзакции пользователя с фильтрами по типу,
// категории и дате, поиском по заметкам и сортировкой по дате по убыванию.
func GetTransactions(pool *pgxpool.Pool, userID int, filter TransactionFilter) ([]models.Transaction, error) {
	query, args := buildTransactionListQuery(userID, filter)

	rows, err := pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций: %v", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var transaction models.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.AccountID,
			&transaction.CategoryID, &transaction.Amount, &transaction.Type, &transaction.Notes,
			&transaction.Date, &transaction.CreatedAt, &transaction.UpdatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

func buildTransactionListQuery(userID int, filter TransactionFilter) (string, []any) {
	query := `
		SELECT id, user_id, account_id, category_id, amount, type, notes, transaction_date, created_at, updated_at
		FROM transactions
		WHERE user_id = $1`
	args := []any{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND transaction_date = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, escapeLikePattern(filter.Search))
		query += fmt.Sprintf(" AND notes ILIKE '%%' || $%d || '%%'", len(args))
	}

	query += " ORDER BY transaction_date DESC, id DESC"
	return query, args
}

// escapeLikePattern экранирует метасимволы LIKE, чтобы поиск по "100%"
// искал буквально "100%", а не совпадал с чем угодно.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func withBalanceRetry(op func() error) error {
	var err error
	for attempt := 0; attempt < balanceRetryLimit; attempt++ {
		err = op()
		if !isSerializationError(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrConflict, err)
}

// lockAccountBalance блокирует строку счёта и возвращает текущий баланс.
// Чужой или несуществующий счёт даёт ErrNotFound.
func lockAccountBalance(ctx context.Context, tx pgx.Tx, accountID, userID int) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `SELECT balance FROM accounts WHERE id = $1 AND user_id = $2 FOR UPDATE`
	err := tx.QueryRow(ctx, query, accountID, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: счёт с ID %d", ErrNotFound, accountID)
		}
		return decimal.Zero, fmt.Errorf("ошибка блокировки счёта: %v", err)
	}
	return balance, nil
}

// lockAccountBalances блокирует несколько счетов в порядке возрастания ID,
// чтобы два конкурентных обновления не зашли во взаимную блокировку.
func lockAccountBalances(ctx context.Context, tx pgx.Tx, userID int, accountIDs ...int) (map[int]decimal.Decimal, error) {
	unique := make(map[int]struct{}, len(accountIDs))
	ids := make([]int, 0, len(accountIDs))
	for _, id := range accountIDs {
		if _, ok := unique[id]; !ok {
			unique[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	balances := make(map[int]decimal.Decimal, len(ids))
	for _, id := range ids {
		balance, err := lockAccountBalance(ctx, tx, id, userID)
		if err != nil {
			return nil, err
		}
		balances[id] = balance
	}
	return balances, nil
}

func writeAccountBalance(ctx context.Context, tx pgx.Tx, accountID int, balance decimal.Decimal) error {
	_, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1, updated_at = now() WHERE id = $2`, balance, accountID)
	if err != nil {
		return fmt.Errorf("ошибка обновления баланса счёта: %v", err)
	}
	return nil
}

// lockTransactionRow читает и блокирует существующую транзакцию перед
// обновлением или удалением.
func lockTransactionRow(ctx context.Context, tx pgx.Tx, transactionID, userID int) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, account_id, category_id, amount, type
		FROM transactions
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`

	old := &models.Transaction{}
	err := tx.QueryRow(ctx, query, transactionID, userID).Scan(
		&old.ID,
		&old.UserID,
		&old.AccountID,
		&old.CategoryID,
		&old.Amount,
		&old.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: транзакция с ID %d", ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("ошибка при получении транзакции: %v", err)
	}
	return old, nil
}

func checkCategoryOwned(ctx context.Context, tx pgx.Tx, categoryID, userID int) error {
	var id int
	err := tx.QueryRow(ctx, `SELECT id FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: категория с ID %d", ErrNotFound, categoryID)
		}
		return fmt.Errorf("ошибка при проверке категории: %v", err)
	}
	return nil
}
