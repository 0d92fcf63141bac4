package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/logger"
)

// RecalculateAccountBalances сверяет баланс каждого счёта с суммой вкладов
// его транзакций и исправляет расхождения. Запускается по расписанию как
// страховка инварианта баланса; каждый счёт пересчитывается в собственной
// транзакции с блокировкой строки.
func RecalculateAccountBalances(pool *pgxpool.Pool) error {
	ctx := context.Background()

	rows, err := pool.Query(ctx, `SELECT id, user_id FROM accounts ORDER BY id`)
	if err != nil {
		return fmt.Errorf("ошибка при получении счетов: %v", err)
	}
	defer rows.Close()

	type accountRef struct{ id, userID int }
	refs := []accountRef{}
	for rows.Next() {
		var ref accountRef
		if err := rows.Scan(&ref.id, &ref.userID); err != nil {
			return err
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, ref := range refs {
		if err := recalculateAccountBalance(ctx, pool, ref.id, ref.userID); err != nil {
			return err
		}
	}
	return nil
}

func recalculateAccountBalance(ctx context.Context, pool *pgxpool.Pool, accountID, userID int) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(ctx)

	stored, err := lockAccountBalance(ctx, tx, accountID, userID)
	if err != nil {
		return err
	}

	var computed decimal.Decimal
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE account_id = $1`
	if err := tx.QueryRow(ctx, query, accountID).Scan(&computed); err != nil {
		return fmt.Errorf("ошибка пересчёта баланса счёта %d: %v", accountID, err)
	}

	if stored.Equal(computed) {
		return tx.Rollback(ctx)
	}

	logger.Get().Warn("расхождение баланса счёта, исправляем",
		zap.Int("account_id", accountID),
		zap.String("stored", stored.String()),
		zap.String("computed", computed.String()))

	if err := writeAccountBalance(ctx, tx, accountID, computed); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
