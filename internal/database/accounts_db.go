package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func CreateAccount(pool *pgxpool.Pool, account *models.Account) error {
	if account.Currency == "" {
		account.Currency = models.DefaultCurrency
	}
	if err := account.Validate(); err != nil {
		return err
	}

	// Баланс при создании всегда нулевой: им управляют только транзакции,
	// иначе сверка балансов сочтёт начальное значение расхождением.
	account.Balance = decimal.Zero

	query := `
		INSERT INTO accounts (user_id, name, balance, currency, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, balance, created_at, updated_at`

	err := pool.QueryRow(context.Background(), query,
		account.UserID,
		account.Name,
		account.Balance,
		account.Currency,
		account.Notes).Scan(&account.ID, &account.Balance, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении счёта: %v", err)
	}
	return nil
}

func GetAccountByID(pool *pgxpool.Pool, accountID, userID int) (*models.Account, error) {
	query := `
		SELECT id, user_id, name, balance, currency, notes, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND user_id = $2`

	account := &models.Account{}
	err := pool.QueryRow(context.Background(), query, accountID, userID).Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Balance,
		&account.Currency,
		&account.Notes,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: счёт с ID %d", ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("ошибка при получении счёта: %v", err)
	}

	return account, nil
}

// GetAllAccounts извлекает все счета пользователя, новые первыми.
func GetAllAccounts(pool *pgxpool.Pool, userID int) ([]models.Account, error) {
	query := `
		SELECT id, user_id, name, balance, currency, notes, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении счетов: %v", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.UserID, &account.Name, &account.Balance,
			&account.Currency, &account.Notes, &account.CreatedAt, &account.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// UpdateAccount обновляет имя, валюту и заметки счёта. Баланс отсюда
// менять нельзя, им управляют только транзакции.
func UpdateAccount(pool *pgxpool.Pool, account *models.Account) error {
	if account.Currency == "" {
		account.Currency = models.DefaultCurrency
	}
	if err := account.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE accounts
		SET name = $1, currency = $2, notes = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5`

	result, err := pool.Exec(context.Background(), query,
		account.Name,
		account.Currency,
		account.Notes,
		account.ID,
		account.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления счёта: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: счёт с ID %d", ErrNotFound, account.ID)
	}
	return nil
}

func DeleteAccount(pool *pgxpool.Pool, accountID, userID int) error {
	query := `
		DELETE FROM accounts
		WHERE id = $1 AND user_id = $2`

	result, err := pool.Exec(context.Background(), query, accountID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления счёта: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: счёт с ID %d", ErrNotFound, accountID)
	}
	return nil
}
