package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func CreateBudget(pool *pgxpool.Pool, budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	// Месяц бюджета хранится как первый день месяца
	budget.Month = models.MonthStart(budget.Month)

	if err := checkCategoryOwnedPool(pool, budget.CategoryID, budget.UserID); err != nil {
		return err
	}

	query := `
		INSERT INTO budgets (user_id, name, category_id, amount, month)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := pool.QueryRow(context.Background(), query,
		budget.UserID,
		budget.Name,
		budget.CategoryID,
		budget.Amount,
		budget.Month).Scan(&budget.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении бюджета: %v", err)
	}
	return nil
}

func GetBudgetByID(pool *pgxpool.Pool, budgetID, userID int) (*models.Budget, error) {
	query := `
		SELECT id, user_id, name, category_id, amount, month
		FROM budgets
		WHERE id = $1 AND user_id = $2`

	budget := &models.Budget{}
	err := pool.QueryRow(context.Background(), query, budgetID, userID).Scan(
		&budget.ID,
		&budget.UserID,
		&budget.Name,
		&budget.CategoryID,
		&budget.Amount,
		&budget.Month,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: бюджет с ID %d", ErrNotFound, budgetID)
		}
		return nil, fmt.Errorf("ошибка при получении бюджета: %v", err)
	}

	return budget, nil
}

func GetAllBudgets(pool *pgxpool.Pool, userID int) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, name, category_id, amount, month
		FROM budgets
		WHERE user_id = $1
		ORDER BY month DESC, id`

	return queryBudgets(pool, query, userID)
}

// GetCurrentMonthBudgets возвращает бюджеты, месяц которых совпадает с
// текущим календарным месяцем сервера.
func GetCurrentMonthBudgets(pool *pgxpool.Pool, userID int) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, name, category_id, amount, month
		FROM budgets
		WHERE user_id = $1 AND month = $2
		ORDER BY id`

	return queryBudgets(pool, query, userID, models.MonthStart(time.Now()))
}

func queryBudgets(pool *pgxpool.Pool, query string, args ...any) ([]models.Budget, error) {
	rows, err := pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бюджетов: %v", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Name, &budget.CategoryID,
			&budget.Amount, &budget.Month); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	return budgets, rows.Err()
}

func UpdateBudget(pool *pgxpool.Pool, budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	budget.Month = models.MonthStart(budget.Month)

	if err := checkCategoryOwnedPool(pool, budget.CategoryID, budget.UserID); err != nil {
		return err
	}

	query := `
		UPDATE budgets
		SET name = $1, category_id = $2, amount = $3, month = $4
		WHERE id = $5 AND user_id = $6`

	result, err := pool.Exec(context.Background(), query,
		budget.Name,
		budget.CategoryID,
		budget.Amount,
		budget.Month,
		budget.ID,
		budget.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления бюджета: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: бюджет с ID %d", ErrNotFound, budget.ID)
	}
	return nil
}

func DeleteBudget(pool *pgxpool.Pool, budgetID, userID int) error {
	query := `
		DELETE FROM budgets
		WHERE id = $1 AND user_id = $2`

	result, err := pool.Exec(context.Background(), query, budgetID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления бюджета: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: бюджет с ID %d", ErrNotFound, budgetID)
	}
	return nil
}

func checkCategoryOwnedPool(pool *pgxpool.Pool, categoryID, userID int) error {
	var id int
	err := pool.QueryRow(context.Background(),
		`SELECT id FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: категория с ID %d", ErrNotFound, categoryID)
		}
		return fmt.Errorf("ошибка при проверке категории: %v", err)
	}
	return nil
}
