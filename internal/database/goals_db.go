package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func CreateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	if err := goal.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO goals (user_id, name, target_amount, current_amount, target_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении цели: %v", err)
	}
	return nil
}

func GetGoalByID(pool *pgxpool.Pool, goalID, userID int) (*models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, target_date, created_at
		FROM goals
		WHERE id = $1 AND user_id = $2`

	goal := &models.Goal{}
	err := pool.QueryRow(context.Background(), query, goalID, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.TargetDate,
		&goal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: цель с ID %d", ErrNotFound, goalID)
		}
		return nil, fmt.Errorf("ошибка при получении цели: %v", err)
	}

	return goal, nil
}

func GetAllGoals(pool *pgxpool.Pool, userID int) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, target_date, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении целей: %v", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount,
			&goal.CurrentAmount, &goal.TargetDate, &goal.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

func UpdateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	if err := goal.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, current_amount = $3, target_date = $4
		WHERE id = $5 AND user_id = $6`

	result, err := pool.Exec(context.Background(), query,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.ID,
		goal.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления цели: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: цель с ID %d", ErrNotFound, goal.ID)
	}
	return nil
}

func DeleteGoal(pool *pgxpool.Pool, goalID, userID int) error {
	query := `
		DELETE FROM goals
		WHERE id = $1 AND user_id = $2`

	result, err := pool.Exec(context.Background(), query, goalID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления цели: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: цель с ID %d", ErrNotFound, goalID)
	}
	return nil
}
