package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser регистрирует нового пользователя. Пароль хранится только
// в виде bcrypt-хеша.
func RegisterUser(pool *pgxpool.Pool, user *models.User) error {
	if user.Username == "" || user.Email == "" || user.Password == "" {
		return fmt.Errorf("%w: имя пользователя, email и пароль обязательны", models.ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %v", err)
	}

	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err = pool.QueryRow(context.Background(), query, user.Username, user.Email, hashedPassword).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: имя пользователя или email уже заняты", models.ErrValidation)
		}
		return fmt.Errorf("ошибка при добавлении пользователя: %v", err)
	}
	return nil
}

// AuthenticateUser проверяет email и пароль, возвращает пользователя без
// хеша пароля.
func AuthenticateUser(pool *pgxpool.Pool, email, password string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, email, password, created_at FROM users WHERE email = $1`
	err := pool.QueryRow(context.Background(), query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("неверный пароль")
	}

	user.Password = ""
	return &user, nil
}

func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, username, email, created_at FROM users WHERE id = $1`

	var user models.User
	err := pool.QueryRow(context.Background(), query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: пользователь с ID %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %v", err)
	}

	return &user, nil
}

// UserExists проверяет, занято ли имя пользователя или email. Совпадение
// по любому из двух параметров даёт true.
func UserExists(pool *pgxpool.Pool, username, email string) (bool, error) {
	exists := false

	if username != "" {
		var found bool
		err := pool.QueryRow(context.Background(),
			`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&found)
		if err != nil {
			return false, fmt.Errorf("ошибка при проверке имени пользователя: %v", err)
		}
		exists = exists || found
	}

	if email != "" {
		var found bool
		err := pool.QueryRow(context.Background(),
			`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&found)
		if err != nil {
			return false, fmt.Errorf("ошибка при проверке email: %v", err)
		}
		exists = exists || found
	}

	return exists, nil
}
