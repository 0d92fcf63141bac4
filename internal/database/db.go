package database

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// ConnectDB собирает строку подключения из переменных окружения и
// открывает пул соединений.
func ConnectDB() (*pgxpool.Pool, error) {
	// Загрузить переменные из .env, если файл есть
	_ = godotenv.Load()

	pool, err := pgxpool.New(context.Background(), ConnString())
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("БД не отвечает: %v", err)
	}

	return pool, nil
}

func ConnString() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"), 5432, os.Getenv("DB_NAME"))
}
