package database_test

import (
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// testPool подключается к тестовой базе. Без настроенной БД
// интеграционные тесты пропускаются.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if err := godotenv.Load(); err != nil && os.Getenv("DATABASE_URL") == "" && os.Getenv("DB_HOST") == "" {
		t.Skip("БД не настроена, пропускаем интеграционный тест")
	}

	pool, err := database.ConnectDB()
	if err != nil {
		t.Skipf("ошибка подключения к БД: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.RunMigrations(database.ConnString()); err != nil {
		t.Fatalf("ошибка применения миграций: %v", err)
	}

	return pool
}

func testUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()

	user := &models.User{
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 10),
	}
	if err := database.RegisterUser(pool, user); err != nil {
		t.Fatalf("ошибка регистрации тестового пользователя: %v", err)
	}
	return user
}

func testAccount(t *testing.T, pool *pgxpool.Pool, userID int) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     gofakeit.Company(),
		Currency: models.DefaultCurrency,
	}
	if err := database.CreateAccount(pool, account); err != nil {
		t.Fatalf("ошибка создания тестового счёта: %v", err)
	}
	return account
}

func testCategory(t *testing.T, pool *pgxpool.Pool, userID int, categoryType string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   gofakeit.Word(),
		Type:   categoryType,
	}
	if err := database.CreateCategory(pool, category); err != nil {
		t.Fatalf("ошибка создания тестовой категории: %v", err)
	}
	return category
}
