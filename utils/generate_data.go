package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// GenerateTestData наполняет базу тестовыми данными для локальной
// разработки: пользователи, счета, категории, транзакции, бюджеты и цели.
func GenerateTestData(pool *pgxpool.Pool, numUsers int) error {
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Username: gofakeit.Username(),
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 10),
		}
		if err := database.RegisterUser(pool, user); err != nil {
			return fmt.Errorf("ошибка при добавлении пользователя: %v", err)
		}

		if err := generateUserData(pool, user.ID); err != nil {
			return err
		}
	}
	return nil
}

func generateUserData(pool *pgxpool.Pool, userID int) error {
	account := &models.Account{
		UserID:   userID,
		Name:     gofakeit.Company(),
		Currency: models.DefaultCurrency,
		Notes:    gofakeit.Sentence(5),
	}
	if err := database.CreateAccount(pool, account); err != nil {
		return fmt.Errorf("ошибка при добавлении счёта: %v", err)
	}

	categories := make([]*models.Category, 0, 4)
	for i := 0; i < 4; i++ {
		category := &models.Category{
			UserID: userID,
			Name:   gofakeit.Word(),
			Type:   randomCategoryType(),
		}
		if err := database.CreateCategory(pool, category); err != nil {
			return fmt.Errorf("ошибка при добавлении категории: %v", err)
		}
		categories = append(categories, category)
	}

	for i := 0; i < 20; i++ {
		category := categories[rand.Intn(len(categories))]
		transaction := &models.Transaction{
			UserID:     userID,
			AccountID:  account.ID,
			CategoryID: category.ID,
			Amount:     decimal.NewFromFloat(gofakeit.Price(1, 1000)).Round(2),
			Type:       category.Type,
			Notes:      gofakeit.Sentence(5),
			Date:       time.Now().AddDate(0, 0, -rand.Intn(30)),
		}
		if err := database.CreateTransaction(pool, transaction); err != nil {
			return fmt.Errorf("ошибка при добавлении транзакции: %v", err)
		}
	}

	budget := &models.Budget{
		UserID:     userID,
		Name:       gofakeit.Word(),
		CategoryID: categories[0].ID,
		Amount:     decimal.NewFromFloat(gofakeit.Price(100, 2000)).Round(2),
		Month:      models.MonthStart(time.Now()),
	}
	if err := database.CreateBudget(pool, budget); err != nil {
		return fmt.Errorf("ошибка при добавлении бюджета: %v", err)
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          gofakeit.Word(),
		TargetAmount:  decimal.NewFromFloat(gofakeit.Price(1000, 10000)).Round(2),
		CurrentAmount: decimal.NewFromFloat(gofakeit.Price(0, 1000)).Round(2),
	}
	if err := database.CreateGoal(pool, goal); err != nil {
		return fmt.Errorf("ошибка при добавлении цели: %v", err)
	}

	return nil
}

func randomCategoryType() string {
	if rand.Intn(2) == 0 {
		return models.CategoryExpense
	}
	return models.CategoryIncome
}
