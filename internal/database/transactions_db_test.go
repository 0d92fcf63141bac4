package database_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func TestCreateTransactionUpdatesBalance(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	account := testAccount(t, pool, user.ID)
	income := testCategory(t, pool, user.ID, models.CategoryIncome)
	expense := testCategory(t, pool, user.ID, models.CategoryExpense)

	tr := &models.Transaction{
		UserID:     user.ID,
		AccountID:  account.ID,
		CategoryID: income.ID,
		Amount:     decimal.NewFromFloat(100.50),
		Type:       models.TransactionIncome,
		Date:       time.Now(),
	}
	if err := database.CreateTransaction(pool, tr); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	updated, err := database.GetAccountByID(pool, account.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения счёта: %v", err)
	}
	if !updated.Balance.Equal(decimal.NewFromFloat(100.50)) {
		t.Errorf("баланс после дохода не совпадает: получили %s, хотели 100.50", updated.Balance)
	}

	tr2 := &models.Transaction{
		UserID:     user.ID,
		AccountID:  account.ID,
		CategoryID: expense.ID,
		Amount:     decimal.NewFromFloat(40.25),
		Type:       models.TransactionExpense,
		Date:       time.Now(),
	}
	if err := database.CreateTransaction(pool, tr2); err != nil {
		t.Fatalf("ошибка создания транзакции расхода: %v", err)
	}

	updated, err = database.GetAccountByID(pool, account.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения счёта: %v", err)
	}
	if !updated.Balance.Equal(decimal.NewFromFloat(60.25)) {
		t.Errorf("баланс после расхода не совпадает: получили %s, хотели 60.25", updated.Balance)
	}
}

func TestUpdateTransactionReversesOldEffect(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	account := testAccount(t, pool, user.ID)
	income := testCategory(t, pool, user.ID, models.CategoryIncome)

	tr := &models.Transaction{
		UserID:     user.ID,
		AccountID:  account.ID,
		CategoryID: income.ID,
		Amount:     decimal.NewFromInt(100),
		Type:       models.TransactionIncome,
		Date:       time.Now(),
	}
	if err := database.CreateTransaction(pool, tr); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	// Доход 100 превращается в расход 30: баланс должен стать -30
	tr.Amount = decimal.NewFromInt(30)
	tr.Type = models.TransactionExpense
	if err := database.UpdateTransaction(pool, tr); err != nil {
		t.Fatalf("ошибка обновления транзакции: %v", err)
	}

	updated, err := database.GetAccountByID(pool, account.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения счёта: %v", err)
	}
	if !updated.Balance.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("баланс после изменения транзакции не совпадает: получили %s, хотели -30", updated.Balance)
	}
}

func TestDeleteTransactionReversesEffect(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	account := testAccount(t, pool, user.ID)
	income := testCategory(t, pool, user.ID, models.CategoryIncome)

	tr := &models.Transaction{
		UserID:     user.ID,
		AccountID:  account.ID,
		CategoryID: income.ID,
		Amount:     decimal.NewFromFloat(55.55),
		Type:       models.TransactionIncome,
		Date:       time.Now(),
	}
	if err := database.CreateTransaction(pool, tr); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	if err := database.DeleteTransaction(pool, tr.ID, user.ID); err != nil {
		t.Fatalf("ошибка удаления транзакции: %v", err)
	}

	updated, err := database.GetAccountByID(pool, account.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения счёта: %v", err)
	}
	if !updated.Balance.Equal(decimal.Zero) {
		t.Errorf("баланс после удаления транзакции должен вернуться к 0, получили %s", updated.Balance)
	}
}

// Конкурентные записи по одному счёту сериализуются блокировкой строки:
// одновременные доход +100 и расход -40 дают ровно 60.
func TestConcurrentTransactionsNoLostUpdate(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	account := testAccount(t, pool, user.ID)
	income := testCategory(t, pool, user.ID, models.CategoryIncome)
	expense := testCategory(t, pool, user.ID, models.CategoryExpense)

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errs <- database.CreateTransaction(pool, &models.Transaction{
			UserID:     user.ID,
			AccountID:  account.ID,
			CategoryID: income.ID,
			Amount:     decimal.NewFromInt(100),
			Type:       models.TransactionIncome,
			Date:       time.Now(),
		})
	}()
	go func() {
		defer wg.Done()
		errs <- database.CreateTransaction(pool, &models.Transaction{
			UserID:     user.ID,
			AccountID:  account.ID,
			CategoryID: expense.ID,
			Amount:     decimal.NewFromInt(40),
			Type:       models.TransactionExpense,
			Date:       time.Now(),
		})
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("ошибка конкурентного создания транзакции: %v", err)
		}
	}

	updated, err := database.GetAccountByID(pool, account.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения счёта: %v", err)
	}
	if !updated.Balance.Equal(decimal.NewFromInt(60)) {
		t.Errorf("конкурентные транзакции потеряли обновление: получили %s, хотели 60", updated.Balance)
	}
}

// Чужие счета и категории недоступны: создание транзакции на счёт другого
// пользователя отклоняется как "не найдено".
func TestTransactionForeignAccountRejected(t *testing.T) {
	pool := testPool(t)
	owner := testUser(t, pool)
	ownerAccount := testAccount(t, pool, owner.ID)

	intruder := testUser(t, pool)
	intruderCategory := testCategory(t, pool, intruder.ID, models.CategoryIncome)

	tr := &models.Transaction{
		UserID:     intruder.ID,
		AccountID:  ownerAccount.ID,
		CategoryID: intruderCategory.ID,
		Amount:     decimal.NewFromInt(10),
		Type:       models.TransactionIncome,
		Date:       time.Now(),
	}
	err := database.CreateTransaction(pool, tr)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("транзакция на чужой счёт должна давать ErrNotFound, получили %v", err)
	}

	// Баланс владельца не изменился
	account, err := database.GetAccountByID(pool, ownerAccount.ID, owner.ID)
	if err != nil {
		t.Fatalf("ошибка получения счёта: %v", err)
	}
	if !account.Balance.Equal(decimal.Zero) {
		t.Errorf("чужая транзакция изменила баланс: %s", account.Balance)
	}
}

func TestTransactionValidationRejected(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	account := testAccount(t, pool, user.ID)
	income := testCategory(t, pool, user.ID, models.CategoryIncome)

	tr := &models.Transaction{
		UserID:     user.ID,
		AccountID:  account.ID,
		CategoryID: income.ID,
		Amount:     decimal.NewFromInt(-5),
		Type:       models.TransactionIncome,
		Date:       time.Now(),
	}
	if err := database.CreateTransaction(pool, tr); !errors.Is(err, models.ErrValidation) {
		t.Errorf("отрицательная сумма должна отклоняться, получили %v", err)
	}

	tr.Amount = decimal.NewFromInt(5)
	tr.Type = "transfer"
	if err := database.CreateTransaction(pool, tr); !errors.Is(err, models.ErrValidation) {
		t.Errorf("неизвестный тип должен отклоняться, получили %v", err)
	}
}
