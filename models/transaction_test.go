package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func validTransaction() *models.Transaction {
	return &models.Transaction{
		UserID:     1,
		AccountID:  1,
		CategoryID: 1,
		Amount:     decimal.NewFromFloat(100.50),
		Type:       models.TransactionIncome,
		Date:       time.Now(),
	}
}

func TestTransactionSignedEffect(t *testing.T) {
	tr := validTransaction()

	if !tr.SignedEffect().Equal(decimal.NewFromFloat(100.50)) {
		t.Errorf("вклад дохода не совпадает: получили %s, хотели 100.5", tr.SignedEffect())
	}

	tr.Type = models.TransactionExpense
	if !tr.SignedEffect().Equal(decimal.NewFromFloat(-100.50)) {
		t.Errorf("вклад расхода не совпадает: получили %s, хотели -100.5", tr.SignedEffect())
	}
}

func TestTransactionValidate(t *testing.T) {
	tr := validTransaction()
	if err := tr.Validate(); err != nil {
		t.Fatalf("корректная транзакция не прошла проверку: %v", err)
	}

	tr = validTransaction()
	tr.Type = "transfer"
	if err := tr.Validate(); !errors.Is(err, models.ErrValidation) {
		t.Errorf("неизвестный тип транзакции должен отклоняться, получили %v", err)
	}

	tr = validTransaction()
	tr.Amount = decimal.Zero
	if err := tr.Validate(); !errors.Is(err, models.ErrValidation) {
		t.Errorf("нулевая сумма должна отклоняться, получили %v", err)
	}

	tr = validTransaction()
	tr.Amount = decimal.NewFromInt(-5)
	if err := tr.Validate(); !errors.Is(err, models.ErrValidation) {
		t.Errorf("отрицательная сумма должна отклоняться, получили %v", err)
	}

	tr = validTransaction()
	tr.AccountID = 0
	if err := tr.Validate(); !errors.Is(err, models.ErrValidation) {
		t.Errorf("транзакция без счёта должна отклоняться, получили %v", err)
	}
}

// Баланс считается в точной десятичной арифметике: после 10000 чередующихся
// транзакций по 0.01 дрейфа быть не должно.
func TestSignedEffectNoFloatDrift(t *testing.T) {
	balance := decimal.Zero
	cent := decimal.NewFromFloat(0.01)

	for i := 0; i < 10000; i++ {
		tr := validTransaction()
		tr.Amount = cent
		if i%2 == 0 {
			tr.Type = models.TransactionIncome
		} else {
			tr.Type = models.TransactionExpense
		}
		balance = balance.Add(tr.SignedEffect())
	}

	if !balance.Equal(decimal.Zero) {
		t.Errorf("после 10000 чередующихся транзакций по 0.01 баланс должен быть 0, получили %s", balance)
	}
}

func TestMonthStart(t *testing.T) {
	date := time.Date(2025, time.March, 17, 14, 30, 45, 0, time.UTC)
	start := models.MonthStart(date)

	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("начало месяца не совпадает: получили %v, хотели %v", start, want)
	}

	// Первый день месяца не меняется
	if !models.MonthStart(want).Equal(want) {
		t.Errorf("MonthStart от первого дня месяца должен вернуть ту же дату")
	}
}
