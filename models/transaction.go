package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID         int             `json:"id" db:"id"`
	UserID     int             `json:"user_id" db:"user_id"`
	AccountID  int             `json:"account_id" db:"account_id"`
	CategoryID int             `json:"category_id" db:"category_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Type       string          `json:"type" db:"type"` // Возможные значения: "income", "expense"
	Notes      string          `json:"notes" db:"notes"`
	Date       time.Time       `json:"date" db:"transaction_date"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

// Validate проверяет транзакцию перед записью. Неизвестный тип и
// неположительная сумма отклоняются явно, а не игнорируются.
func (t *Transaction) Validate() error {
	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return fmt.Errorf("%w: неизвестный тип транзакции %q", ErrValidation, t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: сумма транзакции должна быть положительной", ErrValidation)
	}
	if t.AccountID <= 0 {
		return fmt.Errorf("%w: не указан счёт транзакции", ErrValidation)
	}
	if t.CategoryID <= 0 {
		return fmt.Errorf("%w: не указана категория транзакции", ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: не указана дата транзакции", ErrValidation)
	}
	return nil
}

// SignedEffect возвращает вклад транзакции в баланс счёта:
// +amount для дохода, -amount для расхода.
func (t *Transaction) SignedEffect() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
