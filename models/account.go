package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency используется, если валюта счёта не указана при создании.
const DefaultCurrency = "BDT"

type Account struct {
	ID        int             `json:"id" db:"id"`
	UserID    int             `json:"user_id" db:"user_id"`
	Name      string          `json:"name" db:"name"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	Currency  string          `json:"currency" db:"currency"`
	Notes     string          `json:"notes" db:"notes"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Validate проверяет обязательные поля счёта перед записью в базу.
func (a *Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: имя счёта не указано", ErrValidation)
	}
	if len(a.Currency) != 3 {
		return fmt.Errorf("%w: код валюты должен состоять из 3 букв, получено %q", ErrValidation, a.Currency)
	}
	return nil
}
