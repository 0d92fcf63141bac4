package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID         int             `json:"id" db:"id"`
	UserID     int             `json:"user_id" db:"user_id"`
	Name       string          `json:"name" db:"name"`
	CategoryID int             `json:"category_id" db:"category_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Month      time.Time       `json:"month" db:"month"` // Всегда первый день месяца
}

func (b *Budget) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: имя бюджета не указано", ErrValidation)
	}
	if !b.Amount.IsPositive() {
		return fmt.Errorf("%w: сумма бюджета должна быть положительной", ErrValidation)
	}
	if b.CategoryID <= 0 {
		return fmt.Errorf("%w: не указана категория бюджета", ErrValidation)
	}
	if b.Month.IsZero() {
		return fmt.Errorf("%w: не указан месяц бюджета", ErrValidation)
	}
	return nil
}

// MonthStart приводит дату к первому дню её месяца.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
