package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Goal struct {
	ID            int             `json:"id" db:"id"`
	UserID        int             `json:"user_id" db:"user_id"`
	Name          string          `json:"name" db:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount" db:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount" db:"current_amount"`
	TargetDate    *time.Time      `json:"target_date,omitempty" db:"target_date"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

func (g *Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: имя цели не указано", ErrValidation)
	}
	// Нулевая целевая сумма допустима, прогресс по ней определён как 0
	if g.TargetAmount.IsNegative() {
		return fmt.Errorf("%w: целевая сумма не может быть отрицательной", ErrValidation)
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("%w: накопленная сумма не может быть отрицательной", ErrValidation)
	}
	return nil
}

// ProgressPct возвращает прогресс цели в процентах (current/target * 100).
// Если целевая сумма не положительна, прогресс равен нулю.
func (g *Goal) ProgressPct() decimal.Decimal {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}

// RemainingAmount возвращает сумму, которую осталось накопить.
func (g *Goal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
