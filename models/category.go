package models

import "fmt"

const (
	CategoryIncome  = "income"
	CategoryExpense = "expense"
)

type Category struct {
	ID     int    `json:"id" db:"id"`
	UserID int    `json:"user_id" db:"user_id"`
	Name   string `json:"name" db:"name"`
	Type   string `json:"type" db:"type"`
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: имя категории не указано", ErrValidation)
	}
	if c.Type != CategoryIncome && c.Type != CategoryExpense {
		return fmt.Errorf("%w: неизвестный тип категории %q", ErrValidation, c.Type)
	}
	return nil
}
