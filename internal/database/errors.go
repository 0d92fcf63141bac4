package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound возвращается, когда запись не существует или принадлежит
	// другому пользователю. Наружу эти случаи неразличимы.
	ErrNotFound = errors.New("запись не найдена")

	// ErrConflict возвращается, когда конкурентное обновление баланса не
	// удалось после нескольких повторов.
	ErrConflict = errors.New("конфликт одновременного обновления")
)

// isSerializationError распознаёт ошибки сериализации и взаимной блокировки
// Postgres (40001, 40P01), которые имеет смысл повторить.
func isSerializationError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// isUniqueViolation распознаёт нарушение уникального ограничения (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505"
}
