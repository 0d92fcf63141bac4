package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/middleware"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// currentUserID достаёт ID пользователя, положенный auth-middleware.
func currentUserID(c *gin.Context) int {
	return c.GetInt(middleware.UserIDKey)
}

// errStatus переводит ошибку нижних слоёв в HTTP-статус: ошибки проверки
// данных — 400, отсутствующие или чужие записи — 404, исчерпанные повторы
// конкурентного обновления — 409, всё остальное — 500.
func errStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
