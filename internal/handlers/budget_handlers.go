package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/logger"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func CreateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var budget models.Budget
		if err := c.ShouldBindJSON(&budget); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод данных"})
			return
		}
		budget.UserID = currentUserID(c)

		if err := database.CreateBudget(pool, &budget); err != nil {
			logger.Get().Error("ошибка создания бюджета", zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при создании бюджета", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, budget)
	}
}

func GetBudgetsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		budgets, err := database.GetAllBudgets(pool, currentUserID(c))
		if err != nil {
			logger.Get().Error("ошибка получения бюджетов", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении списка бюджетов"})
			return
		}
		c.JSON(http.StatusOK, budgets)
	}
}

// GetCurrentBudgetsHandler возвращает бюджеты текущего календарного месяца.
func GetCurrentBudgetsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		budgets, err := database.GetCurrentMonthBudgets(pool, currentUserID(c))
		if err != nil {
			logger.Get().Error("ошибка получения бюджетов текущего месяца", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении бюджетов текущего месяца"})
			return
		}
		c.JSON(http.StatusOK, budgets)
	}
}

func GetBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор бюджета"})
			return
		}

		budget, err := database.GetBudgetByID(pool, id, currentUserID(c))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": "Бюджет не найден"})
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}

func UpdateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор бюджета"})
			return
		}

		var budget models.Budget
		if err := c.ShouldBindJSON(&budget); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод данных"})
			return
		}
		budget.ID = id
		budget.UserID = currentUserID(c)

		if err := database.UpdateBudget(pool, &budget); err != nil {
			logger.Get().Error("ошибка обновления бюджета", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при обновлении бюджета"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Бюджет успешно обновлён"})
	}
}

func DeleteBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор бюджета"})
			return
		}

		if err := database.DeleteBudget(pool, id, currentUserID(c)); err != nil {
			logger.Get().Error("ошибка удаления бюджета", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при удалении бюджета"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Бюджет успешно удалён"})
	}
}
