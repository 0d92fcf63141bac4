package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/logger"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// goalResponse дополняет цель производным прогрессом в процентах.
type goalResponse struct {
	models.Goal
	ProgressPct decimal.Decimal `json:"progress_pct"`
}

func toGoalResponse(goal models.Goal) goalResponse {
	return goalResponse{Goal: goal, ProgressPct: goal.ProgressPct()}
}

func CreateGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var goal models.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод данных"})
			return
		}
		goal.UserID = currentUserID(c)

		if err := database.CreateGoal(pool, &goal); err != nil {
			logger.Get().Error("ошибка создания цели", zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при создании цели", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, toGoalResponse(goal))
	}
}

func GetGoalsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := database.GetAllGoals(pool, currentUserID(c))
		if err != nil {
			logger.Get().Error("ошибка получения целей", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении списка целей"})
			return
		}

		response := make([]goalResponse, 0, len(goals))
		for _, goal := range goals {
			response = append(response, toGoalResponse(goal))
		}
		c.JSON(http.StatusOK, response)
	}
}

func GetGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор цели"})
			return
		}

		goal, err := database.GetGoalByID(pool, id, currentUserID(c))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": "Цель не найдена"})
			return
		}
		c.JSON(http.StatusOK, toGoalResponse(*goal))
	}
}

func UpdateGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор цели"})
			return
		}

		var goal models.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод данных"})
			return
		}
		goal.ID = id
		goal.UserID = currentUserID(c)

		if err := database.UpdateGoal(pool, &goal); err != nil {
			logger.Get().Error("ошибка обновления цели", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при обновлении цели"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Цель успешно обновлена"})
	}
}

func DeleteGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор цели"})
			return
		}

		if err := database.DeleteGoal(pool, id, currentUserID(c)); err != nil {
			logger.Get().Error("ошибка удаления цели", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при удалении цели"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Цель успешно удалена"})
	}
}
