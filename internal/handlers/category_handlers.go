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

func CreateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат категории"})
			return
		}
		category.UserID = currentUserID(c)

		if err := database.CreateCategory(pool, &category); err != nil {
			logger.Get().Error("ошибка создания категории", zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при создании категории", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func GetCategoriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := database.GetAllCategories(pool, currentUserID(c))
		if err != nil {
			logger.Get().Error("ошибка получения категорий", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении списка категорий"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func GetCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор категории"})
			return
		}

		category, err := database.GetCategoryByID(pool, id, currentUserID(c))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": "Категория не найдена"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func UpdateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор категории"})
			return
		}

		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных для категории"})
			return
		}
		category.ID = id
		category.UserID = currentUserID(c)

		if err := database.UpdateCategory(pool, &category); err != nil {
			logger.Get().Error("ошибка обновления категории", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка обновления категории"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Категория успешно обновлена"})
	}
}

func DeleteCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор категории"})
			return
		}

		if err := database.DeleteCategory(pool, id, currentUserID(c)); err != nil {
			logger.Get().Error("ошибка удаления категории", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при удалении категории"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Категория успешно удалена"})
	}
}
