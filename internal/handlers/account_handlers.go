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

// CreateAccountHandler создаёт новый счёт
func CreateAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var account models.Account
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат счёта"})
			return
		}
		account.UserID = currentUserID(c)

		if err := database.CreateAccount(pool, &account); err != nil {
			logger.Get().Error("ошибка создания счёта", zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при создании счёта", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, account)
	}
}

func GetAccountsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		accounts, err := database.GetAllAccounts(pool, currentUserID(c))
		if err != nil {
			logger.Get().Error("ошибка получения счетов", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении списка счетов"})
			return
		}
		c.JSON(http.StatusOK, accounts)
	}
}

func GetAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор счёта"})
			return
		}

		account, err := database.GetAccountByID(pool, id, currentUserID(c))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": "Счёт не найден"})
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

func UpdateAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор счёта"})
			return
		}

		var account models.Account
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат счёта"})
			return
		}
		account.ID = id
		account.UserID = currentUserID(c)

		if err := database.UpdateAccount(pool, &account); err != nil {
			logger.Get().Error("ошибка обновления счёта", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при обновлении счёта"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Счёт успешно обновлён"})
	}
}

func DeleteAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор счёта"})
			return
		}

		if err := database.DeleteAccount(pool, id, currentUserID(c)); err != nil {
			logger.Get().Error("ошибка удаления счёта", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка при удалении счёта"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Счёт успешно удалён"})
	}
}
