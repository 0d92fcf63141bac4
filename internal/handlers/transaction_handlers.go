package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/logger"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// CreateTransactionHandler создаёт транзакцию; баланс счёта обновляется
// той же операцией в слое БД.
func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод", "details": err.Error()})
			return
		}
		transaction.UserID = currentUserID(c)

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			logger.Get().Error("ошибка создания транзакции", zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка создания транзакции", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, transaction)
	}
}

// GetTransactionsHandler возвращает транзакции пользователя. Поддерживаются
// фильтры type, category_id и date (точное совпадение), а также поиск по
// заметкам через search. Сортировка — по дате по убыванию.
func GetTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := database.TransactionFilter{
			Type:   c.Query("type"),
			Search: c.Query("search"),
		}

		if raw := c.Query("category_id"); raw != "" {
			categoryID, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор категории"})
				return
			}
			filter.CategoryID = categoryID
		}

		if raw := c.Query("date"); raw != "" {
			date, err := time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата, ожидается формат YYYY-MM-DD"})
				return
			}
			filter.Date = &date
		}

		transactions, err := database.GetTransactions(pool, currentUserID(c), filter)
		if err != nil {
			logger.Get().Error("ошибка получения транзакций", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения транзакций"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

func GetTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор транзакции"})
			return
		}

		transaction, err := database.GetTransactionByID(pool, id, currentUserID(c))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": "Транзакция не найдена"})
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

// UpdateTransactionHandler меняет транзакцию; старый вклад в баланс
// снимается, новый применяется.
func UpdateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор транзакции"})
			return
		}

		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}
		transaction.ID = id
		transaction.UserID = currentUserID(c)

		if err := database.UpdateTransaction(pool, &transaction); err != nil {
			logger.Get().Error("ошибка обновления транзакции", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка обновления транзакции", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

func DeleteTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор транзакции"})
			return
		}

		if err := database.DeleteTransaction(pool, id, currentUserID(c)); err != nil {
			logger.Get().Error("ошибка удаления транзакции", zap.Int("id", id), zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка удаления транзакции"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Транзакция успешно удалена"})
	}
}
