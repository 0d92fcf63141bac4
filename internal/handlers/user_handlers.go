package handlers

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/logger"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/middleware"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("некорректный формат email")
	}
	return nil
}

// RegisterHandler регистрирует пользователя. Пароль в ответе не возвращается.
func RegisterHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных. Проверьте введённые значения."})
			return
		}

		if user.Username == "" || user.Email == "" || user.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Все поля обязательны для заполнения"})
			return
		}

		if err := validateEmail(user.Email); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := database.RegisterUser(pool, &user); err != nil {
			logger.Get().Error("ошибка регистрации пользователя", zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Ошибка регистрации"})
			return
		}

		user.Password = ""
		c.JSON(http.StatusCreated, user)
	}
}

// LoginHandler проверяет учётные данные и выдаёт bearer-токен.
func LoginHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&credentials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка ввода данных"})
			return
		}

		user, err := database.AuthenticateUser(pool, credentials.Email, credentials.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный email или пароль"})
			return
		}

		token, err := middleware.IssueToken(user.ID)
		if err != nil {
			logger.Get().Error("ошибка выдачи токена", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка авторизации"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// MeHandler возвращает данные аутентифицированного пользователя.
func MeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := database.GetUserByID(pool, currentUserID(c))
		if err != nil {
			logger.Get().Error("ошибка получения пользователя", zap.Error(err))
			c.JSON(errStatus(err), gin.H{"error": "Пользователь не найден"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		})
	}
}

// CheckUserHandler отвечает, занято ли имя пользователя или email.
// Использование: /api/auth/check-user?username=foo&email=bar@example.com
func CheckUserHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username")
		email := c.Query("email")

		exists, err := database.UserExists(pool, username, email)
		if err != nil {
			logger.Get().Error("ошибка проверки пользователя", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка проверки пользователя"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"exists": exists})
	}
}
