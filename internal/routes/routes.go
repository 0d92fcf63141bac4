package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/handlers"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/middleware"
)

// SetupRouter собирает все маршруты API. Ресурсные коллекции доступны
// только с валидным bearer-токеном.
func SetupRouter(pool *pgxpool.Pool) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", handlers.RegisterHandler(pool))
	auth.POST("/login", handlers.LoginHandler(pool))
	auth.GET("/check-user", handlers.CheckUserHandler(pool))
	auth.GET("/me", middleware.AuthMiddleware, handlers.MeHandler(pool))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware)

	protected.POST("/accounts", handlers.CreateAccountHandler(pool))
	protected.GET("/accounts", handlers.GetAccountsHandler(pool))
	protected.GET("/accounts/:id", handlers.GetAccountHandler(pool))
	protected.PUT("/accounts/:id", handlers.UpdateAccountHandler(pool))
	protected.DELETE("/accounts/:id", handlers.DeleteAccountHandler(pool))

	protected.POST("/categories", handlers.CreateCategoryHandler(pool))
	protected.GET("/categories", handlers.GetCategoriesHandler(pool))
	protected.GET("/categories/:id", handlers.GetCategoryHandler(pool))
	protected.PUT("/categories/:id", handlers.UpdateCategoryHandler(pool))
	protected.DELETE("/categories/:id", handlers.DeleteCategoryHandler(pool))

	protected.POST("/transactions", handlers.CreateTransactionHandler(pool))
	protected.GET("/transactions", handlers.GetTransactionsHandler(pool))
	protected.GET("/transactions/:id", handlers.GetTransactionHandler(pool))
	protected.PUT("/transactions/:id", handlers.UpdateTransactionHandler(pool))
	protected.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool))

	protected.POST("/budgets", handlers.CreateBudgetHandler(pool))
	protected.GET("/budgets", handlers.GetBudgetsHandler(pool))
	protected.GET("/budgets/current", handlers.GetCurrentBudgetsHandler(pool))
	protected.GET("/budgets/:id", handlers.GetBudgetHandler(pool))
	protected.PUT("/budgets/:id", handlers.UpdateBudgetHandler(pool))
	protected.DELETE("/budgets/:id", handlers.DeleteBudgetHandler(pool))

	protected.POST("/goals", handlers.CreateGoalHandler(pool))
	protected.GET("/goals", handlers.GetGoalsHandler(pool))
	protected.GET("/goals/:id", handlers.GetGoalHandler(pool))
	protected.PUT("/goals/:id", handlers.UpdateGoalHandler(pool))
	protected.DELETE("/goals/:id", handlers.DeleteGoalHandler(pool))

	return r
}
