package main

import (
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/logger"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/routes"
)

func main() {
	// .env необязателен, переменные могут прийти из окружения
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("GIN_MODE") != "release", os.Getenv("LOG_LEVEL")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	pool, err := database.ConnectDB()
	if err != nil {
		logger.Get().Fatal("ошибка подключения к БД", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(database.ConnString()); err != nil {
		logger.Get().Fatal("ошибка применения миграций", zap.Error(err))
	}

	scheduleBalanceRecalculation(pool)

	r := routes.SetupRouter(pool)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		logger.Get().Fatal("ошибка при запуске сервера", zap.Error(err))
	}
}

// scheduleBalanceRecalculation раз в сутки сверяет балансы счетов с суммой
// транзакций и чинит расхождения.
func scheduleBalanceRecalculation(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		if err := database.RecalculateAccountBalances(pool); err != nil {
			logger.Get().Error("ошибка пересчёта балансов", zap.Error(err))
		} else {
			logger.Get().Info("пересчёт балансов завершён успешно")
		}
	})
	if err != nil {
		logger.Get().Fatal("ошибка настройки CRON-задачи пересчёта балансов", zap.Error(err))
	}
	c.Start()
}
