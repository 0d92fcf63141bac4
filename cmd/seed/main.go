package main

import (
	"flag"
	"log"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

func main() {
	numUsers := flag.Int("users", 5, "сколько тестовых пользователей создать")
	flag.Parse()

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(database.ConnString()); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	if err := utils.GenerateTestData(pool, *numUsers); err != nil {
		log.Fatalf("Ошибка генерации тестовых данных: %v", err)
	}

	log.Println("Генерация тестовых данных завершена успешно.")
}
