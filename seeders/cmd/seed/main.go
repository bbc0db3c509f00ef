package main

import (
	"context"
	"flag"
	"log"

	"quotation-system/pkg/config"
	"quotation-system/pkg/database/postgresql"
	"quotation-system/seeders"
)

func main() {
	runUsers := flag.Bool("users", false, "Создать стартовых пользователей")
	runDemo := flag.Bool("demo", false, "Наполнить демонстрационными данными (клиенты, запросы, позиции)")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	flag.Parse()

	if !*runUsers && !*runDemo && !*runAll {
		log.Println("Не выбран ни один сидер для запуска.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	ctx := context.Background()

	if *runAll || *runUsers {
		if err := seeders.SeedUsers(ctx, dbPool); err != nil {
			log.Fatalf("ошибка сидера пользователей: %v", err)
		}
	}
	if *runAll || *runDemo {
		if err := seeders.SeedDemoData(ctx, dbPool); err != nil {
			log.Fatalf("ошибка демо-сидера: %v", err)
		}
	}

	log.Println("✅ Сидирование завершено.")
}
