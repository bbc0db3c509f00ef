package main

import (
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"quotation-system/pkg/config"
)

// Утилита миграций схемы: go run ./cmd/migrate -cmd up|down|status
func main() {
	cmd := flag.String("cmd", "up", "команда goose: up, down, status, version")
	dir := flag.String("dir", "migrations", "каталог с миграциями")
	flag.Parse()

	cfg := config.New()

	db, err := goose.OpenDBWithDriver("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("ошибка закрытия соединения: %v", err)
		}
	}()

	if err := goose.Run(*cmd, db, *dir, flag.Args()...); err != nil {
		log.Fatalf("goose %s: %v", *cmd, err)
	}
}
