// cmd/migrate/main.go
package main

import (
	"database/sql"
	"log/slog"
	"os"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/logger"
	"subscription-tracker/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	cfg := config.MustLoad()
	logger.Setup(cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DBConn)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		slog.Error("Failed to set dialect", "error", err)
		os.Exit(1)
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	slog.Info("Running migrations", "command", command)
	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		slog.Error("Unknown command, expected up, down or status", "command", command)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Migrations applied")
}
