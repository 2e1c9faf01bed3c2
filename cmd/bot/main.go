// cmd/bot/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"subscription-tracker/internal/auth"
	"subscription-tracker/internal/bot"
	"subscription-tracker/internal/config"
	"subscription-tracker/internal/events"
	"subscription-tracker/internal/logger"
	"subscription-tracker/internal/service"
	"subscription-tracker/internal/storage/postgres"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Long-polling front-end for local runs; production uses the webhook in cmd/api.
func main() {
	cfg := config.MustLoad()
	logger.Setup(cfg.LogLevel)

	if cfg.TelegramBotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pgxpool.New(ctx, cfg.DBConn)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := postgres.NewStorage(db)

	var publisher events.Publisher
	if cfg.AMQPURL != "" {
		client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			slog.Error("Failed to connect to AMQP", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		publisher = client
	}
	svc := service.NewSubscriptionService(store, store, store, publisher)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		slog.Error("Failed to initialize Telegram bot", "error", err)
		os.Exit(1)
	}
	// polling is refused while a webhook is registered
	if _, err := api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		slog.Warn("Failed to delete webhook", "error", err)
	}
	slog.Info("Bot started", "username", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)
	defer api.StopReceivingUpdates()

	bot.New(api, store, svc, auth.NewTokenService(cfg)).Run(ctx, updates)
	slog.Info("Bot stopped")
}
