// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subscription-tracker/internal/auth"
	"subscription-tracker/internal/bot"
	"subscription-tracker/internal/config"
	"subscription-tracker/internal/events"
	"subscription-tracker/internal/handler"
	"subscription-tracker/internal/logger"
	"subscription-tracker/internal/service"
	"subscription-tracker/internal/storage/postgres"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.MustLoad()
	logger.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBConn)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := postgres.NewStorage(pool)
	tokenService := auth.NewTokenService(cfg)

	var publisher events.Publisher
	if cfg.AMQPURL != "" {
		client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			slog.Error("Failed to connect to AMQP", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		publisher = client
		slog.Info("Cancellation events enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	}

	svc := service.NewSubscriptionService(store, store, store, publisher)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(store, svc, tokenService)

	if cfg.TelegramBotToken != "" {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			slog.Error("Failed to initialize Telegram bot", "error", err)
			os.Exit(1)
		}
		if cfg.PublicURL == "" {
			slog.Warn("PUBLIC_URL not set, Telegram webhook not registered")
		} else if err := bot.SetWebhook(api, cfg.PublicURL, cfg.TelegramWebhookSecret); err != nil {
			slog.Error("Failed to set Telegram webhook", "error", err)
			os.Exit(1)
		}
		if cfg.TelegramWebhookSecret != "" {
			router.POST("/telegram", bot.New(api, store, svc, tokenService).WebhookHandler(cfg.TelegramWebhookSecret))
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Server started", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
