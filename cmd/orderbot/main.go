package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"orderbot/internal/bot"
	"orderbot/internal/config"
	"orderbot/internal/database"
	"orderbot/internal/metrics"
	"orderbot/internal/server"
	"orderbot/internal/service"
	"orderbot/internal/worker"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(context.Background(), db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	metrics.Register()

	// Services
	orderStore := service.NewOrderStore(db)
	adminChecker := service.NewAdminChecker(db, cfg.AdminChatID)
	webappClient := service.NewWebAppClient(cfg.WebAppURL, cfg.WebAppTokenSecret)

	// Telegram
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		slog.Error("failed to connect to telegram", "error", err)
		os.Exit(1)
	}
	slog.Info("authorized", "account", api.Self.UserName)

	b := bot.New(api, orderStore, adminChecker, webappClient, cfg.AdminChatID, cfg.WebAppURL)

	// Worker
	notifier := worker.NewNotifier(orderStore, webappClient, b)

	// Ops server
	srv := &http.Server{
		Addr:         cfg.OpsAddress,
		Handler:      server.New(db, orderStore),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go notifier.Start(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	go b.Run(ctx, api.GetUpdatesChan(u))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting ops server", "addr", cfg.OpsAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("ops server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop worker and update loop
	api.StopReceivingUpdates()

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("ops server shutdown failed", "error", err)
	}

	slog.Info("bot stopped")
}
