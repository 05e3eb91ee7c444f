package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/handler"
	"github.com/set-night/docchat/internal/logging"
	"github.com/set-night/docchat/internal/middleware"
	"github.com/set-night/docchat/internal/service"
	"github.com/set-night/docchat/internal/telegram"
)

func main() {
	// Setup structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, closeLog := logging.New(cfg.Log, os.Stdout)
	defer closeLog.Close()
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := service.NewDocAPIService(cfg.API.BaseURL, cfg.API.RequestTimeout)

	// Filled in once the bot exists.
	var tgLogger *telegram.TelegramLogger

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(middleware.ErrorReporterFunc(func(err error, where string) {
				tgLogger.LogError(err, where)
			})),
			middleware.Logging(),
			middleware.OwnerOnly(cfg),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil || !strings.HasPrefix(update.Message.Text, "/") {
				return
			}
			telegram.SendText(ctx, b, update.Message.Chat.ID, "Unknown command. Try /help.", nil)
		}),
	}

	b, err := bot.New(cfg.Bot.Token, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	if cfg.Bot.DropPendingUpdates {
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			slog.Warn("failed to drop pending updates", "error", err)
		}
	}

	tgLogger = telegram.NewTelegramLogger(b, cfg.Bot)

	// The owner's private chat has the same ID as the owner.
	ui := telegram.NewChatUI(b, cfg.Bot.OwnerID)
	assistant := service.NewAssistant(api, ui, service.WithLogger(slog.Default()))

	h := handler.New(handler.Deps{
		Bot:       b,
		Cfg:       cfg,
		Assistant: assistant,
		TgLogger:  tgLogger,
	})
	h.Register()

	// Start bot
	slog.Info("starting bot", "username", me.Username, "api", cfg.API.BaseURL)
	b.Start(ctx)

	// Nothing survives a restart, so the remote store would be orphaned.
	if s, ok := assistant.Session.Current(); ok {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := api.DeleteStore(cleanupCtx, s.StoreID); err != nil {
			slog.Warn("delete store on shutdown", "store_id", s.StoreID, "error", err)
		}
		cancel()
	}

	// Graceful shutdown
	slog.Info("bot stopped gracefully")
}
