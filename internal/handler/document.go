package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/domain"
	"github.com/set-night/docchat/internal/telegram"
)

func (h *Handler) handleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Document == nil {
		return
	}

	doc := telegram.NewDocument(b, msg.Document)
	err := h.assistant.Upload.Submit(ctx, doc)
	if err == nil {
		h.tgLogger.LogDocument("uploaded", doc.Name())
		return
	}

	if text := uploadErrorText(err); text != "" {
		telegram.SendText(ctx, b, msg.Chat.ID, text, nil)
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) || errors.Is(err, domain.ErrSessionActive) || errors.Is(err, domain.ErrUploadInProgress) {
		slog.Info("upload refused", "file", doc.Name(), "reason", err)
		return
	}
	slog.Error("upload failed", "file", doc.Name(), "error", err)
	h.tgLogger.LogError(err, "upload "+doc.Name())
}

// uploadErrorText is what the user sees when a document is not accepted.
func uploadErrorText(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return config.InvalidFileText
	case errors.Is(err, domain.ErrSessionActive):
		return config.SessionActiveText
	case errors.Is(err, domain.ErrUploadInProgress):
		return config.UploadRunningText
	default:
		return config.UploadErrorPrefix + err.Error()
	}
}
