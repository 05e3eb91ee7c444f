package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/telegram"
)

func (h *Handler) handleClose(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.askCloseConfirmation(ctx, b, update.Message.Chat.ID)
}

func (h *Handler) handleCloseButton(ctx context.Context, b *bot.Bot, update *models.Update) {
	answerCallback(ctx, b, update, "")
	if update.CallbackQuery.Message.Message == nil {
		return
	}
	h.askCloseConfirmation(ctx, b, update.CallbackQuery.Message.Message.Chat.ID)
}

func (h *Handler) askCloseConfirmation(ctx context.Context, b *bot.Bot, chatID int64) {
	s, ok := h.assistant.Session.Current()
	if !ok {
		telegram.SendText(ctx, b, chatID, config.NoDocumentText, nil)
		return
	}

	nonce := h.confirmations.Issue(s.StoreID)
	telegram.SendText(ctx, b, chatID, config.ConfirmResetText, telegram.ConfirmResetKeyboard(nonce))
}

func (h *Handler) handleResetYes(ctx context.Context, b *bot.Bot, update *models.Update) {
	nonce := strings.TrimPrefix(update.CallbackQuery.Data, telegram.CallbackResetYes)

	s, active := h.assistant.Session.Current()
	if !active || !h.confirmations.Redeem(nonce, s.StoreID) {
		answerCallback(ctx, b, update, config.ConfirmExpiredText)
		h.dropPrompt(ctx, b, update)
		return
	}

	answerCallback(ctx, b, update, "")
	h.dropPrompt(ctx, b, update)
	h.assistant.Reset.Reset(ctx, true)
	h.tgLogger.LogDocument("closed", s.FileName)
}

func (h *Handler) handleResetNo(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.confirmations.Discard(strings.TrimPrefix(update.CallbackQuery.Data, telegram.CallbackResetNo))
	answerCallback(ctx, b, update, "Keeping the document open.")
	h.dropPrompt(ctx, b, update)
	h.assistant.Reset.Reset(ctx, false)
}

// dropPrompt removes the confirmation message so its buttons cannot be
// pressed again.
func (h *Handler) dropPrompt(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}
	if _, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: msg.Chat.ID, MessageID: msg.ID}); err != nil {
		slog.Warn("delete confirmation prompt", "error", err)
	}
}
