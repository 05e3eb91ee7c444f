package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const privateBotText = "This bot is private."

// OwnerOnly drops every update that does not come from the owner in a
// private chat. The bot serves a single user with a single document.
func OwnerOnly(cfg interface{ IsOwner(int64) bool }) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			_, chatID, userID := describe(update)
			if userID != 0 && cfg.IsOwner(userID) && chatID == userID {
				next(ctx, b, update)
				return
			}

			slog.Info("ignoring update from stranger", "chat_id", chatID, "user_id", userID)
			switch {
			case update.Message != nil && update.Message.Chat.Type == "private":
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   privateBotText,
				})
			case update.CallbackQuery != nil:
				b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
					CallbackQueryID: update.CallbackQuery.ID,
					Text:            privateBotText,
				})
			}
		}
	}
}
