package telegram

import (
	"context"
	"html"
	"log/slog"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/domain"
	"github.com/set-night/docchat/internal/view"
)

// ChatUI shows the assistant's state in one Telegram chat. Telegram already
// displays what the user typed, so user messages are not echoed back.
type ChatUI struct {
	bot    *bot.Bot
	chatID int64

	mu         sync.Mutex
	busyMsgID  int
	stopBusy   context.CancelFunc
	stopTyping context.CancelFunc
}

func NewChatUI(b *bot.Bot, chatID int64) *ChatUI {
	return &ChatUI{bot: b, chatID: chatID}
}

func (u *ChatUI) ShowBusy(ctx context.Context, message string) {
	msg, err := SendText(ctx, u.bot, u.chatID, "⏳ "+message, nil)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		slog.Warn("show busy", "chat_id", u.chatID, "error", err)
	} else {
		u.busyMsgID = msg.ID
	}
	if u.stopBusy == nil {
		u.stopBusy = StartChatAction(context.WithoutCancel(ctx), u.bot, u.chatID, models.ChatActionUploadDocument)
	}
}

func (u *ChatUI) HideBusy(ctx context.Context) {
	u.mu.Lock()
	msgID := u.busyMsgID
	u.busyMsgID = 0
	if u.stopBusy != nil {
		u.stopBusy()
		u.stopBusy = nil
	}
	u.mu.Unlock()

	if msgID == 0 {
		return
	}
	if _, err := u.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: u.chatID, MessageID: msgID}); err != nil {
		slog.Warn("hide busy", "chat_id", u.chatID, "error", err)
	}
}

func (u *ChatUI) PresentUploadMode(ctx context.Context) {
	u.send(ctx, config.UploadPromptText, nil)
}

func (u *ChatUI) PresentChatMode(ctx context.Context, fileName string) {
	text := "📄 <b>" + html.EscapeString(fileName) + "</b>\n\n" + config.WelcomeText
	if err := SendBlocks(ctx, u.bot, u.chatID, []string{text}, true, CloseKeyboard()); err != nil {
		slog.Warn("present chat mode", "chat_id", u.chatID, "error", err)
	}
}

func (u *ChatUI) DisableInput(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.stopTyping == nil {
		u.stopTyping = StartChatAction(context.WithoutCancel(ctx), u.bot, u.chatID, models.ChatActionTyping)
	}
}

func (u *ChatUI) EnableInput(context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.stopTyping != nil {
		u.stopTyping()
		u.stopTyping = nil
	}
}

func (u *ChatUI) AppendMessage(ctx context.Context, msg domain.RenderedMessage) {
	if msg.Sender == domain.SenderUser {
		return
	}
	if !msg.HTML {
		u.send(ctx, msg.Body, nil)
		return
	}

	blocks, err := view.Project(msg.Body, view.TelegramStyle)
	if err != nil {
		slog.Warn("project answer", "error", err)
		u.send(ctx, view.Text(msg.Body), nil)
		return
	}
	if len(blocks) == 0 {
		return
	}
	if err := SendBlocks(ctx, u.bot, u.chatID, blocks, true, nil); err != nil {
		slog.Warn("send answer", "chat_id", u.chatID, "error", err)
	}
}

func (u *ChatUI) ClearTranscript(ctx context.Context) {
	u.send(ctx, "🗑 Document closed.", nil)
}

func (u *ChatUI) send(ctx context.Context, text string, markup models.ReplyMarkup) {
	if _, err := SendText(ctx, u.bot, u.chatID, text, markup); err != nil {
		slog.Warn("send message", "chat_id", u.chatID, "error", err)
	}
}
