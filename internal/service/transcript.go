package service

import (
	"context"
	"sync"

	"github.com/set-night/docchat/internal/domain"
	"github.com/set-night/docchat/internal/render"
)

// Transcript is the append-only conversation log for the active session.
// Every append is pushed to the UI in the same order it is stored.
type Transcript struct {
	mu       sync.Mutex
	messages []domain.Message
	ui       UI
}

func NewTranscript(ui UI) *Transcript {
	return &Transcript{ui: ui}
}

func (t *Transcript) Append(ctx context.Context, msg domain.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
	t.ui.AppendMessage(ctx, Display(msg))
}

func (t *Transcript) Clear(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
	t.ui.ClearTranscript(ctx)
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

// Messages returns a copy of the log.
func (t *Transcript) Messages() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// View renders the whole log for display.
func (t *Transcript) View() []domain.RenderedMessage {
	msgs := t.Messages()
	out := make([]domain.RenderedMessage, len(msgs))
	for i, m := range msgs {
		out[i] = Display(m)
	}
	return out
}

// Display projects a stored message for the UI. Only assistant text is
// interpreted as markdown; user text is shown exactly as typed.
func Display(msg domain.Message) domain.RenderedMessage {
	if msg.Sender == domain.SenderAssistant {
		return domain.RenderedMessage{Sender: msg.Sender, Body: render.Render(msg.Text), HTML: true}
	}
	return domain.RenderedMessage{Sender: msg.Sender, Body: msg.Text}
}
