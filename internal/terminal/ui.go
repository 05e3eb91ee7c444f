// Package terminal renders the assistant in a line-oriented terminal.
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/domain"
	"github.com/set-night/docchat/internal/view"
)

var (
	labelColor   = color.New(color.FgGreen, color.Bold)
	headingColor = color.New(color.FgCyan, color.Bold)
	boldColor    = color.New(color.Bold)
	busyColor    = color.New(color.FgYellow)
	noticeColor  = color.New(color.FgHiBlack)
	errorColor   = color.New(color.FgRed)
)

func style() view.Style {
	s := view.PlainStyle
	s.Bold = func(text string) string { return boldColor.Sprint(text) }
	s.Heading = func(_ int, text string) string { return headingColor.Sprint(text) }
	return s
}

// UI prints assistant state to w. The user's own input is already on
// screen, so user messages are not repeated.
type UI struct {
	mu       sync.Mutex
	w        io.Writer
	inputOff bool
}

func NewUI(w io.Writer) *UI {
	return &UI{w: w}
}

func (u *UI) printf(c *color.Color, format string, args ...any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c.Fprintf(u.w, format, args...)
}

func (u *UI) ShowBusy(_ context.Context, message string) {
	u.printf(busyColor, "%s\n", message)
}

func (u *UI) HideBusy(context.Context) {}

func (u *UI) PresentUploadMode(context.Context) {
	u.printf(noticeColor, "Enter the path of a PDF, TXT, or MD file to upload.\n")
}

func (u *UI) PresentChatMode(_ context.Context, fileName string) {
	u.printf(labelColor, "📄 %s\n", fileName)
	u.printf(noticeColor, "%s Type /history to reprint the chat, /close to close it, /quit to exit.\n", config.WelcomeText)
}

func (u *UI) DisableInput(context.Context) {
	u.mu.Lock()
	u.inputOff = true
	u.mu.Unlock()
	u.printf(busyColor, "thinking...\n")
}

func (u *UI) EnableInput(context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.inputOff = false
}

// InputEnabled reports whether a question may be typed.
func (u *UI) InputEnabled() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !u.inputOff
}

func (u *UI) AppendMessage(_ context.Context, msg domain.RenderedMessage) {
	if msg.Sender == domain.SenderUser {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.writeMessage(msg)
}

// Replay reprints a whole conversation, user lines included.
func (u *UI) Replay(_ context.Context, msgs []domain.RenderedMessage) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(msgs) == 0 {
		noticeColor.Fprintln(u.w, "No messages yet.")
		return
	}
	for _, m := range msgs {
		u.writeMessage(m)
	}
}

func (u *UI) writeMessage(msg domain.RenderedMessage) {
	body := msg.Body
	if msg.HTML {
		blocks, err := view.Project(msg.Body, style())
		if err != nil {
			body = view.Text(msg.Body)
		} else {
			body = strings.Join(blocks, "\n\n")
		}
	}

	label := "Assistant: "
	if msg.Sender == domain.SenderUser {
		label = "You: "
	}
	labelColor.Fprint(u.w, label)
	fmt.Fprintln(u.w, body)
}

func (u *UI) ClearTranscript(context.Context) {
	u.printf(noticeColor, "Document closed.\n")
}

// Error prints a failure the user has to act on.
func (u *UI) Error(format string, args ...any) {
	u.printf(errorColor, format+"\n", args...)
}
