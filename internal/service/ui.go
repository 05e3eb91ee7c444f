package service

import (
	"context"

	"github.com/set-night/docchat/internal/domain"
)

// UI is the presentation surface the workflows drive. Implementations must
// not block on user input.
type UI interface {
	ShowBusy(ctx context.Context, message string)
	HideBusy(ctx context.Context)
	PresentUploadMode(ctx context.Context)
	PresentChatMode(ctx context.Context, fileName string)
	DisableInput(ctx context.Context)
	EnableInput(ctx context.Context)
	AppendMessage(ctx context.Context, msg domain.RenderedMessage)
	// ClearTranscript empties the message view.
	ClearTranscript(ctx context.Context)
}
