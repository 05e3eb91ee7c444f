package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Document is a file a user sent to the bot. Nothing is downloaded until
// Open is called.
type Document struct {
	bot    *bot.Bot
	client *http.Client
	fileID string
	name   string
}

func NewDocument(b *bot.Bot, doc *models.Document) *Document {
	return &Document{
		bot:    b,
		client: http.DefaultClient,
		fileID: doc.FileID,
		name:   doc.FileName,
	}
}

func (d *Document) Name() string { return d.name }

// Open starts the download. The caller must close the returned body.
func (d *Document) Open(ctx context.Context) (io.ReadCloser, error) {
	url, err := GetFileURL(ctx, d.bot, d.fileID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create download request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// GetFileURL returns the download URL for a Telegram file.
func GetFileURL(ctx context.Context, b *bot.Bot, fileID string) (string, error) {
	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("get file: %w", err)
	}
	return b.FileDownloadLink(file), nil
}
