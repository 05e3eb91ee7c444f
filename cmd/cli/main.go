// Command cli is a terminal client for the document assistant.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/domain"
	"github.com/set-night/docchat/internal/logging"
	"github.com/set-night/docchat/internal/service"
	"github.com/set-night/docchat/internal/terminal"
)

func main() {
	file := flag.String("file", "", "document to upload on start")
	flag.Parse()

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Log lines would interleave with the conversation, so they only go
	// to LOG_FILE.
	logger, closeLog := logging.New(cfg.Log, nil)
	defer closeLog.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := service.NewDocAPIService(cfg.API.BaseURL, cfg.API.RequestTimeout)
	ui := terminal.NewUI(os.Stdout)
	assistant := service.NewAssistant(api, ui, service.WithLogger(logger))

	lines := readLines(os.Stdin)
	r := &repl{assistant: assistant, ui: ui, lines: lines}

	fmt.Printf("Using document service at %s\n", cfg.API.BaseURL)
	if *file != "" {
		r.upload(ctx, *file)
	}
	if !assistant.Session.IsActive() {
		ui.PresentUploadMode(ctx)
	}

	r.run(ctx)

	if s, ok := assistant.Session.Current(); ok {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := api.DeleteStore(cleanupCtx, s.StoreID); err != nil {
			slog.Warn("delete store on exit", "store_id", s.StoreID, "error", err)
		}
		cancel()
	}
	fmt.Println("Bye.")
}

// readLines feeds stdin lines into a channel so the loop can also watch for
// signals.
func readLines(f *os.File) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()
	return ch
}

type repl struct {
	assistant *service.Assistant
	ui        *terminal.UI
	lines     <-chan string
}

func (r *repl) next(ctx context.Context) (string, bool) {
	fmt.Print("> ")
	select {
	case <-ctx.Done():
		fmt.Println()
		return "", false
	case line, ok := <-r.lines:
		return strings.TrimSpace(line), ok
	}
}

func (r *repl) run(ctx context.Context) {
	for {
		line, ok := r.next(ctx)
		if !ok {
			return
		}

		switch {
		case line == "":
		case line == "/quit":
			return
		case line == "/status":
			r.status()
		case line == "/history":
			r.ui.Replay(ctx, r.assistant.Transcript.View())
		case line == "/close":
			r.close(ctx)
		case !r.assistant.Session.IsActive():
			r.upload(ctx, line)
		default:
			r.assistant.Chat.Ask(ctx, line)
		}
	}
}

func (r *repl) upload(ctx context.Context, path string) {
	err := r.assistant.Upload.Submit(ctx, terminal.NewLocalFile(path))
	var verr *domain.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		r.ui.Error(config.InvalidFileText)
	case errors.Is(err, domain.ErrSessionActive):
		r.ui.Error(config.SessionActiveText)
	default:
		r.ui.Error("%s%v", config.UploadErrorPrefix, err)
	}
}

func (r *repl) close(ctx context.Context) {
	if !r.assistant.Session.IsActive() {
		r.ui.Error(config.NoDocumentText)
		return
	}
	fmt.Print(config.ConfirmResetText + " [y/N] ")
	var answer string
	select {
	case <-ctx.Done():
		return
	case answer = <-r.lines:
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	r.assistant.Reset.Reset(ctx, answer == "y" || answer == "yes")
}

func (r *repl) status() {
	s, ok := r.assistant.Session.Current()
	if !ok {
		fmt.Println(config.NoDocumentText)
		return
	}
	fmt.Printf("📄 %s, %d messages\n", s.FileName, r.assistant.Transcript.Len())
}
