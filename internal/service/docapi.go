package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/docchat/internal/domain"
)

// DocAPIService talks to the document question-answering backend.
type DocAPIService struct {
	baseURL    string
	httpClient *http.Client
}

// NewDocAPIService returns a client for baseURL. A zero timeout means
// requests may wait forever.
func NewDocAPIService(baseURL string, timeout time.Duration) *DocAPIService {
	return &DocAPIService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type UploadResult struct {
	StoreID  string `json:"store_id"`
	FileName string `json:"filename"`
	Message  string `json:"message"`
}

type chatRequest struct {
	Question string `json:"question"`
	StoreID  string `json:"store_id"`
}

type chatResponse struct {
	Answer *string `json:"answer"`
}

func (s *DocAPIService) Upload(ctx context.Context, name string, r io.Reader) (*UploadResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var result UploadResult
	if err := s.do(req, "upload", "Upload failed", &result); err != nil {
		return nil, err
	}
	if result.StoreID == "" || result.FileName == "" {
		return nil, &domain.ServiceError{Op: "upload", Status: http.StatusOK, Detail: "malformed upload response"}
	}
	return &result, nil
}

func (s *DocAPIService) Ask(ctx context.Context, storeID, question string) (string, error) {
	payload, err := json.Marshal(chatRequest{Question: question, StoreID: storeID})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp chatResponse
	if err := s.do(req, "chat", "Chat failed", &resp); err != nil {
		return "", err
	}
	if resp.Answer == nil {
		return "", &domain.ServiceError{Op: "chat", Status: http.StatusOK, Detail: "malformed chat response"}
	}
	return *resp.Answer, nil
}

func (s *DocAPIService) DeleteStore(ctx context.Context, storeID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/store/"+url.PathEscape(storeID), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return s.do(req, "delete", "Delete failed", nil)
}

// do sends req and decodes a 2xx JSON body into out. Transport failures
// become *domain.NetworkError, everything the server got wrong becomes
// *domain.ServiceError.
func (s *DocAPIService) do(req *http.Request, op, fallback string, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Warn("document api request failed", "op", op, "request_id", requestID, "error", err)
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	slog.Debug("document api request",
		"op", op,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ServiceError{Op: op, Status: resp.StatusCode, Detail: errorDetail(body, fallback)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.ServiceError{Op: op, Status: resp.StatusCode, Detail: fmt.Sprintf("malformed %s response", op)}
	}
	return nil
}

// errorDetail extracts {"detail": "..."}. Validation failures from the
// backend carry a list there instead of a string; those get the fallback.
func errorDetail(body []byte, fallback string) string {
	var e struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err != nil || len(e.Detail) == 0 {
		return fallback
	}
	var detail string
	if err := json.Unmarshal(e.Detail, &detail); err != nil || strings.TrimSpace(detail) == "" {
		return fallback
	}
	return detail
}
