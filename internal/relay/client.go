package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mwrites/ledgerbot/internal/common"
	"github.com/mwrites/ledgerbot/internal/model"
	"github.com/mwrites/ledgerbot/internal/pipeline"
	"github.com/mwrites/ledgerbot/internal/service"
)

// Client implements service.Processor against a remote relay server.
// A failed relay call is absorbed into a fixed apology response; the
// ingestion loop never sees it as an error.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewClient creates a relay client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Process forwards one message to the remote processor.
func (c *Client) Process(ctx context.Context, msg model.Message) service.ProcessResult {
	result, err := c.post(ctx, msg)
	if err != nil {
		c.logger.Error("relay call failed", "sender", msg.SenderID, "error", err)
		return service.ProcessResult{Message: pipeline.RelayFailureResponse}
	}
	return result
}

func (c *Client) post(ctx context.Context, msg model.Message) (service.ProcessResult, error) {
	body, err := json.Marshal(ProcessMessageRequest{
		Message:    msg.Text,
		TelegramID: msg.SenderID,
	})
	if err != nil {
		return service.ProcessResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/process-message", bytes.NewReader(body))
	if err != nil {
		return service.ProcessResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return service.ProcessResult{}, fmt.Errorf("%w: %v", common.ErrRelayUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return service.ProcessResult{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return service.ProcessResult{}, fmt.Errorf("%w: status %d: %s", common.ErrRelayUnavailable, resp.StatusCode, string(respBody))
	}

	var parsed ProcessMessageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return service.ProcessResult{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return service.ProcessResult{
		Success:      parsed.Success,
		Message:      parsed.Message,
		ExpenseAdded: parsed.ExpenseAdded,
		Category:     model.Category(parsed.Category),
	}, nil
}
