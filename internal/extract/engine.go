package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mwrites/ledgerbot/internal/common"
	"github.com/mwrites/ledgerbot/internal/llm"
	"github.com/mwrites/ledgerbot/internal/model"
	"github.com/mwrites/ledgerbot/internal/service"
)

// Engine implements service.Extractor. It asks the AI collaborator first
// under a bounded timeout and falls back to the deterministic parser on
// timeout, error, or a response that fails shape validation. Collaborator
// failures are absorbed here; callers never see them as errors.
type Engine struct {
	client    llm.Client
	logger    *slog.Logger
	timeout   time.Duration
	retryOpts service.RetryOptions
}

// Config holds configuration for the extraction engine.
type Config struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// NewEngine creates an extraction engine on top of an LLM client.
// A nil client is allowed and routes everything through the fallback.
func NewEngine(client llm.Client, cfg Config, logger *slog.Logger) *Engine {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 2
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &Engine{
		client:    client,
		timeout:   timeout,
		retryOpts: retryOpts,
		logger:    logger,
	}
}

// Extract analyzes one message text.
func (e *Engine) Extract(ctx context.Context, text string) model.ExtractionResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ExtractionResult{IsExpense: false, Source: model.SourceFallback}
	}

	if e.client == nil {
		return Fallback(text)
	}

	resp, err := e.callCollaborator(ctx, text)
	if err != nil {
		e.logger.Info("extraction collaborator unavailable, using fallback",
			"error", err)
		return Fallback(text)
	}

	if !resp.IsExpense {
		return model.ExtractionResult{IsExpense: false, Source: model.SourceAI}
	}

	if err := resp.Validate(); err != nil {
		e.logger.Info("extraction response failed validation, using fallback",
			"error", err)
		return Fallback(text)
	}

	description := ""
	if resp.Description != nil {
		description = strings.TrimSpace(*resp.Description)
	}
	if description == "" {
		description = text
	}

	return model.ExtractionResult{
		IsExpense:   true,
		Description: description,
		Amount:      model.AmountFromFloat(*resp.Amount),
		Category:    model.ParseCategory(*resp.Category),
		Source:      model.SourceAI,
	}
}

// callCollaborator runs the AI call with retry under the engine timeout.
// The timeout bounds the AI call only, not the whole invocation.
func (e *Engine) callCollaborator(ctx context.Context, text string) (llm.ExtractionResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := llm.BuildPrompt(text)

	var resp llm.ExtractionResponse
	err := common.WithRetry(callCtx, func() error {
		r, callErr := e.client.Extract(callCtx, prompt)
		if callErr != nil {
			return &common.RetryableError{Err: callErr, Retryable: true}
		}
		resp = r
		return nil
	}, e.retryOpts)
	if err != nil {
		return llm.ExtractionResponse{}, fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}

	return resp, nil
}
