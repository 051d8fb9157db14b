// Package pipeline drives one message through access control, extraction,
// persistence and response composition.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/mwrites/ledgerbot/internal/model"
	"github.com/mwrites/ledgerbot/internal/service"
)

// Pipeline implements service.Processor with the in-process flow:
// access gate, extraction engine, persistence gateway, response composer.
type Pipeline struct {
	store     service.Storage
	extractor service.Extractor
	logger    *slog.Logger
}

// New creates a pipeline over the given collaborators.
func New(store service.Storage, extractor service.Extractor, logger *slog.Logger) *Pipeline {
	return &Pipeline{store: store, extractor: extractor, logger: logger}
}

// Process runs a single message through the pipeline. It always returns
// a result with user-facing text; failures never escape an invocation.
// Unauthorized senders short-circuit before the extraction engine runs.
func (p *Pipeline) Process(ctx context.Context, msg model.Message) service.ProcessResult {
	user, err := p.store.UserByTelegramID(ctx, msg.SenderID)
	if err != nil {
		p.logger.Error("whitelist lookup failed",
			"sender", msg.SenderID,
			"error", err)
		return service.ProcessResult{Message: StorageFailureResponse}
	}
	if user == nil {
		p.logger.Info("message from non-whitelisted sender", "sender", msg.SenderID)
		return service.ProcessResult{Message: AccessDeniedResponse}
	}

	result := p.extractor.Extract(ctx, msg.Text)
	if !result.IsExpense {
		p.logger.Info("message not recognized as expense",
			"sender", msg.SenderID,
			"source", result.Source)
		return service.ProcessResult{Success: true, Message: GuidanceResponse}
	}

	expense := model.Expense{
		UserID:      user.ID,
		Description: result.Description,
		Amount:      result.Amount,
		Category:    result.Category,
	}
	if err := p.store.SaveExpense(ctx, &expense); err != nil {
		p.logger.Error("failed to persist expense",
			"sender", msg.SenderID,
			"category", result.Category,
			"error", err)
		return service.ProcessResult{Message: StorageFailureResponse}
	}

	p.logger.Info("expense added",
		"sender", msg.SenderID,
		"expense_id", expense.ID,
		"category", expense.Category,
		"amount", expense.Amount.String(),
		"source", result.Source)

	return service.ProcessResult{
		Success:      true,
		ExpenseAdded: true,
		Category:     expense.Category,
		Message:      SuccessResponse(expense.Category),
	}
}
