// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/mwrites/ledgerbot/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// User operations. UserByTelegramID returns (nil, nil) when the
	// sender is unknown; absence is not an error.
	CreateUser(ctx context.Context, telegramID string) (*model.User, error)
	UserByTelegramID(ctx context.Context, telegramID string) (*model.User, error)

	// Expense operations. SaveExpense fills in ID and AddedAt.
	SaveExpense(ctx context.Context, expense *model.Expense) error
	ExpensesByUser(ctx context.Context, userID int64) ([]model.Expense, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Extractor converts free text into a structured expense candidate.
// Implementations absorb collaborator failures internally and never
// return an error: an unusable AI result becomes a fallback result.
type Extractor interface {
	Extract(ctx context.Context, text string) model.ExtractionResult
}

// ProcessResult is the terminal outcome of one pipeline invocation.
// Message is always populated with user-facing text.
type ProcessResult struct {
	Message      string
	Category     model.Category
	Success      bool
	ExpenseAdded bool
}

// Processor runs one message through the full pipeline. The local
// pipeline and the relay client both satisfy this, so ingestion and
// processing may live in one process or two.
type Processor interface {
	Process(ctx context.Context, msg model.Message) ProcessResult
}

// Sender delivers a reply back to the chat transport.
type Sender interface {
	Send(chatID int64, text string) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
