package model

import "time"

// User is a whitelisted sender. Rows are created only by the explicit
// add-user operation, never implicitly during message processing.
type User struct {
	CreatedAt  time.Time
	TelegramID string
	ID         int64
}

// Expense is a single persisted ledger entry, immutable once written.
type Expense struct {
	AddedAt     time.Time
	Description string
	Category    Category
	ID          int64
	UserID      int64
	Amount      Amount
}

// Message is one normalized inbound chat message. It exists only for the
// duration of a single pipeline invocation and is never persisted.
type Message struct {
	ReceivedAt time.Time
	Text       string
	SenderID   string
}

// ExtractionSource records which path produced an ExtractionResult.
type ExtractionSource string

const (
	// SourceAI marks results produced by the language-model collaborator.
	SourceAI ExtractionSource = "ai"
	// SourceFallback marks results produced by the deterministic parser.
	SourceFallback ExtractionSource = "fallback"
)

// ExtractionResult is the structured outcome of analyzing one message.
// When IsExpense is false the remaining fields carry no meaning.
type ExtractionResult struct {
	Description string
	Category    Category
	Source      ExtractionSource
	Amount      Amount
	IsExpense   bool
}
