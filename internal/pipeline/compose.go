package pipeline

import (
	"fmt"

	"github.com/mwrites/ledgerbot/internal/model"
)

// Fixed user-facing responses. The mapping from pipeline outcome to text
// is deterministic and has no I/O; everything the user ever sees comes
// from here.
const (
	// AccessDeniedResponse is sent to senders not on the whitelist.
	AccessDeniedResponse = "Access denied. You are not authorized to use this bot."
	// GuidanceResponse is sent when no expense was found in the message.
	GuidanceResponse = "I can help you track expenses. Send me messages like 'Pizza $20' or 'Gas station 45 dollars'."
	// StorageFailureResponse is sent when the expense could not be saved.
	// It deliberately names no category.
	StorageFailureResponse = "Sorry, I couldn't save that expense right now. Please try again."
	// RelayFailureResponse is sent when the remote processing call failed.
	RelayFailureResponse = "Sorry, I'm having trouble processing your message right now. Please try again later."
)

// SuccessResponse renders the confirmation for a persisted expense.
func SuccessResponse(category model.Category) string {
	return fmt.Sprintf("%s expense added ✅", category)
}
