// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Failure classes surfaced by the pipeline's collaborators. Denied
// access and not-an-expense verdicts are ordinary outcomes with their
// own responses, not errors, so they have no sentinel here.
var (
	// ErrUpstreamUnavailable means the extraction collaborator timed out or failed.
	ErrUpstreamUnavailable = errors.New("extraction provider unavailable")
	// ErrStorage means a persistence operation failed.
	ErrStorage = errors.New("storage failure")
	// ErrRelayUnavailable means the remote processing call failed.
	ErrRelayUnavailable = errors.New("relay unavailable")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)
