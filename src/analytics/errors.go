package analytics

import "errors"

// Error taxonomy for the analytics core. Degenerate computations (empty
// ledgers, too few data points) never produce errors; they resolve to the
// documented default output instead.
var (
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a record that is absent or owned by another user.
	ErrNotFound = errors.New("record not found or unauthorized")
	// ErrDataFormat marks ledger rows that do not match the 7-column
	// transaction contract. Storage adapters wrap row-scan failures with it.
	ErrDataFormat = errors.New("transaction rows do not match expected shape")
)
