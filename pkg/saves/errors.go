package saves

import "github.com/keraunic-tonic/friendship/internal/domain"

// Sentinel errors re-exported for embedders to check with errors.Is.
var (
	ErrSaveLimitReached  = domain.ErrSaveLimitReached
	ErrSlotNotFound      = domain.ErrSlotNotFound
	ErrLoadInProgress    = domain.ErrLoadInProgress
	ErrMalformedSnapshot = domain.ErrMalformedSnapshot
	ErrStaleCompletion   = domain.ErrStaleCompletion
	ErrInvalidConfig     = domain.ErrInvalidConfig
)
