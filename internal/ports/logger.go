package ports

import "github.com/keraunic-tonic/friendship/pkg/log"

// Logger re-exports the structured logging abstraction so application code
// can take every dependency from this package.
type Logger = log.Logger

// Field re-exports the structured log field type.
type Field = log.Field

// Field constructors re-exported for convenience.
var (
	String   = log.String
	Int      = log.Int
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
)
