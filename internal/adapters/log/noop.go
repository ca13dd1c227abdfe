// Package log provides logging adapters for the save coordinator.
package log

import "github.com/keraunic-tonic/friendship/pkg/log"

// NoopLogger implements log.Logger by discarding all messages. It is the
// default when an embedder provides no logger.
type NoopLogger = log.Noop

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() NoopLogger {
	return NoopLogger{}
}
