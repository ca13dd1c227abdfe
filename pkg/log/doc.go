// Package log defines the structured logging abstraction used across the
// friendship runtime.
//
// The library itself is silent by default: every component accepts a
// [Logger] and falls back to [Noop] when none is provided. The CLI and
// embedding games typically wrap a zerolog logger with [NewZerologAdapter].
//
// # Usage
//
//	logger := log.NewZerologAdapter()
//	logger.Warn("translation missing",
//	    log.Int("line_id", 42),
//	    log.Int("language", 1),
//	)
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log
