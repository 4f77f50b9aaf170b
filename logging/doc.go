// Package logging provides a minimal logging interface and adapters for huddle.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the session registry and the hub use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NewFileLogger for rotating JSON output on long-running hosts
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.New(&logging.Config{Level: logging.LogLevelInfo, Format: "json"})
//	w := huddle.New(func(o *huddle.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
