package core

import "errors"

// Sentinel errors for registry lookups. They are raised synchronously,
// before any state mutation, and matched with errors.Is.
var (
	// ErrSessionNotFound indicates an unknown session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrAgentNotFound indicates an unknown agent id or name.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrTaskNotFound indicates an unknown task id.
	ErrTaskNotFound = errors.New("task not found")
)
