package core

import "context"

// Agent is a named capability unit that can execute textual input and
// produce textual output while maintaining conversation history.
//
// Contract:
//   - ID is immutable after construction and unique within a hub.
//   - Execute is potentially slow (a provider round trip) and fallible. The
//     hub serializes Execute per agent id, so implementations dispatched
//     through a hub never see two overlapping calls on the same instance;
//     implementations must still guard their own history for direct use.
//   - GetHistory returns a snapshot copy; mutating it never affects the
//     agent.
//   - GetContext renders the history as "role: content" lines joined by
//     newlines, in insertion order.
type Agent interface {
	ID() string
	Name() string
	Provider() string
	Model() string
	SystemPrompt() string

	Execute(ctx context.Context, input string) (string, error)

	AddToHistory(msg Message)
	GetHistory() []Message
	ClearHistory()
	GetContext() string
}
