// Package collab contains synchronization-engine implementations. The
// in-memory engine tracks live cursors for a single process; it stands in
// for a real CRDT/presence backend behind the narrow core.SyncEngine
// boundary.
package collab

import (
	"sync"
	"time"

	"github.com/huddlekit/huddle/core"
)

// Interface compliance (compile-time assertion)
var _ core.SyncEngine = (*InMemoryEngine)(nil)

// Cursor is one participant's last reported position in the shared document.
type Cursor struct {
	ParticipantID string    `json:"participantId"`
	Line          int       `json:"line"`
	Column        int       `json:"column"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// InMemoryEngine tracks cursors keyed by participant id. It is constructed
// with the hosting participant's id so a presence backend can attribute the
// document root.
type InMemoryEngine struct {
	hostID  string
	clock   core.Clock
	mu      sync.RWMutex
	cursors map[string]Cursor
}

// Options configure the in-memory engine.
type Options struct {
	Clock core.Clock
}

// NewInMemoryEngine creates an engine for the given host.
func NewInMemoryEngine(hostID string, optFns ...func(o *Options)) *InMemoryEngine {
	opts := Options{
		Clock: core.SystemClock{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &InMemoryEngine{
		hostID:  hostID,
		clock:   opts.Clock,
		cursors: make(map[string]Cursor),
	}
}

// HostID returns the id the engine was constructed with.
func (e *InMemoryEngine) HostID() string { return e.hostID }

// UpdateCursor records a participant's position.
func (e *InMemoryEngine) UpdateCursor(participantID string, line, column int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors[participantID] = Cursor{
		ParticipantID: participantID,
		Line:          line,
		Column:        column,
		UpdatedAt:     e.clock.Now(),
	}
}

// RemoveCursor drops a participant's cursor. Removing an unknown id is a
// no-op.
func (e *InMemoryEngine) RemoveCursor(participantID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.cursors, participantID)
}

// GetCursor returns a participant's cursor if present.
func (e *InMemoryEngine) GetCursor(participantID string) (Cursor, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.cursors[participantID]
	return c, ok
}

// GetCursors returns a snapshot of all live cursors.
func (e *InMemoryEngine) GetCursors() []Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Cursor, 0, len(e.cursors))
	for _, c := range e.cursors {
		out = append(out, c)
	}
	return out
}
