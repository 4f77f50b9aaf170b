package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/huddlekit/huddle/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Clock        = (*Clock)(nil)
	_ core.SyncEngine   = (*SyncRecorder)(nil)
	_ core.BudgetLedger = (*StubLedger)(nil)
)

// Clock is a deterministic core.Clock: every Now call advances the current
// instant by Step so ordered timestamps stay distinguishable in tests.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewClock returns a Clock starting at a fixed instant with a 1ms step.
func NewClock() *Clock {
	return &Clock{
		now:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		step: time.Millisecond,
	}
}

// Now returns the current fake instant and advances it by the step.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// IDSequence returns an id source producing "prefix-1", "prefix-2", ...
// Safe for concurrent use.
func IDSequence(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// SyncRecorder implements core.SyncEngine and records every cursor removal
// in call order.
type SyncRecorder struct {
	mu      sync.Mutex
	removed []string
}

// NewSyncRecorder returns an empty recorder.
func NewSyncRecorder() *SyncRecorder { return &SyncRecorder{} }

// RemoveCursor records the removal.
func (r *SyncRecorder) RemoveCursor(participantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, participantID)
}

// Removed returns a snapshot of recorded removals.
func (r *SyncRecorder) Removed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.removed))
	copy(out, r.removed)
	return out
}

// StubLedger implements core.BudgetLedger with scripted responses, recording
// every spend attempt.
type StubLedger struct {
	mu        sync.Mutex
	Remaining float64
	Accept    bool
	Spends    []float64
}

// GetBudgetRemaining returns the scripted remaining amount.
func (s *StubLedger) GetBudgetRemaining() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Remaining
}

// RecordSpend records the attempt and returns the scripted acceptance.
func (s *StubLedger) RecordSpend(cost float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Spends = append(s.Spends, cost)
	return s.Accept
}
