// Package ledger contains budget-ledger implementations. The in-memory
// ledger backs single-process workspaces and tests; production deployments
// substitute an implementation over their accounting store behind the same
// core.BudgetLedger interface.
package ledger

import (
	"sync"

	"github.com/huddlekit/huddle/core"
)

// Interface compliance (compile-time assertion)
var _ core.BudgetLedger = (*InMemory)(nil)

// InMemory is a mutex-guarded spend ledger over a single account balance.
// A spend is atomic: it either deducts the full cost or leaves the balance
// untouched.
type InMemory struct {
	mu        sync.Mutex
	initial   float64
	remaining float64
}

// NewInMemory creates a ledger holding the given initial budget in currency
// units. Negative initial budgets are clamped to zero.
func NewInMemory(initial float64) *InMemory {
	if initial < 0 {
		initial = 0
	}
	return &InMemory{initial: initial, remaining: initial}
}

// GetBudgetRemaining reports the available amount.
func (l *InMemory) GetBudgetRemaining() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remaining
}

// RecordSpend deducts cost when the balance covers it and reports
// acceptance. Negative costs are rejected; a zero cost is always accepted.
func (l *InMemory) RecordSpend(cost float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cost < 0 || cost > l.remaining {
		return false
	}
	l.remaining -= cost
	return true
}

// Initial returns the amount the ledger was created with.
func (l *InMemory) Initial() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initial
}

// Spent returns the amount consumed so far.
func (l *InMemory) Spent() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initial - l.remaining
}
