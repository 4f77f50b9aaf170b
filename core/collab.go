package core

// SyncEngine is the narrow interface to the real-time synchronization
// collaborator (CRDT engine, presence service). The core only ever asks it
// to drop a participant's cursor on teardown; document merge and cursor
// movement stay behind this boundary.
type SyncEngine interface {
	RemoveCursor(participantID string)
}

// BudgetLedger is the narrow interface to the spend-accounting collaborator.
// Implementations own validation, encryption and persistence; the core
// treats the ledger as a gate.
//
// Contract:
//   - GetBudgetRemaining reports the currently available amount in currency
//     units.
//   - RecordSpend attempts to deduct cost and reports acceptance. A rejected
//     spend leaves the ledger unchanged. Rejection is an expected outcome,
//     not an error.
type BudgetLedger interface {
	GetBudgetRemaining() float64
	RecordSpend(cost float64) bool
}
