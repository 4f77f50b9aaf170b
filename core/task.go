package core

import "time"

// TaskStatus enumerates the task lifecycle states.
type TaskStatus string

// Task lifecycle: pending -> running -> completed or failed. Terminal states
// never transition again and failed tasks are never deleted.
const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// Task records one dispatch of input to an agent.
//
// Contract:
//   - ID is globally unique and never reused.
//   - StartTime is set at submission, before any work begins.
//   - EndTime is zero until the task reaches a terminal state, then set
//     exactly once, on every exit path.
//   - Result is populated only on completion, Error only on failure.
type Task struct {
	ID        string     `json:"id"`
	AgentID   string     `json:"agentId"`
	Input     string     `json:"input"`
	Status    TaskStatus `json:"status"`
	Result    string     `json:"result,omitempty"`
	Error     string     `json:"error,omitempty"`
	StartTime time.Time  `json:"startTime"`
	EndTime   time.Time  `json:"endTime"`
}

// Terminal reports whether the task reached a final state.
func (t Task) Terminal() bool {
	return t.Status == TaskCompleted || t.Status == TaskFailed
}

// Duration returns the wall time between submission and finalization, or
// zero while the task is still pending or running.
func (t Task) Duration() time.Duration {
	if t.EndTime.IsZero() {
		return 0
	}
	return t.EndTime.Sub(t.StartTime)
}
