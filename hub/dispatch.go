package hub

import (
	"context"
	"fmt"

	"github.com/huddlekit/huddle/core"
)

// agentQueue serializes execution for one agent id: at most one task runs
// while the rest wait in submission order.
type agentQueue struct {
	pending []string
	running bool
}

// SubmitTask records a task for the given agent and schedules it for
// execution. The returned snapshot is the freshly created record with
// status pending and its start time already stamped; progress is observed
// via GetTask or WaitForTask.
//
// Submission fails with core.ErrAgentNotFound before any record is created
// when the agent id is unregistered.
func (h *Hub) SubmitTask(agentID, input string) (core.Task, error) {
	h.mu.RLock()
	_, ok := h.agents[agentID]
	h.mu.RUnlock()
	if !ok {
		return core.Task{}, fmt.Errorf("agent %q: %w", agentID, core.ErrAgentNotFound)
	}

	task := &core.Task{
		ID:        h.newID(),
		AgentID:   agentID,
		Input:     input,
		Status:    core.TaskPending,
		StartTime: h.clock.Now(),
	}

	h.tasksMu.Lock()
	h.tasks[task.ID] = task
	h.taskOrder = append(h.taskOrder, task.ID)
	h.done[task.ID] = make(chan struct{})
	snapshot := *task
	h.tasksMu.Unlock()

	h.metrics.submitted(context.Background())
	h.logger.Debug("task submitted", "task_id", task.ID, "agent_id", agentID)

	h.enqueue(agentID, task.ID)

	return snapshot, nil
}

// SubmitTaskSync submits a task and blocks until it reaches a terminal
// state or ctx expires. Agent failures are reported through the returned
// task's Status and Error fields, not through the error return.
func (h *Hub) SubmitTaskSync(ctx context.Context, agentID, input string) (core.Task, error) {
	task, err := h.SubmitTask(agentID, input)
	if err != nil {
		return core.Task{}, err
	}
	return h.WaitForTask(ctx, task.ID)
}

// WaitForTask blocks until the task reaches a terminal state or ctx
// expires, then returns the final record. The ctx bounds only the wait;
// the task itself keeps running to completion.
func (h *Hub) WaitForTask(ctx context.Context, taskID string) (core.Task, error) {
	h.tasksMu.RLock()
	done, ok := h.done[taskID]
	h.tasksMu.RUnlock()
	if !ok {
		return core.Task{}, fmt.Errorf("task %q: %w", taskID, core.ErrTaskNotFound)
	}

	select {
	case <-ctx.Done():
		return core.Task{}, ctx.Err()
	case <-done:
	}

	task, _ := h.GetTask(taskID)
	return task, nil
}

// GetTask retrieves a snapshot of the task with the given id. Terminal
// tasks stay retrievable; the registry never deletes records.
func (h *Hub) GetTask(taskID string) (core.Task, bool) {
	h.tasksMu.RLock()
	defer h.tasksMu.RUnlock()

	t, ok := h.tasks[taskID]
	if !ok {
		return core.Task{}, false
	}
	return *t, true
}

// GetTasksByAgent returns snapshots of every task submitted for the given
// agent id, in submission order.
func (h *Hub) GetTasksByAgent(agentID string) []core.Task {
	h.tasksMu.RLock()
	defer h.tasksMu.RUnlock()

	var out []core.Task
	for _, id := range h.taskOrder {
		if t := h.tasks[id]; t.AgentID == agentID {
			out = append(out, *t)
		}
	}
	return out
}

// ListTasks returns snapshots of all tasks in submission order.
func (h *Hub) ListTasks() []core.Task {
	h.tasksMu.RLock()
	defer h.tasksMu.RUnlock()

	out := make([]core.Task, 0, len(h.taskOrder))
	for _, id := range h.taskOrder {
		out = append(out, *h.tasks[id])
	}
	return out
}

// enqueue appends the task to the agent's queue and starts a drain
// goroutine when none is live for that agent.
func (h *Hub) enqueue(agentID, taskID string) {
	h.queuesMu.Lock()
	q, ok := h.queues[agentID]
	if !ok {
		q = &agentQueue{}
		h.queues[agentID] = q
	}
	q.pending = append(q.pending, taskID)
	start := !q.running
	if start {
		q.running = true
	}
	h.queuesMu.Unlock()

	if start {
		go h.drain(agentID)
	}
}

// drain executes queued tasks for one agent in submission order until the
// queue empties. At most one drain goroutine is live per agent id.
func (h *Hub) drain(agentID string) {
	for {
		h.queuesMu.Lock()
		q := h.queues[agentID]
		if len(q.pending) == 0 {
			q.running = false
			h.queuesMu.Unlock()
			return
		}
		taskID := q.pending[0]
		q.pending = q.pending[1:]
		h.queuesMu.Unlock()

		h.runTask(agentID, taskID)
	}
}

// runTask drives one task from running to a terminal state. Finalization
// happens in a single deferred step so the end timestamp is written and
// waiters are released on every exit path, including an agent panic.
func (h *Hub) runTask(agentID, taskID string) {
	ctx, span := h.tracer.Start(context.Background(), "task_execution")
	defer span.End()

	var (
		output string
		err    error
	)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent panic: %v", r)
		}
		h.finalize(ctx, taskID, agentID, output, err)
	}()

	input := h.markRunning(taskID)
	output, err = h.invoke(ctx, agentID, input)
}

// markRunning transitions the task to running and returns its input.
func (h *Hub) markRunning(taskID string) string {
	h.tasksMu.Lock()
	defer h.tasksMu.Unlock()

	t := h.tasks[taskID]
	t.Status = core.TaskRunning
	return t.Input
}

// invoke resolves the agent and executes the input against it. The agent
// may have been unregistered since submission; that surfaces as a task
// failure rather than a dropped record.
func (h *Hub) invoke(ctx context.Context, agentID, input string) (string, error) {
	h.mu.RLock()
	a, ok := h.agents[agentID]
	h.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("agent %q: %w", agentID, core.ErrAgentNotFound)
	}

	return a.Execute(ctx, input)
}

// finalize writes the task's terminal state exactly once, releases waiters
// and records metrics.
func (h *Hub) finalize(ctx context.Context, taskID, agentID, output string, err error) {
	h.tasksMu.Lock()
	t := h.tasks[taskID]
	if err != nil {
		t.Status = core.TaskFailed
		t.Error = err.Error()
	} else {
		t.Status = core.TaskCompleted
		t.Result = output
	}
	if t.EndTime.IsZero() {
		t.EndTime = h.clock.Now()
	}
	duration := t.EndTime.Sub(t.StartTime)
	done := h.done[taskID]
	h.tasksMu.Unlock()

	close(done)

	h.metrics.finished(ctx, err == nil, duration)
	if err != nil {
		h.logger.Warn("task failed", "task_id", taskID, "agent_id", agentID, "error", err)
		return
	}
	h.logger.Debug("task completed", "task_id", taskID, "agent_id", agentID, "duration_ms", duration.Milliseconds())
}
