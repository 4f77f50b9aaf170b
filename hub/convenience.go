package hub

import (
	"context"
	"errors"
	"fmt"

	"github.com/huddlekit/huddle/agent"
	"github.com/huddlekit/huddle/core"
)

// AskArchitect routes the input to the built-in Architect and returns its
// raw output.
func (h *Hub) AskArchitect(ctx context.Context, input string) (string, error) {
	return h.dispatchByName(ctx, agent.ArchitectName, input)
}

// ChallengeCode routes the input to the built-in Devil's Advocate and
// returns its raw output.
func (h *Hub) ChallengeCode(ctx context.Context, input string) (string, error) {
	return h.dispatchByName(ctx, agent.DevilsAdvocateName, input)
}

// GetHistory routes the input to the built-in Historian and returns its
// raw output.
func (h *Hub) GetHistory(ctx context.Context, input string) (string, error) {
	return h.dispatchByName(ctx, agent.HistorianName, input)
}

// DocumentCode routes the input to the built-in Scribe and returns its raw
// output.
func (h *Hub) DocumentCode(ctx context.Context, input string) (string, error) {
	return h.dispatchByName(ctx, agent.ScribeName, input)
}

// dispatchByName resolves an agent by its human-readable name and runs the
// input through the regular task queue, so named dispatch respects the
// per-agent execution order. Unknown names fail with core.ErrAgentNotFound;
// execution failures surface as plain errors carrying the task's message.
func (h *Hub) dispatchByName(ctx context.Context, name, input string) (string, error) {
	a, ok := h.GetAgentByName(name)
	if !ok {
		return "", fmt.Errorf("agent %q: %w", name, core.ErrAgentNotFound)
	}

	task, err := h.SubmitTaskSync(ctx, a.ID(), input)
	if err != nil {
		return "", err
	}
	if task.Status == core.TaskFailed {
		return "", errors.New(task.Error)
	}
	return task.Result, nil
}
