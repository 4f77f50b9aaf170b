package huddle

import (
	"context"
	"testing"

	"github.com/huddlekit/huddle/agent"
	"github.com/huddlekit/huddle/core"
	"github.com/huddlekit/huddle/ledger"
	"github.com/huddlekit/huddle/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_EndToEnd(t *testing.T) {
	w := New()
	ctx := context.Background()

	s := w.CreateSession(session.Config{Name: "Design Review", HostID: "u1", HostName: "ada"})
	require.True(t, s.IsActive())
	assert.Contains(t, s.GetInviteLink(), "/join/"+s.ID())

	joined, err := w.JoinSession(s.ID(), core.Participant{ID: "u2", Username: "bo"})
	require.NoError(t, err)
	assert.False(t, joined.IsHost)
	assert.Len(t, s.GetParticipants(), 2)

	architect, ok := w.Agents().GetAgentByName(agent.ArchitectName)
	require.True(t, ok)

	task, err := w.SubmitTaskSync(ctx, architect.ID(), "sketch the service boundaries")
	require.NoError(t, err)
	assert.Equal(t, core.TaskCompleted, task.Status)
	assert.Equal(t, "[Architect] sketch the service boundaries", task.Result)

	out, err := w.DocumentCode(ctx, "describe the ledger gate")
	require.NoError(t, err)
	assert.Equal(t, "[Scribe] describe the ledger gate", out)

	require.True(t, s.RecordAIUsage(1.0))
	assert.InDelta(t, 4.0, s.GetBudgetRemaining(), 1e-9)

	w.Sessions().EndSession(s.ID())
	assert.False(t, s.IsActive())
	_, ok = w.Sessions().GetSession(s.ID())
	assert.False(t, ok)
}

func TestWorkspace_SharedLedger(t *testing.T) {
	account := ledger.NewInMemory(3)
	w := New(func(o *Options) { o.Ledger = account })

	a := w.CreateSession(session.Config{Name: "A", HostID: "u1"})
	b := w.CreateSession(session.Config{Name: "B", HostID: "u2"})

	require.True(t, a.RecordAIUsage(2))
	assert.InDelta(t, 1, b.GetBudgetRemaining(), 1e-9)
	assert.False(t, b.RecordAIUsage(2), "shared account cannot cover the spend")
	assert.InDelta(t, 1, a.GetBudgetRemaining(), 1e-9)
}

func TestWorkspace_NoDefaultAgents(t *testing.T) {
	w := New(func(o *Options) { o.NoDefaultAgents = true })

	assert.Empty(t, w.Agents().ListAgents())

	_, err := w.AskArchitect(context.Background(), "why?")
	assert.ErrorIs(t, err, core.ErrAgentNotFound)
}

func TestWorkspace_CustomAgentTask(t *testing.T) {
	w := New(func(o *Options) { o.NoDefaultAgents = true })
	w.RegisterAgent(agent.New(agent.Profile{ID: "a1", Name: "Echo"}, func(_ context.Context, input string, _ []core.Message) (string, error) {
		return "echo: " + input, nil
	}))

	task, err := w.SubmitTaskSync(context.Background(), "a1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "a1", task.AgentID)
	assert.Equal(t, "hello", task.Input)
	assert.Equal(t, core.TaskCompleted, task.Status)
	assert.Equal(t, "echo: hello", task.Result)
}
