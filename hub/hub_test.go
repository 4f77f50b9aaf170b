package hub

import (
	"context"
	"testing"

	"github.com/huddlekit/huddle/agent"
	"github.com/huddlekit/huddle/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoAgent(id, name string) *agent.Agent {
	return agent.New(agent.Profile{ID: id, Name: name}, func(_ context.Context, input string, _ []core.Message) (string, error) {
		return "echo: " + input, nil
	})
}

func TestNew_RegistersDefaultAgents(t *testing.T) {
	h := New()

	agents := h.ListAgents()
	require.Len(t, agents, 4)

	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{
		agent.ArchitectName,
		agent.DevilsAdvocateName,
		agent.HistorianName,
		agent.ScribeName,
	}, names)

	architect, ok := h.GetAgentByName(agent.ArchitectName)
	require.True(t, ok)
	assert.Equal(t, agent.ArchitectName, architect.Name())
}

func TestNew_NoDefaultAgents(t *testing.T) {
	h := New(func(o *Options) { o.NoDefaultAgents = true })

	assert.Empty(t, h.ListAgents())
}

func TestRegisterAgent_ReplaceKeepsOrder(t *testing.T) {
	h := New(func(o *Options) { o.NoDefaultAgents = true })

	h.RegisterAgent(echoAgent("a1", "First"))
	h.RegisterAgent(echoAgent("a2", "Second"))
	h.RegisterAgent(echoAgent("a1", "Replacement"))

	agents := h.ListAgents()
	require.Len(t, agents, 2)
	assert.Equal(t, "a1", agents[0].ID())
	assert.Equal(t, "Replacement", agents[0].Name())
	assert.Equal(t, "a2", agents[1].ID())
}

func TestUnregisterAgent(t *testing.T) {
	h := New(func(o *Options) { o.NoDefaultAgents = true })
	h.RegisterAgent(echoAgent("a1", "First"))

	assert.True(t, h.UnregisterAgent("a1"))
	assert.False(t, h.UnregisterAgent("a1"))

	_, ok := h.GetAgent("a1")
	assert.False(t, ok)
	assert.Empty(t, h.ListAgents())
}

func TestGetAgentByName_FirstMatchWins(t *testing.T) {
	h := New(func(o *Options) { o.NoDefaultAgents = true })
	h.RegisterAgent(echoAgent("a1", "Reviewer"))
	h.RegisterAgent(echoAgent("a2", "Reviewer"))

	a, ok := h.GetAgentByName("Reviewer")
	require.True(t, ok)
	assert.Equal(t, "a1", a.ID())

	_, ok = h.GetAgentByName("Nobody")
	assert.False(t, ok)
}
