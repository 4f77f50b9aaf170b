package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinAgents(t *testing.T) {
	tests := []struct {
		name     string
		agent    *Agent
		provider string
		tag      string
	}{
		{ArchitectName, NewArchitect(), "anthropic", "Architect"},
		{DevilsAdvocateName, NewDevilsAdvocate(), "openai", "Devil's Advocate"},
		{HistorianName, NewHistorian(), "anthropic", "Historian"},
		{ScribeName, NewScribe(), "openai", "Scribe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.agent.ID())
			assert.Equal(t, tt.name, tt.agent.Name())
			assert.Equal(t, tt.provider, tt.agent.Provider())
			assert.NotEmpty(t, tt.agent.Model())
			assert.NotEmpty(t, tt.agent.SystemPrompt())

			out, err := tt.agent.Execute(context.Background(), "why?")
			require.NoError(t, err)
			assert.Equal(t, "["+tt.tag+"] why?", out)
		})
	}
}

func TestDefaults(t *testing.T) {
	agents := Defaults()
	require.Len(t, agents, 4)

	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{ArchitectName, DevilsAdvocateName, HistorianName, ScribeName}, names)
}

func TestDefaults_OptionsApplyToAll(t *testing.T) {
	ids := map[string]bool{}
	for _, a := range Defaults() {
		assert.False(t, ids[a.ID()], "duplicate agent id %s", a.ID())
		ids[a.ID()] = true
	}
}
