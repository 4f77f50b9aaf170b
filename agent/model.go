package agent

import (
	"context"

	"github.com/huddlekit/huddle/core"
	"github.com/huddlekit/huddle/model"
)

// NewModelAgent creates an agent whose respond capability calls a provider
// model with the agent's system prompt and the conversation so far. It is
// the provider-backed counterpart to the built-in echo personas; empty
// provider/model profile fields are filled from the model's Info.
func NewModelAgent(profile Profile, m model.Model, optFns ...func(o *Options)) *Agent {
	info := m.Info()
	if profile.Provider == "" {
		profile.Provider = info.Provider
	}
	if profile.Model == "" {
		profile.Model = info.Name
	}

	systemPrompt := profile.SystemPrompt

	respond := func(ctx context.Context, _ string, history []core.Message) (string, error) {
		resp, err := m.Complete(ctx, model.Request{
			System:   systemPrompt,
			Messages: history,
		})
		if err != nil {
			return "", err
		}
		return resp.Content, nil
	}

	return New(profile, respond, optFns...)
}
