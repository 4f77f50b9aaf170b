package agent

import (
	"context"
	"fmt"

	"github.com/huddlekit/huddle/core"
)

// Human-readable names of the built-in agents, used by the hub's named
// dispatch helpers.
const (
	ArchitectName      = "The Architect"
	DevilsAdvocateName = "The Devil's Advocate"
	HistorianName      = "The Historian"
	ScribeName         = "The Scribe"
)

// echoRespond returns a placeholder respond capability that labels the
// input with the variant tag. Real output requires a provider model behind
// the respond slot (see NewModelAgent).
func echoRespond(tag string) RespondFunc {
	return func(_ context.Context, input string, _ []core.Message) (string, error) {
		return fmt.Sprintf("[%s] %s", tag, input), nil
	}
}

// NewArchitect creates the built-in system-design agent.
func NewArchitect(optFns ...func(o *Options)) *Agent {
	return New(Profile{
		Name:         ArchitectName,
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		SystemPrompt: "You are The Architect. You design systems, weigh structural trade-offs and explain the reasoning behind them.",
	}, echoRespond("Architect"), optFns...)
}

// NewDevilsAdvocate creates the built-in assumption-challenging agent.
func NewDevilsAdvocate(optFns ...func(o *Options)) *Agent {
	return New(Profile{
		Name:         DevilsAdvocateName,
		Provider:     "openai",
		Model:        "gpt-4o",
		SystemPrompt: "You are The Devil's Advocate. You challenge assumptions, probe weak points and argue the opposing case.",
	}, echoRespond("Devil's Advocate"), optFns...)
}

// NewHistorian creates the built-in project-history agent.
func NewHistorian(optFns ...func(o *Options)) *Agent {
	return New(Profile{
		Name:         HistorianName,
		Provider:     "anthropic",
		Model:        "claude-3-5-haiku-20241022",
		SystemPrompt: "You are The Historian. You recall prior decisions and recount how the project arrived at its current state.",
	}, echoRespond("Historian"), optFns...)
}

// NewScribe creates the built-in documentation agent.
func NewScribe(optFns ...func(o *Options)) *Agent {
	return New(Profile{
		Name:         ScribeName,
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		SystemPrompt: "You are The Scribe. You turn discussions and code into clear, durable documentation.",
	}, echoRespond("Scribe"), optFns...)
}

// Defaults returns fresh instances of the four built-in agents.
func Defaults(optFns ...func(o *Options)) []*Agent {
	return []*Agent{
		NewArchitect(optFns...),
		NewDevilsAdvocate(optFns...),
		NewHistorian(optFns...),
		NewScribe(optFns...),
	}
}
