package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/huddlekit/huddle/core"
)

// Interface compliance (compile-time assertion)
var _ core.Agent = (*Agent)(nil)

// Profile is the static metadata describing an agent. ID is generated when
// left empty; the remaining fields never change after construction.
type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	SystemPrompt string `json:"systemPrompt"`
}

// RespondFunc is the capability slot of an Agent: it maps the input and a
// history snapshot (latest user message included, last) to the agent's
// output. Variants differ only in their profile and respond behavior.
type RespondFunc func(ctx context.Context, input string, history []core.Message) (string, error)

// Options configure agent construction.
type Options struct {
	Clock core.Clock
}

// Agent is the single concrete agent type: profile data plus a respond
// capability plus a guarded conversation history.
//
// Contract:
//   - Execute appends the input as a user message, invokes respond with a
//     history snapshot, and appends the output as an assistant message only
//     on success.
//   - History access is mutex-guarded; the hub additionally serializes
//     Execute per agent id, so queued dispatch never interleaves exchanges.
type Agent struct {
	profile Profile
	respond RespondFunc
	clock   core.Clock

	mu      sync.Mutex
	history []core.Message
}

// New creates an agent from a profile and a respond capability. An empty
// profile id is filled with a generated unique id.
func New(profile Profile, respond RespondFunc, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Clock: core.SystemClock{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if profile.ID == "" {
		profile.ID = core.NewID()
	}

	return &Agent{
		profile: profile,
		respond: respond,
		clock:   opts.Clock,
	}
}

// ID returns the agent's immutable identifier.
func (a *Agent) ID() string { return a.profile.ID }

// Name returns the human-readable agent name.
func (a *Agent) Name() string { return a.profile.Name }

// Provider returns the provider tag ("anthropic", "openai", ...).
func (a *Agent) Provider() string { return a.profile.Provider }

// Model returns the model identifier the agent is configured for.
func (a *Agent) Model() string { return a.profile.Model }

// SystemPrompt returns the agent's persona instructions.
func (a *Agent) SystemPrompt() string { return a.profile.SystemPrompt }

// Execute runs one exchange: record the user input, produce a response,
// record the response on success.
func (a *Agent) Execute(ctx context.Context, input string) (string, error) {
	userMsg := core.Message{
		Role:      core.RoleUser,
		Content:   input,
		Timestamp: a.clock.Now(),
	}

	a.mu.Lock()
	a.history = append(a.history, userMsg)
	snapshot := a.snapshotLocked()
	a.mu.Unlock()

	output, err := a.respond(ctx, input, snapshot)
	if err != nil {
		return "", err
	}

	a.AddToHistory(core.Message{
		Role:      core.RoleAssistant,
		Content:   output,
		Timestamp: a.clock.Now(),
	})

	return output, nil
}

// AddToHistory appends a message.
func (a *Agent) AddToHistory(msg core.Message) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append(a.history, msg)
}

// GetHistory returns a snapshot copy of the conversation (mutation-safe).
func (a *Agent) GetHistory() []core.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// ClearHistory resets the conversation to empty.
func (a *Agent) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// GetContext renders the history as "role: content" lines joined by
// newlines, in insertion order. A full provider integration uses this as
// the prompt-context string.
func (a *Agent) GetContext() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	lines := make([]string, len(a.history))
	for i, msg := range a.history {
		lines[i] = fmt.Sprintf("%s: %s", msg.Role, msg.Content)
	}
	return strings.Join(lines, "\n")
}

func (a *Agent) snapshotLocked() []core.Message {
	out := make([]core.Message, len(a.history))
	copy(out, a.history)
	return out
}
