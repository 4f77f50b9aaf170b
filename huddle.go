// Package huddle provides a high-level façade over the session registry and
// the agent hub, enabling rapid construction of collaborative workspaces
// with on-demand AI agents. Most applications interact with this package by:
//  1. Creating a Workspace via New() (optionally sharing one budget ledger
//     across all sessions)
//  2. Creating sessions and joining participants
//  3. Submitting tasks to registered agents (SubmitTask / SubmitTaskSync) or
//     using the named dispatch helpers (AskArchitect, ChallengeCode, ...)
//
// The façade delegates session lifecycle to session.Manager and task
// orchestration to hub.Hub while keeping setup concise. All defaults are
// safe for local development and testing; production deployments typically
// supply a structured logger and a durable ledger implementation.
package huddle

import (
	"context"

	"github.com/huddlekit/huddle/core"
	"github.com/huddlekit/huddle/hub"
	"github.com/huddlekit/huddle/logging"
	"github.com/huddlekit/huddle/session"
)

// Options configures the Workspace instance.
type Options struct {
	// Logger receives logs from the session registry and the hub.
	// Defaults to a no-op logger.
	Logger logging.Logger

	// Clock drives every timestamp in the workspace. Defaults to the
	// system clock.
	Clock core.Clock

	// Ledger, when set, is shared by every session created through this
	// workspace so all sessions draw from one account. Unset gives each
	// session its own ledger seeded from its budget.
	Ledger core.BudgetLedger

	// InviteBase is the service host used in session invite links.
	InviteBase string

	// NoDefaultAgents starts the hub without the built-in personas.
	NoDefaultAgents bool
}

// Workspace aggregates the session manager and the agent hub behind one
// entry point.
type Workspace struct {
	opts     Options
	sessions *session.Manager
	hub      *hub.Hub
}

// New creates a Workspace with optional overrides.
func New(optFns ...func(o *Options)) *Workspace {
	opts := Options{
		Logger:     logging.NoOpLogger{},
		Clock:      core.SystemClock{},
		InviteBase: session.DefaultInviteBase,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	sessions := session.NewManager(func(o *session.ManagerOptions) {
		o.Logger = opts.Logger
		o.Clock = opts.Clock
		o.InviteBase = opts.InviteBase
		if opts.Ledger != nil {
			o.NewLedger = func(float64) core.BudgetLedger { return opts.Ledger }
		}
	})

	h := hub.New(func(o *hub.Options) {
		o.Logger = opts.Logger
		o.Clock = opts.Clock
		o.NoDefaultAgents = opts.NoDefaultAgents
	})

	return &Workspace{opts: opts, sessions: sessions, hub: h}
}

// Sessions returns the underlying session manager.
func (w *Workspace) Sessions() *session.Manager { return w.sessions }

// Agents returns the underlying agent hub.
func (w *Workspace) Agents() *hub.Hub { return w.hub }

// CreateSession creates a workspace session and enrolls the host.
func (w *Workspace) CreateSession(cfg session.Config) *session.Session {
	return w.sessions.CreateSession(cfg)
}

// JoinSession adds a participant to an existing session.
func (w *Workspace) JoinSession(id string, p core.Participant) (core.Participant, error) {
	return w.sessions.JoinSession(id, p)
}

// RegisterAgent adds an agent to the underlying hub.
func (w *Workspace) RegisterAgent(a core.Agent) { w.hub.RegisterAgent(a) }

// SubmitTask schedules input against a registered agent and returns the
// pending task record.
func (w *Workspace) SubmitTask(agentID, input string) (core.Task, error) {
	return w.hub.SubmitTask(agentID, input)
}

// SubmitTaskSync schedules input against a registered agent and waits for
// the terminal task record.
func (w *Workspace) SubmitTaskSync(ctx context.Context, agentID, input string) (core.Task, error) {
	return w.hub.SubmitTaskSync(ctx, agentID, input)
}

// AskArchitect routes input to the built-in Architect persona.
func (w *Workspace) AskArchitect(ctx context.Context, input string) (string, error) {
	return w.hub.AskArchitect(ctx, input)
}

// ChallengeCode routes input to the built-in Devil's Advocate persona.
func (w *Workspace) ChallengeCode(ctx context.Context, input string) (string, error) {
	return w.hub.ChallengeCode(ctx, input)
}

// GetHistory routes input to the built-in Historian persona.
func (w *Workspace) GetHistory(ctx context.Context, input string) (string, error) {
	return w.hub.GetHistory(ctx, input)
}

// DocumentCode routes input to the built-in Scribe persona.
func (w *Workspace) DocumentCode(ctx context.Context, input string) (string, error) {
	return w.hub.DocumentCode(ctx, input)
}
