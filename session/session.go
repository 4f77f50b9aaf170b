package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/huddlekit/huddle/collab"
	"github.com/huddlekit/huddle/core"
	"github.com/huddlekit/huddle/internal/ident"
	"github.com/huddlekit/huddle/ledger"
	"github.com/huddlekit/huddle/logging"
)

// DefaultBudget is the ledger seed, in currency units, used when a session
// is created without an explicit budget.
const DefaultBudget = 5.00

// DefaultInviteBase is the service host used in invite links when none is
// configured.
const DefaultInviteBase = "https://huddle.app"

// Palette lists the cursor colors assigned to participants who join without
// an explicit color, indexed by the participant count at insertion time.
var Palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// Config carries the caller-supplied properties of a new session.
type Config struct {
	// Name is the human-readable workspace title.
	Name string

	// HostID identifies the participant enrolled as host.
	HostID string

	// HostName is the host's username. Defaults to HostID.
	HostName string

	// AllowGuests marks whether unauthenticated participants may join.
	// The session stores the flag; enforcement belongs to the joining
	// surface.
	AllowGuests bool

	// Budget seeds the session's ledger when no ledger is injected.
	// Zero or negative selects DefaultBudget.
	Budget float64
}

// Options configures session construction beyond Config.
type Options struct {
	// ID overrides the generated session id.
	ID string

	// IDGen generates the session id when ID is empty. Defaults to a
	// fresh ident generator.
	IDGen core.IDFunc

	// Ledger is the budget account the session consults. Defaults to an
	// in-memory ledger seeded with the resolved Config.Budget. Sharing one
	// ledger across sessions shares the account.
	Ledger core.BudgetLedger

	// SyncEngine receives cursor-removal calls. Defaults to an in-memory
	// engine constructed with the host's id.
	SyncEngine core.SyncEngine

	// Clock supplies participant timestamps. Defaults to the system clock.
	Clock core.Clock

	// Logger receives session lifecycle logs. Defaults to a no-op logger.
	Logger logging.Logger

	// InviteBase is the service host for invite links. Defaults to
	// DefaultInviteBase. A trailing slash is trimmed.
	InviteBase string

	// Palette overrides the cursor color palette.
	Palette []string
}

// Session is one collaborative workspace: a participant registry plus a
// budget gate and a synchronization-engine handle.
//
// All methods are safe for concurrent use. Once End has run the session is
// terminal; mutating methods become no-ops and reads keep answering from
// the final state.
type Session struct {
	id          string
	name        string
	hostID      string
	allowGuests bool
	inviteBase  string

	ledger     core.BudgetLedger
	syncEngine core.SyncEngine
	clock      core.Clock
	logger     logging.Logger
	palette    []string

	mu           sync.RWMutex
	participants map[string]core.Participant
	active       bool
}

// New constructs a session and enrolls the host as its first participant
// with IsHost set.
func New(cfg Config, optFns ...func(o *Options)) *Session {
	opts := Options{
		Clock:      core.SystemClock{},
		Logger:     logging.NoOpLogger{},
		InviteBase: DefaultInviteBase,
		Palette:    Palette,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Ledger == nil {
		opts.Ledger = ledger.NewInMemory(resolveBudget(cfg.Budget))
	}
	if opts.SyncEngine == nil {
		opts.SyncEngine = collab.NewInMemoryEngine(cfg.HostID, func(o *collab.Options) {
			o.Clock = opts.Clock
		})
	}
	if opts.ID == "" {
		if opts.IDGen != nil {
			opts.ID = opts.IDGen()
		} else {
			opts.ID = ident.New().SessionID()
		}
	}

	hostName := cfg.HostName
	if hostName == "" {
		hostName = cfg.HostID
	}

	s := &Session{
		id:           opts.ID,
		name:         cfg.Name,
		hostID:       cfg.HostID,
		allowGuests:  cfg.AllowGuests,
		inviteBase:   strings.TrimSuffix(opts.InviteBase, "/"),
		ledger:       opts.Ledger,
		syncEngine:   opts.SyncEngine,
		clock:        opts.Clock,
		logger:       opts.Logger,
		palette:      opts.Palette,
		participants: make(map[string]core.Participant),
		active:       true,
	}

	s.AddParticipant(core.Participant{
		ID:       cfg.HostID,
		Username: hostName,
		IsHost:   true,
	})

	s.logger.Info("session created", "session_id", s.id, "name", s.name, "host_id", s.hostID)

	return s
}

// resolveBudget maps an unset budget to the default.
func resolveBudget(budget float64) float64 {
	if budget <= 0 {
		return DefaultBudget
	}
	return budget
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Name returns the workspace title.
func (s *Session) Name() string { return s.name }

// HostID returns the id of the hosting participant.
func (s *Session) HostID() string { return s.hostID }

// AllowsGuests reports the guest-access flag from the session config.
func (s *Session) AllowsGuests() bool { return s.allowGuests }

// IsActive reports whether the session has not been ended.
func (s *Session) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SyncEngine returns the session's synchronization-engine handle.
func (s *Session) SyncEngine() core.SyncEngine { return s.syncEngine }

// AddParticipant inserts or overwrites a participant by id and returns the
// stored record. An empty Color is filled from the palette, indexed by the
// participant count at insertion time, so removals shift later assignments.
// Zero join timestamps are stamped with the current time.
func (s *Session) AddParticipant(p core.Participant) core.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		s.logger.Warn("participant add on ended session", "session_id", s.id, "participant_id", p.ID)
		return p
	}

	if p.Color == "" {
		p.Color = s.palette[len(s.participants)%len(s.palette)]
	}
	if p.JoinedAt.IsZero() {
		p.JoinedAt = s.clock.Now()
	}
	if p.LastSeen.IsZero() {
		p.LastSeen = p.JoinedAt
	}
	s.participants[p.ID] = p

	s.logger.Debug("participant added", "session_id", s.id, "participant_id", p.ID, "color", p.Color)

	return p
}

// RemoveParticipant deletes the participant and instructs the sync engine
// to drop their cursor. Removing an absent id changes nothing and triggers
// no cursor call.
func (s *Session) RemoveParticipant(id string) {
	s.mu.Lock()
	_, ok := s.participants[id]
	if ok {
		delete(s.participants, id)
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	s.syncEngine.RemoveCursor(id)
	s.logger.Debug("participant removed", "session_id", s.id, "participant_id", id)
}

// GetParticipant retrieves a participant by id.
func (s *Session) GetParticipant(id string) (core.Participant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[id]
	return p, ok
}

// GetParticipants returns a snapshot of all participants ordered by join
// time.
func (s *Session) GetParticipants() []core.Participant {
	s.mu.RLock()
	out := make([]core.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].JoinedAt.Before(out[j].JoinedAt)
	})
	return out
}

// IsHost reports whether the given user id is the session host.
func (s *Session) IsHost(userID string) bool { return userID == s.hostID }

// TouchParticipant refreshes the participant's LastSeen timestamp. Unknown
// ids and ended sessions are no-ops.
func (s *Session) TouchParticipant(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	p, ok := s.participants[id]
	if !ok {
		return
	}
	p.LastSeen = s.clock.Now()
	s.participants[id] = p
}

// GetInviteLink renders the join URL for this session.
func (s *Session) GetInviteLink() string {
	return fmt.Sprintf("%s/join/%s", s.inviteBase, s.id)
}

// End deactivates the session, dropping every participant and their
// cursors. End is terminal and idempotent; repeated calls change nothing.
func (s *Session) End() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	ids := make([]string, 0, len(s.participants))
	for id := range s.participants {
		ids = append(ids, id)
	}
	s.participants = make(map[string]core.Participant)
	s.mu.Unlock()

	for _, id := range ids {
		s.syncEngine.RemoveCursor(id)
	}

	s.logger.Info("session ended", "session_id", s.id)
}

// Status is the read-only projection returned by GetStatus.
type Status struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Participants    int     `json:"participants"`
	BudgetRemaining float64 `json:"budgetRemaining"`
	IsActive        bool    `json:"isActive"`
}

// GetStatus reports the session's current state in one read.
func (s *Session) GetStatus() Status {
	s.mu.RLock()
	status := Status{
		ID:           s.id,
		Name:         s.name,
		Participants: len(s.participants),
		IsActive:     s.active,
	}
	s.mu.RUnlock()

	status.BudgetRemaining = s.ledger.GetBudgetRemaining()
	return status
}

// GetBudgetRemaining reports the remaining funds on the session's ledger.
func (s *Session) GetBudgetRemaining() float64 {
	return s.ledger.GetBudgetRemaining()
}

// RecordAIUsage attempts to account cost against the ledger and reports
// whether the spend was accepted. The session is a pass-through gate, not
// an enforcer; callers must branch on the result before treating AI work
// as billed.
func (s *Session) RecordAIUsage(cost float64) bool {
	accepted := s.ledger.RecordSpend(cost)
	if !accepted {
		s.logger.Warn("ai usage rejected", "session_id", s.id, "cost", cost, "remaining", s.ledger.GetBudgetRemaining())
	}
	return accepted
}
