package session

import (
	"fmt"
	"sync"

	"github.com/huddlekit/huddle/core"
	"github.com/huddlekit/huddle/internal/ident"
	"github.com/huddlekit/huddle/logging"
)

// idAttempts bounds the re-roll loop for human-readable session ids before
// falling back to a uuid.
const idAttempts = 5

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	// Logger receives registry lifecycle logs. Defaults to a no-op logger.
	Logger logging.Logger

	// Clock supplies join timestamps and is handed to created sessions.
	// Defaults to the system clock.
	Clock core.Clock

	// InviteBase is the service host handed to created sessions.
	InviteBase string

	// IDGen generates candidate session ids. Defaults to a fresh ident
	// generator.
	IDGen core.IDFunc

	// NewLedger builds the budget ledger for a created session from its
	// resolved budget. Returning one shared instance links the sessions to
	// a single account. Nil leaves the default per-session ledger.
	NewLedger func(budget float64) core.BudgetLedger

	// NewSyncEngine builds the synchronization engine for a created
	// session from its host id. Nil leaves the default in-memory engine.
	NewSyncEngine func(hostID string) core.SyncEngine
}

// Manager is the top-level session registry.
//
// It exclusively owns the sessions it creates; callers receive references
// for use, not ownership. All methods are safe for concurrent use.
type Manager struct {
	logger        logging.Logger
	clock         core.Clock
	inviteBase    string
	idGen         core.IDFunc
	newLedger     func(budget float64) core.BudgetLedger
	newSyncEngine func(hostID string) core.SyncEngine

	mu       sync.RWMutex
	sessions map[string]*Session
	order    []string
}

// NewManager creates an empty session registry.
func NewManager(optFns ...func(o *ManagerOptions)) *Manager {
	opts := ManagerOptions{
		Logger:     logging.NoOpLogger{},
		Clock:      core.SystemClock{},
		InviteBase: DefaultInviteBase,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.IDGen == nil {
		opts.IDGen = ident.New().SessionID
	}

	return &Manager{
		logger:        opts.Logger,
		clock:         opts.Clock,
		inviteBase:    opts.InviteBase,
		idGen:         opts.IDGen,
		newLedger:     opts.NewLedger,
		newSyncEngine: opts.NewSyncEngine,
		sessions:      make(map[string]*Session),
	}
}

// CreateSession constructs a session from cfg under a registry-unique id,
// stores it and returns it. The host is enrolled as the first participant.
func (m *Manager) CreateSession(cfg Config) *Session {
	m.mu.Lock()
	id := m.uniqueIDLocked()

	s := New(cfg, func(o *Options) {
		o.ID = id
		o.Clock = m.clock
		o.Logger = m.logger
		o.InviteBase = m.inviteBase
		if m.newLedger != nil {
			o.Ledger = m.newLedger(resolveBudget(cfg.Budget))
		}
		if m.newSyncEngine != nil {
			o.SyncEngine = m.newSyncEngine(cfg.HostID)
		}
	})

	m.sessions[id] = s
	m.order = append(m.order, id)
	m.mu.Unlock()

	return s
}

// uniqueIDLocked draws candidate ids until one misses the registry, then
// gives up on readability and returns a uuid. Caller holds m.mu.
func (m *Manager) uniqueIDLocked() string {
	for i := 0; i < idAttempts; i++ {
		id := m.idGen()
		if _, exists := m.sessions[id]; !exists {
			return id
		}
	}
	return core.NewID()
}

// GetSession retrieves a session by id.
func (m *Manager) GetSession(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// JoinSession adds a participant to the session, built from the stub's ID,
// Username and Color only: the manager stamps IsHost=false and fresh join
// timestamps. It returns the stored record, or core.ErrSessionNotFound when
// the session id is unknown; nothing is mutated in that case.
func (m *Manager) JoinSession(id string, p core.Participant) (core.Participant, error) {
	s, ok := m.GetSession(id)
	if !ok {
		return core.Participant{}, fmt.Errorf("session %q: %w", id, core.ErrSessionNotFound)
	}

	now := m.clock.Now()
	joined := s.AddParticipant(core.Participant{
		ID:       p.ID,
		Username: p.Username,
		Color:    p.Color,
		IsHost:   false,
		JoinedAt: now,
		LastSeen: now,
	})

	m.logger.Info("participant joined", "session_id", id, "participant_id", p.ID)
	return joined, nil
}

// LeaveSession removes the participant from the session. Unknown session
// ids are a silent no-op.
func (m *Manager) LeaveSession(id, participantID string) {
	s, ok := m.GetSession(id)
	if !ok {
		return
	}
	s.RemoveParticipant(participantID)
}

// EndSession ends the session and drops it from the registry. Unknown ids
// are a no-op. References held by callers stay readable but terminal.
func (m *Manager) EndSession(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
		for i, sid := range m.order {
			if sid == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	s.End()
}

// ListSessions returns a snapshot of all sessions in creation order.
func (m *Manager) ListSessions() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Session, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sessions[id])
	}
	return out
}
