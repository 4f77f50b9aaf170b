package hub

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/huddlekit/huddle/agent"
	"github.com/huddlekit/huddle/core"
	"github.com/huddlekit/huddle/logging"
)

// Options configures a Hub instance.
type Options struct {
	// Logger receives orchestration logs. Defaults to a no-op logger.
	Logger logging.Logger

	// Clock supplies task timestamps. Defaults to the system clock.
	Clock core.Clock

	// NewID generates task identifiers. Defaults to core.NewID.
	NewID core.IDFunc

	// Tracer records one span per executed task. Defaults to the global
	// tracer provider.
	Tracer trace.Tracer

	// Meter backs the hub's task counters and duration histogram.
	// Defaults to the global meter provider.
	Meter metric.Meter

	// NoDefaultAgents skips registration of the built-in personas, leaving
	// the hub empty until the caller registers its own agents.
	NoDefaultAgents bool
}

// Hub coordinates agent registration and task dispatch.
//
// All methods are safe for concurrent use. Registered agents are shared
// references; the hub serializes task execution per agent id but does not
// otherwise guard agent state.
type Hub struct {
	logger logging.Logger
	clock  core.Clock
	newID  core.IDFunc

	tracer  trace.Tracer
	metrics *hubMetrics

	mu         sync.RWMutex
	agents     map[string]core.Agent
	agentOrder []string

	tasksMu   sync.RWMutex
	tasks     map[string]*core.Task
	taskOrder []string
	done      map[string]chan struct{}

	queuesMu sync.Mutex
	queues   map[string]*agentQueue
}

// New creates a Hub. Unless disabled via Options.NoDefaultAgents, the four
// built-in personas are registered immediately.
func New(optFns ...func(o *Options)) *Hub {
	opts := Options{
		Logger: logging.NoOpLogger{},
		Clock:  core.SystemClock{},
		NewID:  core.NewID,
		Tracer: otel.Tracer("huddle/hub"),
		Meter:  otel.Meter("huddle/hub"),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	h := &Hub{
		logger:  opts.Logger,
		clock:   opts.Clock,
		newID:   opts.NewID,
		tracer:  opts.Tracer,
		metrics: newHubMetrics(opts.Meter, opts.Logger),
		agents:  make(map[string]core.Agent),
		tasks:   make(map[string]*core.Task),
		done:    make(map[string]chan struct{}),
		queues:  make(map[string]*agentQueue),
	}

	if !opts.NoDefaultAgents {
		for _, a := range agent.Defaults() {
			h.RegisterAgent(a)
		}
	}

	return h
}

// RegisterAgent adds an agent to the registry, keyed by its id. Registering
// an agent with an id already present replaces the previous entry while
// keeping its registration order.
func (h *Hub) RegisterAgent(a core.Agent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.agents[a.ID()]; !exists {
		h.agentOrder = append(h.agentOrder, a.ID())
	}
	h.agents[a.ID()] = a

	h.logger.Debug("agent registered", "agent_id", a.ID(), "agent_name", a.Name())
}

// UnregisterAgent removes the agent with the given id and reports whether
// it was present. Tasks already queued for the agent fail when they reach
// the front of its queue.
func (h *Hub) UnregisterAgent(agentID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.agents[agentID]; !exists {
		return false
	}
	delete(h.agents, agentID)
	for i, id := range h.agentOrder {
		if id == agentID {
			h.agentOrder = append(h.agentOrder[:i], h.agentOrder[i+1:]...)
			break
		}
	}

	h.logger.Debug("agent unregistered", "agent_id", agentID)
	return true
}

// GetAgent retrieves a registered agent by id.
func (h *Hub) GetAgent(agentID string) (core.Agent, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	a, ok := h.agents[agentID]
	return a, ok
}

// GetAgentByName retrieves the first registered agent with the given
// human-readable name, in registration order.
func (h *Hub) GetAgentByName(name string) (core.Agent, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, id := range h.agentOrder {
		if a := h.agents[id]; a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// ListAgents returns all registered agents in registration order.
func (h *Hub) ListAgents() []core.Agent {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]core.Agent, 0, len(h.agentOrder))
	for _, id := range h.agentOrder {
		out = append(out, h.agents[id])
	}
	return out
}
