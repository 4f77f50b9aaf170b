package hub

import (
	"context"
	"testing"

	"github.com/huddlekit/huddle/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.Agent = (*MockAgent)(nil)

// MockAgent for verifying hub/agent interactions
type MockAgent struct {
	mock.Mock
	id   string
	name string
}

func NewMockAgent(id, name string) *MockAgent {
	return &MockAgent{id: id, name: name}
}

func (m *MockAgent) ID() string           { return m.id }
func (m *MockAgent) Name() string         { return m.name }
func (m *MockAgent) Provider() string     { return "mock" }
func (m *MockAgent) Model() string        { return "mock-model" }
func (m *MockAgent) SystemPrompt() string { return "" }

func (m *MockAgent) Execute(ctx context.Context, input string) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockAgent) AddToHistory(msg core.Message) {
	m.Called(msg)
}

func (m *MockAgent) GetHistory() []core.Message {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]core.Message)
	}
	return nil
}

func (m *MockAgent) ClearHistory() {
	m.Called()
}

func (m *MockAgent) GetContext() string {
	args := m.Called()
	return args.String(0)
}

func TestSubmitTaskSync_InvokesAgentOnce(t *testing.T) {
	h := newTestHub()
	agent := NewMockAgent("a1", "Mock")
	agent.On("Execute", mock.Anything, "hello").Return("ok", nil).Once()
	h.RegisterAgent(agent)

	task, err := h.SubmitTaskSync(context.Background(), "a1", "hello")
	require.NoError(t, err)
	assert.Equal(t, core.TaskCompleted, task.Status)
	assert.Equal(t, "ok", task.Result)

	agent.AssertExpectations(t)
}

func TestSubmitTask_PassesErrorThroughToTask(t *testing.T) {
	h := newTestHub()
	agent := NewMockAgent("a1", "Mock")
	agent.On("Execute", mock.Anything, "hello").Return("", assert.AnError).Once()
	h.RegisterAgent(agent)

	task, err := h.SubmitTaskSync(context.Background(), "a1", "hello")
	require.NoError(t, err)
	assert.Equal(t, core.TaskFailed, task.Status)
	assert.Equal(t, assert.AnError.Error(), task.Error)

	agent.AssertExpectations(t)
}
