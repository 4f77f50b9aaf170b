package core

import (
	"testing"
	"time"
)

func TestTask_Terminal(t *testing.T) {
	cases := []struct {
		status TaskStatus
		want   bool
	}{
		{TaskPending, false},
		{TaskRunning, false},
		{TaskCompleted, true},
		{TaskFailed, true},
	}
	for _, c := range cases {
		task := Task{Status: c.status}
		if task.Terminal() != c.want {
			t.Errorf("Terminal() for %s: expected %v", c.status, c.want)
		}
	}
}

func TestTask_Duration(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	open := Task{StartTime: start}
	if open.Duration() != 0 {
		t.Errorf("expected zero duration for unfinished task, got %v", open.Duration())
	}

	done := Task{StartTime: start, EndTime: start.Add(250 * time.Millisecond)}
	if done.Duration() != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", done.Duration())
	}
}
