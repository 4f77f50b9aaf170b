package hub

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/huddlekit/huddle/logging"
)

// hubMetrics bundles the instruments recorded by the task pipeline. A
// failed instrument registration leaves the slot nil and hub operation
// unaffected.
type hubMetrics struct {
	tasksSubmitted metric.Int64Counter
	tasksCompleted metric.Int64Counter
	tasksFailed    metric.Int64Counter
	taskDuration   metric.Float64Histogram
}

func newHubMetrics(meter metric.Meter, logger logging.Logger) *hubMetrics {
	m := &hubMetrics{}
	var err error

	if m.tasksSubmitted, err = meter.Int64Counter(
		"hub.tasks.submitted",
		metric.WithDescription("Number of tasks submitted"),
	); err != nil {
		logger.Warn("failed to create counter", "name", "hub.tasks.submitted", "error", err)
	}

	if m.tasksCompleted, err = meter.Int64Counter(
		"hub.tasks.completed",
		metric.WithDescription("Number of tasks that completed successfully"),
	); err != nil {
		logger.Warn("failed to create counter", "name", "hub.tasks.completed", "error", err)
	}

	if m.tasksFailed, err = meter.Int64Counter(
		"hub.tasks.failed",
		metric.WithDescription("Number of tasks that ended in failure"),
	); err != nil {
		logger.Warn("failed to create counter", "name", "hub.tasks.failed", "error", err)
	}

	if m.taskDuration, err = meter.Float64Histogram(
		"hub.task.duration",
		metric.WithDescription("Task duration from submission to terminal state in milliseconds"),
	); err != nil {
		logger.Warn("failed to create histogram", "name", "hub.task.duration", "error", err)
	}

	return m
}

func (m *hubMetrics) submitted(ctx context.Context) {
	if m.tasksSubmitted != nil {
		m.tasksSubmitted.Add(ctx, 1)
	}
}

func (m *hubMetrics) finished(ctx context.Context, completed bool, duration time.Duration) {
	if completed {
		if m.tasksCompleted != nil {
			m.tasksCompleted.Add(ctx, 1)
		}
	} else if m.tasksFailed != nil {
		m.tasksFailed.Add(ctx, 1)
	}
	if m.taskDuration != nil {
		m.taskDuration.Record(ctx, float64(duration.Milliseconds()))
	}
}
