package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_ExportsToFiles(t *testing.T) {
	dir := t.TempDir()

	tracer, meter, cleanup, err := Init(context.Background(), func(o *Options) {
		o.ServiceName = "huddle-test"
		o.Dir = dir
	})
	require.NoError(t, err)
	require.NotNil(t, tracer)
	require.NotNil(t, meter)

	_, span := tracer.Start(context.Background(), "test_span")
	span.End()

	counter, err := meter.Int64Counter("test.counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	// Shutdown flushes both exporters.
	cleanup()

	for _, name := range []string{"huddle-test_traces.log", "huddle-test_metrics.log"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}
