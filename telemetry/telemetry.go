// Package telemetry wires OpenTelemetry tracing and metrics with rotating
// file exporters, suitable for local debugging while an OTEL collector can
// still pick everything up via the SDK.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/huddlekit/huddle/logging"
)

// Options configures Init.
type Options struct {
	// ServiceName identifies this process in exported telemetry and names
	// the export files.
	ServiceName string

	// ServiceVersion is attached to the telemetry resource.
	ServiceVersion string

	// Dir receives the rotated trace and metric files.
	Dir string

	// ExportInterval is the period between metric exports.
	ExportInterval time.Duration

	// Logger receives shutdown errors from the returned cleanup.
	Logger logging.Logger
}

// Init sets up OpenTelemetry tracing and metrics backed by rotating files
// under Options.Dir and installs both providers globally, so components
// that default to the global providers start reporting without further
// wiring. The returned cleanup flushes and shuts everything down; callers
// should defer it.
func Init(ctx context.Context, optFns ...func(o *Options)) (trace.Tracer, metric.Meter, func(), error) {
	opts := Options{
		ServiceName:    "huddle",
		ServiceVersion: "1.0.0",
		Dir:            "logs",
		ExportInterval: 10 * time.Second,
		Logger:         logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceVersion(opts.ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create telemetry directory: %w", err)
	}

	traceFile := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, opts.ServiceName+"_traces.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	traceExporter, err := stdouttrace.New(
		stdouttrace.WithWriter(traceFile),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	metricsFile := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, opts.ServiceName+"_metrics.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	metricExporter, err := stdoutmetric.New(
		stdoutmetric.WithWriter(metricsFile),
		stdoutmetric.WithPrettyPrint(),
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				metricExporter,
				sdkmetric.WithInterval(opts.ExportInterval),
			),
		),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	tracer := tp.Tracer(opts.ServiceName)
	meter := mp.Meter(opts.ServiceName)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			opts.Logger.Error("failed to shutdown tracer provider", "error", err)
		}
		if err := mp.Shutdown(ctx); err != nil {
			opts.Logger.Error("failed to shutdown meter provider", "error", err)
		}
		if err := traceFile.Close(); err != nil {
			opts.Logger.Error("failed to close trace file", "error", err)
		}
		if err := metricsFile.Close(); err != nil {
			opts.Logger.Error("failed to close metrics file", "error", err)
		}
	}

	return tracer, meter, cleanup, nil
}
