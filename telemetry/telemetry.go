// SPDX-License-Identifier: MIT

// Package telemetry installs the global OpenTelemetry tracer provider used
// by the route and server spans.
//
// Supported exporters:
//
//	none   - spans are created but dropped (the otel default)
//	stdout - spans are written as JSON to a writer when they end
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// ErrUnknownExporter indicates an exporter name outside the supported set.
var ErrUnknownExporter = errors.New("telemetry: unknown trace exporter")

// ValidExporter reports whether name is a supported exporter.
func ValidExporter(name string) bool {
	return name == ExporterNone || name == ExporterStdout || name == ""
}

// Init installs a tracer provider for exporter and returns its shutdown
// function, which flushes pending spans. With ExporterNone (or "") nothing
// is installed and shutdown is a no-op.
func Init(_ context.Context, exporter, version string, w io.Writer) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	switch exporter {
	case "", ExporterNone:
		return noop, nil
	case ExporterStdout:
	default:
		return noop, fmt.Errorf("%w: %q", ErrUnknownExporter, exporter)
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return noop, fmt.Errorf("telemetry: create exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", "waypath"),
		attribute.String("service.version", version),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
