/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
)

// SpanExporterType specifies the type of span exporter used by tracer provider.
type SpanExporterType = string

const (
	None   SpanExporterType = ""
	Jaeger SpanExporterType = "JAEGER"
	Stdout SpanExporterType = "STDOUT"
)

const (
	JaegerAgentEndpointEnvKey     = "OTEL_EXPORTER_JAEGER_AGENT_HOST"
	JaegerCollectorEndpointEnvKey = "OTEL_EXPORTER_JAEGER_ENDPOINT"
	tracerName                    = "github.com/vcissuer/issuer"
)

var exporters = map[SpanExporterType]func() (tracesdk.SpanExporter, error){
	Jaeger: newJaegerExporter,
	Stdout: func() (tracesdk.SpanExporter, error) { return stdouttrace.New() },
}

// IsExporterSupported reports whether Initialize accepts exporter.
func IsExporterSupported(exporter SpanExporterType) bool {
	_, ok := exporters[exporter]

	return ok || exporter == None
}

// Config selects the span exporter and describes the traced service.
type Config struct {
	Exporter       SpanExporterType
	ServiceName    string
	ServiceVersion string
	// SampleRatio is the share of root spans recorded. Zero records every span.
	SampleRatio float64
}

// Tracing holds the tracer provider handed to the HTTP, redis and mongodb
// instrumentation, and the tracer used by the issuer services.
type Tracing struct {
	Provider trace.TracerProvider
	Tracer   trace.Tracer
	shutdown func(context.Context) error
}

// Shutdown flushes pending spans.
func (t *Tracing) Shutdown(ctx context.Context) error {
	return t.shutdown(ctx)
}

// Initialize creates the tracer provider and registers it globally together
// with the W3C trace context and baggage propagators. With no exporter a noop
// provider is returned and nothing is registered.
func Initialize(cfg Config) (*Tracing, error) {
	if cfg.Exporter == None {
		provider := trace.NewNoopTracerProvider()

		return &Tracing{
			Provider: provider,
			Tracer:   provider.Tracer(tracerName),
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	newExporter, ok := exporters[cfg.Exporter]
	if !ok {
		return nil, fmt.Errorf("unsupported exporter type: %s", cfg.Exporter)
	}

	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		return nil, fmt.Errorf("sample ratio %v is outside [0, 1]", cfg.SampleRatio)
	}

	spanExporter, err := newExporter()
	if err != nil {
		return nil, fmt.Errorf("create %s exporter: %w", cfg.Exporter, err)
	}

	sampler := tracesdk.AlwaysSample()
	if cfg.SampleRatio > 0 {
		sampler = tracesdk.TraceIDRatioBased(cfg.SampleRatio)
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(cfg.ServiceName),
		semconv.ProcessPIDKey.Int(os.Getpid()),
	}

	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersionKey.String(cfg.ServiceVersion))
	}

	provider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithSampler(tracesdk.ParentBased(sampler)),
		tracesdk.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Tracing{
		Provider: provider,
		Tracer:   provider.Tracer(tracerName),
		shutdown: provider.Shutdown,
	}, nil
}

func newJaegerExporter() (tracesdk.SpanExporter, error) {
	var endpoint jaeger.EndpointOption

	switch {
	case os.Getenv(JaegerAgentEndpointEnvKey) != "":
		endpoint = jaeger.WithAgentEndpoint()
	case os.Getenv(JaegerCollectorEndpointEnvKey) != "":
		endpoint = jaeger.WithCollectorEndpoint()
	default:
		return nil, errors.New("neither agent nor collector endpoint is provided")
	}

	return jaeger.New(endpoint)
}
