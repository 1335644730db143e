// Package telemetry sets up the OpenTelemetry providers of forumd and the
// instruments recorded by the action pipeline, the HTTP server and the
// webhook client.
//
// Exporters are "stdout" for local runs and "otlp" (OTLP over HTTP) for a
// collector. Both providers are registered globally and must be shut down
// on exit:
//
//	tp, err := telemetry.InitTracer(ctx, "forumd", telemetry.ExporterOTLP, "http://collector:4318")
//	mp, err := telemetry.InitMeter(ctx, "forumd", telemetry.ExporterOTLP, "http://collector:4318")
//	metrics, err := telemetry.NewMetrics(mp, "forumd")
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrEndpointRequired is returned when the otlp exporter has no endpoint.
var ErrEndpointRequired = errors.New("telemetry: otlp exporter requires an endpoint")

// Span and metric attribute keys.
var (
	AttrAction      = attribute.Key("forum.action")
	AttrResult      = attribute.Key("result")
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPTarget  = attribute.Key("http.target")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
)

// Metrics are the instruments shared across forumd. Action* is recorded once
// per pipeline run, Server* per inbound request and Client* per webhook
// delivery attempt.
type Metrics struct {
	ActionDuration        metric.Float64Histogram
	ActionTotal           metric.Int64Counter
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
}

// InitTracer builds a batching TracerProvider for exporter and installs it,
// together with the W3C trace-context and baggage propagators, as the global
// provider.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var ep collector
		if ep, err = parseCollector(endpoint); err == nil {
			opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(ep.host)}
			if !ep.tls {
				opts = append(opts, otlptracehttp.WithInsecure())
			}
			exp, err = otlptracehttp.New(ctx, opts...)
		}
	default:
		err = unsupported(exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter builds a MeterProvider with a periodic reader for exporter and
// installs it as the global provider.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdkmetric.Exporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	case ExporterOTLP:
		var ep collector
		if ep, err = parseCollector(endpoint); err == nil {
			opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(ep.host)}
			if !ep.tls {
				opts = append(opts, otlpmetrichttp.WithInsecure())
			}
			exp, err = otlpmetrichttp.New(ctx, opts...)
		}
	default:
		err = unsupported(exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers the forumd instruments on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	b := instruments{meter: mp.Meter(scope)}

	m := &Metrics{
		ActionDuration: b.histogram("forum.action.duration", "Duration of forum action runs"),
		ActionTotal:    b.counter("forum.action.total", "Forum action runs by outcome", "{action}"),

		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of inbound HTTP requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Inbound HTTP requests", "{request}"),

		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of webhook delivery attempts"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Webhook delivery attempts", "{request}"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// instruments creates instruments on meter and keeps the first error.
type instruments struct {
	meter metric.Meter
	err   error
}

func (b *instruments) histogram(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("creating %s: %w", name, err)
	}
	return h
}

func (b *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("creating %s: %w", name, err)
	}
	return c
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

func unsupported(exporter string) error {
	return fmt.Errorf("unsupported exporter %q", exporter)
}

// collector is an OTLP endpoint as the exporters expect it: host:port plus
// whether to dial with TLS.
type collector struct {
	host string
	tls  bool
}

// parseCollector accepts "http://collector:4318", "https://collector:4318"
// or a bare "collector:4318" (plaintext).
func parseCollector(endpoint string) (collector, error) {
	if endpoint == "" {
		return collector{}, ErrEndpointRequired
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return collector{host: endpoint}, nil
	}
	return collector{host: u.Host, tls: u.Scheme == "https"}, nil
}
