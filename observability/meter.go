package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/spikit/logger"
)

// MeterConfig configures the OpenTelemetry meter.
type MeterConfig struct {
	// ServiceName is the name of the embedding application.
	ServiceName string
	// ServiceVersion is the version of the embedding application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(config.Interval),
		)),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics bundles the instruments for event delivery.
type Metrics struct {
	eventsSent    metric.Int64Counter
	eventsDropped metric.Int64Counter
	sendErrors    metric.Int64Counter
	sendDuration  metric.Float64Histogram
	subscribers   metric.Int64UpDownCounter
}

// NewMetrics creates the event delivery instrument set on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	eventsSent, err := meter.Int64Counter(
		"spikit.events.sent",
		metric.WithDescription("Events delivered into a stream buffer"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events sent counter: %w", err)
	}

	eventsDropped, err := meter.Int64Counter(
		"spikit.events.dropped",
		metric.WithDescription("Events dropped because a subscriber buffer was full"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events dropped counter: %w", err)
	}

	sendErrors, err := meter.Int64Counter(
		"spikit.send.errors",
		metric.WithDescription("Send attempts that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating send errors counter: %w", err)
	}

	sendDuration, err := meter.Float64Histogram(
		"spikit.send.duration",
		metric.WithDescription("Time a send spent blocked on the buffer"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating send duration histogram: %w", err)
	}

	subscribers, err := meter.Int64UpDownCounter(
		"spikit.hub.subscribers",
		metric.WithDescription("Active hub subscribers"),
		metric.WithUnit("{subscriber}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating subscribers counter: %w", err)
	}

	return &Metrics{
		eventsSent:    eventsSent,
		eventsDropped: eventsDropped,
		sendErrors:    sendErrors,
		sendDuration:  sendDuration,
		subscribers:   subscribers,
	}, nil
}

// RecordSend records one send attempt and how long it blocked.
func (m *Metrics) RecordSend(ctx context.Context, stream, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(AttrStreamName, stream),
		attribute.String(AttrStatus, status),
	)
	m.eventsSent.Add(ctx, 1, attrs)
	m.sendDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// RecordDrop records an event dropped due to a full subscriber buffer.
func (m *Metrics) RecordDrop(ctx context.Context, stream string) {
	m.eventsDropped.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrStreamName, stream),
	))
}

// RecordError records a failed send.
func (m *Metrics) RecordError(ctx context.Context, stream string, err error) {
	m.sendErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrStreamName, stream),
		attribute.String(AttrErrorMessage, err.Error()),
	))
}

// SubscriberAdded records a new hub subscriber.
func (m *Metrics) SubscriberAdded(ctx context.Context, hub string) {
	m.subscribers.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrStreamName, hub),
	))
}

// SubscriberRemoved records a hub subscriber going away.
func (m *Metrics) SubscriberRemoved(ctx context.Context, hub string) {
	m.subscribers.Add(ctx, -1, metric.WithAttributes(
		attribute.String(AttrStreamName, hub),
	))
}
