package stream

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/spikit/logger"
	"github.com/kbukum/spikit/observability"
)

// Emitter is the send-side surface the instrumentation layers wrap.
// *Sender satisfies it.
type Emitter[T any] interface {
	Send(ctx context.Context, item T) error
}

// tracedEmitter wraps an emitter with a span per send.
type tracedEmitter[T any] struct {
	inner Emitter[T]
	name  string
}

// WithTracing wraps an emitter so every Send runs inside a span carrying the
// stream name. name identifies the stream in trace output.
func WithTracing[T any](inner Emitter[T], name string) Emitter[T] {
	return &tracedEmitter[T]{inner: inner, name: name}
}

func (e *tracedEmitter[T]) Send(ctx context.Context, item T) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanStreamSend,
		trace.WithAttributes(attribute.String(observability.AttrStreamName, e.name)),
	)
	defer span.End()

	err := e.inner.Send(ctx, item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// meteredEmitter wraps an emitter with send counters and a blocked-time
// histogram.
type meteredEmitter[T any] struct {
	inner   Emitter[T]
	metrics *observability.Metrics
	name    string
}

// WithMetrics wraps an emitter so every Send is counted and timed under the
// given stream name.
func WithMetrics[T any](inner Emitter[T], metrics *observability.Metrics, name string) Emitter[T] {
	return &meteredEmitter[T]{inner: inner, metrics: metrics, name: name}
}

func (e *meteredEmitter[T]) Send(ctx context.Context, item T) error {
	start := time.Now()
	err := e.inner.Send(ctx, item)
	elapsed := time.Since(start)

	if err != nil {
		e.metrics.RecordError(ctx, e.name, err)
		e.metrics.RecordSend(ctx, e.name, "error", elapsed)
		return err
	}
	e.metrics.RecordSend(ctx, e.name, "ok", elapsed)
	return nil
}

// loggedEmitter wraps an emitter with debug logging per send.
type loggedEmitter[T any] struct {
	inner Emitter[T]
	name  string
	log   *logger.Logger
}

// WithLogging wraps an emitter so every Send outcome is logged at debug
// level (warn on failure).
func WithLogging[T any](inner Emitter[T], name string, log *logger.Logger) Emitter[T] {
	if log == nil {
		log = logger.Get("stream")
	}
	return &loggedEmitter[T]{inner: inner, name: name, log: log}
}

func (e *loggedEmitter[T]) Send(ctx context.Context, item T) error {
	start := time.Now()
	err := e.inner.Send(ctx, item)

	if err != nil {
		e.log.Warn("send failed", map[string]interface{}{
			logger.FieldStream:   e.name,
			logger.FieldError:    err.Error(),
			logger.FieldDuration: time.Since(start).Milliseconds(),
		})
		return err
	}
	e.log.Debug("event sent", map[string]interface{}{
		logger.FieldStream:   e.name,
		logger.FieldDuration: time.Since(start).Milliseconds(),
	})
	return nil
}
