// Package observability provides OpenTelemetry tracing and metrics
// integration for applications embedding spikit.
//
// The registry and stream cores are observability-free by contract; this
// package powers the opt-in instrumentation layers (see stream.WithTracing
// and stream.WithMetrics).
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-app"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "events.publish")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-app"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-app"))
//	metrics.RecordSend(ctx, "orders", "ok", duration)
package observability
