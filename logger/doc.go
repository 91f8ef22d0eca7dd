// Package logger provides structured logging for spikit built on zerolog.
//
// The registry and stream cores never log; absence and closure are
// reported through return values. Logging belongs to the opt-in layers
// (stream instrumentation, the hub, config loading) and to applications
// embedding the kit.
//
// # Usage
//
//	log := logger.NewDefault("my-app")
//	log.Info("provider registered", logger.Fields("provider", p.Name()))
//
// Component-scoped loggers come from the named registry:
//
//	log := logger.Get("stream.hub")
package logger
