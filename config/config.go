package config

import (
	"time"

	"github.com/kbukum/spikit/logger"
)

// DefaultTimeout is the operation timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// Config is the contract an application configuration satisfies. Embedding
// Base in a config struct provides it automatically.
type Config interface {
	Name() string
	Timeout() time.Duration
	IsVerbose() bool
	IsDebug() bool
	Validate() error
}

// Base contains the configuration fields every embedding application needs.
// Extend it by embedding:
//
//	type AppConfig struct {
//	    config.Base `yaml:",inline" mapstructure:",squash"`
//	    ...
//	}
type Base struct {
	AppName     string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	TimeoutMs   int           `yaml:"timeout_ms" mapstructure:"timeout_ms" validate:"gte=0"`
	Verbose     bool          `yaml:"verbose" mapstructure:"verbose"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// NewBase returns a Base with defaults applied.
func NewBase() Base {
	b := Base{}
	b.ApplyDefaults()
	return b
}

// WithName sets the application name.
func (b Base) WithName(name string) Base {
	b.AppName = name
	return b
}

// WithTimeout sets the operation timeout.
func (b Base) WithTimeout(d time.Duration) Base {
	b.TimeoutMs = int(d.Milliseconds())
	return b
}

// WithVerbose toggles verbose output.
func (b Base) WithVerbose(verbose bool) Base {
	b.Verbose = verbose
	return b
}

// WithDebug toggles debug mode.
func (b Base) WithDebug(debug bool) Base {
	b.Debug = debug
	return b
}

// Name returns the configured application name, or "default" when unset.
func (b *Base) Name() string {
	if b.AppName == "" {
		return "default"
	}
	return b.AppName
}

// Timeout returns the configured operation timeout, or DefaultTimeout when
// unset.
func (b *Base) Timeout() time.Duration {
	if b.TimeoutMs <= 0 {
		return DefaultTimeout
	}
	return time.Duration(b.TimeoutMs) * time.Millisecond
}

// IsVerbose reports whether verbose output is enabled. Debug implies verbose.
func (b *Base) IsVerbose() bool {
	return b.Verbose || b.Debug
}

// IsDebug reports whether debug mode is enabled.
func (b *Base) IsDebug() bool {
	return b.Debug
}

// ApplyDefaults fills unset fields with defaults. Override in embedding
// structs and call b.Base.ApplyDefaults() first.
func (b *Base) ApplyDefaults() {
	if b.Environment == "" {
		b.Environment = "development"
	}
	if b.Environment == "development" {
		b.Debug = true
	}
	if b.TimeoutMs <= 0 {
		b.TimeoutMs = int(DefaultTimeout.Milliseconds())
	}
	if b.Debug && b.Logging.Level == "" {
		b.Logging.Level = "debug"
	}
	b.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields. Override in embedding
// structs and call b.Base.Validate() first.
func (b *Base) Validate() error {
	if err := ValidateStruct(b); err != nil {
		return err
	}
	return b.Logging.Validate()
}
