// Package config provides configuration loading and validation for
// applications embedding spikit.
//
// Base carries the settings shared by every embedding application (name,
// timeout, verbosity); applications extend it by embedding Base in their own
// config struct. LoadConfig fills a config struct from a YAML file, a .env
// file, and process environment variables, in increasing precedence.
//
// # Usage
//
//	type AppConfig struct {
//	    config.Base `yaml:",inline" mapstructure:",squash"`
//	    Registry    RegistryConfig `yaml:"registry" mapstructure:"registry"`
//	}
//
//	var cfg AppConfig
//	if err := config.LoadConfig("my-app", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
package config
