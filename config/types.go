// Package config loads and validates retry policy configuration from
// defaults, YAML files, raw bytes, and environment variables, and bridges
// the result into a retry.Builder.
package config

import "time"

// Backoff strategy names accepted in configuration.
const (
	StrategyFixed       = "fixed"
	StrategyLinear      = "linear"
	StrategyExponential = "exponential"
)

// Jitter names accepted in configuration.
const (
	JitterNone         = "none"
	JitterFull         = "full"
	JitterEqual        = "equal"
	JitterDecorrelated = "decorrelated"
)

// Config describes a retry policy in data form. It covers the policy axes
// only; stop predicates, hooks, and observers are code and are attached
// via the builder after loading.
type Config struct {
	// Strategy selects the backoff strategy: fixed, linear, or exponential.
	Strategy string `koanf:"strategy" json:"strategy" yaml:"strategy" toml:"strategy" mapstructure:"strategy" validate:"oneof=fixed linear exponential"`

	// BaseDelay is the strategy's base duration.
	BaseDelay time.Duration `koanf:"basedelay" json:"basedelay" yaml:"basedelay" toml:"basedelay" mapstructure:"basedelay" validate:"min=0"`

	// MaxDelay caps every computed delay. Zero means no cap.
	MaxDelay time.Duration `koanf:"maxdelay" json:"maxdelay" yaml:"maxdelay" toml:"maxdelay" mapstructure:"maxdelay" validate:"min=0"`

	// Jitter selects the jitter transform: none, full, equal, or
	// decorrelated.
	Jitter string `koanf:"jitter" json:"jitter" yaml:"jitter" toml:"jitter" mapstructure:"jitter" validate:"oneof=none full equal decorrelated"`

	// DecorrelatedBase seeds decorrelated jitter. When zero, the
	// strategy's base delay is used.
	DecorrelatedBase time.Duration `koanf:"decorrelatedbase" json:"decorrelatedbase" yaml:"decorrelatedbase" toml:"decorrelatedbase" mapstructure:"decorrelatedbase" validate:"min=0"`

	// StopAfter is the attempt ceiling. Nil retries without limit; a
	// ceiling of N permits N+1 total invocations.
	StopAfter *uint `koanf:"stopafter" json:"stopafter" yaml:"stopafter" toml:"stopafter" mapstructure:"stopafter"`

	// Log configures the engine's logger.
	Log LogConfig `koanf:"log" json:"log" yaml:"log" toml:"log" mapstructure:"log"`
}

// LogConfig holds logging preferences for the retry engine.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level" toml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty" toml:"pretty" mapstructure:"pretty"`
}
