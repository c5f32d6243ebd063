package config

import (
	"github.com/gaborage/go-retry/backoff"
	"github.com/gaborage/go-retry/logger"
	"github.com/gaborage/go-retry/retry"
)

// NewBuilder translates a loaded Config into a retry.Builder, leaving the
// code-only axes (stop predicate, hooks, sleeper, observer) for the caller
// to finish before Build.
func NewBuilder[T any](cfg *Config) *retry.Builder[T] {
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	b := retry.NewBuilder[T](log).
		WithStrategy(cfg.NewStrategy()).
		WithMaxDelay(cfg.MaxDelay)

	switch cfg.Jitter {
	case JitterFull:
		b = b.WithFullJitter()
	case JitterEqual:
		b = b.WithEqualJitter()
	case JitterDecorrelated:
		base := cfg.DecorrelatedBase
		if base == 0 {
			base = cfg.BaseDelay
		}
		b = b.WithDecorrelatedJitter(base)
	}

	if cfg.StopAfter != nil {
		b = b.WithStopAfter(*cfg.StopAfter)
	}

	return b
}

// NewStrategy builds the configured backoff strategy. Validation has
// already constrained Strategy to a known name; anything else falls back
// to fixed.
func (c *Config) NewStrategy() backoff.Strategy {
	switch c.Strategy {
	case StrategyLinear:
		return backoff.NewLinear(c.BaseDelay)
	case StrategyExponential:
		return backoff.NewExponential(c.BaseDelay)
	default:
		return backoff.NewFixed(c.BaseDelay)
	}
}
