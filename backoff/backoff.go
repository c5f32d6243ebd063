// Package backoff provides delay strategies for retry loops.
// A strategy maps a zero-based attempt index to the nominal delay to wait
// before the next attempt; randomization is layered on top by the jitter
// package and is not a concern here.
package backoff

import (
	"math"
	"math/bits"
	"time"
)

// Strategy computes the nominal delay before the next retry attempt.
// Implementations must be pure: the same attempt index always yields the
// same delay, and calls must be safe from multiple goroutines.
type Strategy interface {
	// Delay returns the nominal delay for the given zero-based attempt index.
	Delay(attempt uint) time.Duration
	// Base returns the base duration the strategy was built from.
	Base() time.Duration
}

// Fixed waits the same base duration between every attempt.
type Fixed struct {
	base time.Duration
}

// NewFixed creates a strategy that always returns base.
func NewFixed(base time.Duration) Fixed {
	return Fixed{base: base}
}

// Delay returns the base duration regardless of the attempt index.
func (f Fixed) Delay(_ uint) time.Duration {
	return f.base
}

// Base returns the configured base duration.
func (f Fixed) Base() time.Duration {
	return f.base
}

// Linear grows the delay by the base duration on every attempt:
// base * attempt. Note that attempt 0 yields a zero delay; callers who
// want a nonzero first wait should use Fixed or start from attempt 1.
type Linear struct {
	base time.Duration
}

// NewLinear creates a strategy returning base * attempt.
func NewLinear(base time.Duration) Linear {
	return Linear{base: base}
}

// Delay returns base * attempt, saturating at the maximum duration.
func (l Linear) Delay(attempt uint) time.Duration {
	return scale(l.base, uint64(attempt))
}

// Base returns the configured base duration.
func (l Linear) Base() time.Duration {
	return l.base
}

// Exponential doubles the delay on every attempt: base * 2^attempt.
type Exponential struct {
	base time.Duration
}

// NewExponential creates a strategy returning base * 2^attempt.
func NewExponential(base time.Duration) Exponential {
	return Exponential{base: base}
}

// Delay returns base * 2^attempt. Large attempt counts saturate at the
// maximum representable duration instead of wrapping.
func (e Exponential) Delay(attempt uint) time.Duration {
	if e.base <= 0 {
		return 0
	}
	// 2^63 ns already exceeds the duration range, no need to compute further.
	if attempt >= 63 {
		return math.MaxInt64
	}
	return scale(e.base, uint64(1)<<attempt)
}

// Base returns the configured base duration.
func (e Exponential) Base() time.Duration {
	return e.base
}

// scale multiplies a non-negative duration by an integer factor,
// saturating at math.MaxInt64 nanoseconds on overflow.
func scale(d time.Duration, factor uint64) time.Duration {
	if d <= 0 || factor == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(d), factor)
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(lo)
}
