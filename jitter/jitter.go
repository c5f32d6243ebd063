// Package jitter provides randomized transforms applied to nominal backoff
// delays. Jitter spreads out the retry times of independent callers so that
// a shared outage does not turn into a synchronized retry storm.
//
// Variants
//   - None: passes the delay through, only enforcing the cap.
//   - Full: random in [0, delay]. Maximal decorrelation (AWS "full jitter").
//   - Equal: random in [delay/2, delay]. Half the backoff is kept fixed,
//     half is randomized, so the wait never drops below delay/2.
//   - Decorrelated: random in [base, previous*3], where previous is the
//     value produced by the preceding call. Stateful; one instance per
//     retry loop.
package jitter

import (
	"math"
	"time"
)

// Jitter transforms a nominal backoff delay into the delay actually slept.
// max caps the result when positive; max == 0 means no cap. The returned
// duration is always in [0, max] when a cap is set.
type Jitter interface {
	Apply(delay, max time.Duration) time.Duration
}

// Derivable is implemented by stateful jitters that must not share history
// across retry loops. Retry loops fork a fresh instance per execution.
type Derivable interface {
	// Derive returns a new Jitter with pristine state.
	Derive() Jitter
}

// None applies no randomization; it only enforces the cap.
type None struct{}

// NewNone creates a pass-through jitter.
func NewNone() None {
	return None{}
}

// Apply returns min(delay, max), or delay when no cap is set.
func (None) Apply(delay, max time.Duration) time.Duration {
	return capped(delay, max)
}

// Full draws a uniformly random delay in [0, capped delay].
type Full struct {
	src Random
}

// NewFull creates a full jitter. A nil source falls back to the package
// default generator.
func NewFull(src Random) Full {
	if src == nil {
		src = defaultRandom
	}
	return Full{src: src}
}

// Apply returns a random duration in [0, min(delay, max)].
func (f Full) Apply(delay, max time.Duration) time.Duration {
	return f.src.DurationN(0, capped(delay, max))
}

// Equal draws a uniformly random delay in [capped/2, capped], keeping half
// the computed backoff and randomizing the other half.
type Equal struct {
	src Random
}

// NewEqual creates an equal jitter. A nil source falls back to the package
// default generator.
func NewEqual(src Random) Equal {
	if src == nil {
		src = defaultRandom
	}
	return Equal{src: src}
}

// Apply returns a random duration in [c/2, c] where c = min(delay, max).
// The half-interval lower bound is inherently within the cap.
func (e Equal) Apply(delay, max time.Duration) time.Duration {
	c := capped(delay, max)
	return e.src.DurationN(c/2, c)
}

// Decorrelated draws the next delay from [base, previous*3], where previous
// is the uncapped value produced by the preceding call, seeded with base.
// The draw depends on history, so an instance belongs to exactly one retry
// loop; use Derive to obtain a fresh instance for a new loop.
type Decorrelated struct {
	src      Random
	base     time.Duration
	previous time.Duration
}

// NewDecorrelated creates a decorrelated jitter seeded with base. A nil
// source falls back to the package default generator.
func NewDecorrelated(base time.Duration, src Random) *Decorrelated {
	if src == nil {
		src = defaultRandom
	}
	return &Decorrelated{src: src, base: base, previous: base}
}

// Apply ignores the nominal delay, draws from [base, previous*3], records
// the draw as the new previous, and returns it capped to max.
func (d *Decorrelated) Apply(_, max time.Duration) time.Duration {
	next := d.src.DurationN(d.base, triple(d.previous))
	d.previous = next
	return capped(next, max)
}

// Derive returns a new Decorrelated with previous reset to base.
func (d *Decorrelated) Derive() Jitter {
	return &Decorrelated{src: d.src, base: d.base, previous: d.base}
}

// capped bounds delay to max when a cap is set. max == 0 means no cap.
func capped(delay, max time.Duration) time.Duration {
	if delay < 0 {
		return 0
	}
	if max > 0 && delay > max {
		return max
	}
	return delay
}

// triple returns d*3 saturating at the maximum duration.
func triple(d time.Duration) time.Duration {
	if d > math.MaxInt64/3 {
		return math.MaxInt64
	}
	return d * 3
}
