package retry

import (
	"time"

	"github.com/gaborage/go-retry/backoff"
	"github.com/gaborage/go-retry/jitter"
	"github.com/gaborage/go-retry/logger"
)

// jitterKind tracks the convenience jitter selection until Build resolves
// it against the configured random source.
type jitterKind int

const (
	jitterNone jitterKind = iota
	jitterFull
	jitterEqual
	jitterDecorrelated
	jitterCustom
)

// Builder assembles an immutable Retryer through a fluent interface.
// The zero policy retries forever with no delay between attempts until
// the operation succeeds.
type Builder[T any] struct {
	log        logger.Logger
	strategy   backoff.Strategy
	maxDelay   time.Duration
	jitKind    jitterKind
	jit        jitter.Jitter
	decorrBase time.Duration
	rand       jitter.Random
	stopAfter  *uint
	until      Predicate[T]
	hook       Hook[T]
	sleeper    Sleeper
	observer   Observer
}

// NewBuilder creates a builder with the default policy: fixed zero delay,
// no jitter, no cap, no ceiling, stop on success. A nil logger disables
// engine logging.
func NewBuilder[T any](log logger.Logger) *Builder[T] {
	if log == nil {
		log = logger.NewNop()
	}
	return &Builder[T]{
		log:      log,
		strategy: backoff.NewFixed(0),
		jitKind:  jitterNone,
		until:    Succeeded[T],
		sleeper:  TimerSleeper{},
		observer: NopObserver{},
	}
}

// WithStrategy sets a custom backoff strategy.
func (b *Builder[T]) WithStrategy(s backoff.Strategy) *Builder[T] {
	b.strategy = s
	return b
}

// WithFixed waits a fixed base duration between attempts.
func (b *Builder[T]) WithFixed(base time.Duration) *Builder[T] {
	b.strategy = backoff.NewFixed(base)
	return b
}

// WithLinear waits base * attempt between attempts.
func (b *Builder[T]) WithLinear(base time.Duration) *Builder[T] {
	b.strategy = backoff.NewLinear(base)
	return b
}

// WithExponential waits base * 2^attempt between attempts.
func (b *Builder[T]) WithExponential(base time.Duration) *Builder[T] {
	b.strategy = backoff.NewExponential(base)
	return b
}

// WithMaxDelay caps every computed delay, regardless of strategy and
// jitter. Zero means no cap.
func (b *Builder[T]) WithMaxDelay(d time.Duration) *Builder[T] {
	b.maxDelay = d
	return b
}

// WithJitter sets a custom jitter transform.
func (b *Builder[T]) WithJitter(j jitter.Jitter) *Builder[T] {
	b.jitKind = jitterCustom
	b.jit = j
	return b
}

// WithFullJitter randomizes each delay over [0, delay].
func (b *Builder[T]) WithFullJitter() *Builder[T] {
	b.jitKind = jitterFull
	return b
}

// WithEqualJitter randomizes each delay over [delay/2, delay].
func (b *Builder[T]) WithEqualJitter() *Builder[T] {
	b.jitKind = jitterEqual
	return b
}

// WithDecorrelatedJitter draws each delay from [base, previous*3].
// The history is private to each Do execution.
func (b *Builder[T]) WithDecorrelatedJitter(base time.Duration) *Builder[T] {
	b.jitKind = jitterDecorrelated
	b.decorrBase = base
	return b
}

// WithRandom sets the random source used by the jitter convenience
// selectors. Mainly useful for deterministic tests.
func (b *Builder[T]) WithRandom(src jitter.Random) *Builder[T] {
	b.rand = src
	return b
}

// WithStopAfter sets the attempt ceiling. The loop stops once the attempt
// index reaches n, so n permits n+1 total invocations.
func (b *Builder[T]) WithStopAfter(n uint) *Builder[T] {
	b.stopAfter = &n
	return b
}

// WithUntil replaces the stop predicate. The loop stops as soon as the
// predicate returns true for an attempt's result.
func (b *Builder[T]) WithUntil(pred Predicate[T]) *Builder[T] {
	b.until = pred
	return b
}

// WithHook sets the before/after attempt callbacks.
func (b *Builder[T]) WithHook(h Hook[T]) *Builder[T] {
	b.hook = h
	return b
}

// WithSleeper replaces the suspension facility.
func (b *Builder[T]) WithSleeper(s Sleeper) *Builder[T] {
	b.sleeper = s
	return b
}

// WithObserver attaches a lifecycle observer (e.g. OpenTelemetry
// instrumentation from the observability package).
func (b *Builder[T]) WithObserver(o Observer) *Builder[T] {
	b.observer = o
	return b
}

// Build creates the Retryer with the configured policy. The returned
// Retryer is immutable and safe for concurrent use.
func (b *Builder[T]) Build() *Retryer[T] {
	var jit jitter.Jitter
	switch b.jitKind {
	case jitterFull:
		jit = jitter.NewFull(b.rand)
	case jitterEqual:
		jit = jitter.NewEqual(b.rand)
	case jitterDecorrelated:
		base := b.decorrBase
		if base == 0 {
			base = b.strategy.Base()
		}
		jit = jitter.NewDecorrelated(base, b.rand)
	case jitterCustom:
		jit = b.jit
	default:
		jit = jitter.NewNone()
	}

	until := b.until
	if until == nil {
		until = Succeeded[T]
	}
	sleeper := b.sleeper
	if sleeper == nil {
		sleeper = TimerSleeper{}
	}
	observer := b.observer
	if observer == nil {
		observer = NopObserver{}
	}

	return &Retryer[T]{
		strategy:  b.strategy,
		jit:       jit,
		maxDelay:  b.maxDelay,
		stopAfter: b.stopAfter,
		until:     until,
		hook:      b.hook,
		sleeper:   sleeper,
		observer:  observer,
		log:       b.log,
	}
}
