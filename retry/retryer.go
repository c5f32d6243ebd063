package retry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gaborage/go-retry/backoff"
	"github.com/gaborage/go-retry/jitter"
	"github.com/gaborage/go-retry/logger"
)

// Retryer executes operations under an immutable retry policy. A single
// Retryer may serve many concurrent Do calls: each execution owns its own
// attempt counter and, for decorrelated jitter, its own delay history.
type Retryer[T any] struct {
	strategy  backoff.Strategy
	jit       jitter.Jitter
	maxDelay  time.Duration
	stopAfter *uint
	until     Predicate[T]
	hook      Hook[T]
	sleeper   Sleeper
	observer  Observer
	log       logger.Logger
}

// Do invokes op until the stop condition fires, sleeping the computed
// delay between attempts. The final attempt's result is returned verbatim.
//
// If the context is cancelled while suspended between attempts, Do returns
// the last attempt's value with the last error joined to the context
// error, so errors.Is(err, context.Canceled) reports the cancellation.
// Panics raised by op propagate unmodified.
func (r *Retryer[T]) Do(ctx context.Context, op Operation[T]) (T, error) {
	id := uuid.NewString()
	log := r.log.WithFields(map[string]any{"retry_id": id})
	ctx = r.observer.ExecutionStart(ctx, id)

	jit := r.jit
	if d, ok := jit.(jitter.Derivable); ok {
		jit = d.Derive()
	}

	var attempt uint
	for {
		value, err := op(ctx)

		if r.shouldStop(value, err, attempt) {
			log.Debug().
				Uint64("attempt", uint64(attempt)).
				Err(err).
				Msg("retry loop stopped")
			r.observer.ExecutionEnd(ctx, attempt+1, err)
			return value, err
		}

		nominal := r.strategy.Delay(attempt)
		delay := jit.Apply(nominal, r.maxDelay)

		log.Debug().
			Uint64("attempt", uint64(attempt)).
			Dur("nominal_delay", nominal).
			Dur("delay", delay).
			Err(err).
			Msg("attempt did not meet stop condition, backing off")
		r.observer.Attempt(ctx, attempt, delay, err)

		if r.hook.Before != nil {
			r.hook.Before(attempt + 1)
		}

		if serr := r.sleeper.Sleep(ctx, delay); serr != nil {
			// Abandoned mid-suspension: the after-attempt hook is not
			// fired for a transition that never completed.
			log.Debug().
				Uint64("attempt", uint64(attempt)).
				Err(serr).
				Msg("retry suspension cancelled")
			joined := errors.Join(err, serr)
			r.observer.ExecutionEnd(ctx, attempt+1, joined)
			return value, joined
		}

		if r.hook.After != nil {
			r.hook.After(value, err, attempt)
		}

		attempt++
	}
}

// Go runs Do on its own goroutine and delivers the terminal outcome once
// on the returned channel. The channel is buffered, so the result is never
// lost even if the caller stops listening.
func (r *Retryer[T]) Go(ctx context.Context, op Operation[T]) <-chan Outcome[T] {
	ch := make(chan Outcome[T], 1)
	go func() {
		value, err := r.Do(ctx, op)
		ch <- Outcome[T]{Value: value, Err: err}
	}()
	return ch
}

// shouldStop evaluates the combined stop condition: the attempt ceiling
// OR the caller's predicate.
func (r *Retryer[T]) shouldStop(value T, err error, attempt uint) bool {
	if r.stopAfter != nil && attempt >= *r.stopAfter {
		return true
	}
	return r.until(value, err)
}
