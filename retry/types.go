package retry

import (
	"context"
	"time"
)

// Operation is the fallible computation being retried. It must be safely
// invocable repeatedly; idempotency of its side effects is the caller's
// responsibility.
type Operation[T any] func(ctx context.Context) (T, error)

// Predicate decides whether the retry loop should stop, given the result
// of the attempt that just completed. Returning true stops the loop and
// surfaces that result to the caller.
type Predicate[T any] func(value T, err error) bool

// Succeeded is the default stop predicate: stop as soon as the operation
// returns a nil error.
func Succeeded[T any](_ T, err error) bool {
	return err == nil
}

// Hook carries optional observer callbacks around attempts. Nil funcs are
// no-ops. The loop guarantees sequential, non-overlapping invocation;
// hooks must not influence control flow.
type Hook[T any] struct {
	// Before fires after the engine has decided to retry and before the
	// delay sleep begins. It receives the index of the upcoming attempt.
	Before func(attempt uint)

	// After fires once the delay sleep has completed, with the result and
	// index of the attempt that just failed the stop condition. It is not
	// fired for an attempt whose sleep was cancelled mid-flight.
	After func(value T, err error, attempt uint)
}

// Outcome is the terminal result of an asynchronous retry execution.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Observer receives lifecycle notifications from the retry loop. It is
// purely observational; implementations are given the loop context and
// may derive their own (e.g. to carry a trace span) via ExecutionStart.
type Observer interface {
	// ExecutionStart is called once when Do begins. The returned context
	// replaces ctx for the rest of the execution.
	ExecutionStart(ctx context.Context, id string) context.Context

	// Attempt is called for every attempt that did not satisfy the stop
	// condition, with the delay chosen before the next attempt.
	Attempt(ctx context.Context, attempt uint, delay time.Duration, err error)

	// ExecutionEnd is called once when the loop terminates, with the total
	// number of invocations performed and the final error.
	ExecutionEnd(ctx context.Context, attempts uint, err error)
}

// NopObserver is an Observer that does nothing.
type NopObserver struct{}

// ExecutionStart returns ctx unchanged.
func (NopObserver) ExecutionStart(ctx context.Context, _ string) context.Context {
	return ctx
}

// Attempt does nothing.
func (NopObserver) Attempt(context.Context, uint, time.Duration, error) {}

// ExecutionEnd does nothing.
func (NopObserver) ExecutionEnd(context.Context, uint, error) {}
