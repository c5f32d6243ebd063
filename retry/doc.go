// Package retry provides a composable retry engine: an operation is
// re-invoked according to a configured policy until a stop condition is
// met, with a computed delay between attempts.
//
// Policy
//   - Backoff strategy (package backoff): maps the attempt index to a
//     nominal delay. Fixed, Linear, Exponential.
//   - Jitter (package jitter): perturbs the nominal delay. None, Full,
//     Equal, Decorrelated.
//   - Stop condition: a caller-supplied predicate over the attempt's
//     (value, error) pair, OR'd with an optional attempt ceiling.
//     A ceiling of N stops once the attempt index reaches N, so it
//     permits N+1 total invocations (attempts 0 through N).
//   - Hooks: optional before/after attempt callbacks. Observational
//     only; they never affect control flow.
//
// The engine has no failure mode of its own: the final attempt's result
// is returned verbatim, and exhausting the ceiling does not synthesize a
// "retries exhausted" error. A policy with no ceiling and a predicate
// that never fires retries forever; that is documented behavior, and
// context cancellation remains the way out.
//
// Example:
//
//	r := retry.NewBuilder[string](log).
//		WithExponential(100 * time.Millisecond).
//		WithMaxDelay(3 * time.Second).
//		WithFullJitter().
//		WithStopAfter(5).
//		Build()
//	value, err := r.Do(ctx, fetch)
package retry
