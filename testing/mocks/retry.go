// Package mocks provides testify-based mocks and recording fakes for the
// retry engine's injectable dependencies: Sleeper, Random, and Observer.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockSleeper provides a testify-based mock implementation of the
// retry.Sleeper interface. It records every requested delay so tests can
// assert the exact backoff sequence without real sleeps.
//
// Example usage:
//
//	sleeper := &mocks.MockSleeper{}
//	sleeper.On("Sleep", mock.Anything, mock.Anything).Return(nil)
//	r := retry.NewBuilder[string](log).WithSleeper(sleeper).Build()
type MockSleeper struct {
	mock.Mock

	mu     sync.Mutex
	delays []time.Duration
}

// Sleep implements retry.Sleeper.
func (m *MockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	m.mu.Lock()
	m.delays = append(m.delays, d)
	m.mu.Unlock()

	arguments := m.Called(ctx, d)
	return arguments.Error(0)
}

// Delays returns a copy of every delay requested so far, in order.
func (m *MockSleeper) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.delays...)
}

// MockRandom provides a testify-based mock implementation of the
// jitter.Random interface for deterministic jitter tests.
type MockRandom struct {
	mock.Mock
}

// DurationN implements jitter.Random.
func (m *MockRandom) DurationN(min, max time.Duration) time.Duration {
	arguments := m.Called(min, max)
	return arguments.Get(0).(time.Duration)
}

// MockObserver provides a testify-based mock implementation of the
// retry.Observer interface.
type MockObserver struct {
	mock.Mock
}

// ExecutionStart implements retry.Observer.
func (m *MockObserver) ExecutionStart(ctx context.Context, id string) context.Context {
	arguments := m.Called(ctx, id)
	if ret, ok := arguments.Get(0).(context.Context); ok {
		return ret
	}
	return ctx
}

// Attempt implements retry.Observer.
func (m *MockObserver) Attempt(ctx context.Context, attempt uint, delay time.Duration, err error) {
	m.Called(ctx, attempt, delay, err)
}

// ExecutionEnd implements retry.Observer.
func (m *MockObserver) ExecutionEnd(ctx context.Context, attempts uint, err error) {
	m.Called(ctx, attempts, err)
}
