package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, StrategyFixed, cfg.Strategy)
	assert.Equal(t, time.Duration(0), cfg.BaseDelay)
	assert.Equal(t, time.Duration(0), cfg.MaxDelay)
	assert.Equal(t, JitterNone, cfg.Jitter)
	assert.Nil(t, cfg.StopAfter)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoadBytesOverridesDefaults(t *testing.T) {
	doc := []byte(`
strategy: exponential
basedelay: 100ms
maxdelay: 3s
jitter: full
stopafter: 5
log:
  level: debug
`)

	cfg, err := LoadBytes(doc)
	require.NoError(t, err)

	assert.Equal(t, StrategyExponential, cfg.Strategy)
	assert.Equal(t, 100*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, 3*time.Second, cfg.MaxDelay)
	assert.Equal(t, JitterFull, cfg.Jitter)
	require.NotNil(t, cfg.StopAfter)
	assert.Equal(t, uint(5), *cfg.StopAfter)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "retry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy: linear
basedelay: 250ms
jitter: equal
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StrategyLinear, cfg.Strategy)
	assert.Equal(t, 250*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, JitterEqual, cfg.Jitter)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("RETRY_STRATEGY", "exponential")
	t.Setenv("RETRY_BASEDELAY", "50ms")
	t.Setenv("RETRY_LOG_LEVEL", "warn")

	dir := t.TempDir()
	path := filepath.Join(dir, "retry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: linear\nbasedelay: 1s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StrategyExponential, cfg.Strategy)
	assert.Equal(t, 50*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidateRejectsUnknownStrategy(t *testing.T) {
	_, err := LoadBytes([]byte("strategy: fibonacci\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strategy")
}

func TestValidateRejectsUnknownJitter(t *testing.T) {
	_, err := LoadBytes([]byte("jitter: sideways\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jitter")
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	_, err := LoadBytes([]byte("log:\n  level: shouting\n"))
	assert.Error(t, err)
}

func TestValidateRejectsCapBelowBase(t *testing.T) {
	_, err := LoadBytes([]byte("basedelay: 2s\nmaxdelay: 1s\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxdelay")
}

func TestNewStrategyMapping(t *testing.T) {
	tests := []struct {
		strategy string
		attempt  uint
		want     time.Duration
	}{
		{strategy: StrategyFixed, attempt: 3, want: 100 * time.Millisecond},
		{strategy: StrategyLinear, attempt: 3, want: 300 * time.Millisecond},
		{strategy: StrategyExponential, attempt: 3, want: 800 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			cfg := &Config{Strategy: tt.strategy, BaseDelay: 100 * time.Millisecond}
			assert.Equal(t, tt.want, cfg.NewStrategy().Delay(tt.attempt))
		})
	}
}

func TestNewBuilderProducesWorkingRetryer(t *testing.T) {
	cfg, err := LoadBytes([]byte(`
strategy: fixed
basedelay: 0s
stopafter: 2
log:
  level: disabled
`))
	require.NoError(t, err)

	invocations := 0
	flaky := errors.New("flaky")
	r := NewBuilder[string](cfg).Build()

	_, err = r.Do(context.Background(), func(context.Context) (string, error) {
		invocations++
		return "", flaky
	})

	// Ceiling from configuration: 2 permits three invocations.
	assert.Equal(t, 3, invocations)
	assert.ErrorIs(t, err, flaky)
}

func TestNewBuilderDecorrelatedFallsBackToBaseDelay(t *testing.T) {
	cfg, err := LoadBytes([]byte(`
strategy: fixed
basedelay: 1ms
jitter: decorrelated
stopafter: 1
log:
  level: disabled
`))
	require.NoError(t, err)

	r := NewBuilder[int](cfg).Build()
	invocations := 0

	_, _ = r.Do(context.Background(), func(context.Context) (int, error) {
		invocations++
		return 0, errors.New("nope")
	})
	assert.Equal(t, 2, invocations)
}
