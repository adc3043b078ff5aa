//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("catalog read failed")

func testConfig() Config {
	return Config{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "catalog-test",
	}
}

func failN(cb *CircuitBreaker, n int) {
	for i := 0; i < n; i++ {
		_ = cb.Execute(context.Background(), func() error { return errStorage })
	}
}

func TestCircuitBreaker_StartsClosed(t *testing.T) {
	cb := New(testConfig())

	assert.Equal(t, StateClosed, cb.State())
	assert.False(t, cb.IsOpen())

	err := cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := New(testConfig())

	failN(cb, 2)
	assert.Equal(t, StateClosed, cb.State(), "below threshold stays closed")

	failN(cb, 1)
	assert.Equal(t, StateOpen, cb.State())
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := New(testConfig())

	failN(cb, 2)
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))

	// The reset means two more failures still do not reach the threshold.
	failN(cb, 2)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpenRejectsWithoutCalling(t *testing.T) {
	cb := New(testConfig())
	failN(cb, 3)
	require.True(t, cb.IsOpen())

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called, "protected call must not run while open")
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cb := New(testConfig())
	failN(cb, 3)
	require.True(t, cb.IsOpen())

	time.Sleep(60 * time.Millisecond)

	// First probe succeeds but one success is below the success threshold.
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig())
	failN(cb, 3)
	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return errStorage })

	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(testConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Zero(t, stats.FailureCount)

	failN(cb, 3)
	stats = cb.GetStats()
	assert.Equal(t, "open", stats.State)
	assert.False(t, stats.IsHealthy)
	assert.Equal(t, 3, stats.FailureCount)
	assert.WithinDuration(t, time.Now(), stats.LastFailure, time.Second)
}

func TestCircuitBreaker_ErrorPassthrough(t *testing.T) {
	cb := New(testConfig())

	err := cb.Execute(context.Background(), func() error { return errStorage })

	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrCircuitOpen)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
