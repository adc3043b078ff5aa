//go:build integration

package circuitbreaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmakori/safari-quote-service/internal/circuitbreaker"
	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/repository"
	"github.com/jmakori/safari-quote-service/internal/testutil"
)

func fastBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             name,
	})
}

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	openDB := func(t *testing.T) *repository.MongoDB {
		db, err := repository.NewMongoDB(mongoContainer.URI, testutil.SanitizeDBName(t.Name()))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close(context.Background()) })
		return db
	}

	t.Run("catalog reads and writes pass through a closed breaker", func(t *testing.T) {
		db := openDB(t)
		cb := fastBreaker("test-catalog")
		wrapped := repository.NewCatalogRepositoryWithCircuitBreaker(repository.NewCatalogRepository(db), cb)

		require.NoError(t, wrapped.SavePlace(ctx, model.Place{ID: "serengeti", Name: "Serengeti"}))

		places, err := wrapped.GetPlaces(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, places)

		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
		assert.True(t, cb.GetStats().IsHealthy)
	})

	t.Run("log writes pass through a closed breaker", func(t *testing.T) {
		db := openDB(t)
		cb := fastBreaker("test-logs")
		wrapped := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb)

		err := wrapped.Create(ctx, &repository.LogEntryDocument{Level: "info", Message: "quote computed"})
		require.NoError(t, err)

		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})

	t.Run("repeated failures open the breaker", func(t *testing.T) {
		cb := fastBreaker("test-failures")

		for i := 0; i < 2; i++ {
			assert.Error(t, cb.Execute(ctx, func() error {
				return errors.New("no reachable servers")
			}))
		}

		require.True(t, cb.IsOpen())

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		assert.False(t, called)
	})

	t.Run("breaker closes again after a successful probe", func(t *testing.T) {
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          50 * time.Millisecond,
			Name:             "test-recovery",
		})

		_ = cb.Execute(ctx, func() error { return errors.New("no reachable servers") })
		require.Equal(t, circuitbreaker.StateOpen, cb.State())

		time.Sleep(60 * time.Millisecond)

		require.NoError(t, cb.Execute(ctx, func() error { return nil }))
		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})
}
