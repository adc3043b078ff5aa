package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func savedTripResponse() *cachedResponse {
	return &cachedResponse{
		StatusCode: http.StatusCreated,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"id":"trip-1","name":"Serengeti week"}`),
		Timestamp:  time.Now(),
	}
}

func TestIdempotencyCache_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*idempotencyCache)
		key       int
		wantFound bool
	}{
		{
			name: "hit within ttl",
			setup: func(cache *idempotencyCache) {
				cache.Set(123, savedTripResponse())
			},
			key:       123,
			wantFound: true,
		},
		{
			name:      "miss on unknown key",
			setup:     func(cache *idempotencyCache) {},
			key:       999,
			wantFound: false,
		},
		{
			name: "miss once the entry has aged past the ttl",
			setup: func(cache *idempotencyCache) {
				cache.mu.Lock()
				cache.items[456] = &cachedResponse{
					StatusCode: http.StatusCreated,
					Headers:    map[string]string{},
					Body:       []byte(`{}`),
					Timestamp:  time.Now().Add(-2 * time.Minute),
				}
				cache.mu.Unlock()
			},
			key:       456,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newIdempotencyCache(50 * time.Millisecond)
			tt.setup(cache)

			resp, found := cache.Get(tt.key)

			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, http.StatusCreated, resp.StatusCode)
				assert.Contains(t, string(resp.Body), "trip-1")
			}
		})
	}
}

func TestIdempotencyCache_SetRoundTrip(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)
	resp := savedTripResponse()

	cache.Set(100, resp)

	retrieved, found := cache.Get(100)
	assert.True(t, found)
	assert.Equal(t, resp.StatusCode, retrieved.StatusCode)
	assert.Equal(t, resp.Headers, retrieved.Headers)
	assert.Equal(t, resp.Body, retrieved.Body)
}

func TestIdempotencyCache_SetRefreshesTimestamp(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)
	resp := savedTripResponse()
	resp.Timestamp = time.Now().Add(-time.Hour)

	cache.Set(7, resp)

	// Set stamps entries on insert, so even a stale-looking response is
	// fresh from the cache's point of view.
	_, found := cache.Get(7)
	assert.True(t, found)
}
