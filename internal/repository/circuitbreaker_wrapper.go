// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/jmakori/safari-quote-service/internal/circuitbreaker"
	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps CatalogRepository with circuit
// breaker protection. When the circuit is open, reads fail fast so the
// catalog service can fall back to its seed snapshot.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           *CatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new catalog repository wrapper.
func NewCatalogRepositoryWithCircuitBreaker(repo *CatalogRepository, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetPlaces returns all places with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetPlaces(ctx context.Context) ([]model.Place, error) {
	var result []model.Place
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetPlaces(ctx)
		return cbErr
	})
	return result, err
}

// SavePlace upserts a place with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) SavePlace(ctx context.Context, place model.Place) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SavePlace(ctx, place)
	})
}

// DeletePlace removes a place with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) DeletePlace(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.DeletePlace(ctx, id)
	})
}

// GetAccommodations returns all accommodations with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetAccommodations(ctx context.Context) ([]model.Accommodation, error) {
	var result []model.Accommodation
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetAccommodations(ctx)
		return cbErr
	})
	return result, err
}

// SaveAccommodation upserts an accommodation with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) SaveAccommodation(ctx context.Context, acc model.Accommodation) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SaveAccommodation(ctx, acc)
	})
}

// DeleteAccommodation removes an accommodation with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) DeleteAccommodation(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.DeleteAccommodation(ctx, id)
	})
}

// GetConstants returns the pricing constants with circuit breaker protection.
// When the circuit is open, the defaults are returned so pricing never stalls.
func (r *CatalogRepositoryWithCircuitBreaker) GetConstants(ctx context.Context) (model.Constants, error) {
	var result model.Constants
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetConstants(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return model.DefaultConstants(), nil
	}
	return result, err
}

// SaveConstants upserts the constants with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) SaveConstants(ctx context.Context, constants model.Constants) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SaveConstants(ctx, constants)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker
// protection. Logging is non-critical, so writes silently no-op while the
// circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new logs repository wrapper.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the matching log entry count with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
