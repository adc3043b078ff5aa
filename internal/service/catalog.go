package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when a repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// CatalogService provides the read-only catalog snapshot the pricing engine
// consumes, plus the admin mutations that maintain it.
type CatalogService interface {
	// Snapshot returns the full catalog (places, accommodations, constants).
	Snapshot(ctx context.Context) (*model.Catalog, error)
	// SavePlace upserts a place with its activities.
	SavePlace(ctx context.Context, place model.Place) error
	// DeletePlace removes a place and its activities.
	DeletePlace(ctx context.Context, id string) error
	// SaveAccommodation upserts an accommodation with its room types.
	SaveAccommodation(ctx context.Context, acc model.Accommodation) error
	// DeleteAccommodation removes an accommodation and its room types.
	DeleteAccommodation(ctx context.Context, id string) error
	// Constants returns the pricing constants.
	Constants(ctx context.Context) (model.Constants, error)
	// SaveConstants replaces the pricing constants.
	SaveConstants(ctx context.Context, constants model.Constants) error
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithSnapshotTTL sets how long a catalog snapshot is served before being
// refetched from the repository.
func WithSnapshotTTL(ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.snapshotTTL = ttl
	}
}

// WithSeedCatalog sets the catalog served when no repository is configured
// or the repository is unreachable.
func WithSeedCatalog(catalog model.Catalog) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.seed = catalog
	}
}

// WithCatalogInvalidation registers a hook invoked after every catalog
// mutation, used to drop derived caches (quote results).
func WithCatalogInvalidation(fn func()) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.onChange = fn
	}
}

// CatalogServiceImpl implements CatalogService over the Mongo repository,
// with a short-lived snapshot cache so a planning session does not hit the
// database on every recalculation.
type CatalogServiceImpl struct {
	repo        repository.CatalogRepositoryInterface
	seed        model.Catalog
	snapshotTTL time.Duration
	onChange    func()

	mu        sync.Mutex
	snapshot  *model.Catalog
	expiresAt time.Time
}

// NewCatalogService creates a new catalog service. repo may be nil, in which
// case the seed catalog is served and mutations fail.
func NewCatalogService(repo repository.CatalogRepositoryInterface, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		repo:        repo,
		seed:        model.Catalog{Constants: model.DefaultConstants()},
		snapshotTTL: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the catalog, serving the cached copy while fresh. When
// the repository is missing or fails, the seed catalog is returned so quote
// endpoints keep working.
func (s *CatalogServiceImpl) Snapshot(ctx context.Context) (*model.Catalog, error) {
	s.mu.Lock()
	if s.snapshot != nil && time.Now().Before(s.expiresAt) {
		snap := s.snapshot
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()

	if s.repo == nil {
		seed := s.seed
		return &seed, nil
	}

	places, err := s.repo.GetPlaces(ctx)
	if err != nil {
		seed := s.seed
		return &seed, nil
	}
	accommodations, err := s.repo.GetAccommodations(ctx)
	if err != nil {
		seed := s.seed
		return &seed, nil
	}
	constants, err := s.repo.GetConstants(ctx)
	if err != nil {
		constants = model.DefaultConstants()
	}

	snap := &model.Catalog{
		Places:         places,
		Accommodations: accommodations,
		Constants:      constants,
	}

	s.mu.Lock()
	s.snapshot = snap
	s.expiresAt = time.Now().Add(s.snapshotTTL)
	s.mu.Unlock()

	return snap, nil
}

// SavePlace upserts a place and invalidates derived caches.
func (s *CatalogServiceImpl) SavePlace(ctx context.Context, place model.Place) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.SavePlace(ctx, place); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeletePlace removes a place and invalidates derived caches.
func (s *CatalogServiceImpl) DeletePlace(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.DeletePlace(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// SaveAccommodation upserts an accommodation and invalidates derived caches.
func (s *CatalogServiceImpl) SaveAccommodation(ctx context.Context, acc model.Accommodation) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.SaveAccommodation(ctx, acc); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeleteAccommodation removes an accommodation and invalidates derived caches.
func (s *CatalogServiceImpl) DeleteAccommodation(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.DeleteAccommodation(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Constants returns the pricing constants, falling back to defaults.
func (s *CatalogServiceImpl) Constants(ctx context.Context) (model.Constants, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return model.DefaultConstants(), err
	}
	return snap.Constants, nil
}

// SaveConstants replaces the pricing constants and invalidates derived caches.
func (s *CatalogServiceImpl) SaveConstants(ctx context.Context, constants model.Constants) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.SaveConstants(ctx, constants); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// invalidate drops the snapshot cache and fires the change hook.
func (s *CatalogServiceImpl) invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange()
	}
}
