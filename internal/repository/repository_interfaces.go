// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

// CatalogRepositoryInterface defines the interface for catalog operations.
type CatalogRepositoryInterface interface {
	GetPlaces(ctx context.Context) ([]model.Place, error)
	SavePlace(ctx context.Context, place model.Place) error
	DeletePlace(ctx context.Context, id string) error
	GetAccommodations(ctx context.Context) ([]model.Accommodation, error)
	SaveAccommodation(ctx context.Context, acc model.Accommodation) error
	DeleteAccommodation(ctx context.Context, id string) error
	GetConstants(ctx context.Context) (model.Constants, error)
	SaveConstants(ctx context.Context, constants model.Constants) error
}

// ItinerariesRepositoryInterface defines the interface for itinerary persistence.
type ItinerariesRepositoryInterface interface {
	Save(ctx context.Context, itinerary *model.SavedItinerary) error
	Get(ctx context.Context, id string) (*model.SavedItinerary, error)
	List(ctx context.Context, limit int) ([]model.SavedItinerary, error)
	Delete(ctx context.Context, id string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
