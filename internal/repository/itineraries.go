// Package repository provides data access for saved itineraries.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

// defaultItineraryListLimit bounds unqualified list queries.
const defaultItineraryListLimit = 50

// ItinerariesRepository provides persistence for saved itineraries.
type ItinerariesRepository struct {
	collection *mongo.Collection
}

// NewItinerariesRepository creates a new itineraries repository.
func NewItinerariesRepository(db *MongoDB) *ItinerariesRepository {
	return &ItinerariesRepository{collection: db.Itineraries}
}

// Save upserts an itinerary document keyed by its opaque id.
func (r *ItinerariesRepository) Save(ctx context.Context, itinerary *model.SavedItinerary) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": itinerary.ID}, itinerary, opts)
	return err
}

// Get loads an itinerary by id. A missing document yields (nil, nil).
func (r *ItinerariesRepository) Get(ctx context.Context, id string) (*model.SavedItinerary, error) {
	var itinerary model.SavedItinerary
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&itinerary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// List returns itineraries sorted by most recently updated.
func (r *ItinerariesRepository) List(ctx context.Context, limit int) ([]model.SavedItinerary, error) {
	if limit <= 0 {
		limit = defaultItineraryListLimit
	}

	opts := options.Find().
		SetSort(bson.M{"updated_at": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	itineraries := []model.SavedItinerary{}
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

// Delete removes an itinerary by id.
func (r *ItinerariesRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
