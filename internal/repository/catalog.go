// Package repository provides data access for the safari catalog.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

// constantsDocID is the fixed id of the singleton constants document.
const constantsDocID = "pricing"

// constantsDocument is the storage shape of the pricing constants.
type constantsDocument struct {
	ID                 string  `bson:"_id"`
	ConcessionFee      float64 `bson:"concession_fee"`
	ChildConcessionFee float64 `bson:"child_concession_fee"`
	VehicleCapacity    int     `bson:"vehicle_capacity"`
}

// CatalogRepository provides catalog operations backed by MongoDB. Places
// embed their activities and accommodations embed their room types, matching
// the ownership invariants of the domain model.
type CatalogRepository struct {
	places         *mongo.Collection
	accommodations *mongo.Collection
	constants      *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		places:         db.Places,
		accommodations: db.Accommodations,
		constants:      db.Constants,
	}
}

// GetPlaces returns all places with their activities.
func (r *CatalogRepository) GetPlaces(ctx context.Context) ([]model.Place, error) {
	cursor, err := r.places.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	places := []model.Place{}
	if err := cursor.All(ctx, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// SavePlace upserts a place document keyed by its id.
func (r *CatalogRepository) SavePlace(ctx context.Context, place model.Place) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.places.ReplaceOne(ctx, bson.M{"_id": place.ID}, place, opts)
	return err
}

// DeletePlace removes a place (and, by embedding, its activities).
func (r *CatalogRepository) DeletePlace(ctx context.Context, id string) error {
	_, err := r.places.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// GetAccommodations returns all accommodations with their room types.
func (r *CatalogRepository) GetAccommodations(ctx context.Context) ([]model.Accommodation, error) {
	cursor, err := r.accommodations.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accommodations := []model.Accommodation{}
	if err := cursor.All(ctx, &accommodations); err != nil {
		return nil, err
	}
	return accommodations, nil
}

// SaveAccommodation upserts an accommodation document keyed by its id.
func (r *CatalogRepository) SaveAccommodation(ctx context.Context, acc model.Accommodation) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.accommodations.ReplaceOne(ctx, bson.M{"_id": acc.ID}, acc, opts)
	return err
}

// DeleteAccommodation removes an accommodation (and its room types).
func (r *CatalogRepository) DeleteAccommodation(ctx context.Context, id string) error {
	_, err := r.accommodations.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// GetConstants returns the pricing constants, falling back to defaults when
// the document is missing.
func (r *CatalogRepository) GetConstants(ctx context.Context) (model.Constants, error) {
	var doc constantsDocument
	err := r.constants.FindOne(ctx, bson.M{"_id": constantsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return model.DefaultConstants(), nil
	}
	if err != nil {
		return model.DefaultConstants(), err
	}
	return model.Constants{
		ConcessionFee:      doc.ConcessionFee,
		ChildConcessionFee: doc.ChildConcessionFee,
		VehicleCapacity:    doc.VehicleCapacity,
	}, nil
}

// SaveConstants upserts the singleton constants document.
func (r *CatalogRepository) SaveConstants(ctx context.Context, constants model.Constants) error {
	doc := constantsDocument{
		ID:                 constantsDocID,
		ConcessionFee:      constants.ConcessionFee,
		ChildConcessionFee: constants.ChildConcessionFee,
		VehicleCapacity:    constants.VehicleCapacity,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.constants.ReplaceOne(ctx, bson.M{"_id": constantsDocID}, doc, opts)
	return err
}
