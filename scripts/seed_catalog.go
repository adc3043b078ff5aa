//go:build ignore

// This script seeds a MongoDB instance with a starter safari catalog.
// Run with: go run scripts/seed_catalog.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/repository"
)

func main() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "safari_quote_service"
	}

	db, err := repository.NewMongoDB(uri, dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to MongoDB: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer func() {
		_ = db.Close(ctx)
	}()

	repo := repository.NewCatalogRepository(db)

	places := []model.Place{
		{
			ID:   "serengeti",
			Name: "Serengeti National Park",
			Activities: []model.Activity{
				{ID: "game-drive", Name: "Game Drive", HighSeasonCost: 80, LowSeasonCost: 60, ChildHighSeasonCost: 40, ChildLowSeasonCost: 30},
				{ID: "balloon-safari", Name: "Balloon Safari", HighSeasonCost: 550, LowSeasonCost: 450, PricingRule: model.RuleTieredGroup},
			},
		},
		{
			ID:   "tarangire",
			Name: "Tarangire National Park",
			Activities: []model.Activity{
				{ID: "walking-safari", Name: "Walking Safari", HighSeasonCost: 60, LowSeasonCost: 50, ChildHighSeasonCost: 30, ChildLowSeasonCost: 25},
				{ID: "night-drive", Name: "Night Game Drive", HighSeasonCost: 120, LowSeasonCost: 100, PricingRule: model.RulePerVehicle},
			},
		},
	}

	accommodations := []model.Accommodation{
		{
			ID:     "serengeti-lodge",
			Name:   "Serengeti Lodge",
			InPark: true,
			RoomTypes: []model.RoomType{
				{ID: "single", Name: "Single", MaxOccupancy: 1, HighSeasonCost: 150, LowSeasonCost: 120},
				{ID: "double", Name: "Double", MaxOccupancy: 2, HighSeasonCost: 260, LowSeasonCost: 200},
				{ID: "family", Name: "Family", MaxOccupancy: 4, HighSeasonCost: 400, LowSeasonCost: 320},
			},
		},
		{
			ID:     "tarangire-camp",
			Name:   "Tarangire Tented Camp",
			InPark: false,
			RoomTypes: []model.RoomType{
				{ID: "tent-standard", Name: "Standard Tent", MaxOccupancy: 2, HighSeasonCost: 180, LowSeasonCost: 140},
				{ID: "tent-family", Name: "Family Tent", MaxOccupancy: 4, HighSeasonCost: 320, LowSeasonCost: 260},
			},
		},
	}

	for _, p := range places {
		if err := repo.SavePlace(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving place %s: %v\n", p.ID, err)
			os.Exit(1)
		}
		fmt.Printf("Saved place %s\n", p.ID)
	}
	for _, a := range accommodations {
		if err := repo.SaveAccommodation(ctx, a); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving accommodation %s: %v\n", a.ID, err)
			os.Exit(1)
		}
		fmt.Printf("Saved accommodation %s\n", a.ID)
	}
	if err := repo.SaveConstants(ctx, model.DefaultConstants()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving constants: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Saved pricing constants")
	fmt.Printf("Catalog seeded into %s\n", dbName)
}
