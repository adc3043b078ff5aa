package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/repository"
)

// ItineraryService provides save/load/delete for named itineraries plus the
// day-count lifecycle helpers the planner uses.
type ItineraryService interface {
	// Save upserts an itinerary. A blank id gets a generated one.
	Save(ctx context.Context, itinerary model.SavedItinerary) (*model.SavedItinerary, error)
	// Get loads an itinerary by id.
	Get(ctx context.Context, id string) (*model.SavedItinerary, error)
	// List returns saved itineraries, most recently updated first.
	List(ctx context.Context, limit int) ([]model.SavedItinerary, error)
	// Delete removes an itinerary by id.
	Delete(ctx context.Context, id string) error
}

// ItineraryServiceImpl implements ItineraryService.
type ItineraryServiceImpl struct {
	repo repository.ItinerariesRepositoryInterface
}

// NewItineraryService creates a new itinerary service.
func NewItineraryService(repo repository.ItinerariesRepositoryInterface) *ItineraryServiceImpl {
	return &ItineraryServiceImpl{repo: repo}
}

// Save upserts an itinerary, normalizing its day list to the declared day
// count before persisting so loads always see a well-formed document.
func (s *ItineraryServiceImpl) Save(ctx context.Context, itinerary model.SavedItinerary) (*model.SavedItinerary, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	if itinerary.ID == "" {
		itinerary.ID = uuid.New().String()
		itinerary.CreatedAt = time.Now()
	}
	itinerary.UpdatedAt = time.Now()
	itinerary.Itinerary = Resize(itinerary.Itinerary, itinerary.Days)

	if err := s.repo.Save(ctx, &itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// Get loads an itinerary by id. A missing id yields (nil, nil).
func (s *ItineraryServiceImpl) Get(ctx context.Context, id string) (*model.SavedItinerary, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Get(ctx, id)
}

// List returns saved itineraries, most recently updated first.
func (s *ItineraryServiceImpl) List(ctx context.Context, limit int) ([]model.SavedItinerary, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

// Delete removes an itinerary by id.
func (s *ItineraryServiceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.repo.Delete(ctx, id)
}

// Resize fits a day list to the requested day count: existing days are kept
// by their 1-based id, missing days are created empty, and days past the new
// count fall off the tail. The input slice is not mutated.
func Resize(days []model.DayItinerary, numDays int) []model.DayItinerary {
	if numDays < 0 {
		numDays = 0
	}

	byID := make(map[int]model.DayItinerary, len(days))
	for _, day := range days {
		byID[day.ID] = day
	}

	resized := make([]model.DayItinerary, 0, numDays)
	for i := 1; i <= numDays; i++ {
		if day, ok := byID[i]; ok {
			resized = append(resized, day)
		} else {
			resized = append(resized, model.NewDay(i))
		}
	}
	return resized
}
