package service

import (
	"sort"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

// RoomAllocator defines the interface for room allocation suggestions.
type RoomAllocator interface {
	// Suggest proposes room-type quantities that sleep the whole party.
	Suggest(accommodationID string, partySize int, highSeason bool, catalog *model.Catalog) []model.RoomAllocation
}

// RoomAllocatorService implements RoomAllocator with a greedy heuristic:
// fill with the largest rooms first, then cover the remainder with the
// smallest room that fits. The result may overshoot capacity (surfaced to
// the operator as extra capacity) but never undershoots, and depends only
// on its inputs.
type RoomAllocatorService struct{}

// NewRoomAllocatorService creates a new RoomAllocatorService.
func NewRoomAllocatorService() *RoomAllocatorService {
	return &RoomAllocatorService{}
}

// Suggest proposes a room allocation for the party at the given accommodation.
// A missing accommodation, the "none" sentinel, a non-positive party, or an
// accommodation without room types all yield an empty allocation.
func (s *RoomAllocatorService) Suggest(accommodationID string, partySize int, highSeason bool, catalog *model.Catalog) []model.RoomAllocation {
	if accommodationID == "" || accommodationID == model.AccommodationNone || partySize <= 0 {
		return []model.RoomAllocation{}
	}

	accommodation, ok := catalog.AccommodationByID(accommodationID)
	if !ok || len(accommodation.RoomTypes) == 0 {
		return []model.RoomAllocation{}
	}

	// Largest rooms first; cheaper per person wins ties.
	sorted := make([]model.RoomType, len(accommodation.RoomTypes))
	copy(sorted, accommodation.RoomTypes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MaxOccupancy != sorted[j].MaxOccupancy {
			return sorted[i].MaxOccupancy > sorted[j].MaxOccupancy
		}
		return sorted[i].CostPerPerson(highSeason) < sorted[j].CostPerPerson(highSeason)
	})

	remaining := partySize
	allocation := []model.RoomAllocation{}

	// First pass: greedy fill with whole rooms.
	for _, roomType := range sorted {
		if remaining <= 0 {
			break
		}
		if roomType.MaxOccupancy <= 0 {
			continue
		}
		rooms := remaining / roomType.MaxOccupancy
		if rooms > 0 {
			allocation = append(allocation, model.RoomAllocation{
				RoomTypeID: roomType.ID,
				Quantity:   rooms,
			})
			remaining -= rooms * roomType.MaxOccupancy
		}
	}

	// Second pass: cover the remainder with the smallest room that fits,
	// falling back to one more of the largest room type.
	if remaining > 0 {
		target := sorted[0]
		for i := len(sorted) - 1; i >= 0; i-- {
			if sorted[i].MaxOccupancy >= remaining {
				target = sorted[i]
				break
			}
		}
		allocation = addRoom(allocation, target.ID)
	}

	return allocation
}

// addRoom increments the allocation for a room type, merging into an
// existing entry when present.
func addRoom(allocation []model.RoomAllocation, roomTypeID string) []model.RoomAllocation {
	for i := range allocation {
		if allocation[i].RoomTypeID == roomTypeID {
			allocation[i].Quantity++
			return allocation
		}
	}
	return append(allocation, model.RoomAllocation{RoomTypeID: roomTypeID, Quantity: 1})
}
