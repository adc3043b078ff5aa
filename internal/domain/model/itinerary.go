package model

import "time"

// AccommodationNone is the sentinel meaning a day explicitly has no lodging,
// as opposed to lodging not having been chosen yet (empty string).
const AccommodationNone = "none"

// RoomAllocation is a quantity of one room type on one day.
// Zero-quantity entries are pruned, not stored.
//
// @Description Quantity of a room type allocated for a night
// @Example {"roomTypeId": "double", "quantity": 2}
type RoomAllocation struct {
	RoomTypeID string `json:"roomTypeId" bson:"room_type_id"`
	Quantity   int    `json:"quantity" bson:"quantity"`
}

// TotalCapacity returns the number of guests an allocation can sleep given
// the accommodation's room types. Unknown room types contribute nothing.
func TotalCapacity(allocation []RoomAllocation, acc Accommodation) int {
	capacity := 0
	for _, entry := range allocation {
		if rt, ok := acc.RoomTypeByID(entry.RoomTypeID); ok {
			capacity += entry.Quantity * rt.MaxOccupancy
		}
	}
	return capacity
}

// DayPlace is a visited place with the subset of its activities chosen for
// the day. Activity ids have set semantics.
type DayPlace struct {
	PlaceID            string   `json:"placeId" bson:"place_id"`
	SelectedActivities []string `json:"selectedActivities" bson:"selected_activities"`
}

// DayItinerary is one day of the trip. ID is the 1-based day number and
// doubles as the display/sort key.
type DayItinerary struct {
	ID                    int              `json:"id" bson:"id"`
	Places                []DayPlace       `json:"places" bson:"places"`
	SelectedAccommodation string           `json:"selectedAccommodation" bson:"selected_accommodation"`
	RoomAllocation        []RoomAllocation `json:"roomAllocation" bson:"room_allocation"`
	HasConcessionFee      bool             `json:"hasConcessionFee" bson:"has_concession_fee"`
	TransportationCost    float64          `json:"transportationCost" bson:"transportation_cost"`
	Notes                 string           `json:"notes" bson:"notes"`
}

// NewDay returns an empty day with the given 1-based id.
func NewDay(id int) DayItinerary {
	return DayItinerary{
		ID:             id,
		Places:         []DayPlace{},
		RoomAllocation: []RoomAllocation{},
	}
}

// HasLodging reports whether the day has an accommodation selected that is
// not the explicit "none" sentinel.
func (d DayItinerary) HasLodging() bool {
	return d.SelectedAccommodation != "" && d.SelectedAccommodation != AccommodationNone
}

// PricingContext carries the party composition and pricing switches for one
// calculation pass. It is threaded explicitly through the engine instead of
// living in shared state, so every calculation depends only on its inputs.
type PricingContext struct {
	Adults            int       `json:"adults"`
	Children          int       `json:"children"`
	IsHighSeason      bool      `json:"isHighSeason"`
	ProfitAmount      float64   `json:"profitAmount"`
	UseManualVehicles bool      `json:"useManualVehicles"`
	VehicleCount      int       `json:"vehicleCount"`
	Constants         Constants `json:"constants"`
}

// TotalClients returns the whole party size, children included.
func (p PricingContext) TotalClients() int {
	return p.Adults + p.Children
}

// SavedItinerary is the persistence document for a named trip. The id is an
// opaque generated string; everything the calculator needs to reproduce the
// quote round-trips through this document.
type SavedItinerary struct {
	ID                string         `json:"id" bson:"_id"`
	Name              string         `json:"name" bson:"name"`
	Days              int            `json:"days" bson:"days"`
	Adults            int            `json:"adults" bson:"adults"`
	Children          int            `json:"children" bson:"children"`
	ProfitAmount      float64        `json:"profitAmount" bson:"profit_amount"`
	IsHighSeason      bool           `json:"isHighSeason" bson:"is_high_season"`
	UseManualVehicles bool           `json:"useManualVehicles" bson:"use_manual_vehicles"`
	VehicleCount      int            `json:"vehicleCount" bson:"vehicle_count"`
	Itinerary         []DayItinerary `json:"itinerary" bson:"itinerary"`
	CreatedAt         time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time      `json:"updatedAt" bson:"updated_at"`
}

// PricingContext builds the calculation context stored with the itinerary,
// using the given constants for the pass.
func (s SavedItinerary) PricingContext(constants Constants) PricingContext {
	return PricingContext{
		Adults:            s.Adults,
		Children:          s.Children,
		IsHighSeason:      s.IsHighSeason,
		ProfitAmount:      s.ProfitAmount,
		UseManualVehicles: s.UseManualVehicles,
		VehicleCount:      s.VehicleCount,
		Constants:         constants,
	}
}
