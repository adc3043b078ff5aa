// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strconv"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidParty is returned when the party composition is invalid.
	ErrInvalidParty = &ValidationError{
		Field:   "adults",
		Message: "party must have at least one client",
	}
	// ErrNegativeCount is returned when adults or children is negative.
	ErrNegativeCount = &ValidationError{
		Field:   "adults/children",
		Message: "must not be negative",
	}
	// ErrNegativeProfit is returned when the profit amount is negative.
	ErrNegativeProfit = &ValidationError{
		Field:   "profitAmount",
		Message: "must not be negative",
	}
	// ErrInvalidVehicleCount is returned when a manual vehicle count is invalid.
	ErrInvalidVehicleCount = &ValidationError{
		Field:   "vehicleCount",
		Message: "must be at least 1 when useManualVehicles is set",
	}
	// ErrMissingItinerary is returned when no days are provided.
	ErrMissingItinerary = &ValidationError{
		Field:   "itinerary",
		Message: "must contain at least one day",
	}
	// ErrMissingName is returned when a required name is blank.
	ErrMissingName = &ValidationError{
		Field:   "name",
		Message: "must not be blank",
	}
	// ErrMissingID is returned when a required id is blank.
	ErrMissingID = &ValidationError{
		Field:   "id",
		Message: "must not be blank",
	}
)

// PricingParams carries the party composition and pricing switches shared by
// the quote endpoints.
//
// @Description Party composition and pricing switches for a quote
type PricingParams struct {
	// Adults is the number of adult clients
	Adults int `json:"adults" example:"2" minimum:"0"`
	// Children is the number of child clients
	Children int `json:"children" example:"1" minimum:"0"`
	// IsHighSeason selects high-season rates across the catalog
	IsHighSeason bool `json:"isHighSeason" example:"true"`
	// ProfitAmount is the flat margin added once to the trip total
	ProfitAmount float64 `json:"profitAmount" example:"500" minimum:"0"`
	// UseManualVehicles overrides the derived vehicle count
	UseManualVehicles bool `json:"useManualVehicles" example:"false"`
	// VehicleCount is the manual vehicle count, read only when the override is set
	VehicleCount int `json:"vehicleCount" example:"1"`
} // @name PricingParams

// Validate checks the party composition and pricing switches.
func (p *PricingParams) Validate() error {
	if p.Adults < 0 || p.Children < 0 {
		return ErrNegativeCount
	}
	if p.ProfitAmount < 0 {
		return ErrNegativeProfit
	}
	if p.UseManualVehicles && p.VehicleCount < 1 {
		return ErrInvalidVehicleCount
	}
	return nil
}

// PricingContext converts the request params into the engine's context using
// the given constants.
func (p *PricingParams) PricingContext(constants model.Constants) model.PricingContext {
	return model.PricingContext{
		Adults:            p.Adults,
		Children:          p.Children,
		IsHighSeason:      p.IsHighSeason,
		ProfitAmount:      p.ProfitAmount,
		UseManualVehicles: p.UseManualVehicles,
		VehicleCount:      p.VehicleCount,
		Constants:         constants,
	}
}

// QuoteRequest represents the JSON request body for the full-trip quote endpoint.
//
// @Description Request to price a whole trip itinerary
type QuoteRequest struct {
	PricingParams
	// Itinerary is the ordered list of trip days to price
	Itinerary []model.DayItinerary `json:"itinerary" binding:"required"`
} // @name QuoteRequest

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *QuoteRequest) Validate() error {
	if err := r.PricingParams.Validate(); err != nil {
		return err
	}
	if len(r.Itinerary) == 0 {
		return ErrMissingItinerary
	}
	return nil
}

// DayQuoteRequest represents the JSON request body for the single-day quote endpoint.
//
// @Description Request to price one trip day
type DayQuoteRequest struct {
	PricingParams
	// Day is the trip day to price
	Day model.DayItinerary `json:"day" binding:"required"`
} // @name DayQuoteRequest

// Validate performs custom validation on the request.
func (r *DayQuoteRequest) Validate() error {
	return r.PricingParams.Validate()
}

// SuggestRoomsRequest represents the JSON request body for the room suggestion endpoint.
//
// @Description Request for a room allocation covering the whole party
type SuggestRoomsRequest struct {
	// AccommodationID identifies the lodging whose room types are allocated
	AccommodationID string `json:"accommodationId" binding:"required" example:"lodge-a"`
	// PartySize is the number of guests to sleep, children included
	PartySize int `json:"partySize" binding:"required,gt=0" example:"5" minimum:"1"`
	// IsHighSeason selects the season rates used for cost tie-breaking
	IsHighSeason bool `json:"isHighSeason" example:"true"`
} // @name SuggestRoomsRequest

// Validate performs custom validation on the request.
func (r *SuggestRoomsRequest) Validate() error {
	if r.AccommodationID == "" {
		return &ValidationError{Field: "accommodationId", Message: "must not be blank"}
	}
	if r.PartySize <= 0 {
		return &ValidationError{Field: "partySize", Message: "must be a positive integer"}
	}
	return nil
}

// SavePlaceRequest represents the JSON request body for upserting a place.
type SavePlaceRequest struct {
	model.Place
} // @name SavePlaceRequest

// Validate performs custom validation on the request.
func (r *SavePlaceRequest) Validate() error {
	if r.ID == "" {
		return ErrMissingID
	}
	if r.Name == "" {
		return ErrMissingName
	}
	return nil
}

// SaveAccommodationRequest represents the JSON request body for upserting an accommodation.
type SaveAccommodationRequest struct {
	model.Accommodation
} // @name SaveAccommodationRequest

// Validate performs custom validation on the request.
func (r *SaveAccommodationRequest) Validate() error {
	if r.ID == "" {
		return ErrMissingID
	}
	if r.Name == "" {
		return ErrMissingName
	}
	for _, rt := range r.RoomTypes {
		if rt.MaxOccupancy < 0 {
			return &ValidationError{
				Field:   "roomTypes[" + rt.ID + "].maxOccupancy",
				Message: "must not be negative",
			}
		}
	}
	return nil
}

// SaveConstantsRequest represents the JSON request body for replacing the
// pricing constants.
type SaveConstantsRequest struct {
	model.Constants
} // @name SaveConstantsRequest

// Validate performs custom validation on the request.
func (r *SaveConstantsRequest) Validate() error {
	if r.ConcessionFee < 0 || r.ChildConcessionFee < 0 {
		return &ValidationError{Field: "concession fees", Message: "must not be negative"}
	}
	if r.VehicleCapacity < 1 {
		return &ValidationError{
			Field:   "VEHICLE_CAPACITY",
			Message: "must be at least 1, got " + strconv.Itoa(r.VehicleCapacity),
		}
	}
	return nil
}

// SaveItineraryRequest represents the JSON request body for saving a trip.
// When ID is present the save is an upsert, otherwise an id is generated.
//
// @Description Request to persist a named trip itinerary
type SaveItineraryRequest struct {
	ID                string               `json:"id,omitempty"`
	Name              string               `json:"name" binding:"required" example:"Serengeti classic"`
	Days              int                  `json:"days" example:"5"`
	Adults            int                  `json:"adults" example:"2"`
	Children          int                  `json:"children" example:"1"`
	ProfitAmount      float64              `json:"profitAmount" example:"500"`
	IsHighSeason      bool                 `json:"isHighSeason" example:"true"`
	UseManualVehicles bool                 `json:"useManualVehicles" example:"false"`
	VehicleCount      int                  `json:"vehicleCount" example:"1"`
	Itinerary         []model.DayItinerary `json:"itinerary"`
} // @name SaveItineraryRequest

// Validate performs custom validation on the request.
func (r *SaveItineraryRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Adults < 0 || r.Children < 0 {
		return ErrNegativeCount
	}
	if r.Days < 0 {
		return &ValidationError{Field: "days", Message: "must not be negative"}
	}
	return nil
}

// Model converts the request into the persistence document.
func (r *SaveItineraryRequest) Model() model.SavedItinerary {
	return model.SavedItinerary{
		ID:                r.ID,
		Name:              r.Name,
		Days:              r.Days,
		Adults:            r.Adults,
		Children:          r.Children,
		ProfitAmount:      r.ProfitAmount,
		IsHighSeason:      r.IsHighSeason,
		UseManualVehicles: r.UseManualVehicles,
		VehicleCount:      r.VehicleCount,
		Itinerary:         r.Itinerary,
	}
}

// ExportItineraryRequest represents the JSON request body for the CSV export
// endpoint. The itinerary is priced with the current catalog before export.
type ExportItineraryRequest struct {
	PricingParams
	// Name labels the exported trip
	Name string `json:"name" example:"Serengeti classic"`
	// Itinerary is the ordered list of trip days to export
	Itinerary []model.DayItinerary `json:"itinerary" binding:"required"`
} // @name ExportItineraryRequest

// Validate performs custom validation on the request.
func (r *ExportItineraryRequest) Validate() error {
	if err := r.PricingParams.Validate(); err != nil {
		return err
	}
	if len(r.Itinerary) == 0 {
		return ErrMissingItinerary
	}
	return nil
}
