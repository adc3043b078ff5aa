// Package service contains the business logic for the safari quote service.
package service

import (
	"math"
	"time"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
)

// QuoteCalculator defines the interface for pricing operations.
// Every method is a pure computation over its inputs: all catalog lookups
// are best-effort, a dangling reference contributes zero cost instead of
// failing, and no field of any result is ever negative for valid inputs.
type QuoteCalculator interface {
	// CalculateDayCosts prices a single itinerary day.
	CalculateDayCosts(day model.DayItinerary, pricing model.PricingContext, catalog *model.Catalog) model.DayCostBreakdown
	// CalculateTotals aggregates day costs into trip totals, applies the
	// margin once, and splits the grand total by weighted shares.
	CalculateTotals(itinerary []model.DayItinerary, pricing model.PricingContext, catalog *model.Catalog) model.TripTotals
	// VehicleCount resolves the number of vehicles for the party.
	VehicleCount(pricing model.PricingContext) int
	// InvalidateCache clears the quote cache (useful when the catalog changes).
	InvalidateCache()
}

// QuoteOption configures a QuoteCalculatorService.
type QuoteOption func(*QuoteCalculatorService)

// QuoteCalculatorService implements QuoteCalculator.
type QuoteCalculatorService struct {
	cache *quoteCache
}

// NewQuoteCalculatorService creates a new QuoteCalculatorService with the given options.
func NewQuoteCalculatorService(opts ...QuoteOption) *QuoteCalculatorService {
	s := &QuoteCalculatorService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithQuoteCache enables trip-total caching with the specified capacity and TTL.
// Recomputing from scratch on every state change is correct; the cache only
// matters for large itineraries recalculated on every edit.
func WithQuoteCache(capacity int, ttl time.Duration) QuoteOption {
	return func(s *QuoteCalculatorService) {
		if capacity > 0 {
			s.cache = newQuoteCache(capacity, ttl)
		}
	}
}

// CalculateDayCosts prices one day: accommodation, activities by pricing
// rule, the optional concession fee, and pass-through transportation.
func (s *QuoteCalculatorService) CalculateDayCosts(day model.DayItinerary, pricing model.PricingContext, catalog *model.Catalog) model.DayCostBreakdown {
	breakdown := model.DayCostBreakdown{Day: day.ID}

	// Accommodation: season rate per room times quantity. Room types that
	// vanished from the catalog after being referenced simply contribute
	// nothing; the quote must stay renderable against a stale catalog.
	if day.HasLodging() {
		if accommodation, ok := catalog.AccommodationByID(day.SelectedAccommodation); ok {
			for _, room := range day.RoomAllocation {
				if roomType, ok := accommodation.RoomTypeByID(room.RoomTypeID); ok {
					breakdown.AccommodationCost += roomType.SeasonCost(pricing.IsHighSeason) * float64(room.Quantity)
				}
			}
		}
	}

	for _, dayPlace := range day.Places {
		if dayPlace.PlaceID == "" {
			continue
		}
		for _, activityID := range dayPlace.SelectedActivities {
			activity, ok := catalog.ActivityByID(dayPlace.PlaceID, activityID)
			if !ok {
				continue
			}
			s.priceActivity(activity, pricing, &breakdown)
		}
	}

	if day.HasConcessionFee {
		breakdown.AdultConcessionFee = pricing.Constants.ConcessionFee * float64(pricing.Adults)
		breakdown.ChildConcessionFee = pricing.Constants.ChildConcessionFee * float64(pricing.Children)
	}

	breakdown.TotalActivitiesCost = breakdown.AdultActivitiesCost + breakdown.ChildActivitiesCost
	breakdown.TotalConcessionFee = breakdown.AdultConcessionFee + breakdown.ChildConcessionFee
	breakdown.TransportationCost = day.TransportationCost
	breakdown.TotalCost = breakdown.AccommodationCost +
		breakdown.TotalActivitiesCost +
		breakdown.TransportationCost +
		breakdown.TotalConcessionFee

	return breakdown
}

// priceActivity applies the activity's pricing rule to the running buckets.
func (s *QuoteCalculatorService) priceActivity(activity model.Activity, pricing model.PricingContext, breakdown *model.DayCostBreakdown) {
	baseRate := activity.SeasonCost(pricing.IsHighSeason)

	switch activity.Rule() {
	case model.RulePerVehicle:
		// Charged once per vehicle, never split per child.
		vehicles := s.VehicleCount(pricing)
		breakdown.AdultActivitiesCost += baseRate * float64(vehicles)

	case model.RuleTieredGroup:
		// Children are counted as adults for tiered group activities.
		partySize := pricing.TotalClients()
		perPerson := baseRate * activity.GroupMultiplier(partySize)
		breakdown.AdultActivitiesCost += perPerson * float64(partySize)

	default:
		breakdown.AdultActivitiesCost += baseRate * float64(pricing.Adults)
		breakdown.ChildActivitiesCost += activity.ChildSeasonCost(pricing.IsHighSeason) * float64(pricing.Children)
	}
}

// CalculateTotals sums day breakdowns, adds the flat margin once, and splits
// the total 2:1 between adults and children by shares.
func (s *QuoteCalculatorService) CalculateTotals(itinerary []model.DayItinerary, pricing model.PricingContext, catalog *model.Catalog) model.TripTotals {
	if s.cache != nil {
		if key, ok := quoteCacheKey(itinerary, pricing); ok {
			if totals, hit := s.cache.Get(key); hit {
				return totals
			}
			totals := s.calculateTotals(itinerary, pricing, catalog)
			s.cache.Set(key, totals)
			return totals
		}
	}
	return s.calculateTotals(itinerary, pricing, catalog)
}

func (s *QuoteCalculatorService) calculateTotals(itinerary []model.DayItinerary, pricing model.PricingContext, catalog *model.Catalog) model.TripTotals {
	totals := model.TripTotals{
		Profit:       pricing.ProfitAmount,
		VehicleCount: s.VehicleCount(pricing),
		Days:         make([]model.DayCostBreakdown, 0, len(itinerary)),
	}

	for _, day := range itinerary {
		costs := s.CalculateDayCosts(day, pricing, catalog)
		totals.Accommodation += costs.AccommodationCost
		totals.AdultActivities += costs.AdultActivitiesCost
		totals.ChildActivities += costs.ChildActivitiesCost
		totals.Transportation += costs.TransportationCost
		totals.AdultConcessionFees += costs.AdultConcessionFee
		totals.ChildConcessionFees += costs.ChildConcessionFee
		totals.Days = append(totals.Days, costs)
	}

	totals.Activities = totals.AdultActivities + totals.ChildActivities
	totals.ConcessionFees = totals.AdultConcessionFees + totals.ChildConcessionFees
	totals.Subtotal = totals.Accommodation + totals.Activities + totals.Transportation + totals.ConcessionFees
	totals.Total = totals.Subtotal + pricing.ProfitAmount

	totals.PerAdult, totals.PerChild = splitTotal(totals.Total, pricing.Adults, pricing.Children)
	return totals
}

// splitTotal divides the trip total by weighted shares: an adult is two
// shares, a child one. A single-type party absorbs the whole total. This is
// the business rule that children pay half the adult rate, not a per-capita
// average.
func splitTotal(total float64, adults, children int) (perAdult, perChild float64) {
	switch {
	case adults > 0 && children > 0:
		costPerShare := total / float64(adults*2+children)
		return 2 * costPerShare, costPerShare
	case adults > 0:
		return total / float64(adults), 0
	case children > 0:
		return 0, total / float64(children)
	default:
		return 0, 0
	}
}

// VehicleCount resolves the number of vehicles: the manual override when
// set, otherwise the party size divided by vehicle capacity, rounded up.
func (s *QuoteCalculatorService) VehicleCount(pricing model.PricingContext) int {
	if pricing.UseManualVehicles {
		return pricing.VehicleCount
	}
	capacity := pricing.Constants.VehicleCapacity
	if capacity <= 0 {
		capacity = model.DefaultConstants().VehicleCapacity
	}
	return int(math.Ceil(float64(pricing.TotalClients()) / float64(capacity)))
}

// InvalidateCache clears the quote cache.
func (s *QuoteCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}
