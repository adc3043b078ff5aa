// Package model defines the core domain entities for the safari quote service.
package model

// PricingRule selects how an activity is priced for a party.
type PricingRule string

const (
	// RulePerPerson charges adults and children independently at their
	// season rates. This is the default when no rule is set.
	RulePerPerson PricingRule = "per_person"
	// RulePerVehicle charges the season rate once per vehicle needed for
	// the whole party, regardless of party composition.
	RulePerVehicle PricingRule = "per_vehicle"
	// RuleTieredGroup charges every member of the party (children included)
	// the season rate discounted by a group-size tier.
	RuleTieredGroup PricingRule = "tiered_group"
)

// DiscountTier maps a minimum party size to a price multiplier.
//
// @Description Group-size discount tier for tiered activities
// @Example {"min_party_size": 5, "multiplier": 0.90}
type DiscountTier struct {
	// MinPartySize is the smallest party the tier applies to
	MinPartySize int `json:"min_party_size" bson:"min_party_size" example:"5"`
	// Multiplier scales the base season rate (0.90 = 10% off)
	Multiplier float64 `json:"multiplier" bson:"multiplier" example:"0.9"`
}

// DefaultGroupDiscountTiers is the fallback tier table applied to tiered
// activities that do not enumerate their own tiers.
var DefaultGroupDiscountTiers = []DiscountTier{
	{MinPartySize: 5, Multiplier: 0.90},
	{MinPartySize: 3, Multiplier: 0.95},
}

// Activity is a bookable excursion offered at exactly one place.
//
// All monetary amounts are USD. Child rates apply only to per-person
// activities; vehicle-charged and tiered activities ignore them.
type Activity struct {
	ID                  string         `json:"id" bson:"id"`
	Name                string         `json:"name" bson:"name"`
	Description         string         `json:"description" bson:"description"`
	HighSeasonCost      float64        `json:"highSeasonCost" bson:"high_season_cost"`
	LowSeasonCost       float64        `json:"lowSeasonCost" bson:"low_season_cost"`
	ChildHighSeasonCost float64        `json:"childHighSeasonCost" bson:"child_high_season_cost"`
	ChildLowSeasonCost  float64        `json:"childLowSeasonCost" bson:"child_low_season_cost"`
	PricingRule         PricingRule    `json:"pricingRule,omitempty" bson:"pricing_rule,omitempty"`
	DiscountTiers       []DiscountTier `json:"discountTiers,omitempty" bson:"discount_tiers,omitempty"`
}

// SeasonCost returns the adult rate for the active season.
func (a Activity) SeasonCost(highSeason bool) float64 {
	if highSeason {
		return a.HighSeasonCost
	}
	return a.LowSeasonCost
}

// ChildSeasonCost returns the child rate for the active season.
func (a Activity) ChildSeasonCost(highSeason bool) float64 {
	if highSeason {
		return a.ChildHighSeasonCost
	}
	return a.ChildLowSeasonCost
}

// Rule returns the effective pricing rule, defaulting to per-person.
func (a Activity) Rule() PricingRule {
	if a.PricingRule == "" {
		return RulePerPerson
	}
	return a.PricingRule
}

// GroupMultiplier resolves the discount multiplier for a party of the given
// size. Activities without their own tier table use the default tiers.
// Tiers are evaluated highest threshold first; parties below every
// threshold pay full price.
func (a Activity) GroupMultiplier(partySize int) float64 {
	tiers := a.DiscountTiers
	if len(tiers) == 0 {
		tiers = DefaultGroupDiscountTiers
	}

	best := 1.0
	bestMin := -1
	for _, tier := range tiers {
		if partySize >= tier.MinPartySize && tier.MinPartySize > bestMin {
			best = tier.Multiplier
			bestMin = tier.MinPartySize
		}
	}
	return best
}

// Place is a destination with its owned activities.
type Place struct {
	ID          string     `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Activities  []Activity `json:"activities" bson:"activities"`
}

// ActivityByID looks up an activity owned by this place.
func (p Place) ActivityByID(id string) (Activity, bool) {
	for _, a := range p.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// RoomType is a room category owned by exactly one accommodation.
// Cost is per room per night, not per person.
type RoomType struct {
	ID             string  `json:"id" bson:"id"`
	Name           string  `json:"name" bson:"name"`
	MaxOccupancy   int     `json:"maxOccupancy" bson:"max_occupancy"`
	HighSeasonCost float64 `json:"highSeasonCost" bson:"high_season_cost"`
	LowSeasonCost  float64 `json:"lowSeasonCost" bson:"low_season_cost"`
}

// SeasonCost returns the per-room rate for the active season.
func (r RoomType) SeasonCost(highSeason bool) float64 {
	if highSeason {
		return r.HighSeasonCost
	}
	return r.LowSeasonCost
}

// CostPerPerson returns the season rate divided by occupancy, used as the
// tie-breaker when ranking room types for allocation.
func (r RoomType) CostPerPerson(highSeason bool) float64 {
	if r.MaxOccupancy <= 0 {
		return r.SeasonCost(highSeason)
	}
	return r.SeasonCost(highSeason) / float64(r.MaxOccupancy)
}

// Accommodation is a lodging option with its owned room types.
type Accommodation struct {
	ID                string     `json:"id" bson:"_id"`
	Name              string     `json:"name" bson:"name"`
	Description       string     `json:"description" bson:"description"`
	Location          string     `json:"location,omitempty" bson:"location,omitempty"`
	IncludesFullBoard bool       `json:"includesFullBoard" bson:"includes_full_board"`
	InPark            bool       `json:"inPark" bson:"in_park"`
	RoomTypes         []RoomType `json:"roomTypes" bson:"room_types"`
}

// RoomTypeByID looks up a room type owned by this accommodation.
func (a Accommodation) RoomTypeByID(id string) (RoomType, bool) {
	for _, rt := range a.RoomTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return RoomType{}, false
}

// Constants holds the fee and fleet constants the pricing engine reads.
//
// @Description Pricing constants applied across the whole trip
type Constants struct {
	// ConcessionFee is the per-adult in-park fee per night
	ConcessionFee float64 `json:"CONCESSION_FEE" bson:"concession_fee" example:"60"`
	// ChildConcessionFee is the per-child in-park fee per night
	ChildConcessionFee float64 `json:"CHILD_CONCESSION_FEE" bson:"child_concession_fee" example:"30"`
	// VehicleCapacity is the number of clients one safari vehicle seats
	VehicleCapacity int `json:"VEHICLE_CAPACITY" bson:"vehicle_capacity" example:"7"`
}

// DefaultConstants returns the constants used when none are stored.
func DefaultConstants() Constants {
	return Constants{
		ConcessionFee:      60,
		ChildConcessionFee: 30,
		VehicleCapacity:    7,
	}
}

// Catalog is a read-only snapshot of places and accommodations used for one
// calculation pass. All lookups degrade to (zero, false) on missing ids so
// a quote stays renderable against a partially stale catalog.
type Catalog struct {
	Places         []Place         `json:"places"`
	Accommodations []Accommodation `json:"accommodations"`
	Constants      Constants       `json:"constants"`
}

// PlaceByID looks up a place in the snapshot.
func (c *Catalog) PlaceByID(id string) (Place, bool) {
	for _, p := range c.Places {
		if p.ID == id {
			return p, true
		}
	}
	return Place{}, false
}

// AccommodationByID looks up an accommodation in the snapshot.
func (c *Catalog) AccommodationByID(id string) (Accommodation, bool) {
	for _, a := range c.Accommodations {
		if a.ID == id {
			return a, true
		}
	}
	return Accommodation{}, false
}

// ActivityByID resolves a place-scoped activity id.
func (c *Catalog) ActivityByID(placeID, activityID string) (Activity, bool) {
	place, ok := c.PlaceByID(placeID)
	if !ok {
		return Activity{}, false
	}
	return place.ActivityByID(activityID)
}
