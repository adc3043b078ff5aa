package model

// DayCostBreakdown is the itemized cost of a single day.
//
// @Description Itemized costs for one itinerary day
// @Example {"accommodationCost": 200, "adultActivitiesCost": 100, "totalCost": 330}
type DayCostBreakdown struct {
	Day                 int     `json:"day"`
	AccommodationCost   float64 `json:"accommodationCost"`
	AdultActivitiesCost float64 `json:"adultActivitiesCost"`
	ChildActivitiesCost float64 `json:"childActivitiesCost"`
	TotalActivitiesCost float64 `json:"totalActivitiesCost"`
	AdultConcessionFee  float64 `json:"adultConcessionFee"`
	ChildConcessionFee  float64 `json:"childConcessionFee"`
	TotalConcessionFee  float64 `json:"totalConcessionFee"`
	TransportationCost  float64 `json:"transportationCost"`
	TotalCost           float64 `json:"totalCost"`
}

// TripTotals aggregates day breakdowns across the whole trip and splits the
// grand total between adults and children.
//
// @Description Aggregated trip totals and the per-person split
type TripTotals struct {
	Accommodation       float64            `json:"accommodation"`
	AdultActivities     float64            `json:"adultActivities"`
	ChildActivities     float64            `json:"childActivities"`
	Activities          float64            `json:"activities"`
	Transportation      float64            `json:"transportation"`
	AdultConcessionFees float64            `json:"adultConcessionFees"`
	ChildConcessionFees float64            `json:"childConcessionFees"`
	ConcessionFees      float64            `json:"concessionFees"`
	Subtotal            float64            `json:"subtotal"`
	Profit              float64            `json:"profit"`
	Total               float64            `json:"total"`
	PerAdult            float64            `json:"perAdult"`
	PerChild            float64            `json:"perChild"`
	VehicleCount        int                `json:"vehicleCount"`
	Days                []DayCostBreakdown `json:"days,omitempty"`
}
