package domain

import "time"

// DestinationCity describes the city a traveler could visit during a layover.
type DestinationCity struct {
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	Timezone     string  `json:"timezone"`
	SafetyRating float64 `json:"safety_rating"` // 0..5
}

// LayoverContext is built once per discovery request and never mutated.
type LayoverContext struct {
	ArrivalTime     time.Time       `json:"arrival_time"`
	DepartureTime   time.Time       `json:"departure_time"`
	AirportCode     string          `json:"airport_code"`
	City            DestinationCity `json:"city"`
	DurationMinutes int             `json:"duration_minutes"`
}

// TransitOption is one way to get from the airport into the city.
type TransitOption struct {
	Mode             string  `json:"mode"`
	DurationMinutes  int     `json:"duration_minutes"` // one-way
	Cost             float64 `json:"cost"`
	Currency         string  `json:"currency"`
	OpensAtHour      int     `json:"opens_at_hour"`
	ClosesAtHour     int     `json:"closes_at_hour"`
	RoundTripMinutes int     `json:"round_trip_minutes"`
}

// TransitAnalysis is computed fresh per request and not persisted.
// AvailableTimeInCityMinutes is always >= 0 here; infeasible layovers
// report 0 with CanLeaveAirport = false.
type TransitAnalysis struct {
	CanLeaveAirport               bool            `json:"can_leave_airport"`
	MinimumLayoverRequiredMinutes int             `json:"minimum_layover_required_minutes"`
	AvailableTimeInCityMinutes    int             `json:"available_time_in_city_minutes"`
	OverheadMinutes               int             `json:"overhead_minutes"`
	Options                       []TransitOption `json:"options"`
	Confidence                    float64         `json:"confidence"`
}

// AirportProfile holds the static metadata transit analysis needs.
type AirportProfile struct {
	Code                string          `json:"code"`
	CityName            string          `json:"city_name"`
	Country             string          `json:"country"`
	Timezone            string          `json:"timezone"`
	SafetyRating        float64         `json:"safety_rating"`
	CustomsMinutes      int             `json:"customs_minutes"`
	SecurityMinutes     int             `json:"security_minutes"`
	WalkingMinutes      int             `json:"walking_minutes"`
	TransitOptions      []TransitOption `json:"transit_options"`
	HasExpressRail      bool            `json:"has_express_rail"`
	KnownToTransitModel bool            `json:"-"`
}
