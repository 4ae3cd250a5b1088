package transit

import "skyStop/domain"

// Built-in airport catalog. The airport collaborator can override any of
// these through the repository; unknown airports fall back to
// defaultProfile which is deliberately pessimistic.
var airportProfiles = map[string]domain.AirportProfile{
	"SIN": {
		Code: "SIN", CityName: "Singapore", Country: "Singapore",
		Timezone: "Asia/Singapore", SafetyRating: 4.8,
		CustomsMinutes: 25, SecurityMinutes: 20, WalkingMinutes: 10,
		HasExpressRail: true, KnownToTransitModel: true,
		TransitOptions: []domain.TransitOption{
			{Mode: "express_train", DurationMinutes: 30, Cost: 2.5, Currency: "SGD", OpensAtHour: 5, ClosesAtHour: 23},
			{Mode: "taxi", DurationMinutes: 20, Cost: 25, Currency: "SGD", OpensAtHour: 0, ClosesAtHour: 24},
			{Mode: "bus", DurationMinutes: 50, Cost: 2, Currency: "SGD", OpensAtHour: 6, ClosesAtHour: 23},
		},
	},
	"DXB": {
		Code: "DXB", CityName: "Dubai", Country: "United Arab Emirates",
		Timezone: "Asia/Dubai", SafetyRating: 4.5,
		CustomsMinutes: 35, SecurityMinutes: 25, WalkingMinutes: 12,
		HasExpressRail: false, KnownToTransitModel: true,
		TransitOptions: []domain.TransitOption{
			{Mode: "metro", DurationMinutes: 25, Cost: 2, Currency: "AED", OpensAtHour: 5, ClosesAtHour: 24},
			{Mode: "taxi", DurationMinutes: 15, Cost: 60, Currency: "AED", OpensAtHour: 0, ClosesAtHour: 24},
		},
	},
	"AMS": {
		Code: "AMS", CityName: "Amsterdam", Country: "Netherlands",
		Timezone: "Europe/Amsterdam", SafetyRating: 4.4,
		CustomsMinutes: 30, SecurityMinutes: 25, WalkingMinutes: 10,
		HasExpressRail: true, KnownToTransitModel: true,
		TransitOptions: []domain.TransitOption{
			{Mode: "express_train", DurationMinutes: 17, Cost: 5.5, Currency: "EUR", OpensAtHour: 0, ClosesAtHour: 24},
			{Mode: "taxi", DurationMinutes: 25, Cost: 50, Currency: "EUR", OpensAtHour: 0, ClosesAtHour: 24},
			{Mode: "bus", DurationMinutes: 35, Cost: 6.5, Currency: "EUR", OpensAtHour: 5, ClosesAtHour: 23},
		},
	},
	"IST": {
		Code: "IST", CityName: "Istanbul", Country: "Turkey",
		Timezone: "Europe/Istanbul", SafetyRating: 3.8,
		CustomsMinutes: 40, SecurityMinutes: 30, WalkingMinutes: 15,
		HasExpressRail: false, KnownToTransitModel: true,
		TransitOptions: []domain.TransitOption{
			{Mode: "metro", DurationMinutes: 40, Cost: 1.5, Currency: "TRY", OpensAtHour: 6, ClosesAtHour: 24},
			{Mode: "taxi", DurationMinutes: 35, Cost: 30, Currency: "TRY", OpensAtHour: 0, ClosesAtHour: 24},
			{Mode: "bus", DurationMinutes: 60, Cost: 4, Currency: "TRY", OpensAtHour: 4, ClosesAtHour: 24},
		},
	},
	"DOH": {
		Code: "DOH", CityName: "Doha", Country: "Qatar",
		Timezone: "Asia/Qatar", SafetyRating: 4.6,
		CustomsMinutes: 30, SecurityMinutes: 20, WalkingMinutes: 10,
		HasExpressRail: false, KnownToTransitModel: true,
		TransitOptions: []domain.TransitOption{
			{Mode: "metro", DurationMinutes: 20, Cost: 0.8, Currency: "QAR", OpensAtHour: 6, ClosesAtHour: 23},
			{Mode: "taxi", DurationMinutes: 15, Cost: 40, Currency: "QAR", OpensAtHour: 0, ClosesAtHour: 24},
		},
	},
	"FRA": {
		Code: "FRA", CityName: "Frankfurt", Country: "Germany",
		Timezone: "Europe/Berlin", SafetyRating: 4.2,
		CustomsMinutes: 30, SecurityMinutes: 30, WalkingMinutes: 12,
		HasExpressRail: true, KnownToTransitModel: true,
		TransitOptions: []domain.TransitOption{
			{Mode: "express_train", DurationMinutes: 12, Cost: 5.8, Currency: "EUR", OpensAtHour: 4, ClosesAtHour: 24},
			{Mode: "taxi", DurationMinutes: 20, Cost: 40, Currency: "EUR", OpensAtHour: 0, ClosesAtHour: 24},
		},
	},
	"ICN": {
		Code: "ICN", CityName: "Seoul", Country: "South Korea",
		Timezone: "Asia/Seoul", SafetyRating: 4.5,
		CustomsMinutes: 30, SecurityMinutes: 25, WalkingMinutes: 12,
		HasExpressRail: true, KnownToTransitModel: true,
		TransitOptions: []domain.TransitOption{
			{Mode: "express_train", DurationMinutes: 45, Cost: 9, Currency: "KRW", OpensAtHour: 5, ClosesAtHour: 23},
			{Mode: "bus", DurationMinutes: 70, Cost: 12, Currency: "KRW", OpensAtHour: 5, ClosesAtHour: 23},
			{Mode: "taxi", DurationMinutes: 55, Cost: 55, Currency: "KRW", OpensAtHour: 0, ClosesAtHour: 24},
		},
	},
	"NRT": {
		Code: "NRT", CityName: "Tokyo", Country: "Japan",
		Timezone: "Asia/Tokyo", SafetyRating: 4.7,
		CustomsMinutes: 35, SecurityMinutes: 25, WalkingMinutes: 15,
		HasExpressRail: true, KnownToTransitModel: true,
		TransitOptions: []domain.TransitOption{
			{Mode: "express_train", DurationMinutes: 55, Cost: 22, Currency: "JPY", OpensAtHour: 6, ClosesAtHour: 22},
			{Mode: "bus", DurationMinutes: 90, Cost: 10, Currency: "JPY", OpensAtHour: 6, ClosesAtHour: 22},
			{Mode: "taxi", DurationMinutes: 70, Cost: 180, Currency: "JPY", OpensAtHour: 0, ClosesAtHour: 24},
		},
	},
}

// defaultProfile is the conservative fallback for airports the catalog does
// not know: longer queues, taxi and bus only.
func defaultProfile(code string) domain.AirportProfile {
	return domain.AirportProfile{
		Code:            code,
		CityName:        code,
		SafetyRating:    3.0,
		CustomsMinutes:  45,
		SecurityMinutes: 35,
		WalkingMinutes:  15,
		HasExpressRail:  false,
		TransitOptions: []domain.TransitOption{
			{Mode: "taxi", DurationMinutes: 30, Cost: 40, Currency: "USD", OpensAtHour: 0, ClosesAtHour: 24},
			{Mode: "bus", DurationMinutes: 50, Cost: 5, Currency: "USD", OpensAtHour: 6, ClosesAtHour: 22},
		},
	}
}
