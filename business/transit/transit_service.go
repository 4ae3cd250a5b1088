package transit

import (
	"context"
	"sort"
	"time"

	"skyStop/domain"
	"skyStop/pkg/logger"
)

const (
	bufferMinutes       = 30
	baggageExtraMinutes = 30
	minCityTimeMinutes  = 60 // one-hour floor for leaving the airport
	minCityReserve      = 30 // reserve an option must leave after the round trip
)

// AirportRepository lets a collaborator override the built-in airport
// catalog. A nil repository or a miss falls through to the builtin map.
type AirportRepository interface {
	GetProfile(ctx context.Context, code string) (domain.AirportProfile, bool, error)
}

type Service struct {
	airportRepo AirportRepository
}

func NewService(airportRepo AirportRepository) *Service {
	return &Service{airportRepo: airportRepo}
}

// Profile resolves airport metadata. Unknown airports get the conservative
// default profile instead of an error.
func (s *Service) Profile(ctx context.Context, code string) domain.AirportProfile {
	if s.airportRepo != nil {
		if p, ok, err := s.airportRepo.GetProfile(ctx, code); err == nil && ok {
			p.KnownToTransitModel = true
			return p
		}
	}

	if p, ok := airportProfiles[code]; ok {
		return p
	}

	logger.Debug("unknown airport, using conservative default", "airport", code)

	return defaultProfile(code)
}

// Analyze computes whether the traveler can leave the airport and how much
// city time remains. It never fails; missing data degrades to a pessimistic
// estimate.
func (s *Service) Analyze(ctx context.Context, airportCode string, layoverMinutes int, arrivalTime time.Time, hasCheckedBaggage bool) domain.TransitAnalysis {
	profile := s.Profile(ctx, airportCode)
	return Analyze(profile, layoverMinutes, arrivalTime, hasCheckedBaggage)
}

// Analyze is the pure core of the feasibility computation, separated so it
// can run on an already-resolved profile.
func Analyze(profile domain.AirportProfile, layoverMinutes int, arrivalTime time.Time, hasCheckedBaggage bool) domain.TransitAnalysis {
	fastest := fastestOption(profile.TransitOptions)

	overhead := bufferMinutes + profile.CustomsMinutes + profile.SecurityMinutes + 2*profile.WalkingMinutes
	if fastest > 0 {
		overhead += 2 * fastest
	}
	if hasCheckedBaggage {
		overhead += baggageExtraMinutes
	}

	availableInCity := layoverMinutes - overhead
	canLeave := availableInCity >= minCityTimeMinutes

	options := viableOptions(profile.TransitOptions, arrivalTime, availableInCity, profile.Timezone)

	analysis := domain.TransitAnalysis{
		CanLeaveAirport:               canLeave,
		MinimumLayoverRequiredMinutes: overhead + minCityTimeMinutes,
		AvailableTimeInCityMinutes:    max(0, availableInCity),
		OverheadMinutes:               overhead,
		Options:                       options,
		Confidence:                    confidence(profile, options, availableInCity),
	}

	return analysis
}

func fastestOption(options []domain.TransitOption) int {
	fastest := 0
	for _, opt := range options {
		if fastest == 0 || opt.DurationMinutes < fastest {
			fastest = opt.DurationMinutes
		}
	}
	return fastest
}

// viableOptions keeps options whose operating window covers the local
// arrival hour and whose round trip still leaves the minimum city reserve,
// sorted fastest-first.
func viableOptions(options []domain.TransitOption, arrivalTime time.Time, availableInCity int, timezone string) []domain.TransitOption {
	localArrival := arrivalTime
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			localArrival = arrivalTime.In(loc)
		}
	}
	hour := localArrival.Hour()

	out := make([]domain.TransitOption, 0, len(options))
	for _, opt := range options {
		if !operatesAt(opt, hour) {
			continue
		}
		roundTrip := 2 * opt.DurationMinutes
		if roundTrip+minCityReserve > availableInCity {
			continue
		}
		opt.RoundTripMinutes = roundTrip
		out = append(out, opt)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DurationMinutes < out[j].DurationMinutes
	})

	return out
}

func operatesAt(opt domain.TransitOption, hour int) bool {
	// 0..24 means around the clock
	if opt.OpensAtHour <= 0 && opt.ClosesAtHour >= 24 {
		return true
	}
	return hour >= opt.OpensAtHour && hour < opt.ClosesAtHour
}

// confidence starts at 0.5 and accumulates fixed bonuses, capped at 1.0.
func confidence(profile domain.AirportProfile, options []domain.TransitOption, availableInCity int) float64 {
	c := 0.5

	if profile.KnownToTransitModel && len(profile.TransitOptions) > 0 {
		c += 0.2
	}
	if hasExpress(options) || profile.HasExpressRail {
		c += 0.1
	}
	if bufferMinutes >= 30 {
		c += 0.1
	}

	// unambiguous verdict: clearly feasible or clearly not
	margin := availableInCity - minCityTimeMinutes
	if margin >= 60 || margin < 0 {
		c += 0.1
	}

	if c > 1.0 {
		c = 1.0
	}
	return c
}

func hasExpress(options []domain.TransitOption) bool {
	for _, opt := range options {
		if opt.Mode == "express_train" {
			return true
		}
	}
	return false
}
