package synthetic

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/voyageai/voyage-cli/internal/core"
	"github.com/voyageai/voyage-cli/internal/geo"
)

const flightCount = 5

type airline struct {
	Name       string
	Code       string
	Multiplier float64
	Quality    float64
	Hub        string
	LowCost    bool
}

// Short-haul pool for routes up to ~6h.
var shortHaulAirlines = []airline{
	{"Ryanair", "FR", 0.55, 58, "", true},
	{"Vueling", "VY", 0.70, 70, "", true},
	{"EasyJet", "U2", 0.68, 66, "", true},
	{"Iberia", "IB", 1.00, 85, "Madrid", false},
	{"Air Europa", "UX", 0.90, 80, "Madrid", false},
	{"TAP Portugal", "TP", 0.85, 78, "Lisbon", false},
	{"Air France", "AF", 1.00, 84, "Paris", false},
	{"Lufthansa", "LH", 1.05, 86, "Frankfurt", false},
}

// Long-haul pool for anything above six hours.
var longHaulAirlines = []airline{
	{"Iberia", "IB", 1.00, 85, "Madrid", false},
	{"Air France", "AF", 1.05, 84, "Paris", false},
	{"Lufthansa", "LH", 1.10, 86, "Frankfurt", false},
	{"British Airways", "BA", 1.10, 85, "London", false},
	{"Emirates", "EK", 1.20, 90, "Dubai", false},
	{"Qatar Airways", "QR", 1.25, 91, "Doha", false},
	{"Turkish Airlines", "TK", 0.90, 82, "Istanbul", false},
}

// Approximate nonstop hours between known airports, keyed "AAA-BBB" with the
// codes in either order.
var routeHours = map[string]float64{
	"MAD-BCN": 1.25, "MAD-LIS": 1.25, "MAD-CDG": 2.25, "MAD-LHR": 2.5,
	"MAD-FCO": 2.5, "MAD-AMS": 2.5, "MAD-BER": 3, "MAD-NYC": 8,
	"MAD-MIA": 9.5, "MAD-CUN": 10.5, "MAD-DXB": 7.5, "MAD-TYO": 14,
	"MAD-BKK": 13, "MAD-SIN": 13.5, "MAD-PVG": 13, "MAD-DPS": 16,
	"BCN-CDG": 2, "BCN-LHR": 2.25, "BCN-FCO": 1.75, "BCN-AMS": 2.25,
	"CDG-LHR": 1.25, "CDG-FCO": 2, "CDG-NYC": 8.5, "CDG-TYO": 12.5,
	"LHR-NYC": 8, "LHR-SIN": 13, "LHR-DXB": 7, "AMS-NYC": 8.25,
	"FCO-NYC": 9, "LIS-NYC": 7.5,
}

const defaultRouteHours = 5.0

// Base one-way price by duration bucket, in EUR.
func basePriceFor(hours float64) float64 {
	switch {
	case hours <= 2:
		return 60
	case hours <= 4:
		return 95
	case hours <= 8:
		return 260
	case hours <= 12:
		return 430
	default:
		return 620
	}
}

// FlightsGenerator produces a fixed-size batch of plausible flight offers
// from static route tables and randomness. Every call re-randomizes; there
// is no caching.
type FlightsGenerator struct {
	resolver *geo.Resolver
	latency  time.Duration
	rng      *rand.Rand
}

func NewFlightsGenerator(resolver *geo.Resolver, latency time.Duration) *FlightsGenerator {
	return &FlightsGenerator{
		resolver: resolver,
		latency:  latency,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the noise source so tests can fix the seed.
func (g *FlightsGenerator) WithRand(rng *rand.Rand) *FlightsGenerator {
	g.rng = rng
	return g
}

func (g *FlightsGenerator) Name() string            { return "synthetic_flights" }
func (g *FlightsGenerator) Tier() core.ProviderTier { return core.TierSynthetic }
func (g *FlightsGenerator) Capabilities() []core.Capability {
	return []core.Capability{core.CapFlightsSearch}
}
func (g *FlightsGenerator) Available() (bool, string) { return true, "" }

func (g *FlightsGenerator) SearchFlights(ctx context.Context, req core.FlightSearchRequest) ([]core.FlightOffer, error) {
	if err := simulateLatency(ctx, g.latency); err != nil {
		return nil, err
	}

	origin := g.resolver.ResolveAirport(req.Origin)
	dest := g.resolver.ResolveAirport(req.Destination)

	hours := lookupRouteHours(origin.Code, dest.Code)
	base := basePriceFor(hours)
	pool := shortHaulAirlines
	if hours > 6 {
		pool = longHaulAirlines
	}

	picks := sampleAirlines(g.rng, pool, flightCount)
	now := time.Now().UTC()

	offers := make([]core.FlightOffer, 0, flightCount)
	for i, al := range picks {
		durationMin := int(hours*60) + g.rng.Intn(41) - 20
		if durationMin < 45 {
			durationMin = 45
		}

		stops := 0
		stopCity := ""
		if !req.DirectOnly && al.Hub != "" && al.Hub != origin.City && al.Hub != dest.City && hours > 3 && g.rng.Float64() < 0.3 {
			stops = 1
			stopCity = al.Hub
			durationMin += 90
		}

		departMin := 6*60 + g.rng.Intn(16*60)
		arriveMin := (departMin + durationMin) % (24 * 60)

		price := roundPrice(base * al.Multiplier * (0.85 + g.rng.Float64()*0.30))
		original := roundPrice(price * (1.10 + g.rng.Float64()*0.25))

		offers = append(offers, core.FlightOffer{
			ID:            fmt.Sprintf("fl-%03d", i+1),
			Source:        g.Name(),
			Airline:       al.Name,
			FlightNumber:  fmt.Sprintf("%s%d", al.Code, 1000+g.rng.Intn(9000)),
			Origin:        origin,
			Destination:   dest,
			DepartTime:    clockTime(departMin),
			ArriveTime:    clockTime(arriveMin),
			Duration:      formatDuration(durationMin),
			DurationMin:   durationMin,
			Stops:         stops,
			StopCity:      stopCity,
			Price:         price,
			OriginalPrice: original,
			CabinBag:      true,
			CheckedBag:    !al.LowCost,
			Class:         "economy",
			PriceHistory:  priceHistory(g.rng),
			Reviews: core.Reviews{
				Positive: 70 + g.rng.Intn(25),
				Total:    500 + g.rng.Intn(2000),
			},
			Quality:   al.Quality,
			FetchedAt: now,
		})
	}

	core.ScoreFlights(offers, base, g.rng)
	return core.SortFlights(offers, core.SortAI), nil
}

func lookupRouteHours(from, to string) float64 {
	if h, ok := routeHours[from+"-"+to]; ok {
		return h
	}
	if h, ok := routeHours[to+"-"+from]; ok {
		return h
	}
	return defaultRouteHours
}

func sampleAirlines(rng *rand.Rand, pool []airline, n int) []airline {
	shuffled := make([]airline, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func clockTime(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

func formatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

func priceHistory(rng *rand.Rand) string {
	if rng.Float64() > 0.5 {
		return "down"
	}
	return "stable"
}

func roundPrice(p float64) float64 {
	return float64(int(p + 0.5))
}

func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
