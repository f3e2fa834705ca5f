package synthetic

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/voyageai/voyage-cli/internal/core"
	"github.com/voyageai/voyage-cli/internal/geo"
)

const stayCount = 6

type hotelChain struct {
	Name       string
	Type       string
	Stars      int
	Quality    float64
	Multiplier float64
}

var hotelChains = []hotelChain{
	{"Marriott", "hotel", 4, 88, 1.20},
	{"Hilton", "hotel", 4, 86, 1.15},
	{"NH Hotels", "hotel", 4, 82, 1.00},
	{"Ibis", "hotel", 3, 72, 0.70},
	{"Holiday Inn", "hotel", 3, 75, 0.80},
	{"Novotel", "hotel", 4, 80, 0.95},
	{"Radisson", "hotel", 4, 84, 1.10},
	{"Boutique Central", "boutique", 4, 90, 1.30},
	{"City Hostel", "hostel", 2, 65, 0.40},
	{"Luxury Apartment", "apartment", 5, 92, 1.40},
}

var roomTypes = []string{
	"Standard Double Room",
	"Superior Room with Views",
	"Junior Suite",
	"Family Room",
	"Studio with Kitchen",
	"Deluxe King Room",
}

var allAmenities = []string{"wifi", "pool", "parking", "breakfast", "spa", "gym", "kitchen", "bar", "ac"}

// StaysGenerator produces a fixed-size batch of stay offers by sampling a
// static chain catalog against the destination's price band.
type StaysGenerator struct {
	resolver *geo.Resolver
	latency  time.Duration
	rng      *rand.Rand
}

func NewStaysGenerator(resolver *geo.Resolver, latency time.Duration) *StaysGenerator {
	return &StaysGenerator{
		resolver: resolver,
		latency:  latency,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the noise source so tests can fix the seed.
func (g *StaysGenerator) WithRand(rng *rand.Rand) *StaysGenerator {
	g.rng = rng
	return g
}

func (g *StaysGenerator) Name() string            { return "synthetic_stays" }
func (g *StaysGenerator) Tier() core.ProviderTier { return core.TierSynthetic }
func (g *StaysGenerator) Capabilities() []core.Capability {
	return []core.Capability{core.CapStaysSearch}
}
func (g *StaysGenerator) Available() (bool, string) { return true, "" }

func (g *StaysGenerator) SearchStays(ctx context.Context, req core.StaySearchRequest) ([]core.StayOffer, error) {
	if err := simulateLatency(ctx, g.latency); err != nil {
		return nil, err
	}

	city := g.resolver.ResolveCity(req.Destination)
	band := g.resolver.PriceBand(req.Destination)

	chains := sampleChains(g.rng, stayCount)
	now := time.Now().UTC()

	offers := make([]core.StayOffer, 0, stayCount)
	for i, chain := range chains {
		base := baseNightly(band, chain.Multiplier)
		price := roundPrice(base * chain.Multiplier * (0.90 + g.rng.Float64()*0.20))
		original := roundPrice(price * (1.10 + g.rng.Float64()*0.20))

		offers = append(offers, core.StayOffer{
			ID:         fmt.Sprintf("stay-%s-%d", geo.Fold(city), i+1),
			Source:     g.Name(),
			Name:       fmt.Sprintf("%s %s", chain.Name, city),
			Type:       chain.Type,
			StarRating: chain.Stars,
			Location: core.StayLocation{
				Address:  fmt.Sprintf("%d Main Street", 100+i*10),
				City:     city,
				Distance: fmt.Sprintf("%.1f km from center", 0.3+g.rng.Float64()*2),
			},
			Price:         price,
			OriginalPrice: original,
			Rating:        roundRating(3.5 + g.rng.Float64()*1.4),
			ReviewsCount:  50 + g.rng.Intn(500),
			RoomType:      roomTypes[g.rng.Intn(len(roomTypes))],
			Amenities:     sampleAmenities(g.rng, chain.Quality),
			Cancellation:  cancellationPolicy(g.rng),
			Quality:       chain.Quality,
			FetchedAt:     now,
		})
	}

	core.ScoreStays(offers, band.Mid, g.rng)
	return core.SortStays(offers, core.SortAI), nil
}

// Nightly base by chain tier: cheap chains draw from the budget band, the
// rest scale off mid or premium.
func baseNightly(band geo.PriceBand, multiplier float64) float64 {
	switch {
	case multiplier < 0.6:
		return band.Budget
	case multiplier < 1.0:
		return band.Mid * 0.8
	case multiplier < 1.2:
		return band.Mid
	default:
		return band.Premium * 0.8
	}
}

func sampleChains(rng *rand.Rand, n int) []hotelChain {
	shuffled := make([]hotelChain, len(hotelChains))
	copy(shuffled, hotelChains)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Higher-quality chains advertise more amenities. WiFi is always present.
func sampleAmenities(rng *rand.Rand, quality float64) []string {
	n := 3
	if quality > 85 {
		n = 6
	} else if quality > 75 {
		n = 4
	}

	shuffled := make([]string, len(allAmenities))
	copy(shuffled, allAmenities)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	picked := shuffled[:n]

	hasWifi := false
	for _, a := range picked {
		if a == "wifi" {
			hasWifi = true
			break
		}
	}
	if !hasWifi {
		picked[0] = "wifi"
	}
	return picked
}

func cancellationPolicy(rng *rand.Rand) string {
	r := rng.Float64()
	switch {
	case r < 0.7:
		return "free"
	case r < 0.85:
		return "partial"
	default:
		return "non_refundable"
	}
}

func roundRating(r float64) float64 {
	return float64(int(r*10+0.5)) / 10
}
