package synthetic

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/voyageai/voyage-cli/internal/core"
	"github.com/voyageai/voyage-cli/internal/geo"
)

func testFlightsGenerator(seed int64) *FlightsGenerator {
	return NewFlightsGenerator(geo.NewResolver(), 0).WithRand(rand.New(rand.NewSource(seed)))
}

func TestSearchFlights_BatchShape(t *testing.T) {
	g := testFlightsGenerator(1)

	offers, err := g.SearchFlights(context.Background(), core.FlightSearchRequest{
		Origin:      "Madrid",
		Destination: "Paris",
		DepartDate:  "2026-06-12",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != flightCount {
		t.Fatalf("expected %d offers, got %d", flightCount, len(offers))
	}

	durationFormat := regexp.MustCompile(`^\d+h \d+min$`)
	clockFormat := regexp.MustCompile(`^\d{2}:\d{2}$`)
	for _, f := range offers {
		if f.Origin.Code != "MAD" || f.Destination.Code != "CDG" {
			t.Errorf("offer %s route %s-%s, want MAD-CDG", f.ID, f.Origin.Code, f.Destination.Code)
		}
		if !durationFormat.MatchString(f.Duration) {
			t.Errorf("offer %s duration %q not in h/min format", f.ID, f.Duration)
		}
		if !clockFormat.MatchString(f.DepartTime) || !clockFormat.MatchString(f.ArriveTime) {
			t.Errorf("offer %s times %q/%q not HH:MM", f.ID, f.DepartTime, f.ArriveTime)
		}
		if f.Price <= 0 {
			t.Errorf("offer %s has non-positive price %.0f", f.ID, f.Price)
		}
		if f.OriginalPrice <= f.Price {
			t.Errorf("offer %s original %.0f should exceed price %.0f", f.ID, f.OriginalPrice, f.Price)
		}
		if f.AIScore < 0 || f.AIScore > 99 {
			t.Errorf("offer %s score %d out of range", f.ID, f.AIScore)
		}
		if f.AIReason == "" {
			t.Errorf("offer %s missing reason", f.ID)
		}
	}
}

func TestSearchFlights_SortedByScore(t *testing.T) {
	g := testFlightsGenerator(7)

	offers, err := g.SearchFlights(context.Background(), core.FlightSearchRequest{
		Origin:      "Madrid",
		Destination: "Tokyo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(offers); i++ {
		if offers[i].AIScore > offers[i-1].AIScore {
			t.Fatalf("offers not sorted by score at index %d", i)
		}
	}
}

func TestSearchFlights_DirectOnlyHasNoStops(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := testFlightsGenerator(seed)
		offers, err := g.SearchFlights(context.Background(), core.FlightSearchRequest{
			Origin:      "Madrid",
			Destination: "New York",
			DirectOnly:  true,
		})
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		for _, f := range offers {
			if f.Stops != 0 {
				t.Errorf("seed %d: offer %s has %d stops despite direct-only", seed, f.ID, f.Stops)
			}
		}
	}
}

func TestSearchFlights_LongHaulUsesLongHaulPool(t *testing.T) {
	g := testFlightsGenerator(3)

	offers, err := g.SearchFlights(context.Background(), core.FlightSearchRequest{
		Origin:      "Madrid",
		Destination: "Tokyo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	longHaul := map[string]bool{}
	for _, al := range longHaulAirlines {
		longHaul[al.Name] = true
	}
	for _, f := range offers {
		if !longHaul[f.Airline] {
			t.Errorf("airline %s not in the long-haul pool", f.Airline)
		}
	}
}

func TestSearchFlights_CancelledContext(t *testing.T) {
	g := NewFlightsGenerator(geo.NewResolver(), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.SearchFlights(ctx, core.FlightSearchRequest{Destination: "Paris"}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
