package synthetic

import "github.com/voyageai/voyage-cli/internal/geo"

// Curated destination lists shown on the dashboard before any search runs.

type PopularDestination struct {
	City  string  `json:"city"`
	Code  string  `json:"code"`
	Price float64 `json:"price"`
}

type FeaturedDestination struct {
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Price      float64 `json:"price"`
	StaysCount int     `json:"staysCount"`
}

var popularDestinations = []PopularDestination{
	{"Paris", "CDG", 45},
	{"London", "LHR", 52},
	{"Rome", "FCO", 38},
	{"Amsterdam", "AMS", 49},
	{"Berlin", "BER", 41},
	{"Lisbon", "LIS", 35},
}

// PopularDestinations returns the curated list minus the origin itself.
func PopularDestinations(origin string) []PopularDestination {
	originCode := geo.NewResolver().ResolveAirport(origin).Code
	out := make([]PopularDestination, 0, len(popularDestinations))
	for _, d := range popularDestinations {
		if d.Code != originCode {
			out = append(out, d)
		}
	}
	return out
}

func FeaturedDestinations() []FeaturedDestination {
	return []FeaturedDestination{
		{"Barcelona", "Spain", 89, 423},
		{"Paris", "France", 120, 567},
		{"Rome", "Italy", 95, 389},
		{"Amsterdam", "Netherlands", 110, 298},
		{"Lisbon", "Portugal", 75, 245},
		{"Bali", "Indonesia", 45, 312},
	}
}
