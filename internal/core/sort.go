package core

import "sort"

type SortKey string

const (
	SortAI       SortKey = "ai"
	SortPrice    SortKey = "price"
	SortDuration SortKey = "duration"
	SortRating   SortKey = "rating"
)

// SortFlights returns a new slice ordered by the given key: ai descending,
// price ascending, duration ascending. Unknown keys leave the order as-is.
func SortFlights(flights []FlightOffer, key SortKey) []FlightOffer {
	out := make([]FlightOffer, len(flights))
	copy(out, flights)

	switch key {
	case SortAI:
		sort.SliceStable(out, func(i, j int) bool { return out[i].AIScore > out[j].AIScore })
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortDuration:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DurationMin < out[j].DurationMin })
	}
	return out
}

// SortStays returns a new slice ordered by the given key: ai and rating
// descending, price ascending.
func SortStays(stays []StayOffer, key SortKey) []StayOffer {
	out := make([]StayOffer, len(stays))
	copy(out, stays)

	switch key {
	case SortAI:
		sort.SliceStable(out, func(i, j int) bool { return out[i].AIScore > out[j].AIScore })
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
