package core

import "math/rand"

// Score weights per offer kind. The score is a three-part weighted sum:
// a quality term, a price bonus relative to the batch's reference price,
// and a bounded noise term. Scores are relative to sibling offers from the
// same generation batch, not comparable across searches.
const (
	flightQualityWeight = 0.7
	flightPriceBonusMax = 30.0
	flightNoiseMax      = 10.0

	stayQualityWeight = 0.6
	stayPriceBonusMax = 25.0
	stayNoiseMax      = 15.0

	maxScore = 99
)

var flightFallbackReasons = []string{
	"Good travel option",
	"Solid schedule for this route",
	"Balanced price and timing",
}

var stayReasons = []string{
	"Great value for money",
	"Excellent central location",
	"Exceptional guest reviews",
	"Well-rated breakfast included",
	"Great option for families",
	"Ideal for business trips",
}

// ScoreFlights annotates every offer in the batch with an AI score and a
// reason string. basePrice is the reference price for the route; rng supplies
// the noise term so callers can fix the seed.
func ScoreFlights(offers []FlightOffer, basePrice float64, rng *rand.Rand) {
	if len(offers) == 0 {
		return
	}
	if basePrice <= 0 {
		basePrice = minFlightPrice(offers)
	}
	if basePrice <= 0 {
		basePrice = 1
	}

	for i := range offers {
		f := &offers[i]
		bonus := flightPriceBonusMax - (f.Price/basePrice-0.7)*50
		score := f.Quality*flightQualityWeight + clampf(bonus, 0, flightPriceBonusMax) + rng.Float64()*flightNoiseMax
		f.AIScore = clampScore(score)
	}

	min := minFlightPrice(offers)
	for i := range offers {
		f := &offers[i]
		switch {
		case f.Price == min:
			f.AIReason = "Lowest price available"
		case f.Stops == 0 && f.AIScore >= 90:
			f.AIReason = "Direct flight with the best value for money"
		case f.AIScore >= 90:
			f.AIReason = "Best option according to AI analysis"
		case f.Stops == 0:
			f.AIReason = "Direct flight available"
		default:
			f.AIReason = flightFallbackReasons[rng.Intn(len(flightFallbackReasons))]
		}
	}
}

// ScoreStays annotates every stay in the batch. midPrice is the destination's
// mid-tier nightly price.
func ScoreStays(offers []StayOffer, midPrice float64, rng *rand.Rand) {
	if len(offers) == 0 {
		return
	}
	if midPrice <= 0 {
		midPrice = minStayPrice(offers)
	}
	if midPrice <= 0 {
		midPrice = 1
	}

	for i := range offers {
		s := &offers[i]
		bonus := stayPriceBonusMax - (s.Price/midPrice-0.8)*30
		score := s.Quality*stayQualityWeight + clampf(bonus, 0, stayPriceBonusMax) + rng.Float64()*stayNoiseMax
		s.AIScore = clampScore(score)
	}

	min := minStayPrice(offers)
	for i := range offers {
		s := &offers[i]
		switch {
		case s.Price == min:
			s.AIReason = "Lowest price available"
		case s.AIScore >= 90:
			s.AIReason = "Best value for money"
		default:
			s.AIReason = stayReasons[rng.Intn(len(stayReasons))]
		}
	}
}

func minFlightPrice(offers []FlightOffer) float64 {
	min := offers[0].Price
	for _, f := range offers[1:] {
		if f.Price < min {
			min = f.Price
		}
	}
	return min
}

func minStayPrice(offers []StayOffer) float64 {
	min := offers[0].Price
	for _, s := range offers[1:] {
		if s.Price < min {
			min = s.Price
		}
	}
	return min
}

func clampScore(score float64) int {
	n := int(score + 0.5)
	if n > maxScore {
		return maxScore
	}
	if n < 0 {
		return 0
	}
	return n
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
