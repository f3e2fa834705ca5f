package geo

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Airport is the canonical record a free-text origin/destination resolves to.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// PriceBand is the three-tier nightly price estimate for a city.
type PriceBand struct {
	Budget  float64 `json:"budget"`
	Mid     float64 `json:"mid"`
	Premium float64 `json:"premium"`
}

var defaultBand = PriceBand{Budget: 60, Mid: 120, Premium: 280}

type cityEntry struct {
	alias   string
	airport Airport
	band    PriceBand
}

// Alias table covering the cities the dashboard knows about. Spanish and
// English spellings both appear; accents are folded before matching so
// "parís" and "Paris" land on the same entry.
var cityEntries = buildEntries([]cityEntry{
	{"madrid", Airport{"MAD", "Madrid-Barajas", "Madrid", "Spain"}, PriceBand{65, 120, 260}},
	{"barcelona", Airport{"BCN", "Barcelona-El Prat", "Barcelona", "Spain"}, PriceBand{70, 130, 280}},
	{"paris", Airport{"CDG", "Charles de Gaulle", "Paris", "France"}, PriceBand{80, 150, 350}},
	{"london", Airport{"LHR", "Heathrow", "London", "United Kingdom"}, PriceBand{90, 180, 400}},
	{"londres", Airport{"LHR", "Heathrow", "London", "United Kingdom"}, PriceBand{90, 180, 400}},
	{"rome", Airport{"FCO", "Fiumicino", "Rome", "Italy"}, PriceBand{75, 140, 300}},
	{"roma", Airport{"FCO", "Fiumicino", "Rome", "Italy"}, PriceBand{75, 140, 300}},
	{"amsterdam", Airport{"AMS", "Schiphol", "Amsterdam", "Netherlands"}, PriceBand{85, 160, 320}},
	{"berlin", Airport{"BER", "Berlin Brandenburg", "Berlin", "Germany"}, PriceBand{60, 110, 240}},
	{"lisbon", Airport{"LIS", "Humberto Delgado", "Lisbon", "Portugal"}, PriceBand{55, 100, 220}},
	{"lisboa", Airport{"LIS", "Humberto Delgado", "Lisbon", "Portugal"}, PriceBand{55, 100, 220}},
	{"new york", Airport{"NYC", "New York City", "New York", "United States"}, PriceBand{120, 220, 500}},
	{"nueva york", Airport{"NYC", "New York City", "New York", "United States"}, PriceBand{120, 220, 500}},
	{"tokyo", Airport{"TYO", "Tokyo", "Tokyo", "Japan"}, PriceBand{70, 150, 380}},
	{"tokio", Airport{"TYO", "Tokyo", "Tokyo", "Japan"}, PriceBand{70, 150, 380}},
	{"shanghai", Airport{"PVG", "Pudong", "Shanghai", "China"}, PriceBand{50, 100, 250}},
	{"dubai", Airport{"DXB", "Dubai International", "Dubai", "United Arab Emirates"}, PriceBand{80, 180, 450}},
	{"bali", Airport{"DPS", "Ngurah Rai", "Bali", "Indonesia"}, PriceBand{30, 80, 200}},
	{"bangkok", Airport{"BKK", "Suvarnabhumi", "Bangkok", "Thailand"}, PriceBand{25, 60, 150}},
	{"singapore", Airport{"SIN", "Changi", "Singapore", "Singapore"}, PriceBand{90, 180, 400}},
	{"singapur", Airport{"SIN", "Changi", "Singapore", "Singapore"}, PriceBand{90, 180, 400}},
	{"miami", Airport{"MIA", "Miami International", "Miami", "United States"}, PriceBand{100, 200, 450}},
	{"cancun", Airport{"CUN", "Cancun International", "Cancun", "Mexico"}, PriceBand{60, 120, 300}},
})

// Longer aliases first so "nueva york" wins over any shorter overlap, and
// iteration order stays deterministic.
func buildEntries(entries []cityEntry) []cityEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].alias) > len(entries[j].alias)
	})
	return entries
}

var iataPattern = regexp.MustCompile(`\(([A-Z]{3})\)`)

// Resolver maps free-text city input to canonical airport records and price
// bands. Lookups never fail: unknown input degrades to a best-effort guess.
type Resolver struct {
	cache *gocache.Cache
}

func NewResolver() *Resolver {
	return &Resolver{cache: gocache.New(gocache.NoExpiration, 0)}
}

// ResolveAirport returns the canonical airport for a query like "Paris",
// "parís" or "Madrid (MAD)". Unmatched input yields a synthetic code built
// from the first three letters.
func (r *Resolver) ResolveAirport(query string) Airport {
	key := Fold(query)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(Airport)
	}

	ap := resolveAirport(query, key)
	r.cache.Set(key, ap, gocache.NoExpiration)
	return ap
}

func resolveAirport(query, folded string) Airport {
	if m := iataPattern.FindStringSubmatch(query); m != nil {
		code := m[1]
		for _, e := range cityEntries {
			if e.airport.Code == code {
				return e.airport
			}
		}
		city := strings.TrimSpace(iataPattern.ReplaceAllString(query, ""))
		return Airport{Code: code, Name: city, City: Capitalize(city), Country: ""}
	}

	for _, e := range cityEntries {
		if strings.Contains(folded, e.alias) {
			return e.airport
		}
	}

	guess := strings.TrimSpace(query)
	return Airport{
		Code: syntheticCode(guess),
		Name: guess,
		City: Capitalize(guess),
	}
}

// ResolveCity returns the canonical display name for a destination, falling
// back to the input with its first letter capitalized.
func (r *Resolver) ResolveCity(query string) string {
	return r.ResolveAirport(query).City
}

// PriceBand returns the nightly price band for a destination. Unknown cities
// get a mid-range default so a search is never blocked.
func (r *Resolver) PriceBand(query string) PriceBand {
	folded := Fold(query)
	for _, e := range cityEntries {
		if strings.Contains(folded, e.alias) {
			return e.band
		}
	}
	return defaultBand
}

// Fold lowercases and strips diacritics so matching is accent-insensitive.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}

func syntheticCode(s string) string {
	var letters []rune
	for _, r := range Fold(s) {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 3 {
			break
		}
	}
	if len(letters) == 0 {
		return "XXX"
	}
	return string(letters)
}
