package live

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/voyageai/voyage-cli/internal/core"
	"github.com/voyageai/voyage-cli/internal/geo"
)

const (
	apifyBaseURL       = "https://api.apify.com/v2"
	googleFlightsActor = "voyager~google-flights-scraper"

	pollInterval = 2 * time.Second
	pollAttempts = 15
)

// ApifyFlightsAdapter runs the Google Flights scraper actor on Apify.
// Free trial credits, no card required: https://apify.com
// Set APIFY_TOKEN to enable.
type ApifyFlightsAdapter struct {
	resolver *geo.Resolver
	client   *http.Client
}

func NewApifyFlightsAdapter(resolver *geo.Resolver) *ApifyFlightsAdapter {
	return &ApifyFlightsAdapter{
		resolver: resolver,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *ApifyFlightsAdapter) Name() string            { return "apify" }
func (a *ApifyFlightsAdapter) Tier() core.ProviderTier { return core.TierFreeSignup }
func (a *ApifyFlightsAdapter) Capabilities() []core.Capability {
	return []core.Capability{core.CapFlightsSearch, core.CapDeepLink}
}

func (a *ApifyFlightsAdapter) Available() (bool, string) {
	token := os.Getenv("APIFY_TOKEN")
	if token == "" || token == "your_apify_token_here" {
		return false, "set APIFY_TOKEN (free trial at https://apify.com)"
	}
	return true, ""
}

type apifyRunResponse struct {
	Data struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

type apifyFlight struct {
	Airline  string  `json:"airline"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Departure struct {
		Airport string `json:"airport"`
		Time    string `json:"time"`
		Date    string `json:"date"`
	} `json:"departure"`
	Arrival struct {
		Airport string `json:"airport"`
		Time    string `json:"time"`
		Date    string `json:"date"`
	} `json:"arrival"`
	Duration     string `json:"duration"`
	Stops        int    `json:"stops"`
	FlightNumber string `json:"flightNumber"`
	BookingURL   string `json:"bookingUrl"`
}

func (a *ApifyFlightsAdapter) SearchFlights(ctx context.Context, req core.FlightSearchRequest) ([]core.FlightOffer, error) {
	token := os.Getenv("APIFY_TOKEN")
	if ok, reason := a.Available(); !ok {
		return nil, fmt.Errorf("apify: %s", reason)
	}

	origin := a.resolver.ResolveAirport(req.Origin)
	dest := a.resolver.ResolveAirport(req.Destination)

	input := map[string]interface{}{
		"origin":        origin.Code,
		"destination":   dest.Code,
		"departureDate": req.DepartDate,
		"returnDate":    req.ReturnDate,
		"adults":        req.Passengers,
		"maxResults":    15,
	}
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("apify: encode input: %w", err)
	}

	runURL := fmt.Sprintf("%s/acts/%s/runs?token=%s", apifyBaseURL, googleFlightsActor, token)
	var run apifyRunResponse
	if err := a.postJSON(ctx, runURL, body, &run); err != nil {
		return nil, fmt.Errorf("apify: start run: %w", err)
	}

	results, err := a.pollRun(ctx, run.Data.ID, token)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("apify: run %s returned no results", run.Data.ID)
	}

	offers := make([]core.FlightOffer, 0, len(results))
	now := time.Now().UTC()
	for i, f := range results {
		offers = append(offers, transformApifyFlight(f, i, now))
	}

	core.ScoreFlights(offers, 0, scoreRand())
	return core.SortFlights(offers, core.SortAI), nil
}

func (a *ApifyFlightsAdapter) pollRun(ctx context.Context, runID, token string) ([]apifyFlight, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for attempt := 0; attempt < pollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		var status apifyRunResponse
		statusURL := fmt.Sprintf("%s/actor-runs/%s?token=%s", apifyBaseURL, runID, token)
		if err := a.getJSON(ctx, statusURL, &status); err != nil {
			return nil, fmt.Errorf("apify: poll run: %w", err)
		}

		switch status.Data.Status {
		case "SUCCEEDED":
			var results []apifyFlight
			itemsURL := fmt.Sprintf("%s/actor-runs/%s/dataset/items?token=%s", apifyBaseURL, runID, token)
			if err := a.getJSON(ctx, itemsURL, &results); err != nil {
				return nil, fmt.Errorf("apify: fetch dataset: %w", err)
			}
			return results, nil
		case "FAILED", "ABORTED", "TIMED-OUT":
			return nil, fmt.Errorf("apify: actor run %s: %s", runID, status.Data.Status)
		}
	}

	return nil, fmt.Errorf("apify: run %s did not finish within %v", runID, pollInterval*pollAttempts)
}

func transformApifyFlight(f apifyFlight, index int, now time.Time) core.FlightOffer {
	number := f.FlightNumber
	if number == "" && len(f.Airline) >= 2 {
		number = fmt.Sprintf("%s%d", f.Airline[:2], 1000+index)
	}
	return core.FlightOffer{
		ID:            fmt.Sprintf("apify-%d-%d", index, now.UnixMilli()),
		Source:        "apify",
		Airline:       f.Airline,
		FlightNumber:  number,
		Origin:        geo.Airport{Code: f.Departure.Airport, Name: f.Departure.Airport, City: f.Departure.Airport},
		Destination:   geo.Airport{Code: f.Arrival.Airport, Name: f.Arrival.Airport, City: f.Arrival.Airport},
		DepartTime:    f.Departure.Time,
		ArriveTime:    f.Arrival.Time,
		Duration:      f.Duration,
		DurationMin:   parseDurationMinutes(f.Duration),
		Stops:         f.Stops,
		Price:         f.Price,
		OriginalPrice: float64(int(f.Price*1.12 + 0.5)),
		CabinBag:      true,
		CheckedBag:    f.Price > 100,
		Class:         "economy",
		PriceHistory:  "stable",
		Quality:       liveOfferQuality,
		FetchedAt:     now,
	}
}

// parseDurationMinutes reads scraper duration strings like "2h 15m",
// "2 hr 15 min" or "14h". Unparseable input yields zero.
func parseDurationMinutes(s string) int {
	var hours, minutes int
	num := 0
	digits := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int(r-'0')
			digits = true
		case (r == 'h' || r == 'H') && digits:
			hours = num
			num, digits = 0, false
		case (r == 'm' || r == 'M') && digits:
			minutes = num
			num, digits = 0, false
		}
	}
	return hours*60 + minutes
}

func (a *ApifyFlightsAdapter) postJSON(ctx context.Context, url string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, out)
}

func (a *ApifyFlightsAdapter) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return a.do(req, out)
}

func (a *ApifyFlightsAdapter) do(req *http.Request, out interface{}) error {
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
