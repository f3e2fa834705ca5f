package core

import (
	"context"
	"time"

	"github.com/voyageai/voyage-cli/internal/config"
	"github.com/voyageai/voyage-cli/internal/geo"
)

type Capability string

const (
	CapFlightsSearch Capability = "flights.search"
	CapStaysSearch   Capability = "stays.search"
	CapDeepLink      Capability = "deepLink"
)

type ProviderTier string

const (
	TierSynthetic   ProviderTier = "synthetic"
	TierFreeSignup  ProviderTier = "freeSignup"
	TierPaidSignup  ProviderTier = "paidSignup"
)

type TripType string

const (
	TripRoundtrip TripType = "roundtrip"
	TripOneway    TripType = "oneway"
)

type FlightSearchRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	DepartDate  string   `json:"departDate"`
	ReturnDate  string   `json:"returnDate,omitempty"`
	Passengers  int      `json:"passengers,omitempty"`
	TripType    TripType `json:"tripType,omitempty"`
	DirectOnly  bool     `json:"directOnly,omitempty"`
}

type StaySearchRequest struct {
	Destination string   `json:"destination"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	Guests      int      `json:"guests,omitempty"`
	Rooms       int      `json:"rooms,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	MinRating   float64  `json:"minRating,omitempty"`
}

type Reviews struct {
	Positive int `json:"positive"`
	Total    int `json:"total"`
}

// FlightOffer is a generated or fetched flight annotated with an AI score.
// Quality feeds the score calculator and is not part of the wire shape.
type FlightOffer struct {
	ID            string      `json:"id"`
	Source        string      `json:"source"`
	Airline       string      `json:"airline"`
	FlightNumber  string      `json:"flightNumber"`
	Origin        geo.Airport `json:"origin"`
	Destination   geo.Airport `json:"destination"`
	DepartTime    string      `json:"departTime"`
	ArriveTime    string      `json:"arriveTime"`
	Duration      string      `json:"duration"`
	DurationMin   int         `json:"durationMinutes"`
	Stops         int         `json:"stops"`
	StopCity      string      `json:"stopCity,omitempty"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"originalPrice"`
	CabinBag      bool        `json:"cabinBag"`
	CheckedBag    bool        `json:"checkedBag"`
	Class         string      `json:"class"`
	AIScore       int         `json:"aiScore"`
	AIReason      string      `json:"aiReason"`
	PriceHistory  string      `json:"priceHistory"`
	Reviews       Reviews     `json:"reviews"`
	Quality       float64     `json:"-"`
	FetchedAt     time.Time   `json:"fetchedAt"`
}

type StayLocation struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Distance string `json:"distance"`
}

// StayOffer is a generated stay annotated with an AI score. Price is per
// night.
type StayOffer struct {
	ID            string       `json:"id"`
	Source        string       `json:"source"`
	Name          string       `json:"name"`
	Type          string       `json:"type"`
	StarRating    int          `json:"starRating"`
	Location      StayLocation `json:"location"`
	Price         float64      `json:"price"`
	OriginalPrice float64      `json:"originalPrice"`
	Rating        float64      `json:"rating"`
	ReviewsCount  int          `json:"reviewsCount"`
	RoomType      string       `json:"roomType"`
	Amenities     []string     `json:"amenities"`
	Cancellation  string       `json:"cancellation"`
	AIScore       int          `json:"aiScore"`
	AIReason      string       `json:"aiReason"`
	Quality       float64      `json:"-"`
	FetchedAt     time.Time    `json:"fetchedAt"`
}

type SearchResult struct {
	Query      interface{}   `json:"query"`
	Mode       config.Mode   `json:"mode"`
	Source     string        `json:"source"`
	Detail     string        `json:"detail,omitempty"`
	Flights    []FlightOffer `json:"flights,omitempty"`
	Stays      []StayOffer   `json:"stays,omitempty"`
	TotalFound int           `json:"totalFound"`
	FetchedAt  time.Time     `json:"fetchedAt"`
}

// Flight finds an offer in the result set by ID.
func (r *SearchResult) Flight(id string) (FlightOffer, bool) {
	for _, f := range r.Flights {
		if f.ID == id {
			return f, true
		}
	}
	return FlightOffer{}, false
}

// Stay finds a stay offer in the result set by ID.
func (r *SearchResult) Stay(id string) (StayOffer, bool) {
	for _, s := range r.Stays {
		if s.ID == id {
			return s, true
		}
	}
	return StayOffer{}, false
}

type ProviderInfo struct {
	Name         string       `json:"name"`
	Capabilities []Capability `json:"capabilities"`
	Tier         ProviderTier `json:"tier"`
	Status       string       `json:"status"`
	Reason       string       `json:"reason,omitempty"`
}

type DoctorReport struct {
	Mode      config.Mode    `json:"mode"`
	Providers []ProviderInfo `json:"providers"`
	Healthy   bool           `json:"healthy"`
	Summary   string         `json:"summary"`
}

type FlightProvider interface {
	Name() string
	Tier() ProviderTier
	Capabilities() []Capability
	Available() (bool, string)
	SearchFlights(ctx context.Context, req FlightSearchRequest) ([]FlightOffer, error)
}

type StayProvider interface {
	Name() string
	Tier() ProviderTier
	Capabilities() []Capability
	Available() (bool, string)
	SearchStays(ctx context.Context, req StaySearchRequest) ([]StayOffer, error)
}
