package state

// Last-entered search form fields. Ephemeral by design: the search form is
// the one record that is not persisted, so each process starts from the
// defaults.

type FlightSearchForm struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	ReturnDate  string `json:"returnDate"`
	Passengers  int    `json:"passengers"`
	TripType    string `json:"tripType"`
}

type StaySearchForm struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Guests      int    `json:"guests"`
	Rooms       int    `json:"rooms"`
}

type FlightSearchPatch struct {
	Origin      *string `json:"origin,omitempty"`
	Destination *string `json:"destination,omitempty"`
	DepartDate  *string `json:"departDate,omitempty"`
	ReturnDate  *string `json:"returnDate,omitempty"`
	Passengers  *int    `json:"passengers,omitempty"`
	TripType    *string `json:"tripType,omitempty"`
}

type StaySearchPatch struct {
	Destination *string `json:"destination,omitempty"`
	CheckIn     *string `json:"checkIn,omitempty"`
	CheckOut    *string `json:"checkOut,omitempty"`
	Guests      *int    `json:"guests,omitempty"`
	Rooms       *int    `json:"rooms,omitempty"`
}

type Search struct {
	flight FlightSearchForm
	stay   StaySearchForm
}

func defaultFlightSearch() FlightSearchForm {
	return FlightSearchForm{
		Origin:     "Madrid (MAD)",
		Passengers: 1,
		TripType:   "roundtrip",
	}
}

func defaultStaySearch() StaySearchForm {
	return StaySearchForm{Guests: 2, Rooms: 1}
}

func NewSearch() *Search {
	return &Search{
		flight: defaultFlightSearch(),
		stay:   defaultStaySearch(),
	}
}

func (s *Search) Flight() FlightSearchForm { return s.flight }
func (s *Search) Stay() StaySearchForm     { return s.stay }

// SetFlight merges the non-nil patch fields into the form. No validation
// happens here: an empty destination simply leaves the search action
// disabled downstream.
func (s *Search) SetFlight(patch FlightSearchPatch) {
	if patch.Origin != nil {
		s.flight.Origin = *patch.Origin
	}
	if patch.Destination != nil {
		s.flight.Destination = *patch.Destination
	}
	if patch.DepartDate != nil {
		s.flight.DepartDate = *patch.DepartDate
	}
	if patch.ReturnDate != nil {
		s.flight.ReturnDate = *patch.ReturnDate
	}
	if patch.Passengers != nil {
		s.flight.Passengers = *patch.Passengers
	}
	if patch.TripType != nil {
		s.flight.TripType = *patch.TripType
	}
}

func (s *Search) SetStay(patch StaySearchPatch) {
	if patch.Destination != nil {
		s.stay.Destination = *patch.Destination
	}
	if patch.CheckIn != nil {
		s.stay.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		s.stay.CheckOut = *patch.CheckOut
	}
	if patch.Guests != nil {
		s.stay.Guests = *patch.Guests
	}
	if patch.Rooms != nil {
		s.stay.Rooms = *patch.Rooms
	}
}

func (s *Search) ResetFlight() { s.flight = defaultFlightSearch() }
func (s *Search) ResetStay()   { s.stay = defaultStaySearch() }

// CanSearchFlights reports whether the flight search action is enabled.
func (s *Search) CanSearchFlights() bool { return s.flight.Destination != "" }

// CanSearchStays reports whether the stay search action is enabled.
func (s *Search) CanSearchStays() bool { return s.stay.Destination != "" }
