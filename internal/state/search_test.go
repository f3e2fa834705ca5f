package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch_Defaults(t *testing.T) {
	s := NewSearch()

	f := s.Flight()
	assert.Equal(t, "Madrid (MAD)", f.Origin)
	assert.Equal(t, 1, f.Passengers)
	assert.Equal(t, "roundtrip", f.TripType)

	st := s.Stay()
	assert.Equal(t, 2, st.Guests)
	assert.Equal(t, 1, st.Rooms)
}

func TestSearch_EmptyDestinationDisablesSearch(t *testing.T) {
	s := NewSearch()

	assert.False(t, s.CanSearchFlights())
	assert.False(t, s.CanSearchStays())

	dest := "Paris"
	s.SetFlight(FlightSearchPatch{Destination: &dest})
	s.SetStay(StaySearchPatch{Destination: &dest})

	assert.True(t, s.CanSearchFlights())
	assert.True(t, s.CanSearchStays())
}

func TestSearch_PatchMergesOnlySetFields(t *testing.T) {
	s := NewSearch()

	dest := "Tokyo"
	passengers := 3
	s.SetFlight(FlightSearchPatch{Destination: &dest, Passengers: &passengers})

	f := s.Flight()
	assert.Equal(t, "Tokyo", f.Destination)
	assert.Equal(t, 3, f.Passengers)
	assert.Equal(t, "Madrid (MAD)", f.Origin, "unpatched fields keep defaults")
}

func TestSearch_ResetRestoresDefaults(t *testing.T) {
	s := NewSearch()

	dest := "Tokyo"
	s.SetFlight(FlightSearchPatch{Destination: &dest})
	s.ResetFlight()

	assert.False(t, s.CanSearchFlights())
	assert.Equal(t, "Madrid (MAD)", s.Flight().Origin)
}
