package core

import "testing"

func TestSearchResult_FlightByID(t *testing.T) {
	result := &SearchResult{
		Flights: []FlightOffer{{ID: "fl-1"}, {ID: "fl-2", Airline: "Iberia"}},
	}

	got, ok := result.Flight("fl-2")
	if !ok {
		t.Fatal("expected fl-2 to be found")
	}
	if got.Airline != "Iberia" {
		t.Errorf("wrong offer returned: %s", got.Airline)
	}

	if _, ok := result.Flight("fl-9"); ok {
		t.Error("missing ID should not be found")
	}
}

func TestSearchResult_StayByID(t *testing.T) {
	result := &SearchResult{
		Stays: []StayOffer{{ID: "stay-1", Name: "Ibis Rome"}},
	}

	got, ok := result.Stay("stay-1")
	if !ok {
		t.Fatal("expected stay-1 to be found")
	}
	if got.Name != "Ibis Rome" {
		t.Errorf("wrong stay returned: %s", got.Name)
	}

	if _, ok := result.Stay("stay-2"); ok {
		t.Error("missing ID should not be found")
	}
}
