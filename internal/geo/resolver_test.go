package geo

import "testing"

func TestResolveAirport_AccentInsensitive(t *testing.T) {
	r := NewResolver()

	variants := []string{"Paris", "paris", "parís", "PARÍS", "  paris  "}
	for _, v := range variants {
		ap := r.ResolveAirport(v)
		if ap.Code != "CDG" {
			t.Errorf("ResolveAirport(%q) = %s, want CDG", v, ap.Code)
		}
	}
}

func TestResolveAirport_ExplicitCode(t *testing.T) {
	r := NewResolver()

	ap := r.ResolveAirport("Madrid (MAD)")
	if ap.Code != "MAD" {
		t.Fatalf("expected MAD, got %s", ap.Code)
	}
	if ap.City != "Madrid" {
		t.Errorf("expected Madrid, got %s", ap.City)
	}
}

func TestResolveAirport_UnknownCodePassesThrough(t *testing.T) {
	r := NewResolver()

	ap := r.ResolveAirport("Oslo (OSL)")
	if ap.Code != "OSL" {
		t.Errorf("expected code OSL kept verbatim, got %s", ap.Code)
	}
}

func TestResolveAirport_UnknownCityGetsSyntheticCode(t *testing.T) {
	r := NewResolver()

	ap := r.ResolveAirport("Reykjavik")
	if ap.Code != "REY" {
		t.Errorf("expected synthetic code REY, got %s", ap.Code)
	}
	if ap.City != "Reykjavik" {
		t.Errorf("expected city Reykjavik, got %s", ap.City)
	}
}

func TestResolveAirport_SpanishAlias(t *testing.T) {
	r := NewResolver()

	if got := r.ResolveAirport("Londres").Code; got != "LHR" {
		t.Errorf("Londres should resolve to LHR, got %s", got)
	}
	if got := r.ResolveAirport("nueva york").Code; got != "NYC" {
		t.Errorf("nueva york should resolve to NYC, got %s", got)
	}
}

func TestPriceBand_KnownAndUnknown(t *testing.T) {
	r := NewResolver()

	band := r.PriceBand("Bangkok")
	if band.Mid != 60 {
		t.Errorf("expected Bangkok mid 60, got %.0f", band.Mid)
	}

	fallback := r.PriceBand("Nowhereville")
	if fallback != defaultBand {
		t.Errorf("unknown city should get the default band, got %+v", fallback)
	}
}

func TestFold(t *testing.T) {
	cases := map[string]string{
		"París":    "paris",
		"MÁLAGA":   "malaga",
		" Tokyo ":  "tokyo",
		"São Tomé": "sao tome",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Errorf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}
