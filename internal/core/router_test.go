package core

import (
	"context"
	"testing"

	"github.com/voyageai/voyage-cli/internal/config"
)

type fakeFlightProvider struct {
	name    string
	offers  []FlightOffer
	err     error
	calls   int
}

func (f *fakeFlightProvider) Name() string               { return f.name }
func (f *fakeFlightProvider) Tier() ProviderTier         { return TierFreeSignup }
func (f *fakeFlightProvider) Capabilities() []Capability { return []Capability{CapFlightsSearch} }
func (f *fakeFlightProvider) Available() (bool, string)  { return true, "" }
func (f *fakeFlightProvider) SearchFlights(ctx context.Context, req FlightSearchRequest) ([]FlightOffer, error) {
	f.calls++
	return f.offers, f.err
}

type fakeStayProvider struct {
	name   string
	offers []StayOffer
	err    error
}

func (f *fakeStayProvider) Name() string               { return f.name }
func (f *fakeStayProvider) Tier() ProviderTier         { return TierSynthetic }
func (f *fakeStayProvider) Capabilities() []Capability { return []Capability{CapStaysSearch} }
func (f *fakeStayProvider) Available() (bool, string)  { return true, "" }
func (f *fakeStayProvider) SearchStays(ctx context.Context, req StaySearchRequest) ([]StayOffer, error) {
	return f.offers, f.err
}

func credentialedConfig(mode config.Mode) *config.Config {
	return &config.Config{
		Mode: mode,
		Providers: map[string]config.ProviderConfig{
			"apify": {Enabled: true, EnvKeys: map[string]string{"token": "APIFY_TOKEN"}},
		},
	}
}

func TestRouter_MockMode_OnlySyntheticProviders(t *testing.T) {
	t.Setenv("APIFY_TOKEN", "tok-123")
	router := NewRouter(credentialedConfig(config.ModeMock))
	router.RegisterFlight(&fakeFlightProvider{name: "apify"})
	router.RegisterFlight(&fakeFlightProvider{name: "synthetic_flights"})

	active := router.ActiveFlightProviders()
	if len(active) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(active))
	}
	if active[0].Name() != "synthetic_flights" {
		t.Errorf("expected synthetic_flights, got %s", active[0].Name())
	}
}

func TestRouter_LiveMode_OnlyCredentialedLive(t *testing.T) {
	t.Setenv("APIFY_TOKEN", "tok-123")
	router := NewRouter(credentialedConfig(config.ModeLive))
	router.RegisterFlight(&fakeFlightProvider{name: "apify"})
	router.RegisterFlight(&fakeFlightProvider{name: "synthetic_flights"})

	active := router.ActiveFlightProviders()
	if len(active) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(active))
	}
	if active[0].Name() != "apify" {
		t.Errorf("expected apify, got %s", active[0].Name())
	}
}

func TestRouter_LiveMode_PlaceholderCredentialExcluded(t *testing.T) {
	t.Setenv("APIFY_TOKEN", "your_apify_token_here")
	router := NewRouter(credentialedConfig(config.ModeLive))
	router.RegisterFlight(&fakeFlightProvider{name: "apify"})

	if got := len(router.ActiveFlightProviders()); got != 0 {
		t.Errorf("placeholder credential should exclude provider, got %d active", got)
	}
}

func TestRouter_HybridMode_SyntheticAlwaysInChain(t *testing.T) {
	t.Setenv("APIFY_TOKEN", "")
	router := NewRouter(credentialedConfig(config.ModeHybrid))
	router.RegisterFlight(&fakeFlightProvider{name: "apify"})
	router.RegisterFlight(&fakeFlightProvider{name: "synthetic_flights"})

	active := router.ActiveFlightProviders()
	if len(active) != 1 {
		t.Fatalf("expected synthetic fallback only, got %d", len(active))
	}
	if active[0].Name() != "synthetic_flights" {
		t.Errorf("expected synthetic_flights, got %s", active[0].Name())
	}
}

func TestRouter_HybridMode_CredentialedLiveFirst(t *testing.T) {
	t.Setenv("APIFY_TOKEN", "tok-123")
	router := NewRouter(credentialedConfig(config.ModeHybrid))
	router.RegisterFlight(&fakeFlightProvider{name: "apify"})
	router.RegisterFlight(&fakeFlightProvider{name: "synthetic_flights"})

	active := router.ActiveFlightProviders()
	if len(active) != 2 {
		t.Fatalf("expected both providers, got %d", len(active))
	}
	if active[0].Name() != "apify" {
		t.Errorf("registration order should put apify first, got %s", active[0].Name())
	}
}

func TestProviderInfos_MockModeMarksLiveInactive(t *testing.T) {
	t.Setenv("APIFY_TOKEN", "tok-123")
	router := NewRouter(credentialedConfig(config.ModeMock))
	router.RegisterFlight(&fakeFlightProvider{name: "apify"})
	router.RegisterFlight(&fakeFlightProvider{name: "synthetic_flights"})

	infos := router.ProviderInfos()
	if len(infos) != 2 {
		t.Fatalf("expected 2 infos, got %d", len(infos))
	}
	if infos[0].Status != "inactive" {
		t.Errorf("expected apify inactive in mock mode, got %s", infos[0].Status)
	}
	if infos[1].Status != "active" {
		t.Errorf("expected synthetic_flights active, got %s", infos[1].Status)
	}
}
