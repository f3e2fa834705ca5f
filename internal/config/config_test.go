package config

import "testing"

func TestDefaultConfig_HybridWithSyntheticFallback(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeHybrid {
		t.Errorf("default mode = %s, want hybrid", cfg.Mode)
	}
	for _, name := range []string{"apify", "kiwi", "synthetic_flights", "synthetic_stays"} {
		if _, ok := cfg.Providers[name]; !ok {
			t.Errorf("default config missing provider %s", name)
		}
	}
}

func TestWithMode_OverridesAndIgnoresJunk(t *testing.T) {
	cfg := DefaultConfig()

	cfg.WithMode("live")
	if cfg.Mode != ModeLive {
		t.Errorf("expected live, got %s", cfg.Mode)
	}

	cfg.WithMode("MOCK")
	if cfg.Mode != ModeMock {
		t.Errorf("mode match should be case-insensitive, got %s", cfg.Mode)
	}

	cfg.WithMode("turbo")
	if cfg.Mode != ModeMock {
		t.Errorf("unknown mode should keep the previous value, got %s", cfg.Mode)
	}

	cfg.WithMode("")
	if cfg.Mode != ModeMock {
		t.Errorf("empty mode should keep the previous value, got %s", cfg.Mode)
	}
}

func TestProviderHasCredentials(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("APIFY_TOKEN", "")
	if cfg.ProviderHasCredentials("apify") {
		t.Error("empty env key should count as unconfigured")
	}

	t.Setenv("APIFY_TOKEN", "your_apify_token_here")
	if cfg.ProviderHasCredentials("apify") {
		t.Error("placeholder value should count as unconfigured")
	}

	t.Setenv("APIFY_TOKEN", "apify_api_real_token")
	if !cfg.ProviderHasCredentials("apify") {
		t.Error("real value should count as configured")
	}

	if cfg.ProviderHasCredentials("unknown") {
		t.Error("unknown provider never has credentials")
	}

	// Synthetic providers declare no env keys, so they always pass.
	if !cfg.ProviderHasCredentials("synthetic_flights") {
		t.Error("synthetic provider should need no credentials")
	}
}

func TestMissingCredentials(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("KIWI_API_KEY", "")
	missing := cfg.MissingCredentials("kiwi")
	if len(missing) != 1 {
		t.Fatalf("expected 1 missing credential, got %d", len(missing))
	}

	t.Setenv("KIWI_API_KEY", "real-key")
	if got := cfg.MissingCredentials("kiwi"); len(got) != 0 {
		t.Errorf("expected no missing credentials, got %v", got)
	}
}
