package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeMock   Mode = "mock"
	ModeLive   Mode = "live"
	ModeHybrid Mode = "hybrid"
)

// Placeholder credential values shipped in example .env files. A provider
// whose env key still holds one of these counts as not configured.
var placeholders = map[string]bool{
	"your_apify_token_here":  true,
	"your_kiwi_api_key_here": true,
}

type ProviderConfig struct {
	Enabled  bool              `yaml:"enabled"`
	Priority int               `yaml:"priority"`
	EnvKeys  map[string]string `yaml:"envKeys,omitempty"`
}

type Config struct {
	Mode      Mode                      `yaml:"mode"`
	Providers map[string]ProviderConfig `yaml:"providers"`

	// MockLatency is the simulated network delay before synthetic results
	// resolve. Zero disables the delay.
	MockLatency time.Duration `yaml:"mockLatency"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode: ModeHybrid,
		Providers: map[string]ProviderConfig{
			"apify": {
				Enabled:  true,
				Priority: 10,
				EnvKeys:  map[string]string{"token": "APIFY_TOKEN"},
			},
			"kiwi": {
				Enabled:  true,
				Priority: 20,
				EnvKeys:  map[string]string{"apikey": "KIWI_API_KEY"},
			},
			"synthetic_flights": {Enabled: true, Priority: 100},
			"synthetic_stays":   {Enabled: true, Priority: 100},
		},
		MockLatency: 1200 * time.Millisecond,
	}
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	if envMode := os.Getenv("VOYAGE_MODE"); envMode != "" {
		cfg.applyMode(envMode)
	}

	return cfg
}

func (c *Config) WithMode(mode string) *Config {
	if mode != "" {
		c.applyMode(mode)
	}
	return c
}

func (c *Config) applyMode(mode string) {
	switch strings.ToLower(mode) {
	case "mock":
		c.Mode = ModeMock
	case "live":
		c.Mode = ModeLive
	case "hybrid":
		c.Mode = ModeHybrid
	}
}

// ProviderHasCredentials reports whether every env key a provider declares
// holds a real, non-placeholder value.
func (c *Config) ProviderHasCredentials(name string) bool {
	pc, ok := c.Providers[name]
	if !ok {
		return false
	}
	for _, envKey := range pc.EnvKeys {
		v := os.Getenv(envKey)
		if v == "" || placeholders[v] {
			return false
		}
	}
	return true
}

func (c *Config) MissingCredentials(name string) []string {
	pc, ok := c.Providers[name]
	if !ok {
		return nil
	}
	var missing []string
	for label, envKey := range pc.EnvKeys {
		v := os.Getenv(envKey)
		if v == "" || placeholders[v] {
			missing = append(missing, fmt.Sprintf("%s (%s)", label, envKey))
		}
	}
	return missing
}

// StateDir returns the directory holding persisted client state records.
func StateDir() (string, error) {
	if p := os.Getenv("VOYAGE_STATE_DIR"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "voyageai"), nil
}

func configPath() string {
	if p := os.Getenv("VOYAGE_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "voyageai", "voyage.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
