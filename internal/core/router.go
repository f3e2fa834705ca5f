package core

import (
	"strings"

	"github.com/voyageai/voyage-cli/internal/config"
)

// Router holds registered providers and selects the active subset for the
// current mode. Registration order is priority order: the chain tries
// providers front to back, so the synthetic fallbacks register last.
type Router struct {
	cfg             *config.Config
	flightProviders []FlightProvider
	stayProviders   []StayProvider
}

func NewRouter(cfg *config.Config) *Router {
	return &Router{cfg: cfg}
}

func (r *Router) RegisterFlight(p FlightProvider) {
	r.flightProviders = append(r.flightProviders, p)
}

func (r *Router) RegisterStay(p StayProvider) {
	r.stayProviders = append(r.stayProviders, p)
}

func (r *Router) Config() *config.Config { return r.cfg }

func (r *Router) ActiveFlightProviders() []FlightProvider {
	var out []FlightProvider
	for _, p := range r.flightProviders {
		if r.shouldUse(p.Name()) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Router) ActiveStayProviders() []StayProvider {
	var out []StayProvider
	for _, p := range r.stayProviders {
		if r.shouldUse(p.Name()) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Router) shouldUse(name string) bool {
	switch r.cfg.Mode {
	case config.ModeMock:
		return isSynthetic(name)
	case config.ModeLive:
		return !isSynthetic(name) && r.cfg.ProviderHasCredentials(name)
	case config.ModeHybrid:
		// Live providers need credentials; the synthetic generator always
		// stays in the chain as the terminal fallback.
		if isSynthetic(name) {
			return true
		}
		return r.cfg.ProviderHasCredentials(name)
	}
	return false
}

func isSynthetic(name string) bool {
	return strings.HasPrefix(name, "synthetic_")
}

func (r *Router) ProviderInfos() []ProviderInfo {
	var infos []ProviderInfo
	for _, p := range r.flightProviders {
		infos = append(infos, r.info(p.Name(), p.Tier(), p.Capabilities(), p.Available))
	}
	for _, p := range r.stayProviders {
		infos = append(infos, r.info(p.Name(), p.Tier(), p.Capabilities(), p.Available))
	}
	return infos
}

func (r *Router) info(name string, tier ProviderTier, caps []Capability, available func() (bool, string)) ProviderInfo {
	info := ProviderInfo{
		Name:         name,
		Capabilities: caps,
		Tier:         tier,
	}
	if avail, reason := available(); avail {
		info.Status = "active"
	} else {
		info.Status = "no_credentials"
		info.Reason = reason
	}
	if r.cfg.Mode == config.ModeMock && !isSynthetic(name) {
		info.Status = "inactive"
		info.Reason = "mode is mock"
	}
	return info
}
