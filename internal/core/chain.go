package core

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Budget for a whole search, covering live providers that poll upstream.
const searchTimeout = 30 * time.Second

// ErrMissingDestination marks a request the UI layer should have disabled.
// No provider is consulted for it.
var ErrMissingDestination = errors.New("destination is required")

// Chain runs a search through the active providers in priority order,
// short-circuiting on the first success. Provider failures are absorbed:
// with the synthetic generator registered as the terminal provider, a
// search only fails on cancellation or invalid input.
type Chain struct {
	router *Router
	log    *slog.Logger
}

func NewChain(router *Router, log *slog.Logger) *Chain {
	return &Chain{router: router, log: log}
}

func (c *Chain) SearchFlights(ctx context.Context, req FlightSearchRequest) (*SearchResult, error) {
	if req.Destination == "" {
		return nil, ErrMissingDestination
	}
	if req.Passengers <= 0 {
		req.Passengers = 1
	}
	if req.TripType == "" {
		req.TripType = TripRoundtrip
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	providers := c.router.ActiveFlightProviders()
	for _, p := range providers {
		offers, err := p.SearchFlights(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn("flight provider failed, trying next",
				slog.String("provider", p.Name()), slog.Any("err", err))
			continue
		}
		return &SearchResult{
			Query:      req,
			Mode:       c.router.cfg.Mode,
			Source:     p.Name(),
			Flights:    offers,
			TotalFound: len(offers),
			FetchedAt:  time.Now().UTC(),
		}, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return &SearchResult{
		Query:     req,
		Mode:      c.router.cfg.Mode,
		Detail:    emptyResultDetail(len(providers)),
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (c *Chain) SearchStays(ctx context.Context, req StaySearchRequest) (*SearchResult, error) {
	if req.Destination == "" {
		return nil, ErrMissingDestination
	}
	if req.Guests <= 0 {
		req.Guests = 2
	}
	if req.Rooms <= 0 {
		req.Rooms = 1
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	providers := c.router.ActiveStayProviders()
	for _, p := range providers {
		offers, err := p.SearchStays(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn("stay provider failed, trying next",
				slog.String("provider", p.Name()), slog.Any("err", err))
			continue
		}
		return &SearchResult{
			Query:      req,
			Mode:       c.router.cfg.Mode,
			Source:     p.Name(),
			Stays:      offers,
			TotalFound: len(offers),
			FetchedAt:  time.Now().UTC(),
		}, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return &SearchResult{
		Query:     req,
		Mode:      c.router.cfg.Mode,
		Detail:    emptyResultDetail(len(providers)),
		FetchedAt: time.Now().UTC(),
	}, nil
}

// emptyResultDetail labels a result no provider could fill. With no active
// providers the mode excluded everything (live mode without credentials, or
// live mode for stays where only the synthetic generator exists).
func emptyResultDetail(active int) string {
	if active == 0 {
		return "no active providers for this mode"
	}
	return "all providers failed"
}
