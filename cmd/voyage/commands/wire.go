package commands

import (
	"fmt"
	"log/slog"

	"github.com/voyageai/voyage-cli/internal/adapters/live"
	"github.com/voyageai/voyage-cli/internal/adapters/synthetic"
	"github.com/voyageai/voyage-cli/internal/config"
	"github.com/voyageai/voyage-cli/internal/core"
	"github.com/voyageai/voyage-cli/internal/geo"
	"github.com/voyageai/voyage-cli/internal/logging"
	"github.com/voyageai/voyage-cli/internal/state"
)

// Registration order is fallback order: live providers first, the synthetic
// generators last so a search always resolves.
func buildRouter(cfg *config.Config) *core.Router {
	resolver := geo.NewResolver()
	router := core.NewRouter(cfg)

	router.RegisterFlight(live.NewApifyFlightsAdapter(resolver))
	router.RegisterFlight(live.NewKiwiFlightsAdapter(resolver))
	router.RegisterFlight(synthetic.NewFlightsGenerator(resolver, cfg.MockLatency))

	router.RegisterStay(synthetic.NewStaysGenerator(resolver, cfg.MockLatency))

	return router
}

func newLogger() *slog.Logger {
	return logging.New()
}

func openState() (*state.Files, error) {
	dir, err := config.StateDir()
	if err != nil {
		return nil, fmt.Errorf("resolve state dir: %w", err)
	}
	files, err := state.NewFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("open state dir: %w", err)
	}
	return files, nil
}
