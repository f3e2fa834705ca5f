package commands

import (
	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/adapters/synthetic"
	"github.com/voyageai/voyage-cli/internal/config"
	"github.com/voyageai/voyage-cli/internal/core"
	"github.com/voyageai/voyage-cli/internal/output"
	"github.com/voyageai/voyage-cli/internal/state"
)

func FlightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Search flight offers ranked by AI score",
	}
	cmd.AddCommand(flightsSearchCmd())
	cmd.AddCommand(flightsDestinationsCmd())
	return cmd
}

func flightsSearchCmd() *cobra.Command {
	var (
		origin      string
		destination string
		departDate  string
		returnDate  string
		passengers  int
		oneway      bool
		direct      bool
		sortBy      string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for flights",
		Example: `  voyage flights search --to Paris --depart 2026-06-12
  voyage flights search --from "Madrid (MAD)" --to "parís" --depart 2026-06-12 --sort price
  voyage flights search --to Tokyo --depart 2026-07-01 --mode live`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := state.NewSearch()
			form.SetFlight(state.FlightSearchPatch{
				Origin:      &origin,
				Destination: &destination,
				DepartDate:  &departDate,
				ReturnDate:  &returnDate,
				Passengers:  &passengers,
			})
			if oneway {
				tt := string(core.TripOneway)
				form.SetFlight(state.FlightSearchPatch{TripType: &tt})
			}

			// An empty destination leaves the search action disabled; no
			// provider is consulted.
			if !form.CanSearchFlights() {
				output.JSONError("search disabled", "destination is required")
				return nil
			}

			f := form.Flight()
			req := core.FlightSearchRequest{
				Origin:      f.Origin,
				Destination: f.Destination,
				DepartDate:  f.DepartDate,
				ReturnDate:  f.ReturnDate,
				Passengers:  f.Passengers,
				TripType:    core.TripType(f.TripType),
				DirectOnly:  direct,
			}

			modeFlag, _ := cmd.Flags().GetString("mode")
			cfg := config.Load().WithMode(modeFlag)

			chain := core.NewChain(buildRouter(cfg), newLogger())
			result, err := chain.SearchFlights(cmd.Context(), req)
			if err != nil {
				output.JSONError("search failed", err.Error())
				return nil
			}
			result.Flights = core.SortFlights(result.Flights, core.SortKey(sortBy))
			return output.JSON(result)
		},
	}

	cmd.Flags().StringVar(&origin, "from", "Madrid (MAD)", "Origin city or \"City (CODE)\"")
	cmd.Flags().StringVar(&destination, "to", "", "Destination city (required)")
	cmd.Flags().StringVar(&departDate, "depart", "", "Departure date YYYY-MM-DD")
	cmd.Flags().StringVar(&returnDate, "return", "", "Return date YYYY-MM-DD (optional)")
	cmd.Flags().IntVar(&passengers, "passengers", 1, "Number of passengers")
	cmd.Flags().BoolVar(&oneway, "oneway", false, "One-way trip")
	cmd.Flags().BoolVar(&direct, "direct", false, "Direct flights only")
	cmd.Flags().StringVar(&sortBy, "sort", "ai", "Sort key: ai, price, duration")

	return cmd
}

func flightsDestinationsCmd() *cobra.Command {
	var origin string

	cmd := &cobra.Command{
		Use:   "destinations",
		Short: "List popular destinations from an origin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.JSON(synthetic.PopularDestinations(origin))
		},
	}
	cmd.Flags().StringVar(&origin, "from", "Madrid (MAD)", "Origin city")
	return cmd
}
