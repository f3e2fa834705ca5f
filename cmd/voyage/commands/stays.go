package commands

import (
	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/adapters/synthetic"
	"github.com/voyageai/voyage-cli/internal/config"
	"github.com/voyageai/voyage-cli/internal/core"
	"github.com/voyageai/voyage-cli/internal/output"
	"github.com/voyageai/voyage-cli/internal/state"
)

func StaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stays",
		Short: "Search accommodation offers ranked by AI score",
	}
	cmd.AddCommand(staysSearchCmd())
	cmd.AddCommand(staysFeaturedCmd())
	return cmd
}

func staysSearchCmd() *cobra.Command {
	var (
		destination string
		checkIn     string
		checkOut    string
		guests      int
		rooms       int
		amenities   []string
		sortBy      string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for hotels, apartments, and other stays",
		Example: `  voyage stays search --city Paris --checkin 2026-06-12 --checkout 2026-06-20
  voyage stays search --city "Barcelona" --guests 4 --sort rating`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := state.NewSearch()
			form.SetStay(state.StaySearchPatch{
				Destination: &destination,
				CheckIn:     &checkIn,
				CheckOut:    &checkOut,
				Guests:      &guests,
				Rooms:       &rooms,
			})

			if !form.CanSearchStays() {
				output.JSONError("search disabled", "destination is required")
				return nil
			}

			s := form.Stay()
			req := core.StaySearchRequest{
				Destination: s.Destination,
				CheckIn:     s.CheckIn,
				CheckOut:    s.CheckOut,
				Guests:      s.Guests,
				Rooms:       s.Rooms,
				Amenities:   amenities,
			}

			modeFlag, _ := cmd.Flags().GetString("mode")
			cfg := config.Load().WithMode(modeFlag)

			chain := core.NewChain(buildRouter(cfg), newLogger())
			result, err := chain.SearchStays(cmd.Context(), req)
			if err != nil {
				output.JSONError("search failed", err.Error())
				return nil
			}
			result.Stays = core.SortStays(result.Stays, core.SortKey(sortBy))
			return output.JSON(result)
		},
	}

	cmd.Flags().StringVar(&destination, "city", "", "Destination city (required)")
	cmd.Flags().StringVar(&checkIn, "checkin", "", "Check-in date YYYY-MM-DD")
	cmd.Flags().StringVar(&checkOut, "checkout", "", "Check-out date YYYY-MM-DD")
	cmd.Flags().IntVar(&guests, "guests", 2, "Number of guests")
	cmd.Flags().IntVar(&rooms, "rooms", 1, "Number of rooms")
	cmd.Flags().StringSliceVar(&amenities, "amenities", nil, "Required amenities (wifi, pool, gym, ...)")
	cmd.Flags().StringVar(&sortBy, "sort", "ai", "Sort key: ai, price, rating")

	return cmd
}

func staysFeaturedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List featured stay destinations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.JSON(synthetic.FeaturedDestinations())
		},
	}
}
