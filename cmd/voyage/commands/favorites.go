package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/output"
	"github.com/voyageai/voyage-cli/internal/state"
)

func FavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite flight and stay offers",
	}
	cmd.AddCommand(favoritesMutationCmd("add", "Mark an offer as favorite"))
	cmd.AddCommand(favoritesMutationCmd("remove", "Remove an offer from favorites"))
	cmd.AddCommand(favoritesMutationCmd("toggle", "Toggle an offer's favorite state"))
	cmd.AddCommand(favoritesListCmd())
	return cmd
}

func loadFavorites() (*state.Favorites, error) {
	files, err := openState()
	if err != nil {
		return nil, err
	}
	return state.LoadFavorites(files, newLogger()), nil
}

func favoritesMutationCmd(verb, short string) *cobra.Command {
	var (
		kind string
		id   string
	)

	cmd := &cobra.Command{
		Use:   verb,
		Short: short,
		Example: fmt.Sprintf(`  voyage favorites %s --kind flight --id fl-001
  voyage favorites %s --kind stay --id stay-rome-2`, verb, verb),
		RunE: func(cmd *cobra.Command, args []string) error {
			k := state.OfferKind(kind)
			if k != state.KindFlight && k != state.KindStay {
				output.JSONError("invalid kind", "use flight or stay")
				return nil
			}

			favs, err := loadFavorites()
			if err != nil {
				return err
			}

			var favorite bool
			switch verb {
			case "add":
				favs.Add(k, id)
				favorite = true
			case "remove":
				favs.Remove(k, id)
			case "toggle":
				favorite = favs.Toggle(k, id)
			}
			return output.JSON(map[string]any{"id": id, "kind": k, "favorite": favorite})
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "flight", "Offer kind: flight or stay")
	cmd.Flags().StringVar(&id, "id", "", "Offer ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func favoritesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorite offer IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			favs, err := loadFavorites()
			if err != nil {
				return err
			}
			return output.JSON(map[string]any{
				"flightIds": favs.FlightIDs(),
				"stayIds":   favs.StayIDs(),
			})
		},
	}
}
