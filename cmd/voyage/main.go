package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/voyageai/voyage-cli/cmd/voyage/commands"
	"github.com/voyageai/voyage-cli/internal/output"
)

func main() {
	root := &cobra.Command{
		Use:   "voyage",
		Short: "VoyageAI travel planner – flights, stays, trips, and itineraries",
		Long:  "A local-first travel planning CLI that searches flights and stays with AI-ranked offers, manages trips, favorites, and notifications, and renders itineraries with compact JSON output.",
	}

	root.PersistentFlags().String("mode", "", "Provider mode: mock, live, hybrid (default from config/env)")
	root.PersistentFlags().BoolVar(&output.Compact, "compact", false, "Single-line JSON output")

	root.AddCommand(commands.FlightsCmd())
	root.AddCommand(commands.StaysCmd())
	root.AddCommand(commands.FavoritesCmd())
	root.AddCommand(commands.TripsCmd())
	root.AddCommand(commands.NotificationsCmd())
	root.AddCommand(commands.ItineraryCmd())
	root.AddCommand(commands.DocumentsCmd())
	root.AddCommand(commands.RefundsCmd())
	root.AddCommand(commands.ProfileCmd())
	root.AddCommand(commands.ProvidersCmd())
	root.AddCommand(commands.DoctorCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print voyage CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("voyage v0.1.0")
		},
	}
}
