package commands

import (
	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/output"
	"github.com/voyageai/voyage-cli/internal/state"
)

func TripsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Manage planned and active trips",
	}
	cmd.AddCommand(tripsListCmd())
	cmd.AddCommand(tripsAddCmd())
	cmd.AddCommand(tripsUpdateCmd())
	cmd.AddCommand(tripsRemoveCmd())
	cmd.AddCommand(tripsActivateCmd())
	cmd.AddCommand(tripsActiveCmd())
	return cmd
}

func loadTrips() (*state.Trips, error) {
	files, err := openState()
	if err != nil {
		return nil, err
	}
	return state.LoadTrips(files, newLogger()), nil
}

func tripsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := loadTrips()
			if err != nil {
				return err
			}
			return output.JSON(trips.All())
		},
	}
}

func tripsAddCmd() *cobra.Command {
	var trip state.Trip

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new trip",
		Example: `  voyage trips add --name "Summer in Rome" --destination "Madrid → Rome" \
    --start 2026-07-10 --end 2026-07-18`,
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := loadTrips()
			if err != nil {
				return err
			}
			created := trips.Add(trip)
			return output.JSON(created)
		},
	}

	cmd.Flags().StringVar(&trip.Name, "name", "", "Trip name")
	cmd.Flags().StringVar(&trip.Destination, "destination", "", "Destination, e.g. \"Madrid → Rome\"")
	cmd.Flags().StringVar(&trip.StartDate, "start", "", "Start date YYYY-MM-DD")
	cmd.Flags().StringVar(&trip.EndDate, "end", "", "End date YYYY-MM-DD")
	cmd.Flags().IntVar(&trip.Progress, "progress", 0, "Planning progress 0-100")
	cmd.Flags().Float64Var(&trip.TotalCost, "cost", 0, "Estimated total cost")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}

func tripsUpdateCmd() *cobra.Command {
	var (
		name        string
		destination string
		start       string
		end         string
		status      string
		progress    int
		cost        float64
		savings     float64
	)

	cmd := &cobra.Command{
		Use:   "update <trip-id>",
		Short: "Update fields of an existing trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := loadTrips()
			if err != nil {
				return err
			}

			// Only flags the user actually set become part of the patch.
			var patch state.TripPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("destination") {
				patch.Destination = &destination
			}
			if cmd.Flags().Changed("start") {
				patch.StartDate = &start
			}
			if cmd.Flags().Changed("end") {
				patch.EndDate = &end
			}
			if cmd.Flags().Changed("status") {
				ts := state.TripStatus(status)
				patch.Status = &ts
			}
			if cmd.Flags().Changed("progress") {
				patch.Progress = &progress
			}
			if cmd.Flags().Changed("cost") {
				patch.TotalCost = &cost
			}
			if cmd.Flags().Changed("savings") {
				patch.Savings = &savings
			}

			updated, ok := trips.Update(args[0], patch)
			if !ok {
				output.JSONError("trip not found", args[0])
				return nil
			}
			return output.JSON(updated)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Trip name")
	cmd.Flags().StringVar(&destination, "destination", "", "Destination")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD")
	cmd.Flags().StringVar(&status, "status", "", "Status: planning, active, completed")
	cmd.Flags().IntVar(&progress, "progress", 0, "Planning progress 0-100")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Estimated total cost")
	cmd.Flags().Float64Var(&savings, "savings", 0, "Savings achieved")

	return cmd
}

func tripsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <trip-id>",
		Short: "Delete a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := loadTrips()
			if err != nil {
				return err
			}
			if !trips.Remove(args[0]) {
				output.JSONError("trip not found", args[0])
				return nil
			}
			return output.JSON(map[string]any{"removed": args[0]})
		},
	}
}

func tripsActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <trip-id>",
		Short: "Mark a trip as the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := loadTrips()
			if err != nil {
				return err
			}
			if !trips.Activate(args[0]) {
				output.JSONError("trip not found", args[0])
				return nil
			}
			active, _ := trips.Active()
			return output.JSON(active)
		},
	}
}

func tripsActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "Show the active trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := loadTrips()
			if err != nil {
				return err
			}
			active, ok := trips.Active()
			if !ok {
				return output.JSON(map[string]any{"active": nil})
			}
			return output.JSON(active)
		},
	}
}
