package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/itinerary"
	"github.com/voyageai/voyage-cli/internal/output"
	"github.com/voyageai/voyage-cli/internal/state"
)

func ItineraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "itinerary",
		Short: "Day-by-day itinerary for the current trip",
	}
	cmd.AddCommand(itineraryShowCmd())
	cmd.AddCommand(itineraryExportCmd())
	return cmd
}

func itineraryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the itinerary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.JSON(itinerary.Demo())
		},
	}
}

func itineraryExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the itinerary as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			travelerName := ""
			if files, err := openState(); err == nil {
				profile := state.LoadProfile(files, newLogger())
				if user, ok := profile.User(); ok {
					travelerName = user.Name
				}
			}

			data, err := itinerary.PDFBytes(itinerary.Demo(), travelerName)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write itinerary pdf: %w", err)
			}
			return output.JSON(map[string]any{"exported": outPath, "bytes": len(data)})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "itinerary.pdf", "Output file path")
	return cmd
}
