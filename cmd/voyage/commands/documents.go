package commands

import (
	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/itinerary"
	"github.com/voyageai/voyage-cli/internal/output"
)

func DocumentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Travel documents: passports, visas, insurance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List travel documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.JSON(itinerary.DemoDocuments())
		},
	})
	return cmd
}
