package commands

import (
	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/itinerary"
	"github.com/voyageai/voyage-cli/internal/output"
)

func RefundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refunds",
		Short: "Compensation claims and their progress",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List refund claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.JSON(itinerary.DemoRefunds())
		},
	})
	return cmd
}
