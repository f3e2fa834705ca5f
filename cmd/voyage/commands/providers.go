package commands

import (
	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/config"
	"github.com/voyageai/voyage-cli/internal/output"
)

func ProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Registered data providers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List providers and their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			modeFlag, _ := cmd.Flags().GetString("mode")
			cfg := config.Load().WithMode(modeFlag)
			router := buildRouter(cfg)
			return output.JSON(map[string]any{
				"mode":      cfg.Mode,
				"providers": router.ProviderInfos(),
			})
		},
	})
	return cmd
}
