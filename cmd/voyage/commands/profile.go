package commands

import (
	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/output"
	"github.com/voyageai/voyage-cli/internal/state"
)

func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "User profile and travel preferences",
	}
	cmd.AddCommand(profileShowCmd())
	cmd.AddCommand(profileResetCmd())
	return cmd
}

func loadProfile() (*state.Profile, error) {
	files, err := openState()
	if err != nil {
		return nil, err
	}
	return state.LoadProfile(files, newLogger()), nil
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the user profile and preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile()
			if err != nil {
				return err
			}
			user, _ := profile.User()
			prefs, _ := profile.Preferences()
			return output.JSON(map[string]any{
				"user":        user,
				"preferences": prefs,
			})
		},
	}
}

func profileResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default profile and preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile()
			if err != nil {
				return err
			}
			profile.Reset()
			user, _ := profile.User()
			return output.JSON(map[string]any{"reset": true, "user": user})
		},
	}
}
