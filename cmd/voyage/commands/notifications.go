package commands

import (
	"github.com/spf13/cobra"

	"github.com/voyageai/voyage-cli/internal/output"
	"github.com/voyageai/voyage-cli/internal/state"
)

func NotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "View and manage dashboard notifications",
	}
	cmd.AddCommand(notificationsListCmd())
	cmd.AddCommand(notificationsAddCmd())
	cmd.AddCommand(notificationsReadCmd())
	cmd.AddCommand(notificationsReadAllCmd())
	cmd.AddCommand(notificationsRemoveCmd())
	cmd.AddCommand(notificationsClearCmd())
	return cmd
}

func loadNotifications() (*state.Notifications, error) {
	files, err := openState()
	if err != nil {
		return nil, err
	}
	return state.LoadNotifications(files, newLogger()), nil
}

func notificationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifs, err := loadNotifications()
			if err != nil {
				return err
			}
			return output.JSON(map[string]any{
				"notifications": notifs.All(),
				"unreadCount":   notifs.UnreadCount(),
			})
		},
	}
}

func notificationsAddCmd() *cobra.Command {
	var (
		kind    string
		title   string
		message string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifs, err := loadNotifications()
			if err != nil {
				return err
			}
			item := notifs.Add(state.NotificationType(kind), title, message)
			return output.JSON(item)
		},
	}

	cmd.Flags().StringVar(&kind, "type", string(state.NotifyAlert), "Type: deal, booking, alert, ai, flight, refund")
	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&message, "message", "", "Notification body")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func notificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notifs, err := loadNotifications()
			if err != nil {
				return err
			}
			if !notifs.MarkRead(args[0]) {
				output.JSONError("notification not found", args[0])
				return nil
			}
			return output.JSON(map[string]any{"read": args[0], "unreadCount": notifs.UnreadCount()})
		},
	}
}

func notificationsReadAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifs, err := loadNotifications()
			if err != nil {
				return err
			}
			notifs.MarkAllRead()
			return output.JSON(map[string]any{"unreadCount": 0})
		},
	}
}

func notificationsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <notification-id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notifs, err := loadNotifications()
			if err != nil {
				return err
			}
			if !notifs.Remove(args[0]) {
				output.JSONError("notification not found", args[0])
				return nil
			}
			return output.JSON(map[string]any{"removed": args[0], "unreadCount": notifs.UnreadCount()})
		},
	}
}

func notificationsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifs, err := loadNotifications()
			if err != nil {
				return err
			}
			notifs.ClearAll()
			return output.JSON(map[string]any{"notifications": []state.Notification{}, "unreadCount": 0})
		},
	}
}
