package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/wire"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show and acknowledge the notification feed",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		unreadOnly, _ := cmd.Flags().GetBool("unread")

		feed, err := wire.NotificationService().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list notifications: %w", err)
		}

		unread, err := wire.NotificationService().UnreadCount(ctx)
		if err != nil {
			return err
		}

		if len(feed) == 0 {
			fmt.Println("No notifications")
			return nil
		}

		fmt.Printf("%d notification(s), %d unread:\n\n", len(feed), unread)
		for _, n := range feed {
			if unreadOnly && n.Read {
				continue
			}
			marker := " "
			if !n.Read {
				marker = color.New(color.FgHiMagenta).Sprint("●")
			}
			fmt.Printf("%s %-40s %-14s %s - %s\n", marker, n.ID, n.Type, n.Title, n.Message)
		}
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.NotificationService().MarkRead(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}

		fmt.Printf("✓ Marked %s read\n", args[0])
		return nil
	},
}

func init() {
	notificationsListCmd.Flags().Bool("unread", false, "Only unread notifications")
}

// NotificationsCmd returns the notifications command tree.
func NotificationsCmd() *cobra.Command {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	return notificationsCmd
}
