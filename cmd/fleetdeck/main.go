package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/cli"
	"github.com/example/fleetdeck/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "fleetdeck",
		Short:   "FleetDeck - ship maintenance tracking dashboard",
		Version: version.String(),
		Long: `FleetDeck is a CLI dashboard for tracking a small fleet of ships,
their installed components, and the maintenance jobs raised against them.
Data lives in a local store; mutations are gated by the logged-in role.`,
	}

	// Session
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())

	// Entities
	rootCmd.AddCommand(cli.ShipCmd())
	rootCmd.AddCommand(cli.ComponentCmd())
	rootCmd.AddCommand(cli.JobCmd())
	rootCmd.AddCommand(cli.NotificationsCmd())

	// Derived views
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.CalendarCmd())

	// Maintenance
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
